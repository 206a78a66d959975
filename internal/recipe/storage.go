package recipe

import "context"

// Storage loads and saves whole recipe books. Implementations can be file based
// or database backed. The model never calls it; callers persist at load and save
// boundaries.
type Storage interface {
	Load(ctx context.Context) (*Book, error)
	Save(ctx context.Context, book ReadOnlyBook) error
}
