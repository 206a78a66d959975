// Package jsonstore saves and loads recipe books as JSON documents on disk.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"larder/internal/domain"
	applog "larder/internal/log"
	"larder/internal/recipe"
)

// Compile-time interface check.
var _ recipe.Storage = (*Store)(nil)

// Store reads and writes one JSON file.
type Store struct {
	path string
}

// New returns a store for the file at path.
func New(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("json store path must not be empty")
	}
	return &Store{path: path}, nil
}

// Path returns the file the store uses.
func (s *Store) Path() string {
	return s.path
}

// Load decodes the file. A missing file yields an error wrapping fs.ErrNotExist.
func (s *Store) Load(ctx context.Context) (*recipe.Book, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read recipe book: %w", err)
	}

	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode recipe book %s: %w", s.path, err)
	}

	book, err := doc.toModel()
	if err != nil {
		return nil, fmt.Errorf("load recipe book %s: %w", s.path, err)
	}

	applog.Debug(ctx, "recipe book loaded from file",
		"path", s.path,
		"ingredients", len(doc.Ingredients),
		"recipes", len(doc.Recipes),
	)
	return book, nil
}

// Save encodes book and replaces the file. The document is written to a
// temporary file in the same directory first, then renamed over the target.
func (s *Store) Save(ctx context.Context, book recipe.ReadOnlyBook) (err error) {
	if recipe.IsNull(book) {
		return fmt.Errorf("save recipe book: %w", domain.ErrNullInput)
	}

	data, err := json.MarshalIndent(newDocument(book), "", "  ")
	if err != nil {
		return fmt.Errorf("encode recipe book: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil && !errors.Is(err, os.ErrExist) {
		return fmt.Errorf("create dirs: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer func() {
		if err != nil {
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(append(data, '\n')); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write recipe book: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close recipe book: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace recipe book: %w", err)
	}

	applog.Debug(ctx, "recipe book saved to file", "path", s.path)
	return nil
}
