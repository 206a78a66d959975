package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"larder/internal/config"
	"larder/internal/db"
	"larder/internal/db/mock"
	"larder/internal/domain"
	"larder/internal/jsonstore"
	applog "larder/internal/log"
	"larder/internal/recipe"
)

const usage = `usage: larder <command> [file]

commands:
  list            print every recipe
  cookable        print the recipes the pantry covers
  pantry          print the pantry
  import <file>   copy a JSON recipe book into the configured storage
  export <file>   write the configured recipe book to a JSON file`

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "larder: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	if len(args) == 0 {
		return errors.New(usage)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := applog.SetLevel(cfg.Logging.Level); err != nil {
		return err
	}

	storage, err := openStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	if closer, ok := storage.(io.Closer); ok {
		defer func() {
			if cerr := closer.Close(); cerr != nil {
				applog.Warn(ctx, "close storage", "error", cerr)
			}
		}()
	}

	command, rest := args[0], args[1:]
	switch command {
	case "list", "cookable", "pantry":
		model, err := loadModel(ctx, storage)
		if err != nil {
			return err
		}
		return show(model, command, out)
	case "import", "export":
		if len(rest) != 1 {
			return fmt.Errorf("%s needs exactly one file argument", command)
		}
		file, err := jsonstore.New(rest[0])
		if err != nil {
			return err
		}
		if command == "import" {
			return copyBook(ctx, file, storage, out)
		}
		return copyBook(ctx, storage, file, out)
	default:
		return fmt.Errorf("unknown command %q\n%s", command, usage)
	}
}

func openStorage(ctx context.Context, cfg config.Config) (recipe.Storage, error) {
	if cfg.Storage.Backend == config.BackendJSON {
		return jsonstore.New(cfg.Storage.Path)
	}

	if cfg.Database.UseMock {
		applog.Info(ctx, "using mock database")
		database, err := mock.New(ctx)
		if err != nil {
			return nil, fmt.Errorf("mock database: %w", err)
		}
		return db.NewStore(database)
	}

	database, err := db.Configure(cfg.Database)
	if err != nil {
		return nil, err
	}
	return db.NewStore(database)
}

// loadModel starts from an empty book when a JSON file does not exist yet.
func loadModel(ctx context.Context, storage recipe.Storage) (*recipe.Model, error) {
	book, err := storage.Load(ctx)
	if errors.Is(err, fs.ErrNotExist) {
		applog.Info(ctx, "no recipe book found, starting empty")
		return recipe.NewModel(nil), nil
	}
	if err != nil {
		return nil, err
	}
	return recipe.NewModel(book), nil
}

func show(model *recipe.Model, command string, out io.Writer) error {
	switch command {
	case "pantry":
		for _, ing := range model.RecipeBook().Ingredients() {
			fmt.Fprintln(out, ing)
		}
		return nil
	case "cookable":
		if err := model.UpdateFilteredRecipeList(model.InStock()); err != nil {
			return err
		}
	}

	for r := range model.FilteredRecipes() {
		fmt.Fprintln(out, r)
		for _, ing := range r.Ingredients() {
			fmt.Fprintf(out, "  - %s\n", describeNeed(model, ing))
		}
	}
	return nil
}

func describeNeed(model *recipe.Model, need domain.Ingredient) string {
	have := model.QuantityOf(need)
	if have.Covers(need.Quantity()) {
		return need.String()
	}
	return fmt.Sprintf("%s, have %s", need, have)
}

func copyBook(ctx context.Context, from, to recipe.Storage, out io.Writer) error {
	book, err := from.Load(ctx)
	if err != nil {
		return err
	}
	if err := to.Save(ctx, book); err != nil {
		return err
	}
	fmt.Fprintf(out, "Copied %d ingredients and %d recipes\n", len(book.Ingredients()), len(book.Recipes()))
	return nil
}
