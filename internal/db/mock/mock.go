package mock

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"larder/internal/db"
	"larder/internal/domain"
	applog "larder/internal/log"
	"larder/internal/recipe"
)

// DSN is the shared in-memory database New opens.
const DSN = "file:larder-mock?mode=memory&cache=shared"

// New returns an in-memory sqlite database seeded with a sample pantry and recipes.
func New(ctx context.Context) (*gorm.DB, error) {
	return Open(ctx, DSN)
}

// Open is New for a caller-chosen DSN, so tests can keep their databases apart.
func Open(ctx context.Context, dsn string) (*gorm.DB, error) {
	applog.Debug(ctx, "initialising mock database", "dsn", dsn)

	database, err := gorm.Open(sqlite.Open(dsn), db.GormConfig(logger.Silent))
	if err != nil {
		return nil, err
	}

	if err := db.AutoMigrate(database); err != nil {
		return nil, errors.Join(err, db.Close(database))
	}

	if err := seed(ctx, database); err != nil {
		return nil, errors.Join(err, db.Close(database))
	}

	applog.Debug(ctx, "mock database ready")
	return database, nil
}

func seed(ctx context.Context, database *gorm.DB) error {
	applog.Debug(ctx, "seeding mock database")

	book, err := SampleBook()
	if err != nil {
		return err
	}

	store, err := db.NewStore(database)
	if err != nil {
		return err
	}
	if err := store.Save(ctx, book); err != nil {
		return fmt.Errorf("seed mock database: %w", err)
	}

	applog.Debug(ctx, "mock database seeded")
	return nil
}

// SampleBook returns the book the mock database is seeded with: a pantry that
// covers the pancakes but not the omelette.
func SampleBook() (*recipe.Book, error) {
	pantry := []domain.Ingredient{
		domain.MustIngredient("Flour", 500, domain.UnitGram),
		domain.MustIngredient("Milk", 1, domain.UnitLiter),
		domain.MustIngredient("Eggs", 2, domain.UnitPiece),
		domain.MustIngredient("Butter", 250, domain.UnitGram),
	}

	pancakes, err := domain.NewRecipe(1, domain.MustParseName("Pancakes"),
		[]domain.Ingredient{
			domain.MustIngredient("Flour", 200, domain.UnitGram),
			domain.MustIngredient("Milk", 300, domain.UnitMilliliter),
			domain.MustIngredient("Eggs", 2, domain.UnitPiece),
		},
		[]domain.Step{
			"Whisk flour, milk and eggs into a smooth batter.",
			"Rest the batter for 10 minutes.",
			"Fry ladlefuls in a buttered pan until golden on both sides.",
		},
	)
	if err != nil {
		return nil, err
	}

	omelette, err := domain.NewRecipe(2, domain.MustParseName("Cheese Omelette"),
		[]domain.Ingredient{
			domain.MustIngredient("Eggs", 3, domain.UnitPiece),
			domain.MustIngredient("Cheese", 50, domain.UnitGram),
			domain.MustIngredient("Butter", 1, domain.UnitTablespoon),
		},
		[]domain.Step{
			"Beat the eggs with a pinch of salt.",
			"Melt the butter and pour in the eggs.",
			"Scatter the cheese, fold and serve.",
		},
	)
	if err != nil {
		return nil, err
	}

	return recipe.NewBookOf(pantry, []domain.Recipe{pancakes, omelette})
}
