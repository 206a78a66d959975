package db

import (
	"context"
	"errors"
	"fmt"

	"larder/internal/domain"
	applog "larder/internal/log"
	"larder/internal/recipe"
	"larder/models"

	"gorm.io/gorm"
)

// Compile-time interface check.
var _ recipe.Storage = (*Store)(nil)

// Store persists a whole recipe book through gorm. Every Save replaces all rows
// inside one transaction.
type Store struct {
	db *gorm.DB
}

// NewStore wraps a migrated database handle.
func NewStore(database *gorm.DB) (*Store, error) {
	if database == nil {
		return nil, fmt.Errorf("database handle is nil")
	}
	return &Store{db: database}, nil
}

// Close releases the database behind the store.
func (s *Store) Close() error {
	return Close(s.db)
}

// Save replaces the stored book with book.
func (s *Store) Save(ctx context.Context, book recipe.ReadOnlyBook) error {
	if recipe.IsNull(book) {
		return fmt.Errorf("save recipe book: %w", domain.ErrNullInput)
	}

	items := pantryRecords(book.Ingredients())
	recipes := recipeRecords(book.Recipes())

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, table := range []any{
			&models.RecipeStep{},
			&models.RecipeIngredient{},
			&models.Recipe{},
			&models.PantryItem{},
		} {
			if err := tx.Unscoped().Where("1 = 1").Delete(table).Error; err != nil {
				return fmt.Errorf("clear %T: %w", table, err)
			}
		}

		if len(items) > 0 {
			if err := tx.Create(&items).Error; err != nil {
				return fmt.Errorf("create pantry items: %w", err)
			}
		}

		if len(recipes) > 0 {
			if err := tx.Create(&recipes).Error; err != nil {
				return fmt.Errorf("create recipes: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("save recipe book: %w", err)
	}

	applog.Debug(ctx, "recipe book saved to database",
		"ingredients", len(items),
		"recipes", len(recipes),
	)
	return nil
}

// Load reads the stored book. Rows that fail validation make the whole load fail;
// every failure is reported.
func (s *Store) Load(ctx context.Context) (*recipe.Book, error) {
	var items []models.PantryItem
	if err := s.db.WithContext(ctx).Order("position asc").Find(&items).Error; err != nil {
		return nil, fmt.Errorf("load pantry items: %w", err)
	}

	byPosition := func(tx *gorm.DB) *gorm.DB {
		return tx.Order("position asc")
	}

	var recipes []models.Recipe
	if err := s.db.WithContext(ctx).
		Preload("Ingredients", byPosition).
		Preload("Steps", byPosition).
		Order("position asc").
		Find(&recipes).Error; err != nil {
		return nil, fmt.Errorf("load recipes: %w", err)
	}

	book, err := bookFromRecords(items, recipes)
	if err != nil {
		return nil, fmt.Errorf("load recipe book: %w", err)
	}

	applog.Debug(ctx, "recipe book loaded from database",
		"ingredients", len(items),
		"recipes", len(recipes),
	)
	return book, nil
}

func pantryRecords(ingredients []domain.Ingredient) []models.PantryItem {
	items := make([]models.PantryItem, 0, len(ingredients))
	for i, ing := range ingredients {
		items = append(items, models.PantryItem{
			Name:     ing.Name().String(),
			NameKey:  ing.Name().Key(),
			Position: i,
			Amount:   ing.Quantity().Amount(),
			Unit:     ing.Quantity().Unit().String(),
		})
	}
	return items
}

func recipeRecords(recipes []domain.Recipe) []models.Recipe {
	records := make([]models.Recipe, 0, len(recipes))
	for i, r := range recipes {
		record := models.Recipe{
			UID:      r.ID(),
			Name:     r.Name().String(),
			Position: i,
		}
		for j, ing := range r.Ingredients() {
			record.Ingredients = append(record.Ingredients, models.RecipeIngredient{
				Position: j,
				Name:     ing.Name().String(),
				Amount:   ing.Quantity().Amount(),
				Unit:     ing.Quantity().Unit().String(),
			})
		}
		for j, step := range r.Steps() {
			record.Steps = append(record.Steps, models.RecipeStep{
				Position:    j,
				Instruction: string(step),
			})
		}
		records = append(records, record)
	}
	return records
}

func bookFromRecords(items []models.PantryItem, records []models.Recipe) (*recipe.Book, error) {
	var errs []error

	pantry := make([]domain.Ingredient, 0, len(items))
	for _, item := range items {
		ing, err := domain.ParseIngredient(item.Name, item.Amount, item.Unit)
		if err != nil {
			errs = append(errs, fmt.Errorf("pantry item %d: %w", item.Position, err))
			continue
		}
		pantry = append(pantry, ing)
	}

	recipes := make([]domain.Recipe, 0, len(records))
	for _, record := range records {
		r, err := recipeFromRecord(record)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		recipes = append(recipes, r)
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return recipe.NewBookOf(pantry, recipes)
}

func recipeFromRecord(record models.Recipe) (domain.Recipe, error) {
	name, err := domain.ParseName(record.Name)
	if err != nil {
		return domain.Recipe{}, fmt.Errorf("recipe #%d: %w", record.UID, err)
	}

	var errs []error
	ingredients := make([]domain.Ingredient, 0, len(record.Ingredients))
	for _, row := range record.Ingredients {
		ing, err := domain.ParseIngredient(row.Name, row.Amount, row.Unit)
		if err != nil {
			errs = append(errs, fmt.Errorf("recipe %s: ingredient %d: %w", name, row.Position, err))
			continue
		}
		ingredients = append(ingredients, ing)
	}

	steps := make([]domain.Step, 0, len(record.Steps))
	for _, row := range record.Steps {
		step, err := domain.ParseStep(row.Instruction)
		if err != nil {
			errs = append(errs, fmt.Errorf("recipe %s: step %d: %w", name, row.Position+1, err))
			continue
		}
		steps = append(steps, step)
	}

	if err := errors.Join(errs...); err != nil {
		return domain.Recipe{}, err
	}
	return domain.NewRecipe(record.UID, name, ingredients, steps)
}
