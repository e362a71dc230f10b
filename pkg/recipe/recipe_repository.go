package recipe

import (
	"Culinary-Alchemy/domain"
	"Culinary-Alchemy/entities"
	"Culinary-Alchemy/pkg/catalog"
	"context"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	RecipeRepository interface {
		// Transaction runs fn against a repository bound to a single transaction.
		// fn returning an error or panicking rolls back every write made through it.
		Transaction(ctx context.Context, fn func(repo RecipeRepository) error) error

		CreateRecipe(ctx context.Context, recipe *entities.Recipe) error
		CreateImages(ctx context.Context, images []entities.Image) error
		AddMealTypes(ctx context.Context, recipeID uint, mealTypeIDs []uint) error
		AddDietaries(ctx context.Context, recipeID uint, dietaryIDs []uint) error
		MissingMealTypeIDs(ctx context.Context, ids []uint) ([]uint, error)
		MissingDietaryIDs(ctx context.Context, ids []uint) ([]uint, error)
		IsActiveUser(ctx context.Context, userID uint) (bool, error)

		GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetActiveRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error)
		GetActiveRecipes(ctx context.Context, limit, offset int) ([]entities.Recipe, int64, error)
		EndRecipe(ctx context.Context, id uint, endDate time.Time) (bool, error)
	}

	recipeRepository struct {
		db      *gorm.DB
		catalog catalog.CatalogRepository
	}
)

func NewRecipeRepository(db *gorm.DB) RecipeRepository {
	return &recipeRepository{
		db:      db,
		catalog: catalog.NewCatalogRepository(db),
	}
}

func (r *recipeRepository) Transaction(ctx context.Context, fn func(repo RecipeRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewRecipeRepository(tx))
	})
}

func (r *recipeRepository) CreateRecipe(ctx context.Context, recipe *entities.Recipe) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Create(recipe).Error
}

func (r *recipeRepository) CreateImages(ctx context.Context, images []entities.Image) error {
	if len(images) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).Create(&images).Error
}

func (r *recipeRepository) AddMealTypes(ctx context.Context, recipeID uint, mealTypeIDs []uint) error {
	if len(mealTypeIDs) == 0 {
		return nil
	}
	links := make([]entities.RecipeMealType, 0, len(mealTypeIDs))
	for _, id := range mealTypeIDs {
		links = append(links, entities.RecipeMealType{RecipeID: recipeID, MealTypeID: id})
	}
	return r.db.WithContext(ctx).Create(&links).Error
}

func (r *recipeRepository) AddDietaries(ctx context.Context, recipeID uint, dietaryIDs []uint) error {
	if len(dietaryIDs) == 0 {
		return nil
	}
	links := make([]entities.RecipeDietary, 0, len(dietaryIDs))
	for _, id := range dietaryIDs {
		links = append(links, entities.RecipeDietary{RecipeID: recipeID, DietaryID: id})
	}
	return r.db.WithContext(ctx).Create(&links).Error
}

func (r *recipeRepository) MissingMealTypeIDs(ctx context.Context, ids []uint) ([]uint, error) {
	return r.catalog.MissingMealTypeIDs(ctx, ids)
}

func (r *recipeRepository) MissingDietaryIDs(ctx context.Context, ids []uint) ([]uint, error) {
	return r.catalog.MissingDietaryIDs(ctx, ids)
}

func (r *recipeRepository) IsActiveUser(ctx context.Context, userID uint) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&entities.User{}).
		Where("id = ? AND is_deleted = ?", userID, false).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// GetRecipeByID returns the row whatever its lifecycle state.
func (r *recipeRepository) GetRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.EntityRecipe, "id", id)
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetActiveRecipeByID(ctx context.Context, id uint) (*entities.Recipe, error) {
	var recipe entities.Recipe
	if err := r.withAssociations(ctx).
		Where("id = ? AND end_date IS NULL", id).
		First(&recipe).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.NewNotFoundError(domain.EntityRecipe, "id", id)
		}
		return nil, err
	}
	return &recipe, nil
}

func (r *recipeRepository) GetActiveRecipes(ctx context.Context, limit, offset int) ([]entities.Recipe, int64, error) {
	var recipes []entities.Recipe
	var count int64

	if err := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("end_date IS NULL").
		Count(&count).Error; err != nil {
		return nil, 0, err
	}

	if err := r.withAssociations(ctx).
		Where("end_date IS NULL").
		Order("id asc").
		Limit(limit).
		Offset(offset).
		Find(&recipes).Error; err != nil {
		return nil, 0, err
	}

	return recipes, count, nil
}

// EndRecipe stamps end_date only while it is still null. False means another caller ended
// the recipe first.
func (r *recipeRepository) EndRecipe(ctx context.Context, id uint, endDate time.Time) (bool, error) {
	result := r.db.WithContext(ctx).
		Model(&entities.Recipe{}).
		Where("id = ? AND end_date IS NULL", id).
		Update("end_date", endDate)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected == 1, nil
}

func (r *recipeRepository) withAssociations(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("images.id asc")
		}).
		Preload("MealTypes").
		Preload("Dietaries")
}
