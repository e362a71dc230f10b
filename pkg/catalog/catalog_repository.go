package catalog

import (
	"Culinary-Alchemy/entities"
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type (
	CatalogRepository interface {
		GetMealTypes(ctx context.Context) ([]entities.MealType, error)
		GetDietaries(ctx context.Context) ([]entities.Dietary, error)
		MissingMealTypeIDs(ctx context.Context, ids []uint) ([]uint, error)
		MissingDietaryIDs(ctx context.Context, ids []uint) ([]uint, error)
		EnsureMealTypes(ctx context.Context, mealTypes []entities.MealType) error
		EnsureDietaries(ctx context.Context, dietaries []entities.Dietary) error
	}

	catalogRepository struct {
		db *gorm.DB
	}
)

func NewCatalogRepository(db *gorm.DB) CatalogRepository {
	return &catalogRepository{db: db}
}

func (r *catalogRepository) GetMealTypes(ctx context.Context) ([]entities.MealType, error) {
	var mealTypes []entities.MealType
	if err := r.db.WithContext(ctx).Order("id asc").Find(&mealTypes).Error; err != nil {
		return nil, err
	}
	return mealTypes, nil
}

func (r *catalogRepository) GetDietaries(ctx context.Context) ([]entities.Dietary, error) {
	var dietaries []entities.Dietary
	if err := r.db.WithContext(ctx).Order("id asc").Find(&dietaries).Error; err != nil {
		return nil, err
	}
	return dietaries, nil
}

func (r *catalogRepository) MissingMealTypeIDs(ctx context.Context, ids []uint) ([]uint, error) {
	return r.missingIDs(ctx, &entities.MealType{}, ids)
}

func (r *catalogRepository) MissingDietaryIDs(ctx context.Context, ids []uint) ([]uint, error) {
	return r.missingIDs(ctx, &entities.Dietary{}, ids)
}

// missingIDs resolves the whole id set with one query and returns every id that has no
// row, in input order.
func (r *catalogRepository) missingIDs(ctx context.Context, model any, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var found []uint
	if err := r.db.WithContext(ctx).Model(model).Where("id IN ?", ids).Pluck("id", &found).Error; err != nil {
		return nil, err
	}

	existing := make(map[uint]struct{}, len(found))
	for _, id := range found {
		existing[id] = struct{}{}
	}

	var missing []uint
	for _, id := range ids {
		if _, ok := existing[id]; !ok {
			missing = append(missing, id)
			existing[id] = struct{}{}
		}
	}
	return missing, nil
}

func (r *catalogRepository) EnsureMealTypes(ctx context.Context, mealTypes []entities.MealType) error {
	if len(mealTypes) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "title"}}, DoNothing: true}).
		Create(&mealTypes).Error
}

func (r *catalogRepository) EnsureDietaries(ctx context.Context, dietaries []entities.Dietary) error {
	if len(dietaries) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "title"}}, DoNothing: true}).
		Create(&dietaries).Error
}
