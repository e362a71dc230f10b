package catalog

import (
	"Culinary-Alchemy/domain"
	"Culinary-Alchemy/entities"
	"context"
)

type (
	CatalogService interface {
		GetMealTypes(ctx context.Context) ([]domain.MealType, error)
		GetDietaries(ctx context.Context) ([]domain.Dietary, error)
	}

	catalogService struct {
		catalogRepository CatalogRepository
	}
)

func NewCatalogService(catalogRepository CatalogRepository) CatalogService {
	return &catalogService{catalogRepository: catalogRepository}
}

func (s *catalogService) GetMealTypes(ctx context.Context) ([]domain.MealType, error) {
	mealTypes, err := s.catalogRepository.GetMealTypes(ctx)
	if err != nil {
		return nil, err
	}
	return ToMealTypes(mealTypes), nil
}

func (s *catalogService) GetDietaries(ctx context.Context) ([]domain.Dietary, error) {
	dietaries, err := s.catalogRepository.GetDietaries(ctx)
	if err != nil {
		return nil, err
	}
	return ToDietaries(dietaries), nil
}

func ToMealTypes(mealTypes []entities.MealType) []domain.MealType {
	result := make([]domain.MealType, 0, len(mealTypes))
	for _, m := range mealTypes {
		result = append(result, domain.MealType{ID: m.ID, Title: m.Title, Description: m.Description})
	}
	return result
}

func ToDietaries(dietaries []entities.Dietary) []domain.Dietary {
	result := make([]domain.Dietary, 0, len(dietaries))
	for _, d := range dietaries {
		result = append(result, domain.Dietary{ID: d.ID, Title: d.Title, Description: d.Description})
	}
	return result
}
