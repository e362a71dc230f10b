package recipe

import (
	"Culinary-Alchemy/domain"
	"Culinary-Alchemy/entities"
	"Culinary-Alchemy/internal/utils"
	"Culinary-Alchemy/pkg/catalog"
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2/log"
)

type (
	RecipeService interface {
		CreateRecipe(ctx context.Context, fields domain.RecipeFields, images []domain.RecipeImage, mealTypeIDs, dietaryIDs []uint) (domain.RecipeDetail, error)
		DeleteRecipe(ctx context.Context, id uint) error
		RecipeOwner(ctx context.Context, id uint) (uint, error)
		GetRecipeByID(ctx context.Context, id uint) (domain.RecipeDetail, error)
		GetRecipes(ctx context.Context, page domain.Pagination) (domain.RecipeListResponse, error)
	}

	recipeService struct {
		recipeRepository RecipeRepository
		now              func() time.Time
	}
)

func NewRecipeService(recipeRepository RecipeRepository) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		now:              time.Now,
	}
}

// CreateRecipe writes the recipe, its images and both link sets in one transaction and
// returns the committed aggregate. Nothing is persisted when any step fails.
func (s *recipeService) CreateRecipe(ctx context.Context, fields domain.RecipeFields, images []domain.RecipeImage, mealTypeIDs, dietaryIDs []uint) (domain.RecipeDetail, error) {
	if strings.TrimSpace(fields.Title) == "" {
		return domain.RecipeDetail{}, &domain.ConstraintViolationError{Entity: domain.EntityRecipe, Constraint: "title required"}
	}

	mealTypeIDs = uniqueIDs(mealTypeIDs)
	dietaryIDs = uniqueIDs(dietaryIDs)
	recipe := toRecipeEntity(fields)

	var created *entities.Recipe
	err := s.recipeRepository.Transaction(ctx, func(repo RecipeRepository) error {
		active, err := repo.IsActiveUser(ctx, fields.UserID)
		if err != nil {
			return utils.StoreError(domain.EntityUser, err)
		}
		if !active {
			return &domain.ReferentialIntegrityError{Entity: domain.EntityUser, IDs: []uint{fields.UserID}}
		}

		if err := repo.CreateRecipe(ctx, recipe); err != nil {
			return utils.StoreError(domain.EntityRecipe, err)
		}

		if len(images) > 0 {
			rows := make([]entities.Image, 0, len(images))
			for _, img := range images {
				rows = append(rows, entities.Image{
					DefaultURL: img.DefaultURL,
					BlurURL:    img.BlurURL,
					OwnerID:    recipe.ID,
				})
			}
			if err := repo.CreateImages(ctx, rows); err != nil {
				return utils.StoreError(domain.EntityRecipe, err)
			}
		}

		if len(mealTypeIDs) > 0 {
			missing, err := repo.MissingMealTypeIDs(ctx, mealTypeIDs)
			if err != nil {
				return utils.StoreError(domain.EntityMealType, err)
			}
			if len(missing) > 0 {
				return &domain.ReferentialIntegrityError{Entity: domain.EntityMealType, IDs: missing}
			}
			if err := repo.AddMealTypes(ctx, recipe.ID, mealTypeIDs); err != nil {
				return utils.StoreError(domain.EntityMealType, err)
			}
		}

		if len(dietaryIDs) > 0 {
			missing, err := repo.MissingDietaryIDs(ctx, dietaryIDs)
			if err != nil {
				return utils.StoreError(domain.EntityDietary, err)
			}
			if len(missing) > 0 {
				return &domain.ReferentialIntegrityError{Entity: domain.EntityDietary, IDs: missing}
			}
			if err := repo.AddDietaries(ctx, recipe.ID, dietaryIDs); err != nil {
				return utils.StoreError(domain.EntityDietary, err)
			}
		}

		created, err = repo.GetActiveRecipeByID(ctx, recipe.ID)
		if err != nil {
			return utils.StoreError(domain.EntityRecipe, err)
		}
		return nil
	})
	if err != nil {
		err = utils.StoreError(domain.EntityRecipe, err)
		log.Errorw("create recipe rolled back", "user_id", fields.UserID, "error", err)
		return domain.RecipeDetail{}, err
	}

	log.Infow("recipe created",
		"recipe_id", created.ID,
		"user_id", created.UserID,
		"images", len(created.Images),
		"meal_types", len(created.MealTypes),
		"dietaries", len(created.Dietaries),
	)
	return ToRecipeDetail(created), nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, id uint) error {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return utils.StoreError(domain.EntityRecipe, err)
	}
	if recipe.EndDate != nil {
		return &domain.AlreadyDeletedError{Entity: domain.EntityRecipe, ID: id}
	}

	ended, err := s.recipeRepository.EndRecipe(ctx, id, s.now())
	if err != nil {
		return utils.StoreError(domain.EntityRecipe, err)
	}
	if !ended {
		return &domain.AlreadyDeletedError{Entity: domain.EntityRecipe, ID: id}
	}

	log.Infow("recipe deleted", "recipe_id", id)
	return nil
}

// RecipeOwner returns the author of a recipe in any lifecycle state.
func (s *recipeService) RecipeOwner(ctx context.Context, id uint) (uint, error) {
	recipe, err := s.recipeRepository.GetRecipeByID(ctx, id)
	if err != nil {
		return 0, err
	}
	return recipe.UserID, nil
}

func (s *recipeService) GetRecipeByID(ctx context.Context, id uint) (domain.RecipeDetail, error) {
	recipe, err := s.recipeRepository.GetActiveRecipeByID(ctx, id)
	if err != nil {
		return domain.RecipeDetail{}, err
	}
	return ToRecipeDetail(recipe), nil
}

func (s *recipeService) GetRecipes(ctx context.Context, page domain.Pagination) (domain.RecipeListResponse, error) {
	page = page.Normalize()

	recipes, total, err := s.recipeRepository.GetActiveRecipes(ctx, page.Limit, page.Offset)
	if err != nil {
		return domain.RecipeListResponse{}, err
	}

	details := make([]domain.RecipeDetail, 0, len(recipes))
	for i := range recipes {
		details = append(details, ToRecipeDetail(&recipes[i]))
	}

	return domain.RecipeListResponse{
		Recipes:    details,
		Total:      total,
		Pagination: page,
	}, nil
}

// uniqueIDs drops repeated ids and keeps first-seen order.
func uniqueIDs(ids []uint) []uint {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[uint]struct{}, len(ids))
	result := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func toRecipeEntity(fields domain.RecipeFields) *entities.Recipe {
	steps := make([]entities.RecipeStep, 0, len(fields.Steps))
	for _, step := range fields.Steps {
		steps = append(steps, entities.RecipeStep{
			Description:     step.Description,
			DurationMinutes: step.DurationMinutes,
		})
	}

	recipe := &entities.Recipe{
		UserID:          fields.UserID,
		Title:           fields.Title,
		Description:     fields.Description,
		CookingTime:     fields.CookingTime,
		EquipmentNeeded: fields.EquipmentNeeded,
		Ingredients:     fields.Ingredients,
		Servings:        fields.Servings,
		Steps:           steps,
		AuthorsNotes:    fields.AuthorsNotes,
		Spices:          fields.Spices,
	}
	if fields.YoutubeLink != "" {
		link := fields.YoutubeLink
		recipe.YoutubeLink = &link
	}
	return recipe
}

func ToRecipeDetail(recipe *entities.Recipe) domain.RecipeDetail {
	steps := make([]domain.RecipeStep, 0, len(recipe.Steps))
	for _, step := range recipe.Steps {
		steps = append(steps, domain.RecipeStep{
			Description:     step.Description,
			DurationMinutes: step.DurationMinutes,
		})
	}

	images := make([]domain.Image, 0, len(recipe.Images))
	for _, img := range recipe.Images {
		images = append(images, domain.Image{
			ID:         img.ID,
			DefaultURL: img.DefaultURL,
			BlurURL:    img.BlurURL,
		})
	}

	detail := domain.RecipeDetail{
		ID:              recipe.ID,
		UserID:          recipe.UserID,
		Title:           recipe.Title,
		Description:     recipe.Description,
		CookingTime:     recipe.CookingTime,
		EquipmentNeeded: recipe.EquipmentNeeded,
		Ingredients:     recipe.Ingredients,
		Servings:        recipe.Servings,
		Steps:           steps,
		AuthorsNotes:    recipe.AuthorsNotes,
		Spices:          recipe.Spices,
		CreatedAt:       recipe.CreatedAt,
		Images:          images,
		MealTypes:       catalog.ToMealTypes(recipe.MealTypes),
		Dietaries:       catalog.ToDietaries(recipe.Dietaries),
	}
	if recipe.YoutubeLink != nil {
		detail.YoutubeLink = *recipe.YoutubeLink
	}
	return detail
}
