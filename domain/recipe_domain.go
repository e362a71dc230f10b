package domain

import (
	"time"
)

var (
	MessageSuccessGetRecipes      = "success get recipes"
	MessageSuccessGetRecipeDetail = "success get recipe detail"
	MessageSuccessCreateRecipe    = "recipe created successfully"
	MessageSuccessDeleteRecipe    = "recipe deleted successfully"
	MessageSuccessUploadImage     = "image uploaded successfully"

	MessageFailedGetRecipes      = "failed to get recipes"
	MessageFailedGetRecipeDetail = "failed to get recipe detail"
	MessageFailedCreateRecipe    = "failed to create recipe"
	MessageFailedDeleteRecipe    = "failed to delete recipe"
	MessageFailedUploadImage     = "failed to upload image"
)

type (
	RecipeStep struct {
		Description     string `json:"description" validate:"required"`
		DurationMinutes int    `json:"duration_minutes,omitempty" validate:"omitempty,min=0"`
	}

	// RecipeImage is an already stored asset pair.
	RecipeImage struct {
		DefaultURL string `json:"default_url" validate:"required,url"`
		BlurURL    string `json:"blur_url" validate:"omitempty,url"`
	}

	RecipeFields struct {
		UserID          uint         `json:"user_id"`
		Title           string       `json:"title"`
		Description     string       `json:"description"`
		CookingTime     int          `json:"cooking_time"`
		EquipmentNeeded []string     `json:"equipment_needed"`
		Ingredients     []string     `json:"ingredients"`
		Servings        int          `json:"servings"`
		Steps           []RecipeStep `json:"steps"`
		AuthorsNotes    string       `json:"authors_notes"`
		Spices          []string     `json:"spices"`
		YoutubeLink     string       `json:"youtube_link,omitempty"`
	}

	CreateRecipeRequest struct {
		Title           string        `json:"title" validate:"required,min=3,max=100"`
		Description     string        `json:"description" validate:"omitempty,max=2000"`
		CookingTime     int           `json:"cooking_time" validate:"omitempty,min=0"`
		EquipmentNeeded []string      `json:"equipment_needed" validate:"omitempty,dive,required"`
		Ingredients     []string      `json:"ingredients" validate:"omitempty,dive,required"`
		Servings        int           `json:"servings" validate:"omitempty,min=0"`
		Steps           []RecipeStep  `json:"steps" validate:"omitempty,dive"`
		AuthorsNotes    string        `json:"authors_notes" validate:"omitempty,max=2000"`
		Spices          []string      `json:"spices" validate:"omitempty,dive,required"`
		YoutubeLink     string        `json:"youtube_link" validate:"omitempty,url"`
		Images          []RecipeImage `json:"images" validate:"omitempty,dive"`
		MealTypeIDs     []uint        `json:"meal_type_ids" validate:"omitempty,dive,min=1"`
		DietaryIDs      []uint        `json:"dietary_ids" validate:"omitempty,dive,min=1"`
	}

	Image struct {
		ID         uint   `json:"id"`
		DefaultURL string `json:"default_url"`
		BlurURL    string `json:"blur_url"`
	}

	RecipeDetail struct {
		ID              uint         `json:"id"`
		UserID          uint         `json:"user_id"`
		Title           string       `json:"title"`
		Description     string       `json:"description"`
		CookingTime     int          `json:"cooking_time"`
		EquipmentNeeded []string     `json:"equipment_needed"`
		Ingredients     []string     `json:"ingredients"`
		Servings        int          `json:"servings"`
		Steps           []RecipeStep `json:"steps"`
		AuthorsNotes    string       `json:"authors_notes"`
		Spices          []string     `json:"spices"`
		YoutubeLink     string       `json:"youtube_link,omitempty"`
		CreatedAt       time.Time    `json:"created_at"`
		Images          []Image      `json:"images"`
		MealTypes       []MealType   `json:"meal_types"`
		Dietaries       []Dietary    `json:"dietaries"`
	}

	RecipeListResponse struct {
		Recipes    []RecipeDetail `json:"recipes"`
		Total      int64          `json:"total"`
		Pagination Pagination     `json:"pagination"`
	}
)

// Fields splits the request into the scalar part the orchestrator persists on the recipe row.
func (r CreateRecipeRequest) Fields(userID uint) RecipeFields {
	return RecipeFields{
		UserID:          userID,
		Title:           r.Title,
		Description:     r.Description,
		CookingTime:     r.CookingTime,
		EquipmentNeeded: r.EquipmentNeeded,
		Ingredients:     r.Ingredients,
		Servings:        r.Servings,
		Steps:           r.Steps,
		AuthorsNotes:    r.AuthorsNotes,
		Spices:          r.Spices,
		YoutubeLink:     r.YoutubeLink,
	}
}
