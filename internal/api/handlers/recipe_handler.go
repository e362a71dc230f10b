package handlers

import (
	"Culinary-Alchemy/domain"
	"Culinary-Alchemy/internal/api/presenters"
	"Culinary-Alchemy/pkg/recipe"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	RecipeHandler interface {
		GetRecipes(c *fiber.Ctx) error
		GetRecipeByID(c *fiber.Ctx) error
		CreateRecipe(c *fiber.Ctx) error
		DeleteRecipe(c *fiber.Ctx) error
	}

	recipeHandler struct {
		recipeService recipe.RecipeService
		validator     *validator.Validate
	}
)

func NewRecipeHandler(recipeService recipe.RecipeService, validator *validator.Validate) RecipeHandler {
	return &recipeHandler{
		recipeService: recipeService,
		validator:     validator,
	}
}

func (h *recipeHandler) GetRecipes(c *fiber.Ctx) error {
	page, err := parsePagination(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidPagination, err)
	}

	res, err := h.recipeService.GetRecipes(c.Context(), page)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedGetRecipes, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipes)
}

func (h *recipeHandler) GetRecipeByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidID, err)
	}

	res, err := h.recipeService.GetRecipeByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedGetRecipeDetail, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetRecipeDetail)
}

func (h *recipeHandler) CreateRecipe(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(uint)
	req := new(domain.CreateRecipeRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateRecipe, err)
	}

	res, err := h.recipeService.CreateRecipe(c.Context(), req.Fields(userID), req.Images, req.MealTypeIDs, req.DietaryIDs)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedCreateRecipe, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateRecipe)
}

func (h *recipeHandler) DeleteRecipe(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidID, err)
	}

	ownerID, err := h.recipeService.RecipeOwner(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedDeleteRecipe, err)
	}
	if !canActOn(c, ownerID) {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MesaageUserNotAllowed, domain.ErrUserNotAllowed)
	}

	if err := h.recipeService.DeleteRecipe(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedDeleteRecipe, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteRecipe)
}
