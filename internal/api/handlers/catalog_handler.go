package handlers

import (
	"Culinary-Alchemy/domain"
	"Culinary-Alchemy/internal/api/presenters"
	"Culinary-Alchemy/pkg/catalog"

	"github.com/gofiber/fiber/v2"
)

type (
	CatalogHandler interface {
		GetMealTypes(c *fiber.Ctx) error
		GetDietaries(c *fiber.Ctx) error
	}

	catalogHandler struct {
		catalogService catalog.CatalogService
	}
)

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &catalogHandler{catalogService: catalogService}
}

func (h *catalogHandler) GetMealTypes(c *fiber.Ctx) error {
	res, err := h.catalogService.GetMealTypes(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetMealTypes, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetMealTypes)
}

func (h *catalogHandler) GetDietaries(c *fiber.Ctx) error {
	res, err := h.catalogService.GetDietaries(c.Context())
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusInternalServerError, domain.MessageFailedGetDietaries, err)
	}
	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetDietaries)
}
