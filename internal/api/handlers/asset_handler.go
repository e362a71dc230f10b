package handlers

import (
	"Culinary-Alchemy/domain"
	"Culinary-Alchemy/internal/api/presenters"
	"Culinary-Alchemy/internal/utils/storage"

	"github.com/gofiber/fiber/v2"
)

const recipeImageFolder = "recipes"

type (
	AssetHandler interface {
		UploadImage(c *fiber.Ctx) error
	}

	assetHandler struct {
		s3 storage.AwsS3
	}
)

func NewAssetHandler(s3 storage.AwsS3) AssetHandler {
	return &assetHandler{s3: s3}
}

// UploadImage stores the multipart "image" file and its blurred placeholder. The returned
// pair is what recipe creation expects in its images list.
func (h *assetHandler) UploadImage(c *fiber.Ctx) error {
	file, err := c.FormFile("image")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	res, err := h.s3.UploadImage(c.Context(), file, recipeImageFolder)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusBadGateway), domain.MessageFailedUploadImage, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessUploadImage)
}
