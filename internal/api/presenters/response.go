package presenters

import (
	"Culinary-Alchemy/domain"
	"errors"

	"github.com/gofiber/fiber/v2"
)

type (
	Response struct {
		Status  bool   `json:"status"`
		Message string `json:"message"`
		Data    any    `json:"data,omitempty"`
		Error   string `json:"error,omitempty"`
		Details any    `json:"details,omitempty"`
	}

	integrityDetails struct {
		Entity string `json:"entity"`
		IDs    []uint `json:"ids"`
	}
)

func SuccessResponse(c *fiber.Ctx, data any, statusCode int, message string) error {
	return c.Status(statusCode).JSON(Response{
		Status:  true,
		Message: message,
		Data:    data,
	})
}

func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	res := Response{
		Status:  false,
		Message: message,
	}
	if err != nil {
		res.Error = err.Error()
	}

	var refErr *domain.ReferentialIntegrityError
	if errors.As(err, &refErr) {
		res.Details = integrityDetails{Entity: refErr.Entity, IDs: refErr.IDs}
	}

	return c.Status(statusCode).JSON(res)
}

// StatusFromError maps store and lifecycle errors to an HTTP status. Anything unknown gets
// fallback.
func StatusFromError(err error, fallback int) int {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyDeleted):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrReferentialIntegrity):
		return fiber.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrConstraintViolation):
		return fiber.StatusConflict
	case errors.Is(err, domain.ErrTransactionAbort):
		return fiber.StatusServiceUnavailable
	case errors.Is(err, domain.ErrUserNotAllowed):
		return fiber.StatusForbidden
	case errors.Is(err, domain.ErrInvalidImage),
		errors.Is(err, domain.ErrInvalidPagination),
		errors.Is(err, domain.ErrInvalidID):
		return fiber.StatusBadRequest
	}
	return fallback
}
