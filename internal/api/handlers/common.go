package handlers

import (
	"Culinary-Alchemy/domain"
	"Culinary-Alchemy/internal/utils"
	"strconv"

	"github.com/gofiber/fiber/v2"
)

// parsePagination reads limit and offset. Missing values take the defaults; present values
// must be integers with 1 <= limit <= PAGINATION_MAX_LIMIT and offset >= 0.
func parsePagination(c *fiber.Ctx) (domain.Pagination, error) {
	page := domain.Pagination{Limit: domain.DefaultPageLimit}
	maxLimit := utils.GetConfigInt("PAGINATION_MAX_LIMIT", domain.DefaultPageLimit)

	if raw := c.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxLimit {
			return domain.Pagination{}, domain.ErrInvalidPagination
		}
		page.Limit = limit
	}

	if raw := c.Query("offset"); raw != "" {
		offset, err := strconv.Atoi(raw)
		if err != nil || offset < 0 {
			return domain.Pagination{}, domain.ErrInvalidPagination
		}
		page.Offset = offset
	}

	return page, nil
}

func parseID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.ErrInvalidID
	}
	return uint(id), nil
}

// canActOn reports whether the authenticated caller is ownerID or an admin.
func canActOn(c *fiber.Ctx, ownerID uint) bool {
	if role, _ := c.Locals("role").(string); role == domain.RoleAdmin {
		return true
	}
	userID, ok := c.Locals("user_id").(uint)
	return ok && userID == ownerID
}
