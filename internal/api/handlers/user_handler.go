package handlers

import (
	"Culinary-Alchemy/domain"
	"Culinary-Alchemy/internal/api/presenters"
	"Culinary-Alchemy/pkg/user"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type (
	UserHandler interface {
		GetUsers(c *fiber.Ctx) error
		GetUserByID(c *fiber.Ctx) error
		GetUserByUsername(c *fiber.Ctx) error
		GetUserByEmail(c *fiber.Ctx) error
		UpdateUser(c *fiber.Ctx) error
		DeleteUser(c *fiber.Ctx) error
	}

	userHandler struct {
		userService user.UserService
		validator   *validator.Validate
	}
)

func NewUserHandler(userService user.UserService, validator *validator.Validate) UserHandler {
	return &userHandler{
		userService: userService,
		validator:   validator,
	}
}

func (h *userHandler) GetUsers(c *fiber.Ctx) error {
	page, err := parsePagination(c)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidPagination, err)
	}

	res, err := h.userService.GetUsers(c.Context(), page)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedGetUsers, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUsers)
}

func (h *userHandler) GetUserByID(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidID, err)
	}

	res, err := h.userService.GetUserByID(c.Context(), id)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedGetUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *userHandler) GetUserByUsername(c *fiber.Ctx) error {
	username := c.Params("username")
	if username == "" {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoParamsProvided, nil)
	}

	res, err := h.userService.GetUserByUsername(c.Context(), username)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedGetUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *userHandler) GetUserByEmail(c *fiber.Ctx) error {
	req := new(domain.GetUserByEmailRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetUser, err)
	}

	res, err := h.userService.GetUserByEmail(c.Context(), req.Email)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedGetUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetUser)
}

func (h *userHandler) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidID, err)
	}
	if !canActOn(c, id) {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MesaageUserNotAllowed, domain.ErrUserNotAllowed)
	}

	req := new(domain.UpdateUserRequest)
	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if file, err := c.FormFile("avatar"); err == nil {
		req.AvatarFile = file
	}

	if req.IsEmpty() {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageNoParamsProvided, nil)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateUser, err)
	}

	res, err := h.userService.UpdateUser(c.Context(), id, *req)
	if err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedUpdateUser, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateUser)
}

func (h *userHandler) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c, "id")
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageInvalidID, err)
	}
	if !canActOn(c, id) {
		return presenters.ErrorResponse(c, fiber.StatusForbidden, domain.MesaageUserNotAllowed, domain.ErrUserNotAllowed)
	}

	if err := h.userService.DeleteUser(c.Context(), id); err != nil {
		return presenters.ErrorResponse(c, presenters.StatusFromError(err, fiber.StatusInternalServerError), domain.MessageFailedDeleteUser, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteUser)
}
