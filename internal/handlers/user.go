// Package handlers contains the fiber HTTP handlers. They parse the
// request, call the matching service operation and translate the
// result or error into a JSON response.
package handlers

import (
	"coinkeep/internal/services/user"
	"coinkeep/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type UserHandler struct {
	userService user.Service
}

func NewUserHandler(userService user.Service) *UserHandler {
	return &UserHandler{userService: userService}
}

// Register creates a user and returns the API key used for every
// subsequent call.
func (h *UserHandler) Register(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}
	if input.Password == "" {
		return utils.BadRequest(c, "password is required")
	}

	created, err := h.userService.Register(c.Context(), input.Email, input.Password)
	if err != nil {
		return respondError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"email":   created.Email,
		"api_key": created.APIKey,
	})
}

// Login verifies credentials and returns a short-lived access token.
func (h *UserHandler) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "invalid request format")
	}

	token, err := h.userService.Login(c.Context(), input.Email, input.Password)
	if err != nil {
		return respondError(c, err)
	}

	return utils.Success(c, fiber.Map{
		"access_token": token,
		"token_type":   "Bearer",
	})
}
