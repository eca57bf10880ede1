package handlers

import (
	"errors"
	"log"

	apperr "coinkeep/internal/errors"
	"coinkeep/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// respondError maps a domain error onto the HTTP taxonomy: not-found,
// conflict, forbidden, bad-request. Anything unrecognised is a 500.
func respondError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, apperr.ErrUserNotFound),
		errors.Is(err, apperr.ErrWalletNotFound),
		errors.Is(err, apperr.ErrSenderWalletNotFound),
		errors.Is(err, apperr.ErrRecipientWalletNotFound):
		return utils.NotFound(c, err.Error())

	case errors.Is(err, apperr.ErrEmailTaken),
		errors.Is(err, apperr.ErrWalletLimit),
		errors.Is(err, apperr.ErrInsufficientBalance):
		return utils.Conflict(c, err.Error())

	case errors.Is(err, apperr.ErrWalletOwnership),
		errors.Is(err, apperr.ErrSenderOwnership),
		errors.Is(err, apperr.ErrNotAdmin):
		return utils.Forbidden(c, err.Error())

	case errors.Is(err, apperr.ErrInvalidCredentials):
		return utils.Unauthorized(c, err.Error())

	case errors.Is(err, apperr.ErrNegativeAmount),
		errors.Is(err, apperr.ErrInvalidEmail),
		errors.Is(err, apperr.ErrIncompleteRequest):
		return utils.BadRequest(c, err.Error())

	default:
		log.Printf("unhandled error: %v", err)
		return utils.InternalError(c, "internal server error")
	}
}
