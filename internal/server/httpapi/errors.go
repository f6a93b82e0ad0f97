package httpapi

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"topicboard/internal/common"
)

type errorResponse struct {
	Detail string `json:"detail"`
}

// unauthorized renders the single opaque 401 used for every credential
// failure on protected routes. The WWW-Authenticate header signals that
// a bearer token is expected.
func unauthorized(c *fiber.Ctx) error {
	c.Set(fiber.HeaderWWWAuthenticate, common.AuthScheme)
	return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{Detail: "Could not validate credentials"})
}

// renderError maps the sentinel errors from the service layer onto HTTP
// responses. Unknown errors stay opaque.
func renderError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, common.ErrorNotFound):
		return c.Status(fiber.StatusNotFound).JSON(errorResponse{Detail: "Not found"})

	case errors.Is(err, common.ErrorInvalidCredentials),
		errors.Is(err, common.ErrorLoginRequired):
		c.Set(fiber.HeaderWWWAuthenticate, common.AuthScheme)
		return c.Status(fiber.StatusUnauthorized).JSON(errorResponse{Detail: err.Error()})

	case errors.Is(err, common.ErrorNotContributor),
		errors.Is(err, common.ErrorNoPermission),
		errors.Is(err, common.ErrorForbidden):
		return c.Status(fiber.StatusForbidden).JSON(errorResponse{Detail: err.Error()})

	case errors.Is(err, common.ErrorAlreadyExists):
		// The conflict response carries WWW-Authenticate too, matching the
		// signup endpoint's historical behavior.
		c.Set(fiber.HeaderWWWAuthenticate, common.AuthScheme)
		return c.Status(fiber.StatusConflict).JSON(errorResponse{Detail: "User with this email already exists"})

	case errors.Is(err, common.ErrorInactiveUser):
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "Inactive user"})

	default:
		return c.Status(fiber.StatusInternalServerError).JSON(errorResponse{Detail: "Internal server error"})
	}
}
