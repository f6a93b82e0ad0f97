package httpapi

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"topicboard/internal/common"
	"topicboard/internal/server/auth"
	"topicboard/internal/server/models"
)

const currentUserKey = "currentUser"

// requireUser authenticates the request from its bearer token and loads the
// live account record. The token's permission claim is advisory only: the
// account is re-fetched by email on every request, so deactivation and
// privilege changes take effect immediately.
//
// Every failure collapses into the same opaque 401 so the response does not
// reveal whether the token was malformed, expired, or orphaned. The real
// reason is logged for diagnostics.
func (s *Server) requireUser(c *fiber.Ctx) error {
	header := c.Get(common.AuthHeaderName)
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, common.AuthScheme) {
		s.logger.Debug(c.UserContext(), "rejecting request", "reason", "missing bearer token")
		return unauthorized(c)
	}

	claims, err := auth.ParseToken(token, s.jwtSecret)
	if err != nil {
		s.logger.Debug(c.UserContext(), "rejecting request", "reason", err.Error())
		return unauthorized(c)
	}

	user, err := s.users.GetByEmail(c.UserContext(), claims.Subject)
	if err != nil {
		s.logger.Debug(c.UserContext(), "rejecting request", "reason", "account not found", "subject", claims.Subject)
		return unauthorized(c)
	}

	c.Locals(currentUserKey, user)
	return c.Next()
}

// requireActiveUser blocks deactivated accounts. Runs after requireUser.
func (s *Server) requireActiveUser(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil || !user.IsActive {
		return renderError(c, common.ErrorInactiveUser)
	}
	return c.Next()
}

// requireSuperuser gates administrative routes. Runs after requireActiveUser.
func (s *Server) requireSuperuser(c *fiber.Ctx) error {
	user := currentUser(c)
	if user == nil || !user.IsSuperuser {
		return renderError(c, common.ErrorForbidden)
	}
	return c.Next()
}

func currentUser(c *fiber.Ctx) *models.User {
	user, _ := c.Locals(currentUserKey).(*models.User)
	return user
}
