package httpapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"

	"topicboard/internal/common"
)

// credentialsForm is the form-encoded payload of the token and signup
// endpoints. The field is called username for OAuth2 compatibility but
// carries the account email.
type credentialsForm struct {
	Username string `form:"username" json:"username"`
	Password string `form:"password" json:"password"`
}

func (s *Server) handleToken(c *fiber.Ctx) error {
	form := credentialsForm{}
	if err := c.BodyParser(&form); err != nil {
		return renderError(c, common.ErrorInvalidCredentials)
	}
	if form.Username == "" || form.Password == "" {
		return renderError(c, common.ErrorInvalidCredentials)
	}

	user, err := s.users.Authenticate(c.UserContext(), form.Username, form.Password)
	if err != nil {
		return renderError(c, err)
	}

	token, err := s.users.IssueAccessToken(user)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(tokenResponse{AccessToken: token, TokenType: "bearer"})
}

func (s *Server) handleSignup(c *fiber.Ctx) error {
	form := credentialsForm{}
	if err := c.BodyParser(&form); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "Invalid request body"})
	}

	if err := validation.ValidateStruct(&form,
		validation.Field(&form.Username, validation.Required, is.Email),
		validation.Field(&form.Password, validation.Required),
	); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: err.Error()})
	}

	user, err := s.users.SignUp(c.UserContext(), form.Username, form.Password)
	if err != nil {
		return renderError(c, err)
	}

	s.logger.Info(c.UserContext(), "account registered", "email", user.Email)

	token, err := s.users.IssueAccessToken(user)
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(tokenResponse{AccessToken: token, TokenType: "bearer"})
}
