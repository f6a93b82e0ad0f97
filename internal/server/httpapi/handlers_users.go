package httpapi

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
	"github.com/gofiber/fiber/v2"

	"topicboard/internal/server/services"
)

func (s *Server) handleCurrentUser(c *fiber.Ctx) error {
	return c.JSON(toUserResponse(currentUser(c)))
}

func (s *Server) handleListUsers(c *fiber.Ctx) error {
	offset, limit := pageParams(c)
	users, err := s.users.List(c.UserContext(), offset, limit)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(toUserResponses(users))
}

func (s *Server) handleGetUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "Invalid user id"})
	}

	user, err := s.users.GetByID(c.UserContext(), id)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(toUserResponse(user))
}

type createUserRequest struct {
	Email       string `form:"email" json:"email"`
	Password    string `form:"password" json:"password"`
	FirstName   string `form:"first_name" json:"first_name"`
	LastName    string `form:"last_name" json:"last_name"`
	IsActive    bool   `form:"is_active" json:"is_active"`
	IsSuperuser bool   `form:"is_superuser" json:"is_superuser"`
}

func (s *Server) handleCreateUser(c *fiber.Ctx) error {
	req := createUserRequest{IsActive: true}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "Invalid request body"})
	}

	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Password, validation.Required),
	); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: err.Error()})
	}

	user, err := s.users.Create(c.UserContext(), services.CreateUserInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		IsActive:    req.IsActive,
		IsSuperuser: req.IsSuperuser,
	})
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(toUserResponse(user))
}

type editUserRequest struct {
	Email       *string `form:"email" json:"email"`
	Password    *string `form:"password" json:"password"`
	FirstName   *string `form:"first_name" json:"first_name"`
	LastName    *string `form:"last_name" json:"last_name"`
	IsActive    *bool   `form:"is_active" json:"is_active"`
	IsSuperuser *bool   `form:"is_superuser" json:"is_superuser"`
}

func (s *Server) handleEditUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "Invalid user id"})
	}

	req := editUserRequest{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "Invalid request body"})
	}

	user, err := s.users.Edit(c.UserContext(), id, services.EditUserInput{
		Email:       req.Email,
		Password:    req.Password,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		IsActive:    req.IsActive,
		IsSuperuser: req.IsSuperuser,
	})
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(toUserResponse(user))
}

func (s *Server) handleDeleteUser(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "Invalid user id"})
	}

	if err := s.users.Delete(c.UserContext(), id); err != nil {
		return renderError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}

func (s *Server) handleListUserTopics(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "Invalid user id"})
	}

	offset, limit := pageParams(c)
	topics, err := s.topics.ListByContributor(c.UserContext(), id, offset, limit)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(toTopicResponses(topics))
}
