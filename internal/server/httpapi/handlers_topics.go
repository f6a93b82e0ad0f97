package httpapi

import (
	"strconv"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"

	"topicboard/internal/server/services"
)

const defaultPageLimit = 100

func pageParams(c *fiber.Ctx) (int64, int64) {
	offset := int64(c.QueryInt("offset", 0))
	limit := int64(c.QueryInt("limit", defaultPageLimit))
	if offset < 0 {
		offset = 0
	}
	if limit <= 0 || limit > defaultPageLimit {
		limit = defaultPageLimit
	}
	return offset, limit
}

func pathID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func (s *Server) handleListTopics(c *fiber.Ctx) error {
	offset, limit := pageParams(c)
	topics, err := s.topics.ListVisible(c.UserContext(), offset, limit)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(toTopicResponses(topics))
}

func (s *Server) handleListAllTopics(c *fiber.Ctx) error {
	offset, limit := pageParams(c)
	topics, err := s.topics.ListAll(c.UserContext(), offset, limit)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(toTopicResponses(topics))
}

func (s *Server) handleListAdoptedTopics(c *fiber.Ctx) error {
	offset, limit := pageParams(c)
	topics, err := s.topics.ListAdopted(c.UserContext(), offset, limit)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(toTopicResponses(topics))
}

func (s *Server) handleSearchTopics(c *fiber.Ctx) error {
	keyword := c.Query("keyword")
	if keyword == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "Keyword is required"})
	}

	offset, limit := pageParams(c)
	topics, err := s.topics.SearchByKeyword(c.UserContext(), keyword, offset, limit)
	if err != nil {
		return renderError(c, err)
	}
	return c.JSON(toTopicResponses(topics))
}

type createTopicRequest struct {
	Topic      string `form:"topic" json:"topic"`
	PictureURL string `form:"picture_url" json:"picture_url"`
	IsAdopted  bool   `form:"is_adopted" json:"is_adopted"`
}

func (s *Server) handleCreateTopic(c *fiber.Ctx) error {
	req := createTopicRequest{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "Invalid request body"})
	}

	if err := validation.ValidateStruct(&req,
		validation.Field(&req.Topic, validation.Required),
	); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: err.Error()})
	}

	topic, err := s.topics.Create(c.UserContext(), currentUser(c), services.CreateTopicInput{
		Body:       req.Topic,
		PictureURL: req.PictureURL,
		IsAdopted:  req.IsAdopted,
	})
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(toTopicResponse(topic))
}

type editTopicRequest struct {
	Topic      *string `form:"topic" json:"topic"`
	PictureURL *string `form:"picture_url" json:"picture_url"`
	IsAdopted  *bool   `form:"is_adopted" json:"is_adopted"`
}

func (s *Server) handleEditTopic(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "Invalid topic id"})
	}

	req := editTopicRequest{}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "Invalid request body"})
	}

	topic, err := s.topics.Edit(c.UserContext(), currentUser(c), id, services.EditTopicInput{
		Body:       req.Topic,
		PictureURL: req.PictureURL,
		IsAdopted:  req.IsAdopted,
	})
	if err != nil {
		return renderError(c, err)
	}

	return c.JSON(toTopicResponse(topic))
}

func (s *Server) handleDeleteTopic(c *fiber.Ctx) error {
	id, err := pathID(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "Invalid topic id"})
	}

	if err := s.topics.Delete(c.UserContext(), currentUser(c), id); err != nil {
		return renderError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Topic deleted"})
}
