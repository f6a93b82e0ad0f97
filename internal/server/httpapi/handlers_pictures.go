package httpapi

import (
	"github.com/gofiber/fiber/v2"
)

type presignPutResponse struct {
	Key       string `json:"key"`
	UploadURL string `json:"upload_url"`
}

// handlePresignPicturePut hands the client a short-lived upload URL. The
// client PUTs the picture there and stores the returned key on the topic.
func (s *Server) handlePresignPicturePut(c *fiber.Ctx) error {
	key, url, err := s.pictures.GetPresignedPutURL(c.UserContext())
	if err != nil {
		s.logger.Error(c.UserContext(), "presigning upload url", "error", err)
		return renderError(c, err)
	}
	return c.JSON(presignPutResponse{Key: key, UploadURL: url})
}

func (s *Server) handlePresignPictureGet(c *fiber.Ctx) error {
	key := c.Query("key")
	if key == "" {
		return c.Status(fiber.StatusBadRequest).JSON(errorResponse{Detail: "Key is required"})
	}

	url, err := s.pictures.GetPresignedGetURL(c.UserContext(), key)
	if err != nil {
		s.logger.Error(c.UserContext(), "presigning download url", "error", err)
		return renderError(c, err)
	}
	return c.JSON(fiber.Map{"url": url})
}
