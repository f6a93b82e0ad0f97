// Package httpapi exposes the topicboard HTTP surface on fiber: the token
// and signup endpoints, the topic CRUD routes, account administration, and
// the picture presign routes.
package httpapi

import (
	"context"

	"github.com/gofiber/fiber/v2"

	"topicboard/internal/logging"
	"topicboard/internal/server/config"
	"topicboard/internal/server/services"
)

type Server struct {
	app       *fiber.App
	logger    logging.Logger
	addr      string
	jwtSecret []byte
	users     *services.UserService
	topics    *services.TopicService
	pictures  *services.PictureService
}

func NewServer(cfg *config.Config, logger logging.Logger,
	users *services.UserService, topics *services.TopicService, pictures *services.PictureService) *Server {

	s := &Server{
		// Immutable: parsed request values cross the handler boundary (they
		// reach the services and the store), so they must not alias
		// fasthttp's reused buffers.
		app:       fiber.New(fiber.Config{DisableStartupMessage: true, Immutable: true}),
		logger:    logger.With("component", "httpapi"),
		addr:      cfg.EndpointAddr,
		jwtSecret: []byte(cfg.SecretKey),
		users:     users,
		topics:    topics,
		pictures:  pictures,
	}

	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	api := s.app.Group("/api")

	api.Post("/token", s.handleToken)
	api.Post("/signup", s.handleSignup)

	v1 := api.Group("/v1")
	v1.Get("/", s.handleHealth)

	v1.Get("/topics", s.handleListTopics)
	v1.Get("/topics/all", s.requireUser, s.requireActiveUser, s.requireSuperuser, s.handleListAllTopics)
	v1.Get("/topics/adopted", s.handleListAdoptedTopics)
	v1.Get("/topics/search", s.handleSearchTopics)
	v1.Post("/topics", s.requireUser, s.requireActiveUser, s.handleCreateTopic)
	v1.Put("/topics/:id", s.requireUser, s.requireActiveUser, s.handleEditTopic)
	v1.Delete("/topics/:id", s.requireUser, s.requireActiveUser, s.handleDeleteTopic)

	// "/users/me" must be registered before "/users/:id".
	v1.Get("/users/me", s.requireUser, s.requireActiveUser, s.handleCurrentUser)
	v1.Get("/users", s.requireUser, s.requireActiveUser, s.requireSuperuser, s.handleListUsers)
	v1.Post("/users", s.requireUser, s.requireActiveUser, s.requireSuperuser, s.handleCreateUser)
	v1.Get("/users/:id", s.requireUser, s.requireActiveUser, s.requireSuperuser, s.handleGetUser)
	v1.Put("/users/:id", s.requireUser, s.requireActiveUser, s.requireSuperuser, s.handleEditUser)
	v1.Delete("/users/:id", s.requireUser, s.requireActiveUser, s.requireSuperuser, s.handleDeleteUser)
	v1.Get("/users/:id/topics", s.requireUser, s.requireActiveUser, s.handleListUserTopics)

	v1.Post("/pictures", s.requireUser, s.requireActiveUser, s.handlePresignPicturePut)
	v1.Get("/pictures", s.requireUser, s.requireActiveUser, s.handlePresignPictureGet)
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"message": "OK"})
}

// Run serves HTTP until ctx is cancelled, then shuts the listener down.
func (s *Server) Run(ctx context.Context) error {
	go func() {
		<-ctx.Done()
		if err := s.app.Shutdown(); err != nil {
			s.logger.Error(ctx, "http server shutdown", "error", err)
		}
	}()

	s.logger.Info(ctx, "starting http server", "addr", s.addr)
	return s.app.Listen(s.addr)
}
