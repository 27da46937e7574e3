package server

import (
	"log"

	"github.com/goccy/go-json"

	"github.com/example/gke-demo/apis/common"
	"github.com/example/gke-demo/internal/config"
	"github.com/example/gke-demo/internal/handlers"
	"github.com/example/gke-demo/internal/version"
	"github.com/example/gke-demo/pkg/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// Server represents the HTTP server instance for the Go GKE Demo.
// It encapsulates the Fiber application and the resolved configuration.
type Server struct {
	// app is the Fiber HTTP application instance
	app *fiber.App

	// cfg contains the server configuration
	cfg *config.Config
}

// New creates and initializes a new Server instance with the provided configuration.
// It sets up the Fiber application with middleware and routes.
// The server will be ready to start after this function returns.
func New(cfg *config.Config) *Server {
	// Initialize logger first
	if err := logger.InitFromConfig(cfg); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Create Fiber app with faster JSON encoder
	app := fiber.New(fiber.Config{
		AppName:     version.AppName + " " + version.GetVersion(),
		JSONEncoder: json.Marshal,
		JSONDecoder: json.Unmarshal,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(common.ErrorResponse{
				Error:   true,
				Message: err.Error(),
			})
		},
	})

	// Middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept",
	}))

	// Setup routes
	handlers.SetupRoutes(app)

	return &Server{
		app: app,
		cfg: cfg,
	}
}

// Start starts the HTTP server on the configured port.
// It blocks until the server stops listening and returns the listener error, if any.
func (s *Server) Start() error {
	logger.Infof("Server listening on port %s", s.cfg.Port)
	return s.app.Listen(":" + s.cfg.Port)
}
