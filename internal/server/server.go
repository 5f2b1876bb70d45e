// Package server wires the HTTP surface of the cube analysis service:
// routes, request middleware, schema validation, and the bridge between
// the HTTP request lifetime and the analysis core's cancellation probe.
package server

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"cube-scan/internal/config"
	"cube-scan/internal/inference"
)

// Server owns the Fiber app and the inference clients.
type Server struct {
	cfg      config.Config
	app      *fiber.App
	validate *validator.Validate

	vision *inference.Client
	text   *inference.Client
}

// New builds a fully wired server from cfg.
func New(cfg config.Config) *Server {
	s := &Server{
		cfg:      cfg,
		validate: validator.New(),
		vision:   inference.New(cfg.CubeInferenceURL, cfg.CubeModel, nil),
		text:     inference.New(cfg.TextInferenceURL, cfg.TextModel, nil),
	}

	s.app = fiber.New(fiber.Config{
		AppName:      "cube-scan",
		ErrorHandler: errorHandler(),
		BodyLimit:    16 * 1024 * 1024,
	})

	s.app.Use(requestID())
	s.app.Use(requestLogger())
	s.app.Use(corsMiddleware(cfg.CORSOrigins))

	s.routes()
	return s
}

func (s *Server) routes() {
	s.app.Post("/analyze-cube", s.analyzeCube)
	s.app.Post("/taunt", s.generateTaunt)
	s.app.Get("/health", s.health)
}

// Listen blocks serving HTTP on the configured port.
func (s *Server) Listen() error {
	return s.app.Listen(":" + s.cfg.Port)
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown() error {
	return s.app.Shutdown()
}
