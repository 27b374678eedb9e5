package httpserver

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"

	"adhd-task-assistant/config"
	"adhd-task-assistant/internal/intent"
	"adhd-task-assistant/internal/task"
	"adhd-task-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	rateLimit   config.RateLimitConfig

	// Domains
	recognizer intent.Recognizer
	taskUC     task.UseCase

	// readiness check for storage; nil means always ready
	ready func(ctx context.Context) error
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string
	RateLimit   config.RateLimitConfig

	Recognizer  intent.Recognizer
	TaskUseCase task.UseCase
	ReadyCheck  func(ctx context.Context) error
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		rateLimit:   cfg.RateLimit,
		recognizer:  cfg.Recognizer,
		taskUC:      cfg.TaskUseCase,
		ready:       cfg.ReadyCheck,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	if err := srv.mapHandlers(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.recognizer == nil {
		return errors.New("recognizer is required")
	}
	if srv.taskUC == nil {
		return errors.New("task use case is required")
	}
	return nil
}

// Handler exposes the router, mainly for tests.
func (srv HTTPServer) Handler() *gin.Engine {
	return srv.gin
}
