package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	intentHTTP "adhd-task-assistant/internal/intent/delivery/http"
	"adhd-task-assistant/internal/middleware"
	"adhd-task-assistant/internal/model"
	taskHTTP "adhd-task-assistant/internal/task/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Infof(ctx, "HTTP mode: production")
	} else {
		srv.gin.Use(gin.Logger())
		srv.l.Infof(ctx, "HTTP mode: %s", srv.environment)
	}
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	mw := middleware.New(srv.l, srv.rateLimit)
	api := srv.gin.Group("/api/v1", mw.RateLimit())

	intentHTTP.RegisterRoutes(api, intentHTTP.New(srv.l, srv.recognizer), mw)
	srv.l.Infof(ctx, "Intent routes registered at /api/v1/intents")

	taskHTTP.RegisterRoutes(api, taskHTTP.New(srv.l, srv.taskUC), mw)
	srv.l.Infof(ctx, "Task routes registered at /api/v1/utterances and /api/v1/tasks")

	return nil
}
