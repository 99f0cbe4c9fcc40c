package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (srv *HTTPServer) mapHandlers() {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerWebhookRoutes()
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())

	ctx := context.Background()
	srv.l.Infof(ctx, "HTTP server environment: %s", srv.environment)
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/", srv.indexPage)
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)
	srv.gin.GET("/status", srv.buildStatus)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerWebhookRoutes() {
	ctx := context.Background()

	// Channel is optional: GitHub can post to the bare path and messages go
	// to the Slack webhook's default channel.
	srv.gin.POST("/webhook/github", srv.webhookHandler.HandleGitHubWebhook)
	srv.gin.POST("/webhook/github/:channel", srv.webhookHandler.HandleGitHubWebhook)

	srv.l.Infof(ctx, "GitHub webhook routes registered at POST /webhook/github[/:channel]")
}
