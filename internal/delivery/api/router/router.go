// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"docgate/internal/delivery/api/middleware"
	"docgate/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	DocumentHandler *handler.DocumentHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	documentHandler *handler.DocumentHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		documentHandler: params.DocumentHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/", handler.HealthCheck)
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.GET("/google", r.authHandler.GoogleLogin)
		authGroup.GET("/google/callback", r.authHandler.GoogleCallback)
		authGroup.GET("/failure", r.authHandler.LoginFailure)
		authGroup.GET("/validate-token", r.authHandler.ValidateToken)
	}

	// Every document route goes through the session mediator.
	driveGroup := e.Group("/drive")
	driveGroup.Use(r.authMiddleware.Authenticate)
	{
		driveGroup.POST("/create-file", r.documentHandler.CreateFile)
		driveGroup.GET("/list-files", r.documentHandler.ListFiles)
		driveGroup.PATCH("/update-file/:fileId", r.documentHandler.UpdateFile)
		driveGroup.PATCH("/rename-file/:fileId", r.documentHandler.RenameFile)
		driveGroup.POST("/share-file/:fileId", r.documentHandler.ShareFile)
		driveGroup.DELETE("/delete-file/:fileId", r.documentHandler.DeleteFile)
		driveGroup.POST("/generate-shareable-link/:fileId", r.documentHandler.GenerateShareableLink)
		driveGroup.GET("/fetch-file-content/:fileId", r.documentHandler.FetchFileContent)
		driveGroup.PATCH("/update-file-content/:fileId", r.documentHandler.UpdateFileContent)
	}
}
