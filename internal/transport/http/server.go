package http

import (
	"time"

	"github.com/gin-gonic/gin"

	appsvc "portfoliohub/internal/app"
	"portfoliohub/internal/bootstrap"
	"portfoliohub/internal/repository"
	"portfoliohub/internal/session"
	"portfoliohub/internal/transport/http/handler"
	"portfoliohub/internal/transport/http/middleware"
)

func NewRouter(app *bootstrap.App) *gin.Engine {
	gin.SetMode(app.Config.App.GinMode)
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.MaxMultipartMemory = 10 << 20

	sessionTTL := time.Duration(app.Config.Session.TTLHours) * time.Hour
	sessions := session.NewStore(app.Redis, sessionTTL)

	userRepo := repository.NewUserRepository(app.MySQL)
	projectRepo := repository.NewProjectRepository(app.MySQL)
	fileRepo := repository.NewProjectFileRepository(app.MySQL)

	authService := appsvc.NewAuthService(userRepo, sessions)
	projectService := appsvc.NewProjectService(projectRepo, fileRepo, app.Blobs)
	fileService := appsvc.NewFileService(projectRepo, fileRepo, app.Blobs)
	profileService := appsvc.NewProfileService(userRepo, projectRepo, fileRepo, app.Blobs)

	cookieName := app.Config.Session.CookieName
	authHandler := handler.NewAuthHandler(authService, cookieName, int(sessionTTL.Seconds()))
	projectHandler := handler.NewProjectHandler(projectService)
	uploadHandler := handler.NewUploadHandler(fileService, app.Config.Storage.MaxUploadBytes)
	profileHandler := handler.NewProfileHandler(profileService, authService, cookieName)
	healthHandler := handler.NewHealthHandler(app)

	requireSession := middleware.RequireSession(cookieName, authService)

	router.GET("/healthz", healthHandler.Check)
	router.Static("/uploads", app.Blobs.Dir())

	api := router.Group("/api")
	api.POST("/register", authHandler.Register)
	api.POST("/login", authHandler.Login)
	api.POST("/logout", requireSession, authHandler.Logout)
	api.GET("/current_user", requireSession, authHandler.Me)

	api.GET("/projects", projectHandler.List)
	api.POST("/projects", requireSession, projectHandler.Create)
	api.GET("/projects/:id", projectHandler.Get)
	api.PUT("/projects/:id", requireSession, projectHandler.Update)
	api.DELETE("/projects/:id", requireSession, projectHandler.Delete)
	api.POST("/projects/:id/like", projectHandler.Like)
	api.POST("/projects/:id/upload", requireSession, uploadHandler.Upload)

	api.GET("/users/:id", profileHandler.GetProfile)
	api.PUT("/users/:id", requireSession, profileHandler.UpdateProfile)
	api.DELETE("/users/:id", requireSession, profileHandler.DeleteAccount)

	return router
}
