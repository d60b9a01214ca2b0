package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/formulamga/mga-backend/internal/handlers"
	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/middleware"
)

type RouterConfig struct {
	Log               *logger.Logger
	HealthHandler     *handlers.HealthHandler
	ProjectHandler    *handlers.ProjectHandler
	ProblemHandler    *handlers.ProblemHandler
	ChatHandler       *handlers.ChatHandler
	ModuleDataHandler *handlers.ModuleDataHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(cfg.Log))

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.GET("/healthcheck", cfg.HealthHandler.Healthcheck)

	api := router.Group("/api")
	{
		// Projects
		api.POST("/projects", cfg.ProjectHandler.Create)
		api.GET("/projects", cfg.ProjectHandler.List)
		api.GET("/projects/:id", cfg.ProjectHandler.Get)
		api.PUT("/projects/:id", cfg.ProjectHandler.Update)
		api.DELETE("/projects/:id", cfg.ProjectHandler.Delete)

		// Problem tree
		api.POST("/problems", cfg.ProblemHandler.Create)
		api.GET("/problems/project/:project_id", cfg.ProblemHandler.GetByProject)
		api.PUT("/problems/:id", cfg.ProblemHandler.Update)
		api.DELETE("/problems/:id", cfg.ProblemHandler.Delete)

		// Chat assistant
		api.POST("/chat_history/chat/:project_id/:tab", cfg.ChatHandler.Chat)
		api.GET("/chat_history/:project_id/:tab", cfg.ChatHandler.History)
		api.DELETE("/chat_history/:project_id/:tab", cfg.ChatHandler.Clear)

		// Module documents
		api.GET("/module_data/:tab/:project_id", cfg.ModuleDataHandler.Get)
	}

	return router
}
