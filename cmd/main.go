package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/formulamga/mga-backend/internal/aggregates"
	"github.com/formulamga/mga-backend/internal/db"
	"github.com/formulamga/mga-backend/internal/handlers"
	"github.com/formulamga/mga-backend/internal/logger"
	"github.com/formulamga/mga-backend/internal/registry"
	"github.com/formulamga/mga-backend/internal/repos"
	"github.com/formulamga/mga-backend/internal/schema"
	"github.com/formulamga/mga-backend/internal/server"
	"github.com/formulamga/mga-backend/internal/services"
	"github.com/formulamga/mga-backend/internal/utils"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	// Logger
	logMode := os.Getenv("LOG_MODE")
	if logMode == "" {
		logMode = "development"
	}
	log, err := logger.New(logMode)
	if err != nil {
		fmt.Printf("Failed to init logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	// Postgres
	postgresService, err := db.NewPostgresService(log)
	if err != nil {
		log.Error("Postgres init failed", "error", err)
		os.Exit(1)
	}
	if err = postgresService.AutoMigrateAll(); err != nil {
		log.Error("Postgres auto migration failed", "error", err)
		os.Exit(1)
	}
	thePG := postgresService.DB()

	// Schema catalog + module registry + collector
	log.Info("Setting up module registry from main...")
	catalog := schema.NewCatalog(thePG, log)
	moduleRegistry := registry.DefaultMGA()
	collector := aggregates.NewCollector(thePG, moduleRegistry, catalog, log)

	// Repos
	log.Info("Setting up Repos from main...")
	projectRepo := repos.NewProjectRepo(thePG, log)
	problemRepo := repos.NewProblemRepo(thePG, log)
	chatMessageRepo := repos.NewChatMessageRepo(thePG, log)

	// Services
	log.Info("Setting up Services from main...")
	generationClient, err := services.NewGenerationClient(log)
	if err != nil {
		log.Error("Could not init GenerationClient", "error", err)
		os.Exit(1)
	}
	projectService := services.NewProjectService(thePG, log, projectRepo)
	problemService := services.NewProblemService(thePG, log, problemRepo, projectRepo)
	chatService := services.NewChatService(thePG, log, chatMessageRepo)
	assistantService := services.NewAssistantService(thePG, log, catalog, moduleRegistry, collector, chatMessageRepo, generationClient)

	// Handlers
	log.Info("Setting up handlers from main...")
	healthHandler := handlers.NewHealthHandler()
	projectHandler := handlers.NewProjectHandler(log, projectService)
	problemHandler := handlers.NewProblemHandler(log, problemService)
	chatHandler := handlers.NewChatHandler(log, assistantService, chatService)
	moduleDataHandler := handlers.NewModuleDataHandler(log, assistantService)

	// Router
	log.Info("Setting up router from main...")
	router := server.NewRouter(server.RouterConfig{
		Log:               log,
		HealthHandler:     healthHandler,
		ProjectHandler:    projectHandler,
		ProblemHandler:    problemHandler,
		ChatHandler:       chatHandler,
		ModuleDataHandler: moduleDataHandler,
	})

	port := utils.GetEnv("PORT", "8080", log)
	log.Info("Server listening", "port", port)
	if err := router.Run(":" + port); err != nil {
		log.Error("Server failed", "error", err)
	}
}
