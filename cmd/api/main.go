package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jobscout-app/jobscout/internal/config"
	"github.com/jobscout-app/jobscout/internal/database"
	"github.com/jobscout-app/jobscout/internal/handlers"
	"github.com/jobscout-app/jobscout/internal/services"
	"github.com/joho/godotenv"
)

func main() {
	// 1. Load Environment Variables
	// .env is a local-dev convenience; in containers the variables come
	// from the environment directly, so a missing file is fine.
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	// 2. Load Configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration:", err)
	}

	// 3. Database Connection
	db := database.Connect(cfg.DBPath)

	// 4. Initialize Core Services (Dependencies)
	searchService := services.NewSearchService()
	resumeService := services.NewResumeService()
	extractService := services.NewExtractService()
	companyService := services.NewCompanyService()
	jobService := services.NewJobService(db)
	applicationService := services.NewApplicationService(db)
	statsService := services.NewStatsService(db)

	// 5. Initialize Handlers
	jobHandler := handlers.NewJobHandler(searchService, jobService)
	resumeHandler := handlers.NewResumeHandler(resumeService, extractService)
	applicationHandler := handlers.NewApplicationHandler(applicationService)
	companyHandler := handlers.NewCompanyHandler(companyService)
	dashboardHandler := handlers.NewDashboardHandler(statsService)

	// 6. Setup Router & CORS
	r := gin.Default()
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true // For development only
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		// Job Routes
		api.GET("/jobs/search", jobHandler.SearchJobs)
		api.POST("/jobs", jobHandler.SaveJob)
		api.GET("/jobs/saved", jobHandler.ListSavedJobs)

		// Resume Routes
		api.POST("/resume/analyze", resumeHandler.Analyze)
		api.POST("/resume/upload", resumeHandler.Upload)

		// Company Routes
		api.GET("/companies/:name", companyHandler.Get)

		// Application Routes
		api.POST("/applications", applicationHandler.Create)
		api.GET("/applications", applicationHandler.List)
		api.POST("/applications/:id/status", applicationHandler.UpdateStatus)
		api.POST("/applications/:id/notes", applicationHandler.UpdateNotes)

		// Dashboard Routes
		api.GET("/dashboard/stats", dashboardHandler.Stats)
	}

	log.Printf("🚀 Server starting on port %s...", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
