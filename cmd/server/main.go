package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"animal-shelter-backend/internal/config"
	"animal-shelter-backend/internal/database"
	"animal-shelter-backend/internal/handler"
	"animal-shelter-backend/internal/middleware"
	"animal-shelter-backend/internal/repository"
	"animal-shelter-backend/internal/service"
	"animal-shelter-backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection and run migrations
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	animalRepo := repository.NewAnimalRepo(db)
	healthCardRepo := repository.NewHealthCardRepo(db)
	adopterRepo := repository.NewAdopterRepo(db)
	homeRepo := repository.NewTemporaryHomeRepo(db)
	allergyRepo := repository.NewAllergyRepo(db)
	medicationRepo := repository.NewMedicationRepo(db)
	vaccinationRepo := repository.NewVaccinationRepo(db)
	visitRepo := repository.NewVisitRepo(db)
	blogRepo := repository.NewBlogRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo)
	animalService := service.NewAnimalService(animalRepo, healthCardRepo, adopterRepo, homeRepo, auditRepo)
	healthCardService := service.NewHealthCardService(healthCardRepo, animalRepo, auditRepo)
	catalogService := service.NewCatalogService(allergyRepo, medicationRepo, vaccinationRepo, auditRepo)
	visitService := service.NewVisitService(visitRepo, healthCardRepo, auditRepo)
	adopterService := service.NewAdopterService(adopterRepo, animalRepo, auditRepo)
	homeService := service.NewTemporaryHomeService(homeRepo, animalRepo, auditRepo)
	blogService := service.NewBlogService(blogRepo, auditRepo)

	// 6. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// 7. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(middleware.CORS(cfg))

	// 8. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	animalHandler := handler.NewAnimalHandler(animalService)
	publicAnimalHandler := handler.NewPublicAnimalHandler(animalService)
	healthCardHandler := handler.NewHealthCardHandler(healthCardService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	visitHandler := handler.NewVisitHandler(visitService)
	adopterHandler := handler.NewAdopterHandler(adopterService)
	homeHandler := handler.NewTemporaryHomeHandler(homeService)
	blogHandler := handler.NewBlogHandler(blogService)

	// 9. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "animal-shelter-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)

		// Staff accounts are provisioned by admins only
		auth.POST("/register", middleware.AuthMiddleware(), middleware.RequireAdmin(), authHandler.Register)
	}

	// Public read-only surface for the adoption website
	public := r.Group("/public")
	{
		public.GET("/animals", publicAnimalHandler.ListAnimals)
		public.GET("/animals/:slug", publicAnimalHandler.GetAnimal)
		public.GET("/blog/posts", blogHandler.ListPosts)
		public.GET("/blog/posts/:id", blogHandler.GetPost)
		public.GET("/blog/categories", blogHandler.ListCategories)
	}

	// Staff surface (authenticated)
	api := r.Group("/")
	api.Use(middleware.AuthMiddleware())
	{
		animals := api.Group("/animals")
		{
			animals.GET("", animalHandler.ListAnimals)
			animals.POST("", animalHandler.RegisterAnimal)
			animals.GET("/:slug", animalHandler.GetAnimal)
			animals.PUT("/:slug", animalHandler.UpdateAnimal)
			animals.PATCH("/:slug", animalHandler.UpdateAnimal)
			animals.DELETE("/:slug", middleware.RequireAdmin(), animalHandler.DeleteAnimal)
			animals.POST("/:slug/adopt", animalHandler.Adopt)
			animals.DELETE("/:slug/adopter", animalHandler.RemoveAdopter)
		}

		healthCards := api.Group("/health-cards")
		{
			healthCards.GET("/:animal_id", healthCardHandler.GetHealthCard)
			healthCards.PUT("/:animal_id", healthCardHandler.UpdateHealthCard)
			healthCards.PATCH("/:animal_id", healthCardHandler.UpdateHealthCard)
		}

		allergies := api.Group("/allergies")
		{
			allergies.GET("", catalogHandler.ListAllergies)
			allergies.POST("", catalogHandler.CreateAllergy)
			allergies.GET("/:id", catalogHandler.GetAllergy)
			allergies.PUT("/:id", catalogHandler.UpdateAllergy)
			allergies.DELETE("/:id", middleware.RequireAdmin(), catalogHandler.DeleteAllergy)
		}

		medications := api.Group("/medications")
		{
			medications.GET("", catalogHandler.ListMedications)
			medications.POST("", catalogHandler.CreateMedication)
			medications.GET("/:id", catalogHandler.GetMedication)
			medications.PUT("/:id", catalogHandler.UpdateMedication)
			medications.DELETE("/:id", middleware.RequireAdmin(), catalogHandler.DeleteMedication)
		}

		vaccinations := api.Group("/vaccinations")
		{
			vaccinations.GET("", catalogHandler.ListVaccinations)
			vaccinations.POST("", catalogHandler.CreateVaccination)
			vaccinations.GET("/:id", catalogHandler.GetVaccination)
			vaccinations.PUT("/:id", catalogHandler.UpdateVaccination)
			vaccinations.DELETE("/:id", middleware.RequireAdmin(), catalogHandler.DeleteVaccination)
		}

		visits := api.Group("/veterinary-visits")
		{
			visits.GET("", visitHandler.ListVisits)
			visits.POST("", visitHandler.CreateVisit)
			visits.GET("/:id", visitHandler.GetVisit)
			visits.PUT("/:id", visitHandler.UpdateVisit)
			visits.DELETE("/:id", middleware.RequireAdmin(), visitHandler.DeleteVisit)
		}

		adopters := api.Group("/adopters")
		{
			adopters.GET("", adopterHandler.ListAdopters)
			adopters.POST("", adopterHandler.CreateAdopter)
			adopters.GET("/:id", adopterHandler.GetAdopter)
			adopters.PUT("/:id", adopterHandler.UpdateAdopter)
			adopters.DELETE("/:id", middleware.RequireAdmin(), adopterHandler.DeleteAdopter)
		}

		homes := api.Group("/temporary-homes")
		{
			homes.GET("", homeHandler.ListTemporaryHomes)
			homes.POST("", homeHandler.CreateTemporaryHome)
			homes.GET("/:id", homeHandler.GetTemporaryHome)
			homes.PUT("/:id", homeHandler.UpdateTemporaryHome)
			homes.DELETE("/:id", middleware.RequireAdmin(), homeHandler.DeleteTemporaryHome)
		}

		blog := api.Group("/blog")
		{
			blog.POST("/categories", blogHandler.CreateCategory)
			blog.PUT("/categories/:id", blogHandler.UpdateCategory)
			blog.DELETE("/categories/:id", middleware.RequireAdmin(), blogHandler.DeleteCategory)
			blog.GET("/categories/:id", blogHandler.GetCategory)

			blog.POST("/posts", blogHandler.CreatePost)
			blog.PUT("/posts/:id", blogHandler.UpdatePost)
			blog.DELETE("/posts/:id", middleware.RequireAdmin(), blogHandler.DeletePost)
		}
	}

	// 10. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
