package main

import (
	"log"

	"project/api"
	"project/config"
	"project/database"
	"project/middleware"
	"project/models"
	"project/repository"
	"project/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func main() {
	// Load application configuration
	config.LoadConfig()

	// Initialize database connection
	db, err := database.Init()
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to initialize database: %v", err)
	}

	// Auto-migrate database schema
	runMigrations(db)

	// Seed development fixtures when configured
	if config.AppConfig.SeedData {
		if err := database.Seed(db); err != nil {
			log.Fatalf("FATAL: [Main] Failed to seed database: %v", err)
		}
	}

	// Initialize Repositories
	hotelRepo := repository.NewHotelRepository(db)
	roomTypeRepo := repository.NewRoomTypeRepository(db)
	bookingRepo := repository.NewBookingRepository(db)
	usageRepo := repository.NewUsageRecordRepository(db)
	userRepo := repository.NewUserRepository(db)
	log.Println("INFO: [Main] Repositories initialized.")

	// Initialize Services
	bookingService := services.NewBookingService(bookingRepo, hotelRepo)
	usageService := services.NewUsageService(usageRepo, hotelRepo)
	authService := services.NewAuthService(userRepo)
	hotelService := services.NewHotelService(hotelRepo, roomTypeRepo)
	log.Println("INFO: [Main] Services initialized.")

	// Initialize API Handler with all dependencies
	apiHandler := api.NewAPIHandler(bookingService, usageService, authService, hotelService)
	log.Println("INFO: [Main] API Handler initialized.")

	// Create Gin engine
	r := gin.New()
	r.SetTrustedProxies(nil)

	// Register middlewares
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())
	r.Use(middleware.Cors())
	log.Println("INFO: [Main] Middlewares registered.")

	// Register routes
	registerRoutes(r, apiHandler)
	log.Println("INFO: [Main] Routes registered.")

	// Start the server
	serverPort := ":" + config.AppConfig.Server.Port
	log.Printf("INFO: [Main] Starting server on port %s", serverPort)
	if err := r.Run(serverPort); err != nil {
		log.Fatalf("FATAL: [Main] Server failed to start: %v", err)
	}
}

func runMigrations(db *gorm.DB) {
	log.Println("INFO: [Main] Running database migrations...")
	err := db.AutoMigrate(
		&models.Hotel{},
		&models.RoomType{},
		&models.User{},
		&models.Booking{},
		&models.UsageRecord{},
	)
	if err != nil {
		log.Fatalf("FATAL: [Main] Failed to auto-migrate database: %v", err)
	}
	log.Println("INFO: [Main] Database migration completed.")
}

func registerRoutes(r *gin.Engine, handler *api.APIHandler) {
	apiGroup := r.Group("/api")
	{
		authGroup := apiGroup.Group("/auth")
		{
			authGroup.POST("/register", handler.RegisterHandler)
			authGroup.POST("/login", handler.LoginHandler)
			authGroup.GET("/me", middleware.JWTAuth(), handler.CurrentUserHandler)
		}

		bookingGroup := apiGroup.Group("/bookings", middleware.JWTAuth())
		{
			bookingGroup.POST("/check-availability", handler.CheckAvailabilityHandler)
			bookingGroup.POST("/create", handler.CreateBookingHandler)
			bookingGroup.PUT("/modify/:id", handler.ModifyBookingHandler)
			bookingGroup.DELETE("/cancel/:id", handler.CancelBookingHandler)
			bookingGroup.GET("/hotel/:hotelId", handler.GetBookingsByHotelHandler)
		}

		usageGroup := apiGroup.Group("/usage", middleware.JWTAuth())
		{
			usageGroup.POST("/start", handler.StartSessionHandler)
			usageGroup.POST("/update", handler.UpdateUsageHandler)
			usageGroup.POST("/booking-attempt", handler.RecordBookingAttemptHandler)
			usageGroup.POST("/end", handler.EndSessionHandler)
			usageGroup.GET("/current-month/:hotelId", handler.CurrentMonthUsageHandler)
		}

		hotelGroup := apiGroup.Group("/hotels", middleware.JWTAuth())
		{
			hotelGroup.GET("/:hotelId", handler.GetHotelHandler)
			hotelGroup.GET("/:hotelId/room-types", handler.GetRoomTypesHandler)
		}
	}
}
