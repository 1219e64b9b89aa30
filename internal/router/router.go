package router

import (
	"log"

	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"gorm.io/gorm"

	"github.com/lunaroak/driftfeed/backend/internal/handlers"
	"github.com/lunaroak/driftfeed/backend/internal/middleware"
	"github.com/lunaroak/driftfeed/backend/internal/models"
	"github.com/lunaroak/driftfeed/backend/internal/repositories"
	"github.com/lunaroak/driftfeed/backend/internal/services"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	e.Use(eMiddleware.Logger())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, db *gorm.DB) {
	err := db.AutoMigrate(
		&models.User{},
		&models.Post{},
		&models.Comment{},
		&models.Like{},
		&models.Follow{},
		&models.SavedPost{},
		&models.Hashtag{},
		&models.PostHashtag{},
		&models.Mention{},
		&models.Notification{},
		&models.SupportTicket{},
		&models.Report{},
	)
	if err != nil {
		log.Fatalf("Failed to auto migrate models: %v", err)
	}
	log.Println("Auto-migrations completed for all models.")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(db)
	postRepo := repositories.NewPostgresPostRepository(db)
	commentRepo := repositories.NewPostgresCommentRepository(db)
	likeRepo := repositories.NewPostgresLikeRepository(db)
	followRepo := repositories.NewPostgresFollowRepository(db)
	savedPostRepo := repositories.NewPostgresSavedPostRepository(db)
	hashtagRepo := repositories.NewPostgresHashtagRepository(db)
	mentionRepo := repositories.NewPostgresMentionRepository(db)
	notificationRepo := repositories.NewPostgresNotificationRepository(db)
	supportRepo := repositories.NewPostgresSupportRepository(db)

	// --- Initialize Services ---
	notificationService := services.NewNotificationService(notificationRepo)
	annotationService := services.NewAnnotationService(userRepo, hashtagRepo, mentionRepo, notificationService)
	contentService := services.NewContentService(db, postRepo, commentRepo, userRepo, annotationService, notificationService)
	engagementService := services.NewEngagementService(db, likeRepo, followRepo, savedPostRepo, postRepo, userRepo, notificationService)
	feedService := services.NewFeedService(postRepo, followRepo, likeRepo, savedPostRepo)
	supportService := services.NewSupportService(supportRepo, postRepo, userRepo, commentRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Public browse routes (optional authentication) ---
	browse := e.Group("/api/v1")
	browse.Use(middleware.OptionalJWTAuthMiddleware())

	feedHandler := handlers.NewFeedHandler(feedService, userRepo)
	feedHandler.RegisterFeedRoutes(browse)
	log.Println("Feed routes configured.")

	postHandler := handlers.NewPostHandler(contentService, postRepo, userRepo, hashtagRepo)
	postHandler.RegisterBrowseRoutes(browse)

	userHandler := handlers.NewUserHandler(userRepo, postRepo, followRepo)
	userHandler.RegisterBrowseRoutes(browse)
	log.Println("Browse routes configured.")

	// --- Protected routes (require JWT authentication) ---
	api := e.Group("/api/v1")
	api.Use(middleware.JWTAuthMiddleware())
	log.Println("JWT authentication middleware applied to /api/v1 group.")

	authHandler.RegisterAccountRoutes(api)
	userHandler.RegisterProfileRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)
	log.Println("Notification routes configured.")

	supportHandler := handlers.NewSupportHandler(supportService)
	supportHandler.RegisterSupportRoutes(api)
	log.Println("Support routes configured.")

	// --- Mutation routes (require accepted terms of service) ---
	gated := e.Group("/api/v1")
	gated.Use(middleware.JWTAuthMiddleware())
	gated.Use(middleware.RequireTermsMiddleware(userRepo))

	postHandler.RegisterPostRoutes(gated)
	log.Println("Post routes configured.")

	likeHandler := handlers.NewLikeHandler(engagementService)
	likeHandler.RegisterLikeRoutes(gated)
	log.Println("Like routes configured.")

	followHandler := handlers.NewFollowHandler(engagementService)
	followHandler.RegisterFollowRoutes(gated)
	log.Println("Follow routes configured.")

	commentHandler := handlers.NewCommentHandler(contentService)
	commentHandler.RegisterCommentRoutes(gated)
	log.Println("Comment routes configured.")

	log.Println("All routes configured.")
}
