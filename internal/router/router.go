package router

import (
	"log"

	"github.com/Cuogma12/instaFood-sub000/internal/handlers"
	"github.com/Cuogma12/instaFood-sub000/internal/middleware"
	"github.com/Cuogma12/instaFood-sub000/internal/repositories"
	"github.com/Cuogma12/instaFood-sub000/internal/services"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
	"github.com/Cuogma12/instaFood-sub000/pkg/firebase"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
	log.Println("Global middleware configured.")
}

// SetupRoutes configures all application routes and injects dependencies
func SetupRoutes(e *echo.Echo, docs store.Store, firebaseApp *firebase.App) {
	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewUserRepository(docs)
	postRepo := repositories.NewPostRepository(docs)
	commentRepo := repositories.NewCommentRepository(docs)
	activityRepo := repositories.NewActivityRepository(docs)
	notificationRepo := repositories.NewNotificationRepository(docs)
	categoryRepo := repositories.NewCategoryRepository(docs)

	// --- Initialize Services ---
	notificationService := services.NewNotificationService(notificationRepo, userRepo, postRepo)
	likeService := services.NewLikeService(postRepo, activityRepo, notificationService)
	commentService := services.NewCommentService(commentRepo, postRepo, userRepo, notificationService)
	favoriteService := services.NewFavoriteService(postRepo, activityRepo, notificationService)
	postService := services.NewPostService(postRepo, commentRepo, userRepo)

	// --- Unprotected routes for authentication ---
	authGroup := e.Group("/api/v1/auth")
	authHandler := handlers.NewAuthHandler(userRepo, firebaseApp.AuthClient)
	authHandler.RegisterAuthRoutes(authGroup)
	log.Println("Auth routes configured.")

	// --- Protected routes (require a verified Firebase ID token) ---
	api := e.Group("/api/v1")
	api.Use(middleware.FirebaseAuthMiddleware(firebaseApp.AuthClient))

	userHandler := handlers.NewUserHandler(userRepo)
	userHandler.RegisterUserRoutes(api)

	postHandler := handlers.NewPostHandler(postService)
	postHandler.RegisterPostRoutes(api)

	likeHandler := handlers.NewLikeHandler(likeService)
	likeHandler.RegisterLikeRoutes(api)

	commentHandler := handlers.NewCommentHandler(commentService)
	commentHandler.RegisterCommentRoutes(api)

	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	favoriteHandler.RegisterFavoriteRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)

	categoryHandler := handlers.NewCategoryHandler(categoryRepo)
	categoryHandler.RegisterCategoryRoutes(api)

	if firebaseApp.Bucket != nil {
		mediaHandler := handlers.NewMediaHandler(firebaseApp.Bucket, firebaseApp.BucketName)
		mediaHandler.RegisterMediaRoutes(api)
		log.Println("Media upload routes configured.")
	}

	// --- Admin console routes ---
	admin := api.Group("/admin")
	admin.Use(middleware.AdminOnly(userRepo))
	categoryHandler.RegisterAdminRoutes(admin)
	userHandler.RegisterAdminRoutes(admin)

	log.Println("All routes configured.")
}
