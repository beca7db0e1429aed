package main

import (
	"context"
	"log"

	"github.com/Cuogma12/instaFood-sub000/internal/router"
	"github.com/Cuogma12/instaFood-sub000/internal/store"
	"github.com/Cuogma12/instaFood-sub000/pkg/config"
	"github.com/Cuogma12/instaFood-sub000/pkg/firebase"
	"github.com/Cuogma12/instaFood-sub000/validators"
	"github.com/labstack/echo/v4"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database connection
	db, err := config.InitDB(cfg.MongoURI)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.CloseDB()

	// Initialize Firebase
	ctx := context.Background()
	firebaseApp, err := firebase.InitFirebase(ctx, cfg.FirebaseCredentialsPath, cfg.StorageBucket)
	if err != nil {
		log.Fatalf("Failed to initialize Firebase: %v", err)
	}

	// Document store over MongoDB
	docs := store.NewMongo(db.Mongo.Database(cfg.MongoDatabase))

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Setup routes and dependencies
	router.SetupRoutes(e, docs, firebaseApp)

	// Validator
	e.Validator = validators.NewValidator()

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
