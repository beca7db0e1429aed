package firebase

import (
	"context"
	"fmt"
	"log"
	"os"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// App holds the initialized Firebase app, auth client and storage bucket
type App struct {
	FirebaseApp *firebase.App
	AuthClient  *auth.Client
	Bucket      *storage.BucketHandle
	BucketName  string
}

// InitFirebase initializes the Firebase application, the authentication
// client and, when bucketName is set, the media storage bucket
func InitFirebase(ctx context.Context, credentialsPath, bucketName string) (*App, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("Firebase credentials path not provided")
	}

	// Check if the credentials file exists
	if _, err := os.Stat(credentialsPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("Firebase credentials file not found at %s", credentialsPath)
	}

	opt := option.WithCredentialsFile(credentialsPath)
	conf := &firebase.Config{StorageBucket: bucketName}

	firebaseApp, err := firebase.NewApp(ctx, conf, opt)
	if err != nil {
		return nil, fmt.Errorf("error initializing firebase app: %w", err)
	}

	authClient, err := firebaseApp.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("error getting firebase auth client: %w", err)
	}

	app := &App{FirebaseApp: firebaseApp, AuthClient: authClient, BucketName: bucketName}

	if bucketName != "" {
		storageClient, err := firebaseApp.Storage(ctx)
		if err != nil {
			return nil, fmt.Errorf("error getting firebase storage client: %w", err)
		}
		bucket, err := storageClient.DefaultBucket()
		if err != nil {
			return nil, fmt.Errorf("error getting storage bucket: %w", err)
		}
		app.Bucket = bucket
	}

	log.Println("Firebase app and auth client initialized successfully!")
	return app, nil
}
