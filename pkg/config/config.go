package config

import "os"

// Config holds the service configuration read from the environment
type Config struct {
	Port                    string
	Env                     string
	FirebaseCredentialsPath string
	StorageBucket           string
	MongoURI                string
	MongoDatabase           string
}

// Load reads the configuration from environment variables
func Load() *Config {
	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", "./firebase_credentials.json"),
		StorageBucket:           getEnv("STORAGE_BUCKET", ""),
		MongoURI:                getEnv("MONGO_URI", ""),
		MongoDatabase:           getEnv("MONGO_DB", "instafood"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
