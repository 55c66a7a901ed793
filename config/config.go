package config

import (
	"log"
	"os"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"restaurant-client/storage"
)

// JWTSecret signs the device-session tokens this client issues
var JWTSecret = []byte(getEnv("JWT_SECRET", "restaurant_client_session_secret_2024"))

// App holds the runtime settings read from the environment
type App struct {
	Port              string
	BackendBaseURL    string
	OAuthClientID     string
	OAuthClientSecret string
	LocalDBPath       string
}

func Load() App {
	return App{
		Port:              getEnv("PORT", "8080"),
		BackendBaseURL:    getEnv("BACKEND_BASE_URL", "https://lekhoa.pythonanywhere.com"),
		OAuthClientID:     getEnv("OAUTH_CLIENT_ID", ""),
		OAuthClientSecret: getEnv("OAUTH_CLIENT_SECRET", ""),
		LocalDBPath:       getEnv("CLIENT_DB_PATH", "restaurant_client.db"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// OpenLocalStore opens the device-local SQLite database that backs the
// key-value store (session pointers and backend access tokens).
func OpenLocalStore(path string) *storage.KV {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		log.Fatal("Failed to open local store:", err)
	}
	kv, err := storage.NewKV(db)
	if err != nil {
		log.Fatal("Failed to migrate local store:", err)
	}
	log.Println("Local store ready at", path)
	return kv
}
