package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config carries everything the storefront needs from the environment.
type Config struct {
	HTTPPort string

	ContentBaseURL       string
	ContentAPIKey        string
	ContentDeliveryToken string
	ContentEnvironment   string

	EmailWebhookURL string

	// StorageBackend selects where the cart/wishlist collections
	// persist: file, redis, mongo, or memory.
	StorageBackend string
	StorageDir     string
	RedisAddr      string
	MongoURI       string
	MongoDatabase  string
	CartStorageKey string
	WishlistKey    string

	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// Load reads the configuration, honoring an optional .env file.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found. Proceeding with environment variables.")
	}

	return &Config{
		HTTPPort: getEnv("HTTP_PORT", "8080"),

		ContentBaseURL:       getEnv("CONTENTSTACK_BASE_URL", "https://cdn.contentstack.io"),
		ContentAPIKey:        getEnv("CONTENTSTACK_API_KEY", ""),
		ContentDeliveryToken: getEnv("CONTENTSTACK_DELIVERY_TOKEN", ""),
		ContentEnvironment:   getEnv("CONTENTSTACK_ENVIRONMENT", "dev"),

		EmailWebhookURL: getEnv("EMAIL_WEBHOOK_URL", ""),

		StorageBackend: getEnv("STORAGE_BACKEND", "file"),
		StorageDir:     getEnv("STORAGE_DIR", "data"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		MongoURI:       getEnv("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:  getEnv("MONGO_DATABASE", "giftshop"),
		CartStorageKey: getEnv("CART_STORAGE_KEY", "giftShopCart"),
		WishlistKey:    getEnv("WISHLIST_STORAGE_KEY", "giftShopWishlist"),

		RequestTimeout:  30 * time.Second,
		ShutdownTimeout: 10 * time.Second,
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
