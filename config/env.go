package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv        string
	Port          string
	DatabaseURL   string
	DBHost        string
	DBPort        string
	DBUser        string
	DBPassword    string
	DBName        string
	DBSSLMode     string
	AuthURL       string
	AuthAPIKey    string
	JWTSecret     string
	OriginURL     string
	RedisURL      string
	RedisAddr     string
	RedisPassword string
	UploadDir     string
	MaxUploadSize int64
	PlacesTTL     time.Duration
	ProfileTTL    time.Duration
}

var AppConfig *Config

func LoadConfig() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	maxUploadSize, _ := strconv.ParseInt(os.Getenv("MAX_UPLOAD_SIZE"), 10, 64)
	if maxUploadSize == 0 {
		maxUploadSize = 5242880
	}

	placesTTL, err := time.ParseDuration(getEnv("PLACES_CACHE_TTL", "5m"))
	if err != nil {
		placesTTL = 5 * time.Minute
	}
	profileTTL, err := time.ParseDuration(getEnv("PROFILE_CACHE_TTL", "5m"))
	if err != nil {
		profileTTL = 5 * time.Minute
	}

	AppConfig = &Config{
		AppEnv:        getEnv("APP_ENV", "development"),
		Port:          getEnv("APP_PORT", getEnv("PORT", "8082")),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		DBHost:        getEnv("DB_HOST", "localhost"),
		DBPort:        getEnv("DB_PORT", "5432"),
		DBUser:        getEnv("DB_USER", "postgres"),
		DBPassword:    getEnv("DB_PASSWORD", "postgres"),
		DBName:        getEnv("DB_NAME", "portal"),
		DBSSLMode:     getEnv("DB_SSLMODE", "require"),
		AuthURL:       getEnv("AUTH_URL", "http://localhost:9999"),
		AuthAPIKey:    os.Getenv("AUTH_API_KEY"),
		JWTSecret:     getEnv("JWT_SECRET", "secret"),
		OriginURL:     os.Getenv("ORIGIN_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		UploadDir:     getEnv("UPLOAD_DIR", "./uploads"),
		MaxUploadSize: maxUploadSize,
		PlacesTTL:     placesTTL,
		ProfileTTL:    profileTTL,
	}

	log.Println("Configuration loaded successfully")
	log.Printf("Environment: %s", AppConfig.AppEnv)
	log.Printf("Server will run on port: %s", AppConfig.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
