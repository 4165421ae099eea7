package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything read from the environment at process start.
// It is built once in main and handed to the components that need it,
// so nothing reads os.Getenv after startup.
type Config struct {
	Port      string
	JWTSecret string

	DB      DBConfig
	Redis   RedisConfig
	Storage StorageConfig
	Admin   AdminConfig

	CacheTTL time.Duration
}

type DBConfig struct {
	DSN string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

type StorageConfig struct {
	Bucket    string
	Region    string
	Endpoint  string
	AccessKey string
	SecretKey string
	// PresignTTL is deliberately huge: retrieval URLs are persisted into
	// records and must outlive any realistic session.
	PresignTTL time.Duration
	UploadDir  string
}

type AdminConfig struct {
	Email    string
	Password string
}

func Load() Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Loaded environment from .env")
	}

	return Config{
		Port:      getEnv("PORT", "8000"),
		JWTSecret: getEnv("JWT_SECRET", "change-me-in-production"),
		DB: DBConfig{
			DSN: getEnv("DB_DSN", "root:123456@tcp(localhost:3306)/bcc_kuraloshi?charset=utf8mb4&parseTime=True&loc=Local"),
		},
		Redis: RedisConfig{
			Addr:     getEnv("REDIS_ADDR", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Storage: StorageConfig{
			Bucket:     getEnv("S3_BUCKET", ""),
			Region:     getEnv("S3_REGION", "ap-south-1"),
			Endpoint:   getEnv("S3_ENDPOINT", ""),
			AccessKey:  getEnv("S3_ACCESS_KEY", ""),
			SecretKey:  getEnv("S3_SECRET_KEY", ""),
			PresignTTL: getEnvDuration("S3_PRESIGN_TTL", 24*365*10*time.Hour),
			UploadDir:  getEnv("UPLOAD_DIR", "./uploads"),
		},
		Admin: AdminConfig{
			Email:    getEnv("ADMIN_EMAIL", ""),
			Password: getEnv("ADMIN_PASSWORD", ""),
		},
		CacheTTL: getEnvDuration("LIST_CACHE_TTL", 5*time.Minute),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
