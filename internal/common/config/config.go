package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// ============================================================
// Configuration
// ============================================================

type Config struct {
	Port         string
	Environment  string
	ReadTimeout  int
	WriteTimeout int

	StorageBackend string
	S3Bucket       string
	S3Region       string

	OutputDir      string
	DBPath         string
	MigrationsPath string
}

// Load загружает конфигурацию из .env (если есть) и переменных окружения.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:         getEnv("PORT", "3000"),
		Environment:  getEnv("ENV", "development"),
		ReadTimeout:  getEnvAsInt("READ_TIMEOUT", 10),
		WriteTimeout: getEnvAsInt("WRITE_TIMEOUT", 10),

		StorageBackend: getEnv("STORAGE_BACKEND", "local"),
		S3Bucket:       getEnv("S3_BUCKET", ""),
		S3Region:       getEnv("AWS_REGION", "us-east-1"),

		OutputDir:      getEnv("OUTPUT_DIR", ""),
		DBPath:         getEnv("BIM_DB_PATH", "data/db/bim.db"),
		MigrationsPath: getEnv("MIGRATIONS_PATH", "migrations/001_init_generations.sql"),
	}
}

func getEnv(key, defaultVal string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultVal
}
