package config

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Model    ModelConfig
}

type ServerConfig struct {
	Port string
	Mode string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
	SSLMode  string
}

type ModelConfig struct {
	// ServiceURL — адрес model-сервиса с загруженным stroke_model.pkl
	ServiceURL string
	// ScalerPath — путь к JSON артефакту с параметрами StandardScaler
	ScalerPath string
	Timeout    int
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Mode: getEnv("GIN_MODE", "release"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			DBName:   getEnv("DB_NAME", "stroke_db"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Model: ModelConfig{
			ServiceURL: getEnv("MODEL_SERVICE_URL", "http://localhost:8000"),
			ScalerPath: getEnv("SCALER_PATH", "artifacts/scaler.json"),
			Timeout:    30,
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
