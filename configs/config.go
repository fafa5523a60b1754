package configs

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string

	DBDriver    string // "postgres" or "sqlite"
	DatabaseURL string // full DSN, wins over discrete vars when set
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSource    string // sqlite file

	JWTSecret string
	JWTTTL    time.Duration

	LogsDir          string
	LogRetentionDays int

	AdminEmail    string
	AdminPassword string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file, reading environment directly")
	}

	ttlHours, err := strconv.Atoi(getEnv("JWT_TTL_HOURS", "24"))
	if err != nil || ttlHours <= 0 {
		ttlHours = 24
	}
	retention, err := strconv.Atoi(getEnv("LOG_RETENTION_DAYS", "14"))
	if err != nil || retention <= 0 {
		retention = 14
	}

	return &Config{
		Port: getEnv("PORT", "8000"),

		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5433"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "staticdb"),
		DBSource:    getEnv("DB_SOURCE", "static.db"),

		JWTSecret: getEnv("JWT_SECRET", "changeme"),
		JWTTTL:    time.Duration(ttlHours) * time.Hour,

		LogsDir:          getEnv("LOGS_DIR", "logs"),
		LogRetentionDays: retention,

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
