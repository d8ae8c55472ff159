package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
)

const (
	DriverPostgres = "postgres"
	DriverMongo    = "mongo"
)

type Config struct {
	ServiceName string
	Environment string
	HTTPPort    int

	LogLevel      string
	LogFile       string
	LogMaxSizeMB  int
	LogMaxBackups int
	LogMaxAgeDays int

	StoreDriver string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string
	DBTimezone string

	MongoURI      string
	MongoDatabase string

	JWTSecret string
	JWTTTL    time.Duration
}

// Load reads .env (if present) and the process environment.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, relying on env vars")
	}

	cfg := Config{}

	cfg.ServiceName = cast.ToString(getOrReturnDefault("SERVICE_NAME", "vehicle-rental"))
	cfg.Environment = cast.ToString(getOrReturnDefault("APP_ENV", "development"))
	cfg.HTTPPort = cast.ToInt(getOrReturnDefault("APP_PORT", 8080))

	cfg.LogLevel = cast.ToString(getOrReturnDefault("LOG_LEVEL", "info"))
	cfg.LogFile = cast.ToString(getOrReturnDefault("LOG_FILE", "./logs/app.log"))
	cfg.LogMaxSizeMB = cast.ToInt(getOrReturnDefault("LOG_MAX_SIZE_MB", 10))
	cfg.LogMaxBackups = cast.ToInt(getOrReturnDefault("LOG_MAX_BACKUPS", 7))
	cfg.LogMaxAgeDays = cast.ToInt(getOrReturnDefault("LOG_MAX_AGE_DAYS", 7))

	cfg.StoreDriver = cast.ToString(getOrReturnDefault("STORE_DRIVER", DriverPostgres))

	cfg.DBHost = cast.ToString(getOrReturnDefault("DB_HOST", "localhost"))
	cfg.DBPort = cast.ToString(getOrReturnDefault("DB_PORT", "5432"))
	cfg.DBUser = cast.ToString(getOrReturnDefault("DB_USER", "postgres"))
	cfg.DBPassword = cast.ToString(getOrReturnDefault("DB_PASSWORD", "password"))
	cfg.DBName = cast.ToString(getOrReturnDefault("DB_NAME", "vehicle_rental"))
	cfg.DBSSLMode = cast.ToString(getOrReturnDefault("DB_SSLMODE", "disable"))
	cfg.DBTimezone = cast.ToString(getOrReturnDefault("DB_TIMEZONE", "UTC"))

	cfg.MongoURI = cast.ToString(getOrReturnDefault("MONGO_URI", "mongodb://localhost:27017/"))
	cfg.MongoDatabase = cast.ToString(getOrReturnDefault("MONGO_DATABASE", "vehicle_rental_system"))

	cfg.JWTSecret = cast.ToString(getOrReturnDefault("JWT_SECRET", "supersecret"))
	cfg.JWTTTL = time.Duration(cast.ToInt(getOrReturnDefault("JWT_TTL_HOURS", 72))) * time.Hour

	return cfg
}

// getOrReturnDefault reads an environment variable or returns the provided default
func getOrReturnDefault(key string, defaultValue interface{}) interface{} {
	if v, exists := os.LookupEnv(key); exists && v != "" {
		return v
	}
	return defaultValue
}
