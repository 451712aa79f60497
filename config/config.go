package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Varun6712/smart-calories/models"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// placeholderKey is the value shipped in sample .env files; it counts as unset.
const placeholderKey = "YOUR_API_KEY_HERE"

type Config struct {
	Port    string
	GinMode string

	DBDriver   string // "sqlite" | "postgres"
	DBPath     string
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	DBSSLMode  string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiTimeout time.Duration

	S3Bucket string
	S3Region string

	LogLevel string

	// EnvFileErr keeps the .env load error; a missing file is not fatal.
	EnvFileErr error
}

// Load reads .env (if present) and the process environment.
func Load() (*Config, error) {
	cfg := &Config{
		EnvFileErr:    godotenv.Load(),
		Port:          getenv("PORT", "3000"),
		GinMode:       os.Getenv("GIN_MODE"),
		DBDriver:      strings.ToLower(getenv("DB_DRIVER", "sqlite")),
		DBPath:        getenv("DB_PATH", "smartcalories.db"),
		DBHost:        os.Getenv("DB_HOST"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
		DBPort:        getenv("DB_PORT", "5432"),
		DBSSLMode:     getenv("DB_SSLMODE", "disable"),
		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		GeminiModel:   getenv("GEMINI_MODEL", "gemini-1.5-flash"),
		GeminiTimeout: 30 * time.Second,
		S3Bucket:      os.Getenv("S3_BUCKET"),
		S3Region:      getenv("S3_REGION", os.Getenv("AWS_REGION")),
		LogLevel:      getenv("LOG_LEVEL", "info"),
	}

	if v := os.Getenv("GEMINI_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid GEMINI_TIMEOUT %q: %w", v, err)
		}
		cfg.GeminiTimeout = d
	}
	return cfg, nil
}

// HasGeminiKey reports whether a usable reasoning credential is configured.
func (c *Config) HasGeminiKey() bool {
	return c.GeminiAPIKey != "" && c.GeminiAPIKey != placeholderKey
}

func (c *Config) dialector() (gorm.Dialector, error) {
	switch c.DBDriver {
	case "sqlite", "sqlite3":
		return sqlite.Open(c.DBPath), nil
	case "postgres", "postgresql":
		dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
			c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", c.DBDriver)
	}
}

// OpenDB connects using the configured driver and migrates the schema.
func OpenDB(c *Config) (*gorm.DB, error) {
	dialector, err := c.dialector()
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Warn)})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&models.UserProfile{},
		&models.FoodCatalogEntry{},
		&models.LogEntry{},
	); err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
