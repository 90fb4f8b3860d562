package confs

import (
	"errors"
	"log"
	"os"

	"github.com/joho/godotenv"
)

const (
	ServiceName    = "energy-server"
	ServiceVersion = "1.0.0"

	defaultPort = "3537"
)

// Config carries every process-wide setting. It is built once at startup
// and handed to constructors; nothing reads the environment after this.
type Config struct {
	// Either DatabaseURL or the individual DB* parameters must be set.
	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string

	JWTSecret string
	Port      string
}

// LoadConfig loads environment variables from a .env file if present and
// validates essential settings. There is no fallback for the signing
// secret or the database: the process refuses to start without them.
func LoadConfig() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		DatabaseURL: os.Getenv("DB_URL"),
		DBHost:      os.Getenv("DB_HOST"),
		DBPort:      os.Getenv("DB_PORT"),
		DBUser:      os.Getenv("DB_USER"),
		DBPassword:  os.Getenv("DB_PASSWORD"),
		DBName:      os.Getenv("DB_NAME"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		Port:        os.Getenv("PORT"),
	}

	if cfg.Port == "" {
		cfg.Port = defaultPort
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}

	if cfg.DatabaseURL == "" {
		if cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBPassword == "" || cfg.DBName == "" {
			return nil, errors.New("missing required database configuration: DB_URL or (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
		}
	}

	return cfg, nil
}
