package confs

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// Config carries every process-wide setting. It is built once in main and
// passed by reference to the components that need it.
type Config struct {
	HTTPAddr string

	// Either DBURL or the individual parameters must be set.
	DBURL      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Empty RedisAddr disables the token cache.
	RedisAddr string

	MediaRoot string
	MediaURL  string

	TokenTTL       time.Duration
	MaxUploadBytes int64
	BcryptCost     int
}

// Load reads a .env file if present and builds the Config from the
// environment, applying defaults for everything that is optional.
func Load() (*Config, error) {
	// Load .env if it exists; ignore error if file not found
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: could not load .env: %v", err)
		}
	}

	cfg := &Config{
		HTTPAddr:       getenv("HTTP_ADDR", "0.0.0.0:8000"),
		DBURL:          os.Getenv("DB_URL"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		RedisAddr:      os.Getenv("REDIS_ADDR"),
		MediaRoot:      getenv("MEDIA_ROOT", "media"),
		MediaURL:       getenv("MEDIA_URL", "/media/"),
		TokenTTL:       time.Duration(getenvInt("TOKEN_TTL_HOURS", 720)) * time.Hour,
		MaxUploadBytes: int64(getenvInt("MAX_UPLOAD_BYTES", 5<<20)),
		BcryptCost:     getenvInt("BCRYPT_COST", bcrypt.DefaultCost),
	}

	if cfg.DBURL == "" && (cfg.DBHost == "" || cfg.DBPort == "" || cfg.DBUser == "" || cfg.DBPassword == "" || cfg.DBName == "") {
		return nil, fmt.Errorf("missing required database configuration: DB_URL or (DB_HOST, DB_PORT, DB_USER, DB_PASSWORD, DB_NAME)")
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("warning: invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
