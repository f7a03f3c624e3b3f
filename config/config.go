package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server     ServerConfig
	Database   DatabaseConfig
	JWT        JWTConfig
	Admin      AdminConfig
	Cloudinary CloudinaryConfig
	Images     ImageConfig
	RateLimit  RateLimitConfig
	Remote     RemoteConfig
}

type ServerConfig struct {
	Port         string
	Env          string
	LogLevel     string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Driver          string // mysql | postgres | sqlite
	DSN             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
}

type JWTConfig struct {
	AccessSecret string
	AccessExpiry time.Duration
	Issuer       string
}

// AdminConfig seeds the single admin account and controls whether writes need it.
type AdminConfig struct {
	Email        string
	Password     string
	AuthRequired bool
}

type CloudinaryConfig struct {
	CloudName string
	APIKey    string
	APISecret string
	Folder    string
}

// ImageConfig selects where submitted images end up. "inline" keeps data URIs
// in the document; "cloudinary" uploads them and stores the secure URL.
type ImageConfig struct {
	Offload string
}

const (
	OffloadInline     = "inline"
	OffloadCloudinary = "cloudinary"
)

// RemoteConfig points the HTML pages at another server's About Us API
// instead of the local database. Empty APIURL means local.
type RemoteConfig struct {
	APIURL   string
	APIToken string
}

type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

func (c CloudinaryConfig) Enabled() bool {
	return c.CloudName != "" && c.APIKey != "" && c.APISecret != ""
}

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getenv("PORT", "8099"),
			Env:          getenv("APP_ENV", "development"),
			LogLevel:     getenv("LOG_LEVEL", "info"),
			ReadTimeout:  getDuration("SERVER_READ_TIMEOUT", 15*time.Second),
			WriteTimeout: getDuration("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          getenv("DB_DRIVER", "mysql"),
			DSN:             getenv("DB_DSN", "kedai:kedai@tcp(localhost:3306)/kedai?charset=utf8mb4&parseTime=True&loc=Local"),
			MaxIdleConns:    getInt("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    getInt("DB_MAX_OPEN_CONNS", 50),
			ConnMaxLifetime: getDuration("DB_CONN_MAX_LIFETIME", time.Hour),
		},
		JWT: JWTConfig{
			AccessSecret: getenv("JWT_SECRET", "change-me-in-production"),
			AccessExpiry: getDuration("JWT_EXPIRY", 12*time.Hour),
			Issuer:       "kedai-ja",
		},
		Admin: AdminConfig{
			Email:        getenv("ADMIN_EMAIL", "admin@kedaija.local"),
			Password:     getenv("ADMIN_PASSWORD", "admin12345"),
			AuthRequired: getBool("ADMIN_AUTH_REQUIRED", true),
		},
		Cloudinary: CloudinaryConfig{
			CloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
			APIKey:    os.Getenv("CLOUDINARY_API_KEY"),
			APISecret: os.Getenv("CLOUDINARY_API_SECRET"),
			Folder:    getenv("CLOUDINARY_FOLDER", "KedaiJA/about-us"),
		},
		Images: ImageConfig{
			Offload: getenv("IMAGE_OFFLOAD", OffloadInline),
		},
		RateLimit: RateLimitConfig{
			Requests: getInt("RATE_LIMIT_REQUESTS", 100),
			Window:   getDuration("RATE_LIMIT_WINDOW", 60*time.Second),
		},
		Remote: RemoteConfig{
			APIURL:   os.Getenv("ABOUT_US_API_URL"),
			APIToken: os.Getenv("ABOUT_US_API_TOKEN"),
		},
	}
}

func getenv(key, fallback string) string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	return v
}

func getInt(key string, fallback int) int {
	n, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	b, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return d
}
