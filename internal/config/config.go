package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	MongoDB  MongoDBConfig
	Storage  StorageConfig
	Admin    AdminConfig
	JWT      JWTConfig
	LogLevel string
}

// ServerConfig holds server-specific configuration
type ServerConfig struct {
	Port           string
	AllowedOrigins []string
	// PublicBaseURL prefixes every public object URL handed to the site.
	PublicBaseURL string
}

// MongoDBConfig holds MongoDB-specific configuration
type MongoDBConfig struct {
	URI        string
	Database   string
	Collection string
	Timeout    time.Duration
}

// StorageConfig holds object storage configuration
type StorageConfig struct {
	Driver         string // mongodb or memory
	Bucket         string
	DefaultFolder  string
	PublicBuckets  []string
	AnonKey        string
	ServiceRoleKey string
}

// AdminConfig holds the single admin account settings
type AdminConfig struct {
	Email           string
	DefaultPassword string
}

// JWTConfig holds JWT-specific configuration
type JWTConfig struct {
	Secret    string
	ExpiresIn int
	Enforce   bool
}

// WriteKey returns the key used for storage writes and whether it is the
// preferred service-role key.
func (s StorageConfig) WriteKey() (string, bool) {
	if s.ServiceRoleKey != "" {
		return s.ServiceRoleKey, true
	}
	return s.AnonKey, false
}

// Load loads configuration from a .env file, environment variables and config files
func Load(paths ...string) (*Config, error) {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	if len(paths) == 0 {
		paths = []string{".", "./config"}
	}
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		// It's okay if config file is not found, we'll use environment variables
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	// Hosting platforms commonly expose the origin list as a single variable.
	cfg.Server.AllowedOrigins = GetEnvAsSlice("ALLOWED_ORIGINS", ",", cfg.Server.AllowedOrigins)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the settings the server cannot start without
func (c *Config) Validate() error {
	switch c.Storage.Driver {
	case "mongodb":
		if c.MongoDB.URI == "" {
			return errors.New("config: MongoDB.URI is required for the mongodb storage driver")
		}
	case "memory":
	default:
		return errors.New("config: Storage.Driver must be mongodb or memory")
	}
	if c.JWT.Enforce && c.JWT.Secret == "" {
		return errors.New("config: JWT.Secret is required when JWT.Enforce is set")
	}
	return nil
}

// setDefaults sets default values for configuration
func setDefaults(v *viper.Viper) {
	v.SetDefault("Server.Port", "4000")
	v.SetDefault("Server.AllowedOrigins", []string{"http://localhost:3000"})
	v.SetDefault("Server.PublicBaseURL", "http://localhost:4000")
	v.SetDefault("MongoDB.URI", "mongodb://localhost:27017")
	v.SetDefault("MongoDB.Database", "community-center")
	v.SetDefault("MongoDB.Collection", "site_content")
	v.SetDefault("MongoDB.Timeout", 10*time.Second)
	v.SetDefault("Storage.Driver", "mongodb")
	v.SetDefault("Storage.Bucket", "public-images")
	v.SetDefault("Storage.DefaultFolder", "Home")
	v.SetDefault("Storage.PublicBuckets", []string{"public-images"})
	v.SetDefault("Storage.AnonKey", "")
	v.SetDefault("Storage.ServiceRoleKey", "")
	v.SetDefault("Admin.Email", "admin@example.org")
	v.SetDefault("Admin.DefaultPassword", "changeme")
	v.SetDefault("JWT.Secret", "")
	v.SetDefault("JWT.ExpiresIn", 24*60*60) // 24 hours
	v.SetDefault("JWT.Enforce", false)
	v.SetDefault("LogLevel", "info")
}
