package config

import (
	"log"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the application's configuration.
type Config struct {
	Server struct {
		Port string
	}
	Database struct {
		DSN string // "memory" or a SQLite file path
	}
	JWT struct {
		Secret      string
		ExpiryHours int `mapstructure:"expiry_hours"`
	}
	SeedData bool `mapstructure:"seed_data"` // populate dev fixtures on startup
}

// AppConfig is the global configuration instance.
var AppConfig Config

// LoadConfig loads configuration from file and environment variables.
// Environment variables override file values (e.g. SERVER_PORT, JWT_SECRET).
func LoadConfig() {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.port", "8080")
	viper.SetDefault("database.dsn", "memory")
	viper.SetDefault("jwt.secret", "change-me-in-production")
	viper.SetDefault("jwt.expiry_hours", 24)
	viper.SetDefault("seed_data", false)

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("WARN: [Config] No config file found, relying on defaults and environment variables.")
		} else {
			log.Fatalf("FATAL: [Config] Failed to read config file: %v", err)
		}
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("FATAL: [Config] Failed to unmarshal config: %v", err)
	}

	if AppConfig.JWT.Secret == "change-me-in-production" {
		log.Println("WARN: [Config] Using the default JWT secret. Set JWT_SECRET before deploying.")
	}
	log.Printf("INFO: [Config] Configuration loaded (port=%s, dsn=%s).", AppConfig.Server.Port, AppConfig.Database.DSN)
}
