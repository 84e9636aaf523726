package config

import (
	"errors"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Config aggregates all runtime settings sourced from the environment.
type Config struct {
	Env string

	DataDir   string
	BackupDir string
	ExportDir string

	Log  LogConfig
	Auth AuthConfig
}

// LogConfig tunes the structured logger.
type LogConfig struct {
	Level  string
	Format string
}

// AuthConfig carries credential hashing and bootstrap admin settings.
type AuthConfig struct {
	BcryptCost    int
	AdminUsername string
	AdminPassword string
}

// Load reads configuration from the environment, applying defaults.
// A .env file is honoured when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	cfg := &Config{
		Env:       v.GetString("ENV"),
		DataDir:   v.GetString("DATA_DIR"),
		BackupDir: v.GetString("BACKUP_DIR"),
		ExportDir: v.GetString("EXPORT_DIR"),
	}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Auth = AuthConfig{
		BcryptCost:    v.GetInt("BCRYPT_COST"),
		AdminUsername: v.GetString("ADMIN_USERNAME"),
		AdminPassword: v.GetString("ADMIN_PASSWORD"),
	}

	if cfg.DataDir == "" {
		return nil, errors.New("DATA_DIR must not be empty")
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)

	v.SetDefault("DATA_DIR", "./data")
	v.SetDefault("BACKUP_DIR", "./backups")
	v.SetDefault("EXPORT_DIR", "./exports")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("BCRYPT_COST", 10)
	v.SetDefault("ADMIN_USERNAME", "admin")
	v.SetDefault("ADMIN_PASSWORD", "admin123")
}
