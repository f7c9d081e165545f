package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	env_utils "diligent-backend/internal/util/env"
	"diligent-backend/internal/util/logger"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var log = logger.GetLogger()

type EnvVariables struct {
	DatabaseDsn string            `env:"DATABASE_DSN" env-required:"true"`
	EnvMode     env_utils.EnvMode `env:"ENV_MODE"     env-default:"development"`
	HTTPPort    string            `env:"HTTP_PORT"    env-default:"3010"`
	CorsOrigin  string            `env:"CORS_ORIGIN"  env-default:"http://localhost:3000"`

	DbMaxOpenConns int `env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	DbMaxIdleConns int `env:"DB_MAX_IDLE_CONNS" env-default:"5"`

	// auth
	JWTSecret      string        `env:"SECRET"`
	SecretKeyPath  string        `env:"SECRET_KEY_PATH"  env-default:"./diligent-data/secret.key"`
	TokenTTL       time.Duration `env:"TOKEN_TTL"        env-default:"24h"`
	LoginRateLimit float64       `env:"LOGIN_RATE_LIMIT" env-default:"3"`
	LoginRateBurst int           `env:"LOGIN_RATE_BURST" env-default:"3"`

	AuditLogRetentionDays int `env:"AUDIT_LOG_RETENTION_DAYS" env-default:"90"`
}

var (
	env  EnvVariables
	once sync.Once
)

func GetEnv() EnvVariables {
	once.Do(func() {
		loaded, err := Load()
		if err != nil {
			log.Error("Configuration could not be loaded", "error", err)
			os.Exit(1)
		}

		env = loaded
	})

	return env
}

// Load reads an optional .env file from the working directory or the module
// root, then the process environment.
func Load() (EnvVariables, error) {
	loadDotEnv()

	var variables EnvVariables
	if err := cleanenv.ReadEnv(&variables); err != nil {
		return EnvVariables{}, fmt.Errorf("failed to read environment: %w", err)
	}

	if err := variables.validate(); err != nil {
		return EnvVariables{}, err
	}

	log.Info("Environment variables loaded successfully!", "mode", variables.EnvMode)
	return variables, nil
}

func (v *EnvVariables) validate() error {
	if v.DatabaseDsn == "" {
		return errors.New("DATABASE_DSN is empty")
	}

	if !v.EnvMode.IsValid() {
		return fmt.Errorf("ENV_MODE is invalid: %q", v.EnvMode)
	}

	if v.TokenTTL <= 0 {
		return errors.New("TOKEN_TTL must be positive")
	}

	if v.LoginRateLimit <= 0 || v.LoginRateBurst <= 0 {
		return errors.New("LOGIN_RATE_LIMIT and LOGIN_RATE_BURST must be positive")
	}

	if v.AuditLogRetentionDays <= 0 {
		return errors.New("AUDIT_LOG_RETENTION_DAYS must be positive")
	}

	return nil
}

func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		log.Warn("could not get current working directory", "error", err)
		cwd = "."
	}

	backendRoot := cwd
	for {
		if _, err := os.Stat(filepath.Join(backendRoot, "go.mod")); err == nil {
			break
		}

		parent := filepath.Dir(backendRoot)
		if parent == backendRoot {
			break
		}

		backendRoot = parent
	}

	for _, path := range []string{
		filepath.Join(cwd, ".env"),
		filepath.Join(backendRoot, ".env"),
	} {
		if err := godotenv.Load(path); err == nil {
			log.Info("Successfully loaded .env", "path", path)
			return
		}
	}

	log.Debug("No .env file found, using process environment only")
}
