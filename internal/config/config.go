package config

import (
	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/oscahub/benefits-gateway/pkg/logger"
	"github.com/pkg/errors"
)

const ConfigTagName = "env"
const ConfigDefaultTagName = "default"

var config *Config

// Config holds every env-sourced setting of the service. Only this
// struct may be used to read configuration; no direct os.Getenv access
// outside this package.
type Config struct {
	AppEnv   string `env:"APP_ENV" default:"dev"`
	AppName  string `env:"APP_NAME" default:"benefits_gateway"`
	AppDebug bool   `env:"APP_DEBUG" default:"1"`

	HttpListenAddr string `env:"HTTP_LISTEN_ADDR" validation:"mustExists"`

	PostgresHost     string `env:"POSTGRES_HOST"`
	PostgresPort     string `env:"POSTGRES_PORT"`
	PostgresUser     string `env:"POSTGRES_USER"`
	PostgresPassword string `env:"POSTGRES_PASSWORD"`
	PostgresDatabase string `env:"POSTGRES_DBNAME"`

	PromNamespace string `env:"PROM_NAMESPACE" default:"benefits"`

	StorageDir string `env:"STORAGE_DIR" default:"./uploads"`

	MailerURL     string `env:"MAILER_URL"`
	MailerFrom    string `env:"MAILER_FROM" default:"osca@osca.local"`
	MailerEnabled bool   `env:"MAILER_ENABLED"`

	// effective release date offset, in hours
	ReleaseOffsetHours int `env:"RELEASE_OFFSET_HOURS" default:"72"`

	LogLevel []string `env:"LOG_LEVEL"`
}

func Load(path string) error {
	logger.Info("loading configs..", "path", path)
	c := &Config{}
	var err error
	if path != "" {
		logger.Info("trying to publish env from file", "path", path)
		err = godotenv.Load(path)
		if err != nil {
			return errors.New("failed to load configuration file " + path + " error: " + err.Error())
		}
	}

	_, err = env.UnmarshalFromEnviron(c)

	if err != nil {
		return errors.New("failed to map env variables to Configuration object " + " error: " + err.Error())
	}

	config = c
	return nil
}

func Get() *Config {
	if config == nil {
		logger.Panic("Config is not initialized")
	}
	return config
}
