package config

import (
	"bytes"
	"embed"
	"time"

	"github.com/pkg/errors"
	"github.com/unicsmcr/healthcare_api/environment"

	"go.uber.org/config"
)

//go:embed base.yaml development.yaml production.yaml
var configFiles embed.FS

// AppConfig is a struct to store non-private configuration for the project
type AppConfig struct {
	Name     string         `yaml:"name"`
	Database DatabaseConfig `yaml:"database"`
	Server   ServerConfig   `yaml:"server"`
	CORS     CORSConfig     `yaml:"cors"`
}

// DatabaseConfig stores the options used when connecting to the database
type DatabaseConfig struct {
	Name                     string `yaml:"name"`
	ServerSelectionTimeoutMS int    `yaml:"server_selection_timeout_ms"`
	SocketTimeoutMS          int    `yaml:"socket_timeout_ms"`
	MaxPoolSize              uint64 `yaml:"max_pool_size"`
}

// ServerSelectionTimeout is the bounded wait before a connection attempt is declared failed
func (c DatabaseConfig) ServerSelectionTimeout() time.Duration {
	return time.Duration(c.ServerSelectionTimeoutMS) * time.Millisecond
}

// SocketTimeout is the socket idle timeout
func (c DatabaseConfig) SocketTimeout() time.Duration {
	return time.Duration(c.SocketTimeoutMS) * time.Millisecond
}

// ServerConfig stores the options of the HTTP server shell
type ServerConfig struct {
	BodyLimit         int64  `yaml:"body_limit"`
	PublicDir         string `yaml:"public_dir"`
	UploadsDir        string `yaml:"uploads_dir"`
	ShutdownTimeoutMS int    `yaml:"shutdown_timeout_ms"`
}

// ShutdownTimeout is how long in-flight requests get to finish on shutdown
func (c ServerConfig) ShutdownTimeout() time.Duration {
	return time.Duration(c.ShutdownTimeoutMS) * time.Millisecond
}

// CORSConfig stores the cross-origin policy
type CORSConfig struct {
	AllowedOrigins []string `yaml:"allowed_origins"`
	AllowAnyOrigin bool     `yaml:"allow_any_origin"`
}

// NewAppConfig loads the project config from the config files based on the environment
func NewAppConfig(env *environment.Env) (*AppConfig, error) {
	configFileNames := []string{"base.yaml"}
	if env.IsProduction() {
		configFileNames = append(configFileNames, "production.yaml")
	} else {
		configFileNames = append(configFileNames, "development.yaml")
	}

	var configSources []config.YAMLOption
	for _, name := range configFileNames {
		content, err := configFiles.ReadFile(name)
		if err != nil {
			return nil, errors.Wrapf(err, "could not read config file %s", name)
		}
		configSources = append(configSources, config.Source(bytes.NewReader(content)))
	}

	configProvider, err := config.NewYAML(configSources...)
	if err != nil {
		return nil, errors.Wrap(err, "could not parse config files")
	}

	var cfg AppConfig
	err = configProvider.Get(config.Root).Populate(&cfg)
	if err != nil {
		return nil, errors.Wrap(err, "could not populate config")
	}

	if frontendURL := env.Get(environment.FrontendURL); len(frontendURL) != 0 {
		cfg.CORS.AllowedOrigins = append(cfg.CORS.AllowedOrigins, frontendURL)
	}

	return &cfg, nil
}
