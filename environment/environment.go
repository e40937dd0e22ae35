package environment

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
)

// names of env vars
const (
	Environment = "NODE_ENV"
	Port        = "PORT"
	AtlasURI    = "ATLAS_URI"
	FrontendURL = "FRONTEND_URL"
)

// Stage is the deployment stage the process is running in
type Stage string

const (
	Development Stage = "development"
	Production  Stage = "production"
)

// DefaultPort is the port used when PORT is not set
const DefaultPort = "6002"

// DevEnvFile is merged into the process environment in development
const DevEnvFile = "config.env"

// NewEnv creates an Env with loaded environment variables.
// In development, the variables in DevEnvFile get merged into the process environment first
func NewEnv(logger *zap.Logger) *Env {
	if stageOf(os.Getenv(Environment)) == Development {
		loadEnvFile(logger, DevEnvFile)
	}

	env := Env{
		vars: map[string]string{
			Environment: valueOfEnvVarOrDefault(logger, Environment, string(Development)),
			Port:        valueOfEnvVarOrDefault(logger, Port, DefaultPort),
			AtlasURI:    valueOfEnvVar(logger, AtlasURI),
			FrontendURL: os.Getenv(FrontendURL),
		},
	}
	return &env
}

// Env is a struct to store environment variables in an immutable collection
type Env struct {
	vars map[string]string
}

// Get returns an environment variable with the specified name
func (env *Env) Get(variableName string) string {
	return env.vars[variableName]
}

// Stage returns the deployment stage described by NODE_ENV.
// Anything other than "production" is treated as development
func (env *Env) Stage() Stage {
	return stageOf(env.vars[Environment])
}

// IsProduction reports whether the process runs in production
func (env *Env) IsProduction() bool {
	return env.Stage() == Production
}

func stageOf(value string) Stage {
	if value == string(Production) {
		return Production
	}
	return Development
}

// loadEnvFile merges the file's variables into the process environment.
// Variables that are already set are not overridden
func loadEnvFile(logger *zap.Logger, path string) {
	err := godotenv.Load(path)
	if err != nil {
		logger.Warn("could not load env file, using process environment variables", zap.String("file", path), zap.Error(err))
		return
	}
	logger.Info("loaded development environment variables", zap.String("file", path))
}

func valueOfEnvVar(logger *zap.Logger, varName string) string {
	envVar := os.Getenv(varName)
	if len(envVar) == 0 {
		logger.Warn("expected environment variable not defined", zap.String("var", varName))
	}

	return envVar
}

func valueOfEnvVarOrDefault(logger *zap.Logger, varName, fallback string) string {
	envVar := os.Getenv(varName)
	if len(envVar) == 0 {
		logger.Debug("environment variable not defined, using default", zap.String("var", varName), zap.String("default", fallback))
		return fallback
	}

	return envVar
}
