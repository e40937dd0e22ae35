package utils

import (
	"os"

	"github.com/unicsmcr/healthcare_api/environment"
	"go.uber.org/zap"
)

func NewLogger() (*zap.Logger, error) {
	if os.Getenv(environment.Environment) == string(environment.Production) {
		return zap.NewProduction()
	}
	return zap.NewDevelopment()
}
