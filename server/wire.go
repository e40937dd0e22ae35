//go:build wireinject
// +build wireinject

package server

import (
	"github.com/google/wire"
	"github.com/unicsmcr/healthcare_api/config"
	"github.com/unicsmcr/healthcare_api/database"
	"github.com/unicsmcr/healthcare_api/environment"
	"github.com/unicsmcr/healthcare_api/routers"
	"github.com/unicsmcr/healthcare_api/utils"
)

func InitializeServer(mode ExecutionMode) (*Server, error) {
	wire.Build(
		NewServer,
		routers.NewMainRouter,
		routers.DefaultRoutes,
		wire.Struct(new(routers.Dependencies), "*"),
		database.NewMongoConnector,
		utils.NewUploadsFs,
		utils.NewPublicFs,
		utils.NewTimeProvider,
		config.NewAppConfig,
		environment.NewEnv,
		utils.NewLogger,
	)
	return nil, nil
}
