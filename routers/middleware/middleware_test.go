package middleware

import (
	"github.com/unicsmcr/healthcare_api/environment"
	"github.com/unicsmcr/healthcare_api/testutils"
	"go.uber.org/zap"
)

func newTestEnv(stage environment.Stage) *environment.Env {
	restoreVars := testutils.SetEnvVars(map[string]string{environment.Environment: string(stage)})
	defer restoreVars()

	return environment.NewEnv(zap.NewNop())
}
