package routers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/spf13/afero"
	"github.com/unicsmcr/healthcare_api/config"
	"github.com/unicsmcr/healthcare_api/environment"
	mock_database "github.com/unicsmcr/healthcare_api/mocks/database"
	mock_utils "github.com/unicsmcr/healthcare_api/mocks/utils"
	"github.com/unicsmcr/healthcare_api/routers/api/models"
	"github.com/unicsmcr/healthcare_api/testutils"
	"go.uber.org/zap"
)

type staticRouter struct{}

func (staticRouter) RegisterRoutes(routerGroup *gin.RouterGroup) {
	routerGroup.GET("", func(ctx *gin.Context) {
		ctx.JSON(http.StatusOK, models.Response{Status: http.StatusOK})
	})
}

func staticRoute(Dependencies) (models.Router, error) {
	return staticRouter{}, nil
}

type routersTestSetup struct {
	ctrl             *gomock.Controller
	mockConnector    *mock_database.MockConnector
	mockTimeProvider *mock_utils.MockTimeProvider
	public           afero.Fs
	router           MainRouter
	engine           *gin.Engine
}

func newTestEnv(stage environment.Stage) *environment.Env {
	restoreVars := testutils.SetEnvVars(map[string]string{environment.Environment: string(stage)})
	defer restoreVars()

	return environment.NewEnv(zap.NewNop())
}

func setupTest(t *testing.T, routes []RouteEntry) *routersTestSetup {
	ctrl := gomock.NewController(t)
	mockConnector := mock_database.NewMockConnector(ctrl)
	mockTimeProvider := mock_utils.NewMockTimeProvider(ctrl)
	public := afero.NewMemMapFs()

	router := NewMainRouter(Dependencies{
		Logger:       zap.NewNop(),
		Cfg:          &config.AppConfig{},
		Env:          newTestEnv(environment.Development),
		Connector:    mockConnector,
		TimeProvider: mockTimeProvider,
		Uploads:      afero.NewMemMapFs(),
		Public:       public,
	}, routes)

	engine := gin.New()
	router.RegisterRoutes(&engine.RouterGroup)
	engine.NoRoute(router.NoRoute)

	return &routersTestSetup{
		ctrl:             ctrl,
		mockConnector:    mockConnector,
		mockTimeProvider: mockTimeProvider,
		public:           public,
		router:           router,
		engine:           engine,
	}
}

func (s *routersTestSetup) serve(method, target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.engine.ServeHTTP(w, httptest.NewRequest(method, target, nil))
	return w
}
