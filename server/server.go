package server

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"github.com/unicsmcr/healthcare_api/config"
	"github.com/unicsmcr/healthcare_api/database"
	"github.com/unicsmcr/healthcare_api/environment"
	"github.com/unicsmcr/healthcare_api/routers"
	"github.com/unicsmcr/healthcare_api/routers/middleware"
	"github.com/unicsmcr/healthcare_api/utils"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

const uploadsPath = "/uploads"

// Server is the HTTP server of the API
type Server struct {
	*gin.Engine
	Port string

	mode      ExecutionMode
	logger    *zap.Logger
	env       *environment.Env
	cfg       *config.AppConfig
	connector database.Connector
	router    routers.MainRouter
}

// NewServer builds the request pipeline of the API and mounts mainRouter on it
func NewServer(mode ExecutionMode, logger *zap.Logger, env *environment.Env, cfg *config.AppConfig,
	connector database.Connector, uploadsFs utils.UploadsFs, mainRouter routers.MainRouter) *Server {
	if env.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(
		gin.Logger(),
		middleware.HandleErrors(logger, env),
		middleware.Recover(logger, env),
		middleware.NewCORS(cfg),
		middleware.LimitBody(cfg.Server.BodyLimit),
	)

	s := &Server{
		Engine:    engine,
		Port:      env.Get(environment.Port),
		mode:      mode,
		logger:    logger,
		env:       env,
		cfg:       cfg,
		connector: connector,
		router:    mainRouter,
	}

	if s.retriesConnection() {
		engine.Use(middleware.EnsureConnected(logger, connector))
	}

	engine.StaticFS(uploadsPath, filesOnlyFs{afero.NewHttpFs(uploadsFs)})
	mainRouter.RegisterRoutes(&engine.RouterGroup)
	engine.NoRoute(mainRouter.NoRoute)

	logger.Info("server created",
		zap.String("name", cfg.Name),
		zap.Stringer("mode", mode),
		zap.String("environment", env.Get(environment.Environment)))

	return s
}

// Report returns the outcome of loading the route table
func (s *Server) Report() *routers.StartupReport {
	return s.router.Report()
}

// Logger returns the logger of the server
func (s *Server) Logger() *zap.Logger {
	return s.logger
}

// retriesConnection reports whether requests should reconnect to the database when there is no connection
func (s *Server) retriesConnection() bool {
	return s.mode == PerInvocation || s.env.IsProduction()
}

// Run connects to the database and serves requests on the configured port until ctx is done.
// A failed connection is returned only outside production, otherwise requests retry it
func (s *Server) Run(ctx context.Context) error {
	err := s.connector.EnsureConnected(ctx)
	if err != nil {
		if !s.retriesConnection() {
			return errors.Wrap(err, "could not connect to database")
		}
		s.logger.Error("could not connect to database, requests will retry", zap.Error(err))
	}

	httpServer := &http.Server{
		Addr:    ":" + s.Port,
		Handler: s.Engine,
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- httpServer.ListenAndServe()
	}()
	s.logger.Info("server started", zap.String("port", s.Port))

	select {
	case err = <-serveErr:
		return multierr.Append(errors.Wrap(err, "server stopped"), s.disconnect(context.Background()))
	case <-ctx.Done():
	}

	s.logger.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.Server.ShutdownTimeout())
	defer cancel()

	return multierr.Append(
		errors.Wrap(httpServer.Shutdown(shutdownCtx), "could not shut down server"),
		s.disconnect(shutdownCtx),
	)
}

func (s *Server) disconnect(ctx context.Context) error {
	err := s.connector.Disconnect(ctx)
	if err != nil {
		return errors.Wrap(err, "could not disconnect from database")
	}
	s.logger.Info("database connection closed")
	return nil
}

// filesOnlyFs hides directories so they are not listed
type filesOnlyFs struct {
	fs http.FileSystem
}

func (f filesOnlyFs) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if info.IsDir() {
		_ = file.Close()
		return nil, os.ErrNotExist
	}

	return file, nil
}
