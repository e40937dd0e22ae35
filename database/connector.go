package database

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/unicsmcr/healthcare_api/config"
	"github.com/unicsmcr/healthcare_api/environment"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.mongodb.org/mongo-driver/mongo/writeconcern"
	"go.uber.org/atomic"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

//go:generate mockgen -destination ../mocks/database/connector.go -package mock_database github.com/unicsmcr/healthcare_api/database Connector

const connectKey = "connect"

// Connector owns the connection to the database shared by all request handlers
type Connector interface {
	// EnsureConnected connects to the database unless a connection is already established.
	// Concurrent calls share a single connection attempt
	EnsureConnected(ctx context.Context) error
	CurrentState() ConnectionState
	// Database returns the application's database or ErrNotConnected
	Database() (*mongo.Database, error)
	Disconnect(ctx context.Context) error
}

type mongoConnector struct {
	logger *zap.Logger
	uri    string
	cfg    config.DatabaseConfig

	state        *atomic.Int32
	connectGroup singleflight.Group

	mu     sync.RWMutex
	client *mongo.Client
}

// NewMongoConnector creates a Connector for the MongoDB deployment at ATLAS_URI.
// No connection is attempted until EnsureConnected is called
func NewMongoConnector(logger *zap.Logger, env *environment.Env, cfg *config.AppConfig) Connector {
	return &mongoConnector{
		logger: logger,
		uri:    env.Get(environment.AtlasURI),
		cfg:    cfg.Database,
		state:  atomic.NewInt32(int32(Disconnected)),
	}
}

func (c *mongoConnector) CurrentState() ConnectionState {
	return ConnectionState(c.state.Load())
}

func (c *mongoConnector) setState(state ConnectionState) {
	c.state.Store(int32(state))
}

func (c *mongoConnector) compareAndSwapState(from, to ConnectionState) bool {
	return c.state.CompareAndSwap(int32(from), int32(to))
}

func (c *mongoConnector) EnsureConnected(ctx context.Context) error {
	if c.CurrentState() == Connected {
		return nil
	}
	if len(c.uri) == 0 {
		return errors.Wrapf(ErrConfiguration, "%s environment variable is not defined", environment.AtlasURI)
	}

	// the attempt is shared by every waiting caller, so it must outlive
	// the request of whichever caller started it
	_, err, _ := c.connectGroup.Do(connectKey, func() (interface{}, error) {
		attemptCtx, cancel := c.attemptContext(ctx)
		defer cancel()
		return nil, c.connect(attemptCtx)
	})
	return err
}

func (c *mongoConnector) attemptContext(ctx context.Context) (context.Context, context.CancelFunc) {
	detached := context.WithoutCancel(ctx)
	timeout := c.cfg.ServerSelectionTimeout()
	if timeout <= 0 {
		return context.WithCancel(detached)
	}
	return context.WithTimeout(detached, timeout)
}

func (c *mongoConnector) connect(ctx context.Context) error {
	if c.CurrentState() == Connected {
		return nil
	}

	c.setState(Connecting)
	client, err := c.getOrCreateClient(ctx)
	if err != nil {
		c.setState(Error)
		c.logger.Error("could not connect to database", zap.Error(err))
		return errors.Wrapf(ErrDatabaseConnection, "invalid client configuration: %s", err)
	}

	// the client keeps monitoring the deployment after a failed ping,
	// the next attempt only needs to ping again
	err = client.Ping(ctx, readpref.Primary())
	if err != nil {
		c.setState(Error)
		c.logger.Error("could not connect to database", zap.Error(err))
		return errors.Wrapf(ErrDatabaseConnection, "ping failed: %s", err)
	}

	c.setState(Connected)
	c.logger.Info("connected to database", zap.String("database", c.cfg.Name))
	return nil
}

func (c *mongoConnector) getOrCreateClient(ctx context.Context) (*mongo.Client, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client != nil {
		return c.client, nil
	}

	client, err := mongo.Connect(ctx, c.clientOptions())
	if err != nil {
		return nil, err
	}
	c.client = client
	return client, nil
}

func (c *mongoConnector) clientOptions() *options.ClientOptions {
	return options.Client().
		ApplyURI(c.uri).
		SetServerSelectionTimeout(c.cfg.ServerSelectionTimeout()).
		SetSocketTimeout(c.cfg.SocketTimeout()).
		SetMaxPoolSize(c.cfg.MaxPoolSize).
		SetRetryWrites(true).
		SetWriteConcern(writeconcern.New(writeconcern.WMajority())).
		SetServerMonitor(c.serverMonitor())
}

func (c *mongoConnector) Database() (*mongo.Database, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.client == nil || c.CurrentState() != Connected {
		return nil, ErrNotConnected
	}
	return c.client.Database(c.cfg.Name), nil
}

func (c *mongoConnector) Disconnect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.client == nil {
		return nil
	}

	err := c.client.Disconnect(ctx)
	c.client = nil
	c.setState(Disconnected)
	if err != nil {
		return errors.Wrap(err, "could not close database connection")
	}

	c.logger.Info("database connection closed")
	return nil
}
