package database

import (
	"go.mongodb.org/mongo-driver/event"
	"go.mongodb.org/mongo-driver/mongo/description"
	"go.uber.org/zap"
)

// serverMonitor logs the connection lifecycle reported by the driver and keeps
// the connector's state in line with it. Events are observational only
func (c *mongoConnector) serverMonitor() *event.ServerMonitor {
	return &event.ServerMonitor{
		TopologyDescriptionChanged: c.onTopologyChanged,
		ServerHeartbeatFailed:      c.onHeartbeatFailed,
		TopologyClosed:             c.onTopologyClosed,
	}
}

func (c *mongoConnector) onTopologyChanged(e *event.TopologyDescriptionChangedEvent) {
	wasAvailable := hasAvailableServer(e.PreviousDescription)
	isAvailable := hasAvailableServer(e.NewDescription)

	switch {
	case wasAvailable && !isAvailable:
		if c.compareAndSwapState(Connected, Error) {
			c.logger.Warn("lost connection to database")
		}
	case !wasAvailable && isAvailable:
		if c.compareAndSwapState(Error, Connected) {
			c.logger.Info("reconnected to database")
		}
	}
}

func (c *mongoConnector) onHeartbeatFailed(e *event.ServerHeartbeatFailedEvent) {
	c.logger.Warn("database heartbeat failed", zap.String("connection", e.ConnectionID), zap.Error(e.Failure))
}

func (c *mongoConnector) onTopologyClosed(*event.TopologyClosedEvent) {
	c.setState(Disconnected)
	c.logger.Info("database disconnected")
}

func hasAvailableServer(topology description.Topology) bool {
	for _, server := range topology.Servers {
		if server.Kind != description.Unknown {
			return true
		}
	}
	return false
}
