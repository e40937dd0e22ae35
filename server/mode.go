package server

// ExecutionMode is how the process serves requests
type ExecutionMode int

const (
	// Persistent connects to the database once at startup and listens on the configured port
	Persistent ExecutionMode = iota
	// PerInvocation never listens, requests are handed to the server by the hosting platform
	// and the database connection is checked on every request
	PerInvocation
)

func (m ExecutionMode) String() string {
	switch m {
	case Persistent:
		return "persistent"
	case PerInvocation:
		return "per-invocation"
	default:
		return "unknown"
	}
}
