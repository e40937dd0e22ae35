package database

// ConnectionState is the state of the process' database connection
type ConnectionState int32

const (
	Disconnected ConnectionState = iota
	Connecting
	Connected
	Error
)

func (s ConnectionState) String() string {
	switch s {
	case Disconnected:
		return "disconnected"
	case Connecting:
		return "connecting"
	case Connected:
		return "connected"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Status is the user-facing description of the state
func (s ConnectionState) Status() string {
	if s == Connected {
		return "Connected"
	}
	return "Disconnected"
}
