package models

import "fmt"

// ServerStatus is the lifecycle state of a server as reported by the API.
// The wire format is a numeric code. Code 9 is unused upstream; it is
// rejected at decode time rather than mapped to a neighbouring state.
type ServerStatus int

const (
	StatusOffline    ServerStatus = 0
	StatusOnline     ServerStatus = 1
	StatusStarting   ServerStatus = 2
	StatusStopping   ServerStatus = 3
	StatusRestarting ServerStatus = 4
	StatusSaving     ServerStatus = 5
	StatusLoading    ServerStatus = 6
	StatusCrashed    ServerStatus = 7
	StatusPending    ServerStatus = 8
	StatusPreparing  ServerStatus = 10
)

// String returns the status name used in API documentation and UIs.
func (s ServerStatus) String() string {
	switch s {
	case StatusOffline:
		return "offline"
	case StatusOnline:
		return "online"
	case StatusStarting:
		return "starting"
	case StatusStopping:
		return "stopping"
	case StatusRestarting:
		return "restarting"
	case StatusSaving:
		return "saving"
	case StatusLoading:
		return "loading"
	case StatusCrashed:
		return "crashed"
	case StatusPending:
		return "pending"
	case StatusPreparing:
		return "preparing"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// Valid reports whether s is one of the declared status codes.
func (s ServerStatus) Valid() bool {
	switch s {
	case StatusOffline, StatusOnline, StatusStarting, StatusStopping,
		StatusRestarting, StatusSaving, StatusLoading, StatusCrashed,
		StatusPending, StatusPreparing:
		return true
	default:
		return false
	}
}

// Transitional reports whether the server is moving between stable states.
func (s ServerStatus) Transitional() bool {
	switch s {
	case StatusStarting, StatusStopping, StatusRestarting,
		StatusSaving, StatusLoading, StatusPreparing:
		return true
	default:
		return false
	}
}
