package meetings

import (
	"context"
	"time"
)

// Meeting is an opaque reference to a scheduled video meeting.
type Meeting struct {
	ID      string
	JoinURL string
	HostURL string
}

// Provider schedules video meetings. Implementations are treated as
// optional and unreliable: callers must tolerate a nil provider and any
// error without failing their own operation.
type Provider interface {
	CreateMeeting(
		ctx context.Context,
		topic string,
		start time.Time,
		durationMinutes int,
	) (*Meeting, error)
}
