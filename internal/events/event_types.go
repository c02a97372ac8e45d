package events

import (
	"time"

	"github.com/campusconnect/campus-service/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventAccountRegistered EventType = "account_registered"
	EventLoginSucceeded    EventType = "login_succeeded"
	EventLoginFailed       EventType = "login_failed"
)

// Event represents an identity event emitted by the auth service. Username
// on a failed login is the attempted identifier, which may not exist; the
// payload never carries secrets or digests.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Username  string      `json:"username"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// AccountRegisteredPayload payload.
type AccountRegisteredPayload struct {
	Role     domain.Role `json:"role"`
	CampusID string      `json:"campus_id"`
}

// LoginSucceededPayload payload.
type LoginSucceededPayload struct {
	Role      domain.Role `json:"role"`
	CampusID  string      `json:"campus_id"`
	ExpiresAt time.Time   `json:"expires_at"`
}

// LoginFailedPayload payload. Reason is for internal diagnostics only and
// is never echoed to clients.
type LoginFailedPayload struct {
	Reason string `json:"reason"`
	Addr   string `json:"addr,omitempty"`
}
