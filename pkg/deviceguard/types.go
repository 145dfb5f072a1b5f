package deviceguard

import "net/http"

// DeviceClass distinguishes the two independently limited device pools.
type DeviceClass string

const (
	DeviceDesktop DeviceClass = "desktop"
	DeviceMobile  DeviceClass = "mobile"
)

// Counts is a per-class count pair. It doubles as the limit shape.
type Counts struct {
	Desktop int `json:"desktop" yaml:"desktop"`
	Mobile  int `json:"mobile" yaml:"mobile"`
}

// Decision is the collaborator's verdict for the requesting device. The
// JSON layout is the wire contract with the counting service.
type Decision struct {
	Allowed      bool        `json:"allowed"`
	Error        *string     `json:"error"`
	DeviceType   DeviceClass `json:"deviceType"`
	CurrentCount Counts      `json:"currentCount"`
	Limits       Counts      `json:"limits"`
}

// DecisionFunc resolves the device decision for a request. Implementations
// call out to the external device-counting collaborator.
type DecisionFunc func(r *http.Request) Decision

// SessionPredicate reports a property of the request's session, e.g.
// whether an authenticated principal or a technician session exists.
type SessionPredicate func(r *http.Request) bool
