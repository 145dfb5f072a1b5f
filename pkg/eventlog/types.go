package eventlog

import "time"

// DefaultCapacity is the number of events retained when a storage is
// constructed without an explicit capacity.
const DefaultCapacity = 500

// Event is a single analytics log entry. The JSON tags are the persisted
// wire shape. IDs only need to be unique within the log, not globally.
type Event struct {
	ID        string         `json:"id"`
	Name      string         `json:"event"`
	Timestamp time.Time      `json:"timestamp"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}
