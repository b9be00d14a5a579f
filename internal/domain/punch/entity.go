package punch

import "time"

// Punch is one raw clock event from the device log. The timestamp is kept
// exactly as the device reported it; the derivation engine reads it
// lexically and the log is append-only, never mutated.
type Punch struct {
	ID        string    `json:"id"`
	DeviceIP  string    `json:"device_ip"`
	PIN       string    `json:"pin"`
	Timestamp string    `json:"timestamp"`
	BatchID   *string   `json:"batch_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
