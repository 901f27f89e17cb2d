package domain

import "time"

// ActivityLog is an append-only audit record. UserID is nil for events that
// cannot be attributed to a known account, e.g. a failed login with an
// unknown email.
type ActivityLog struct {
	ID          int64     `json:"id"`
	UserID      *int64    `json:"user_id"`
	Action      string    `json:"action"`
	Description string    `json:"description"`
	Timestamp   time.Time `json:"timestamp"`

	// UserName and UserEmail are populated on joined reads for display.
	UserName  string `json:"name,omitempty"`
	UserEmail string `json:"email,omitempty"`
}

// Well-known activity actions.
const (
	ActionLogin          = "Login"
	ActionLoginFailed    = "Login_failed"
	ActionCreatedAccount = "Created"
	ActionPasswordUpdate = "Updated"
	ActionStatusChange   = "Status"
)

// ProcessingEntry records a single image-processing operation. Entries are
// kept in a capped, best-effort store and are not part of the audit trail.
type ProcessingEntry struct {
	ID         int64     `json:"id"`
	UserEmail  string    `json:"user_id"`
	Action     string    `json:"action"`
	Timestamp  time.Time `json:"timestamp"`
	ImagePath  string    `json:"image_path"`
	ResultPath string    `json:"result_path,omitempty"`
}
