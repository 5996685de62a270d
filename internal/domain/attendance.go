package domain

import (
	"context"
	"time"
)

// AttendanceSession is one entry/exit interval for a guest. LeftAt is nil
// while the guest is inside. A guest has at most one open session.
// swagger:model AttendanceSession
type AttendanceSession struct {
	ID        string     `json:"id"`
	GuestID   string     `json:"guest_id"`
	EnteredAt time.Time  `json:"entered_at"`
	LeftAt    *time.Time `json:"left_at,omitempty"`
}

// AttendanceRecord is a session joined with its guest, for the roster view.
// swagger:model AttendanceRecord
type AttendanceRecord struct {
	GuestName string     `json:"guest_name"`
	Email     string     `json:"email,omitempty"`
	EnteredAt time.Time  `json:"entered_at"`
	LeftAt    *time.Time `json:"left_at,omitempty"`
}

// SessionRepository defines storage operations for attendance sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *AttendanceSession) error
	// LatestByGuestID returns the guest's most recent session by entry
	// time, or ErrNotFound when the guest never checked in.
	LatestByGuestID(ctx context.Context, guestID string) (*AttendanceSession, error)
	// Close stamps the exit time on an open session.
	Close(ctx context.Context, sessionID string, leftAt time.Time) error
	// DeleteAll clears the whole ledger. Guests are untouched.
	DeleteAll(ctx context.Context) error
	// ListAttendance joins sessions with guests, ordered by entry time.
	ListAttendance(ctx context.Context) ([]*AttendanceRecord, error)
}

// CheckInStatus enumerates the outcomes of a check-in.
type CheckInStatus string

const (
	// CheckInWelcome: the guest's first-ever session was opened.
	CheckInWelcome CheckInStatus = "welcome"
	// CheckInEntryRecorded: a new session was opened for a returning guest.
	CheckInEntryRecorded CheckInStatus = "entry_recorded"
	// CheckInExitRecorded: the guest's open session was closed.
	CheckInExitRecorded CheckInStatus = "exit_recorded"
)

// CheckInResult is the structured outcome of a check-in. Free-text
// rendering belongs to the presentation layer.
type CheckInResult struct {
	Status    CheckInStatus
	GuestName string
}

// CheckInService applies the attendance transition for a scanned guest id.
type CheckInService interface {
	// CheckIn toggles the guest's session state. Unknown ids return
	// ErrNotFound without touching the ledger.
	CheckIn(ctx context.Context, guestID string) (*CheckInResult, error)
}
