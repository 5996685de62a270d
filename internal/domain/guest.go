package domain

import (
	"context"
	"time"
)

// Guest represents a person on the event roster.
// swagger:model Guest
type Guest struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email,omitempty"` // empty means no email on file
	CreatedAt time.Time `json:"created_at"`
}

// NewGuest returns a new Guest with the given fields. ID is assigned by the
// roster service before the guest is persisted.
func NewGuest(name, email string, createdAt time.Time) *Guest {
	return &Guest{
		Name:      name,
		Email:     email,
		CreatedAt: createdAt,
	}
}

// GuestRepository defines the interface for guest storage.
type GuestRepository interface {
	Create(ctx context.Context, guest *Guest) error
	GetByID(ctx context.Context, id string) (*Guest, error)
	// GetByEmail matches non-empty emails only; guests without an email
	// are never returned by it.
	GetByEmail(ctx context.Context, email string) (*Guest, error)
	List(ctx context.Context) ([]*Guest, error)
}

// RosterRow is one row of the external roster source. Email may be empty.
type RosterRow struct {
	Name  string
	Email string
}

// RosterSource loads the raw roster rows to import.
// Implementations return ErrRosterMissing when the source does not exist.
type RosterSource interface {
	Load(ctx context.Context) ([]RosterRow, error)
}

// ImportSummary reports what a roster import did.
// swagger:model ImportSummary
type ImportSummary struct {
	Created      int `json:"created"`
	Existing     int `json:"existing"`
	Skipped      int `json:"skipped"`
	CodesWritten int `json:"codes_written"`
}

// RosterService imports the roster into the identity store and ensures a
// scannable code exists per guest.
type RosterService interface {
	// Import resolves or creates a guest per roster row and issues codes.
	// With force set, existing code artifacts are rewritten.
	Import(ctx context.Context, force bool) (*ImportSummary, error)
}

// CodeIssuer renders and caches the scannable artifact for a guest.
type CodeIssuer interface {
	// EnsureCode writes the code image for the guest unless it already
	// exists; force always rewrites. It returns the artifact path and
	// whether the file was (re)written.
	EnsureCode(guestID, name string, force bool) (path string, wrote bool, err error)
	// CheckInURL returns the URL encoded into a guest's code.
	CheckInURL(guestID string) string
	// PurgeAll removes every cached artifact and reports how many.
	PurgeAll() (int, error)
}
