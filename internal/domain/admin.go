package domain

import "context"

// AdminService groups the organizer's maintenance actions. All of them
// are meant to degrade gracefully: failures are reported, never fatal to
// the process.
type AdminService interface {
	// RegenerateCodes re-runs the roster import with forced code rewrites.
	RegenerateCodes(ctx context.Context) (*ImportSummary, error)
	// PurgeCodes deletes every cached code artifact. The identity store
	// is untouched.
	PurgeCodes(ctx context.Context) (int, error)
	// ResetAttendance clears the whole ledger. Guests and codes survive.
	ResetAttendance(ctx context.Context) error
	// SendInvitations mails every guest with an email on file. With the
	// default noop mailer this only logs intent. Returns how many
	// invitations were handed to the mailer.
	SendInvitations(ctx context.Context) (int, error)
}
