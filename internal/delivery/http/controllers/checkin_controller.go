package controllers

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"guestpass/internal/domain"
)

const msgInvalidInvitation = "Invalid invitation"

type CheckInController struct {
	Logger  *slog.Logger
	Service domain.CheckInService
}

func NewCheckInController(logger *slog.Logger, svc domain.CheckInService) *CheckInController {
	return &CheckInController{
		Logger:  logger,
		Service: svc,
	}
}

// Confirm handles a scanned code: GET /confirmar?id=<uuid>. It always
// answers 303 back to the roster view; the outcome travels as a message.
// A missing, malformed, or unknown id mutates nothing.
func (c *CheckInController) Confirm(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")
	if id == "" || !uuidRegex.MatchString(id) {
		redirectHome(w, r, msgInvalidInvitation)
		return
	}

	result, err := c.Service.CheckIn(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			redirectHome(w, r, msgInvalidInvitation)
			return
		}
		c.Logger.ErrorContext(r.Context(), "check-in failed", "guest_id", id, "err", err)
		redirectHome(w, r, "Check-in failed, please try again")
		return
	}

	redirectHome(w, r, checkInMessage(result))
}

// checkInMessage renders the structured outcome as the visitor-facing text.
func checkInMessage(res *domain.CheckInResult) string {
	switch res.Status {
	case domain.CheckInWelcome:
		return fmt.Sprintf("Welcome, %s!", res.GuestName)
	case domain.CheckInEntryRecorded:
		return fmt.Sprintf("Entry recorded for %s", res.GuestName)
	case domain.CheckInExitRecorded:
		return fmt.Sprintf("Exit recorded for %s", res.GuestName)
	default:
		return msgInvalidInvitation
	}
}
