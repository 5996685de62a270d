package controllers

import (
	"fmt"
	"log/slog"
	"net/http"

	"guestpass/internal/domain"
)

type AdminController struct {
	Logger  *slog.Logger
	Service domain.AdminService
}

func NewAdminController(logger *slog.Logger, svc domain.AdminService) *AdminController {
	return &AdminController{
		Logger:  logger,
		Service: svc,
	}
}

// Regenerate re-imports the roster with forced code rewrites.
// POST /admin/regenerate.
func (c *AdminController) Regenerate(w http.ResponseWriter, r *http.Request) {
	summary, err := c.Service.RegenerateCodes(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "regenerate failed", "err", err)
		redirectHome(w, r, "Code regeneration failed")
		return
	}
	redirectHome(w, r, fmt.Sprintf("Codes regenerated (%d written)", summary.CodesWritten))
}

// Purge deletes every cached code artifact. POST /admin/purge.
func (c *AdminController) Purge(w http.ResponseWriter, r *http.Request) {
	removed, err := c.Service.PurgeCodes(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "purge failed", "err", err)
		redirectHome(w, r, "Code purge failed")
		return
	}
	redirectHome(w, r, fmt.Sprintf("Codes deleted (%d)", removed))
}

// Reset clears the attendance ledger. POST /admin/reset.
func (c *AdminController) Reset(w http.ResponseWriter, r *http.Request) {
	if err := c.Service.ResetAttendance(r.Context()); err != nil {
		c.Logger.ErrorContext(r.Context(), "reset failed", "err", err)
		redirectHome(w, r, "Attendance reset failed")
		return
	}
	redirectHome(w, r, "Attendance reset")
}

// Notify triggers the (simulated) invitation mail-out. POST /admin/notify.
func (c *AdminController) Notify(w http.ResponseWriter, r *http.Request) {
	sent, err := c.Service.SendInvitations(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "notify failed", "err", err)
		redirectHome(w, r, "Invitation send failed")
		return
	}
	redirectHome(w, r, fmt.Sprintf("Invitations sent (%d, simulated)", sent))
}
