package controllers

import (
	"log/slog"
	"net/http"

	"guestpass/internal/delivery/http/helpers"
	"guestpass/internal/domain"
)

type RosterAPIController struct {
	Logger      *slog.Logger
	GuestRepo   domain.GuestRepository
	SessionRepo domain.SessionRepository
}

func NewRosterAPIController(logger *slog.Logger, guestRepo domain.GuestRepository, sessionRepo domain.SessionRepository) *RosterAPIController {
	return &RosterAPIController{
		Logger:      logger,
		GuestRepo:   guestRepo,
		SessionRepo: sessionRepo,
	}
}

// ListGuestsSuccessResponse is the success envelope for GET /api/roster.
type ListGuestsSuccessResponse struct {
	Data  []*domain.Guest    `json:"data"`
	Error *helpers.APIError  `json:"error"`
}

// ListGuests godoc
// @Summary List every guest on the roster
// @Description Returns the full identity store, ordered by name. Intended for organizer tooling; the endpoint is read-only.
// @Tags roster
// @Produce json
// @Success 200 {object} controllers.ListGuestsSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/roster [get]
func (c *RosterAPIController) ListGuests(w http.ResponseWriter, r *http.Request) {
	guests, err := c.GuestRepo.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list guests failed", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not list guests")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, guests)
}

// ListAttendanceSuccessResponse is the success envelope for GET /api/attendance.
type ListAttendanceSuccessResponse struct {
	Data  []*domain.AttendanceRecord `json:"data"`
	Error *helpers.APIError          `json:"error"`
}

// ListAttendance godoc
// @Summary List all attendance sessions
// @Description Returns every entry/exit session joined with its guest, ordered by entry time.
// @Tags roster
// @Produce json
// @Success 200 {object} controllers.ListAttendanceSuccessResponse
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /api/attendance [get]
func (c *RosterAPIController) ListAttendance(w http.ResponseWriter, r *http.Request) {
	records, err := c.SessionRepo.ListAttendance(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list attendance failed", "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "could not list attendance")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, records)
}
