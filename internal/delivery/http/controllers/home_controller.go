package controllers

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"guestpass/internal/domain"
)

//go:embed templates/home.html
var homeFS embed.FS

var homeTmpl = template.Must(template.ParseFS(homeFS, "templates/home.html"))

type HomeController struct {
	Logger      *slog.Logger
	SessionRepo domain.SessionRepository
}

func NewHomeController(logger *slog.Logger, sessionRepo domain.SessionRepository) *HomeController {
	return &HomeController{
		Logger:      logger,
		SessionRepo: sessionRepo,
	}
}

type homeView struct {
	Msg     string
	Records []*domain.AttendanceRecord
}

// Home renders the organizer's roster view: every session joined with its
// guest, ordered by entry time, plus the transient message from the last
// action.
func (c *HomeController) Home(w http.ResponseWriter, r *http.Request) {
	records, err := c.SessionRepo.ListAttendance(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "list attendance failed", "err", err)
		http.Error(w, "roster unavailable", http.StatusInternalServerError)
		return
	}

	view := homeView{
		Msg:     r.URL.Query().Get("msg"),
		Records: records,
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := homeTmpl.Execute(w, view); err != nil {
		c.Logger.ErrorContext(r.Context(), "render home failed", "err", err)
	}
}
