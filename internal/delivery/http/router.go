package http

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"guestpass/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	home *controllers.HomeController,
	checkIn *controllers.CheckInController,
	admin *controllers.AdminController,
	rosterAPI *controllers.RosterAPIController,
	qrDir string,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Pages
	mux.HandleFunc("GET /{$}", home.Home)
	mux.HandleFunc("GET /confirmar", checkIn.Confirm)

	// Organizer actions
	mux.HandleFunc("POST /admin/regenerate", admin.Regenerate)
	mux.HandleFunc("POST /admin/purge", admin.Purge)
	mux.HandleFunc("POST /admin/reset", admin.Reset)
	mux.HandleFunc("POST /admin/notify", admin.Notify)

	// JSON API
	mux.HandleFunc("GET /api/roster", rosterAPI.ListGuests)
	mux.HandleFunc("GET /api/attendance", rosterAPI.ListAttendance)

	// Code artifacts as static content
	mux.Handle("GET /static/qrs/", http.StripPrefix("/static/qrs/", http.FileServer(http.Dir(qrDir))))

	// Observability and docs
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
