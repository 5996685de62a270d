// Package metrics holds the service's prometheus collectors.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CheckIns counts check-in attempts by outcome: welcome,
	// entry_recorded, exit_recorded, unknown_guest, error.
	CheckIns = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guestpass_checkins_total",
		Help: "Check-in attempts by outcome",
	}, []string{"result"})

	// RosterImports counts roster import runs, labelled ok/error.
	RosterImports = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "guestpass_roster_imports_total",
		Help: "Roster import runs by outcome",
	}, []string{"result"})

	// CodesWritten counts QR artifacts written to disk.
	CodesWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "guestpass_codes_written_total",
		Help: "QR code artifacts written to disk",
	})
)
