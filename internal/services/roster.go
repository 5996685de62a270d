package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"guestpass/internal/domain"
	"guestpass/internal/metrics"
)

type rosterService struct {
	logger    *slog.Logger
	source    domain.RosterSource
	guestRepo domain.GuestRepository
	issuer    domain.CodeIssuer
}

// NewRosterService creates a RosterService importing from source into the
// guest repository, issuing one code per guest.
func NewRosterService(
	logger *slog.Logger,
	source domain.RosterSource,
	guestRepo domain.GuestRepository,
	issuer domain.CodeIssuer,
) domain.RosterService {
	return &rosterService{
		logger:    logger,
		source:    source,
		guestRepo: guestRepo,
		issuer:    issuer,
	}
}

// Import is idempotent keyed by email: a row whose email is already on the
// roster reuses the existing guest and does not touch its name. Rows
// without an email always create a fresh guest.
func (s *rosterService) Import(ctx context.Context, force bool) (*domain.ImportSummary, error) {
	rows, err := s.source.Load(ctx)
	if err != nil {
		metrics.RosterImports.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("load roster: %w", err)
	}

	summary := &domain.ImportSummary{}
	for _, row := range rows {
		if row.Name == "" {
			s.logger.Warn("skipping roster row without a name", "email", row.Email)
			summary.Skipped++
			continue
		}

		guest, created, err := s.resolveOrCreate(ctx, row)
		if err != nil {
			metrics.RosterImports.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("resolve guest %q: %w", row.Name, err)
		}
		if created {
			summary.Created++
		} else {
			summary.Existing++
		}

		path, wrote, err := s.issuer.EnsureCode(guest.ID, guest.Name, force)
		if err != nil {
			metrics.RosterImports.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("issue code for %q: %w", guest.Name, err)
		}
		if wrote {
			summary.CodesWritten++
			metrics.CodesWritten.Inc()
			s.logger.Debug("code written", "guest", guest.Name, "path", path)
		}
	}

	metrics.RosterImports.WithLabelValues("ok").Inc()
	s.logger.Info("roster imported",
		"created", summary.Created,
		"existing", summary.Existing,
		"skipped", summary.Skipped,
		"codes_written", summary.CodesWritten,
	)
	return summary, nil
}

func (s *rosterService) resolveOrCreate(ctx context.Context, row domain.RosterRow) (*domain.Guest, bool, error) {
	if row.Email != "" {
		existing, err := s.guestRepo.GetByEmail(ctx, row.Email)
		if err == nil {
			return existing, false, nil
		}
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, false, fmt.Errorf("get guest by email: %w", err)
		}
	}

	guest := domain.NewGuest(row.Name, row.Email, time.Now())
	guest.ID = uuid.NewString()
	if err := s.guestRepo.Create(ctx, guest); err != nil {
		// Lost an insert race on the email index; the row is already merged.
		if errors.Is(err, domain.ErrDuplicateEmail) && row.Email != "" {
			existing, getErr := s.guestRepo.GetByEmail(ctx, row.Email)
			if getErr != nil {
				return nil, false, fmt.Errorf("get guest after duplicate: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create guest: %w", err)
	}
	return guest, true, nil
}
