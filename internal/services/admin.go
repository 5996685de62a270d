package services

import (
	"context"
	"fmt"
	"log/slog"

	"guestpass/internal/domain"
)

type adminService struct {
	logger       *slog.Logger
	roster       domain.RosterService
	guestRepo    domain.GuestRepository
	sessionRepo  domain.SessionRepository
	issuer       domain.CodeIssuer
	emailService domain.EmailService
}

// NewAdminService creates the organizer-facing maintenance service.
func NewAdminService(
	logger *slog.Logger,
	roster domain.RosterService,
	guestRepo domain.GuestRepository,
	sessionRepo domain.SessionRepository,
	issuer domain.CodeIssuer,
	emailService domain.EmailService,
) domain.AdminService {
	return &adminService{
		logger:       logger,
		roster:       roster,
		guestRepo:    guestRepo,
		sessionRepo:  sessionRepo,
		issuer:       issuer,
		emailService: emailService,
	}
}

func (s *adminService) RegenerateCodes(ctx context.Context) (*domain.ImportSummary, error) {
	summary, err := s.roster.Import(ctx, true)
	if err != nil {
		return nil, fmt.Errorf("regenerate codes: %w", err)
	}
	return summary, nil
}

func (s *adminService) PurgeCodes(ctx context.Context) (int, error) {
	removed, err := s.issuer.PurgeAll()
	if err != nil {
		return removed, fmt.Errorf("purge codes: %w", err)
	}
	s.logger.Info("code artifacts purged", "removed", removed)
	return removed, nil
}

func (s *adminService) ResetAttendance(ctx context.Context) error {
	if err := s.sessionRepo.DeleteAll(ctx); err != nil {
		return fmt.Errorf("reset attendance: %w", err)
	}
	s.logger.Info("attendance ledger reset")
	return nil
}

// SendInvitations walks the roster and hands one invitation per emailed
// guest to the mailer. A failed send is logged and skipped, it does not
// abort the run.
func (s *adminService) SendInvitations(ctx context.Context) (int, error) {
	guests, err := s.guestRepo.List(ctx)
	if err != nil {
		return 0, fmt.Errorf("list guests: %w", err)
	}

	sent := 0
	for _, guest := range guests {
		if guest.Email == "" {
			continue
		}
		data := &domain.InvitationEmailData{
			Email:     guest.Email,
			GuestName: guest.Name,
			CodeURL:   s.issuer.CheckInURL(guest.ID),
		}
		if err := s.emailService.SendInvitation(ctx, data); err != nil {
			s.logger.Error("invitation failed", "guest", guest.Name, "err", err)
			continue
		}
		sent++
	}
	s.logger.Info("invitation run finished", "sent", sent, "guests", len(guests))
	return sent, nil
}
