package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"guestpass/internal/domain"
	"guestpass/internal/metrics"
)

// guestLocks serializes check-ins per guest. Entries are never evicted;
// the map stays guest-list sized.
type guestLocks struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func (g *guestLocks) lock(guestID string) func() {
	g.mu.Lock()
	l, ok := g.locks[guestID]
	if !ok {
		l = &sync.Mutex{}
		g.locks[guestID] = l
	}
	g.mu.Unlock()
	l.Lock()
	return l.Unlock
}

type checkInService struct {
	guestRepo   domain.GuestRepository
	sessionRepo domain.SessionRepository
	locks       guestLocks
	now         func() time.Time
}

// NewCheckInService creates a CheckInService over the given repositories.
func NewCheckInService(guestRepo domain.GuestRepository, sessionRepo domain.SessionRepository) domain.CheckInService {
	return &checkInService{
		guestRepo:   guestRepo,
		sessionRepo: sessionRepo,
		locks:       guestLocks{locks: make(map[string]*sync.Mutex)},
		now:         time.Now,
	}
}

// CheckIn toggles the guest's attendance state: no session or a closed
// latest session opens a new one, an open latest session is closed. The
// read-decide-write sequence holds the guest's lock so two simultaneous
// scans of one code cannot both open a session.
func (s *checkInService) CheckIn(ctx context.Context, guestID string) (*domain.CheckInResult, error) {
	guest, err := s.guestRepo.GetByID(ctx, guestID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			metrics.CheckIns.WithLabelValues("unknown_guest").Inc()
			return nil, domain.ErrNotFound
		}
		metrics.CheckIns.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("get guest: %w", err)
	}

	unlock := s.locks.lock(guestID)
	defer unlock()

	now := s.now()
	latest, err := s.sessionRepo.LatestByGuestID(ctx, guestID)

	var status domain.CheckInStatus
	switch {
	case errors.Is(err, domain.ErrNotFound):
		// First-ever scan for this guest.
		if err := s.openSession(ctx, guestID, now); err != nil {
			metrics.CheckIns.WithLabelValues("error").Inc()
			return nil, err
		}
		status = domain.CheckInWelcome

	case err != nil:
		metrics.CheckIns.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("get latest session: %w", err)

	case latest.LeftAt != nil:
		// Guest left earlier and is coming back.
		if err := s.openSession(ctx, guestID, now); err != nil {
			metrics.CheckIns.WithLabelValues("error").Inc()
			return nil, err
		}
		status = domain.CheckInEntryRecorded

	default:
		if err := s.sessionRepo.Close(ctx, latest.ID, now); err != nil {
			metrics.CheckIns.WithLabelValues("error").Inc()
			return nil, fmt.Errorf("close session: %w", err)
		}
		status = domain.CheckInExitRecorded
	}

	metrics.CheckIns.WithLabelValues(string(status)).Inc()
	return &domain.CheckInResult{Status: status, GuestName: guest.Name}, nil
}

func (s *checkInService) openSession(ctx context.Context, guestID string, enteredAt time.Time) error {
	session := &domain.AttendanceSession{
		ID:        uuid.NewString(),
		GuestID:   guestID,
		EnteredAt: enteredAt,
	}
	if err := s.sessionRepo.Create(ctx, session); err != nil {
		return fmt.Errorf("create session: %w", err)
	}
	return nil
}
