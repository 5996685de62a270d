package services

import (
	"context"
	"sort"
	"sync"
	"time"

	"guestpass/internal/domain"
)

// fakeGuestRepo implements domain.GuestRepository for tests.
type fakeGuestRepo struct {
	mu        sync.Mutex
	byID      map[string]*domain.Guest
	byEmail   map[string]*domain.Guest
	created   []string
	createErr error
	getErr    error
}

func newFakeGuestRepo() *fakeGuestRepo {
	return &fakeGuestRepo{
		byID:    make(map[string]*domain.Guest),
		byEmail: make(map[string]*domain.Guest),
	}
}

func (f *fakeGuestRepo) add(g *domain.Guest) {
	f.byID[g.ID] = g
	if g.Email != "" {
		f.byEmail[g.Email] = g
	}
}

func (f *fakeGuestRepo) Create(ctx context.Context, g *domain.Guest) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	if g.Email != "" {
		if _, ok := f.byEmail[g.Email]; ok {
			return domain.ErrDuplicateEmail
		}
	}
	f.add(g)
	f.created = append(f.created, g.ID)
	return nil
}

func (f *fakeGuestRepo) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.getErr != nil {
		return nil, f.getErr
	}
	if g, ok := f.byID[id]; ok {
		return g, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGuestRepo) GetByEmail(ctx context.Context, email string) (*domain.Guest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if g, ok := f.byEmail[email]; ok {
		return g, nil
	}
	return nil, domain.ErrNotFound
}

func (f *fakeGuestRepo) List(ctx context.Context) ([]*domain.Guest, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	guests := make([]*domain.Guest, 0, len(f.byID))
	for _, g := range f.byID {
		guests = append(guests, g)
	}
	sort.Slice(guests, func(i, j int) bool { return guests[i].Name < guests[j].Name })
	return guests, nil
}

// fakeSessionRepo implements domain.SessionRepository for tests.
type fakeSessionRepo struct {
	mu        sync.Mutex
	sessions  []*domain.AttendanceSession
	records   []*domain.AttendanceRecord
	createErr error
	deleteErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{}
}

func (f *fakeSessionRepo) Create(ctx context.Context, s *domain.AttendanceSession) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	cp := *s
	f.sessions = append(f.sessions, &cp)
	return nil
}

func (f *fakeSessionRepo) LatestByGuestID(ctx context.Context, guestID string) (*domain.AttendanceSession, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var latest *domain.AttendanceSession
	for _, s := range f.sessions {
		if s.GuestID != guestID {
			continue
		}
		if latest == nil || s.EnteredAt.After(latest.EnteredAt) {
			latest = s
		}
	}
	if latest == nil {
		return nil, domain.ErrNotFound
	}
	cp := *latest
	return &cp, nil
}

func (f *fakeSessionRepo) Close(ctx context.Context, sessionID string, leftAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.sessions {
		if s.ID == sessionID && s.LeftAt == nil {
			t := leftAt
			s.LeftAt = &t
			return nil
		}
	}
	return domain.ErrNotFound
}

func (f *fakeSessionRepo) DeleteAll(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.sessions = nil
	return nil
}

func (f *fakeSessionRepo) ListAttendance(ctx context.Context) ([]*domain.AttendanceRecord, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.records, nil
}

// fakeIssuer implements domain.CodeIssuer for tests.
type fakeIssuer struct {
	mu      sync.Mutex
	written map[string]int // guestID -> write count
	force   []bool
	purged  int
	err     error
}

func newFakeIssuer() *fakeIssuer {
	return &fakeIssuer{written: make(map[string]int)}
}

func (f *fakeIssuer) EnsureCode(guestID, name string, force bool) (string, bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", false, f.err
	}
	f.force = append(f.force, force)
	wrote := force || f.written[guestID] == 0
	if wrote {
		f.written[guestID]++
	}
	return "qrs/" + name + "_" + guestID + ".png", wrote, nil
}

func (f *fakeIssuer) CheckInURL(guestID string) string {
	return "http://party.local/confirmar?id=" + guestID
}

func (f *fakeIssuer) PurgeAll() (int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return 0, f.err
	}
	removed := len(f.written)
	f.written = make(map[string]int)
	f.purged += removed
	return removed, nil
}

// fakeRosterSource implements domain.RosterSource for tests.
type fakeRosterSource struct {
	rows []domain.RosterRow
	err  error
}

func (f *fakeRosterSource) Load(ctx context.Context) ([]domain.RosterRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

// fakeMailer implements domain.Mailer for tests.
type fakeMailer struct {
	mu   sync.Mutex
	sent []string // recipients
	err  error
}

func (f *fakeMailer) Send(to, subject, html, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, to)
	return nil
}

// fakeRenderer implements domain.EmailTemplateRenderer for tests.
type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(templateName string, data any) (string, string, string, error) {
	if f.err != nil {
		return "", "", "", f.err
	}
	return "subject", "<p>html</p>", "text", nil
}
