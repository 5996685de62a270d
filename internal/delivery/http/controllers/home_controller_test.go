package controllers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"guestpass/internal/domain"
)

type mockSessionRepo struct {
	records []*domain.AttendanceRecord
	err     error
}

func (m *mockSessionRepo) Create(ctx context.Context, session *domain.AttendanceSession) error {
	return nil
}

func (m *mockSessionRepo) LatestByGuestID(ctx context.Context, guestID string) (*domain.AttendanceSession, error) {
	return nil, domain.ErrNotFound
}

func (m *mockSessionRepo) Close(ctx context.Context, sessionID string, leftAt time.Time) error {
	return nil
}

func (m *mockSessionRepo) DeleteAll(ctx context.Context) error {
	return nil
}

func (m *mockSessionRepo) ListAttendance(ctx context.Context) ([]*domain.AttendanceRecord, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.records, nil
}

func TestHomeController_Home(t *testing.T) {
	entered := time.Date(2026, 9, 1, 19, 30, 0, 0, time.UTC)
	left := entered.Add(2 * time.Hour)
	repo := &mockSessionRepo{
		records: []*domain.AttendanceRecord{
			{GuestName: "Ada Lovelace", Email: "ada@example.com", EnteredAt: entered, LeftAt: &left},
			{GuestName: "Grace Hopper", EnteredAt: entered.Add(time.Minute)},
		},
	}
	ctrl := NewHomeController(testLogger(), repo)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	ctrl.Home(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	body := w.Body.String()
	for _, want := range []string{"Ada Lovelace", "Grace Hopper", "19:30:00", "21:30:00"} {
		if !strings.Contains(body, want) {
			t.Errorf("expected body to contain %q", want)
		}
	}
}

func TestHomeController_Home_ShowsMessage(t *testing.T) {
	ctrl := NewHomeController(testLogger(), &mockSessionRepo{})

	req := httptest.NewRequest(http.MethodGet, "/?msg=Attendance+reset", nil)
	w := httptest.NewRecorder()
	ctrl.Home(w, req)

	if !strings.Contains(w.Body.String(), "Attendance reset") {
		t.Fatalf("expected body to contain the action message")
	}
}

func TestHomeController_Home_EscapesMessage(t *testing.T) {
	ctrl := NewHomeController(testLogger(), &mockSessionRepo{})

	req := httptest.NewRequest(http.MethodGet, "/?msg=%3Cscript%3Ealert(1)%3C%2Fscript%3E", nil)
	w := httptest.NewRecorder()
	ctrl.Home(w, req)

	if strings.Contains(w.Body.String(), "<script>") {
		t.Fatalf("message was not HTML-escaped")
	}
}

func TestHomeController_Home_RepoError(t *testing.T) {
	ctrl := NewHomeController(testLogger(), &mockSessionRepo{err: errors.New("db down")})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	ctrl.Home(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
}
