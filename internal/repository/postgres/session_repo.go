package postgres

import (
	"context"
	"database/sql"
	"time"

	"guestpass/internal/domain"
)

type sessionRepository struct {
	DB *sql.DB
}

// NewSessionRepository creates a SessionRepository backed by postgres.
func NewSessionRepository(db *sql.DB) domain.SessionRepository {
	return &sessionRepository{DB: db}
}

func (r *sessionRepository) Create(ctx context.Context, s *domain.AttendanceSession) error {
	query := `
		INSERT INTO attendance_sessions (id, guest_id, entered_at, left_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := r.DB.ExecContext(ctx, query, s.ID, s.GuestID, s.EnteredAt, s.LeftAt)
	return err
}

func (r *sessionRepository) LatestByGuestID(ctx context.Context, guestID string) (*domain.AttendanceSession, error) {
	query := `
		SELECT id, guest_id, entered_at, left_at
		FROM attendance_sessions
		WHERE guest_id = $1
		ORDER BY entered_at DESC
		LIMIT 1
	`
	s := &domain.AttendanceSession{}
	err := r.DB.QueryRowContext(ctx, query, guestID).Scan(&s.ID, &s.GuestID, &s.EnteredAt, &s.LeftAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

func (r *sessionRepository) Close(ctx context.Context, sessionID string, leftAt time.Time) error {
	query := `
		UPDATE attendance_sessions
		SET left_at = $1
		WHERE id = $2 AND left_at IS NULL
	`
	res, err := r.DB.ExecContext(ctx, query, leftAt, sessionID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *sessionRepository) DeleteAll(ctx context.Context) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM attendance_sessions`)
	return err
}

func (r *sessionRepository) ListAttendance(ctx context.Context) ([]*domain.AttendanceRecord, error) {
	query := `
		SELECT g.name, COALESCE(g.email, ''), s.entered_at, s.left_at
		FROM attendance_sessions s
		JOIN guests g ON g.id = s.guest_id
		ORDER BY s.entered_at
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*domain.AttendanceRecord
	for rows.Next() {
		rec := &domain.AttendanceRecord{}
		if err := rows.Scan(&rec.GuestName, &rec.Email, &rec.EnteredAt, &rec.LeftAt); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if records == nil {
		records = []*domain.AttendanceRecord{}
	}
	return records, nil
}
