package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"guestpass/internal/domain"
)

type guestRepository struct {
	DB *sql.DB
}

// NewGuestRepository creates a GuestRepository backed by postgres.
func NewGuestRepository(db *sql.DB) domain.GuestRepository {
	return &guestRepository{DB: db}
}

func (r *guestRepository) Create(ctx context.Context, g *domain.Guest) error {
	query := `
		INSERT INTO guests (id, name, email, created_at)
		VALUES ($1, $2, $3, $4)
	`
	email := sql.NullString{String: g.Email, Valid: g.Email != ""}
	_, err := r.DB.ExecContext(ctx, query, g.ID, g.Name, email, g.CreatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *guestRepository) GetByID(ctx context.Context, id string) (*domain.Guest, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), created_at
		FROM guests
		WHERE id = $1
	`
	g := &domain.Guest{}
	err := r.DB.QueryRowContext(ctx, query, id).Scan(&g.ID, &g.Name, &g.Email, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) GetByEmail(ctx context.Context, email string) (*domain.Guest, error) {
	// NULL emails never match anything, including each other.
	query := `
		SELECT id, name, COALESCE(email, ''), created_at
		FROM guests
		WHERE email = $1
	`
	g := &domain.Guest{}
	err := r.DB.QueryRowContext(ctx, query, email).Scan(&g.ID, &g.Name, &g.Email, &g.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return g, nil
}

func (r *guestRepository) List(ctx context.Context) ([]*domain.Guest, error) {
	query := `
		SELECT id, name, COALESCE(email, ''), created_at
		FROM guests
		ORDER BY name, created_at
	`
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var guests []*domain.Guest
	for rows.Next() {
		g := &domain.Guest{}
		if err := rows.Scan(&g.ID, &g.Name, &g.Email, &g.CreatedAt); err != nil {
			return nil, err
		}
		guests = append(guests, g)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if guests == nil {
		guests = []*domain.Guest{}
	}
	return guests, nil
}
