package services

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/campus-exchange/campusmarket/internal/db"
)

// Store is the data access surface the service handlers depend on.
type Store interface {
	Insert(ctx context.Context, s *Service) error

	// ListFrom returns services dated on or after the given YYYY-MM-DD
	// day, soonest first.
	ListFrom(ctx context.Context, from string) ([]Service, error)

	// ListAll returns every service ordered by available_date for the
	// calendar surface.
	ListAll(ctx context.Context) ([]Service, error)

	// Book flips is_available to false, but only when it is still true.
	// Zero affected rows means the slot is gone or already booked.
	Book(ctx context.Context, id string) (int64, error)

	Exists(ctx context.Context, id string) (bool, error)
}

type pgStore struct{}

// NewStore returns a Store backed by the shared pgx pool.
func NewStore() Store { return pgStore{} }

const serviceColumns = `id, title, description, category, price, to_char(available_date, 'YYYY-MM-DD'), start_time, end_time, is_available, created_at, updated_at`

func (pgStore) Insert(ctx context.Context, s *Service) error {
	return db.Conn.QueryRow(ctx,
		`INSERT INTO services (id, title, description, category, price, available_date, start_time, end_time, is_available)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, TRUE)
         RETURNING is_available, created_at, updated_at`,
		s.ID, s.Title, s.Description, s.Category, s.Price, s.AvailableDate, s.StartTime, s.EndTime,
	).Scan(&s.IsAvailable, &s.CreatedAt, &s.UpdatedAt)
}

func (pgStore) ListFrom(ctx context.Context, from string) ([]Service, error) {
	rows, err := db.Conn.Query(ctx,
		`SELECT `+serviceColumns+`
         FROM services
         WHERE available_date >= $1
         ORDER BY available_date ASC`,
		from,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanServices(rows)
}

func (pgStore) ListAll(ctx context.Context) ([]Service, error) {
	rows, err := db.Conn.Query(ctx,
		`SELECT `+serviceColumns+`
         FROM services
         ORDER BY available_date ASC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanServices(rows)
}

func scanServices(rows pgx.Rows) ([]Service, error) {
	var items []Service
	for rows.Next() {
		var s Service
		if err := rows.Scan(&s.ID, &s.Title, &s.Description, &s.Category, &s.Price,
			&s.AvailableDate, &s.StartTime, &s.EndTime, &s.IsAvailable, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	return items, rows.Err()
}

func (pgStore) Book(ctx context.Context, id string) (int64, error) {
	// Conditional write: losing a booking race reports a conflict
	// instead of overwriting silently.
	tag, err := db.Conn.Exec(ctx,
		`UPDATE services
         SET is_available = FALSE, updated_at = CURRENT_TIMESTAMP
         WHERE id = $1 AND is_available = TRUE`,
		id,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (pgStore) Exists(ctx context.Context, id string) (bool, error) {
	var exists bool
	err := db.Conn.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM services WHERE id = $1)`, id,
	).Scan(&exists)
	return exists, err
}
