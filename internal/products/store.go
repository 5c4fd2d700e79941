package products

import (
	"context"
	"time"

	"github.com/campus-exchange/campusmarket/internal/db"
)

// Store is the data access surface the product handlers depend on.
type Store interface {
	Insert(ctx context.Context, p *Product) error
	ListByType(ctx context.Context, listingType string) ([]Product, error)

	// GetType returns the listing type for an id, or pgx.ErrNoRows when
	// the row has vanished.
	GetType(ctx context.Context, id string) (string, error)

	// Delete removes a sell listing and reports how many rows went away.
	Delete(ctx context.Context, id string) (int64, error)

	// MarkRented stamps rented_at on a rent listing, but only when no
	// rental window is currently active. Zero affected rows means the
	// item is gone or already rented out.
	MarkRented(ctx context.Context, id string, rentedAt time.Time) (int64, error)
}

type pgStore struct{}

// NewStore returns a Store backed by the shared pgx pool.
func NewStore() Store { return pgStore{} }

func (pgStore) Insert(ctx context.Context, p *Product) error {
	return db.Conn.QueryRow(ctx,
		`INSERT INTO products (id, title, description, price, category, type, condition, duration_days, image_url, is_available, rented_at)
         VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, TRUE, NULL)
         RETURNING is_available, created_at, updated_at`,
		p.ID, p.Title, p.Description, p.Price, p.Category, p.Type, p.Condition, p.DurationDays, p.ImageURL,
	).Scan(&p.IsAvailable, &p.CreatedAt, &p.UpdatedAt)
}

func (pgStore) ListByType(ctx context.Context, listingType string) ([]Product, error) {
	rows, err := db.Conn.Query(ctx,
		`SELECT id, title, description, price, category, type, condition, duration_days, image_url, is_available, rented_at, created_at, updated_at
         FROM products
         WHERE type = $1 AND is_available = TRUE
         ORDER BY created_at DESC`,
		listingType,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []Product
	for rows.Next() {
		var p Product
		if err := rows.Scan(&p.ID, &p.Title, &p.Description, &p.Price, &p.Category, &p.Type, &p.Condition,
			&p.DurationDays, &p.ImageURL, &p.IsAvailable, &p.RentedAt, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	return items, rows.Err()
}

func (pgStore) GetType(ctx context.Context, id string) (string, error) {
	var listingType string
	err := db.Conn.QueryRow(ctx, `SELECT type FROM products WHERE id = $1`, id).Scan(&listingType)
	return listingType, err
}

func (pgStore) Delete(ctx context.Context, id string) (int64, error) {
	tag, err := db.Conn.Exec(ctx, `DELETE FROM products WHERE id = $1 AND type = 'sell'`, id)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func (pgStore) MarkRented(ctx context.Context, id string, rentedAt time.Time) (int64, error) {
	// The guard doubles as the concurrency check: a second renter inside
	// the active window affects zero rows instead of silently winning.
	tag, err := db.Conn.Exec(ctx,
		`UPDATE products
         SET rented_at = $2, updated_at = $2
         WHERE id = $1 AND type = 'rent'
           AND (rented_at IS NULL
                OR rented_at + make_interval(days => COALESCE(duration_days, 0)) <= $2)`,
		id, rentedAt,
	)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
