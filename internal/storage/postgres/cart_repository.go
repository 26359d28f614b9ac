package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
)

type cartRepository struct {
	db *sql.DB
}

// NewCartRepository создаёт PostgreSQL-реализацию CartRepository.
func NewCartRepository(store *Store) domain.CartRepository {
	return &cartRepository{db: store.DB()}
}

func (r *cartRepository) List(userID int64) ([]domain.CartItem, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, `
		SELECT c.id, c.quantity,
		       p.id, p.category, p.name, p.subtitle, p.description, p.price, p.image, p.tags
		FROM cart c
		JOIN products p ON c.product_id = p.id
		WHERE c.user_id = $1
		ORDER BY c.id ASC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	defer rows.Close()

	items := make([]domain.CartItem, 0)
	for rows.Next() {
		var item domain.CartItem
		if err := rows.Scan(
			&item.CartID, &item.Quantity,
			&item.Product.ID, &item.Category, &item.Product.Name, &item.Subtitle,
			&item.Description, &item.Price, &item.Image, &item.Tags,
		); err != nil {
			return nil, fmt.Errorf("scan cart row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cart rows: %w", err)
	}

	return items, nil
}

// Add прибавляет quantity к существующей строке (отрицательное значение
// уменьшает количество) или создаёт новую.
func (r *cartRepository) Add(userID, productID int64, quantity int) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO cart (user_id, product_id, quantity)
		VALUES ($1, $2, $3)
		ON CONFLICT (user_id, product_id)
		DO UPDATE SET quantity = cart.quantity + EXCLUDED.quantity
	`, userID, productID, quantity)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.ErrProductNotFound
		}
		return fmt.Errorf("upsert cart line: %w", err)
	}

	return nil
}

func (r *cartRepository) Remove(cartID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM cart WHERE id = $1`, cartID); err != nil {
		return fmt.Errorf("delete cart line: %w", err)
	}
	return nil
}

func (r *cartRepository) Clear(userID int64) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, `DELETE FROM cart WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23503"
	}
	return false
}

var _ domain.CartRepository = (*cartRepository)(nil)
