package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/vladislavdragonenkov/dongbei-mall/internal/domain"
)

type userRepository struct {
	db *sql.DB
}

// NewUserRepository создаёт PostgreSQL-реализацию UserRepository.
func NewUserRepository(store *Store) domain.UserRepository {
	return &userRepository{db: store.DB()}
}

func (r *userRepository) Get(id int64) (domain.UserProfile, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	var profile domain.UserProfile
	err := r.db.QueryRowContext(ctx, `
		SELECT id, name, phone, address, email
		FROM users
		WHERE id = $1
	`, id).Scan(&profile.ID, &profile.Name, &profile.Phone, &profile.Address, &profile.Email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.UserProfile{}, domain.ErrUserNotFound
		}
		return domain.UserProfile{}, fmt.Errorf("select user: %w", err)
	}

	return profile, nil
}

func (r *userRepository) Update(id int64, profile domain.UserProfile) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET name = $1, phone = $2, address = $3, email = $4
		WHERE id = $5
	`, profile.Name, profile.Phone, profile.Address, profile.Email, id)
	if err != nil {
		return fmt.Errorf("update user: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return domain.ErrUserNotFound
	}

	return nil
}

var _ domain.UserRepository = (*userRepository)(nil)
