package sqlstore

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"

	domuser "example.com/product-catalog/internal/domain/user"
)

type userRow struct {
	ID           int64  `db:"id"`
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password_hash"`
	RoleCode     string `db:"role_code"`
}

type UserRepository struct {
	db *sqlx.DB
}

func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domuser.User, error) {
	var row userRow
	err := r.db.GetContext(ctx, &row, r.db.Rebind(`
        SELECT id, name, email, password_hash, role_code
        FROM users WHERE email = ?`), email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domuser.ErrUserNotFound
		}
		return nil, errors.Wrap(err, "get user by email")
	}

	role, err := domuser.ParseRoleCode(row.RoleCode)
	if err != nil {
		return nil, errors.Wrapf(err, "user %d", row.ID)
	}

	return &domuser.User{
		ID:           row.ID,
		Name:         row.Name,
		Email:        row.Email,
		PasswordHash: row.PasswordHash,
		RoleCode:     role,
	}, nil
}
