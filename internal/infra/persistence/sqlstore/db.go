package sqlstore

import (
	"context"
	"time"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

// Open creates the connection pool for driver ("mysql" or "pgx"). It does
// not dial; call Ping to check the store is reachable.
func Open(driver, dsn string, maxOpen int, lifetime time.Duration) (*sqlx.DB, error) {
	db, err := sqlx.Open(driver, dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", driver)
	}
	if maxOpen > 0 {
		db.SetMaxOpenConns(maxOpen)
		db.SetMaxIdleConns(maxOpen)
	}
	if lifetime > 0 {
		db.SetConnMaxLifetime(lifetime)
	}
	return db, nil
}

func Ping(ctx context.Context, db *sqlx.DB) error {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return errors.Wrap(db.PingContext(ctx), "ping store")
}

// usesReturning reports whether inserted ids come back through RETURNING
// rather than LastInsertId.
func usesReturning(db *sqlx.DB) bool {
	return sqlx.BindType(db.DriverName()) == sqlx.DOLLAR
}
