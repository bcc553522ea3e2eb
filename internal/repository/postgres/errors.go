package postgres

import (
	"errors"

	"talenthub-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// mapError translates driver-level errors into domain errors. Unique
// constraint violations (SQLSTATE 23505) become ErrDuplicate so the
// insert itself is the atomic duplicate check.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return domain.ErrDuplicate
	}
	return err
}
