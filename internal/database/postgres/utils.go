package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/osse101/cmsadmin/internal/domain"
)

// isUniqueViolation reports whether err is a unique constraint violation
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation
}

// dbError maps driver errors onto coded domain errors
func dbError(msg string, err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.WrapError(domain.CodeNotFound, msg, err)
	}
	return domain.WrapError(domain.CodeDatabaseError, msg, err)
}
