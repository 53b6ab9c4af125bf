package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"github.com/teamboard/backend/internal/apperr"
)

const pgUniqueViolation = "23505"

// translate maps driver and gorm errors onto apperr kinds. notFound is the
// message used when the query matched no row.
func translate(op string, err error, notFound string) error {
	if err == nil {
		return nil
	}
	var appErr *apperr.Error
	if errors.As(err, &appErr) {
		return err
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound(op, notFound)
	}
	if isUniqueViolation(err) {
		return &apperr.Error{Kind: apperr.KindConflict, Op: op, Msg: "already exists", Err: err}
	}
	return apperr.Internal(op, err)
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
