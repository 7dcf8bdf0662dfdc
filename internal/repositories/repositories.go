package repositories

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shaikhmohammadtalha/mern-wanderlist/internal/logger"
)

// ErrUniqueViolation is returned when an insert collides with a unique index.
var ErrUniqueViolation = errors.New("unique constraint violation")

const pgUniqueViolation = "23505"

// mapPgError converts driver errors the services care about into sentinels.
func mapPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrUniqueViolation
	}
	return err
}

// logQuery logs query on a single line together with its args, result and error.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}
