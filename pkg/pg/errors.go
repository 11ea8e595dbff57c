package pg

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrFailedToOpenDBConnection = errors.New("failed to open db connection")
	ErrEmptyConnectionString    = errors.New("empty postgres connection string, use PG_CONN_URL env var")
	ErrFailedToParseDBConfig    = errors.New("failed to parse db config")
	ErrInvalidIdentifier        = errors.New("invalid table or column name")
	ErrFailedToLoadTable        = errors.New("failed to load table")
	ErrFailedToApplyMapping     = errors.New("failed to apply mapping")
	ErrNonTextValue             = errors.New("only text values can be written back")
)

// IsNotFoundError detects pgx.ErrNoRows.
func IsNotFoundError(err error) bool {
	if err == nil {
		return false
	}
	return errors.Is(err, pgx.ErrNoRows)
}

// IsUndefinedTableError detects references to a missing table (SQLSTATE 42P01).
func IsUndefinedTableError(err error) bool {
	return hasCode(err, "42P01")
}

// IsUndefinedColumnError detects references to a missing column (SQLSTATE 42703).
func IsUndefinedColumnError(err error) bool {
	return hasCode(err, "42703")
}

func hasCode(err error, code string) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
