package pg

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/dmitrymomot/sillynames/pkg/anonymizer"
	"github.com/dmitrymomot/sillynames/pkg/dataset"
)

// Querier runs a query returning rows. *pgxpool.Pool, *pgx.Conn and pgx.Tx satisfy it.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

// TxBeginner starts a transaction. *pgxpool.Pool and *pgx.Conn satisfy it.
type TxBeginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// LoadTable reads a table into a dataset. table may be schema-qualified
// ("public.rides"). With no columns every column is selected, in table order.
func LoadTable(ctx context.Context, q Querier, table string, columns ...string) (*dataset.Dataset, error) {
	query, err := selectQuery(table, columns)
	if err != nil {
		return nil, err
	}

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, errors.Join(ErrFailedToLoadTable, err)
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.Name
	}

	ds := dataset.New(names...)
	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return nil, errors.Join(ErrFailedToLoadTable, err)
		}
		if err := ds.Append(values...); err != nil {
			return nil, errors.Join(ErrFailedToLoadTable, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Join(ErrFailedToLoadTable, err)
	}

	return ds, nil
}

// ApplyMapping rewrites column in place, replacing every original value of m
// with its placeholder, and returns the number of updated rows.
//
// All text assignments are applied by a single UPDATE inside one transaction,
// so a placeholder that equals another original value is never substituted
// twice. A nil original stands for SQL NULL and is applied afterwards to the
// rows that are still NULL. Only text columns are supported: any other
// original fails with ErrNonTextValue before the transaction starts.
func ApplyMapping(ctx context.Context, db TxBeginner, table, column string, m anonymizer.Mapping) (int64, error) {
	if len(m) == 0 {
		return 0, nil
	}

	query, err := updateQuery(table, column)
	if err != nil {
		return 0, err
	}

	originals := make([]string, 0, len(m))
	placeholders := make([]string, 0, len(m))
	var nullPlaceholder *string
	for _, a := range m {
		switch v := a.Original.(type) {
		case string:
			originals = append(originals, v)
			placeholders = append(placeholders, a.Placeholder)
		case nil:
			p := a.Placeholder
			nullPlaceholder = &p
		default:
			return 0, fmt.Errorf("%w: %T value %v", ErrNonTextValue, v, v)
		}
	}

	tx, err := db.Begin(ctx)
	if err != nil {
		return 0, errors.Join(ErrFailedToApplyMapping, err)
	}
	// no-op once committed
	defer func() { _ = tx.Rollback(ctx) }()

	var affected int64
	if len(originals) > 0 {
		tag, err := tx.Exec(ctx, query, originals, placeholders)
		if err != nil {
			return 0, errors.Join(ErrFailedToApplyMapping, err)
		}
		affected += tag.RowsAffected()
	}

	// Runs second: the first statement never writes NULL, so only rows that
	// were NULL from the start match here.
	if nullPlaceholder != nil {
		tag, err := tx.Exec(ctx, nullUpdateQuery(table, column), *nullPlaceholder)
		if err != nil {
			return 0, errors.Join(ErrFailedToApplyMapping, err)
		}
		affected += tag.RowsAffected()
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, errors.Join(ErrFailedToApplyMapping, err)
	}

	return affected, nil
}

func selectQuery(table string, columns []string) (string, error) {
	from, err := tableIdentifier(table)
	if err != nil {
		return "", err
	}
	if len(columns) == 0 {
		return "SELECT * FROM " + from, nil
	}

	quoted := make([]string, len(columns))
	for i, c := range columns {
		if c == "" {
			return "", fmt.Errorf("%w: empty column name", ErrInvalidIdentifier)
		}
		quoted[i] = pgx.Identifier{c}.Sanitize()
	}
	return "SELECT " + strings.Join(quoted, ", ") + " FROM " + from, nil
}

func updateQuery(table, column string) (string, error) {
	target, err := tableIdentifier(table)
	if err != nil {
		return "", err
	}
	if column == "" {
		return "", fmt.Errorf("%w: empty column name", ErrInvalidIdentifier)
	}
	col := pgx.Identifier{column}.Sanitize()

	return "UPDATE " + target + " AS t SET " + col + " = m.placeholder" +
		" FROM unnest($1::text[], $2::text[]) AS m(original, placeholder)" +
		" WHERE t." + col + "::text = m.original", nil
}

// nullUpdateQuery expects identifiers already checked by updateQuery.
func nullUpdateQuery(table, column string) string {
	target, _ := tableIdentifier(table)
	col := pgx.Identifier{column}.Sanitize()
	return "UPDATE " + target + " SET " + col + " = $1 WHERE " + col + " IS NULL"
}

func tableIdentifier(table string) (string, error) {
	parts := strings.Split(table, ".")
	for _, p := range parts {
		if strings.TrimSpace(p) == "" {
			return "", fmt.Errorf("%w: %q", ErrInvalidIdentifier, table)
		}
	}
	return pgx.Identifier(parts).Sanitize(), nil
}
