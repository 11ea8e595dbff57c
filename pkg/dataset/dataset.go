package dataset

import (
	"fmt"
	"math"
	"reflect"
	"slices"
)

// Row maps a column name to its cell value. A column absent from the map
// reads as nil.
type Row map[string]any

// Dataset is an in-memory table: ordered column names and rows.
type Dataset struct {
	Columns []string
	Rows    []Row
}

// New creates an empty dataset with the given columns.
func New(columns ...string) *Dataset {
	return &Dataset{Columns: slices.Clone(columns)}
}

// Len returns the number of rows.
func (d *Dataset) Len() int {
	return len(d.Rows)
}

// HasColumn reports whether name is one of the dataset columns.
func (d *Dataset) HasColumn(name string) bool {
	return slices.Contains(d.Columns, name)
}

// Append adds a row given positionally, one value per column.
func (d *Dataset) Append(values ...any) error {
	if len(values) != len(d.Columns) {
		return fmt.Errorf("%w: got %d values for %d columns", ErrRowShape, len(values), len(d.Columns))
	}

	row := make(Row, len(values))
	for i, col := range d.Columns {
		row[col] = values[i]
	}
	d.Rows = append(d.Rows, row)
	return nil
}

// AppendRow adds a row. Keys not yet in Columns are appended to it in sorted
// order so the column list stays deterministic.
func (d *Dataset) AppendRow(row Row) {
	var extra []string
	for key := range row {
		if !d.HasColumn(key) {
			extra = append(extra, key)
		}
	}
	slices.Sort(extra)
	d.Columns = append(d.Columns, extra...)
	d.Rows = append(d.Rows, row)
}

// Column returns the values of one column in row order.
func (d *Dataset) Column(name string) ([]any, error) {
	if !d.HasColumn(name) {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, name)
	}

	values := make([]any, len(d.Rows))
	for i, row := range d.Rows {
		values[i] = row[name]
	}
	return values, nil
}

// Distinct returns the distinct values of a column in order of first
// appearance. Values must be comparable (strings, numbers, booleans, nil).
// All NaN cells count as one value, see Key.
func (d *Dataset) Distinct(name string) ([]any, error) {
	values, err := d.Column(name)
	if err != nil {
		return nil, err
	}

	seen := make(map[any]struct{})
	var distinct []any
	for i, v := range values {
		if !Comparable(v) {
			return nil, fmt.Errorf("%w: column %q row %d holds %T", ErrUncomparableValue, name, i, v)
		}
		k := Key(v)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		distinct = append(distinct, v)
	}
	return distinct, nil
}

// Clone returns a copy whose rows can be modified without touching d.
// Cell values themselves are shared.
func (d *Dataset) Clone() *Dataset {
	out := &Dataset{
		Columns: slices.Clone(d.Columns),
		Rows:    make([]Row, len(d.Rows)),
	}
	for i, row := range d.Rows {
		cp := make(Row, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out.Rows[i] = cp
	}
	return out
}

// Comparable reports whether v can be used as a map key.
func Comparable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}

type nanKey struct{}

// Key returns the map key a cell value is grouped under. It is v itself,
// except that every float NaN shares a single key: NaN never equals itself,
// so used as is it would be a new key on every lookup.
func Key(v any) any {
	switch f := v.(type) {
	case float64:
		if math.IsNaN(f) {
			return nanKey{}
		}
	case float32:
		if math.IsNaN(float64(f)) {
			return nanKey{}
		}
	}
	return v
}
