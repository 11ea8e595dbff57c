package dataset_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sillynames/pkg/dataset"
)

func rides(t *testing.T) *dataset.Dataset {
	t.Helper()
	d := dataset.New("ride_name", "wait_minutes")
	require.NoError(t, d.Append("CoasterX", 10))
	require.NoError(t, d.Append("CoasterX", 25))
	require.NoError(t, d.Append("CoasterY", 5))
	return d
}

func TestDataset_Append(t *testing.T) {
	t.Parallel()

	d := rides(t)
	assert.Equal(t, 3, d.Len())
	assert.Equal(t, dataset.Row{"ride_name": "CoasterX", "wait_minutes": 10}, d.Rows[0])

	err := d.Append("only one")
	assert.ErrorIs(t, err, dataset.ErrRowShape)
	assert.Equal(t, 3, d.Len())
}

func TestDataset_AppendRow(t *testing.T) {
	t.Parallel()

	d := dataset.New("ride_name")
	d.AppendRow(dataset.Row{"ride_name": "CoasterX", "zone": "north", "area": "A"})
	d.AppendRow(dataset.Row{"ride_name": "CoasterY"})

	assert.Equal(t, []string{"ride_name", "area", "zone"}, d.Columns)

	zones, err := d.Column("zone")
	require.NoError(t, err)
	assert.Equal(t, []any{"north", nil}, zones)
}

func TestDataset_Column(t *testing.T) {
	t.Parallel()

	d := rides(t)

	values, err := d.Column("ride_name")
	require.NoError(t, err)
	assert.Equal(t, []any{"CoasterX", "CoasterX", "CoasterY"}, values)

	_, err = d.Column("park")
	assert.ErrorIs(t, err, dataset.ErrColumnNotFound)
	assert.True(t, d.HasColumn("wait_minutes"))
	assert.False(t, d.HasColumn("park"))
}

func TestDataset_Distinct(t *testing.T) {
	t.Parallel()

	t.Run("first seen order", func(t *testing.T) {
		t.Parallel()
		d := dataset.New("ride_name")
		for _, v := range []any{"B", "A", "B", "C", "A", nil, "C"} {
			require.NoError(t, d.Append(v))
		}

		distinct, err := d.Distinct("ride_name")
		require.NoError(t, err)
		assert.Equal(t, []any{"B", "A", "C", nil}, distinct)
	})

	t.Run("mixed scalar types are distinct", func(t *testing.T) {
		t.Parallel()
		d := dataset.New("v")
		for _, v := range []any{"1", 1, 1.0, true, "1"} {
			require.NoError(t, d.Append(v))
		}

		distinct, err := d.Distinct("v")
		require.NoError(t, err)
		assert.Equal(t, []any{"1", 1, 1.0, true}, distinct)
	})

	t.Run("nan cells are one value", func(t *testing.T) {
		t.Parallel()
		d := dataset.New("v")
		for _, v := range []any{math.NaN(), "A", math.NaN(), float32(math.NaN())} {
			require.NoError(t, d.Append(v))
		}

		distinct, err := d.Distinct("v")
		require.NoError(t, err)
		require.Len(t, distinct, 2)
		assert.True(t, math.IsNaN(distinct[0].(float64)))
		assert.Equal(t, "A", distinct[1])
	})

	t.Run("uncomparable value", func(t *testing.T) {
		t.Parallel()
		d := dataset.New("v")
		require.NoError(t, d.Append("ok"))
		require.NoError(t, d.Append([]any{"nested"}))

		_, err := d.Distinct("v")
		assert.ErrorIs(t, err, dataset.ErrUncomparableValue)
	})

	t.Run("missing column", func(t *testing.T) {
		t.Parallel()
		_, err := dataset.New("a").Distinct("b")
		assert.ErrorIs(t, err, dataset.ErrColumnNotFound)
	})
}

func TestDataset_Clone(t *testing.T) {
	t.Parallel()

	d := rides(t)
	cp := d.Clone()

	cp.Rows[0]["ride_name"] = "Happy Otter"
	cp.Columns[1] = "renamed"

	assert.Equal(t, "CoasterX", d.Rows[0]["ride_name"])
	assert.Equal(t, "wait_minutes", d.Columns[1])
	assert.Equal(t, d.Len(), cp.Len())
}

func TestKey(t *testing.T) {
	t.Parallel()

	assert.Equal(t, dataset.Key(math.NaN()), dataset.Key(math.NaN()))
	assert.Equal(t, dataset.Key(math.NaN()), dataset.Key(float32(math.NaN())))
	assert.Equal(t, "A", dataset.Key("A"))
	assert.Equal(t, 1.5, dataset.Key(1.5))
	assert.Nil(t, dataset.Key(nil))
	assert.NotEqual(t, dataset.Key(math.NaN()), dataset.Key(nil))
}

func TestComparable(t *testing.T) {
	t.Parallel()

	assert.True(t, dataset.Comparable(nil))
	assert.True(t, dataset.Comparable("x"))
	assert.True(t, dataset.Comparable(3.5))
	assert.False(t, dataset.Comparable([]string{"x"}))
	assert.False(t, dataset.Comparable(map[string]any{"x": 1}))
}
