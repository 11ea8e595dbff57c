package anonymizer_test

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sillynames/pkg/anonymizer"
	"github.com/dmitrymomot/sillynames/pkg/dataset"
	"github.com/dmitrymomot/sillynames/pkg/placeholder"
)

func ridesDataset(t testing.TB, names ...any) *dataset.Dataset {
	t.Helper()
	ds := dataset.New("ride_id", "ride_name", "wait_minutes")
	for i, name := range names {
		require.NoError(t, ds.Append(i+1, name, 10*(i+1)))
	}
	return ds
}

func column(t testing.TB, ds *dataset.Dataset, name string) []any {
	t.Helper()
	values, err := ds.Column(name)
	require.NoError(t, err)
	return values
}

func TestSubstitute_PositionalPairing(t *testing.T) {
	t.Parallel()

	placeholders, err := placeholder.Generate(
		[]string{"Happy", "Sleepy"},
		[]string{"Otter", "Panda"},
		nil,
	)
	require.NoError(t, err)

	ds := ridesDataset(t, "CoasterX", "CoasterX", "CoasterY")
	out, mapping, err := anonymizer.Substitute(ds, "ride_name", placeholders)
	require.NoError(t, err)

	assert.Equal(t, []any{"Happy Otter", "Happy Otter", "Sleepy Panda"}, column(t, out, "ride_name"))
	assert.Equal(t, anonymizer.Mapping{
		{Original: "CoasterX", Placeholder: "Happy Otter"},
		{Original: "CoasterY", Placeholder: "Sleepy Panda"},
	}, mapping)
}

func TestSubstitute_PreservesShapeAndOtherColumns(t *testing.T) {
	t.Parallel()

	ds := ridesDataset(t, "A", "B", "A", "C")
	out, _, err := anonymizer.Substitute(ds, "ride_name", []string{"p1", "p2", "p3"})
	require.NoError(t, err)

	assert.Equal(t, ds.Len(), out.Len())
	assert.Equal(t, ds.Columns, out.Columns)
	assert.Equal(t, column(t, ds, "ride_id"), column(t, out, "ride_id"))
	assert.Equal(t, column(t, ds, "wait_minutes"), column(t, out, "wait_minutes"))
	assert.Equal(t, []any{"p1", "p2", "p1", "p3"}, column(t, out, "ride_name"))
}

func TestSubstitute_DoesNotModifyInput(t *testing.T) {
	t.Parallel()

	ds := ridesDataset(t, "CoasterX", "CoasterY")
	before := ds.Clone()

	_, _, err := anonymizer.Substitute(ds, "ride_name", []string{"p1", "p2"})
	require.NoError(t, err)

	assert.Equal(t, before, ds)
}

func TestSubstitute_EveryValueReplacedWhenEnoughPlaceholders(t *testing.T) {
	t.Parallel()

	names := make([]any, 0, 50)
	placeholders := make([]string, 0, 20)
	for i := range 50 {
		names = append(names, fmt.Sprintf("ride-%d", i%20))
	}
	for i := range 20 {
		placeholders = append(placeholders, fmt.Sprintf("placeholder-%d", i))
	}

	ds := ridesDataset(t, names...)
	out, mapping, err := anonymizer.Substitute(ds, "ride_name", placeholders)
	require.NoError(t, err)
	require.Len(t, mapping, 20)

	seen := make(map[string]any)
	for i, v := range column(t, out, "ride_name") {
		p, ok := v.(string)
		require.True(t, ok)
		assert.Contains(t, placeholders, p, "row %d kept an original value", i)

		// equal originals share a placeholder, different originals never do
		if prev, dup := seen[p]; dup {
			assert.Equal(t, prev, names[i])
		}
		seen[p] = names[i]
	}
}

func TestSubstitute_NotIdempotent(t *testing.T) {
	t.Parallel()

	placeholders := []string{"Happy Otter", "Sleepy Panda"}
	ds := ridesDataset(t, "CoasterX", "CoasterY")

	once, _, err := anonymizer.Substitute(ds, "ride_name", placeholders)
	require.NoError(t, err)
	twice, mapping, err := anonymizer.Substitute(once, "ride_name", placeholders)
	require.NoError(t, err)

	// The second pass treats the placeholders as fresh originals.
	assert.Equal(t, anonymizer.Mapping{
		{Original: "Happy Otter", Placeholder: "Happy Otter"},
		{Original: "Sleepy Panda", Placeholder: "Sleepy Panda"},
	}, mapping)
	assert.Equal(t, column(t, once, "ride_name"), column(t, twice, "ride_name"))

	// With a different sequence the output changes again.
	thrice, _, err := anonymizer.Substitute(twice, "ride_name", []string{"Brave Tiger", "Calm Fox"})
	require.NoError(t, err)
	assert.NotEqual(t, column(t, twice, "ride_name"), column(t, thrice, "ride_name"))
	assert.Equal(t, []any{"Brave Tiger", "Calm Fox"}, column(t, thrice, "ride_name"))
}

func TestSubstitute_Overflow(t *testing.T) {
	t.Parallel()

	placeholders := []string{"Happy Otter", "Sleepy Panda"}

	t.Run("error by default", func(t *testing.T) {
		t.Parallel()

		ds := ridesDataset(t, "A", "B", "C")
		out, mapping, err := anonymizer.Substitute(ds, "ride_name", placeholders)
		require.ErrorIs(t, err, anonymizer.ErrNotEnoughPlaceholders)
		assert.Contains(t, err.Error(), "3 distinct values, 2 placeholders")
		assert.Nil(t, out)
		assert.Nil(t, mapping)
	})

	t.Run("wrap reuses placeholders", func(t *testing.T) {
		t.Parallel()

		ds := ridesDataset(t, "A", "B", "C", "A")
		out, mapping, err := anonymizer.Substitute(ds, "ride_name", placeholders,
			anonymizer.WithOverflow(anonymizer.OverflowWrap))
		require.NoError(t, err)
		assert.Len(t, mapping, 3)
		assert.Equal(t, []any{"Happy Otter", "Sleepy Panda", "Happy Otter", "Happy Otter"}, column(t, out, "ride_name"))
	})

	t.Run("wrap without placeholders", func(t *testing.T) {
		t.Parallel()

		ds := ridesDataset(t, "A")
		_, _, err := anonymizer.Substitute(ds, "ride_name", nil,
			anonymizer.WithOverflow(anonymizer.OverflowWrap))
		require.ErrorIs(t, err, anonymizer.ErrNotEnoughPlaceholders)
	})

	t.Run("passthrough keeps excess values", func(t *testing.T) {
		t.Parallel()

		ds := ridesDataset(t, "A", "B", "C")
		out, mapping, err := anonymizer.Substitute(ds, "ride_name", placeholders,
			anonymizer.WithOverflow(anonymizer.OverflowPassthrough))
		require.NoError(t, err)
		assert.Len(t, mapping, 2)
		assert.Equal(t, []any{"Happy Otter", "Sleepy Panda", "C"}, column(t, out, "ride_name"))
	})

	t.Run("policy ignored when placeholders suffice", func(t *testing.T) {
		t.Parallel()

		ds := ridesDataset(t, "A", "B")
		out, _, err := anonymizer.Substitute(ds, "ride_name", placeholders,
			anonymizer.WithOverflow(anonymizer.OverflowPassthrough))
		require.NoError(t, err)
		assert.Equal(t, []any{"Happy Otter", "Sleepy Panda"}, column(t, out, "ride_name"))
	})
}

func TestSubstitute_DuplicatePlaceholders(t *testing.T) {
	t.Parallel()

	placeholders := []string{"Happy Otter", "Happy Otter"}

	t.Run("accepted by default", func(t *testing.T) {
		t.Parallel()

		ds := ridesDataset(t, "A", "B")
		out, _, err := anonymizer.Substitute(ds, "ride_name", placeholders)
		require.NoError(t, err)
		assert.Equal(t, []any{"Happy Otter", "Happy Otter"}, column(t, out, "ride_name"))
	})

	t.Run("rejected when unique placeholders are required", func(t *testing.T) {
		t.Parallel()

		ds := ridesDataset(t, "A", "B")
		_, _, err := anonymizer.Substitute(ds, "ride_name", placeholders,
			anonymizer.WithUniquePlaceholders())
		require.ErrorIs(t, err, anonymizer.ErrDuplicatePlaceholder)
	})
}

func TestSubstitute_MissingValues(t *testing.T) {
	t.Parallel()

	t.Run("replaced like any other value", func(t *testing.T) {
		t.Parallel()

		ds := ridesDataset(t, "CoasterX", nil, "", nil)
		out, mapping, err := anonymizer.Substitute(ds, "ride_name", []string{"p1", "p2", "p3"})
		require.NoError(t, err)

		assert.Equal(t, []any{"p1", "p2", "p3", "p2"}, column(t, out, "ride_name"))
		assert.Equal(t, anonymizer.Mapping{
			{Original: "CoasterX", Placeholder: "p1"},
			{Original: nil, Placeholder: "p2"},
			{Original: "", Placeholder: "p3"},
		}, mapping)
	})

	t.Run("count toward overflow", func(t *testing.T) {
		t.Parallel()

		ds := ridesDataset(t, "CoasterX", nil, "")
		_, _, err := anonymizer.Substitute(ds, "ride_name", []string{"p1", "p2"})
		require.ErrorIs(t, err, anonymizer.ErrNotEnoughPlaceholders)
	})

	t.Run("skipped on request", func(t *testing.T) {
		t.Parallel()

		ds := ridesDataset(t, nil, "A", "", "B", nil)
		out, mapping, err := anonymizer.Substitute(ds, "ride_name", []string{"p1", "p2"},
			anonymizer.WithSkipMissing())
		require.NoError(t, err)

		assert.Equal(t, []any{nil, "p1", "", "p2", nil}, column(t, out, "ride_name"))
		assert.Len(t, mapping, 2)
	})
}

func TestSubstitute_NaNValues(t *testing.T) {
	t.Parallel()

	input := "- ride_name: .nan\n- ride_name: CoasterX\n- ride_name: .nan\n- ride_name: .nan\n"
	ds, err := dataset.Decode(strings.NewReader(input), dataset.FormatYAML)
	require.NoError(t, err)

	out, mapping, err := anonymizer.Substitute(ds, "ride_name", []string{"p1", "p2"})
	require.NoError(t, err)

	assert.Equal(t, []any{"p1", "p2", "p1", "p1"}, column(t, out, "ride_name"))
	require.Len(t, mapping, 2)
	p, ok := mapping.Lookup(math.NaN())
	assert.True(t, ok)
	assert.Equal(t, "p1", p)
}

func TestSubstitute_NonStringValues(t *testing.T) {
	t.Parallel()

	ds := ridesDataset(t, 7, "7", 7, true)
	out, mapping, err := anonymizer.Substitute(ds, "ride_name", []string{"p1", "p2", "p3"})
	require.NoError(t, err)

	assert.Equal(t, []any{"p1", "p2", "p1", "p3"}, column(t, out, "ride_name"))
	p, ok := mapping.Lookup(7)
	assert.True(t, ok)
	assert.Equal(t, "p1", p)
}

func TestSubstitute_Errors(t *testing.T) {
	t.Parallel()

	t.Run("nil dataset", func(t *testing.T) {
		t.Parallel()
		_, _, err := anonymizer.Substitute(nil, "ride_name", []string{"p"})
		require.ErrorIs(t, err, anonymizer.ErrNilDataset)
	})

	t.Run("unknown column", func(t *testing.T) {
		t.Parallel()
		ds := ridesDataset(t, "A")
		_, _, err := anonymizer.Substitute(ds, "park", []string{"p"})
		require.ErrorIs(t, err, dataset.ErrColumnNotFound)
	})

	t.Run("uncomparable value", func(t *testing.T) {
		t.Parallel()
		ds := ridesDataset(t, "A", []any{"B"})
		_, _, err := anonymizer.Substitute(ds, "ride_name", []string{"p1", "p2"})
		require.ErrorIs(t, err, dataset.ErrUncomparableValue)
	})

	t.Run("empty dataset", func(t *testing.T) {
		t.Parallel()
		ds := dataset.New("ride_name")
		out, mapping, err := anonymizer.Substitute(ds, "ride_name", nil)
		require.NoError(t, err)
		assert.Zero(t, out.Len())
		assert.Empty(t, mapping)
	})
}

func TestMapping_Lookup(t *testing.T) {
	t.Parallel()

	m := anonymizer.Mapping{{Original: "A", Placeholder: "p1"}}

	p, ok := m.Lookup("A")
	assert.True(t, ok)
	assert.Equal(t, "p1", p)

	_, ok = m.Lookup("B")
	assert.False(t, ok)

	_, ok = m.Lookup([]string{"A"})
	assert.False(t, ok)
}
