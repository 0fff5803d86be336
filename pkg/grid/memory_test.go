package grid_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gridkit/gridkit/pkg/grid"
)

func testColumns() []grid.Column {
	return []grid.Column{
		{ID: "col_name", Field: "name", Title: "Name"},
		{ID: "col_age", Field: "age", Title: "Age"},
	}
}

func TestMemorySourceIdentity(t *testing.T) {
	t.Parallel()

	t.Run("uses the key field when present", func(t *testing.T) {
		src := grid.NewMemorySource(testColumns(), grid.WithKeyField("id"))
		row := grid.Row{"id": 7, "name": "a"}
		require.NoError(t, src.Append(row))
		assert.Equal(t, "7", src.RowID(row))
	})

	t.Run("synthesizes a stable id without a key field", func(t *testing.T) {
		src := grid.NewMemorySource(testColumns())
		row := grid.Row{"name": "a"}
		require.NoError(t, src.Append(row))

		id := src.RowID(row)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, src.RowID(row))
	})

	t.Run("synthesizes when the key field value is missing", func(t *testing.T) {
		src := grid.NewMemorySource(testColumns(), grid.WithKeyField("id"))
		row := grid.Row{"name": "a"}
		require.NoError(t, src.Append(row))

		id := src.RowID(row)
		assert.NotEmpty(t, id)
		assert.Equal(t, id, src.RowID(row))
	})

	t.Run("distinct rows get distinct ids", func(t *testing.T) {
		src := grid.NewMemorySource(testColumns())
		a := grid.Row{"name": "a"}
		b := grid.Row{"name": "b"}
		require.NoError(t, src.Append(a))
		require.NoError(t, src.Append(b))
		assert.NotEqual(t, src.RowID(a), src.RowID(b))
	})
}

func TestMemorySourceWorkingSets(t *testing.T) {
	t.Parallel()

	t.Run("tracks inserts and updates separately", func(t *testing.T) {
		src := grid.NewMemorySource(testColumns(), grid.WithKeyField("id"))
		committed := grid.Row{"id": 1, "name": "a"}
		require.NoError(t, src.Append(committed))

		inserted := grid.Row{"id": 2, "name": "b"}
		require.NoError(t, src.Insert(inserted))
		require.NoError(t, src.MarkUpdated(committed))

		assert.Equal(t, []grid.Row{inserted}, src.InsertRecords())
		assert.Equal(t, []grid.Row{committed}, src.UpdateRecords())
		assert.Len(t, src.FullData(), 2)
	})

	t.Run("inserted rows are not double-tracked as updates", func(t *testing.T) {
		src := grid.NewMemorySource(testColumns(), grid.WithKeyField("id"))
		row := grid.Row{"id": 1}
		require.NoError(t, src.Insert(row))
		require.NoError(t, src.MarkUpdated(row))
		assert.Empty(t, src.UpdateRecords())
	})

	t.Run("marking updated twice keeps one record", func(t *testing.T) {
		src := grid.NewMemorySource(testColumns(), grid.WithKeyField("id"))
		row := grid.Row{"id": 1}
		require.NoError(t, src.Append(row))
		require.NoError(t, src.MarkUpdated(row))
		require.NoError(t, src.MarkUpdated(row))
		assert.Len(t, src.UpdateRecords(), 1)
	})

	t.Run("commit clears working sets and removal marks", func(t *testing.T) {
		src := grid.NewMemorySource(testColumns(), grid.WithKeyField("id"))
		keep := grid.Row{"id": 1}
		gone := grid.Row{"id": 2}
		require.NoError(t, src.Insert(keep))
		require.NoError(t, src.Append(gone))
		require.NoError(t, src.Remove(gone))

		src.Commit()

		assert.Equal(t, []grid.Row{keep}, src.FullData())
		assert.Empty(t, src.InsertRecords())
		assert.False(t, src.IsRemoved(gone))
	})
}

func TestMemorySourceClassification(t *testing.T) {
	t.Parallel()

	t.Run("removed and pending-delete rows are flagged", func(t *testing.T) {
		src := grid.NewMemorySource(testColumns(), grid.WithKeyField("id"))
		removed := grid.Row{"id": 1}
		pending := grid.Row{"id": 2}
		require.NoError(t, src.Append(removed))
		require.NoError(t, src.Append(pending))
		require.NoError(t, src.Remove(removed))
		require.NoError(t, src.MarkPendingDelete(pending))

		assert.True(t, src.IsRemoved(removed))
		assert.False(t, src.IsRemoved(pending))
		assert.True(t, src.IsPendingDelete(pending))
		assert.False(t, src.IsPendingDelete(removed))
	})

	t.Run("aggregate classification uses the configured predicate", func(t *testing.T) {
		src := grid.NewMemorySource(testColumns(),
			grid.WithAggregateClassifier(func(row grid.Row) bool {
				flag, _ := row["summary"].(bool)
				return flag
			}),
		)
		assert.True(t, src.IsAggregate(grid.Row{"summary": true}))
		assert.False(t, src.IsAggregate(grid.Row{"name": "a"}))
	})

	t.Run("nil mutations are rejected", func(t *testing.T) {
		src := grid.NewMemorySource(testColumns())
		assert.ErrorIs(t, src.Append(nil), grid.ErrNilRow)
		assert.ErrorIs(t, src.Insert(nil), grid.ErrNilRow)
		assert.ErrorIs(t, src.Remove(nil), grid.ErrNilRow)
	})
}

func TestMemorySourceIndexes(t *testing.T) {
	t.Parallel()

	src := grid.NewMemorySource(testColumns(), grid.WithKeyField("id"))
	first := grid.Row{"id": 1}
	second := grid.Row{"id": 2}
	require.NoError(t, src.Append(first))
	require.NoError(t, src.Append(second))

	assert.Equal(t, 0, src.RowIndex(first))
	assert.Equal(t, 1, src.RowIndex(second))
	assert.Equal(t, -1, src.RowIndex(grid.Row{"id": 99}))

	assert.Equal(t, 0, src.ColumnIndex(grid.Column{ID: "col_name"}))
	assert.Equal(t, 1, src.ColumnIndex(grid.Column{ID: "col_age"}))
	assert.Equal(t, -1, src.ColumnIndex(grid.Column{ID: "missing"}))
}

func TestMemorySourceTreeConfig(t *testing.T) {
	t.Parallel()

	src := grid.NewMemorySource(testColumns(),
		grid.WithTreeChildrenField("children"),
		grid.WithGroupChildrenField("items"),
	)
	assert.Equal(t, "children", src.TreeChildrenField())
	assert.Equal(t, "items", src.GroupChildrenField())
}
