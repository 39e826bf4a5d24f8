package cart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shophub/internal/state"
	"shophub/internal/types"
)

func product(id int, price float64) types.Product {
	return types.Product{ID: id, Title: "P", Price: price, Category: "test"}
}

func newTestStore(t *testing.T) (*Store, *state.Store) {
	t.Helper()
	st, err := state.NewStore(t.TempDir())
	require.NoError(t, err)
	s, result := NewStore(st)
	require.Equal(t, StartedEmpty, result)
	return s, st
}

func TestAdd_MergesByProductID(t *testing.T) {
	s, _ := newTestStore(t)

	s.Add(product(1, 10), 1)
	s.Add(product(2, 5), 1)
	s.Add(product(1, 10), 2)

	lines := s.Lines()
	require.Len(t, lines, 2, "never two lines for the same product")
	assert.Equal(t, 1, lines[0].Product.ID, "insertion order is first-add order")
	assert.Equal(t, 3, lines[0].Quantity)
	assert.Equal(t, 1, lines[1].Quantity)
}

func TestTotalAndItemCount(t *testing.T) {
	s, _ := newTestStore(t)

	s.Add(product(1, 10), 2)
	s.Add(product(2, 5), 3)

	assert.InDelta(t, 35.0, s.Total(), 1e-9)
	assert.Equal(t, 5, s.ItemCount())
}

func TestUpdateQuantity_SetsExactly(t *testing.T) {
	s, _ := newTestStore(t)

	s.Add(product(1, 10), 2)
	s.UpdateQuantity(1, 7)

	lines := s.Lines()
	require.Len(t, lines, 1)
	assert.Equal(t, 7, lines[0].Quantity)
}

func TestUpdateQuantity_ZeroOrNegativeRemoves(t *testing.T) {
	s, _ := newTestStore(t)

	s.Add(product(1, 10), 2)
	s.UpdateQuantity(1, 0)
	assert.Empty(t, s.Lines())

	s.Add(product(2, 5), 1)
	s.UpdateQuantity(2, -1)
	assert.Empty(t, s.Lines())
}

func TestRemove_AbsentIsNoop(t *testing.T) {
	s, _ := newTestStore(t)

	s.Add(product(1, 10), 1)
	s.Remove(99)
	assert.Len(t, s.Lines(), 1)

	s.Remove(1)
	assert.Empty(t, s.Lines())
	assert.False(t, s.Contains(1))
}

func TestInvariants_UnderMutationSequences(t *testing.T) {
	s, _ := newTestStore(t)

	s.Add(product(1, 10), 1)
	s.Add(product(1, 10), 1)
	s.UpdateQuantity(1, 4)
	s.Add(product(2, 3), 2)
	s.Remove(2)
	s.Add(product(2, 3), 1)
	s.UpdateQuantity(2, 0)
	s.Add(product(3, 1), 5)

	seen := map[int]bool{}
	for _, l := range s.Lines() {
		assert.False(t, seen[l.Product.ID], "duplicate line for product %d", l.Product.ID)
		seen[l.Product.ID] = true
		assert.GreaterOrEqual(t, l.Quantity, 1)
	}
}

func TestPersistence_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	st, err := state.NewStore(dir)
	require.NoError(t, err)

	s, result := NewStore(st)
	require.Equal(t, StartedEmpty, result)
	s.Add(product(1, 9.99), 2)
	s.Add(product(2, 1.50), 1)

	// A fresh store over the same directory restores the lines.
	st2, err := state.NewStore(dir)
	require.NoError(t, err)
	s2, result := NewStore(st2)
	assert.Equal(t, Restored, result)
	assert.Equal(t, s.Lines(), s2.Lines())
	assert.InDelta(t, s.Total(), s2.Total(), 1e-9)
}

func TestCorruptStorage_StartsEmpty(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StorageKey+".json"), []byte("{broken"), 0644))

	st, err := state.NewStore(dir)
	require.NoError(t, err)

	s, result := NewStore(st)
	assert.Equal(t, DiscardedCorrupt, result)
	assert.Empty(t, s.Lines())
}

func TestClear_PersistsEmptyList(t *testing.T) {
	dir := t.TempDir()
	st, err := state.NewStore(dir)
	require.NoError(t, err)

	s, _ := NewStore(st)
	s.Add(product(1, 10), 1)
	s.Clear()

	st2, err := state.NewStore(dir)
	require.NoError(t, err)
	_, result := NewStore(st2)
	assert.Equal(t, Restored, result, "cleared cart persists as an empty list, not an absent record")
}
