package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st, err := NewStore(t.TempDir())
	require.NoError(t, err)

	in := record{Name: "cart", Count: 3}
	require.NoError(t, st.Save("shopping-cart", in))

	var out record
	status := st.Load("shopping-cart", &out)
	assert.Equal(t, Restored, status)
	assert.Equal(t, in, out)
}

func TestLoadMissingLeavesValueUntouched(t *testing.T) {
	st, err := NewStore(t.TempDir())
	require.NoError(t, err)

	out := record{Name: "default"}
	status := st.Load("absent", &out)
	assert.Equal(t, Missing, status)
	assert.Equal(t, "default", out.Name)
}

func TestLoadCorruptFallsBack(t *testing.T) {
	dir := t.TempDir()
	st, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "admin_auth.json"), []byte("{not json"), 0644))

	out := record{Name: "default"}
	status := st.Load("admin_auth", &out)
	assert.Equal(t, Corrupt, status)
	assert.Equal(t, "default", out.Name, "corrupt record must not clobber the default")
}

func TestDelete(t *testing.T) {
	st, err := NewStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, st.Save("shopping-cart", record{}))
	require.NoError(t, st.Delete("shopping-cart"))

	var out record
	assert.Equal(t, Missing, st.Load("shopping-cart", &out))

	// Deleting an absent key is a no-op.
	require.NoError(t, st.Delete("shopping-cart"))
}

func TestKeySanitized(t *testing.T) {
	dir := t.TempDir()
	st, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, st.Save("a/b", record{Name: "x"}))
	_, err = os.Stat(filepath.Join(dir, "a_b.json"))
	assert.NoError(t, err)
}
