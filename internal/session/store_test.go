package session

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shophub/internal/state"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	dir := t.TempDir()
	st, err := state.NewStore(dir)
	require.NoError(t, err)
	return NewStore(st), dir
}

func TestSignIn_DemoCredentials(t *testing.T) {
	s, dir := newTestStore(t)

	require.NoError(t, s.SignIn(context.Background(), DemoEmail, "admin123"))

	user, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, DemoEmail, user.Email)
	assert.Equal(t, "Admin User", user.Name)

	// Session record is persisted.
	_, err := os.Stat(filepath.Join(dir, StorageKey+".json"))
	assert.NoError(t, err)
}

func TestSignIn_RejectsWithoutPersisting(t *testing.T) {
	s, dir := newTestStore(t)

	err := s.SignIn(context.Background(), DemoEmail, "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	err = s.SignIn(context.Background(), "someone@else.com", "admin123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	assert.False(t, s.SignedIn())
	_, statErr := os.Stat(filepath.Join(dir, StorageKey+".json"))
	assert.True(t, os.IsNotExist(statErr), "rejected sign-in must not persist anything")
}

func TestSignIn_CancelledContext(t *testing.T) {
	s, _ := newTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := s.SignIn(ctx, DemoEmail, "admin123")
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, s.SignedIn())
}

func TestSignOut_ClearsMemoryAndDisk(t *testing.T) {
	s, dir := newTestStore(t)
	require.NoError(t, s.SignIn(context.Background(), DemoEmail, "admin123"))

	s.SignOut()

	assert.False(t, s.SignedIn())
	_, err := os.Stat(filepath.Join(dir, StorageKey+".json"))
	assert.True(t, os.IsNotExist(err))
}

func TestRestore_AcrossStores(t *testing.T) {
	dir := t.TempDir()
	st, err := state.NewStore(dir)
	require.NoError(t, err)

	s := NewStore(st)
	require.NoError(t, s.SignIn(context.Background(), DemoEmail, "admin123"))

	st2, err := state.NewStore(dir)
	require.NoError(t, err)
	s2 := NewStore(st2)

	user, ok := s2.Current()
	require.True(t, ok)
	assert.Equal(t, DemoEmail, user.Email)
}

func TestRestore_CorruptRecordDiscarded(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, StorageKey+".json"), []byte("]["), 0644))

	st, err := state.NewStore(dir)
	require.NoError(t, err)
	s := NewStore(st)

	assert.False(t, s.SignedIn())
	_, statErr := os.Stat(filepath.Join(dir, StorageKey+".json"))
	assert.True(t, os.IsNotExist(statErr), "corrupt record is removed on startup")
}
