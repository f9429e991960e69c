package toml

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Noel007-cse/plot-twist-cli/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	cfg := viper.New()
	cfg.Set(sessionPathKey, filepath.Join(t.TempDir(), "session.toml"))

	store, err := NewStore(cfg)
	require.NoError(t, err)
	return store
}

func TestStoreRestoreWithoutFileReturnsNoSession(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Restore(context.Background())

	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStoreSaveRestoreRoundTrip(t *testing.T) {
	store := newTestStore(t)
	session := domain.Session{Token: "tok", UserID: "u1", Email: "a@b.com"}

	require.NoError(t, store.Save(context.Background(), session))

	restored, err := store.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, session, restored)
}

func TestStoreSaveRefusesPartialSession(t *testing.T) {
	store := newTestStore(t)

	err := store.Save(context.Background(), domain.Session{Email: "a@b.com"})

	require.ErrorIs(t, err, domain.ErrNoSession)
	_, err = store.Restore(context.Background())
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStoreRestoreTreatsPartialFileAsNoSession(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(store.sessionPath), 0o700))
	partial := "version = 1\n\n[session]\ntoken = \"tok\"\n"
	require.NoError(t, os.WriteFile(store.sessionPath, []byte(partial), 0o600))

	_, err := store.Restore(context.Background())

	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStoreRestoreRejectsNewerSchema(t *testing.T) {
	store := newTestStore(t)

	require.NoError(t, os.MkdirAll(filepath.Dir(store.sessionPath), 0o700))
	future := "version = 99\n\n[session]\ntoken = \"tok\"\nuser_id = \"u1\"\n"
	require.NoError(t, os.WriteFile(store.sessionPath, []byte(future), 0o600))

	_, err := store.Restore(context.Background())

	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoSession)
}

func TestStoreClearIsIdempotent(t *testing.T) {
	store := newTestStore(t)
	session := domain.Session{Token: "tok", UserID: "u1", Email: "a@b.com"}
	require.NoError(t, store.Save(context.Background(), session))

	require.NoError(t, store.Clear(context.Background()))
	require.NoError(t, store.Clear(context.Background()))

	_, err := store.Restore(context.Background())
	require.ErrorIs(t, err, domain.ErrNoSession)
}

func TestStoreSaveOverwritesPreviousSession(t *testing.T) {
	store := newTestStore(t)

	first := domain.Session{Token: "tok1", UserID: "u1", Email: "a@b.com"}
	second := domain.Session{Token: "tok2", UserID: "u2", Email: "c@d.com"}

	require.NoError(t, store.Save(context.Background(), first))
	require.NoError(t, store.Save(context.Background(), second))

	restored, err := store.Restore(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second, restored)
}

func TestStoreSaveSetsRestrictivePermissions(t *testing.T) {
	store := newTestStore(t)
	session := domain.Session{Token: "tok", UserID: "u1", Email: "a@b.com"}

	require.NoError(t, store.Save(context.Background(), session))

	info, err := os.Stat(store.sessionPath)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestStoreDefaultsToHomeConfigDir(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	store, err := NewStore(viper.New())
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, ".plottwist", "session.toml"), store.sessionPath)
}
