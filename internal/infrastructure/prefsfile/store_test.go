package prefsfile_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"locstore/internal/infrastructure/prefsfile"
)

func TestGetMissingFileReturnsDefault(t *testing.T) {
	store := prefsfile.NewStore(filepath.Join(t.TempDir(), "prefs.toml"))

	got, err := store.Get(context.Background(), "app.language", "en")

	require.NoError(t, err)
	assert.Equal(t, "en", got)
}

func TestSetThenGet(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.toml")
	store := prefsfile.NewStore(path)

	require.NoError(t, store.Set(ctx, "app.language", "ko"))

	got, err := store.Get(ctx, "app.language", "en")
	require.NoError(t, err)
	assert.Equal(t, "ko", got)
}

func TestSetOverwrites(t *testing.T) {
	ctx := context.Background()
	store := prefsfile.NewStore(filepath.Join(t.TempDir(), "prefs.toml"))

	require.NoError(t, store.Set(ctx, "app.language", "ko"))
	require.NoError(t, store.Set(ctx, "app.language", "en"))

	got, err := store.Get(ctx, "app.language", "ko")
	require.NoError(t, err)
	assert.Equal(t, "en", got)
}

func TestValueSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "prefs.toml")

	require.NoError(t, prefsfile.NewStore(path).Set(ctx, "app.language", "ko"))

	// A fresh store over the same file sees the previous write.
	got, err := prefsfile.NewStore(path).Get(ctx, "app.language", "en")
	require.NoError(t, err)
	assert.Equal(t, "ko", got)
}

func TestSetPreservesOtherKeys(t *testing.T) {
	ctx := context.Background()
	store := prefsfile.NewStore(filepath.Join(t.TempDir(), "prefs.toml"))

	require.NoError(t, store.Set(ctx, "app.language", "ko"))
	require.NoError(t, store.Set(ctx, "app.theme", "dark"))

	got, err := store.Get(ctx, "app.language", "en")
	require.NoError(t, err)
	assert.Equal(t, "ko", got)
}

func TestCorruptFileReturnsDefaultAndError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.toml")
	require.NoError(t, os.WriteFile(path, []byte("pas du toml ==="), 0o644))
	store := prefsfile.NewStore(path)

	got, err := store.Get(context.Background(), "app.language", "en")

	assert.Error(t, err)
	assert.Equal(t, "en", got)
}

func TestSetCreatesParentDir(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "prefs.toml")
	store := prefsfile.NewStore(path)

	require.NoError(t, store.Set(ctx, "app.language", "ko"))

	_, err := os.Stat(path)
	require.NoError(t, err)
}
