package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_EmptyWhenNoFile(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Empty(t, store.GetString(KeyDataDir))
	assert.Nil(t, store.GetStringSlice(KeyRoots))
	assert.Zero(t, store.GetInt(KeySearchLimit))
}

func TestConfigStore_SetPersists(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("data_dir", "/var/lib/vocalis"))

	// Reopen and confirm the value survived.
	store, err = NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/vocalis", store.GetString(KeyDataDir))
}

func TestConfigStore_LoadsNestedTables(t *testing.T) {
	dir := t.TempDir()
	content := `
data_dir = "/tmp/voc"

[index]
roots = ["/home/u/docs", "/mnt/share"]
excluded_dirs = ["node_modules", ".git"]

[search]
limit = 7
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/voc", store.GetString(KeyDataDir))
	assert.Equal(t, []string{"/home/u/docs", "/mnt/share"}, store.GetStringSlice(KeyRoots))
	assert.Equal(t, []string{"node_modules", ".git"}, store.GetStringSlice(KeyExcludedDirs))
	assert.Equal(t, 7, store.GetInt(KeySearchLimit))
}

func TestConfigStore_TypeMismatchesAreZero(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("search.limit", "not a number"))

	assert.Zero(t, store.GetInt(KeySearchLimit))
	assert.Nil(t, store.GetStringSlice(KeySearchLimit))
}
