package file

import (
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "config.toml"), store.Path())
}

func TestNewConfigStore_WithNestedDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	_, err := NewConfigStore(dir)

	require.NoError(t, err)
	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("catalog.path", "/data/index.json"))

	val, ok := store.Get("catalog.path")
	assert.True(t, ok)
	assert.Equal(t, "/data/index.json", val)

	_, ok = store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_Persistence_WritesNestedTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("server.addr", ":8080"))
	require.NoError(t, store.Set("server.rate_limit", 2.5))
	require.NoError(t, store.Set("server.rate_burst", int64(4)))
	require.NoError(t, store.Set("server.cors", false))
	require.NoError(t, store.Set("log.level", "debug"))

	raw, err := os.ReadFile(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[server]")
	assert.Contains(t, string(raw), "[log]")

	reloaded, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, ":8080", reloaded.GetString("server.addr"))
	assert.Equal(t, 2.5, reloaded.GetFloat("server.rate_limit"))
	assert.Equal(t, 4, reloaded.GetInt("server.rate_burst"))
	assert.Equal(t, 4.0, reloaded.GetFloat("server.rate_burst"))
	assert.False(t, reloaded.GetBool("server.cors"))
	assert.Equal(t, "debug", reloaded.GetString("log.level"))
}

func TestConfigStore_Load_HandWrittenFile(t *testing.T) {
	dir := t.TempDir()
	content := `
[catalog]
path = "/srv/catalog.json.gz"

[server]
addr = ":3001"
cors = true
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte(content), 0600))

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	assert.Equal(t, "/srv/catalog.json.gz", store.GetString("catalog.path"))
	assert.Equal(t, ":3001", store.GetString("server.addr"))
	assert.True(t, store.GetBool("server.cors"))
}

func TestConfigStore_TypeMismatchReturnsZero(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("log.level", "info"))

	assert.Equal(t, 0, store.GetInt("log.level"))
	assert.Equal(t, 0.0, store.GetFloat("log.level"))
	assert.False(t, store.GetBool("log.level"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_EmptyFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), nil, 0600))

	store, err := NewConfigStore(dir)

	require.NoError(t, err)
	_, ok := store.Get("anything")
	assert.False(t, ok)
}

func TestNewConfigStore_LoadCorruptedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.toml"), []byte("[[not toml"), 0600))

	_, err := NewConfigStore(dir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing")
}

func TestConfigStore_FilePermissions(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("file modes are not enforced on windows")
	}
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("server.addr", ":1"))

	info, err := os.Stat(filepath.Join(dir, "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())
}

func TestConfigStore_SaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("a.b", "c"))
	require.NoError(t, store.Save())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "config.toml", entries[0].Name())
}

func TestConfigStore_Concurrency(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			_ = store.Set("server.rate_burst", int64(n))
		}(i)
		go func() {
			defer wg.Done()
			_ = store.GetInt("server.rate_burst")
		}()
	}
	wg.Wait()
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"server": map[string]any{"addr": ":1", "cors": true},
		"top":    "x",
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{"server.addr": ":1", "server.cors": true, "top": "x"}, flat)
	assert.Equal(t, nested, nestMap(flat))
}
