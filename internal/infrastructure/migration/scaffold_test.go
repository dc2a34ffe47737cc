package migration

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScaffold_CreatesPair(t *testing.T) {
	dir := t.TempDir()

	pair, err := Scaffold(dir, "Add credit card table", "statement day and due day columns")
	require.NoError(t, err)

	assert.Len(t, pair.Version, 14)
	assert.Equal(t, "Add credit card table", pair.Name)
	assert.True(t, strings.HasSuffix(pair.UpPath, "_add_credit_card_table.up.sql"))
	assert.True(t, strings.HasSuffix(pair.DownPath, "_add_credit_card_table.down.sql"))

	up, err := os.ReadFile(pair.UpPath)
	require.NoError(t, err)
	assert.Contains(t, string(up), "Add credit card table")
	assert.Contains(t, string(up), "statement day and due day columns")

	down, err := os.ReadFile(pair.DownPath)
	require.NoError(t, err)
	assert.Contains(t, string(down), "(rollback)")
}

func TestScaffold_CreatesMissingDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "migrations")

	_, err := Scaffold(dir, "init schema", "")
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Add Users Table", "add_users_table"},
		{"add-liability--index", "add_liability_index"},
		{"  spaces  everywhere  ", "spaces_everywhere"},
		{"v2 Rollup!", "v2_rollup"},
		{"___", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, slug(tt.in), tt.in)
	}
}

func TestList_ReturnsUpFileBasesInOrder(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{
		"20240101000000_init.up.sql",
		"20240101000000_init.down.sql",
		"20240301000000_add_assets.up.sql",
		"20240301000000_add_assets.down.sql",
		"notes.txt",
	} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte("-- x\n"), 0o644))
	}

	names, err := List(dir)
	require.NoError(t, err)
	assert.Equal(t, []string{"20240101000000_init", "20240301000000_add_assets"}, names)
}

func TestList_MissingDirectoryIsEmpty(t *testing.T) {
	names, err := List(filepath.Join(t.TempDir(), "absent"))
	require.NoError(t, err)
	assert.Empty(t, names)
}
