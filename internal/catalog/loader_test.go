package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeYAML(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestLoad_SortsByNameCaseInsensitive(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "a.yml", "name: Zeta")
	writeYAML(t, dir, "b.yml", "name: alpha")
	writeYAML(t, dir, "c.yml", "name: Beta")

	c := Load(dir)

	require.Len(t, c.Entries, 3)
	assert.Equal(t, "alpha", c.Entries[0].Name)
	assert.Equal(t, "Beta", c.Entries[1].Name)
	assert.Equal(t, "Zeta", c.Entries[2].Name)
	assert.Empty(t, c.Errors)
}

func TestLoad_IDFromFileName(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "my-app.yml", "name: My App")

	c := Load(dir)

	require.Len(t, c.Entries, 1)
	assert.Equal(t, "my-app", c.Entries[0].ID)
	assert.Equal(t, "my-app.yml", c.Entries[0].SourceFile)
	assert.Equal(t, "My App", c.Index["my-app"].Name)
}

func TestLoad_SkipsBrokenFilesAndRecordsErrors(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "good.yml", "name: Good")
	writeYAML(t, dir, "broken.yml", "name: [unclosed")
	writeYAML(t, dir, "nonmap.yml", "- a\n- b")

	c := Load(dir)

	require.Len(t, c.Entries, 1)
	assert.Equal(t, "Good", c.Entries[0].Name)
	require.Len(t, c.Errors, 2)
	assert.Contains(t, c.Errors[0], "broken.yml")
	assert.Contains(t, c.Errors[1], "Invalid YAML format in nonmap.yml")
}

func TestLoad_MissingDirectory(t *testing.T) {
	c := Load(filepath.Join(t.TempDir(), "does-not-exist"))

	assert.Empty(t, c.Entries)
	require.Len(t, c.Errors, 1)
	assert.Contains(t, c.Errors[0], "YAML directory not found")
	assert.NotNil(t, c.Index)
	assert.NotNil(t, c.Facets.Categories)
}

func TestLoad_OnlyYMLFilesConsidered(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "a.yml", "name: Kept")
	writeYAML(t, dir, "b.yaml", "name: Ignored")
	writeYAML(t, dir, "notes.txt", "name: Ignored")

	c := Load(dir)

	require.Len(t, c.Entries, 1)
	assert.Equal(t, "Kept", c.Entries[0].Name)
}

func TestLoad_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "a.yml", "name: Zeta\ncategories: [tools]")
	writeYAML(t, dir, "b.yml", "name: alpha\nlegal:\n  license: MIT")

	first := Load(dir)
	second := Load(dir)

	assert.Equal(t, first.Entries, second.Entries)
	assert.Equal(t, first.Facets, second.Facets)
	assert.Equal(t, first.Errors, second.Errors)
}

func TestLoad_TieKeepsEnumerationOrder(t *testing.T) {
	dir := t.TempDir()
	writeYAML(t, dir, "b.yml", "name: Same")
	writeYAML(t, dir, "a.yml", "name: same")

	c := Load(dir)

	// Stable sort: lexicographic file order survives equal names.
	require.Len(t, c.Entries, 2)
	assert.Equal(t, "a", c.Entries[0].ID)
	assert.Equal(t, "b", c.Entries[1].ID)
}
