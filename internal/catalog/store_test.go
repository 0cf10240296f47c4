package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_EmptyUntilReloaded(t *testing.T) {
	s := NewStore(t.TempDir())

	snap := s.Snapshot()
	require.NotNil(t, snap)
	assert.Empty(t, snap.Entries)
	assert.NotNil(t, snap.Index)
	assert.NotNil(t, snap.Errors)
}

func TestStore_ReloadSwapsSnapshot(t *testing.T) {
	dir := t.TempDir()
	s := NewStore(dir)

	before := s.Snapshot()
	writeYAML(t, dir, "a.yml", "name: App")
	after := s.Reload()

	assert.NotSame(t, before, after)
	assert.Same(t, after, s.Snapshot())
	require.Len(t, after.Entries, 1)

	// The old snapshot is untouched: readers holding it keep a consistent view.
	assert.Empty(t, before.Entries)
}
