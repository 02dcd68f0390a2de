package testutil

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/smitusov/pgnsplit/internal/manifest"
)

// NewTestStore creates a manifest store backed by a fresh database in a
// test-scoped temp directory. The store is closed when the test finishes.
func NewTestStore(t *testing.T) *manifest.Store {
	t.Helper()
	s, err := manifest.Open(filepath.Join(t.TempDir(), "exports.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}
