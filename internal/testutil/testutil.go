// Package testutil holds helpers shared by tests that run the example
// packages end to end.
package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/roach88/sure/internal/engine"
	"github.com/roach88/sure/internal/examples"
	"github.com/roach88/sure/internal/store"
)

// Loader returns a loader over the example registry. Each call builds a
// fresh registry.
func Loader() engine.Loader {
	return engine.RegistryLoader(examples.Registry())
}

// Run scans root with the example registry and fails the test on error.
func Run(t *testing.T, root string) *engine.Result {
	t.Helper()

	res, err := engine.NewRunner(Loader()).Run(context.Background(), root)
	require.NoError(t, err)
	return res
}

// Ledger opens a fresh ledger in a temporary directory. Runs written
// through it get ids in the order given. The ledger is closed when the
// test ends.
func Ledger(t *testing.T, ids ...string) (string, *store.Store) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ledger.db")
	st, err := store.Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	if len(ids) > 0 {
		st.WithIDs(store.NewFixedGenerator(ids...))
	}
	return path, st
}

// Record scans root and writes the result to st, returning the run id.
func Record(t *testing.T, st *store.Store, root string) string {
	t.Helper()

	id, err := st.WriteRun(context.Background(), root, Run(t, root))
	require.NoError(t, err)
	return id
}
