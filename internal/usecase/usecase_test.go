package usecase

import (
	"io"
	"path/filepath"
	"testing"

	"health-tracker/internal/infrastructure/localstore"
	"health-tracker/internal/store"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *store.Store {
	t.Helper()

	kv, err := localstore.NewFileStore(filepath.Join(t.TempDir(), "store.json"))
	require.NoError(t, err)

	s := store.New(kv, testLogger())
	s.Load()
	return s
}

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}
