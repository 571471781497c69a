package testutils

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/midgardgame/character-api/internal/pkg/clock"
	characterrepo "github.com/midgardgame/character-api/internal/repositories/character"
)

// CreateTestCharacterRepo creates a SQLite character repository backed by a
// temp-dir database file that is removed with the test.
func CreateTestCharacterRepo(t *testing.T, c clock.Clock) characterrepo.Repository {
	t.Helper()

	repo, db, err := characterrepo.NewSQLite(&characterrepo.SQLiteConfig{
		Path:  filepath.Join(t.TempDir(), "character.db"),
		Clock: c,
	})
	require.NoError(t, err, "failed to open sqlite repository")
	t.Cleanup(func() { _ = db.Close() })

	return repo
}
