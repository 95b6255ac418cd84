package session

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/retronotes/retronotes/internal/client/api"
)

func testStore(t *testing.T) *Store {
	t.Helper()
	return NewStore(filepath.Join(t.TempDir(), "nested", "session.json"))
}

func TestLoad_NoSession(t *testing.T) {
	s := testStore(t)

	session, err := s.Load()
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSaveLoadClear_RoundTrip(t *testing.T) {
	s := testStore(t)

	saved := &api.Session{
		User:  api.User{ID: "u1", FullName: "Jamie Neon", Username: "neonUser", Email: "jamie@x.com"},
		Token: "tok",
	}
	require.NoError(t, s.Save(saved))

	loaded, err := s.Load()
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, saved, loaded)

	require.NoError(t, s.Clear())
	loaded, err = s.Load()
	require.NoError(t, err)
	assert.Nil(t, loaded)

	// clearing again is fine
	require.NoError(t, s.Clear())
}

func TestSave_RestrictsPermissions(t *testing.T) {
	s := testStore(t)
	require.NoError(t, s.Save(&api.Session{Token: "tok"}))

	info, err := os.Stat(s.path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoad_CorruptFile(t *testing.T) {
	s := testStore(t)
	require.NoError(t, os.MkdirAll(filepath.Dir(s.path), 0o700))
	require.NoError(t, os.WriteFile(s.path, []byte("{not json"), 0o600))

	_, err := s.Load()
	assert.Error(t, err)
}
