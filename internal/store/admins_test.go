package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerdesk/tellerdesk/internal/model"
)

func TestAdminStore_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin_data.json")

	s := NewAdminStore(path)
	s.Put(model.Admin{Username: "root", Password: "pw"})
	require.NoError(t, s.Save())

	s2 := NewAdminStore(path)
	require.NoError(t, s2.Load())
	admin, ok := s2.Get("root")
	require.True(t, ok)
	assert.Equal(t, "pw", admin.Password)
	assert.Equal(t, 1, s2.Len())
}

func TestAdminStore_MissingFile(t *testing.T) {
	s := NewAdminStore(filepath.Join(t.TempDir(), "admin_data.json"))
	require.NoError(t, s.Load())
	assert.Equal(t, 0, s.Len())
}

func TestAdminStore_PreSeededDocument(t *testing.T) {
	// The bootstrap script writes this shape directly.
	path := filepath.Join(t.TempDir(), "admin_data.json")
	doc := `{"root": {"username": "root", "password": "pw"}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s := NewAdminStore(path)
	require.NoError(t, s.Load())
	admin, ok := s.Get("root")
	require.True(t, ok)
	assert.Equal(t, "root", admin.Username)
}

func TestAdminStore_MissingField(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin_data.json")
	doc := `{"root": {"username": "root"}}`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	s := NewAdminStore(path)
	err := s.Load()
	require.ErrorIs(t, err, ErrCorrupt)
	assert.Contains(t, err.Error(), "password")
}

func TestAdminStore_MalformedJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin_data.json")
	require.NoError(t, os.WriteFile(path, []byte("[]extra"), 0o644))

	s := NewAdminStore(path)
	assert.ErrorIs(t, s.Load(), ErrCorrupt)
}
