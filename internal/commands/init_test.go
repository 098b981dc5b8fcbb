package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tellerdesk/tellerdesk/internal/config"
	"github.com/tellerdesk/tellerdesk/internal/store"
)

func TestRunInit(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "root", "pw"))

	// Config file written with defaults under dir.
	cfg, err := config.Load(filepath.Join(dir, config.DefaultFile))
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "data", "bank_data.json"), cfg.Storage.AccountsFile)

	// Admins document seeded.
	admins := store.NewAdminStore(cfg.Storage.AdminsFile)
	require.NoError(t, admins.Load())
	admin, ok := admins.Get("root")
	require.True(t, ok)
	assert.Equal(t, "pw", admin.Password, "plain scheme stores the password verbatim")
}

func TestRunInit_FreshDirectory(t *testing.T) {
	// A directory with no config file at all must bootstrap cleanly; the
	// wrapped not-exist error from loading the absent config is the signal
	// to write defaults, not a failure.
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "root", "pw"))

	_, err := os.Stat(filepath.Join(dir, config.DefaultFile))
	require.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "data", "admin_data.json"))
	require.NoError(t, err)
}

func TestRunInit_ExistingAdminsUntouched(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, runInit(dir, "root", "pw"))

	// A second run must not overwrite the seeded admin.
	require.NoError(t, runInit(dir, "other", "pw2"))

	cfg, err := config.Load(filepath.Join(dir, config.DefaultFile))
	require.NoError(t, err)
	admins := store.NewAdminStore(cfg.Storage.AdminsFile)
	require.NoError(t, admins.Load())
	assert.Equal(t, 1, admins.Len())
	_, ok := admins.Get("other")
	assert.False(t, ok)
}

func TestRunInit_EmptyCredentials(t *testing.T) {
	dir := t.TempDir()
	assert.Error(t, runInit(dir, "", "pw"))
	assert.Error(t, runInit(dir, "root", ""))
	_, err := os.Stat(filepath.Join(dir, config.DefaultFile))
	assert.True(t, os.IsNotExist(err), "nothing written on validation failure")
}

func TestRunInit_BcryptScheme(t *testing.T) {
	dir := t.TempDir()

	// Pre-write a config selecting bcrypt, then seed the admin.
	cfg := config.Default(dir)
	cfg.Auth.Scheme = "bcrypt"
	require.NoError(t, config.Save(filepath.Join(dir, config.DefaultFile), cfg))

	require.NoError(t, runInit(dir, "root", "pw"))

	admins := store.NewAdminStore(cfg.Storage.AdminsFile)
	require.NoError(t, admins.Load())
	admin, ok := admins.Get("root")
	require.True(t, ok)
	assert.NotEqual(t, "pw", admin.Password, "bcrypt scheme must not store plaintext")
}
