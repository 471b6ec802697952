package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRegistrant(t *testing.T) {
	t.Setenv("KNAME", "Dana Levi")
	t.Setenv("KID", "123456782")
	t.Setenv("KPHONE", "0501234567")
	t.Setenv("KMAIL", "dana@example.com")
}

func TestLoadDefaults(t *testing.T) {
	setRegistrant(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "Dana Levi", cfg.Registrant.Name)
	assert.Equal(t, "123456782", cfg.Registrant.GovID)
	assert.Equal(t, "0501234567", cfg.Registrant.Phone)
	assert.Equal(t, "dana@example.com", cfg.Registrant.Email)
	assert.Equal(t, "1999-04-14T21:00:00.000Z", cfg.Registrant.DateOfBirth)
	assert.Equal(t, 24, cfg.Registrant.Age)

	assert.Equal(t, "https://www.eventer.co.il", cfg.Domain)
	assert.Equal(t, "KULIALMA", cfg.Seller)
	assert.Equal(t, time.Hour, cfg.PollInterval)
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, StoreFile, cfg.ClaimStore)
	assert.Equal(t, "db.json", cfg.ClaimDBPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Empty(t, cfg.StatusAddr)
}

func TestLoadMissingRegistrant(t *testing.T) {
	t.Setenv("KNAME", "Dana Levi")
	t.Setenv("KID", "")
	t.Setenv("KPHONE", "")
	t.Setenv("KMAIL", "dana@example.com")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "KID required")
	assert.Contains(t, err.Error(), "KPHONE required")
	assert.NotContains(t, err.Error(), "KNAME")
}

func TestLoadOverrides(t *testing.T) {
	setRegistrant(t)
	t.Setenv("EVENTER_DOMAIN", "https://staging.example.com/")
	t.Setenv("TARGET_SELLER", "OTHER")
	t.Setenv("POLL_INTERVAL", "15m")
	t.Setenv("CLAIM_STORE", "REDIS")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("KAGE", "31")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://staging.example.com", cfg.Domain)
	assert.Equal(t, "OTHER", cfg.Seller)
	assert.Equal(t, 15*time.Minute, cfg.PollInterval)
	assert.Equal(t, StoreRedis, cfg.ClaimStore)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 31, cfg.Registrant.Age)
}

func TestLoadRejectsUnknownStore(t *testing.T) {
	setRegistrant(t)
	t.Setenv("CLAIM_STORE", "postgres")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CLAIM_STORE")
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claimer.env")
	content := "KNAME=File Name\nKID=1\nKPHONE=2\nKMAIL=file@example.com\nPOLL_INTERVAL=2h\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "File Name", cfg.Registrant.Name)
	assert.Equal(t, "file@example.com", cfg.Registrant.Email)
	assert.Equal(t, 2*time.Hour, cfg.PollInterval)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.env"))
	assert.Error(t, err)
}

func TestLoadUsesConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "claimer.env")
	content := "KNAME=From File\nKID=1\nKPHONE=2\nKMAIL=file@example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "From File", cfg.Registrant.Name)
}

func TestLoadWithoutDotEnv(t *testing.T) {
	setRegistrant(t)
	t.Chdir(t.TempDir())

	_, err := Load()
	require.NoError(t, err)
}

func TestLoadUnreadableDotEnv(t *testing.T) {
	setRegistrant(t)
	dir := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(dir, ".env"), 0o755))
	t.Chdir(dir)

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), ".env")
}
