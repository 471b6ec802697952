package claims

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	s, err := Load(filepath.Join(t.TempDir(), "db.json"))
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected ErrNotExist, got %v", err)
	}
	if s == nil || s.Len() != 0 {
		t.Fatalf("expected empty set, got %v", s)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	for name, content := range map[string]string{
		"truncated":  `["T1", "T2"`,
		"not a list": `{"T1": true}`,
		"wrong type": `[1, 2, 3]`,
		"garbage":    "\x00\x01hello",
	} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "db.json")
			require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

			s, err := Load(path)
			assert.Error(t, err)
			require.NotNil(t, s)
			assert.Equal(t, 0, s.Len())

			ok, _ := s.Contains(context.Background(), "T1")
			assert.False(t, ok)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db.json")

	s, _ := Load(path)
	ids := []string{"T3", "T1", "T2", "T5", "T4"}
	for _, id := range ids {
		require.NoError(t, s.Add(ctx, id))
	}

	reloaded, err := Load(path)
	require.NoError(t, err)

	got := reloaded.IDs()
	sort.Strings(got)
	want := append([]string(nil), ids...)
	sort.Strings(want)
	assert.Equal(t, want, got)

	for _, id := range ids {
		ok, err := reloaded.Contains(ctx, id)
		require.NoError(t, err)
		assert.True(t, ok, id)
	}
}

func TestAddIsIdempotent(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "db.json")

	s, _ := Load(path)
	require.NoError(t, s.Add(ctx, "T1"))
	require.NoError(t, s.Add(ctx, "T1"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `["T1"]`, string(data))
}

func TestSaveEmptySetWritesArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	s, _ := Load(path)
	require.NoError(t, s.Save())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "[]", string(data))
}

func TestSaveLeavesNoTempFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")
	s, _ := Load(path)
	require.NoError(t, s.Add(context.Background(), "T1"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "db.json", entries[0].Name())
}

func TestSaveFailureKeepsPreviousFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "db.json")
	s, _ := Load(path)
	require.NoError(t, s.Add(context.Background(), "T1"))

	// A directory at the temp path makes the next write fail.
	require.NoError(t, os.Mkdir(path+".tmp", 0o700))
	assert.Error(t, s.Add(context.Background(), "T2"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `["T1"]`, string(data))
}
