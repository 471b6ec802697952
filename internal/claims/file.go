package claims

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	json "github.com/goccy/go-json"
)

// FileSet keeps the claim list in memory and mirrors it to a JSON array on disk.
// It assumes a single writer process.
type FileSet struct {
	path  string
	ids   []string
	index map[string]struct{}
}

// Load reads the claim file at path. A missing, unreadable, or malformed file
// yields an empty set; the returned error only reports why, it is never fatal.
func Load(path string) (*FileSet, error) {
	s := &FileSet{path: path, index: map[string]struct{}{}}

	data, err := os.ReadFile(path)
	if err != nil {
		return s, err
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return s, fmt.Errorf("parsing %s: %w", path, err)
	}
	for _, id := range ids {
		s.insert(id)
	}
	return s, nil
}

func (s *FileSet) insert(id string) bool {
	if _, ok := s.index[id]; ok {
		return false
	}
	s.index[id] = struct{}{}
	s.ids = append(s.ids, id)
	return true
}

func (s *FileSet) Contains(_ context.Context, id string) (bool, error) {
	_, ok := s.index[id]
	return ok, nil
}

// Add records id and rewrites the whole file.
func (s *FileSet) Add(_ context.Context, id string) error {
	if !s.insert(id) {
		return nil
	}
	return s.Save()
}

// IDs returns the claimed ids in the order they were added.
func (s *FileSet) IDs() []string {
	return append([]string(nil), s.ids...)
}

func (s *FileSet) Len() int {
	return len(s.ids)
}

// Save writes the set to a temporary file next to the target, syncs it, and
// renames it into place.
func (s *FileSet) Save() error {
	ids := s.ids
	if ids == nil {
		ids = []string{}
	}
	data, err := json.Marshal(ids)
	if err != nil {
		return fmt.Errorf("marshaling claims: %w", err)
	}

	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		return fmt.Errorf("creating %s: %w", tmp, err)
	}
	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("writing %s: %w", tmp, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return fmt.Errorf("syncing %s: %w", tmp, err)
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("closing %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("renaming %s: %w", tmp, err)
	}

	if dir, err := os.Open(filepath.Dir(s.path)); err == nil {
		dir.Sync()
		dir.Close()
	}
	return nil
}
