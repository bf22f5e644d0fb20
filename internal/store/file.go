// Package store persists the corpus as a flat JSON list of records. The core
// never performs partial updates: every save is a whole-file atomic replace,
// and every load reflects a single consistent point in time.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	gocache "github.com/patrickmn/go-cache"
	"github.com/rotisserie/eris"

	"github.com/PaniclandUSA/Esper-Thesis/internal/model"
)

// FileStore reads and writes the corpus file. A file lock guards against
// concurrent CLI invocations touching the same corpus; decoded snapshots are
// cached in memory keyed by the file's modification time.
type FileStore struct {
	path  string
	lock  *flock.Flock
	cache *gocache.Cache
}

// NewFileStore creates a store for the given corpus path.
func NewFileStore(path string, cacheTTL time.Duration) *FileStore {
	if cacheTTL <= 0 {
		cacheTTL = 5 * time.Minute
	}
	return &FileStore{
		path:  path,
		lock:  flock.New(path + ".lock"),
		cache: gocache.New(cacheTTL, 2*cacheTTL),
	}
}

// Path returns the corpus file path.
func (s *FileStore) Path() string { return s.path }

// Load reads the full corpus. A missing file is an empty corpus, not an
// error; a malformed file is a CorpusError, surfaced and never retried.
func (s *FileStore) Load() ([]model.Record, error) {
	info, err := os.Stat(s.path)
	if os.IsNotExist(err) {
		return []model.Record{}, nil
	}
	if err != nil {
		return nil, &model.CorpusError{Path: s.path, Err: err}
	}

	key := snapshotKey(s.path, info.ModTime())
	if cached, found := s.cache.Get(key); found {
		return cloneRecords(cached.([]model.Record)), nil
	}

	if err := s.lock.RLock(); err != nil {
		return nil, eris.Wrap(err, "store: acquire read lock")
	}
	defer func() { _ = s.lock.Unlock() }()

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, &model.CorpusError{Path: s.path, Err: err}
	}

	var records []model.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, &model.CorpusError{Path: s.path, Err: err}
	}

	s.cache.Set(key, cloneRecords(records), gocache.DefaultExpiration)
	return records, nil
}

// Replace writes the full record list atomically: marshal, write to a temp
// file in the same directory, rename over the original.
func (s *FileStore) Replace(records []model.Record) error {
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return eris.Wrap(err, "store: marshal corpus")
	}

	dir := filepath.Dir(s.path)
	if dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrap(err, "store: create corpus directory")
		}
	}

	if err := s.lock.Lock(); err != nil {
		return eris.Wrap(err, "store: acquire write lock")
	}
	defer func() { _ = s.lock.Unlock() }()

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return eris.Wrap(err, "store: create temp file")
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return eris.Wrap(err, "store: write temp file")
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return eris.Wrap(err, "store: close temp file")
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return eris.Wrap(err, "store: replace corpus")
	}

	s.cache.Flush()
	return nil
}

func snapshotKey(path string, mtime time.Time) string {
	return fmt.Sprintf("%s:%d", path, mtime.UnixNano())
}

// cloneRecords copies the slice so cached snapshots stay immutable even if a
// caller mutates what Load returned.
func cloneRecords(records []model.Record) []model.Record {
	out := make([]model.Record, len(records))
	copy(out, records)
	return out
}
