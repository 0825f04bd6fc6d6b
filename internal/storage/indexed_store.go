package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
)

var ErrEmpty = errors.New("no indexed files found")

// IndexedStore hands out monotonically increasing file names per
// (folder, prefix, ext) namespace and stores text blobs under them.
type IndexedStore struct {
	mu sync.Mutex
	// allocated paths not yet written or released
	pending map[string]slot
}

type slot struct {
	namespace string
	index     int
}

func NewIndexedStore() *IndexedStore {
	return &IndexedStore{pending: make(map[string]slot)}
}

// EnsureFolders creates every folder the store will write to.
func (s *IndexedStore) EnsureFolders(folders ...string) error {
	for _, dir := range folders {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("EnsureFolders(): failed to create %s: %w", dir, err)
		}
	}
	return nil
}

// Allocate returns the path of the next unused index, max(existing)+1 or 1.
// Indices handed out but not yet written count as existing until Write or
// Release drops them, so concurrent callers always get distinct paths.
func (s *IndexedStore) Allocate(folder, prefix, ext string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	highest, _, err := highestIndex(folder, prefix, ext)
	if err != nil && !errors.Is(err, ErrEmpty) {
		return "", err
	}
	key := namespace(folder, prefix, ext)
	for _, p := range s.pending {
		if p.namespace == key && p.index > highest {
			highest = p.index
		}
	}
	next := highest + 1
	path := filepath.Join(folder, prefix+strconv.Itoa(next)+ext)
	s.pending[filepath.Clean(path)] = slot{namespace: key, index: next}
	return path, nil
}

// Release gives back an allocated path that will not be written. Unknown
// paths are ignored.
func (s *IndexedStore) Release(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, filepath.Clean(path))
}

// Latest returns the entry with the numerically highest index.
func (s *IndexedStore) Latest(folder, prefix, ext string) (string, error) {
	_, name, err := highestIndex(folder, prefix, ext)
	if err != nil {
		return "", err
	}
	return filepath.Join(folder, name), nil
}

// Write stores data at path, which must not exist yet. The content goes to a
// hidden temp file first and is hard-linked into place, so readers never see
// a partial file. Write always releases path, whether it succeeds or not.
func (s *IndexedStore) Write(path string, data []byte) error {
	defer s.Release(path)

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	// 이미 존재하면 fs.ErrExist, 덮어쓰지 않음
	return os.Link(tmpName, path)
}

// Save allocates the next path and writes data to it. An index taken by
// another process between scan and create is skipped.
func (s *IndexedStore) Save(folder, prefix, ext string, data []byte) (string, error) {
	for attempt := 0; attempt < 8; attempt++ {
		path, err := s.Allocate(folder, prefix, ext)
		if err != nil {
			return "", err
		}
		err = s.Write(path, data)
		if err == nil {
			return path, nil
		}
		if !errors.Is(err, fs.ErrExist) {
			return "", err
		}
	}
	return "", fmt.Errorf("Save(): no free index in %s after repeated collisions", folder)
}

func (s *IndexedStore) Read(path string) ([]byte, error) {
	return os.ReadFile(path)
}

func namespace(folder, prefix, ext string) string {
	return filepath.Clean(folder) + "\x00" + prefix + "\x00" + ext
}

func highestIndex(folder, prefix, ext string) (int, string, error) {
	entries, err := os.ReadDir(folder)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, "", ErrEmpty
		}
		return 0, "", fmt.Errorf("failed to list %s: %w", folder, err)
	}

	highest, name, found := 0, "", false
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		idx, ok := ParseIndex(e.Name(), prefix, ext)
		if !ok {
			continue
		}
		if !found || idx > highest {
			highest, name, found = idx, e.Name(), true
		}
	}
	if !found {
		return 0, "", ErrEmpty
	}
	return highest, name, nil
}

// ParseIndex reports the integer embedded in prefix<int>ext. Names of any
// other shape are not part of the namespace and report false.
func ParseIndex(name, prefix, ext string) (int, bool) {
	if !strings.HasPrefix(name, prefix) || !strings.HasSuffix(name, ext) {
		return 0, false
	}
	if len(name) <= len(prefix)+len(ext) {
		return 0, false
	}
	digits := name[len(prefix) : len(name)-len(ext)]
	for _, r := range digits {
		if r < '0' || r > '9' {
			return 0, false
		}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, false
	}
	return n, true
}
