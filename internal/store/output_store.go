package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

const deckPrefix = "presentation_"

// OutputStore manages the output directory: it resolves deck file names and
// writes files whole, via a temp file then rename.
type OutputStore struct {
	dir string
	mu  sync.Mutex
}

// NewOutputStore returns a store rooted at dir.
func NewOutputStore(dir string) *OutputStore { return &OutputStore{dir: dir} }

// Dir returns the output directory.
func (s *OutputStore) Dir() string { return s.dir }

// ResolveDeckPath decides where a deck is written. An empty name yields a
// timestamped file under the output directory; a bare filename is placed
// under the output directory; a name with a directory component is used
// as-is. An existing target gets a short unique suffix rather than being
// overwritten.
func (s *OutputStore) ResolveDeckPath(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	var path string
	switch {
	case name == "":
		path = filepath.Join(s.dir, deckPrefix+time.Now().Format("20060102_150405")+".pptx")
	case filepath.Dir(name) == ".":
		path = filepath.Join(s.dir, name)
	default:
		if err := os.MkdirAll(filepath.Dir(name), 0o755); err != nil {
			return "", fmt.Errorf("create output dir: %w", err)
		}
		path = name
	}

	if _, err := os.Stat(path); err == nil {
		ext := filepath.Ext(path)
		stem := strings.TrimSuffix(path, ext)
		path = fmt.Sprintf("%s_%s%s", stem, uuid.NewString()[:8], ext)
	}
	return path, nil
}

// WriteFile writes data whole via a temp file then rename.
func (s *OutputStore) WriteFile(path string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
