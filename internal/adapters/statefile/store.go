// Package statefile contains the filesystem adapter for the orchestration
// state document. The document is either a bare YAML (or JSON) snapshot, or
// a YAML front-matter block between --- fences followed by free-form text
// that is preserved verbatim across saves.
package statefile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/example/warden/internal/models"
	"github.com/example/warden/internal/ports/secondary"
)

const fence = "---"

// Store implements secondary.StateStore against a single document path.
// Nothing is cached between calls: every Load re-reads the file and every
// Save re-reads the trailing text before replacing the file atomically.
type Store struct {
	path string
}

// NewStore creates a state store for the given document path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the document path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the snapshot. Absent and empty documents report found=false
// with no error; a present document that fails to parse reports found=false
// with the parse error.
func (s *Store) Load(ctx context.Context) (*models.Snapshot, bool, error) {
	data, err := os.ReadFile(s.path)
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read state document: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil, false, nil
	}

	front, _ := splitDocument(data)
	var snap models.Snapshot
	if err := yaml.Unmarshal(front, &snap); err != nil {
		return nil, false, fmt.Errorf("failed to parse state document: %w", err)
	}
	return &snap, true, nil
}

// Save atomically replaces the document (temp file + rename), preserving any
// free-form trailing text of the existing document verbatim.
func (s *Store) Save(ctx context.Context, snap *models.Snapshot) error {
	front, err := yaml.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode snapshot: %w", err)
	}

	fenced, trailing := s.currentLayout()

	var buf bytes.Buffer
	if fenced {
		buf.WriteString(fence + "\n")
		buf.Write(front)
		buf.WriteString(fence + "\n")
		buf.Write(trailing)
	} else {
		buf.Write(front)
	}

	return s.writeAtomic(buf.Bytes())
}

// currentLayout inspects the existing document to decide whether to emit
// front-matter fences and what trailing text to carry over. A missing
// document defaults to the fenced layout.
func (s *Store) currentLayout() (fenced bool, trailing []byte) {
	data, err := os.ReadFile(s.path)
	if err != nil || strings.TrimSpace(string(data)) == "" {
		return true, nil
	}
	if !hasFence(data) {
		return false, nil
	}
	_, trailing = splitDocument(data)
	return true, trailing
}

func (s *Store) writeAtomic(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".state-*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to chmod temp file: %w", err)
	}

	// Rename is the atomicity guarantee: a concurrent reader sees either
	// the old document or the new one, never a partial write.
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace state document: %w", err)
	}
	return nil
}

func hasFence(data []byte) bool {
	line, _, _ := bytes.Cut(data, []byte("\n"))
	return strings.TrimRight(string(line), "\r") == fence
}

// splitDocument separates the structured front matter from the trailing
// free-form text. Without fences the whole document is front matter. An
// unclosed fence treats the remainder as front matter.
func splitDocument(data []byte) (front, trailing []byte) {
	if !hasFence(data) {
		return data, nil
	}
	_, rest, _ := bytes.Cut(data, []byte("\n"))

	offset := 0
	for offset <= len(rest) {
		lineEnd := bytes.IndexByte(rest[offset:], '\n')
		var line []byte
		next := len(rest)
		if lineEnd >= 0 {
			line = rest[offset : offset+lineEnd]
			next = offset + lineEnd + 1
		} else {
			line = rest[offset:]
		}
		if strings.TrimRight(string(line), "\r") == fence {
			return rest[:offset], rest[next:]
		}
		if lineEnd < 0 {
			break
		}
		offset = next
	}
	return rest, nil
}

// Ensure Store implements the interface.
var _ secondary.StateStore = (*Store)(nil)
