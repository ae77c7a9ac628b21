package mcpconfig

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"skill-setup/internal/logger"
)

// FileStore keeps a Document in a JSON file.
type FileStore struct {
	Path string
}

// NewFileStore returns a store backed by path.
func NewFileStore(path string) *FileStore {
	return &FileStore{Path: path}
}

// Load reads the configuration file.
// A missing file yields an empty Document and no error. A file that is not a
// JSON object yields an empty Document and ErrMalformed; its bytes are copied
// to <path>.bak first so the following Save does not lose them.
func (s *FileStore) Load() (Document, error) {
	raw, err := os.ReadFile(s.Path)
	if errors.Is(err, os.ErrNotExist) {
		logger.Debug("[DEBUG] No MCP config at %s, starting empty\n", s.Path)
		return Document{}, nil
	}
	if err != nil {
		return Document{}, fmt.Errorf("failed to read %s: %w", s.Path, err)
	}

	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		backup := s.Path + ".bak"
		if werr := os.WriteFile(backup, raw, 0o644); werr != nil {
			logger.Warn("[WARN] Failed to back up malformed MCP config to %s: %v\n", backup, werr)
		} else {
			logger.Debug("[DEBUG] Backed up malformed MCP config to %s\n", backup)
		}
		if err == nil {
			err = errors.New("top-level value is null")
		}
		return Document{}, fmt.Errorf("%w: %s: %v", ErrMalformed, s.Path, err)
	}
	return doc, nil
}

// Save writes doc indented by two spaces, leaving characters such as & < >
// unescaped. Object keys come out sorted. The file is written to a temporary
// sibling and renamed into place, so readers never observe a partial file.
func (s *FileStore) Save(doc Document) error {
	if doc == nil {
		doc = Document{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("failed to marshal MCP config: %w", err)
	}
	data := bytes.TrimRight(buf.Bytes(), "\n")

	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	tmpName := tmp.Name()
	defer func() {
		// No-op after a successful rename.
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}
	if err := os.Chmod(tmpName, 0o644); err != nil {
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}

	logger.Debug("[DEBUG] Writing MCP config to %s:\n%s\n", s.Path, string(data))
	if err := os.Rename(tmpName, s.Path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", s.Path, err)
	}
	return nil
}
