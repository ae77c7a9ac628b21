package mcpconfig

import (
	"errors"
	"fmt"

	"skill-setup/internal/logger"
)

// Merge loads the document from store, registers entry under name and saves it back.
// A malformed document is logged and the merge proceeds from an empty one.
// Any other load failure (e.g. permission denied) is returned without saving,
// so a file that could not be read is never replaced.
func Merge(store Store, name string, entry Server) (Document, error) {
	doc, err := store.Load()
	switch {
	case errors.Is(err, ErrMalformed):
		logger.Error("[ERROR] Error reading MCP config, starting fresh: %v\n", err)
		doc = Document{}
	case err != nil:
		return nil, fmt.Errorf("failed to load MCP config: %w", err)
	}

	doc = Register(doc, name, entry)
	if err := store.Save(doc); err != nil {
		return doc, fmt.Errorf("failed to save MCP config: %w", err)
	}
	logger.Debug("[DEBUG] Registered MCP server %s -> %s %v\n", name, entry.Command, entry.Args)
	return doc, nil
}

// Remove deletes the entry for name and saves the document when something changed.
// A malformed or missing file is left untouched.
func Remove(store Store, name string) (bool, error) {
	doc, err := store.Load()
	if err != nil {
		return false, err
	}
	if !Unregister(doc, name) {
		return false, nil
	}
	if err := store.Save(doc); err != nil {
		return false, fmt.Errorf("failed to save MCP config: %w", err)
	}
	return true, nil
}
