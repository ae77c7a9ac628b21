package state

import (
	"encoding/json"               // For JSON encoding and decoding of the receipt file
	"errors"                      // For detecting a missing receipt
	"fmt"                         // For wrapping errors with context
	"os"                          // For file system operations like reading and writing files
	"skill-setup/internal/logger" // Colored console logging
	"time"                        // For the install timestamp
)

// Receipt records what an install run laid down, so uninstall can undo it
// without guessing. It lives inside the skill directory and is only trusted
// for the directory it was written in.
type Receipt struct {
	SkillName    string    `json:"skill_name"`    // Skill identifier, e.g. "workflow-analyst"
	InstalledAt  time.Time `json:"installed_at"`  // When the run completed
	SkillDir     string    `json:"skill_dir"`     // Absolute skill directory
	Assets       []string  `json:"assets"`        // Asset file names copied into SkillDir
	Bundles      []string  `json:"bundles"`       // Archives extracted into SkillDir
	HelperScript string    `json:"helper_script"` // Absolute path of the generated helper
	MCPConfig    string    `json:"mcp_config"`    // Host configuration file that was patched
	ServerName   string    `json:"server_name"`   // Entry registered under mcpServers
	MCPUpdated   bool      `json:"mcp_updated"`   // False when the config write failed
}

// SameInstall reports whether r and other describe the same install,
// ignoring when each was written.
func (r *Receipt) SameInstall(other *Receipt) bool {
	a, b := r.normalized(), other.normalized()
	ja, errA := json.Marshal(a)
	jb, errB := json.Marshal(b)
	return errA == nil && errB == nil && string(ja) == string(jb)
}

// normalized returns a copy without the timestamp and with nil and empty
// lists treated alike, since either may come back from disk.
func (r *Receipt) normalized() Receipt {
	c := *r
	c.InstalledAt = time.Time{}
	if len(c.Assets) == 0 {
		c.Assets = nil
	}
	if len(c.Bundles) == 0 {
		c.Bundles = nil
	}
	return c
}

// LoadReceipt loads the receipt from path.
// A missing file returns (nil, nil) so callers can fall back to defaults.
func LoadReceipt(path string) (*Receipt, error) {
	// Read entire receipt JSON file into memory
	file, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read receipt %s: %w", path, err)
	}

	// Parse JSON data into a Receipt struct
	var r Receipt
	if err := json.Unmarshal(file, &r); err != nil {
		return nil, fmt.Errorf("failed to parse receipt %s: %w", path, err)
	}
	return &r, nil
}

// SaveReceipt writes r to path, pretty-printed.
// Errors are logged but not propagated: a missing receipt only degrades uninstall.
func SaveReceipt(path string, r *Receipt) {
	// Marshal the Receipt struct into indented JSON bytes
	file, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		logger.Error("[ERROR] Failed to marshal install receipt: %v\n", err)
		return
	}

	logger.Debug("[DEBUG] Writing install receipt to %s:\n%s\n", path, string(file))

	// Write the JSON bytes to the file with mode 0644 (read/write owner, read others)
	if err := os.WriteFile(path, file, 0644); err != nil {
		logger.Error("[ERROR] Failed to write install receipt %s: %v\n", path, err)
	}
}
