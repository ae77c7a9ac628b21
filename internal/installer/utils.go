package installer

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"skill-setup/internal/logger"
)

// EnsureDir creates path and any missing parents.
// An existing directory is a no-op; any other failure is returned.
func EnsureDir(path string) error {
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", path, err)
	}
	logger.Debug("[DEBUG] Directory ready: %s\n", path)
	return nil
}

// fileExists reports whether path names an existing regular file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// writeFile writes data to path with mode 0644, creating the parent directory.
func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// copyFile copies a file from src to dst, preserving permissions.
// It creates any missing directories in the destination path and overwrites dst.
// Returns an error if any step in the process fails.
func copyFile(src, dst string, modeOverride os.FileMode) (err error) {
	// Open the source file
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open source failed: %w", err)
	}
	defer in.Close()

	// Ensure the destination directory exists
	if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
		return fmt.Errorf("mkdir failed: %w", err)
	}

	// Create or truncate the destination file
	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create target failed: %w", err)
	}
	defer func() {
		cerr := out.Close()
		if err == nil {
			err = cerr
		}
	}()

	// Copy contents
	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("copy failed: %w", err)
	}

	// Set permissions: use override if provided, otherwise preserve source mode
	if modeOverride != 0 {
		return os.Chmod(dst, modeOverride)
	}
	if stat, err2 := os.Stat(src); err2 == nil {
		return os.Chmod(dst, stat.Mode().Perm())
	}
	return nil
}
