package installer

import (
	"path/filepath"
	"skill-setup/internal/logger"
)

// CopyAssets copies each named file from srcDir into dstDir, overwriting any
// previous copy. Missing files are reported and skipped, and so are copy
// failures: assets never abort a run. It returns the names actually copied.
func CopyAssets(names []string, srcDir, dstDir string) []string {
	var copied []string
	for _, name := range names {
		src := filepath.Join(srcDir, name)
		dst := filepath.Join(dstDir, name)

		if !fileExists(src) {
			logger.Warn("[WARN] %s not found in %s. Skipping.\n", name, srcDir)
			continue
		}

		logger.Info("[INFO] Copying %s...\n", name)
		if err := copyFile(src, dst, 0644); err != nil {
			logger.Error("[ERROR] Failed to copy %s: %v\n", name, err)
			continue
		}
		logger.Info("[INFO] %s copied to %s\n", name, dstDir)
		copied = append(copied, name)
	}
	return copied
}

// ExtractBundles unpacks each named archive from srcDir into dstDir.
// Like assets, missing or broken bundles are reported and skipped.
// It returns the names actually extracted.
func ExtractBundles(names []string, srcDir, dstDir string) []string {
	var extracted []string
	for _, name := range names {
		src := filepath.Join(srcDir, name)
		if !fileExists(src) {
			logger.Warn("[WARN] Bundle %s not found in %s. Skipping.\n", name, srcDir)
			continue
		}

		logger.Info("[INFO] Extracting %s...\n", name)
		files, err := ExtractArchive(src, dstDir)
		if err != nil {
			logger.Error("[ERROR] Failed to extract %s: %v\n", name, err)
			continue
		}
		logger.Info("[INFO] %s extracted to %s (%d files)\n", name, dstDir, len(files))
		extracted = append(extracted, name)
	}
	return extracted
}
