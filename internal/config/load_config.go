package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Built-in values of the workflow-analyst installer.
const (
	DefaultSkillName      = "workflow-analyst"
	DefaultPackageManager = "npm"
	DefaultServerName     = "mcp-mermaid"
	DefaultMCPConfig      = ".gemini/antigravity/mcp_config.json"

	helperScriptName = "mermaid_to_link.js"
	skillFileName    = "SKILL.md"
	receiptName      = ".install.json"
)

// DefaultManifest returns the manifest used when no YAML file is given.
func DefaultManifest() Manifest {
	return Manifest{
		SkillName: DefaultSkillName,
		Assets: []string{
			"aws-architecture-icons.excalidrawlib",
			"system-design.excalidrawlib",
		},
		Dependencies:   []string{"pako", "js-base64"},
		PackageManager: DefaultPackageManager,
		ServerName:     DefaultServerName,
		MCPConfig:      DefaultMCPConfig,
	}
}

// LoadManifest reads an optional YAML manifest on top of DefaultManifest.
// An empty path returns the defaults unchanged. Keys missing from the file
// keep their default values; an explicitly empty list (e.g. `assets: []`) clears them.
func LoadManifest(path string) (Manifest, error) {
	m := DefaultManifest()
	if path == "" {
		return m, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return Manifest{}, fmt.Errorf("failed to read manifest %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, &m); err != nil {
		return Manifest{}, fmt.Errorf("failed to unmarshal manifest %s: %w", path, err)
	}

	if m.SkillName == "" {
		return Manifest{}, fmt.Errorf("manifest %s: skill_name must not be empty", path)
	}
	if m.ServerName == "" {
		return Manifest{}, fmt.Errorf("manifest %s: server_name must not be empty", path)
	}
	if m.PackageManager == "" {
		m.PackageManager = DefaultPackageManager
	}
	if m.MCPConfig == "" {
		m.MCPConfig = DefaultMCPConfig
	}
	return m, nil
}

// ResolvePaths computes the absolute locations for a run rooted at workDir,
// with the host configuration resolved against homeDir.
func ResolvePaths(m Manifest, workDir, homeDir string) Paths {
	skillDir := filepath.Join(workDir, ".agent", "skills", m.SkillName)
	scriptsDir := filepath.Join(skillDir, "scripts")

	mcpConfig := m.MCPConfig
	if !filepath.IsAbs(mcpConfig) {
		mcpConfig = filepath.Join(homeDir, filepath.FromSlash(mcpConfig))
	}

	return Paths{
		WorkDir:      workDir,
		SkillDir:     skillDir,
		ScriptsDir:   scriptsDir,
		PackageJSON:  filepath.Join(scriptsDir, "package.json"),
		HelperScript: filepath.Join(scriptsDir, helperScriptName),
		SkillFile:    filepath.Join(skillDir, skillFileName),
		MCPConfig:    mcpConfig,
		Receipt:      filepath.Join(skillDir, receiptName),
	}
}
