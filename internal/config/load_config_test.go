package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadManifest_EmptyPathReturnsDefaults(t *testing.T) {
	t.Parallel()

	m, err := LoadManifest("")
	require.NoError(t, err)
	require.Equal(t, DefaultManifest(), m)
	require.Equal(t, []string{"pako", "js-base64"}, m.Dependencies)
}

func TestLoadManifest_OverridesOnlyGivenKeys(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "manifest.yaml")
	content := "server_name: mermaid-local\nassets: []\nasset_bundles:\n  - icons.7z\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, "mermaid-local", m.ServerName)
	assert.Empty(t, m.Assets)
	assert.Equal(t, []string{"icons.7z"}, m.AssetBundles)
	assert.Equal(t, DefaultSkillName, m.SkillName)
	assert.Equal(t, DefaultMCPConfig, m.MCPConfig)
}

func TestLoadManifest_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := LoadManifest(filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("assets: [unterminated"), 0o644))
	_, err = LoadManifest(bad)
	require.Error(t, err)

	empty := filepath.Join(dir, "empty-name.yaml")
	require.NoError(t, os.WriteFile(empty, []byte("skill_name: \"\"\n"), 0o644))
	_, err = LoadManifest(empty)
	require.ErrorContains(t, err, "skill_name")
}

func TestResolvePaths(t *testing.T) {
	t.Parallel()

	work := filepath.Join("/", "work")
	home := filepath.Join("/", "home", "dev")
	p := ResolvePaths(DefaultManifest(), work, home)

	skillDir := filepath.Join(work, ".agent", "skills", "workflow-analyst")
	assert.Equal(t, skillDir, p.SkillDir)
	assert.Equal(t, filepath.Join(skillDir, "scripts"), p.ScriptsDir)
	assert.Equal(t, filepath.Join(skillDir, "scripts", "package.json"), p.PackageJSON)
	assert.Equal(t, filepath.Join(skillDir, "scripts", "mermaid_to_link.js"), p.HelperScript)
	assert.Equal(t, filepath.Join(skillDir, "SKILL.md"), p.SkillFile)
	assert.Equal(t, filepath.Join(home, ".gemini", "antigravity", "mcp_config.json"), p.MCPConfig)
}

func TestResolvePaths_AbsoluteMCPConfig(t *testing.T) {
	t.Parallel()

	m := DefaultManifest()
	m.MCPConfig = filepath.Join(t.TempDir(), "mcp.json")

	p := ResolvePaths(m, t.TempDir(), t.TempDir())
	assert.Equal(t, m.MCPConfig, p.MCPConfig)
}
