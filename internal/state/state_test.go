package state

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadReceipt_Missing(t *testing.T) {
	t.Parallel()

	r, err := LoadReceipt(filepath.Join(t.TempDir(), ".install.json"))
	require.NoError(t, err)
	require.Nil(t, r)
}

func TestSaveLoadReceipt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".install.json")
	want := &Receipt{
		SkillName:    "workflow-analyst",
		InstalledAt:  time.Now().UTC().Truncate(time.Second),
		SkillDir:     "/work/.agent/skills/workflow-analyst",
		Assets:       []string{"system-design.excalidrawlib"},
		HelperScript: "/work/.agent/skills/workflow-analyst/scripts/mermaid_to_link.js",
		MCPConfig:    "/home/dev/.gemini/antigravity/mcp_config.json",
		ServerName:   "mcp-mermaid",
		MCPUpdated:   true,
	}
	SaveReceipt(path, want)

	got, err := LoadReceipt(path)
	require.NoError(t, err)
	require.Equal(t, want.SkillName, got.SkillName)
	require.True(t, want.InstalledAt.Equal(got.InstalledAt))
	require.Equal(t, want.Assets, got.Assets)
	require.Equal(t, want.MCPConfig, got.MCPConfig)
	require.True(t, got.MCPUpdated)
}

func TestLoadReceipt_Corrupt(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".install.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := LoadReceipt(path)
	require.Error(t, err)
}

func TestReceipt_SameInstall(t *testing.T) {
	t.Parallel()

	a := &Receipt{SkillName: "workflow-analyst", InstalledAt: time.Unix(100, 0), Assets: nil}
	b := &Receipt{SkillName: "workflow-analyst", InstalledAt: time.Unix(200, 0), Assets: []string{}}
	require.True(t, a.SameInstall(b))

	b.MCPUpdated = true
	require.False(t, a.SameInstall(b))
}
