package installer

import (
	"errors"
	"fmt"
	"os"
	"skill-setup/internal/logger"
	"skill-setup/internal/mcpconfig"
	"skill-setup/internal/state"
)

// Uninstall removes the skill directory and the MCP server entry.
// The directory removed is always the one resolved from the current paths.
// The install receipt only supplies the server name and MCP config location,
// and only when it was written for this same skill directory, so a receipt
// copied in from elsewhere cannot point the removal at other files.
// Removing the MCP entry is best-effort.
func (in *Installer) Uninstall() error {
	skillDir := in.Paths.SkillDir
	serverName := in.Manifest.ServerName
	store := in.Store

	receipt, err := state.LoadReceipt(in.Paths.Receipt)
	if err != nil {
		logger.Warn("[WARN] Ignoring unreadable install receipt: %v\n", err)
	}
	switch {
	case receipt == nil:
	case receipt.SkillDir != skillDir:
		logger.Warn("[WARN] Ignoring install receipt written for %s\n", receipt.SkillDir)
	default:
		logger.Debug("[DEBUG] Using install receipt from %s\n", receipt.InstalledAt)
		if receipt.ServerName != "" {
			serverName = receipt.ServerName
		}
		if receipt.MCPConfig != "" && receipt.MCPConfig != in.Paths.MCPConfig {
			store = mcpconfig.NewFileStore(receipt.MCPConfig)
		}
	}

	logger.Info("[INFO] Removing MCP server %s...\n", serverName)
	removed, err := mcpconfig.Remove(store, serverName)
	switch {
	case errors.Is(err, mcpconfig.ErrMalformed):
		logger.Warn("[WARN] MCP config is malformed; leaving it untouched.\n")
	case err != nil:
		logger.Error("[ERROR] Failed to update MCP configuration: %v\n", err)
	case removed:
		logger.Info("[INFO] Removed %s from MCP configuration.\n", serverName)
	default:
		logger.Info("[INFO] %s was not registered. Skipping.\n", serverName)
	}

	if _, err := os.Stat(skillDir); errors.Is(err, os.ErrNotExist) {
		logger.Info("[INFO] %s does not exist. Nothing to remove.\n", skillDir)
		return nil
	}
	logger.Info("[INFO] Removing %s...\n", skillDir)
	if err := os.RemoveAll(skillDir); err != nil {
		return fmt.Errorf("failed to remove %s: %w", skillDir, err)
	}
	logger.Info("[INFO] Successfully removed %s\n", skillDir)
	return nil
}
