package installer

import (
	"context"
	"fmt"
	"runtime"
	"skill-setup/internal/config"
	"skill-setup/internal/logger"
	"skill-setup/internal/mcpconfig"
	"skill-setup/internal/packagemgr"
	"skill-setup/internal/state"
	"skill-setup/internal/templates"
	"time"
)

// Installer lays down the skill described by Manifest at Paths.
// Side effects outside the filesystem go through PackageManager and Store,
// so tests can substitute fakes.
type Installer struct {
	Manifest       config.Manifest
	Paths          config.Paths
	PackageManager packagemgr.PackageManager
	Store          mcpconfig.Store
	GOOS           string           // Host OS used to pick the MCP server entry
	SkipDeps       bool             // Skip the package manager invocation
	Now            func() time.Time // Clock for the receipt
}

// Result summarizes a run.
type Result struct {
	Assets     []string // Asset names copied
	Bundles    []string // Bundle names extracted
	MCPUpdated bool     // Whether the host configuration was written
}

// New builds an Installer with the real package manager and MCP config store.
func New(m config.Manifest, p config.Paths) *Installer {
	return &Installer{
		Manifest:       m,
		Paths:          p,
		PackageManager: packagemgr.NewNPM(m.PackageManager),
		Store:          mcpconfig.NewFileStore(p.MCPConfig),
		GOOS:           runtime.GOOS,
		Now:            time.Now,
	}
}

// Run executes every step in order. Asset and MCP configuration problems are
// logged and skipped; directory, dependency and generation failures abort
// the run with an error.
func (in *Installer) Run(ctx context.Context) (*Result, error) {
	logger.Info("[INFO] Starting %s skill installation...\n", in.Manifest.SkillName)

	if err := in.CreateDirs(); err != nil {
		return nil, err
	}

	res := &Result{}
	res.Assets, res.Bundles = in.CopyAssets()

	if err := in.InstallDependencies(ctx); err != nil {
		return nil, err
	}
	if err := in.WriteSkill(); err != nil {
		return nil, err
	}
	res.MCPUpdated = in.ConfigureMCP()

	in.writeReceipt(res)
	in.PrintSummary(res)
	return res, nil
}

// CreateDirs provisions the skill and scripts directories.
func (in *Installer) CreateDirs() error {
	logger.Info("[INFO] Creating directories...\n")
	if err := EnsureDir(in.Paths.SkillDir); err != nil {
		return err
	}
	return EnsureDir(in.Paths.ScriptsDir)
}

// CopyAssets copies the icon libraries and extracts any asset bundles into
// the skill directory.
func (in *Installer) CopyAssets() (assets, bundles []string) {
	assets = CopyAssets(in.Manifest.Assets, in.Paths.WorkDir, in.Paths.SkillDir)
	bundles = ExtractBundles(in.Manifest.AssetBundles, in.Paths.WorkDir, in.Paths.SkillDir)
	return assets, bundles
}

// InstallDependencies ensures the package descriptor exists, installs the
// dependencies, writes the helper program and marks the package as an ES module.
// A package manager failure or a malformed descriptor is fatal.
func (in *Installer) InstallDependencies(ctx context.Context) error {
	logger.Info("[INFO] Setting up scripts in %s...\n", in.Paths.ScriptsDir)

	created, err := packagemgr.EnsureDescriptor(in.Paths.ScriptsDir)
	if err != nil {
		return err
	}
	if created {
		logger.Debug("[DEBUG] Initialized %s\n", in.Paths.PackageJSON)
	}

	if in.SkipDeps {
		logger.Warn("[WARN] Skipping dependency installation (%v).\n", in.Manifest.Dependencies)
	} else {
		logger.Info("[INFO] Installing %v...\n", in.Manifest.Dependencies)
		if err := in.PackageManager.Install(ctx, in.Paths.ScriptsDir, in.Manifest.Dependencies); err != nil {
			return fmt.Errorf("dependency installation failed: %w", err)
		}
	}

	if err := writeFile(in.Paths.HelperScript, templates.HelperScript()); err != nil {
		return err
	}
	logger.Debug("[DEBUG] Wrote helper script %s\n", in.Paths.HelperScript)

	return packagemgr.SetModuleType(in.Paths.PackageJSON)
}

// WriteSkill renders SKILL.md with the helper's absolute invocation.
func (in *Installer) WriteSkill() error {
	logger.Info("[INFO] Creating skill definition...\n")

	out, err := templates.RenderSkill(templates.SkillData{
		HelperCommand: templates.HelperCommand(in.Paths.HelperScript),
	})
	if err != nil {
		return err
	}
	return writeFile(in.Paths.SkillFile, out)
}

// ConfigureMCP registers the MCP server in the host configuration.
// The step is best-effort: failures are logged and reported as false.
func (in *Installer) ConfigureMCP() bool {
	logger.Info("[INFO] Configuring MCP server %s in %s...\n", in.Manifest.ServerName, in.Paths.MCPConfig)

	entry := mcpconfig.ServerEntry(in.GOOS)
	if _, err := mcpconfig.Merge(in.Store, in.Manifest.ServerName, entry); err != nil {
		logger.Error("[ERROR] Failed to update MCP configuration: %v\n", err)
		return false
	}
	logger.Info("[INFO] MCP configuration updated.\n")
	return true
}

// writeReceipt records the run. When the previous receipt describes the same
// install, its timestamp is kept so a repeated run leaves the file unchanged.
func (in *Installer) writeReceipt(res *Result) {
	now := time.Now
	if in.Now != nil {
		now = in.Now
	}
	r := &state.Receipt{
		SkillName:    in.Manifest.SkillName,
		InstalledAt:  now().UTC(),
		SkillDir:     in.Paths.SkillDir,
		Assets:       res.Assets,
		Bundles:      res.Bundles,
		HelperScript: in.Paths.HelperScript,
		MCPConfig:    in.Paths.MCPConfig,
		ServerName:   in.Manifest.ServerName,
		MCPUpdated:   res.MCPUpdated,
	}

	prev, err := state.LoadReceipt(in.Paths.Receipt)
	if err != nil {
		logger.Debug("[DEBUG] Replacing unreadable install receipt: %v\n", err)
	}
	if prev != nil && prev.SameInstall(r) {
		r.InstalledAt = prev.InstalledAt
	}
	state.SaveReceipt(in.Paths.Receipt, r)
}

// PrintSummary prints the completion message and the available icon libraries.
func (in *Installer) PrintSummary(res *Result) {
	logger.Info("\n[INFO] Installation complete!\n")
	logger.Info("[INFO] To use the skill, ask your agent to 'Activate %s skill'.\n", in.Manifest.SkillName)
	logger.Info("[INFO] Remember to restart your MCP servers/VS Code to apply changes.\n")
	if !res.MCPUpdated {
		logger.Warn("[WARN] %s was not updated; register %s manually.\n", in.Paths.MCPConfig, in.Manifest.ServerName)
	}

	if len(res.Assets) == 0 {
		return
	}
	logger.Info("\n[INFO] Icon libraries available:\n")
	for _, name := range res.Assets {
		logger.Info("   - %s\n", name)
	}
	logger.Info("   To use in Excalidraw: Open Library -> Import -> Select the .excalidrawlib file\n")
}
