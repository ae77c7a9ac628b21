package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"skill-setup/internal/config"
	"skill-setup/internal/installer"
)

// manifestPath holds the optional YAML manifest overriding the built-in defaults.
// It's passed via the `--manifest` or `-c` flag.
var manifestPath string

// workDir is where assets are read from and .agent/skills is created.
var workDir string

// homeDir is the directory the host MCP configuration path is resolved against.
var homeDir string

// skipDeps disables the package manager invocation.
var skipDeps bool

// newInstaller loads the manifest and resolves paths from the command flags.
func newInstaller() (*installer.Installer, error) {
	m, err := config.LoadManifest(manifestPath)
	if err != nil {
		return nil, err
	}

	wd := workDir
	if wd == "" {
		if wd, err = os.Getwd(); err != nil {
			return nil, fmt.Errorf("failed to determine working directory: %w", err)
		}
	}
	home := homeDir
	if home == "" {
		if home, err = os.UserHomeDir(); err != nil {
			return nil, fmt.Errorf("failed to determine home directory: %w", err)
		}
	}

	in := installer.New(m, config.ResolvePaths(m, wd, home))
	in.SkipDeps = skipDeps
	return in, nil
}

// installCmd runs every installation step in order.
var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the skill (directories, assets, dependencies, SKILL.md, MCP server)",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := newInstaller()
		if err != nil {
			return err
		}
		_, err = in.Run(cmd.Context())
		return err
	},
}

// installDirsCmd only provisions the skill directories.
var installDirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "Create only the skill and scripts directories",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := newInstaller()
		if err != nil {
			return err
		}
		return in.CreateDirs()
	},
}

// installAssetsCmd copies icon libraries and extracts asset bundles.
var installAssetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Copy only the icon libraries and asset bundles",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := newInstaller()
		if err != nil {
			return err
		}
		if err := in.CreateDirs(); err != nil {
			return err
		}
		in.CopyAssets()
		return nil
	},
}

// installDepsCmd installs dependencies and writes the helper script.
var installDepsCmd = &cobra.Command{
	Use:   "deps",
	Short: "Install only the helper dependencies and script",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := newInstaller()
		if err != nil {
			return err
		}
		if err := in.CreateDirs(); err != nil {
			return err
		}
		return in.InstallDependencies(cmd.Context())
	},
}

// installSkillCmd renders SKILL.md.
var installSkillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Write only the SKILL.md definition",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := newInstaller()
		if err != nil {
			return err
		}
		if err := in.CreateDirs(); err != nil {
			return err
		}
		return in.WriteSkill()
	},
}

// installMCPCmd registers the MCP server in the host configuration.
var installMCPCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Register only the MCP server in the host configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := newInstaller()
		if err != nil {
			return err
		}
		in.ConfigureMCP()
		return nil
	},
}

// init sets up CLI flags and adds subcommands to the root command.
func init() {
	// Flags shared by install, its subcommands and uninstall
	for _, c := range []*cobra.Command{installCmd, uninstallCmd} {
		c.PersistentFlags().StringVarP(&manifestPath, "manifest", "c", "", "Path to an optional YAML manifest")
		c.PersistentFlags().StringVar(&workDir, "workdir", "", "Project directory (defaults to the current directory)")
		c.PersistentFlags().StringVar(&homeDir, "home", "", "Home directory for the MCP config (defaults to the user's home)")
	}
	installCmd.PersistentFlags().BoolVar(&skipDeps, "skip-deps", false, "Do not run the package manager")

	// Add subcommands for more granular control
	installCmd.AddCommand(installDirsCmd)
	installCmd.AddCommand(installAssetsCmd)
	installCmd.AddCommand(installDepsCmd)
	installCmd.AddCommand(installSkillCmd)
	installCmd.AddCommand(installMCPCmd)
	// Register the `install` command with the root command
	rootCmd.AddCommand(installCmd)
}
