package cmd

import (
	"github.com/spf13/cobra"
)

// uninstallCmd removes the skill directory and its MCP server entry.
var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the skill directory and its MCP server registration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		in, err := newInstaller()
		if err != nil {
			return err
		}
		return in.Uninstall()
	},
}

func init() {
	rootCmd.AddCommand(uninstallCmd)
}
