package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"skill-setup/internal/mermaid"
)

// errMissingCode mirrors the helper script's usage error.
var errMissingCode = errors.New("please provide the Mermaid code in quotes")

// linkCmd prints the mermaid.live edit link for a diagram, exactly like the
// generated mermaid_to_link.js helper, without needing Node.
var linkCmd = &cobra.Command{
	Use:   "link <mermaid-code>",
	Short: "Print an editable mermaid.live link for Mermaid code",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 || args[0] == "" {
			return errMissingCode
		}

		url, err := mermaid.EditURL(args[0])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), url)
		return err
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
}
