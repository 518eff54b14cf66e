package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var mkdirCmd = &cobra.Command{
	Use:   "mkdir <path>",
	Short: "Create a folder and its missing ancestors",
	Long: `Create the folder at the given path, including any missing ancestor
folders. An existing folder is a no-op; an existing file at the path is
refused.`,
	Args: RequirePath,
	RunE: runMkdir,
}

func init() {
	rootCmd.AddCommand(mkdirCmd)
}

func runMkdir(cmd *cobra.Command, args []string) error {
	tree, err := buildTree(cmd)
	if err != nil {
		return err
	}
	n, err := tree.Node(args[0])
	if err != nil {
		return err
	}

	if err := n.EnsureDir(cmd.Context()); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", n.Path())
	return nil
}
