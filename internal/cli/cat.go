package cli

import (
	"github.com/spf13/cobra"
)

var catCmd = &cobra.Command{
	Use:   "cat <path>",
	Short: "Print the content of a file",
	Long: `Print the file's content to stdout. A folder or missing path prints
nothing unless --mode strict is in effect.`,
	Args: RequirePath,
	RunE: runCat,
}

func init() {
	rootCmd.AddCommand(catCmd)
}

func runCat(cmd *cobra.Command, args []string) error {
	tree, err := buildTree(cmd)
	if err != nil {
		return err
	}
	n, err := tree.Node(args[0])
	if err != nil {
		return err
	}

	data, err := n.Read(cmd.Context())
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
