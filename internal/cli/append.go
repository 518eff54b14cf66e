package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var appendFlags struct {
	data      string
	dataSet   bool
	mustExist bool
}

func resetAppendFlags() {
	appendFlags.data = ""
	appendFlags.dataSet = false
	appendFlags.mustExist = false
}

var appendCmd = &cobra.Command{
	Use:   "append <path>",
	Short: "Append content to a file",
	Long: `Append content to the file at the given path, taking the content from
--data or from stdin. A missing file is created unless --must-exist is set;
appending onto a folder is always refused.`,
	Args: RequirePath,
	RunE: runAppend,
}

func init() {
	appendCmd.Flags().StringVar(&appendFlags.data, "data", "", "Content to append (default: read stdin)")
	appendCmd.Flags().BoolVar(&appendFlags.mustExist, "must-exist", false, "Refuse to create a missing file")
	rootCmd.AddCommand(appendCmd)
}

func runAppend(cmd *cobra.Command, args []string) error {
	tree, err := buildTree(cmd)
	if err != nil {
		return err
	}
	n, err := tree.Node(args[0])
	if err != nil {
		return err
	}

	data, err := contentFromFlagOrStdin(cmd, appendFlags.data, appendFlags.dataSet)
	if err != nil {
		return err
	}

	if err := n.Append(cmd.Context(), data, appendFlags.mustExist); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", n.Path())
	return nil
}
