package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fnode/internal/tui"
)

var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "Browse a folder interactively",
	Long: `Walk the folder tree in an interactive terminal view. In pipelines
and other non-interactive contexts the folder is listed once instead,
like 'fnode ls --long'.`,
	Args: OptionalPath,
	RunE: runBrowse,
}

func init() {
	rootCmd.AddCommand(browseCmd)
}

func runBrowse(cmd *cobra.Command, args []string) error {
	tree, err := buildTree(cmd)
	if err != nil {
		return err
	}
	n, err := tree.Node(pathOrDot(args))
	if err != nil {
		return err
	}

	if !tui.IsInteractive() {
		ctx := cmd.Context()
		kids, err := n.Children(ctx, nil)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		for _, kid := range kids {
			fmt.Fprintf(out, "%-7s %10d  %s\n", kid.Kind(ctx), kid.Size(ctx), kid.Name())
		}
		return nil
	}

	return tui.RunBrowser(tree, n)
}
