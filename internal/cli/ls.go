package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fnode/pkg/fnode"
)

var lsFlags struct {
	files bool
	dirs  bool
	long  bool
}

func resetLsFlags() {
	lsFlags.files = false
	lsFlags.dirs = false
	lsFlags.long = false
}

var lsCmd = &cobra.Command{
	Use:   "ls [path]",
	Short: "List the children of a folder",
	Long: `List the entries directly under the given folder, in name order.
Without a path the working directory is listed. Listing a file or a missing
path yields nothing unless --mode strict is in effect.`,
	Args: OptionalPath,
	RunE: runLs,
}

func init() {
	lsCmd.Flags().BoolVar(&lsFlags.files, "files", false, "List only files")
	lsCmd.Flags().BoolVar(&lsFlags.dirs, "dirs", false, "List only folders")
	lsCmd.Flags().BoolVarP(&lsFlags.long, "long", "l", false, "Show kind and size per entry")
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	if lsFlags.files && lsFlags.dirs {
		return fmt.Errorf("--files and --dirs are mutually exclusive")
	}

	tree, err := buildTree(cmd)
	if err != nil {
		return err
	}
	n, err := tree.Node(pathOrDot(args))
	if err != nil {
		return err
	}

	ctx := cmd.Context()

	var kids []*fnode.Node
	switch {
	case lsFlags.files:
		kids, err = n.Files(ctx)
	case lsFlags.dirs:
		kids, err = n.Dirs(ctx)
	default:
		kids, err = n.Children(ctx, nil)
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, kid := range kids {
		if lsFlags.long {
			fmt.Fprintf(out, "%-7s %10d  %s\n", kid.Kind(ctx), kid.Size(ctx), kid.Name())
		} else {
			fmt.Fprintln(out, kid.Name())
		}
	}
	return nil
}
