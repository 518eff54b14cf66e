package cli

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fnode/internal/checksum"
	"github.com/vvka-141/fnode/pkg/fnode"
)

var statFlags struct {
	digest bool
}

func resetStatFlags() {
	statFlags.digest = false
}

var statCmd = &cobra.Command{
	Use:   "stat <path>",
	Short: "Show the canonical path and metadata of an entry",
	Long: `Resolve the path argument into its canonical form and report what is
behind it: kind (file, folder or absent), size, modification time and the
canonical parent path. With --digest, file content is hashed both raw and
normalized (line endings and trailing whitespace unified).`,
	Args: RequirePath,
	RunE: runStat,
}

func init() {
	statCmd.Flags().BoolVar(&statFlags.digest, "digest", false, "Show SHA-256 content digests for files")
	rootCmd.AddCommand(statCmd)
}

func runStat(cmd *cobra.Command, args []string) error {
	tree, err := buildTree(cmd)
	if err != nil {
		return err
	}
	n, err := tree.Node(args[0])
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	out := cmd.OutOrStdout()

	kind := n.Kind(ctx)
	fmt.Fprintf(out, "path:     %s\n", n.Path())
	fmt.Fprintf(out, "name:     %s\n", n.Name())
	fmt.Fprintf(out, "kind:     %s\n", kind)
	if kind == fnode.KindFile {
		fmt.Fprintf(out, "size:     %d\n", n.Size(ctx))
	}
	if info := n.Stat(ctx); info != nil {
		fmt.Fprintf(out, "modified: %s\n", info.ModTime().Format(time.RFC3339))
	}
	if parent, err := n.Parent(); err == nil {
		fmt.Fprintf(out, "parent:   %s\n", parent.Path())
	} else if !errors.Is(err, fnode.ErrNoParent) {
		return err
	}

	if statFlags.digest && kind == fnode.KindFile {
		data, err := n.Read(ctx)
		if err != nil {
			return err
		}
		calc := checksum.New()
		fmt.Fprintf(out, "sha256:   %s\n", calc.CalculateRaw(data))
		fmt.Fprintf(out, "sha256n:  %s\n", calc.CalculateNormalized(data))
	}
	return nil
}
