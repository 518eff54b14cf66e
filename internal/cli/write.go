package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/vvka-141/fnode/internal/tui"
	"github.com/vvka-141/fnode/internal/ui"
	"github.com/vvka-141/fnode/pkg/fnode"
)

var writeFlags struct {
	data      string
	dataSet   bool
	overwrite bool
}

func resetWriteFlags() {
	writeFlags.data = ""
	writeFlags.dataSet = false
	writeFlags.overwrite = false
}

var writeCmd = &cobra.Command{
	Use:   "write <path>",
	Short: "Write content to a file",
	Long: `Write content to the file at the given path, taking the content from
--data or from stdin. Without --overwrite an existing file is refused, or
confirmed interactively when a terminal is attached; writing onto a folder
is always refused.`,
	Args: RequirePath,
	RunE: runWrite,
}

func init() {
	writeCmd.Flags().StringVar(&writeFlags.data, "data", "", "Content to write (default: read stdin)")
	writeCmd.Flags().BoolVar(&writeFlags.overwrite, "overwrite", false, "Replace the file if it already exists")
	rootCmd.AddCommand(writeCmd)
}

func runWrite(cmd *cobra.Command, args []string) error {
	tree, err := buildTree(cmd)
	if err != nil {
		return err
	}
	n, err := tree.Node(args[0])
	if err != nil {
		return err
	}

	data, err := contentFromFlagOrStdin(cmd, writeFlags.data, writeFlags.dataSet)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if n.Kind(ctx) == fnode.KindFile {
		ok, aerr := overwriteApprover(cmd).RequestApproval(ctx, n.Name())
		if aerr != nil {
			return aerr
		}
		if !ok {
			return fmt.Errorf("file %s already exists: %w", n.Path(), fnode.ErrConflict)
		}
		if err := n.Write(ctx, data, true); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s\n", n.Path())
		return nil
	}

	if err := n.Write(ctx, data, writeFlags.overwrite); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", n.Path())
	return nil
}

// overwriteApprover picks how consent for replacing an existing file is
// obtained: the --overwrite flag is standing consent, a terminal gets an
// interactive prompt, and everything else is denied.
func overwriteApprover(cmd *cobra.Command) fnode.Approver {
	if writeFlags.overwrite {
		return ui.NewForcedApprover(getVerboseFlag(cmd))
	}
	if tui.IsInteractive() {
		return ui.NewInteractiveApprover()
	}
	return deniedApprover{}
}

// deniedApprover refuses without prompting; used in pipelines where nobody
// can answer.
type deniedApprover struct{}

func (deniedApprover) RequestApproval(ctx context.Context, name string) (bool, error) {
	return false, nil
}

// contentFromFlagOrStdin returns the flag value when the flag was set, and
// drains stdin otherwise.
func contentFromFlagOrStdin(cmd *cobra.Command, flagValue string, flagSet bool) ([]byte, error) {
	if flagSet || cmd.Flags().Changed("data") {
		return []byte(flagValue), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
