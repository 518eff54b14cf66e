package cli

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var mktempFlags struct {
	prefix string
	suffix string
}

func resetMktempFlags() {
	mktempFlags.prefix = "tmp-"
	mktempFlags.suffix = ""
}

var mktempCmd = &cobra.Command{
	Use:   "mktemp [dir]",
	Short: "Create a uniquely named empty file",
	Long: `Create an empty file with a collision-free random name inside the
given folder (default: the working directory), creating the folder if
needed. The file's canonical path is printed to stdout.`,
	Args: OptionalPath,
	RunE: runMktemp,
}

func init() {
	mktempCmd.Flags().StringVar(&mktempFlags.prefix, "prefix", "tmp-", "File name prefix")
	mktempCmd.Flags().StringVar(&mktempFlags.suffix, "suffix", "", "File name suffix, e.g. .txt")
	rootCmd.AddCommand(mktempCmd)
}

func runMktemp(cmd *cobra.Command, args []string) error {
	tree, err := buildTree(cmd)
	if err != nil {
		return err
	}
	dir, err := tree.Node(pathOrDot(args))
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if err := dir.EnsureDir(ctx); err != nil {
		return err
	}

	name := mktempFlags.prefix + uuid.NewString() + mktempFlags.suffix
	file, err := dir.Child(name)
	if err != nil {
		return err
	}
	if err := file.Write(ctx, nil, false); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s\n", file.Path())
	return nil
}
