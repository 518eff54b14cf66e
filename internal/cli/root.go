package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const asciiLogo = `  __                 _
 / _|_ __   ___   __| | ___
| |_| '_ \ / _ \ / _` + "`" + ` |/ _ \
|  _| | | | (_) | (_| |  __/
|_| |_| |_|\___/ \__,_|\___|`

var rootCmd = &cobra.Command{
	Use:   "fnode",
	Short: "Cached filesystem inspection and editing",
	Long: asciiLogo + `

fnode resolves messy path arguments into canonical paths and works on the
entries behind them through a cache that absorbs repeated lookups and
transient filesystem hiccups.

Paths may be relative or absolute; repeated separators, backslashes and
trailing slashes are tolerated everywhere.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration or mode
  11 - Path argument could not be interpreted
  12 - Operation conflicts with the filesystem shape
  13 - Path has no representable parent`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo()
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Bool("help", false, "Help for fnode")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("mode", "", "Error-handling mode: strict, normal or forgiving")
	rootCmd.PersistentFlags().String("max-age", "", "Attribute cache freshness window, e.g. 500ms")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	fs := cmd.Flags()
	if fs.Lookup("verbose") == nil {
		// Persistent flags are only merged in during Execute; fall back to
		// the root's definition for direct invocations.
		fs = cmd.Root().PersistentFlags()
	}
	verbose, err := fs.GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}
