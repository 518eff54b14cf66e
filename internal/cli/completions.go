package cli

import (
	"strings"

	"github.com/spf13/cobra"
)

// modeNames contains valid error-handling modes for shell completion.
var modeNames = []string{"normal", "strict", "forgiving"}

// completeModes provides shell completion for --mode flag values.
func completeModes(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
	var matches []string
	for _, mode := range modeNames {
		if strings.HasPrefix(mode, toComplete) {
			matches = append(matches, mode)
		}
	}
	return matches, cobra.ShellCompDirectiveNoFileComp
}

func init() {
	_ = rootCmd.RegisterFlagCompletionFunc("mode", completeModes)
}
