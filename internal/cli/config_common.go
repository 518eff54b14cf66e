package cli

import (
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vvka-141/fnode/internal/config"
	"github.com/vvka-141/fnode/internal/logging"
	"github.com/vvka-141/fnode/pkg/fnode"
)

// buildTree assembles the tree every command operates on.
//
// Precedence, lowest to highest: built-in defaults, fnode.yaml in the working
// directory, FNODE_* environment variables (a .env file is loaded first when
// present), then command-line flags.
func buildTree(cmd *cobra.Command) (*fnode.Tree, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(".")
	if err != nil {
		if !errors.Is(err, config.ErrConfigNotFound) {
			return nil, fmt.Errorf("%v: %w", err, fnode.ErrInvalidConfig)
		}
		cfg = &config.Config{}
	}
	cfg.ApplyEnv()

	if v, _ := cmd.Flags().GetString("mode"); v != "" {
		cfg.Mode = v
	}
	if v, _ := cmd.Flags().GetString("max-age"); v != "" {
		cfg.MaxAge = v
	}

	opts, err := cfg.TreeOptions()
	if err != nil {
		return nil, err
	}
	opts = append(opts, fnode.WithLogger(logging.NewConsoleLogger(getVerboseFlag(cmd))))

	return fnode.New(opts...), nil
}
