package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ccollicutt/logdelta/pkg/config"
	"github.com/ccollicutt/logdelta/pkg/parser"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <profile>",
		Short: "Validate a measurement profile",
		Long: `Validate a logdelta measurement profile without scanning.

Checks:
  - YAML syntax
  - Exactly one of from/from_last and one of to/to_last
  - Regex pattern validity (when regex is enabled)
  - Output format and webhook settings
  - Log file existence (warning only)`,
		Args: cobra.ExactArgs(1),
		RunE: runValidate,
	}
}

func runValidate(cmd *cobra.Command, args []string) error {
	profilePath := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Validating %s...\n", profilePath)

	cfg, err := config.Load(ctx, profilePath)
	if err != nil {
		return &ConfigError{Err: fmt.Errorf("validation failed: %w", err)}
	}

	mode := "substring"
	if cfg.Regex {
		mode = "regex"
	}

	from, to := cfg.FromSpec(), cfg.ToSpec()
	fmt.Fprintf(out, "\nProfile valid!\n")
	fmt.Fprintf(out, "  From:     %q (%s match)\n", from.Pattern, from.Mode)
	fmt.Fprintf(out, "  To:       %q (%s match)\n", to.Pattern, to.Mode)
	fmt.Fprintf(out, "  Matching: %s\n", mode)
	fmt.Fprintf(out, "  Output:   %s\n", cfg.Output)
	fmt.Fprintf(out, "  Webhooks: %d\n", len(cfg.Webhooks))

	switch {
	case cfg.File == "":
		fmt.Fprintf(out, "\nWarning: No log file set; pass one to measure\n")
	default:
		if err := parser.CheckFile(cfg.File); err != nil {
			fmt.Fprintf(out, "\nWarning: %v\n", err)
		} else {
			fmt.Fprintf(out, "\nLog file: %s\n", cfg.File)
		}
	}

	return nil
}
