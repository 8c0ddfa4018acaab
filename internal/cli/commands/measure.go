package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/phuslu/log"
	"github.com/spf13/cobra"

	"github.com/ccollicutt/logdelta/pkg/config"
	"github.com/ccollicutt/logdelta/pkg/output"
	"github.com/ccollicutt/logdelta/pkg/scanner"
	"github.com/ccollicutt/logdelta/pkg/webhook"
)

// MeasureOptions holds command-line options for the measure command.
type MeasureOptions struct {
	From     string
	FromLast string
	To       string
	ToLast   string

	Regex   bool
	Short   bool
	Verbose bool
	Output  string

	ConfigPath string

	// Webhook options
	WebhookURL   string
	WebhookToken string
}

// NewMeasureCommand creates the measure command.
func NewMeasureCommand() *cobra.Command {
	opts := &MeasureOptions{}

	cmd := &cobra.Command{
		Use:   "measure [file]",
		Short: "Measure the time between two log lines",
		Long: `Scan a trace log for a "from" line and a "to" line and print the
elapsed time between their timestamps as ±hh:mm:ss.

Timestamps use the layout YYYY-MM-DD HH:MM:SS. In substring mode the
timestamp is everything before the first '>' of the line; with --regex it
may appear anywhere in the line. Files are read as Windows-1252.

Each side takes exactly one of a first-match flag (--from, --to) or a
last-match flag (--from-last, --to-last). The "to" line is only looked for
after the "from" line has been found.

Exit codes:
  0 - Duration measured
  1 - A marker was not found or its timestamp could not be parsed
  2 - Configuration or runtime error`,
		Example: `  logdelta measure -f "Request received" -t "Response sent" trace.log
  logdelta measure -r -F 'login user=\w+' -t 'session \d+ open' -s trace.log
  logdelta measure -c profiles/checkout.yaml -o table`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMeasure(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.From, "from", "f", "", "Pattern of the start line (first match)")
	cmd.Flags().StringVarP(&opts.FromLast, "from-last", "F", "", "Pattern of the start line (last match)")
	cmd.Flags().StringVarP(&opts.To, "to", "t", "", "Pattern of the end line (first match)")
	cmd.Flags().StringVarP(&opts.ToLast, "to-last", "T", "", "Pattern of the end line (last match)")
	cmd.Flags().BoolVarP(&opts.Regex, "regex", "r", false, "Treat patterns as regular expressions")
	cmd.Flags().BoolVarP(&opts.Short, "short", "s", false, "Only print the duration")
	cmd.Flags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log matching lines to stderr")
	cmd.Flags().StringVarP(&opts.Output, "output", "o", config.DefaultOutput, "Output format (text|json|table)")
	cmd.Flags().StringVarP(&opts.ConfigPath, "config", "c", "", "Measurement profile (YAML)")

	cmd.MarkFlagsMutuallyExclusive("from", "from-last")
	cmd.MarkFlagsMutuallyExclusive("to", "to-last")

	// Webhook flags
	cmd.Flags().StringVar(&opts.WebhookURL, "webhook-url", "", "Webhook endpoint URL")
	cmd.Flags().StringVar(&opts.WebhookToken, "webhook-token", "", "Bearer token for webhook auth")

	return cmd
}

func runMeasure(cmd *cobra.Command, args []string, opts *MeasureOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, err := resolveConfig(ctx, cmd, args, opts)
	if err != nil {
		return err
	}

	if err := config.Validate(cfg); err != nil {
		return &ConfigError{Err: err}
	}

	if cfg.File == "" {
		return &ConfigError{Err: errors.New("no log file given (pass FILE or set file in the profile)")}
	}

	s, err := scanner.New(cfg.FromSpec(), cfg.ToSpec(),
		scanner.WithRegex(cfg.Regex),
		scanner.WithLogger(newLogger(opts.Verbose, cmd.ErrOrStderr())),
	)
	if err != nil {
		return &ConfigError{Err: err}
	}

	result, err := s.ScanFile(ctx, cfg.File)
	if err != nil {
		return err
	}

	report := output.NewReport(result, cfg.Regex)

	formatter, err := output.NewFormatter(cfg.Output, output.FormatOptions{Short: cfg.Short})
	if err != nil {
		return err
	}

	if err := formatter.Format(ctx, report, cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("formatting output: %w", err)
	}

	// Webhook failures are reported but never fail the measurement
	sendWebhooks(ctx, cmd.ErrOrStderr(), cfg, report)

	return nil
}

// resolveConfig layers the profile (if any), the environment and the
// command-line flags. Setting either flag of a side replaces that whole side.
func resolveConfig(ctx context.Context, cmd *cobra.Command, args []string, opts *MeasureOptions) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if opts.ConfigPath != "" {
		var err error
		if cfg, err = config.Read(ctx, opts.ConfigPath); err != nil {
			return nil, &ConfigError{Err: fmt.Errorf("loading profile: %w", err)}
		}
	} else if err := cfg.ApplyEnvironmentOverrides(); err != nil {
		return nil, &ConfigError{Err: err}
	}

	flags := cmd.Flags()
	if flags.Changed("from") || flags.Changed("from-last") {
		cfg.From, cfg.FromLast = opts.From, opts.FromLast
	}
	if flags.Changed("to") || flags.Changed("to-last") {
		cfg.To, cfg.ToLast = opts.To, opts.ToLast
	}
	if flags.Changed("regex") {
		cfg.Regex = opts.Regex
	}
	if flags.Changed("short") {
		cfg.Short = opts.Short
	}
	if flags.Changed("output") {
		cfg.Output = opts.Output
	}
	if len(args) == 1 {
		cfg.File = args[0]
	}

	if opts.WebhookToken != "" && opts.WebhookURL == "" {
		return nil, &ConfigError{Err: errors.New("--webhook-token requires --webhook-url")}
	}
	if opts.WebhookURL != "" {
		cfg.Webhooks = append(cfg.Webhooks, config.WebhookConfig{
			Name:  "cli",
			URL:   opts.WebhookURL,
			Token: opts.WebhookToken,
		})
	}

	return cfg, nil
}

// newLogger returns the diagnostics logger; matched lines are logged at
// info level, which is only enabled by --verbose.
func newLogger(verbose bool, w io.Writer) *log.Logger {
	level := log.WarnLevel
	if verbose {
		level = log.InfoLevel
	}

	return &log.Logger{
		Level: level,
		Writer: &log.ConsoleWriter{
			Writer:         w,
			EndWithMessage: true,
		},
	}
}

// sendWebhooks sends the report to every configured webhook.
// Results are written to w.
func sendWebhooks(ctx context.Context, w io.Writer, cfg *config.Config, report *output.Report) {
	targets := collectTargets(cfg)
	if len(targets) == 0 {
		return
	}

	for _, resp := range webhook.NewClient().Notify(ctx, report, targets) {
		name := resp.Target.DisplayName()
		if resp.Success() {
			_, _ = fmt.Fprintf(w, "Webhook %s: sent (%d, %s)\n", name, resp.StatusCode, resp.Duration)
		} else {
			_, _ = fmt.Fprintf(w, "Webhook %s: failed (%v)\n", name, resp.Error)
		}
	}
}

// collectTargets converts validated webhook configs to client targets.
func collectTargets(cfg *config.Config) []webhook.Target {
	targets := make([]webhook.Target, 0, len(cfg.Webhooks))
	for _, wh := range cfg.Webhooks {
		targets = append(targets, webhook.Target{
			Name:    wh.Name,
			URL:     wh.URL,
			Token:   wh.Token,
			Timeout: wh.Timeout,
		})
	}
	return targets
}
