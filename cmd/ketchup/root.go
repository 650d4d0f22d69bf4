package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/smetj/ketchup/internal/config"
	"github.com/smetj/ketchup/internal/log"
	"github.com/smetj/ketchup/internal/pipeline"
	"github.com/smetj/ketchup/internal/report"
	"github.com/smetj/ketchup/internal/slack"
)

// defaultTimeout is the per-request HTTP timeout against the Slack API.
const defaultTimeout = 30 * time.Second

// NewRootCmd creates the root command for ketchup.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ketchup",
		Short: "Keep track of unhandled Slack questions",
		Long: `ketchup queries the Slack search API for unresolved questions across
channels, filters and deduplicates the matches, and renders them as a
table with clickable permalinks.

Searches are described in a YAML config file; each definition names a
search term, the channels to cover, how far back to look, authors to
ignore, and the emoji marker that tags a question as already handled.

Examples:
  # Run the searches from queries.yaml
  ketchup --token xoxp-... --config queries.yaml

  # Same, with credentials and config from the environment
  KETCHUP_TOKEN=xoxp-... KETCHUP_QUERY_FILE=queries.yaml ketchup

  # Dump raw matches to tune a field path expression
  ketchup -c queries.yaml --dump-responses

  # Write a Markdown report to a file
  ketchup -c queries.yaml --markdown -o report.md

Config file example:
  - name: urgent
    enable: true
    channels: [general, support]
    days_back: 7
    done_marker: ":heavy_check_mark:"
    field: text
    ignore_users: [helperbot]
    query: "?"
    regex_substring: null
    regex_filter: "\\?"`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runRootCmd,
	}

	cmd.Flags().String("token", "",
		"Slack user OAuth token, requires scope search:read (env KETCHUP_TOKEN)")
	cmd.Flags().StringP("config", "c", "",
		"Config file with the searches to run (env KETCHUP_QUERY_FILE; default: .ketchup.yaml in current or XDG config directory)")
	cmd.Flags().Bool("dump-responses", false,
		"Dump each raw Slack match as JSON before extraction (env KETCHUP_DUMP_RESPONSES)")
	cmd.Flags().BoolP("json", "j", false,
		"Output a JSON report (mutually exclusive with --markdown)")
	cmd.Flags().BoolP("markdown", "m", false,
		"Output a Markdown report (mutually exclusive with --json)")
	cmd.Flags().StringP("output", "o", "",
		"Write the report to the specified file instead of stdout")
	cmd.Flags().DurationP("timeout", "t", defaultTimeout,
		"HTTP timeout per Slack request")
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// options holds the resolved CLI options after flag and environment lookup.
type options struct {
	token      string
	configPath string
	dump       bool
	verbose    bool
	jsonOut    bool
	mdOut      bool
	outputPath string
	timeout    time.Duration
}

// parseOptions reads the flags, falling back to the KETCHUP_* environment
// variables where one exists.
func parseOptions(cmd *cobra.Command) (*options, error) {
	var opts options
	var err error

	if opts.token, err = cmd.Flags().GetString("token"); err != nil {
		return nil, err
	}
	if opts.token == "" {
		opts.token = os.Getenv("KETCHUP_TOKEN")
	}

	if opts.configPath, err = cmd.Flags().GetString("config"); err != nil {
		return nil, err
	}
	if opts.configPath == "" {
		opts.configPath = os.Getenv("KETCHUP_QUERY_FILE")
	}

	if opts.dump, err = cmd.Flags().GetBool("dump-responses"); err != nil {
		return nil, err
	}
	if !opts.dump {
		opts.dump = os.Getenv("KETCHUP_DUMP_RESPONSES") != ""
	}

	if opts.jsonOut, err = cmd.Flags().GetBool("json"); err != nil {
		return nil, err
	}
	if opts.mdOut, err = cmd.Flags().GetBool("markdown"); err != nil {
		return nil, err
	}
	if opts.outputPath, err = cmd.Flags().GetString("output"); err != nil {
		return nil, err
	}
	if opts.timeout, err = cmd.Flags().GetDuration("timeout"); err != nil {
		return nil, err
	}
	if opts.verbose, err = cmd.Flags().GetBool("verbose"); err != nil {
		return nil, err
	}

	return &opts, nil
}

// runRootCmd executes the catch-up run: load config, run the pipeline,
// render the report.
func runRootCmd(cmd *cobra.Command, _ []string) error {
	opts, err := parseOptions(cmd)
	if err != nil {
		return err
	}
	if opts.jsonOut && opts.mdOut {
		return errors.New("conflicting report formats: --json and --markdown cannot be used together")
	}
	if opts.token == "" {
		return errors.New("no Slack token provided (use --token or KETCHUP_TOKEN)")
	}

	logger := log.NewLogger(cmd.ErrOrStderr(), opts.verbose)
	slog.SetDefault(logger)

	path := config.FindConfigFile(opts.configPath)
	if path == "" {
		if opts.configPath != "" {
			return fmt.Errorf("%w: %s", config.ErrConfigNotFound, opts.configPath)
		}
		return fmt.Errorf("%w (use --config or KETCHUP_QUERY_FILE)", config.ErrConfigNotFound)
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	logger.Debug("configuration loaded",
		"path", path,
		"searches", len(cfg.Searches),
		"enabled", len(cfg.Enabled()),
	)

	client := slack.NewClient(opts.token, slack.WithTimeout(opts.timeout))

	pipelineOpts := []pipeline.Option{pipeline.WithLogger(logger)}
	if opts.dump {
		pipelineOpts = append(pipelineOpts, pipeline.WithDump(cmd.OutOrStdout()))
	}

	rows, err := pipeline.New(client, pipelineOpts...).Run(cmd.Context(), cfg.Searches)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	var closeOut func() error
	if opts.outputPath != "" {
		if dir := filepath.Dir(opts.outputPath); dir != "." {
			if err := os.MkdirAll(dir, 0o750); err != nil {
				return fmt.Errorf("create output directory: %w", err)
			}
		}
		f, err := os.Create(opts.outputPath) //nolint:gosec // User-provided output path is intentional
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		out = f
		closeOut = f.Close
	}

	if _, err := newReportWriter(out, opts, len(cfg.Enabled()) > 1).Write(rows); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if closeOut != nil {
		if err := closeOut(); err != nil {
			return fmt.Errorf("close output file: %w", err)
		}
	}
	return nil
}

// newReportWriter picks the report writer for the selected output format.
// The Type column appears only when more than one definition feeds the run.
func newReportWriter(out io.Writer, opts *options, typeColumn bool) report.Writer {
	switch {
	case opts.jsonOut:
		return report.NewJSONWriter(out, getVersion())
	case opts.mdOut:
		return report.NewMarkdownWriter(out, report.WithMarkdownTypeColumn(typeColumn))
	default:
		return report.NewTableWriter(out, report.WithTypeColumn(typeColumn))
	}
}
