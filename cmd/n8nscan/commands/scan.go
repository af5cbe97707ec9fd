package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jcconnects/n8nscan/internal/analyzer"
	"github.com/jcconnects/n8nscan/internal/config"
	"github.com/jcconnects/n8nscan/internal/executor"
	"github.com/jcconnects/n8nscan/internal/report"
	"github.com/jcconnects/n8nscan/internal/rules"
	"github.com/jcconnects/n8nscan/internal/types"
)

var (
	flagBatch  string
	flagReport string
	flagGlob   string
)

var scanCmd = &cobra.Command{
	Use:   "scan [workflow.json]",
	Short: "Analyze one workflow file or a directory of workflows",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runScan,
}

func init() {
	scanCmd.Flags().StringVar(&flagBatch, "batch", "", "Analyze all workflows in a directory")
	scanCmd.Flags().StringVar(&flagReport, "report", "", "Report output path (default: auto-generated in output dir)")
	scanCmd.Flags().StringVar(&flagGlob, "glob", "*.json", "File pattern for --batch discovery")
	rootCmd.AddCommand(scanCmd)
}

func runScan(cmd *cobra.Command, args []string) error {
	if len(args) == 0 && flagBatch == "" {
		return fmt.Errorf("either a workflow file or --batch directory must be specified")
	}
	if len(args) > 0 && flagBatch != "" {
		return fmt.Errorf("cannot specify both a workflow file and --batch")
	}

	target := flagBatch
	if len(args) > 0 {
		target = args[0]
	}
	applyFileConfig(cmd, target)

	logger := newLogger()

	ctx, cancel := contextWithInterrupt()
	defer cancel()

	a, err := buildAnalyzer(logger)
	if err != nil {
		return err
	}

	var records []types.AnalysisRecord
	if flagBatch != "" {
		records = a.AnalyzeBatch(ctx, flagBatch)
	} else {
		if rec := a.Analyze(ctx, args[0]); rec != nil {
			records = append(records, *rec)
		}
	}

	if len(records) == 0 {
		logger.Error().Msg("no successful analyses to report")
		os.Exit(1)
	}

	if err := writeReports(records); err != nil {
		return err
	}

	return (&report.TerminalFormatter{}).Format(os.Stdout, records)
}

// applyFileConfig merges .n8nscan.yml settings into flags that were not
// explicitly set on the command line.
func applyFileConfig(cmd *cobra.Command, target string) {
	cfg, err := config.Load(target)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v\n", err)
	}
	if !cmd.Flags().Changed("output") && cfg.Output != "" {
		flagOutput = cfg.Output
	}
	if !cmd.Flags().Changed("rules") && cfg.Rules != "" {
		flagRules = cfg.Rules
	}
	if !cmd.Flags().Changed("format") && cfg.Format != "" {
		flagFormat = cfg.Format
	}
	if !cmd.Flags().Changed("glob") && cfg.Glob != "" {
		flagGlob = cfg.Glob
	}
	if !cmd.Flags().Changed("timeout") && cfg.TimeoutSeconds > 0 {
		flagTimeout = cfg.TimeoutSeconds
	}
}

func buildAnalyzer(logger zerolog.Logger) (*analyzer.Analyzer, error) {
	timeout := time.Duration(flagTimeout) * time.Second

	radar, err := executor.NewRadarRunner(flagOutput, logger)
	if err != nil {
		return nil, err
	}
	radar.Timeout = timeout

	semgrep := executor.NewSemgrepRunner(flagRules, logger)
	semgrep.Timeout = timeout

	if n := rules.Count(flagRules); n > 0 {
		logger.Info().Int("rules", n).Str("file", flagRules).Msg("semgrep ruleset loaded")
	}

	a := analyzer.New(radar, semgrep, logger)
	a.SetGlob(flagGlob)
	return a, nil
}

func contextWithInterrupt() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		cancel()
	}()
	return ctx, cancel
}

func writeReports(records []types.AnalysisRecord) error {
	format := strings.ToLower(flagFormat)
	switch format {
	case "json", "markdown", "md", "sarif", "both":
	default:
		return fmt.Errorf("unknown format: %s", flagFormat)
	}

	stamp := time.Now().Format("20060102_150405")

	write := func(formatter report.Formatter, path string) error {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("creating report file: %w", err)
		}
		defer func() { _ = f.Close() }()
		if err := formatter.Format(f, records); err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
		fmt.Printf("Report saved to: %s\n", path)
		return nil
	}

	// --report only overrides the path for a single-format run; "both"
	// always auto-generates so the two files cannot collide.
	if format == "json" || format == "both" {
		path := flagReport
		if path == "" || format == "both" {
			path = filepath.Join(flagOutput, "report_"+stamp+".json")
		}
		if err := write(&report.JSONFormatter{}, path); err != nil {
			return err
		}
	}
	if format == "markdown" || format == "md" || format == "both" {
		path := flagReport
		if path == "" || format == "both" {
			path = filepath.Join(flagOutput, "report_"+stamp+".md")
		}
		if err := write(&report.MarkdownFormatter{}, path); err != nil {
			return err
		}
	}
	if format == "sarif" {
		path := flagReport
		if path == "" {
			path = filepath.Join(flagOutput, "report_"+stamp+".sarif")
		}
		report.ToolVersion = Version
		if err := write(&report.SARIFFormatter{}, path); err != nil {
			return err
		}
	}
	return nil
}
