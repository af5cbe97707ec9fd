package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/jcconnects/n8nscan/internal/executor"
)

var (
	flagOutput  string
	flagRules   string
	flagFormat  string
	flagTimeout int
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "n8nscan",
	Short: "Hybrid security analyzer for n8n workflows",
	Long: `n8nscan validates n8n workflow files and runs two external security
scanners against them: agentic-radar for AI-specific vulnerabilities and
semgrep with custom rules for traditional issues. Findings from both are
merged into unified JSON, Markdown, or SARIF reports.`,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagOutput, "output", "o", executor.DefaultOutputDir, "Output directory for analysis results and reports")
	rootCmd.PersistentFlags().StringVar(&flagRules, "rules", executor.DefaultRulesPath, "Path to semgrep rules file")
	rootCmd.PersistentFlags().StringVar(&flagFormat, "format", "markdown", "Report format (json, markdown, sarif, both)")
	rootCmd.PersistentFlags().IntVar(&flagTimeout, "timeout", 60, "Per-tool timeout in seconds")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func newLogger() zerolog.Logger {
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
