package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcconnects/n8nscan/internal/rules"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "List the semgrep rules the scan will run",
	RunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := rules.Load(flagRules)
		if err != nil {
			return err
		}
		if len(loaded) == 0 {
			fmt.Println("No rules found.")
			return nil
		}
		for _, r := range loaded {
			fmt.Printf("%-40s %-8s %s\n", r.ID, r.Severity, firstLine(r.Message))
		}
		fmt.Printf("\n%d rules loaded from %s\n", len(loaded), flagRules)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(rulesCmd)
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}
