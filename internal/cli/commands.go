package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/xab-mack/inklint/internal/config"
	"github.com/xab-mack/inklint/internal/engine"
	"github.com/xab-mack/inklint/internal/model"
	"github.com/xab-mack/inklint/internal/report"
	"github.com/xab-mack/inklint/internal/tui"
)

func AddCommands(root *cobra.Command) {
	root.AddCommand(newLintCmd())
	root.AddCommand(newInitCmd())
	root.AddCommand(newRulesCmd())
}

func newLintCmd() *cobra.Command {
	var (
		path          string
		format        string
		budgetMs      int
		failOn        string
		outputFile    string
		sarifOut      string
		useTUI        bool
		baselinePath  string
		writeBaseline string
	)
	cmd := &cobra.Command{
		Use:   "lint [path]",
		Short: "Lint expanded contract module dumps under a path",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				path = args[0]
			}
			if path == "" {
				path = "."
			}
			if budgetMs <= 0 {
				cfg, _, _ := config.Load(path)
				budgetMs = cfg.TimeBudgetMs
			}
			if budgetMs <= 0 {
				budgetMs = 4500
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(budgetMs)*time.Millisecond)
			defer cancel()

			eng := engine.New()
			result, err := eng.Lint(ctx, model.LintRequest{Path: path, TimeBudget: time.Duration(budgetMs) * time.Millisecond})
			if err != nil {
				return err
			}
			if baselinePath != "" {
				result.Findings, err = engine.FilterByBaseline(result.Findings, baselinePath)
				if err != nil {
					return err
				}
			}

			if useTUI {
				// TUI mode ignores format flags
				return tui.Run(result.Findings)
			}
			switch format {
			case "json":
				data, _ := json.MarshalIndent(result, "", "  ")
				if outputFile != "" {
					return os.WriteFile(outputFile, data, 0o644)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			case "sarif":
				data, _ := report.ToSARIF(result.Findings)
				if sarifOut != "" {
					return os.WriteFile(sarifOut, data, 0o644)
				}
				fmt.Fprintln(cmd.OutOrStdout(), string(data))
			default:
				fmt.Fprintf(cmd.OutOrStdout(), "Findings: %d in %d module(s) (elapsed %s)\n", len(result.Findings), result.Units, result.Elapsed)
				for _, f := range result.Findings {
					fmt.Fprintf(cmd.OutOrStdout(), "- %s [%s] %s:%d-%d %s (conf=%.2f)\n", f.RuleID, f.Severity, f.File, f.StartLine, f.EndLine, f.Message, f.Confidence)
				}
			}

			if writeBaseline != "" {
				if err := engine.WriteBaseline(writeBaseline, result.Findings); err != nil {
					return err
				}
			}
			if failOn != "" {
				threshold := model.ParseSeverity(failOn)
				for _, f := range result.Findings {
					if model.SeverityGTE(f.Severity, threshold) {
						return fmt.Errorf("fail-on threshold met: %s", f.Severity)
					}
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "table", "Output format: table|json|sarif")
	cmd.Flags().IntVar(&budgetMs, "budget-ms", 0, "Time budget for the lint run in milliseconds (0 = config value)")
	cmd.Flags().StringVar(&failOn, "fail-on", "", "Fail if a finding of severity or higher is found (low|medium|high|critical)")
	cmd.Flags().StringVarP(&outputFile, "out", "o", "", "Write report to file (with --format json)")
	cmd.Flags().StringVar(&sarifOut, "sarif-out", "", "Write SARIF report to file (with --format sarif)")
	cmd.Flags().BoolVar(&useTUI, "tui", false, "Render interactive TUI output")
	cmd.Flags().StringVar(&baselinePath, "baseline", "", "Suppress findings whose fingerprint is listed in this baseline file")
	cmd.Flags().StringVar(&writeBaseline, "write-baseline", "", "Write a baseline file with finding fingerprints")
	return cmd
}
