package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"careline/eval"
	"careline/router"
)

var (
	flagCasesDir string
	flagReport   string
)

var evalCmd = &cobra.Command{
	Use:   "eval",
	Short: "Evaluate router accuracy over labeled query sets",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		r, err := router.New(cmd.Context(), cfg)
		if err != nil {
			return err
		}

		runner := &eval.Runner{Router: r}
		results, err := runner.RunDir(cmd.Context(), flagCasesDir)
		if err != nil {
			return err
		}

		report := eval.FormatReport(routerMode(cfg), results)
		if flagReport != "" {
			if err := os.WriteFile(flagReport, []byte(report), 0o644); err != nil {
				return fmt.Errorf("write report: %w", err)
			}
			fmt.Printf("Report written to %s\n", flagReport)
			return nil
		}
		fmt.Print(report)
		return nil
	},
}

func init() {
	evalCmd.Flags().StringVar(&flagCasesDir, "cases", "data/tests", "directory containing labeled query sets")
	evalCmd.Flags().StringVarP(&flagReport, "output", "o", "", "write the report to a file instead of stdout")
}
