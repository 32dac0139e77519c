package main

import (
	"fmt"
	"path/filepath"

	"github.com/kanjoflow/kanjo/internal/cli"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch <dir>",
		Short: "Predict account categories for every OCR JSON file in a directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, _, cleanup, err := buildEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			files, err := collectOCRFiles(args[0])
			if err != nil {
				return err
			}
			if len(files) == 0 {
				return fmt.Errorf("no OCR JSON files in %s", args[0])
			}

			ctx := cmd.Context()
			companyID := viper.GetString("company")
			bar := cli.NewProgressBar(len(files), "classifying receipts")

			needsConfirmation := 0
			for _, file := range files {
				ocr, err := loadOCRResult(file)
				if err != nil {
					return err
				}

				pred := engine.PredictWithConfirmation(ctx, companyID, ocr, "")
				_ = bar.Add(1)

				marker := cli.SuccessStyle.Render("✓")
				if pred.NeedsConfirmation {
					marker = cli.WarningStyle.Render("?")
					needsConfirmation++
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %-30s %s (%s)\n",
					marker, filepath.Base(file), pred.DisplayCategory(), formatConfidence(pred.Confidence))
			}

			fmt.Fprintf(cmd.OutOrStdout(), "\n%d件を分類、うち%d件は確認が必要です\n", len(files), needsConfirmation)
			return nil
		},
	}
}
