package main

import (
	"fmt"
	"os"
	"time"

	"github.com/kanjoflow/kanjo/internal/cli"
	"github.com/kanjoflow/kanjo/internal/journal"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func exportCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export <dir>",
		Short: "Classify a directory of receipts and write journal-entry CSV",
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
			bar := cli.NewProgressBar(len(files), "exporting journal entries")

			entries := make([]journal.Entry, 0, len(files))
			for _, file := range files {
				ocr, err := loadOCRResult(file)
				if err != nil {
					return err
				}
				pred := engine.PredictWithConfirmation(ctx, companyID, ocr, "")
				entries = append(entries, journal.NewEntry(ocr, pred))
				_ = bar.Add(1)
			}

			if output == "" {
				output = journal.Filename(time.Now())
			}

			f, err := os.Create(output) // #nosec G304 -- user-supplied output path
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer func() { _ = f.Close() }()

			if err := journal.Write(f, entries); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(
				fmt.Sprintf("✓ %d件の仕訳を %s に出力しました", len(entries), output)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output CSV path")

	return cmd
}
