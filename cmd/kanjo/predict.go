package main

import (
	"fmt"
	"strings"

	"github.com/kanjoflow/kanjo/internal/cli"
	"github.com/kanjoflow/kanjo/internal/confirm"
	"github.com/kanjoflow/kanjo/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func predictCmd() *cobra.Command {
	var notes string
	var interactive bool

	cmd := &cobra.Command{
		Use:   "predict <ocr.json>",
		Short: "Predict the account category for one receipt",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, store, cleanup, err := buildEngine()
			if err != nil {
				return err
			}
			defer cleanup()

			ocr, err := loadOCRResult(args[0])
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			companyID := viper.GetString("company")
			pred := engine.PredictWithConfirmation(ctx, companyID, ocr, notes)

			fmt.Fprintln(cmd.OutOrStdout(), cli.RenderBox("勘定科目の予測", formatPrediction(ocr, pred)))

			if pred.NeedsConfirmation && interactive {
				prompter := cli.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())
				answers, err := prompter.AskQuestions(ctx, pred.Questions)
				if err != nil {
					return fmt.Errorf("confirmation aborted: %w", err)
				}

				confirm.Apply(pred, confirm.ResolveAnswers(answers))
				fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(
					fmt.Sprintf("✓ 「%s」として確定しました", pred.Category)))

				if store != nil && companyID != "" && ocr.Vendor != "" && pred.Category != model.CategoryUnclassified {
					if err := store.RecordClassification(ctx, companyID, ocr.Vendor, pred.Category); err != nil {
						return fmt.Errorf("failed to record classification: %w", err)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&notes, "notes", "", "journal-entry description to check for vague wording")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "answer confirmation questions interactively")

	return cmd
}

func formatPrediction(ocr *model.OCRResult, pred *model.Prediction) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "支払先:   %s\n", ocr.Vendor)
	fmt.Fprintf(&sb, "金額:     ¥%d\n", ocr.Amount)
	fmt.Fprintf(&sb, "科目:     %s\n", cli.SuccessStyle.Render(pred.DisplayCategory()))
	fmt.Fprintf(&sb, "確信度:   %s\n", formatConfidence(pred.Confidence))
	fmt.Fprintf(&sb, "根拠:     %s\n", pred.Reasoning)

	if pred.TaxNotes != "" {
		fmt.Fprintf(&sb, "税務メモ: %s\n", cli.WarningStyle.Render(pred.TaxNotes))
	}

	if len(pred.Alternatives) > 0 {
		sb.WriteString("候補:     ")
		for i, alt := range pred.Alternatives {
			if i > 0 {
				sb.WriteString(" / ")
			}
			fmt.Fprintf(&sb, "%s (%s)", alt.Category, formatConfidence(alt.Confidence))
		}
		sb.WriteString("\n")
	}

	if pred.NeedsConfirmation {
		sb.WriteString("\n")
		sb.WriteString(cli.WarningStyle.Render("⚠️ 以下の理由により確認が必要です"))
		sb.WriteString("\n")
		for _, reason := range pred.Reasons {
			fmt.Fprintf(&sb, "  ・%s\n", reason)
		}
	}

	return strings.TrimRight(sb.String(), "\n")
}
