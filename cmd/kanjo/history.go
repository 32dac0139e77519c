package main

import (
	"fmt"

	"github.com/kanjoflow/kanjo/internal/cli"
	"github.com/kanjoflow/kanjo/internal/model"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func historyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "history",
		Short: "Inspect and edit per-company classification history",
	}
	cmd.AddCommand(historyListCmd())
	cmd.AddCommand(historyRecordCmd())
	return cmd
}

func historyListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List remembered vendor classifications for a company",
		RunE: func(cmd *cobra.Command, _ []string) error {
			companyID := viper.GetString("company")
			if companyID == "" {
				return fmt.Errorf("--company is required")
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			records, err := store.List(cmd.Context(), companyID)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), cli.SubtleStyle.Render("履歴はまだありません"))
				return nil
			}

			for _, r := range records {
				fmt.Fprintf(cmd.OutOrStdout(), "%-30s %-10s %s 使用%d回\n",
					r.Vendor, r.Category, formatConfidence(r.Confidence), r.UseCount)
			}
			return nil
		},
	}
}

func historyRecordCmd() *cobra.Command {
	var vendor, category string

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a confirmed vendor classification",
		RunE: func(cmd *cobra.Command, _ []string) error {
			companyID := viper.GetString("company")
			if companyID == "" {
				return fmt.Errorf("--company is required")
			}
			if !model.InVocabulary(category) {
				return fmt.Errorf("unknown category %q", category)
			}

			store, err := openStore()
			if err != nil {
				return err
			}
			defer func() { _ = store.Close() }()

			if err := store.RecordClassification(cmd.Context(), companyID, vendor, category); err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), cli.SuccessStyle.Render(
				fmt.Sprintf("✓ %s → %s を記録しました", vendor, category)))
			return nil
		},
	}

	cmd.Flags().StringVar(&vendor, "vendor", "", "vendor name")
	cmd.Flags().StringVar(&category, "category", "", "account category")
	_ = cmd.MarkFlagRequired("vendor")
	_ = cmd.MarkFlagRequired("category")

	return cmd
}
