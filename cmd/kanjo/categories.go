package main

import (
	"fmt"

	"github.com/kanjoflow/kanjo/internal/model"
	"github.com/spf13/cobra"
)

func categoriesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the account categories the engine can predict",
		Run: func(cmd *cobra.Command, _ []string) {
			for _, category := range model.Vocabulary() {
				fmt.Fprintln(cmd.OutOrStdout(), category)
			}
		},
	}
}
