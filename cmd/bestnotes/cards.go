package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/bestnotes/internal/onboarding"
)

func newCardsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cards",
		Short: "Print the onboarding cards",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cards, err := onboarding.Load()
			if err != nil {
				return err
			}
			for i, c := range cards {
				fmt.Fprintf(cmd.OutOrStdout(), "%d. %s %s\n   %s\n", i+1, c.Emoji, c.Title, c.Subtitle)
			}
			return nil
		},
	}
}
