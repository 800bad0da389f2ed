package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/bestnotes/internal/auth"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate EMAIL PASSWORD",
		Short: "Check an email and password against the login rules",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := auth.Validate(args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
