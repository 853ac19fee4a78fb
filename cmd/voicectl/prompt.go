package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPromptCmd() *cobra.Command {
	var customer string

	cmd := &cobra.Command{
		Use:   "prompt",
		Short: "Print the system prompt a new session would be seeded with",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			a, err := build(ctx)
			if err != nil {
				return err
			}
			defer a.Close()

			prompt, err := a.VoiceOrder.SystemPrompt(ctx, customer)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), prompt)
			return err
		},
	}

	cmd.Flags().StringVar(&customer, "customer", "", "customer name to address")
	return cmd
}
