package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dgnsrekt/hooksay/tts/engines"
)

var voicesCmd = &cobra.Command{
	Use:   "voices",
	Short: "List the installed macOS voices",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		voices, err := engines.ListVoices(cmd.Context())
		if err != nil {
			return err
		}
		for _, voice := range voices {
			fmt.Fprintln(cmd.OutOrStdout(), voice)
		}
		return nil
	},
}
