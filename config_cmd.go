package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/dgnsrekt/hooksay/tts"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the merged configuration",
	Long: paragraph(
		fmt.Sprintf("\n%s the configuration hooksay resolved from defaults, the config file, and the environment.", keyword("Inspect")),
	),
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return configShowCmd.RunE(cmd, nil)
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the merged configuration as JSON",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := tts.LoadConfig()

		merged := struct {
			TTS      tts.Config `json:"tts"`
			Engineer struct {
				Name string `json:"name"`
			} `json:"engineer"`
		}{TTS: cfg}
		merged.Engineer.Name = viper.GetString("engineer.name")

		out, err := json.MarshalIndent(merged, "", "  ")
		if err != nil {
			return fmt.Errorf("unable to encode configuration: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	},
}

var configTTSCmd = &cobra.Command{
	Use:   "tts",
	Short: "Print a short TTS configuration summary",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg := tts.LoadConfig()
		w := cmd.OutOrStdout()
		fmt.Fprintf(w, "TTS enabled: %v\n", cfg.Enabled)
		fmt.Fprintf(w, "TTS provider: %s\n", cfg.Provider)
		fmt.Fprintf(w, "macOS voice: %s (rate %d, quality %d)\n",
			cfg.Voices.MacOS.Voice, cfg.Voices.MacOS.Rate, cfg.Voices.MacOS.Quality)
		fmt.Fprintf(w, "ElevenLabs voice: %s (model %s)\n",
			cfg.Voices.ElevenLabs.VoiceID, cfg.Voices.ElevenLabs.Model)
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configTTSCmd)
}
