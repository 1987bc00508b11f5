// Package main provides the entry point for the hooksay CLI.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dgnsrekt/hooksay/internal/audio"
	"github.com/dgnsrekt/hooksay/tts"
	"github.com/dgnsrekt/hooksay/tts/engines"
)

var (
	// Version as provided by goreleaser.
	Version = ""
	// CommitSHA as provided by goreleaser.
	CommitSHA = ""

	debug bool

	keyword = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}).
		Render
	paragraph = lipgloss.NewStyle().
			Width(78).
			Padding(0, 0, 0, 2).
			Render

	rootCmd = &cobra.Command{
		Use:   "hooksay [text...]",
		Short: "Speak assistant output out loud",
		Long: paragraph(
			fmt.Sprintf("\nTurn markdown-flavored assistant output into %s, via native macOS voices or ElevenLabs.", keyword("speech")),
		),
		SilenceErrors:    false,
		SilenceUsage:     true,
		Args:             cobra.MinimumNArgs(1),
		PersistentPreRun: func(*cobra.Command, []string) { setupLog() },
		RunE:             executeSpeak,
	}
)

// setupLog sends diagnostics to stderr so stdout stays clean for content a
// downstream consumer might read.
func setupLog() {
	log.SetOutput(os.Stderr)
	if debug || strings.EqualFold(os.Getenv("HOOKSAY_DEBUG"), "true") {
		log.SetLevel(log.DebugLevel)
	}
}

// newDispatcher wires the configured backends together.
func newDispatcher(cfg tts.Config) *tts.Dispatcher {
	creds := tts.LoadCredentials()
	local := engines.NewMacOS(cfg.Voices.MacOS, cfg.Timeout)
	cloud := engines.NewElevenLabs(creds.ElevenLabsAPIKey, cfg.Voices.ElevenLabs, audio.NewPlayer())
	return tts.NewDispatcher(cfg, creds, local, cloud)
}

// executeSpeak normalizes and synthesizes the joined arguments. The exit
// code is the only caller-facing signal; diagnostics go to stderr.
func executeSpeak(cmd *cobra.Command, args []string) error {
	cfg := tts.LoadConfig()
	if !cfg.Enabled {
		log.Debug("TTS is disabled, nothing to do")
		return nil
	}

	result := newDispatcher(cfg).Speak(cmd.Context(), strings.Join(args, " "))
	if !result.Success {
		return fmt.Errorf("synthesis failed: %s", result.Diagnostic)
	}
	return nil
}

func main() {
	// Credentials may live in a .env next to the caller; absence is fine.
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	if len(CommitSHA) >= 7 {
		vt := rootCmd.VersionTemplate()
		rootCmd.SetVersionTemplate(vt[:len(vt)-1] + " (" + CommitSHA[0:7] + ")\n")
	}
	if Version == "" {
		Version = "unknown (built from source)"
	}
	rootCmd.Version = Version
	rootCmd.InitDefaultCompletionCmd()

	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging to stderr")

	rootCmd.AddCommand(configCmd, voicesCmd, hookCmd)
}
