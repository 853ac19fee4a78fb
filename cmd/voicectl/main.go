// Command voicectl drives the voice ordering engine from a terminal.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"voice-ordering/config"
	"voice-ordering/internal/app"
	"voice-ordering/pkg/log"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:           "voicectl",
	Short:         "Talk to the voice ordering engine without the HTTP server",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print engine logs to stdout")
	rootCmd.AddCommand(newChatCmd())
	rootCmd.AddCommand(newPromptCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "voicectl: %v\n", err)
		os.Exit(1)
	}
}

// build loads configuration and wires the engine. The caller must Close the app.
func build(ctx context.Context) (*app.App, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logger := log.NewNop()
	if verbose {
		logger = log.Init(log.ZapConfig{
			Level:        cfg.Logger.Level,
			Mode:         cfg.Logger.Mode,
			Encoding:     cfg.Logger.Encoding,
			ColorEnabled: cfg.Logger.ColorEnabled,
		})
	}

	return app.Build(ctx, cfg, logger)
}
