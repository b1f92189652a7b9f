package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/ThatOtherAndrew/sigil/internal/config"
)

var configDir string

var rootCmd = &cobra.Command{
	Use:           "sigil",
	Short:         "Recognize hand-drawn shapes and run the commands bound to them",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if configDir != "" {
			config.SetDir(configDir)
		}
	},
}

func init() {
	log.SetFlags(0)
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding settings.json and gestures.json")
}

func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		log.Printf("Error: %v", err)
		stop()
		os.Exit(1)
	}
}
