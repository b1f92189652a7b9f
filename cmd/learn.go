package cmd

import (
	"fmt"
	"log"

	"github.com/ThatOtherAndrew/sigil/internal/config"
	gestures "github.com/ThatOtherAndrew/sigil/internal/gesture"
	"github.com/ThatOtherAndrew/sigil/internal/recognizer"
	"github.com/spf13/cobra"
)

var learnCommand string

var learnCmd = &cobra.Command{
	Use:   "learn <label> <stroke files...>",
	Short: "Store sample strokes as templates for a new shape",
	Args:  cobra.MinimumNArgs(2),
	RunE:  learnGesture,
}

func init() {
	rootCmd.AddCommand(learnCmd)
	learnCmd.Flags().StringVarP(&learnCommand, "command", "c", "", "command to run when the shape is recognized")
}

func learnGesture(cmd *cobra.Command, args []string) error {
	label := args[0]
	if err := checkLabel(label); err != nil {
		return err
	}

	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	samples, err := readStrokes(cmd, args[1:], settings.MinSpacing)
	if err != nil {
		return err
	}
	for i, s := range samples {
		if len(s) < recognizer.MinPoints {
			return fmt.Errorf("%s: sample has %d points, need at least %d", args[i+1], len(s), recognizer.MinPoints)
		}
		log.Printf("Captured gesture %d/%d", i+1, len(samples))
	}

	if err := gestures.SaveGesture(label, learnCommand, samples); err != nil {
		return fmt.Errorf("failed to save gesture: %w", err)
	}
	log.Printf("Gesture saved: %s", label)
	return nil
}
