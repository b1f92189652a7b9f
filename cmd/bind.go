package cmd

import (
	"fmt"
	"log"

	gestures "github.com/ThatOtherAndrew/sigil/internal/gesture"
	"github.com/spf13/cobra"
)

var bindCmd = &cobra.Command{
	Use:   "bind <label> <command>",
	Short: "Run a command whenever a shape is recognized",
	Args:  cobra.ExactArgs(2),
	RunE:  bindGesture,
}

func init() {
	rootCmd.AddCommand(bindCmd)
}

func bindGesture(cmd *cobra.Command, args []string) error {
	if err := checkLabel(args[0]); err != nil {
		return err
	}

	rec, _, err := loadRecognizer()
	if err != nil {
		return fmt.Errorf("failed to load gestures: %w", err)
	}

	known := false
	for _, label := range rec.Library().Labels() {
		if label == args[0] {
			known = true
			break
		}
	}
	if !known {
		log.Printf("Warning: no template is labelled %s yet", args[0])
	}

	if err := gestures.BindCommand(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to save binding: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Bound %s to: %s\n", args[0], args[1])
	return nil
}
