package cmd

import (
	"fmt"
	"log"

	"github.com/ThatOtherAndrew/sigil/internal/config"
	"github.com/ThatOtherAndrew/sigil/internal/execute"
	"github.com/spf13/cobra"
)

var dryRun bool

var runCmd = &cobra.Command{
	Use:   "run [stroke file]",
	Short: "Recognize a stroke and run the command bound to its shape",
	Args:  cobra.MaximumNArgs(1),
	RunE:  Run,
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().BoolVarP(&dryRun, "dry-run", "n", false, "print the matched command instead of running it")
	addFormatFlag(runCmd)
}

func Run(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	rec, saved, err := loadRecognizer()
	if err != nil {
		return fmt.Errorf("failed to load gestures: %w", err)
	}
	log.Printf("Loaded %d gesture(s)", len(saved))

	strokes, err := readStrokes(cmd, args, settings.MinSpacing)
	if err != nil {
		return err
	}

	result := rec.Recognize(strokes[0])
	if result.TooShort() {
		log.Println("Gesture too short, ignoring")
		return nil
	}

	start := execute.Command
	if dryRun {
		start = func(command string) error {
			fmt.Fprintln(cmd.OutOrStdout(), command)
			return nil
		}
	}

	command, err := execute.Dispatch(result, saved, settings.MinScore, start)
	if err != nil {
		return fmt.Errorf("failed to execute command: %w", err)
	}
	if command == "" {
		if result.Score >= settings.MinScore {
			log.Printf("No command bound to %s (score: %.3f)", result.Label, result.Score)
		} else {
			log.Printf("No confident match (best: %s, score: %.3f)", result.Label, result.Score)
		}
		return nil
	}
	log.Printf("Matched gesture: %s (score: %.3f)", result.Label, result.Score)
	if !dryRun {
		log.Printf("Executed: %s", command)
	}
	return nil
}
