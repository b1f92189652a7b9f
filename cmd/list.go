package cmd

import (
	"fmt"
	"log"

	"github.com/ThatOtherAndrew/sigil/internal/execute"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all templates and the commands bound to them",
	Run:   listGestures,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listGestures(cmd *cobra.Command, args []string) {
	rec, saved, err := loadRecognizer()
	if err != nil {
		log.Fatal("Failed to load gestures:", err)
	}

	samples := make(map[string]int)
	for _, t := range rec.Library().Templates() {
		samples[t.Label()]++
	}

	w := cmd.OutOrStdout()
	fmt.Fprintln(w, "Templates:")
	for _, label := range rec.Library().Labels() {
		line := fmt.Sprintf("   %s (%d)", label, samples[label])
		if command := execute.Lookup(label, saved); command != "" {
			line += " -> " + command
		}
		fmt.Fprintln(w, line)
	}
}
