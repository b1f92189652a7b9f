package cmd

import (
	"fmt"
	"log"

	gestures "github.com/ThatOtherAndrew/sigil/internal/gesture"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:   "remove [label]",
	Short: "Remove a learned shape or binding by label",
	Run:   removeGesture,
}

func init() {
	rootCmd.AddCommand(removeCmd)
}

func removeGesture(cmd *cobra.Command, args []string) {
	if len(args) <= 0 {
		log.Fatalf("Please specify a gesture")
	}

	if err := gestures.RemoveGesture(args[0]); err != nil {
		log.Fatal("Failed to remove gesture: ", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Removed gesture:", args[0])
}
