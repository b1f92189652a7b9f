package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/ThatOtherAndrew/sigil/internal/config"
	"github.com/ThatOtherAndrew/sigil/internal/models"
	"github.com/spf13/cobra"
)

var (
	recognizeAll  bool
	recognizeJSON bool
)

var recognizeCmd = &cobra.Command{
	Use:   "recognize [stroke files...]",
	Short: "Recognize strokes read from files, or one stroke from stdin",
	Long: `Recognize strokes read from files, or one stroke piped into stdin.

Matching follows drawing direction. The built-in circle runs
counter-clockwise and the square and triangle run clockwise, all with y
pointing up. Strokes in screen coordinates (y down) or drawn the other
way round score low; learn a sample drawn that way to accept it too.`,
	RunE: recognizeStrokes,
}

func init() {
	rootCmd.AddCommand(recognizeCmd)
	recognizeCmd.Flags().BoolVarP(&recognizeAll, "all", "a", false, "show the score of every template")
	recognizeCmd.Flags().BoolVar(&recognizeJSON, "json", false, "print results as JSON")
	addFormatFlag(recognizeCmd)
}

type recognition struct {
	File string `json:"file,omitempty"`
	models.Result
	Ranking []models.Result `json:"ranking,omitempty"`
}

func recognizeStrokes(cmd *cobra.Command, args []string) error {
	settings, err := config.LoadSettings()
	if err != nil {
		return fmt.Errorf("failed to load settings: %w", err)
	}

	rec, _, err := loadRecognizer()
	if err != nil {
		return fmt.Errorf("failed to load gestures: %w", err)
	}

	strokes, err := readStrokes(cmd, args, settings.MinSpacing)
	if err != nil {
		return err
	}

	showAll := recognizeAll || settings.ShowAll
	out := make([]recognition, len(strokes))
	if showAll {
		for i, s := range strokes {
			ranking := rec.Rank(s)
			out[i] = recognition{Result: ranking[0], Ranking: ranking}
		}
	} else {
		results, err := rec.RecognizeAll(cmd.Context(), strokes, settings.Workers)
		if err != nil {
			return err
		}
		for i, r := range results {
			out[i] = recognition{Result: r}
		}
	}
	for i := range out {
		if i < len(args) {
			out[i].File = args[i]
		}
	}

	w := cmd.OutOrStdout()
	if recognizeJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, r := range out {
		prefix := ""
		if len(out) > 1 {
			prefix = r.File + ": "
		}
		fmt.Fprintf(w, "%s%s\n", prefix, r.Result)
		if len(r.Ranking) > 1 {
			for _, other := range r.Ranking[1:] {
				fmt.Fprintf(w, "  %s\n", other)
			}
		}
	}
	return nil
}
