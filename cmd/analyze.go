package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/latestcomment/mind-mirror/internal/models"
	"github.com/latestcomment/mind-mirror/internal/services"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	var (
		answersFile string
		asJSON      bool
	)

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Analyze a YAML answers file and print the report",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := services.LoadAnswerFile(answersFile)
			if err != nil {
				return err
			}
			analyzer := newAnalyzer()
			responses, err := f.ResponseMap(analyzer.Questions)
			if err != nil {
				return err
			}
			report, err := analyzer.AnalyzeSubmission(models.NewSubmission(responses, f.FreeWrite))
			if err != nil {
				return err
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}
			printReport(cmd.OutOrStdout(), report)
			return nil
		},
	}

	cmd.Flags().StringVarP(&answersFile, "file", "f", "", "answers file (YAML)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the report as JSON")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func newQuestionsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "questions",
		Short: "Print the questionnaire in answers-file order",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			i := 1
			for _, s := range models.DefaultQuestionSet().Sections {
				fmt.Fprintf(out, "## %s\n", s.Title)
				for _, p := range s.Prompts {
					fmt.Fprintf(out, "%2d. %s\n", i, p)
					i++
				}
			}
			fmt.Fprintf(out, "\nFree write: %s\n", models.FreeWritePrompt)
		},
	}
}

func printReport(w io.Writer, r *models.AnalysisReport) {
	fmt.Fprintln(w, "🩺 Mind Structure Report")
	fmt.Fprintf(w, "🧠 Compression Rate: %v\n", r.AverageCompression)
	fmt.Fprintf(w, "🪞 Shadow Structure: %s\n", r.ShadowType)
	fmt.Fprintf(w, "🧭 Metaphor Density: %s\n", r.MetaphorDensity)
	fmt.Fprintf(w, "🧬 Emotional Charge (Free Write): %s\n", r.Mood)
	fmt.Fprintln(w, "\n🧩 Observations:")
	for _, o := range r.Observations {
		fmt.Fprintf(w, "- %s\n", o)
	}
}
