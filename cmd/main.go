package main

import (
	"fmt"
	"os"

	"github.com/latestcomment/mind-mirror/internal/config"
	"github.com/latestcomment/mind-mirror/internal/logging"
	"github.com/latestcomment/mind-mirror/internal/models"
	"github.com/latestcomment/mind-mirror/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfg    *config.Config
	logger *zap.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mirror",
		Short: "Cognitive Architecture Extractor",
		Long: `mirror collects answers to a fixed questionnaire plus a timed free-write
and reports compression, shadow structure, metaphor density and mood.

Run "mirror serve" for the web form or "mirror analyze" for an answers file.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = config.Load()
			if err != nil {
				return err
			}
			logger, err = logging.New(cfg)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}
	root.AddCommand(newServeCmd(), newAnalyzeCmd(), newQuestionsCmd())
	return root
}

func newAnalyzer() *services.AnalyzerService {
	return services.NewAnalyzerService(
		models.DefaultQuestionSet(),
		services.NewProseTokenizer(),
		services.NewVaderScorer(),
		logger,
	)
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
