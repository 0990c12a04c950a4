package main

import (
	"github.com/google/uuid"
	"github.com/latestcomment/mind-mirror/internal/handlers"
	"github.com/latestcomment/mind-mirror/internal/models"
	"github.com/latestcomment/mind-mirror/internal/services"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the questionnaire and report pages",
		RunE: func(cmd *cobra.Command, args []string) error {
			analyzer := newAnalyzer()
			manager := &models.FreeWriteManager{Sessions: make(map[uuid.UUID]*models.FreeWriteSession)}
			freeWrite := services.NewFreeWriteService(manager, cfg.FreeWriteDuration, services.NewVaderScorer(), logger)

			h := handlers.NewHandler(analyzer, logger)
			ws := handlers.NewWebSocketHandler(freeWrite)
			app := handlers.NewApp(h, ws)

			logger.Info("🚀 Fiber server running", zap.String("port", cfg.Port))
			return app.Listen(":" + cfg.Port)
		},
	}
}
