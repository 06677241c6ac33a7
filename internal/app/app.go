// Package app builds the recruit service from configuration. The API server
// and the ats tool share it.
package app

import (
	"context"
	"fmt"

	"applicant-tracker/internal/config"
	"applicant-tracker/internal/cv"
	"applicant-tracker/internal/events"
	"applicant-tracker/internal/recruit"
	"applicant-tracker/internal/storage"

	"go.uber.org/zap"
)

type App struct {
	Service *recruit.Service
	closers []func() error
	logger  *zap.Logger
}

// New opens the configured store, runs migrations and connects the event
// publisher when an AMQP URL is set.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{logger: logger}

	var store recruit.Store
	switch cfg.Store {
	case config.StoreMemory:
		logger.Warn("using in-memory store, data is lost on exit")
		store = storage.NewMemoryStore()
	default:
		logger.Info("connecting to database")
		db, err := storage.NewDB(cfg.DatabaseURL, logger)
		if err != nil {
			return nil, fmt.Errorf("db open: %w", err)
		}
		a.closers = append(a.closers, func() error { db.Close(); return nil })

		if err := db.Migrate(ctx); err != nil {
			a.Close()
			return nil, fmt.Errorf("migrating schema: %w", err)
		}
		logger.Info("database connected")
		store = db
	}

	var publisher events.Publisher = events.Nop{}
	if cfg.Events.AMQPURL != "" {
		p, err := events.NewAMQPPublisher(cfg.Events.AMQPURL, cfg.Events.Exchange)
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("connecting event publisher: %w", err)
		}
		a.closers = append(a.closers, p.Close)
		publisher = p
		logger.Info("publishing candidate events", zap.String("exchange", cfg.Events.Exchange))
	}

	a.Service = recruit.NewService(
		store,
		cv.NewTextExtractor(cfg.Extract.DocxEngine, logger),
		cv.NewSkillMatcher(cfg.Skills.Vocabulary, cfg.Skills.MatchMode),
		publisher,
		logger,
	)
	return a, nil
}

// Close releases resources in reverse order of acquisition.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			a.logger.Warn("closing resource", zap.Error(err))
		}
	}
	a.closers = nil
}
