package main

import (
	"context"
	"fmt"

	"github.com/Veraticus/lumen/internal/common"
	"github.com/Veraticus/lumen/internal/config"
	"github.com/Veraticus/lumen/internal/mode"
	"github.com/Veraticus/lumen/internal/model"
	"github.com/Veraticus/lumen/internal/service"
	"github.com/Veraticus/lumen/internal/storage"
	"github.com/Veraticus/lumen/internal/tui/themes"
)

// initStorage opens the preference store the config points at.
func initStorage(ctx context.Context, cfg config.Config) (service.Storage, error) {
	if cfg.Ephemeral {
		common.LogDebug("using in-memory preferences", nil)
		return storage.NewMemoryStorage(), nil
	}

	store, err := storage.NewSQLiteStorage(cfg.DatabasePath)
	if err != nil {
		return nil, err
	}

	if err := store.Migrate(ctx); err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	common.LogDebug("opened preference database", common.Fields{"path": cfg.DatabasePath})
	return store, nil
}

// session is everything a command needs to read or change the mode.
type session struct {
	storage service.Storage
	doc     *themes.Document
	store   *mode.Store
	cfg     config.Config
}

func openSession(ctx context.Context) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	prefs, err := initStorage(ctx, cfg)
	if err != nil {
		return nil, err
	}

	doc := themes.NewDocument()
	sess := &session{
		storage: prefs,
		doc:     doc,
		store:   mode.NewStore(ctx, prefs, doc),
		cfg:     cfg,
	}
	sess.store.Subscribe(func(next model.Mode) {
		common.LogDebug("mode changed", common.Fields{
			"mode":       string(next),
			"persistent": sess.store.Persistent(),
		})
	})
	return sess, nil
}

// Context returns ctx with the session's mode store in scope.
func (s *session) Context(ctx context.Context) context.Context {
	return mode.WithStore(ctx, s.store)
}

// Close warns when the session's mode changes never reached disk, then closes storage.
func (s *session) Close() {
	if !s.store.Persistent() {
		common.LogWarn("mode changes from this session were not saved", common.Fields{
			"mode": string(s.store.Mode()),
			"path": s.cfg.DatabasePath,
		})
	}
	if err := s.storage.Close(); err != nil {
		common.LogError(err, "failed to close storage", common.Fields{"path": s.cfg.DatabasePath})
	}
}
