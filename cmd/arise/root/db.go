package root

import (
	"context"
	"database/sql"

	"arise/internal/config"
	"arise/internal/engine"
	"arise/internal/storage"
)

func openDB(ctx context.Context) (*sql.DB, *config.Config, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := storage.Open(ctx, cfg.DBPath)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, cfg, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, *config.Config, func(), error) {
	db, cfg, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, nil, err
	}
	return engine.NewService(db), cfg, cleanup, nil
}
