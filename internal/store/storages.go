// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-autosave/internal/config"
	"github.com/MKhiriev/go-autosave/internal/logger"
)

// Storages groups the repositories of the reference endpoint together with
// the connection they share.
type Storages struct {
	FormRepository FormRepository

	db *DB
}

// NewStorages opens the database selected by cfg.DB.DSN, applies migrations
// and builds the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var (
		db  *DB
		err error
	)

	switch DialectFromDSN(cfg.DB.DSN) {
	case DialectPostgres:
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	case DialectSQLite:
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	default:
		err = ErrUnsupportedStorage
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error migrating storage: %w", err)
	}

	return &Storages{
		FormRepository: NewFormRepository(db, log),
		db:             db,
	}, nil
}

// Close closes the underlying database connection.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
