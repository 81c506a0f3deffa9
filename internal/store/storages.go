package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/courses-api/internal/config"
	"github.com/MKhiriev/courses-api/internal/logger"
)

// Storages bundles the repositories sharing one connection pool.
type Storages struct {
	UserRepository   UserRepository
	CourseRepository CourseRepository

	db *DB
}

// NewStorages opens the configured database, migrates the schema and builds
// the repositories.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewDB(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, err
	}
	log.Info().Str("driver", cfg.DB.Driver).Msg("database schema is up to date")

	return &Storages{
		UserRepository:   NewUserRepository(db, log),
		CourseRepository: NewCourseRepository(db, log),
		db:               db,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.db.Close()
}
