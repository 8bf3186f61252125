package integrity

import (
	"context"
	"errors"

	"schema-engine/core/storage"
	"schema-engine/feature/integrity/checks"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNoStorage is returned by the structure check when no storage client is configured.
var ErrNoStorage = errors.New("storage client is not configured")

// GraphStore is the part of the graph store the orphan check uses.
type GraphStore interface {
	checks.OrphanFinder
	checks.Deleter
}

// Service handles integrity checks.
type Service struct {
	client   storage.Client
	bucket   string
	prefixes []string
	db       *gorm.DB
	store    GraphStore
	logger   *zap.Logger
}

// NewService creates a new integrity service. prefixes are the bucket prefixes
// that must exist.
func NewService(client storage.Client, bucket string, prefixes []string, db *gorm.DB, store GraphStore, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		bucket:   bucket,
		prefixes: prefixes,
		db:       db,
		store:    store,
		logger:   logger,
	}
}

// CheckStructure returns a list of missing prefixes.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	if s.client == nil {
		return nil, ErrNoStorage
	}
	return checks.CheckStructure(ctx, s.client, s.bucket, s.prefixes)
}

// FixStructure creates the missing prefixes.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.logger, missing)
}

// CheckStore verifies the store tables.
func (s *Service) CheckStore() (*checks.StoreReport, error) {
	return checks.CheckStore(s.db)
}

// CheckOrphans returns the attributes with no owning schema type.
func (s *Service) CheckOrphans(ctx context.Context) ([]checks.Orphan, error) {
	return checks.CheckOrphans(ctx, s.store)
}

// FixOrphans soft-deletes the orphans on behalf of userID.
func (s *Service) FixOrphans(ctx context.Context, userID string, orphans []checks.Orphan) error {
	return checks.FixOrphans(ctx, s.store, userID, s.logger, orphans)
}
