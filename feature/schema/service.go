package schema

import (
	"context"

	"schema-engine/core/graph"
	"schema-engine/core/keylock"
	"schema-engine/core/reconcile"
	"schema-engine/core/registry"

	"go.uber.org/zap"
)

// Service serializes engine writes per qualified name.
type Service struct {
	engine   *reconcile.Engine
	registry *registry.Registry
	locks    *keylock.Locker
	logger   *zap.Logger
}

// NewService creates a new schema service. locks may be shared with other writers.
func NewService(engine *reconcile.Engine, reg *registry.Registry, locks *keylock.Locker, logger *zap.Logger) *Service {
	if locks == nil {
		locks = keylock.New()
	}
	return &Service{
		engine:   engine,
		registry: reg,
		locks:    locks,
		logger:   logger,
	}
}

// UpsertSchemaType reconciles st while holding the lock on its qualified name.
func (s *Service) UpsertSchemaType(ctx context.Context, userID string, st reconcile.SchemaType, source string) (string, error) {
	unlock, err := s.locks.LockContext(ctx, st.QualifiedName)
	if err != nil {
		return "", err
	}
	defer unlock()

	return s.engine.UpsertSchemaType(ctx, userID, st, source)
}

// DescribeSchemaType reads a schema type back.
func (s *Service) DescribeSchemaType(ctx context.Context, userID, qualifiedName string) (*reconcile.SchemaType, error) {
	return s.engine.DescribeSchemaType(ctx, userID, qualifiedName)
}

// RemoveSchemaType removes a schema type while holding the lock on its qualified name,
// the same key upserts of that schema type take.
func (s *Service) RemoveSchemaType(ctx context.Context, userID, guid, source string, semantic graph.DeleteSemantic) error {
	if !s.engine.SupportsDeleteSemantic(semantic) {
		return s.engine.RemoveSchemaType(ctx, userID, guid, source, semantic)
	}

	ref, err := s.engine.SchemaTypeByGUID(ctx, userID, guid)
	if err != nil {
		return err
	}
	if ref == nil {
		return s.engine.RemoveSchemaType(ctx, userID, guid, source, semantic)
	}

	unlock, err := s.locks.LockContext(ctx, ref.QualifiedName)
	if err != nil {
		return err
	}
	defer unlock()

	return s.engine.RemoveSchemaType(ctx, userID, guid, source, semantic)
}

// AddLineageMapping links source to target.
func (s *Service) AddLineageMapping(ctx context.Context, userID, source, target, externalSource string) (*reconcile.Lineage, error) {
	unlock, err := s.locks.LockContext(ctx, "lineage:"+source+"->"+target)
	if err != nil {
		return nil, err
	}
	defer unlock()

	return s.engine.AddLineageMapping(ctx, userID, source, target, externalSource)
}

// UpsertAsset reconciles an asset while holding the lock on its qualified name.
func (s *Service) UpsertAsset(ctx context.Context, userID string, asset reconcile.Asset, source string) (string, error) {
	unlock, err := s.locks.LockContext(ctx, asset.QualifiedName)
	if err != nil {
		return "", err
	}
	defer unlock()

	return s.engine.UpsertAsset(ctx, userID, asset, source)
}

// AttachSchemaType attaches a schema type to an asset.
func (s *Service) AttachSchemaType(ctx context.Context, userID, assetQualifiedName, schemaTypeQualifiedName, source string) (string, error) {
	unlock, err := s.locks.LockContext(ctx, assetQualifiedName)
	if err != nil {
		return "", err
	}
	defer unlock()

	return s.engine.AttachSchemaType(ctx, userID, assetQualifiedName, schemaTypeQualifiedName, source)
}

// RegisterSource registers an external source.
func (s *Service) RegisterSource(ctx context.Context, userID, name, description string) (*registry.Source, error) {
	src, err := s.registry.Register(ctx, userID, name, description)
	if err != nil {
		return nil, err
	}
	s.logger.Info("External source registered", zap.String("name", src.Name), zap.String("guid", src.GUID))
	return src, nil
}

// ListSources returns every registered external source.
func (s *Service) ListSources(ctx context.Context) ([]registry.Source, error) {
	return s.registry.List(ctx)
}
