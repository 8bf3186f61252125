package reconcile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"schema-engine/core/auth"
	"schema-engine/core/graph"
	"schema-engine/core/registry"

	"go.uber.org/zap"
)

// Metric kinds and outcomes reported to the Recorder.
const (
	KindSchemaType = "schema_type"
	KindAttribute  = "attribute"
	KindAsset      = "asset"
	KindLineage    = "lineage"
	KindAttachment = "asset_schema_type"

	OutcomeCreated   = "created"
	OutcomeUpdated   = "updated"
	OutcomeUnchanged = "unchanged"
	OutcomeRemoved   = "removed"
	OutcomeLinked    = "linked"
)

// SourceResolver resolves an external source name to the id tagged on writes.
type SourceResolver interface {
	Resolve(ctx context.Context, name string) (string, error)
}

// Recorder receives engine metrics.
type Recorder interface {
	RecordEntity(kind, outcome string)
	RecordOperation(operation string, err error, elapsed time.Duration)
}

type nopRecorder struct{}

func (nopRecorder) RecordEntity(string, string)                  {}
func (nopRecorder) RecordOperation(string, error, time.Duration) {}

// Deps are the collaborators of an Engine. Logger and Recorder are optional.
type Deps struct {
	Store      graph.Store
	Sources    SourceResolver
	Authorizer auth.Authorizer
	Logger     *zap.Logger
	Recorder   Recorder
}

// Engine reconciles schema types into the entity graph store.
type Engine struct {
	store     graph.Store
	sources   SourceResolver
	authz     auth.Authorizer
	log       *zap.Logger
	rec       Recorder
	semantics map[graph.DeleteSemantic]struct{}
}

// New creates an Engine. It fails when a required collaborator is missing or
// cfg names an unknown delete semantic.
func New(deps Deps, cfg Config) (*Engine, error) {
	if deps.Store == nil || deps.Sources == nil || deps.Authorizer == nil {
		return nil, fmt.Errorf("reconcile engine requires a store, a source resolver and an authorizer")
	}

	semantics := make(map[graph.DeleteSemantic]struct{}, len(cfg.DeleteSemantics))
	for _, name := range cfg.DeleteSemantics {
		s, ok := graph.ParseDeleteSemantic(name)
		if !ok {
			return nil, fmt.Errorf("unknown delete semantic %q", name)
		}
		semantics[s] = struct{}{}
	}

	e := &Engine{
		store:     deps.Store,
		sources:   deps.Sources,
		authz:     deps.Authorizer,
		log:       deps.Logger,
		rec:       deps.Recorder,
		semantics: semantics,
	}
	if e.log == nil {
		e.log = zap.NewNop()
	}
	if e.rec == nil {
		e.rec = nopRecorder{}
	}
	return e, nil
}

// SupportsDeleteSemantic reports whether RemoveSchemaType accepts s.
func (e *Engine) SupportsDeleteSemantic(s graph.DeleteSemantic) bool {
	_, ok := e.semantics[s]
	return ok
}

// observe records the duration and status of an operation.
func (e *Engine) observe(op string, start time.Time, err error) {
	e.rec.RecordOperation(op, err, time.Since(start))
}

func (e *Engine) authorize(ctx context.Context, op, userID string) error {
	err := e.authz.Authorize(ctx, userID)
	if err == nil {
		return nil
	}
	if errors.Is(err, auth.ErrMissingUser) {
		return newError(op, KindInvalidInput, "userId", err)
	}
	return newError(op, KindAuthorization, userID, err)
}

// provenance resolves the external source tagged on the writes of one call.
func (e *Engine) provenance(ctx context.Context, op, sourceName string) (graph.Provenance, error) {
	id, err := e.sources.Resolve(ctx, sourceName)
	if errors.Is(err, registry.ErrUnknownSource) {
		return graph.Provenance{}, newError(op, KindInvalidInput, sourceName, err)
	}
	if err != nil {
		return graph.Provenance{}, storeError(op, sourceName, err)
	}
	return graph.Provenance{SourceID: id, SourceName: sourceName}, nil
}

// find is the identity resolver: it returns nil without error when nothing matches.
func (e *Engine) find(ctx context.Context, op, qualifiedName, typeName string) (*graph.EntityRef, error) {
	ref, err := e.store.FindByQualifiedName(ctx, typeName, qualifiedName)
	if err != nil {
		return nil, storeError(op, qualifiedName, err)
	}
	return ref, nil
}

// hasDifference compares the persisted properties with the desired ones.
func (e *Engine) hasDifference(existing *graph.EntityRef, desired graph.Properties) bool {
	if !e.store.DiffProperties(existing.Properties, desired) {
		return false
	}
	if ce := e.log.Check(zap.DebugLevel, "Properties differ"); ce != nil {
		ce.Write(
			zap.String("qualifiedName", existing.QualifiedName),
			zap.Strings("changed", graph.Differences(existing.Properties, desired)),
		)
	}
	return true
}

// upsertEntity creates the entity when existing is nil, otherwise updates it when its
// properties differ. It returns the entity GUID and the outcome.
func (e *Engine) upsertEntity(ctx context.Context, op, userID string, existing *graph.EntityRef, create func() (string, error), desired graph.Properties, prov graph.Provenance) (string, string, error) {
	if existing == nil {
		guid, err := create()
		if err != nil {
			return "", "", err
		}
		return guid, OutcomeCreated, nil
	}

	if !e.hasDifference(existing, desired) {
		return existing.GUID, OutcomeUnchanged, nil
	}
	if err := e.store.Update(ctx, userID, existing.GUID, desired, prov); err != nil {
		return "", "", storeError(op, existing.QualifiedName, err)
	}
	return existing.GUID, OutcomeUpdated, nil
}

func (e *Engine) logOutcome(kind, outcome, qualifiedName, guid string) {
	e.rec.RecordEntity(kind, outcome)
	fields := []zap.Field{
		zap.String("kind", kind),
		zap.String("qualifiedName", qualifiedName),
		zap.String("guid", guid),
	}
	if outcome == OutcomeUnchanged {
		e.log.Debug("Entity unchanged", fields...)
		return
	}
	e.log.Info("Entity "+outcome, fields...)
}
