package bulksync

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"schema-engine/core/keylock"
	"schema-engine/core/reconcile"
	"schema-engine/core/storage"

	"go.uber.org/multierr"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Document statuses reported by Run.
const (
	StatusReconciled = "reconciled"
	StatusPlanned    = "planned"
	StatusInvalid    = "invalid"
	StatusFailed     = "failed"
)

// Recorder receives per-document outcomes.
type Recorder interface {
	RecordSyncDocument(status string)
}

type nopRecorder struct{}

func (nopRecorder) RecordSyncDocument(string) {}

// Options control one sync run.
type Options struct {
	UserID string
	// Source is the external source tagged on writes unless a document names its own.
	Source string
	// DryRun decodes and validates documents without writing.
	DryRun bool
}

// DocumentResult is the outcome of one document.
type DocumentResult struct {
	Key           string `json:"key"`
	QualifiedName string `json:"qualifiedName,omitempty"`
	GUID          string `json:"guid,omitempty"`
	Status        string `json:"status"`
	// Action is "create" or "update" for a dry run.
	Action string `json:"action,omitempty"`
	Links  int    `json:"links,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Report summarizes a sync run.
type Report struct {
	Documents  int              `json:"documents"`
	Reconciled int              `json:"reconciled"`
	Planned    int              `json:"planned"`
	Failed     int              `json:"failed"`
	Links      int              `json:"links"`
	Duration   string           `json:"duration"`
	Results    []DocumentResult `json:"results"`
}

// Service runs bulk syncs from object storage.
type Service struct {
	engine   *reconcile.Engine
	client   storage.Client
	bucket   string
	cfg      reconcile.Config
	locks    *keylock.Locker
	recorder Recorder
	logger   *zap.Logger
}

// NewService creates a new sync service. locks may be shared with the HTTP writers.
func NewService(engine *reconcile.Engine, client storage.Client, bucket string, cfg reconcile.Config, locks *keylock.Locker, recorder Recorder, logger *zap.Logger) *Service {
	if locks == nil {
		locks = keylock.New()
	}
	if recorder == nil {
		recorder = nopRecorder{}
	}
	if cfg.SyncWorkers < 1 {
		cfg.SyncWorkers = 1
	}
	return &Service{
		engine:   engine,
		client:   client,
		bucket:   bucket,
		cfg:      cfg,
		locks:    locks,
		recorder: recorder,
		logger:   logger,
	}
}

// Run reconciles every document under the schema prefix. The returned error
// combines every document failure; the report is returned either way unless the
// listing itself failed.
func (s *Service) Run(ctx context.Context, opts Options) (*Report, error) {
	start := time.Now()

	keys, err := storage.ListKeys(ctx, s.client, s.bucket, s.cfg.SchemaPrefix)
	if err != nil {
		return nil, err
	}

	var docs []string
	for _, key := range keys {
		if Supported(key) {
			docs = append(docs, key)
		} else {
			s.logger.Debug("Skipping object", zap.String("key", key))
		}
	}

	s.logger.Info("Starting sync",
		zap.Int("documents", len(docs)),
		zap.String("prefix", s.cfg.SchemaPrefix),
		zap.Bool("dryRun", opts.DryRun),
		zap.Int("workers", s.cfg.SyncWorkers),
	)

	results := make([]DocumentResult, len(docs))
	parsed := make([]*Document, len(docs))
	errs := make([]error, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.cfg.SyncWorkers)
	for i, key := range docs {
		g.Go(func() error {
			parsed[i], results[i], errs[i] = s.syncDocument(gctx, key, opts)
			return nil
		})
	}
	_ = g.Wait()

	if !opts.DryRun {
		g, gctx = errgroup.WithContext(ctx)
		g.SetLimit(s.cfg.SyncWorkers)
		for i, doc := range parsed {
			if doc == nil || errs[i] != nil || len(doc.Lineage) == 0 {
				continue
			}
			g.Go(func() error {
				n, err := s.linkDocument(gctx, doc, opts)
				results[i].Links = n
				if err != nil {
					results[i].Status = StatusFailed
					results[i].Error = err.Error()
					errs[i] = fmt.Errorf("%s: %w", docs[i], err)
				}
				return nil
			})
		}
		_ = g.Wait()
	}

	report := &Report{Documents: len(docs), Results: results}
	for _, r := range results {
		switch r.Status {
		case StatusReconciled:
			report.Reconciled++
		case StatusPlanned:
			report.Planned++
		default:
			report.Failed++
		}
		report.Links += r.Links
		s.recorder.RecordSyncDocument(r.Status)
	}
	report.Duration = time.Since(start).String()

	combined := multierr.Combine(errs...)
	s.logger.Info("Sync finished",
		zap.Int("reconciled", report.Reconciled),
		zap.Int("planned", report.Planned),
		zap.Int("failed", report.Failed),
		zap.Int("links", report.Links),
		zap.String("duration", report.Duration),
	)
	return report, combined
}

func (s *Service) syncDocument(ctx context.Context, key string, opts Options) (*Document, DocumentResult, error) {
	result := DocumentResult{Key: key}
	fail := func(status string, err error) (*Document, DocumentResult, error) {
		result.Status = status
		result.Error = err.Error()
		s.logger.Warn("Document failed", zap.String("key", key), zap.String("status", status), zap.Error(err))
		return nil, result, fmt.Errorf("%s: %w", key, err)
	}

	data, err := storage.ReadObject(ctx, s.client, s.bucket, key)
	if err != nil {
		return fail(StatusFailed, err)
	}
	doc, err := Decode(key, data)
	if err != nil {
		return fail(StatusInvalid, err)
	}
	result.QualifiedName = doc.QualifiedName
	if doc.QualifiedName == "" {
		return fail(StatusInvalid, fmt.Errorf("qualifiedName is required"))
	}

	if opts.DryRun {
		existing, err := s.engine.FindSchemaType(ctx, opts.UserID, doc.QualifiedName)
		if err != nil {
			return fail(StatusFailed, err)
		}
		result.Status = StatusPlanned
		result.Action = "create"
		if existing != nil {
			result.GUID = existing.GUID
			result.Action = "update"
		}
		return doc, result, nil
	}

	source := opts.Source
	if doc.Source != "" {
		source = doc.Source
	}

	unlock, err := s.locks.LockContext(ctx, doc.QualifiedName)
	if err != nil {
		return fail(StatusFailed, err)
	}
	guid, err := s.engine.UpsertSchemaType(ctx, opts.UserID, doc.SchemaType, source)
	unlock()
	result.GUID = guid
	if err != nil {
		return fail(StatusFailed, err)
	}

	for _, asset := range doc.Assets {
		if err := s.attachAsset(ctx, opts.UserID, asset, doc.QualifiedName, source); err != nil {
			return fail(StatusFailed, err)
		}
	}

	result.Status = StatusReconciled
	return doc, result, nil
}

func (s *Service) attachAsset(ctx context.Context, userID string, asset reconcile.Asset, schemaTypeQualifiedName, source string) error {
	unlock, err := s.locks.LockContext(ctx, asset.QualifiedName)
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := s.engine.UpsertAsset(ctx, userID, asset, source); err != nil {
		return err
	}
	_, err = s.engine.AttachSchemaType(ctx, userID, asset.QualifiedName, schemaTypeQualifiedName, source)
	return err
}

// linkDocument adds the lineage links of doc and returns how many succeeded.
func (s *Service) linkDocument(ctx context.Context, doc *Document, opts Options) (int, error) {
	source := opts.Source
	if doc.Source != "" {
		source = doc.Source
	}

	var linked int
	var errs error
	for _, link := range doc.Lineage {
		if _, err := s.engine.AddLineageMapping(ctx, opts.UserID, link.Source, link.Target, source); err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		linked++
	}
	return linked, errs
}

// Export writes a JSON snapshot of a schema type under the snapshot prefix and
// returns the object key.
func (s *Service) Export(ctx context.Context, userID, qualifiedName string) (string, error) {
	st, err := s.engine.DescribeSchemaType(ctx, userID, qualifiedName)
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to encode snapshot: %w", err)
	}

	key := s.cfg.SnapshotPrefix + strings.ReplaceAll(qualifiedName, "/", "_") + ".json"
	if err := storage.WriteObject(ctx, s.client, s.bucket, key, "application/json", data); err != nil {
		return "", err
	}

	s.logger.Info("Snapshot exported", zap.String("qualifiedName", qualifiedName), zap.String("key", key))
	return key, nil
}
