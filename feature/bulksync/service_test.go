package bulksync

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"

	"schema-engine/core/auth"
	"schema-engine/core/graph"
	"schema-engine/core/metrics"
	"schema-engine/core/reconcile"
	"schema-engine/core/registry"
	"schema-engine/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

const bucket = "schemas"

var engineConfig = reconcile.Config{
	DeleteSemantics: []string{"SOFT"},
	SchemaPrefix:    "desired/",
	SnapshotPrefix:  "snapshots/",
	SyncWorkers:     2,
}

func setupTestService(t *testing.T) (*Service, *mocks.Client, *reconcile.Engine, *metrics.Metrics) {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	store := graph.NewGormStore(db)
	require.NoError(t, store.Migrate())
	reg := registry.New(db)
	require.NoError(t, reg.Migrate())
	_, err = reg.Register(context.Background(), "admin", "warehouse", "")
	require.NoError(t, err)

	engine, err := reconcile.New(reconcile.Deps{
		Store:      store,
		Sources:    reg,
		Authorizer: auth.NewAllowList(auth.Config{}),
	}, engineConfig)
	require.NoError(t, err)

	client := new(mocks.Client)
	m := metrics.New()
	return NewService(engine, client, bucket, engineConfig, nil, m, zap.NewNop()), client, engine, m
}

func expectObject(client *mocks.Client, key, body string) {
	client.On("GetObject", mock.Anything, bucket, key, mock.Anything).
		Return(io.NopCloser(strings.NewReader(body)), nil).Once()
}

const ordersYAML = `
qualifiedName: schema.orders
displayName: Orders
attributes:
  - qualifiedName: schema.orders.id
    position: 0
  - qualifiedName: schema.orders.total
    position: 1
assets:
  - qualifiedName: file.orders.csv
    typeName: DataFile
lineage:
  - source: schema.orders.id
    target: schema.invoices.order_id
`

const invoicesJSON = `{
  "qualifiedName": "schema.invoices",
  "displayName": "Invoices",
  "attributes": [{"qualifiedName": "schema.invoices.order_id", "position": 0}]
}`

func TestRun(t *testing.T) {
	svc, client, engine, m := setupTestService(t)
	ctx := context.Background()

	client.On("ListObjects", mock.Anything, bucket, mock.Anything).
		Return(mocks.Objects("desired/orders.yaml", "desired/invoices.json", "desired/broken.yaml", "desired/README.md"))
	expectObject(client, "desired/orders.yaml", ordersYAML)
	expectObject(client, "desired/invoices.json", invoicesJSON)
	expectObject(client, "desired/broken.yaml", "qualifiedName: [\n")

	report, err := svc.Run(ctx, Options{UserID: "ana", Source: "warehouse"})
	require.NotNil(t, report)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "desired/broken.yaml")

	assert.Equal(t, 3, report.Documents)
	assert.Equal(t, 2, report.Reconciled)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 1, report.Links)
	assert.Equal(t, StatusInvalid, report.Results[2].Status)

	st, err := engine.DescribeSchemaType(ctx, "ana", "schema.orders")
	require.NoError(t, err)
	assert.Len(t, st.Attributes, 2)

	ep, err := engine.ResolveEndpoint(ctx, "ana", "schema.orders")
	require.NoError(t, err)
	assert.Equal(t, reconcile.ResolvedAsAsset, ep.Resolution)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.SyncDocumentsTotal.WithLabelValues(StatusReconciled)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.SyncDocumentsTotal.WithLabelValues(StatusInvalid)))
	client.AssertNotCalled(t, "GetObject", mock.Anything, bucket, "desired/README.md", mock.Anything)
}

func TestRun_LineageFailureMarksDocument(t *testing.T) {
	svc, client, _, _ := setupTestService(t)

	client.On("ListObjects", mock.Anything, bucket, mock.Anything).Return(mocks.Objects("desired/orders.yaml"))
	expectObject(client, "desired/orders.yaml", ordersYAML)

	report, err := svc.Run(context.Background(), Options{UserID: "ana", Source: "warehouse"})
	require.Error(t, err)
	assert.ErrorIs(t, err, reconcile.ErrReferenceableNotFound)
	assert.Equal(t, StatusFailed, report.Results[0].Status)
	assert.Zero(t, report.Links)
}

func TestRun_DryRun(t *testing.T) {
	svc, client, engine, _ := setupTestService(t)
	ctx := context.Background()

	client.On("ListObjects", mock.Anything, bucket, mock.Anything).Return(mocks.Objects("desired/orders.yaml"))
	expectObject(client, "desired/orders.yaml", ordersYAML)

	report, err := svc.Run(ctx, Options{UserID: "ana", Source: "warehouse", DryRun: true})
	require.NoError(t, err)
	assert.Equal(t, 1, report.Planned)
	assert.Equal(t, "create", report.Results[0].Action)

	st, err := engine.FindSchemaType(ctx, "ana", "schema.orders")
	require.NoError(t, err)
	assert.Nil(t, st, "dry run must not write")
}

func TestRun_ListFailure(t *testing.T) {
	svc, client, _, _ := setupTestService(t)

	ch := make(chan minio.ObjectInfo, 1)
	ch <- minio.ObjectInfo{Err: assert.AnError}
	close(ch)
	client.On("ListObjects", mock.Anything, bucket, mock.Anything).Return((<-chan minio.ObjectInfo)(ch))

	report, err := svc.Run(context.Background(), Options{UserID: "ana"})
	assert.Nil(t, report)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestExport(t *testing.T) {
	svc, client, engine, _ := setupTestService(t)
	ctx := context.Background()

	_, err := engine.UpsertSchemaType(ctx, "ana", reconcile.SchemaType{
		QualifiedName: "schema.orders",
		DisplayName:   "Orders",
		Attributes:    []reconcile.Attribute{{QualifiedName: "schema.orders.id"}},
	}, "warehouse")
	require.NoError(t, err)

	var written string
	client.On("PutObject", mock.Anything, bucket, "snapshots/schema.orders.json", mock.Anything, mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) {
			data, _ := io.ReadAll(args.Get(3).(io.Reader))
			written = string(data)
		}).
		Return(minio.UploadInfo{}, nil)

	key, err := svc.Export(ctx, "ana", "schema.orders")
	require.NoError(t, err)
	assert.Equal(t, "snapshots/schema.orders.json", key)

	doc, err := Decode(key, []byte(written))
	require.NoError(t, err)
	assert.Equal(t, "Orders", doc.DisplayName)
	require.Len(t, doc.Attributes, 1)

	_, err = svc.Export(ctx, "ana", "schema.none")
	assert.ErrorIs(t, err, reconcile.ErrReferenceableNotFound)
}
