package checks

import (
	"context"
	"testing"

	"schema-engine/core/storage/mocks"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

var prefixes = []string{"desired/", "snapshots/"}

func TestCheckStructure(t *testing.T) {
	t.Run("Bucket Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "schemas").Return(false, nil)

		_, err := CheckStructure(context.Background(), mockClient, "schemas", prefixes)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "does not exist")
	})

	t.Run("All Missing", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "schemas").Return(true, nil)
		mockClient.On("ListObjects", mock.Anything, "schemas", mock.Anything).Return(mocks.Objects())

		missing, err := CheckStructure(context.Background(), mockClient, "schemas", prefixes)
		assert.NoError(t, err)
		assert.Equal(t, prefixes, missing)
	})

	t.Run("All Present", func(t *testing.T) {
		mockClient := new(mocks.Client)
		mockClient.On("BucketExists", mock.Anything, "schemas").Return(true, nil)

		for _, prefix := range prefixes {
			mockClient.On("ListObjects", mock.Anything, "schemas", mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
				return opts.Prefix == prefix
			})).Return(mocks.Objects(prefix + "orders.yaml"))
		}

		missing, err := CheckStructure(context.Background(), mockClient, "schemas", append(prefixes, ""))
		assert.NoError(t, err)
		assert.Len(t, missing, 0)
	})
}

func TestFixStructure(t *testing.T) {
	logger := zap.NewNop()
	mockClient := new(mocks.Client)

	mockClient.On("PutObject", mock.Anything, "schemas", "desired/", mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, nil)

	err := FixStructure(context.Background(), mockClient, "schemas", logger, []string{"desired"})
	assert.NoError(t, err)
	mockClient.AssertNumberOfCalls(t, "PutObject", 1)

	failing := new(mocks.Client)
	failing.On("PutObject", mock.Anything, "schemas", mock.Anything, mock.Anything, int64(0), mock.Anything).Return(minio.UploadInfo{}, assert.AnError)
	assert.ErrorIs(t, FixStructure(context.Background(), failing, "schemas", logger, []string{"desired/"}), assert.AnError)
}
