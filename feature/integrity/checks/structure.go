package checks

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"schema-engine/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// CheckStructure returns the prefixes with no object under them.
func CheckStructure(ctx context.Context, client storage.Client, bucket string, prefixes []string) ([]string, error) {
	var missing []string

	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("bucket %s does not exist", bucket)
	}

	for _, prefix := range prefixes {
		if prefix == "" {
			continue
		}
		folderPath := prefix
		if !strings.HasSuffix(folderPath, "/") {
			folderPath += "/"
		}

		opts := minio.ListObjectsOptions{
			Prefix:    folderPath,
			Recursive: false,
			MaxKeys:   1,
		}

		found := false
		for range client.ListObjects(ctx, bucket, opts) {
			found = true
			break
		}

		if !found {
			missing = append(missing, prefix)
		}
	}

	return missing, nil
}

// FixStructure creates a folder marker for each missing prefix.
func FixStructure(ctx context.Context, client storage.Client, bucket string, logger *zap.Logger, missing []string) error {
	for _, prefix := range missing {
		folderPath := prefix
		if !strings.HasSuffix(folderPath, "/") {
			folderPath += "/"
		}

		_, err := client.PutObject(ctx, bucket, folderPath, bytes.NewReader([]byte{}), 0, minio.PutObjectOptions{})
		if err != nil {
			logger.Error("Failed to create folder", zap.String("prefix", prefix), zap.Error(err))
			return err
		}
		logger.Info("Created missing folder", zap.String("prefix", prefix))
	}
	return nil
}
