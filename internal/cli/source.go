package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"applicant-tracker/internal/cv"
	"applicant-tracker/internal/objectstore"
	"applicant-tracker/internal/recruit"

	"go.uber.org/zap"
)

// objectSource is the part of objectstore.Bucket the ingest command reads from.
type objectSource interface {
	List(ctx context.Context, prefix string) ([]string, error)
	Get(ctx context.Context, key string) (*objectstore.Object, error)
}

// readDir loads every PDF and DOCX file directly inside dir, in name order.
func readDir(dir string, logger *zap.Logger) ([]recruit.ResumeFile, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", dir, err)
	}

	var files []recruit.ResumeFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if cv.FormatFromFilename(entry.Name()) == cv.FormatUnknown {
			logger.Debug("ignoring file", zap.String("file", entry.Name()))
			continue
		}
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", entry.Name(), err)
		}
		files = append(files, recruit.ResumeFile{Filename: entry.Name(), Data: data})
	}
	return files, nil
}

// readBucket downloads every PDF and DOCX object under prefix, in key order.
func readBucket(ctx context.Context, src objectSource, prefix string, logger *zap.Logger) ([]recruit.ResumeFile, error) {
	keys, err := src.List(ctx, prefix)
	if err != nil {
		return nil, err
	}

	var files []recruit.ResumeFile
	for _, key := range keys {
		if cv.FormatFromFilename(key) == cv.FormatUnknown {
			logger.Debug("ignoring object", zap.String("key", key))
			continue
		}
		obj, err := src.Get(ctx, key)
		if err != nil {
			return nil, err
		}
		files = append(files, recruit.ResumeFile{Filename: obj.Key, Data: obj.Data})
	}
	return files, nil
}
