package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/andresuchdata/chainsight/pkg/logger"
)

// Publisher uploads a run's dashboard artifacts to object storage so BI
// tools can pull them without filesystem access to the pipeline host.
type Publisher struct {
	store  ObjectStorage
	prefix string
}

// NewPublisher wraps an ObjectStorage. Keys are written under prefix, which
// may be empty.
func NewPublisher(store ObjectStorage, prefix string) *Publisher {
	return &Publisher{store: store, prefix: strings.Trim(prefix, "/")}
}

// PublishDir uploads every CSV in dir, flat, under the publisher prefix.
func (p *Publisher) PublishDir(ctx context.Context, dir string) (int, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return 0, fmt.Errorf("read dashboard dir: %w", err)
	}

	uploaded := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".csv") {
			continue
		}
		if err := ctx.Err(); err != nil {
			return uploaded, err
		}

		path := filepath.Join(dir, entry.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return uploaded, fmt.Errorf("read %s: %w", path, err)
		}

		key := entry.Name()
		if p.prefix != "" {
			key = p.prefix + "/" + key
		}
		if err := p.store.UploadObject(ctx, key, data); err != nil {
			return uploaded, err
		}
		uploaded++
		logger.Log.Debug().Str("key", key).Int("bytes", len(data)).Msg("published artifact")
	}
	return uploaded, nil
}
