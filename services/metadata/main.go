package metadataService

import (
	"context"
	"fmdverse/api/models"
	"fmdverse/api/models/metadata"
	"fmdverse/api/repositories/tabular"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

type (
	// MetadataService owns the process-wide dataset handle. The dataset is
	// loaded at most once ; failed loads are not remembered.
	MetadataService struct {
		Source  string
		Options tabular.Options
		Logger  *zap.Logger

		loadGroup singleflight.Group
		mux       sync.RWMutex
		dataset   *metadata.Dataset
		loads     int
	}
)

func NewMetadataService(cfg *models.Config, logger *zap.Logger) *MetadataService {
	opts := tabular.DefaultOptions()
	opts.MaxRetries = cfg.Api.SourceFetchMaxRetries
	if cfg.Api.SourceFetchTimeoutSecs > 0 {
		opts.Timeout = time.Duration(cfg.Api.SourceFetchTimeoutSecs) * time.Second
	}

	return &MetadataService{
		Source:  cfg.Api.MetadataSource,
		Options: opts,
		Logger:  logger,
	}
}

// NewMetadataServiceWithDataset wraps an already loaded dataset.
func NewMetadataServiceWithDataset(ds *metadata.Dataset, logger *zap.Logger) *MetadataService {
	return &MetadataService{
		Source:  ds.Source,
		Options: tabular.DefaultOptions(),
		Logger:  logger,
		dataset: ds,
	}
}

// Dataset returns the memoized dataset, loading it on first use.
// Concurrent first callers share a single load, which outlives the
// cancellation of whichever caller started it ; Options.Timeout bounds it.
func (ms *MetadataService) Dataset(ctx context.Context) (*metadata.Dataset, error) {
	ms.mux.RLock()
	ds := ms.dataset
	ms.mux.RUnlock()
	if ds != nil {
		return ds, nil
	}

	v, err, _ := ms.loadGroup.Do(ms.Source, func() (interface{}, error) {
		ms.mux.RLock()
		existing := ms.dataset
		ms.mux.RUnlock()
		if existing != nil {
			return existing, nil
		}

		start := time.Now()
		loaded, loadErr := Load(context.WithoutCancel(ctx), ms.Source, ms.Options)

		ms.mux.Lock()
		ms.loads++
		if loadErr == nil {
			ms.dataset = loaded
		}
		ms.mux.Unlock()

		if loadErr != nil {
			ms.Logger.Error("metadata load failed",
				zap.String("source", ms.Source),
				zap.Error(loadErr))
			return nil, loadErr
		}

		ms.Logger.Info("metadata loaded",
			zap.String("source", ms.Source),
			zap.String("datasetId", loaded.Id.String()),
			zap.Int("records", loaded.Len()),
			zap.Duration("took", time.Since(start)))
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}

	return v.(*metadata.Dataset), nil
}

// LoadAttempts reports how many times the source has actually been read.
func (ms *MetadataService) LoadAttempts() int {
	ms.mux.RLock()
	defer ms.mux.RUnlock()
	return ms.loads
}
