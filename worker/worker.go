package worker

import (
	"context"
	"time"

	"travelmaker/catalog"
	"travelmaker/logging"
)

// DefaultWarmInterval is the retry cadence while the catalog is unloaded.
const DefaultWarmInterval = 30 * time.Second

// StartCatalogWarmer loads the catalog once up front and, while only the seed
// fallback is available, retries the source on every tick. It stops after
// the first successful load or when ctx is done. The returned channel closes
// on exit.
func StartCatalogWarmer(ctx context.Context, loader *catalog.Loader, interval time.Duration) <-chan struct{} {
	if interval <= 0 {
		interval = DefaultWarmInterval
	}
	logging.Info().Dur("interval", interval).Msg("Starting catalog warmer")

	done := make(chan struct{})
	go func() {
		defer close(done)

		if warm(ctx, loader) {
			return
		}

		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if warm(ctx, loader) {
					return
				}
			}
		}
	}()
	return done
}

func warm(ctx context.Context, loader *catalog.Loader) bool {
	if err := loader.Refresh(ctx); err != nil {
		logging.Debug().Err(err).Msg("Catalog still on fallback, will retry")
		return false
	}
	logging.Info().Int("courses", len(loader.All(ctx))).Msg("Catalog warm")
	return true
}
