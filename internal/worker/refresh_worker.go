package worker

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/kthsports/storefront/internal/store"
)

// RefreshWorker periodically re-fetches the product catalog and order list so
// the in-memory caches track backend state. Each cycle is a wholesale
// replace; a failed fetch keeps the previous cache and is retried on the next
// tick only.
type RefreshWorker struct {
	products *store.ProductStore
	orders   *store.OrderStore
	interval time.Duration
}

// NewRefreshWorker constructs a RefreshWorker.
func NewRefreshWorker(products *store.ProductStore, orders *store.OrderStore, interval time.Duration) *RefreshWorker {
	return &RefreshWorker{
		products: products,
		orders:   orders,
		interval: interval,
	}
}

// Start begins the periodic refresh loop and listens for context cancellation.
func (w *RefreshWorker) Start(ctx context.Context) {
	log.Info().Dur("interval", w.interval).Msg("Starting refresh worker")

	// Run immediately on start
	w.run(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			w.run(ctx)
		case <-ctx.Done():
			log.Info().Msg("Refresh worker stopped")
			return
		}
	}
}

func (w *RefreshWorker) run(ctx context.Context) {
	start := time.Now()

	if err := w.products.FetchAll(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to refresh products")
	}
	if err := w.orders.FetchAll(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to refresh orders")
	}

	log.Info().
		Dur("duration", time.Since(start)).
		Int("products", len(w.products.Products())).
		Int("orders", len(w.orders.Orders())).
		Msg("Refresh completed")
}
