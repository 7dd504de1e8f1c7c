package services

import (
	"context"
	"encoding/json"

	"github.com/karan/societyhub/internal/cache"
	"github.com/karan/societyhub/internal/pkg/logger"
)

// listCached serves a full-collection list from the view cache when a fresh
// copy exists, loading and caching it otherwise. Resident-scoped lists bypass
// the cache; only the shared full views are worth keeping.
func listCached[T any](ctx context.Context, views *cache.ViewCache, collection string, load func(context.Context) ([]T, error)) ([]T, error) {
	if views != nil {
		if payload := views.Get(ctx, collection); payload != nil {
			var cached []T
			if err := json.Unmarshal(payload, &cached); err == nil {
				return cached, nil
			}
			// Corrupt entry: drop it and fall through to the loader
			views.Invalidate(ctx, collection)
		}
	}

	items, err := load(ctx)
	if err != nil {
		return nil, err
	}

	if views != nil {
		if payload, err := json.Marshal(items); err == nil {
			views.Set(ctx, collection, payload)
		} else {
			logger.Warn().Err(err).Str("collection", collection).Msg("Failed to marshal view for caching")
		}
	}

	return items, nil
}
