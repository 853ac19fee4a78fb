package cache

import (
	"context"
	"encoding/json"

	"voice-ordering/internal/menu"
	repo "voice-ordering/internal/menu/repository"
)

func (r *implRepository) ListDinners(ctx context.Context, opt repo.ListDinnersOptions) ([]menu.Dinner, error) {
	key := "dinners:all"
	if opt.OnlyAvailable {
		key = "dinners:available"
	}
	return readThrough(ctx, r, key, func() ([]menu.Dinner, error) {
		return r.inner.ListDinners(ctx, opt)
	})
}

func (r *implRepository) ListStyles(ctx context.Context) ([]menu.Style, error) {
	return readThrough(ctx, r, "styles", func() ([]menu.Style, error) {
		return r.inner.ListStyles(ctx)
	})
}

func (r *implRepository) ListMenuItems(ctx context.Context, opt repo.ListMenuItemsOptions) ([]menu.MenuItem, error) {
	if opt.DinnerID == "" {
		return nil, repo.ErrInvalidOption
	}
	return readThrough(ctx, r, "items:"+opt.DinnerID, func() ([]menu.MenuItem, error) {
		return r.inner.ListMenuItems(ctx, opt)
	})
}

// readThrough serves key from the cache, falling back to load on a miss or
// on any cache failure. Only successful loads are stored.
func readThrough[T any](ctx context.Context, r *implRepository, key string, load func() ([]T, error)) ([]T, error) {
	raw, ok, err := r.store.get(ctx, key)
	if err != nil {
		r.l.Warnf(ctx, "menu/repository/cache.get %s: %v", key, err)
	}
	if ok {
		var out []T
		if err := json.Unmarshal(raw, &out); err == nil {
			return out, nil
		}
		r.l.Warnf(ctx, "menu/repository/cache.decode %s: %v", key, err)
	}

	out, err := load()
	if err != nil {
		return nil, err
	}

	if raw, err := json.Marshal(out); err == nil {
		if err := r.store.set(ctx, key, raw); err != nil {
			r.l.Warnf(ctx, "menu/repository/cache.set %s: %v", key, err)
		}
	}
	return out, nil
}
