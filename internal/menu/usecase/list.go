package usecase

import (
	"context"
	"fmt"
	"strings"

	"voice-ordering/internal/menu"
	repo "voice-ordering/internal/menu/repository"
)

// ListDinners returns the dinners currently offered.
func (uc *implUseCase) ListDinners(ctx context.Context) ([]menu.Dinner, error) {
	dinners, err := uc.repo.ListDinners(ctx, repo.ListDinnersOptions{OnlyAvailable: true})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListDinners: %v", err)
		return nil, fmt.Errorf("%w: %v", menu.ErrCatalogUnavailable, err)
	}
	return dinners, nil
}

func (uc *implUseCase) ListStyles(ctx context.Context) ([]menu.Style, error) {
	styles, err := uc.repo.ListStyles(ctx)
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListStyles: %v", err)
		return nil, fmt.Errorf("%w: %v", menu.ErrCatalogUnavailable, err)
	}
	return styles, nil
}

// ListMenuItems returns the composition of a dinner with duplicate rows removed.
// The first row wins, by id and then by case-insensitive name.
func (uc *implUseCase) ListMenuItems(ctx context.Context, dinnerID string) ([]menu.MenuItem, error) {
	items, err := uc.repo.ListMenuItems(ctx, repo.ListMenuItemsOptions{DinnerID: dinnerID})
	if err != nil {
		uc.l.Errorf(ctx, "uc.ListMenuItems %s: %v", dinnerID, err)
		return nil, fmt.Errorf("%w: %v", menu.ErrCatalogUnavailable, err)
	}
	return dedupItems(items), nil
}

// Snapshot reads dinners, styles and every dinner's items.
func (uc *implUseCase) Snapshot(ctx context.Context) (menu.Snapshot, error) {
	dinners, err := uc.ListDinners(ctx)
	if err != nil {
		return menu.Snapshot{}, err
	}
	styles, err := uc.ListStyles(ctx)
	if err != nil {
		return menu.Snapshot{}, err
	}

	items := make(map[string][]menu.MenuItem, len(dinners))
	for _, d := range dinners {
		list, err := uc.ListMenuItems(ctx, d.ID)
		if err != nil {
			return menu.Snapshot{}, err
		}
		items[d.ID] = list
	}

	return menu.Snapshot{Dinners: dinners, Styles: styles, Items: items}, nil
}

func dedupItems(items []menu.MenuItem) []menu.MenuItem {
	seenID := make(map[string]struct{}, len(items))
	seenName := make(map[string]struct{}, len(items))
	out := make([]menu.MenuItem, 0, len(items))
	for _, item := range items {
		if item.ID != "" {
			if _, ok := seenID[item.ID]; ok {
				continue
			}
		}
		name := strings.ToLower(strings.TrimSpace(item.Name))
		if _, ok := seenName[name]; ok {
			continue
		}
		seenID[item.ID] = struct{}{}
		seenName[name] = struct{}{}
		out = append(out, item)
	}
	return out
}
