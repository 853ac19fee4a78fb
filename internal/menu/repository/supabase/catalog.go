package supabase

import (
	"context"
	"sort"
	"strings"

	"voice-ordering/internal/menu"
	repo "voice-ordering/internal/menu/repository"
)

// ListDinners returns dinners ordered by name.
func (r *implRepository) ListDinners(ctx context.Context, opt repo.ListDinnersOptions) ([]menu.Dinner, error) {
	query := r.client.From(tableDinners).Select("*", "", false)
	if opt.OnlyAvailable {
		query = query.Eq("is_available", "true")
	}

	var rows []dinnerRow
	if _, err := query.ExecuteTo(&rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDinners"), err)
		return nil, repo.ErrFailedToList
	}

	dinners := make([]menu.Dinner, 0, len(rows))
	for _, row := range rows {
		dinners = append(dinners, row.toDinner())
	}
	sort.SliceStable(dinners, func(i, j int) bool {
		return strings.ToLower(dinners[i].Name) < strings.ToLower(dinners[j].Name)
	})
	return dinners, nil
}

// ListStyles returns styles ordered by price modifier, cheapest first.
func (r *implRepository) ListStyles(ctx context.Context) ([]menu.Style, error) {
	var rows []styleRow
	if _, err := r.client.From(tableStyles).Select("*", "", false).ExecuteTo(&rows); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListStyles"), err)
		return nil, repo.ErrFailedToList
	}

	styles := make([]menu.Style, 0, len(rows))
	for _, row := range rows {
		styles = append(styles, row.toStyle())
	}
	sort.SliceStable(styles, func(i, j int) bool {
		return styles[i].PriceModifier < styles[j].PriceModifier
	})
	return styles, nil
}

// ListMenuItems returns the items of one dinner in insertion (id) order.
func (r *implRepository) ListMenuItems(ctx context.Context, opt repo.ListMenuItemsOptions) ([]menu.MenuItem, error) {
	if opt.DinnerID == "" {
		return nil, repo.ErrInvalidOption
	}

	var rows []menuItemRow
	_, err := r.client.From(tableMenuItems).
		Select("*", "", false).
		Eq("dinner_id", opt.DinnerID).
		ExecuteTo(&rows)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMenuItems"), err)
		return nil, repo.ErrFailedToList
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].ID.less(rows[j].ID) })

	items := make([]menu.MenuItem, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toMenuItem())
	}
	return items, nil
}
