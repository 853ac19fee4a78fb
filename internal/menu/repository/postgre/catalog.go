package postgre

import (
	"context"

	"voice-ordering/internal/menu"
	repo "voice-ordering/internal/menu/repository"
)

// ListDinners returns dinners ordered by name.
func (r *implRepository) ListDinners(ctx context.Context, opt repo.ListDinnersOptions) ([]menu.Dinner, error) {
	rows, err := r.db.Query(ctx, r.buildListDinnersQuery(opt))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDinners"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var dinners []menu.Dinner
	for rows.Next() {
		var d menu.Dinner
		if err := rows.Scan(&d.ID, &d.Name, &d.BasePrice, &d.Description, &d.AllowedStyles, &d.ImageURL, &d.Available); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListDinners"), err)
			return nil, repo.ErrFailedToList
		}
		dinners = append(dinners, d)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListDinners"), err)
		return nil, repo.ErrFailedToList
	}
	return dinners, nil
}

// ListStyles returns styles ordered by price modifier.
func (r *implRepository) ListStyles(ctx context.Context) ([]menu.Style, error) {
	rows, err := r.db.Query(ctx, selectStyles)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListStyles"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var styles []menu.Style
	for rows.Next() {
		var s menu.Style
		if err := rows.Scan(&s.ID, &s.Name, &s.PriceModifier, &s.Details); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListStyles"), err)
			return nil, repo.ErrFailedToList
		}
		styles = append(styles, s)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListStyles"), err)
		return nil, repo.ErrFailedToList
	}
	return styles, nil
}

// ListMenuItems returns the composition of one dinner.
func (r *implRepository) ListMenuItems(ctx context.Context, opt repo.ListMenuItemsOptions) ([]menu.MenuItem, error) {
	if opt.DinnerID == "" {
		return nil, repo.ErrInvalidOption
	}

	rows, err := r.db.Query(ctx, selectMenuItems, opt.DinnerID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListMenuItems"), err)
		return nil, repo.ErrFailedToList
	}
	defer rows.Close()

	var items []menu.MenuItem
	for rows.Next() {
		var m menu.MenuItem
		if err := rows.Scan(
			&m.ID, &m.DinnerID, &m.Name, &m.DefaultQuantity, &m.Unit,
			&m.BasePrice, &m.AdditionalPrice,
			&m.IsRequired, &m.CanRemove, &m.CanIncrease, &m.CanDecrease,
			&m.MinQuantity, &m.MaxQuantity,
		); err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListMenuItems"), err)
			return nil, repo.ErrFailedToList
		}
		items = append(items, m)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListMenuItems"), err)
		return nil, repo.ErrFailedToList
	}
	return items, nil
}
