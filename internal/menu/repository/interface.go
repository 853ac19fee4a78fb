package repository

import (
	"context"

	"voice-ordering/internal/menu"
)

// Repository is the read-only data store behind the menu catalog.
type Repository interface {
	DinnerRepository
	StyleRepository
	MenuItemRepository
}

type DinnerRepository interface {
	ListDinners(ctx context.Context, opt ListDinnersOptions) ([]menu.Dinner, error)
}

type StyleRepository interface {
	ListStyles(ctx context.Context) ([]menu.Style, error)
}

type MenuItemRepository interface {
	ListMenuItems(ctx context.Context, opt ListMenuItemsOptions) ([]menu.MenuItem, error)
}
