package repository

// ListDinnersOptions holds filter parameters for listing dinners.
type ListDinnersOptions struct {
	OnlyAvailable bool
}

// ListMenuItemsOptions holds filter parameters for listing menu items.
// DinnerID is required.
type ListMenuItemsOptions struct {
	DinnerID string
}
