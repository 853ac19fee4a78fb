package menu

import "context"

//go:generate mockery --name UseCase
type UseCase interface {
	ListDinners(ctx context.Context) ([]Dinner, error)
	ListStyles(ctx context.Context) ([]Style, error)
	ListMenuItems(ctx context.Context, dinnerID string) ([]MenuItem, error)
	Snapshot(ctx context.Context) (Snapshot, error)
}
