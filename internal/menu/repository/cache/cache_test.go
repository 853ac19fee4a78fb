package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-ordering/internal/menu"
	repo "voice-ordering/internal/menu/repository"
)

type countingRepo struct {
	dinnerCalls int
	styleCalls  int
	itemCalls   map[string]int
	fail        bool
}

func (c *countingRepo) ListDinners(_ context.Context, _ repo.ListDinnersOptions) ([]menu.Dinner, error) {
	c.dinnerCalls++
	if c.fail {
		return nil, repo.ErrFailedToList
	}
	return []menu.Dinner{{ID: "1", Name: "French Dinner", BasePrice: 48000, AllowedStyles: []string{"1"}, Available: true}}, nil
}

func (c *countingRepo) ListStyles(_ context.Context) ([]menu.Style, error) {
	c.styleCalls++
	return []menu.Style{{ID: "1", Name: "Simple"}}, nil
}

func (c *countingRepo) ListMenuItems(_ context.Context, opt repo.ListMenuItemsOptions) ([]menu.MenuItem, error) {
	if c.itemCalls == nil {
		c.itemCalls = map[string]int{}
	}
	c.itemCalls[opt.DinnerID]++
	return []menu.MenuItem{{ID: "10", DinnerID: opt.DinnerID, Name: "Coffee", DefaultQuantity: 1}}, nil
}

func TestNew(t *testing.T) {
	inner := &countingRepo{}

	got, err := New(DriverNone, inner)
	require.NoError(t, err)
	assert.Same(t, inner, got)

	_, err = New(DriverRedis, inner)
	assert.ErrorIs(t, err, ErrInvalidConfig)

	_, err = New(Driver("memcached"), inner)
	assert.ErrorIs(t, err, ErrInvalidDriver)
}

func TestMemoryReadThrough(t *testing.T) {
	ctx := context.Background()
	inner := &countingRepo{}

	r, err := New(DriverMemory, inner, WithTTL(time.Minute), WithSize(8))
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		dinners, err := r.ListDinners(ctx, repo.ListDinnersOptions{OnlyAvailable: true})
		require.NoError(t, err)
		require.Len(t, dinners, 1)
		assert.Equal(t, []string{"1"}, dinners[0].AllowedStyles)
	}
	assert.Equal(t, 1, inner.dinnerCalls)

	_, err = r.ListStyles(ctx)
	require.NoError(t, err)
	_, err = r.ListStyles(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, inner.styleCalls)

	_, _ = r.ListMenuItems(ctx, repo.ListMenuItemsOptions{DinnerID: "1"})
	_, _ = r.ListMenuItems(ctx, repo.ListMenuItemsOptions{DinnerID: "1"})
	_, _ = r.ListMenuItems(ctx, repo.ListMenuItemsOptions{DinnerID: "2"})
	assert.Equal(t, map[string]int{"1": 1, "2": 1}, inner.itemCalls)
}

func TestFailuresAreNotCached(t *testing.T) {
	ctx := context.Background()
	inner := &countingRepo{fail: true}

	r, err := New(DriverMemory, inner)
	require.NoError(t, err)

	_, err = r.ListDinners(ctx, repo.ListDinnersOptions{})
	assert.True(t, errors.Is(err, repo.ErrFailedToList))

	inner.fail = false
	dinners, err := r.ListDinners(ctx, repo.ListDinnersOptions{})
	require.NoError(t, err)
	assert.Len(t, dinners, 1)
	assert.Equal(t, 2, inner.dinnerCalls)
}

func TestListMenuItemsRequiresDinner(t *testing.T) {
	r, err := New(DriverMemory, &countingRepo{})
	require.NoError(t, err)

	_, err = r.ListMenuItems(context.Background(), repo.ListMenuItemsOptions{})
	assert.ErrorIs(t, err, repo.ErrInvalidOption)
}
