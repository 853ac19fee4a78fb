package supabase

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDinnerRow(t *testing.T) {
	raw := `[
		{"id": 3, "name": " French Dinner ", "base_price": 48000, "description": null,
		 "available_styles": [1, "2"], "image_url": "https://cdn/french.png", "is_available": true},
		{"id": "uuid-7", "name": "English Dinner", "base_price": 42000, "available_styles": null}
	]`

	var rows []dinnerRow
	require.NoError(t, json.Unmarshal([]byte(raw), &rows))
	require.Len(t, rows, 2)

	french := rows[0].toDinner()
	assert.Equal(t, "3", french.ID)
	assert.Equal(t, "French Dinner", french.Name)
	assert.Equal(t, []string{"1", "2"}, french.AllowedStyles)
	assert.Equal(t, "", french.Description)
	assert.True(t, french.Available)

	english := rows[1].toDinner()
	assert.Equal(t, "uuid-7", english.ID)
	assert.Empty(t, english.AllowedStyles)
	assert.True(t, english.Available, "missing is_available defaults to available")
}

func TestMenuItemRow(t *testing.T) {
	raw := `{"id": 11, "dinner_id": 3, "name": "Coffee", "default_quantity": 1, "unit": "cup",
		"base_price": 3000, "additional_price": null, "is_required": false, "can_remove": true,
		"can_increase": true, "can_decrease": true, "min_quantity": 0, "max_quantity": 5}`

	var row menuItemRow
	require.NoError(t, json.Unmarshal([]byte(raw), &row))

	item := row.toMenuItem()
	assert.Equal(t, "11", item.ID)
	assert.Equal(t, "3", item.DinnerID)
	assert.Equal(t, 1, item.DefaultQuantity)
	assert.Equal(t, "cup", item.Unit)
	assert.Equal(t, 3000.0, item.UnitPrice())
	require.NotNil(t, item.MaxQuantity)
	assert.Equal(t, 5, *item.MaxQuantity)
	assert.True(t, item.CanRemove)
	assert.False(t, item.IsRequired)
}

func TestFlexIDLess(t *testing.T) {
	assert.True(t, flexID("2").less(flexID("10")), "numeric ids compare numerically")
	assert.True(t, flexID("a").less(flexID("b")))
}
