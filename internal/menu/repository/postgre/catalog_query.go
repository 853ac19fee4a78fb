package postgre

import (
	"fmt"

	repo "voice-ordering/internal/menu/repository"
)

const (
	selectDinners = `
		SELECT id::text, name, base_price::float8, COALESCE(description, ''),
		       COALESCE(available_styles::text[], '{}'), COALESCE(image_url, ''),
		       COALESCE(is_available, true)
		FROM dinners`

	selectStyles = `
		SELECT id::text, name, price_modifier::float8, COALESCE(details, '')
		FROM styles
		ORDER BY price_modifier ASC, id ASC`

	selectMenuItems = `
		SELECT id::text, dinner_id::text, name, COALESCE(default_quantity, 0), COALESCE(unit, ''),
		       COALESCE(base_price, 0)::float8, COALESCE(additional_price, 0)::float8,
		       COALESCE(is_required, false), COALESCE(can_remove, false),
		       COALESCE(can_increase, false), COALESCE(can_decrease, false),
		       min_quantity, max_quantity
		FROM menu_items
		WHERE dinner_id::text = $1
		ORDER BY id ASC`
)

// buildListDinnersQuery builds the dinners query for the given filter.
func (r *implRepository) buildListDinnersQuery(opt repo.ListDinnersOptions) string {
	where := "1=1"
	if opt.OnlyAvailable {
		where = "COALESCE(is_available, true)"
	}
	return fmt.Sprintf("%s WHERE %s ORDER BY name ASC", selectDinners, where)
}
