package menu

// --- Catalog Domain Model ---

// Dinner is an orderable dinner course.
type Dinner struct {
	ID          string
	Name        string
	Description string
	BasePrice   float64
	// AllowedStyles holds style ids or style names. Empty means any style.
	AllowedStyles []string
	ImageURL      string
	Available     bool
}

// Style is a serving style that changes presentation and price.
type Style struct {
	ID            string
	Name          string
	PriceModifier float64
	Details       string
}

// MenuItem is one component of a dinner's composition.
type MenuItem struct {
	ID              string
	DinnerID        string
	Name            string
	DefaultQuantity int
	Unit            string
	BasePrice       float64
	AdditionalPrice float64
	IsRequired      bool
	CanRemove       bool
	CanIncrease     bool
	CanDecrease     bool
	MinQuantity     *int
	MaxQuantity     *int
}

// UnitPrice is the price of one unit above or below the default quantity.
func (m MenuItem) UnitPrice() float64 {
	if m.AdditionalPrice > 0 {
		return m.AdditionalPrice
	}
	return m.BasePrice
}

// Snapshot is a point-in-time view of the catalog.
type Snapshot struct {
	Dinners []Dinner
	Styles  []Style
	Items   map[string][]MenuItem // keyed by dinner id
}
