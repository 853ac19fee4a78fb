package supabase

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"voice-ordering/internal/menu"
)

// flexID accepts both numeric and string primary keys from PostgREST.
type flexID string

func (f *flexID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*f = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*f = flexID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*f = flexID(n.String())
	return nil
}

// less orders numeric ids numerically and everything else lexically.
func (f flexID) less(other flexID) bool {
	a, errA := strconv.ParseInt(string(f), 10, 64)
	b, errB := strconv.ParseInt(string(other), 10, 64)
	if errA == nil && errB == nil {
		return a < b
	}
	return string(f) < string(other)
}

type dinnerRow struct {
	ID              flexID   `json:"id"`
	Name            string   `json:"name"`
	BasePrice       float64  `json:"base_price"`
	Description     *string  `json:"description"`
	AvailableStyles []flexID `json:"available_styles"`
	ImageURL        *string  `json:"image_url"`
	IsAvailable     *bool    `json:"is_available"`
}

func (r dinnerRow) toDinner() menu.Dinner {
	d := menu.Dinner{
		ID:          string(r.ID),
		Name:        strings.TrimSpace(r.Name),
		BasePrice:   r.BasePrice,
		Description: deref(r.Description),
		ImageURL:    deref(r.ImageURL),
		Available:   r.IsAvailable == nil || *r.IsAvailable,
	}
	for _, s := range r.AvailableStyles {
		if s != "" {
			d.AllowedStyles = append(d.AllowedStyles, string(s))
		}
	}
	return d
}

type styleRow struct {
	ID            flexID  `json:"id"`
	Name          string  `json:"name"`
	PriceModifier float64 `json:"price_modifier"`
	Details       *string `json:"details"`
}

func (r styleRow) toStyle() menu.Style {
	return menu.Style{
		ID:            string(r.ID),
		Name:          strings.TrimSpace(r.Name),
		PriceModifier: r.PriceModifier,
		Details:       deref(r.Details),
	}
}

type menuItemRow struct {
	ID              flexID   `json:"id"`
	DinnerID        flexID   `json:"dinner_id"`
	Name            string   `json:"name"`
	DefaultQuantity *int     `json:"default_quantity"`
	Unit            *string  `json:"unit"`
	BasePrice       *float64 `json:"base_price"`
	AdditionalPrice *float64 `json:"additional_price"`
	IsRequired      *bool    `json:"is_required"`
	CanRemove       *bool    `json:"can_remove"`
	CanIncrease     *bool    `json:"can_increase"`
	CanDecrease     *bool    `json:"can_decrease"`
	MinQuantity     *int     `json:"min_quantity"`
	MaxQuantity     *int     `json:"max_quantity"`
}

func (r menuItemRow) toMenuItem() menu.MenuItem {
	item := menu.MenuItem{
		ID:          string(r.ID),
		DinnerID:    string(r.DinnerID),
		Name:        strings.TrimSpace(r.Name),
		Unit:        deref(r.Unit),
		IsRequired:  r.IsRequired != nil && *r.IsRequired,
		CanRemove:   r.CanRemove != nil && *r.CanRemove,
		CanIncrease: r.CanIncrease != nil && *r.CanIncrease,
		CanDecrease: r.CanDecrease != nil && *r.CanDecrease,
		MinQuantity: r.MinQuantity,
		MaxQuantity: r.MaxQuantity,
	}
	if r.DefaultQuantity != nil {
		item.DefaultQuantity = *r.DefaultQuantity
	}
	if r.BasePrice != nil {
		item.BasePrice = *r.BasePrice
	}
	if r.AdditionalPrice != nil {
		item.AdditionalPrice = *r.AdditionalPrice
	}
	return item
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
