package http

import "voice-ordering/internal/menu"

// --- Response DTOs ---

type menuItemResp struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	DefaultQuantity int     `json:"default_quantity"`
	Unit            string  `json:"unit,omitempty"`
	UnitPrice       float64 `json:"unit_price"`
	IsRequired      bool    `json:"is_required"`
	CanRemove       bool    `json:"can_remove"`
	CanIncrease     bool    `json:"can_increase"`
	CanDecrease     bool    `json:"can_decrease"`
	MinQuantity     *int    `json:"min_quantity,omitempty"`
	MaxQuantity     *int    `json:"max_quantity,omitempty"`
}

type dinnerResp struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Description   string         `json:"description,omitempty"`
	BasePrice     float64        `json:"base_price"`
	AllowedStyles []string       `json:"allowed_styles"`
	ImageURL      string         `json:"image_url,omitempty"`
	Items         []menuItemResp `json:"items"`
}

type styleResp struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	PriceModifier float64 `json:"price_modifier"`
	Details       string  `json:"details,omitempty"`
}

type menuResp struct {
	Dinners []dinnerResp `json:"dinners"`
	Styles  []styleResp  `json:"styles"`
}

func (h *handler) newMenuResp(snap menu.Snapshot) menuResp {
	resp := menuResp{
		Dinners: make([]dinnerResp, 0, len(snap.Dinners)),
		Styles:  make([]styleResp, 0, len(snap.Styles)),
	}

	for _, d := range snap.Dinners {
		allowed := d.AllowedStyles
		if allowed == nil {
			allowed = []string{}
		}
		dr := dinnerResp{
			ID:            d.ID,
			Name:          d.Name,
			Description:   d.Description,
			BasePrice:     d.BasePrice,
			AllowedStyles: allowed,
			ImageURL:      d.ImageURL,
			Items:         make([]menuItemResp, 0, len(snap.Items[d.ID])),
		}
		for _, item := range snap.Items[d.ID] {
			dr.Items = append(dr.Items, menuItemResp{
				ID:              item.ID,
				Name:            item.Name,
				DefaultQuantity: item.DefaultQuantity,
				Unit:            item.Unit,
				UnitPrice:       item.UnitPrice(),
				IsRequired:      item.IsRequired,
				CanRemove:       item.CanRemove,
				CanIncrease:     item.CanIncrease,
				CanDecrease:     item.CanDecrease,
				MinQuantity:     item.MinQuantity,
				MaxQuantity:     item.MaxQuantity,
			})
		}
		resp.Dinners = append(resp.Dinners, dr)
	}

	for _, s := range snap.Styles {
		resp.Styles = append(resp.Styles, styleResp{
			ID:            s.ID,
			Name:          s.Name,
			PriceModifier: s.PriceModifier,
			Details:       s.Details,
		})
	}
	return resp
}
