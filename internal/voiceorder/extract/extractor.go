// Package extract turns the latest assistant reply into an order draft and
// decides whether that draft is a finished order.
package extract

import (
	"context"
	"sort"
	"strings"

	"voice-ordering/internal/menu"
	"voice-ordering/internal/voiceorder"
	"voice-ordering/pkg/log"
)

// Catalog is the read side of the menu the extractor resolves names against.
type Catalog interface {
	ListDinners(ctx context.Context) ([]menu.Dinner, error)
	ListStyles(ctx context.Context) ([]menu.Style, error)
	ListMenuItems(ctx context.Context, dinnerID string) ([]menu.MenuItem, error)
}

// Result is the outcome of one extraction. Draft is nil unless Block is valid.
type Result struct {
	Block Block
	Draft *voiceorder.OrderDraft
}

type Extractor struct {
	l       log.Logger
	catalog Catalog
	aliases *AliasTable
}

func New(l log.Logger, catalog Catalog, aliases *AliasTable) *Extractor {
	if aliases == nil {
		aliases = DefaultAliasTable()
	}
	return &Extractor{l: l, catalog: catalog, aliases: aliases}
}

// Extract reads the most recent assistant turn only. Business mismatches leave
// draft fields unresolved and are logged, never returned.
func (e *Extractor) Extract(ctx context.Context, history []voiceorder.Turn) Result {
	text, ok := latestAssistant(history)
	if !ok {
		return Result{Block: Block{Status: StatusAbsent}}
	}

	block := FindBlock(text)
	switch block.Status {
	case StatusAbsent:
		return Result{Block: block}
	case StatusMalformed:
		e.l.Warnf(ctx, "extract.Extract: malformed completion block: %v", block.Err)
		return Result{Block: block}
	}

	draft := e.buildDraft(ctx, block.Payload)
	return Result{Block: block, Draft: &draft}
}

func latestAssistant(history []voiceorder.Turn) (string, bool) {
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == voiceorder.RoleAssistant {
			return history[i].Text, true
		}
	}
	return "", false
}

func (e *Extractor) buildDraft(ctx context.Context, p Payload) voiceorder.OrderDraft {
	draft := voiceorder.NewOrderDraft()
	draft.DeliveryDate = p.DeliveryDate.String()
	draft.DeliveryAddress = p.Address()
	draft.Payment = p.Payment()

	var dinner menu.Dinner
	if p.DinnerName != "" {
		draft.DinnerName = e.aliases.Canonical(KindDinner, p.DinnerName.String())
		if d, ok := e.resolveDinner(ctx, draft.DinnerName); ok {
			dinner = d
			draft.DinnerID = d.ID
		}
	}

	if p.StyleName != "" {
		draft.StyleName = e.aliases.Canonical(KindStyle, p.StyleName.String())
		if s, ok := e.resolveStyle(ctx, draft.StyleName); ok {
			draft.StyleID = s.ID
			if draft.DinnerID != "" && !styleAllowed(dinner, s) {
				e.l.Warnf(ctx, "extract.buildDraft: style %q is not allowed for dinner %q", s.Name, dinner.Name)
				draft.StyleID = ""
			}
		}
	}

	if draft.DinnerID != "" {
		items, err := e.catalog.ListMenuItems(ctx, draft.DinnerID)
		if err != nil {
			// Without the item list the customization map cannot be seeded.
			e.l.Errorf(ctx, "extract.buildDraft: list menu items for %s: %v", draft.DinnerID, err)
			draft.DinnerID = ""
		} else {
			draft.Customizations = e.customize(ctx, items, p.Customizations)
		}
	}

	return draft
}

func (e *Extractor) resolveDinner(ctx context.Context, name string) (menu.Dinner, bool) {
	dinners, err := e.catalog.ListDinners(ctx)
	if err != nil {
		e.l.Errorf(ctx, "extract.resolveDinner: %v", err)
		return menu.Dinner{}, false
	}

	d, ok := resolve(dinners, func(d menu.Dinner) string { return d.Name }, name, dinnerTiers)
	if !ok {
		e.l.Warnf(ctx, "extract.resolveDinner: no dinner matches %q", name)
	}
	return d, ok
}

func (e *Extractor) resolveStyle(ctx context.Context, name string) (menu.Style, bool) {
	styles, err := e.catalog.ListStyles(ctx)
	if err != nil {
		e.l.Errorf(ctx, "extract.resolveStyle: %v", err)
		return menu.Style{}, false
	}

	s, ok := resolve(styles, func(s menu.Style) string { return s.Name }, name, styleTiers)
	if !ok {
		e.l.Warnf(ctx, "extract.resolveStyle: no style matches %q", name)
	}
	return s, ok
}

// styleAllowed checks the dinner's allowed list by style id and by name.
// An empty list allows every style.
func styleAllowed(d menu.Dinner, s menu.Style) bool {
	if len(d.AllowedStyles) == 0 {
		return true
	}
	for _, ref := range d.AllowedStyles {
		ref = strings.TrimSpace(ref)
		if ref == s.ID || strings.EqualFold(ref, s.Name) {
			return true
		}
	}
	return false
}

// customize seeds every item at its default quantity, then applies the
// requested quantities for items matched by exact name.
func (e *Extractor) customize(ctx context.Context, items []menu.MenuItem, requested Customizations) map[string]int {
	out := make(map[string]int, len(items))
	for _, item := range items {
		out[item.ID] = item.DefaultQuantity
	}

	names := make([]string, 0, len(requested))
	for name := range requested {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		qty := requested[name]
		item, ok := findItem(items, name)
		if !ok {
			e.l.Warnf(ctx, "extract.customize: %q is not an item of this dinner", name)
			continue
		}
		if !qty.Valid {
			e.l.Warnf(ctx, "extract.customize: invalid quantity %s for %q", qty.Raw, name)
			continue
		}
		out[item.ID] = qty.Value
	}
	return out
}

func findItem(items []menu.MenuItem, name string) (menu.MenuItem, bool) {
	name = strings.TrimSpace(name)
	for _, item := range items {
		if strings.TrimSpace(item.Name) == name {
			return item, true
		}
	}
	return menu.MenuItem{}, false
}
