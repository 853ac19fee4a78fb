// Package prompt renders the system prompt that teaches the language model the
// menu, the business rules and the completion block protocol.
package prompt

import (
	"fmt"
	"strconv"
	"strings"

	"voice-ordering/internal/menu"
	"voice-ordering/internal/voiceorder"
)

// Input is everything the prompt depends on. Build never fetches anything.
type Input struct {
	CustomerName string
	Snapshot     menu.Snapshot
	// Today is the current date as YYYY-MM-DD in the service timezone.
	Today string
}

// Build renders the system prompt. Equal inputs produce identical output.
func Build(in Input) string {
	var b strings.Builder

	b.WriteString(roleSection)
	fmt.Fprintf(&b, blockSection,
		voiceorder.StartMarker,
		voiceorder.PlaceholderOnFile,
		voiceorder.PlaceholderOnFile, voiceorder.PlaceholderOnFile, voiceorder.PlaceholderOnFile,
		voiceorder.EndMarker,
	)
	b.WriteString(flowSection)

	fmt.Fprintf(&b, "\nCustomer:\n- Name: %s\n", in.CustomerName)

	writeDinners(&b, in.Snapshot)
	writeStyles(&b, in.Snapshot.Styles)
	writeCustomizations(&b, in.Snapshot)

	b.WriteString(strictMatchingSection)
	b.WriteString(pricingSection)
	fmt.Fprintf(&b, completionSection, voiceorder.PlaceholderOnFile)
	fmt.Fprintf(&b, dateSection, in.Today)
	b.WriteString(closingLine)

	return b.String()
}

func writeDinners(b *strings.Builder, snap menu.Snapshot) {
	b.WriteString("\nAvailable dinners:\n")
	if len(snap.Dinners) == 0 {
		b.WriteString("- (none available right now)\n")
		return
	}

	for _, d := range snap.Dinners {
		items := snap.Items[d.ID]
		fmt.Fprintf(b, "- %s (price: %s)\n", d.Name, formatPrice(d.BasePrice))
		fmt.Fprintf(b, "  Description: %s\n", describeDinner(d, items))
		if len(items) > 0 {
			parts := make([]string, 0, len(items))
			for _, item := range items {
				if item.DefaultQuantity > 0 {
					parts = append(parts, fmt.Sprintf("%s %d%s", item.Name, item.DefaultQuantity, unitSuffix(item.Unit)))
				} else {
					parts = append(parts, item.Name+" (optional)")
				}
			}
			fmt.Fprintf(b, "  Default composition: %s\n", strings.Join(parts, ", "))
		}
		fmt.Fprintf(b, "  Allowed styles: %s\n", strings.Join(allowedStyleNames(d, snap.Styles), ", "))
	}
}

func writeStyles(b *strings.Builder, styles []menu.Style) {
	b.WriteString("\nServing styles:\n")
	for _, s := range styles {
		fmt.Fprintf(b, "- %s (extra: %s)\n", s.Name, formatPrice(s.PriceModifier))
		if s.Details != "" {
			fmt.Fprintf(b, "  Details: %s\n", s.Details)
		}
	}
}

func writeCustomizations(b *strings.Builder, snap menu.Snapshot) {
	b.WriteString("\nCustomizable items per dinner:\n")
	for _, d := range snap.Dinners {
		fmt.Fprintf(b, "- %s:\n", d.Name)
		items := snap.Items[d.ID]
		if len(items) == 0 {
			b.WriteString("  * no customizable items\n")
		}
		for _, item := range items {
			fmt.Fprintf(b, "  * %s\n", describeItem(item))
		}
		b.WriteString("  * Nothing else is offered with this dinner. Never add other items; tell the customer they are unavailable.\n")
	}
}

func describeDinner(d menu.Dinner, items []menu.MenuItem) string {
	if d.Description != "" {
		return d.Description
	}
	if len(items) == 0 {
		return d.Name
	}
	parts := make([]string, 0, len(items))
	for _, item := range items {
		if item.DefaultQuantity > 0 {
			parts = append(parts, fmt.Sprintf("%s %d%s", item.Name, item.DefaultQuantity, unitSuffix(item.Unit)))
		} else {
			parts = append(parts, item.Name)
		}
	}
	return "Served with " + strings.Join(parts, ", ") + "."
}

func describeItem(item menu.MenuItem) string {
	unit := unitSuffix(item.Unit)

	var b strings.Builder
	fmt.Fprintf(&b, "%s - default %d%s", item.Name, item.DefaultQuantity, unit)

	if item.IsRequired {
		b.WriteString(", required")
	} else {
		b.WriteString(", optional")
	}
	if item.CanRemove {
		b.WriteString(", removable")
	} else {
		b.WriteString(", not removable")
	}

	switch {
	case item.CanIncrease && item.CanDecrease:
		b.WriteString(", can increase/decrease")
	case item.CanIncrease:
		b.WriteString(", can increase")
	case item.CanDecrease:
		b.WriteString(", can decrease")
	}

	if item.MinQuantity != nil || item.MaxQuantity != nil {
		var limits []string
		if item.MinQuantity != nil {
			limits = append(limits, fmt.Sprintf("min %d%s", *item.MinQuantity, unit))
		}
		if item.MaxQuantity != nil {
			limits = append(limits, fmt.Sprintf("max %d%s", *item.MaxQuantity, unit))
		}
		fmt.Fprintf(&b, " (%s)", strings.Join(limits, ", "))
	}

	if price := item.UnitPrice(); price > 0 {
		per := "unit"
		if item.Unit != "" {
			per = item.Unit
		}
		fmt.Fprintf(&b, ", %s per extra %s", formatPrice(price), per)
	}
	return b.String()
}

// allowedStyleNames maps a dinner's allowed style references (ids or names) to
// catalog style names. An empty list allows every style.
func allowedStyleNames(d menu.Dinner, styles []menu.Style) []string {
	if len(d.AllowedStyles) == 0 {
		names := make([]string, 0, len(styles))
		for _, s := range styles {
			names = append(names, s.Name)
		}
		if len(names) == 0 {
			return []string{"any"}
		}
		return names
	}

	names := make([]string, 0, len(d.AllowedStyles))
	for _, ref := range d.AllowedStyles {
		name := ref
		for _, s := range styles {
			if s.ID == ref || strings.EqualFold(s.Name, ref) {
				name = s.Name
				break
			}
		}
		names = append(names, name)
	}
	return names
}

func unitSuffix(unit string) string {
	if unit == "" {
		return ""
	}
	return " " + unit
}

// formatPrice renders a whole-currency amount with thousands separators.
func formatPrice(v float64) string {
	n := int64(v + 0.5)
	if v < 0 {
		n = int64(v - 0.5)
	}
	neg := n < 0
	if neg {
		n = -n
	}

	s := strconv.FormatInt(n, 10)
	var out strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			out.WriteByte(',')
		}
		out.WriteRune(r)
	}

	if neg {
		return "-" + CurrencySymbol + out.String()
	}
	return CurrencySymbol + out.String()
}
