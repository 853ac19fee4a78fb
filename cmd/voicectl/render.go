package main

import (
	"fmt"
	"io"
	"sort"

	"voice-ordering/internal/voiceorder"
)

func writeDraft(w io.Writer, d voiceorder.OrderDraft) {
	fmt.Fprintln(w, "--- order complete ---")
	fmt.Fprintf(w, "dinner:   %s\n", labelled(d.DinnerName, d.DinnerID))
	fmt.Fprintf(w, "style:    %s\n", labelled(d.StyleName, d.StyleID))
	fmt.Fprintf(w, "date:     %s\n", d.DeliveryDate)
	fmt.Fprintf(w, "address:  %s\n", d.DeliveryAddress)
	fmt.Fprintf(w, "card:     %s\n", maskCard(d.Payment.CardNumber))

	if len(d.Customizations) == 0 {
		return
	}
	ids := make([]string, 0, len(d.Customizations))
	for id := range d.Customizations {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	fmt.Fprintln(w, "items:")
	for _, id := range ids {
		fmt.Fprintf(w, "  %s x%d\n", id, d.Customizations[id])
	}
}

func labelled(name, id string) string {
	if id == "" {
		return name + " (unresolved)"
	}
	return fmt.Sprintf("%s [%s]", name, id)
}

// maskCard keeps the last four digits of a real card number.
func maskCard(number string) string {
	if number == voiceorder.PlaceholderOnFile || len(number) <= 4 {
		return number
	}
	masked := make([]byte, len(number))
	for i := range masked {
		masked[i] = '*'
	}
	copy(masked[len(number)-4:], number[len(number)-4:])
	return string(masked)
}
