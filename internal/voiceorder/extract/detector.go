package extract

import (
	"strings"

	"voice-ordering/internal/voiceorder"
)

// IsComplete reports whether text carries a completion block and draft has a
// resolved dinner, a resolved style and a delivery date.
func IsComplete(text string, draft *voiceorder.OrderDraft) bool {
	return len(Missing(text, draft)) == 0
}

// Missing lists the completion conditions that do not hold, for diagnostics.
func Missing(text string, draft *voiceorder.OrderDraft) []string {
	var missing []string
	if !strings.Contains(text, voiceorder.StartMarker) {
		missing = append(missing, "marker")
	}
	if draft == nil {
		return append(missing, "draft")
	}
	if draft.DinnerID == "" {
		missing = append(missing, "dinner")
	}
	if draft.StyleID == "" {
		missing = append(missing, "style")
	}
	if strings.TrimSpace(draft.DeliveryDate) == "" {
		missing = append(missing, "delivery_date")
	}
	return missing
}
