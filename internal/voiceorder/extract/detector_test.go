package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voice-ordering/internal/voiceorder"
)

func TestIsComplete(t *testing.T) {
	const withMarker = "ok [ORDER_COMPLETE]{}[/ORDER_COMPLETE]"
	full := &voiceorder.OrderDraft{DinnerID: "1", StyleID: "s2", DeliveryDate: "2025-06-01"}

	tests := []struct {
		name    string
		text    string
		draft   *voiceorder.OrderDraft
		want    bool
		missing []string
	}{
		{name: "complete", text: withMarker, draft: full, want: true},
		{name: "no marker", text: "ok", draft: full, missing: []string{"marker"}},
		{name: "no draft", text: withMarker, missing: []string{"draft"}},
		{name: "no dinner", text: withMarker, draft: &voiceorder.OrderDraft{StyleID: "s2", DeliveryDate: "2025-06-01"}, missing: []string{"dinner"}},
		{name: "no style", text: withMarker, draft: &voiceorder.OrderDraft{DinnerID: "1", DeliveryDate: "2025-06-01"}, missing: []string{"style"}},
		{name: "no date", text: withMarker, draft: &voiceorder.OrderDraft{DinnerID: "1", StyleID: "s2", DeliveryDate: " "}, missing: []string{"delivery_date"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsComplete(tt.text, tt.draft))
			assert.Equal(t, tt.missing, Missing(tt.text, tt.draft))
		})
	}
}
