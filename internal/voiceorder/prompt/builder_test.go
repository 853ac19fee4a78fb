package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"voice-ordering/internal/menu"
	"voice-ordering/internal/voiceorder"
)

func intPtr(v int) *int { return &v }

func testSnapshot() menu.Snapshot {
	return menu.Snapshot{
		Dinners: []menu.Dinner{
			{ID: "1", Name: "French Dinner", BasePrice: 48000, AllowedStyles: []string{"s1", "grand"}},
			{ID: "2", Name: "Valentine Dinner", BasePrice: 52000, Description: "Heart-shaped plates with wine and steak."},
		},
		Styles: []menu.Style{
			{ID: "s1", Name: "simple", PriceModifier: 0},
			{ID: "s2", Name: "grand", PriceModifier: 15000, Details: "Ceramic plates and cups."},
		},
		Items: map[string][]menu.MenuItem{
			"1": {
				{ID: "10", Name: "Steak", DefaultQuantity: 1, Unit: "piece", IsRequired: true},
				{ID: "11", Name: "Coffee", DefaultQuantity: 1, Unit: "cup", CanRemove: true, CanIncrease: true, CanDecrease: true,
					MinQuantity: intPtr(0), MaxQuantity: intPtr(5), BasePrice: 3000},
				{ID: "12", Name: "Baguette", DefaultQuantity: 0, AdditionalPrice: 2500, CanIncrease: true},
			},
		},
	}
}

func TestBuildDeterministic(t *testing.T) {
	in := Input{CustomerName: "Minji", Snapshot: testSnapshot(), Today: "2025-05-31"}
	assert.Equal(t, Build(in), Build(in))
}

func TestBuildSections(t *testing.T) {
	out := Build(Input{CustomerName: "Minji", Snapshot: testSnapshot(), Today: "2025-05-31"})

	tests := []struct {
		name string
		want string
	}{
		{name: "start marker", want: voiceorder.StartMarker},
		{name: "end marker", want: voiceorder.EndMarker},
		{name: "payload fields", want: `"paymentInfo": {"cardNumber": "ON_FILE", "cardExpiry": "ON_FILE", "cardCvc": "ON_FILE"}`},
		{name: "date layout", want: `"deliveryDate": "YYYY-MM-DD"`},
		{name: "customer", want: "- Name: Minji"},
		{name: "dinner price", want: "- French Dinner (price: ₩48,000)"},
		{name: "generated description", want: "Served with Steak 1 piece, Coffee 1 cup, Baguette."},
		{name: "catalog description", want: "Heart-shaped plates with wine and steak."},
		{name: "default composition", want: "Default composition: Steak 1 piece, Coffee 1 cup, Baguette (optional)"},
		{name: "allowed styles by id and name", want: "Allowed styles: simple, grand"},
		{name: "style modifier", want: "- grand (extra: ₩15,000)"},
		{name: "style details", want: "Details: Ceramic plates and cups."},
		{name: "item limits", want: "Coffee - default 1 cup, optional, removable, can increase/decrease (min 0 cup, max 5 cup), ₩3,000 per extra cup"},
		{name: "additional price wins", want: "₩2,500 per extra unit"},
		{name: "final quantity rule", want: "FINAL quantity of EVERY item"},
		{name: "example", want: `{"Steak": 1, "Salad": 1, "Coffee": 2, "Wine": 0}`},
		{name: "illegal style refusal", want: "does not allow, refuse it"},
		{name: "hidden block", want: "never shown to the customer"},
		{name: "pre-filled details", want: "Do not ask for them."},
		{name: "future date", want: "strictly after today"},
		{name: "today literal", want: "Today's date: 2025-05-31"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, out, tt.want)
		})
	}
}

func TestBuildEmptyAllowedStylesListsAll(t *testing.T) {
	out := Build(Input{CustomerName: "A", Snapshot: testSnapshot(), Today: "2025-05-31"})

	idx := strings.Index(out, "- Valentine Dinner")
	if idx < 0 {
		t.Fatalf("valentine dinner missing from prompt")
	}
	assert.Contains(t, out[idx:], "Allowed styles: simple, grand")
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "₩0", formatPrice(0))
	assert.Equal(t, "₩999", formatPrice(999))
	assert.Equal(t, "₩1,000", formatPrice(1000))
	assert.Equal(t, "₩1,234,567", formatPrice(1234567))
	assert.Equal(t, "-₩5,000", formatPrice(-5000))
}
