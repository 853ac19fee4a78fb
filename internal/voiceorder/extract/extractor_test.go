package extract

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voice-ordering/internal/menu"
	"voice-ordering/internal/voiceorder"
)

// recordingLogger keeps formatted warnings and errors for assertions.
type recordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func (m *recordingLogger) record(template string, args ...any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.lines = append(m.lines, fmt.Sprintf(template, args...))
}

func (m *recordingLogger) contains(sub string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, l := range m.lines {
		if strings.Contains(l, sub) {
			return true
		}
	}
	return false
}

func (m *recordingLogger) Debug(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Debugf(ctx context.Context, format string, args ...any)  {}
func (m *recordingLogger) Info(ctx context.Context, args ...any)                   {}
func (m *recordingLogger) Infof(ctx context.Context, format string, args ...any)   {}
func (m *recordingLogger) Warn(ctx context.Context, args ...any)                   {}
func (m *recordingLogger) Warnf(ctx context.Context, format string, args ...any)   { m.record(format, args...) }
func (m *recordingLogger) Error(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Errorf(ctx context.Context, format string, args ...any)  { m.record(format, args...) }
func (m *recordingLogger) DPanic(ctx context.Context, args ...any)                 {}
func (m *recordingLogger) DPanicf(ctx context.Context, format string, args ...any) {}
func (m *recordingLogger) Panic(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Panicf(ctx context.Context, format string, args ...any)  {}
func (m *recordingLogger) Fatal(ctx context.Context, args ...any)                  {}
func (m *recordingLogger) Fatalf(ctx context.Context, format string, args ...any)  {}

type fakeCatalog struct {
	dinners  []menu.Dinner
	styles   []menu.Style
	items    map[string][]menu.MenuItem
	itemsErr error
}

func (f *fakeCatalog) ListDinners(context.Context) ([]menu.Dinner, error) { return f.dinners, nil }
func (f *fakeCatalog) ListStyles(context.Context) ([]menu.Style, error)   { return f.styles, nil }
func (f *fakeCatalog) ListMenuItems(_ context.Context, id string) ([]menu.MenuItem, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	return f.items[id], nil
}

func newCatalog() *fakeCatalog {
	return &fakeCatalog{
		dinners: []menu.Dinner{
			{ID: "d-french", Name: "French Dinner", AllowedStyles: []string{"simple", "grand"}},
			{ID: "d-valentine", Name: "Valentine Dinner", AllowedStyles: []string{"st-2", "st-3"}},
			{ID: "d-english", Name: "English Dinner"},
		},
		styles: []menu.Style{
			{ID: "st-1", Name: "simple"},
			{ID: "st-2", Name: "grand"},
			{ID: "st-3", Name: "deluxe"},
		},
		items: map[string][]menu.MenuItem{
			"d-french": {
				{ID: "i-steak", Name: "Steak", DefaultQuantity: 1},
				{ID: "i-salad", Name: "Salad", DefaultQuantity: 1},
				{ID: "i-coffee", Name: "Coffee", DefaultQuantity: 1},
				{ID: "i-wine", Name: "Wine", DefaultQuantity: 1},
			},
			"d-valentine": {
				{ID: "i-vwine", Name: "Wine", DefaultQuantity: 1},
				{ID: "i-vsteak", Name: "Steak", DefaultQuantity: 1},
			},
		},
	}
}

func history(assistant ...string) []voiceorder.Turn {
	turns := []voiceorder.Turn{
		{Role: voiceorder.RoleSystem, Text: "prompt"},
		{Role: voiceorder.RoleAssistant, Text: "Hello!"},
	}
	for _, a := range assistant {
		turns = append(turns,
			voiceorder.Turn{Role: voiceorder.RoleUser, Text: "..."},
			voiceorder.Turn{Role: voiceorder.RoleAssistant, Text: a},
		)
	}
	return turns
}

func block(payload string) string {
	return "Your order is ready.\n[ORDER_COMPLETE]\n" + payload + "\n[/ORDER_COMPLETE]"
}

func TestExtractFrenchDinnerExample(t *testing.T) {
	e := New(&recordingLogger{}, newCatalog(), nil)

	reply := block(`{"dinnerName":"French Dinner","styleName":"grand","deliveryDate":"2025-06-01","customizations":{"Coffee":2,"Wine":0}}`)
	res := e.Extract(context.Background(), history(reply))

	require.Equal(t, StatusValid, res.Block.Status)
	require.NotNil(t, res.Draft)
	assert.Equal(t, "d-french", res.Draft.DinnerID)
	assert.Equal(t, "st-2", res.Draft.StyleID)
	assert.Equal(t, "2025-06-01", res.Draft.DeliveryDate)
	assert.Equal(t, map[string]int{"i-steak": 1, "i-salad": 1, "i-coffee": 2, "i-wine": 0}, res.Draft.Customizations)
	assert.Equal(t, voiceorder.PlaceholderOnFile, res.Draft.DeliveryAddress)
	assert.Equal(t, voiceorder.PlaceholderOnFile, res.Draft.Payment.CardNumber)
	assert.True(t, IsComplete(reply, res.Draft))
}

func TestExtractLatestAssistantOnly(t *testing.T) {
	e := New(&recordingLogger{}, newCatalog(), nil)
	ctx := context.Background()

	earlier := block(`{"dinnerName":"French Dinner","styleName":"simple","deliveryDate":"2025-06-01"}`)

	res := e.Extract(ctx, history(earlier, "Anything else?"))
	assert.Equal(t, StatusAbsent, res.Block.Status)
	assert.Nil(t, res.Draft)

	latest := block(`{"dinnerName":"English Dinner","styleName":"deluxe","deliveryDate":"2025-07-01"}`)
	a := e.Extract(ctx, history("first", latest))
	b := e.Extract(ctx, history(earlier, "something else", latest))
	assert.Equal(t, a, b)

	res = e.Extract(ctx, []voiceorder.Turn{{Role: voiceorder.RoleUser, Text: "hi"}})
	assert.Equal(t, StatusAbsent, res.Block.Status)
}

func TestExtractDinnerAliases(t *testing.T) {
	e := New(&recordingLogger{}, newCatalog(), nil)

	for _, name := range []string{"  valentine dinner ", "Valentine Dinner", "VALENTINEDINNER", "발렌타인 디너", "발렌타인디너"} {
		t.Run(name, func(t *testing.T) {
			res := e.Extract(context.Background(), history(block(fmt.Sprintf(`{"dinnerName":%q}`, name))))
			require.NotNil(t, res.Draft)
			assert.Equal(t, "d-valentine", res.Draft.DinnerID)
		})
	}
}

func TestExtractStyleResolution(t *testing.T) {
	e := New(&recordingLogger{}, newCatalog(), nil)

	tests := []struct {
		style string
		want  string
	}{
		{style: "Grand", want: "st-2"},
		{style: "그랜드 스타일", want: "st-2"},
		{style: "delu", want: "st-3"},
		{style: "royal", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.style, func(t *testing.T) {
			res := e.Extract(context.Background(), history(block(fmt.Sprintf(`{"dinnerName":"English Dinner","styleName":%q}`, tt.style))))
			require.NotNil(t, res.Draft)
			assert.Equal(t, tt.want, res.Draft.StyleID)
		})
	}
}

func TestExtractIllegalStyle(t *testing.T) {
	l := &recordingLogger{}
	e := New(l, newCatalog(), nil)

	// French Dinner lists styles by name; Valentine Dinner lists them by id.
	for _, tc := range []struct{ dinner, style string }{
		{dinner: "French Dinner", style: "deluxe"},
		{dinner: "Valentine Dinner", style: "simple"},
	} {
		reply := block(fmt.Sprintf(`{"dinnerName":%q,"styleName":%q,"deliveryDate":"2025-06-01"}`, tc.dinner, tc.style))
		res := e.Extract(context.Background(), history(reply))

		require.NotNil(t, res.Draft)
		assert.NotEmpty(t, res.Draft.DinnerID, "dinner stays resolved")
		assert.Empty(t, res.Draft.StyleID)
		assert.Equal(t, tc.style, res.Draft.StyleName)
		assert.False(t, IsComplete(reply, res.Draft))
	}
	assert.True(t, l.contains("is not allowed"))

	res := e.Extract(context.Background(), history(block(`{"dinnerName":"Valentine Dinner","styleName":"deluxe"}`)))
	assert.Equal(t, "st-3", res.Draft.StyleID, "allowed by id")
}

func TestExtractCustomizations(t *testing.T) {
	l := &recordingLogger{}
	e := New(l, newCatalog(), nil)

	reply := block(`{"dinnerName":"French Dinner","customizations":{"Coffee":"3","Champagne":1,"Salad":-2,"Wine":1.5}}`)
	res := e.Extract(context.Background(), history(reply))

	require.NotNil(t, res.Draft)
	assert.Equal(t, map[string]int{"i-steak": 1, "i-salad": 1, "i-coffee": 3, "i-wine": 1}, res.Draft.Customizations)
	assert.True(t, l.contains(`"Champagne" is not an item`))
	assert.True(t, l.contains(`invalid quantity -2 for "Salad"`))

	res = e.Extract(context.Background(), history(block(`{"dinnerName":"French Dinner"}`)))
	assert.Len(t, res.Draft.Customizations, 4, "defaults are seeded without customizations")

	res = e.Extract(context.Background(), history(block(`{"dinnerName":"Unknown Dinner","customizations":{"Coffee":2}}`)))
	assert.Empty(t, res.Draft.DinnerID)
	assert.Empty(t, res.Draft.Customizations, "no dinner, no customizations")
}

func TestExtractItemsUnavailable(t *testing.T) {
	catalog := newCatalog()
	catalog.itemsErr = errors.New("db down")
	e := New(&recordingLogger{}, catalog, nil)

	reply := block(`{"dinnerName":"French Dinner","styleName":"grand","deliveryDate":"2025-06-01"}`)
	res := e.Extract(context.Background(), history(reply))

	require.NotNil(t, res.Draft)
	assert.Empty(t, res.Draft.DinnerID)
	assert.False(t, IsComplete(reply, res.Draft))
}

func TestExtractMalformedIsLogged(t *testing.T) {
	l := &recordingLogger{}
	e := New(l, newCatalog(), nil)

	res := e.Extract(context.Background(), history(`[ORDER_COMPLETE]{"dinnerName":`))
	assert.Equal(t, StatusMalformed, res.Block.Status)
	assert.Nil(t, res.Draft)
	assert.True(t, l.contains("malformed completion block"))
}

func TestExtractCustomAliases(t *testing.T) {
	aliases := DefaultAliasTable()
	aliases.Add(KindDinner, map[string]string{"date night special": "Valentine Dinner"})
	e := New(&recordingLogger{}, newCatalog(), aliases)

	res := e.Extract(context.Background(), history(block(`{"dinnerName":"Date Night Special"}`)))
	require.NotNil(t, res.Draft)
	assert.Equal(t, "d-valentine", res.Draft.DinnerID)
	assert.Equal(t, "Valentine Dinner", res.Draft.DinnerName)
}
