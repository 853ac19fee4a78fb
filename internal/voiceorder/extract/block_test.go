package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindBlock(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		status Status
		dinner string
	}{
		{name: "no marker", text: "Which dinner would you like?", status: StatusAbsent},
		{name: "valid", text: `Great! [ORDER_COMPLETE]{"dinnerName":"French Dinner"}[/ORDER_COMPLETE]`, status: StatusValid, dinner: "French Dinner"},
		{name: "valid multiline", text: "Done.\n[ORDER_COMPLETE]\n{\n  \"dinnerName\": \"French Dinner\"\n}\n[/ORDER_COMPLETE]\nEnjoy!", status: StatusValid, dinner: "French Dinner"},
		{name: "fenced", text: "[ORDER_COMPLETE]\n```json\n{\"dinnerName\":\"French Dinner\"}\n```\n[/ORDER_COMPLETE]", status: StatusValid, dinner: "French Dinner"},
		{name: "missing end", text: `[ORDER_COMPLETE]{"dinnerName":"French Dinner"}`, status: StatusMalformed},
		{name: "end before start", text: `[/ORDER_COMPLETE] oops [ORDER_COMPLETE]{"dinnerName":"x"}`, status: StatusMalformed},
		{name: "stray end before a complete block", text: `[/ORDER_COMPLETE] x [ORDER_COMPLETE]{"dinnerName":"French Dinner"}[/ORDER_COMPLETE]`, status: StatusMalformed},
		{name: "bad json", text: `[ORDER_COMPLETE]{"dinnerName": }[/ORDER_COMPLETE]`, status: StatusMalformed},
		{name: "not an object", text: `[ORDER_COMPLETE]["French Dinner"][/ORDER_COMPLETE]`, status: StatusMalformed},
		{name: "empty", text: `[ORDER_COMPLETE][/ORDER_COMPLETE]`, status: StatusMalformed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := FindBlock(tt.text)
			assert.Equal(t, tt.status, b.Status, "status %s", b.Status)
			if tt.status == StatusMalformed {
				assert.Error(t, b.Err)
			}
			if tt.status == StatusValid {
				require.NoError(t, b.Err)
				assert.Equal(t, tt.dinner, b.Payload.DinnerName.String())
			}
		})
	}
}

func TestStripBlock(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "no block", text: "  Hello there  ", want: "Hello there"},
		{name: "block in the middle", text: "Your order is set.\n[ORDER_COMPLETE]\n{\"a\":1}\n[/ORDER_COMPLETE]\nThank you!", want: "Your order is set.\n\nThank you!"},
		{name: "fenced block", text: "Done!\n```\n[ORDER_COMPLETE]{}[/ORDER_COMPLETE]\n```", want: "Done!"},
		{name: "dangling start", text: "Almost there [ORDER_COMPLETE]{\"a\":", want: "Almost there"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripBlock(tt.text))
		})
	}
}

func TestFindBlock_EndBeforeStartError(t *testing.T) {
	b := FindBlock(`[/ORDER_COMPLETE] x [ORDER_COMPLETE]{"dinnerName":"French Dinner"}[/ORDER_COMPLETE]`)

	require.Equal(t, StatusMalformed, b.Status)
	assert.ErrorIs(t, b.Err, ErrEndBeforeStart)
	assert.Empty(t, b.Payload.DinnerName.Or(""))
}
