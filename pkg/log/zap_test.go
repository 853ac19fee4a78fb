package log

import (
	"context"
	"testing"
)

func TestSplitArgs(t *testing.T) {
	tests := []struct {
		name       string
		arg        []any
		wantMsg    string
		wantFields int
	}{
		{name: "empty", arg: nil, wantMsg: "", wantFields: 0},
		{name: "message only", arg: []any{"hello"}, wantMsg: "hello", wantFields: 0},
		{name: "message with pairs", arg: []any{"hello", "k", 1, "j", "v"}, wantMsg: "hello", wantFields: 4},
		{name: "odd trailing value", arg: []any{"failed: ", "boom"}, wantMsg: "failed: boom", wantFields: 0},
		{name: "non string first", arg: []any{42}, wantMsg: "42", wantFields: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, fields := splitArgs(tt.arg)
			if msg != tt.wantMsg {
				t.Errorf("expected message %q, got %q", tt.wantMsg, msg)
			}
			if len(fields) != tt.wantFields {
				t.Errorf("expected %d fields, got %d", tt.wantFields, len(fields))
			}
		})
	}
}

func TestInit(t *testing.T) {
	l := Init(ZapConfig{Level: "not-a-level", Mode: ModeProduction, Encoding: EncodingJSON})
	if l == nil {
		t.Fatal("expected logger")
	}
	l.Info(context.Background(), "structured", "key", "value")
	l.Debugf(context.Background(), "suppressed at info: %d", 1)

	NewNop().Error(context.Background(), "discarded")
}
