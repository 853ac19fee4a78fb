package datemath_test

import (
	"testing"
	"time"

	"voice-ordering/pkg/datemath"
)

func TestNewParser(t *testing.T) {
	_, err := datemath.NewParser("Asia/Seoul")
	if err != nil {
		t.Fatalf("unexpected error creating valid parser: %v", err)
	}

	_, err = datemath.NewParser("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestToday(t *testing.T) {
	parser, _ := datemath.NewParser("Asia/Seoul")

	// 2024-05-01 20:00 UTC is already 2024-05-02 in Seoul (UTC+9).
	now := time.Date(2024, 5, 1, 20, 0, 0, 0, time.UTC)
	if got := parser.Today(now); got != "2024-05-02" {
		t.Errorf("expected 2024-05-02, got %s", got)
	}
}

func TestIsAfterToday(t *testing.T) {
	parser, _ := datemath.NewParser("UTC")
	now := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)

	tests := []struct {
		name    string
		value   string
		want    bool
		wantErr bool
	}{
		{name: "Tomorrow", value: "2024-05-02", want: true},
		{name: "Today", value: "2024-05-01", want: false},
		{name: "Yesterday", value: "2024-04-30", want: false},
		{name: "Padded", value: " 2024-06-01 ", want: true},
		{name: "Not a date", value: "tomorrow", wantErr: true},
		{name: "Wrong layout", value: "05/02/2024", wantErr: true},
		{name: "Impossible day", value: "2024-02-30", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parser.IsAfterToday(tt.value, now)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error for %q", tt.value)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("IsAfterToday(%q) = %v, want %v", tt.value, got, tt.want)
			}
		})
	}
}
