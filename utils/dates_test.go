package utils

import (
	"testing"
	"time"
)

func TestStartOfDay(t *testing.T) {
	loc := time.FixedZone("test", 3*60*60)
	in := time.Date(2024, 3, 5, 17, 42, 9, 123, loc)

	got := StartOfDay(in)
	want := time.Date(2024, 3, 5, 0, 0, 0, 0, loc)
	if !got.Equal(want) {
		t.Errorf("StartOfDay() = %v, want %v", got, want)
	}
	if got.Location() != loc {
		t.Errorf("StartOfDay() changed location to %v", got.Location())
	}
}

func TestParseDay(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantKey string
		wantErr bool
	}{
		{name: "bare date", raw: "2024-01-08", wantKey: "2024-01-08"},
		{name: "local timestamp", raw: time.Date(2024, 1, 8, 15, 30, 0, 0, time.Local).Format(time.RFC3339), wantKey: "2024-01-08"},
		{name: "garbage", raw: "next tuesday", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDay(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDay(%q) expected error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDay(%q) returned unexpected error: %v", tt.raw, err)
			}
			if DayKey(got) != tt.wantKey {
				t.Errorf("ParseDay(%q) = %s, want %s", tt.raw, DayKey(got), tt.wantKey)
			}
			if got.Hour() != 0 || got.Minute() != 0 || got.Second() != 0 || got.Nanosecond() != 0 {
				t.Errorf("ParseDay(%q) = %v, want start of day", tt.raw, got)
			}
		})
	}
}

func TestSameDay(t *testing.T) {
	morning := time.Date(2024, 1, 8, 1, 0, 0, 0, time.Local)
	evening := time.Date(2024, 1, 8, 23, 0, 0, 0, time.Local)
	next := time.Date(2024, 1, 9, 0, 0, 0, 0, time.Local)

	if !SameDay(morning, evening) {
		t.Error("SameDay() = false, want true for the same calendar day")
	}
	if SameDay(evening, next) {
		t.Error("SameDay() = true, want false across midnight")
	}
}

func TestAddDaysKeepsMidnight(t *testing.T) {
	start := StartOfDay(time.Date(2024, 3, 1, 0, 0, 0, 0, time.Local))
	for i := 0; i < 60; i++ {
		d := AddDays(start, i)
		if d.Hour() != 0 || d.Minute() != 0 {
			t.Fatalf("AddDays(start, %d) = %v, want midnight", i, d)
		}
	}
}
