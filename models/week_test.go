package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestWeeklyTemplateUnmarshalJSON(t *testing.T) {
	t.Run("array form", func(t *testing.T) {
		var w WeeklyTemplate
		if err := json.Unmarshal([]byte(`{"freeMinutes":[0,60,60,60,60,60,0]}`), &w); err != nil {
			t.Fatalf("Unmarshal returned unexpected error: %v", err)
		}
		if got := w.MinutesOn(time.Monday); got != 60 {
			t.Errorf("MinutesOn(Monday) = %d, want 60", got)
		}
		if got := w.MinutesOn(time.Sunday); got != 0 {
			t.Errorf("MinutesOn(Sunday) = %d, want 0", got)
		}
	})

	t.Run("named fields", func(t *testing.T) {
		body := `{"mondayFreeMinutes":10,"tuesdayFreeMinutes":20,"wednesdayFreeMinutes":30,
			"thursdayFreeMinutes":40,"fridayFreeMinutes":50,"saturdayFreeMinutes":60,"sundayFreeMinutes":70}`
		var w WeeklyTemplate
		if err := json.Unmarshal([]byte(body), &w); err != nil {
			t.Fatalf("Unmarshal returned unexpected error: %v", err)
		}
		want := [7]int{70, 10, 20, 30, 40, 50, 60}
		if w.FreeMinutes != want {
			t.Errorf("FreeMinutes = %v, want %v", w.FreeMinutes, want)
		}
	})

	t.Run("unset days default to zero", func(t *testing.T) {
		var w WeeklyTemplate
		if err := json.Unmarshal([]byte(`{"fridayFreeMinutes":45}`), &w); err != nil {
			t.Fatalf("Unmarshal returned unexpected error: %v", err)
		}
		want := [7]int{0, 0, 0, 0, 0, 45, 0}
		if w.FreeMinutes != want {
			t.Errorf("FreeMinutes = %v, want %v", w.FreeMinutes, want)
		}
	})
}
