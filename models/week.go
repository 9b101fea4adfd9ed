package models

import (
	"encoding/json"
	"time"
)

// WeeklyTemplate holds a user's recurring free minutes per weekday.
// FreeMinutes is indexed by time.Weekday (0 = Sunday .. 6 = Saturday).
type WeeklyTemplate struct {
	ID          string    `bson:"id" json:"id"`
	UserID      string    `bson:"userId" json:"userId"`
	FreeMinutes [7]int    `bson:"freeMinutes" json:"freeMinutes"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time `bson:"updatedAt" json:"updatedAt"`
}

// MinutesOn returns the template capacity for a weekday.
func (w WeeklyTemplate) MinutesOn(day time.Weekday) int {
	return w.FreeMinutes[day]
}

// UnmarshalJSON also accepts the named per-day fields (mondayFreeMinutes etc.).
// Named fields take precedence over the array.
func (w *WeeklyTemplate) UnmarshalJSON(data []byte) error {
	type plain WeeklyTemplate
	var raw struct {
		plain
		Sunday    *int `json:"sundayFreeMinutes"`
		Monday    *int `json:"mondayFreeMinutes"`
		Tuesday   *int `json:"tuesdayFreeMinutes"`
		Wednesday *int `json:"wednesdayFreeMinutes"`
		Thursday  *int `json:"thursdayFreeMinutes"`
		Friday    *int `json:"fridayFreeMinutes"`
		Saturday  *int `json:"saturdayFreeMinutes"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*w = WeeklyTemplate(raw.plain)
	for day, v := range [7]*int{raw.Sunday, raw.Monday, raw.Tuesday, raw.Wednesday, raw.Thursday, raw.Friday, raw.Saturday} {
		if v != nil {
			w.FreeMinutes[day] = *v
		}
	}
	return nil
}
