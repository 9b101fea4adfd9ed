package planner

import (
	"time"

	"studyplanner/models"
	"studyplanner/utils"
)

// IndexOverrides maps live overrides by day key so the page walk needs no lookups.
func IndexOverrides(days []models.DayOverride) map[string]models.DayOverride {
	byDate := make(map[string]models.DayOverride, len(days))
	for _, d := range days {
		if d.Deleted {
			continue
		}
		byDate[d.Date] = d
	}
	return byDate
}

// Resolve returns the free minutes of date: the override when one exists, otherwise
// the template capacity for its weekday. Override values may be negative.
func Resolve(date time.Time, tpl models.WeeklyTemplate, overridesByDate map[string]models.DayOverride) int {
	if o, ok := overridesByDate[utils.DayKey(date)]; ok && !o.Deleted {
		return o.FreeMinutes
	}
	return tpl.MinutesOn(date.Weekday())
}
