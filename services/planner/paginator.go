package planner

import (
	"time"

	"studyplanner/models"
	"studyplanner/utils"
)

// PageStart returns the first day of a 1-indexed page.
func PageStart(today time.Time, pageNumber, pageSize int) time.Time {
	return utils.AddDays(utils.StartOfDay(today), (pageNumber-1)*pageSize)
}

// Paginate walks day by day from start, stopping before the deadline day or once
// pageSize entries are collected. Days with zero or negative capacity are kept.
func Paginate(
	start, deadlineExclusive time.Time,
	tpl models.WeeklyTemplate,
	overridesByDate map[string]models.DayOverride,
	pageSize int,
) []models.FreeDayEntry {
	if pageSize <= 0 {
		return []models.FreeDayEntry{}
	}

	day := utils.StartOfDay(start)
	end := utils.StartOfDay(deadlineExclusive.In(day.Location()))

	entries := make([]models.FreeDayEntry, 0, pageSize)
	for ; day.Before(end) && len(entries) < pageSize; day = utils.AddDays(day, 1) {
		entries = append(entries, models.FreeDayEntry{
			Date:        day,
			FreeMinutes: Resolve(day, tpl, overridesByDate),
		})
	}
	return entries
}
