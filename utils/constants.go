// File: utils/constants.go
package utils

// WeekCachePrefix is the prefix used for Redis weekly template cache keys.
const WeekCachePrefix = "week:"

// DayLayout is the storage and map-key format of a calendar day.
const DayLayout = "2006-01-02"
