package models

import "time"

// DayOverride is the remaining free time of one calendar day once an allocation
// has touched it. It supersedes the weekly template for that date.
type DayOverride struct {
	ID                 string    `bson:"id" json:"id"`
	UserID             string    `bson:"userId" json:"userId"`
	Date               string    `bson:"date" json:"date"` // e.g., "2025-02-25"
	FreeMinutes        int       `bson:"freeMinutes" json:"freeMinutes"`
	AppliedAllocations []string  `bson:"appliedAllocations,omitempty" json:"-"`
	Deleted            bool      `bson:"deleted" json:"-"`
	CreatedAt          time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time `bson:"updatedAt" json:"updatedAt"`
}

// FreeDayEntry is a resolved day in a free-days page.
type FreeDayEntry struct {
	Date        time.Time `json:"date"`
	FreeMinutes int       `json:"freeMinutes"`
}

// FreeDaysRequest is the body of a free-days page request.
type FreeDaysRequest struct {
	ExpirationDate string `json:"expirationDate" binding:"required"`
}
