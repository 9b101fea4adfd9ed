package models

import "time"

// PlannedAllocation assigns part of a homework's duration to one day.
// ID doubles as the idempotency key of the matching day decrement.
type PlannedAllocation struct {
	ID      string    `bson:"id" json:"id"`
	Date    time.Time `bson:"date" json:"date"`
	Minutes int       `bson:"minutes" json:"minutes"`
}

type Homework struct {
	ID             string              `bson:"id" json:"id"`
	UserID         string              `bson:"userId" json:"userId"`
	SubjectID      string              `bson:"subjectId" json:"subjectId"`
	Name           string              `bson:"name" json:"name"`
	Description    string              `bson:"description,omitempty" json:"description,omitempty"`
	Duration       int                 `bson:"duration" json:"duration"` // minutes
	ExpirationDate time.Time           `bson:"expirationDate" json:"expirationDate"`
	Completed      bool                `bson:"completed" json:"completed"`
	Deleted        bool                `bson:"deleted" json:"-"`
	PlannedDates   []PlannedAllocation `bson:"plannedDates" json:"plannedDates"`
	CreatedAt      time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt      time.Time           `bson:"updatedAt" json:"updatedAt"`
}

type PlannedDateInput struct {
	Date    string `json:"date" binding:"required"`
	Minutes int    `json:"minutes"`
}

// CreateHomeworkRequest is the homework creation payload.
type CreateHomeworkRequest struct {
	Name           string             `json:"name" binding:"required"`
	SubjectID      string             `json:"subjectId" binding:"required"`
	Duration       int                `json:"duration"`
	Description    string             `json:"description"`
	ExpirationDate string             `json:"expirationDate" binding:"required"`
	PlannedDates   []PlannedDateInput `json:"plannedDates" binding:"dive"`
}
