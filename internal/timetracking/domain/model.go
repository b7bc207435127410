package domain

import (
	"errors"
	"time"
)

var ErrNotFound = errors.New("time entry not found")

type TimeEntry struct {
	ID          int        `json:"id"`
	ProjectID   *int       `json:"projectId,omitempty"`
	Description *string    `json:"description,omitempty"`
	StartTime   time.Time  `json:"startTime"`
	EndTime     *time.Time `json:"endTime,omitempty"`
	Duration    *int       `json:"duration,omitempty"`
	Billable    bool       `json:"billable"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	UserID      int        `json:"userId"`
}

type NewTimeEntry struct {
	ProjectID   *int
	Description *string
	StartTime   time.Time
	EndTime     *time.Time
	Duration    *int
	Billable    bool
	UserID      int
}

type TimeEntryPatch struct {
	ProjectID   *int
	Description *string
	StartTime   *time.Time
	EndTime     *time.Time
	Duration    *int
	Billable    *bool
}

// DeriveDuration computes the entry duration in whole minutes. A 135-minute
// span reports 135. Negative spans collapse to zero.
func DeriveDuration(start, end time.Time) int {
	d := int(end.Sub(start) / time.Minute)
	if d < 0 {
		return 0
	}
	return d
}
