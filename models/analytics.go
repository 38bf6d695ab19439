package models

import (
	"time"
)

// DailyActivity combines an employee's session for a day with the latest activity rows.
// Session is nil when the employee did not send a heartbeat that day.
type DailyActivity struct {
	Date       time.Time
	Session    *WorkSession
	Activities []*ActivityLog
}

type ProductivitySummary struct {
	Date            time.Time
	ActiveEmployees int
	TotalEmployees  int
	AvgProductivity float64
	TotalWorkTime   float64
	TotalIdleTime   float64
}

// SessionTotals is the raw aggregate over one day's work sessions
type SessionTotals struct {
	SessionCount    int     `db:"session_count"`
	ActiveEmployees int     `db:"active_employees"`
	ProductivitySum float64 `db:"productivity_sum"`
	ActiveTimeSum   float64 `db:"active_time_sum"`
	IdleTimeSum     float64 `db:"idle_time_sum"`
}

// ApplicationUsage is the summed duration of one (application, category) group
type ApplicationUsage struct {
	ApplicationName string            `db:"application_name"`
	Category        *ActivityCategory `db:"category"`
	TotalSeconds    float64           `db:"total_seconds"`
	Hours           float64           `db:"-"`
}
