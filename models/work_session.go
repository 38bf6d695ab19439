package models

import (
	"time"
)

// WorkSession is the per-employee, per-day aggregate reported by the agent heartbeat.
// There is at most one row per (employee, date).
type WorkSession struct {
	ID                string     `db:"id"                 json:"id"`
	EmployeeID        string     `db:"employee_id"        json:"employee_id"`
	ClockIn           time.Time  `db:"clock_in"           json:"clock_in"`
	ClockOut          *time.Time `db:"clock_out"          json:"clock_out"`
	TotalActiveTime   float64    `db:"total_active_time"  json:"total_active_time"`
	TotalIdleTime     float64    `db:"total_idle_time"    json:"total_idle_time"`
	ProductivityScore float64    `db:"productivity_score" json:"productivity_score"`
	Date              time.Time  `db:"date"               json:"date"`
}
