package models

import (
	"time"
)

type EmployeeStatus string

const (
	EmployeeStatusActive  EmployeeStatus = "active"
	EmployeeStatusIdle    EmployeeStatus = "idle"
	EmployeeStatusAway    EmployeeStatus = "away"
	EmployeeStatusOffline EmployeeStatus = "offline"
)

// IsValid reports whether s is one of the statuses agents may report
func (s EmployeeStatus) IsValid() bool {
	switch s {
	case EmployeeStatusActive, EmployeeStatusIdle, EmployeeStatusAway, EmployeeStatusOffline:
		return true
	}
	return false
}

type Employee struct {
	ID                string         `db:"id"                 json:"id"`
	EmployeeCode      string         `db:"employee_id"        json:"employee_id"`
	Name              string         `db:"name"               json:"name"`
	Email             string         `db:"email"              json:"email"`
	Department        *string        `db:"department"         json:"department"`
	Role              *string        `db:"role"               json:"role"`
	PCIdentifier      *string        `db:"pc_identifier"      json:"pc_identifier"`
	Status            EmployeeStatus `db:"status"             json:"status"`
	LastActivity      *time.Time     `db:"last_activity"      json:"last_activity"`
	MonitoringConsent bool           `db:"monitoring_consent" json:"monitoring_consent"`
	ConsentDate       *time.Time     `db:"consent_date"       json:"consent_date"`
	CreatedAt         time.Time      `db:"created_at"         json:"created_at"`
}
