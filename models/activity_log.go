package models

import (
	"time"
)

type ActivityType string

const (
	ActivityTypeAppUsage     ActivityType = "app_usage"
	ActivityTypeWebsiteVisit ActivityType = "website_visit"
)

// ActivityCategory is the productivity label the agent attaches to a sample.
// Agents own the taxonomy, so values outside the known set are stored as-is.
type ActivityCategory string

const (
	ActivityCategoryProductive   ActivityCategory = "productive"
	ActivityCategoryNeutral      ActivityCategory = "neutral"
	ActivityCategoryUnproductive ActivityCategory = "unproductive"
)

type ActivityLog struct {
	ID              string            `db:"id"               json:"id"`
	EmployeeID      string            `db:"employee_id"      json:"employee_id"`
	ActivityType    ActivityType      `db:"activity_type"    json:"activity_type"`
	ApplicationName *string           `db:"application_name" json:"application_name"`
	WindowTitle     *string           `db:"window_title"     json:"window_title"`
	URL             *string           `db:"url"              json:"url"`
	Category        *ActivityCategory `db:"category"         json:"category"`
	Duration        float64           `db:"duration"         json:"duration"`
	Timestamp       time.Time         `db:"timestamp"        json:"timestamp"`
}
