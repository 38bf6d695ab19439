package api

import (
	"time"

	"github.com/archanap13u/track-back/models"
)

const DateLayout = "2006-01-02"

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func categoryString(c *models.ActivityCategory) *string {
	if c == nil {
		return nil
	}
	s := string(*c)
	return &s
}

// DomainAdminToAPIAdmin converts a domain Admin model to an API AdminModel
func DomainAdminToAPIAdmin(admin *models.Admin) AdminModel {
	if admin == nil {
		return AdminModel{}
	}
	return AdminModel{
		ID:       admin.ID,
		Username: admin.Username,
		Email:    admin.Email,
		Role:     admin.Role,
	}
}

func DomainLoginResultToAPILoginResponse(result *models.LoginResult) *LoginResponse {
	if result == nil {
		return nil
	}
	return &LoginResponse{
		Token: result.Token,
		User:  DomainAdminToAPIAdmin(result.Admin),
	}
}

func DomainEmployeeToAPIEmployee(employee *models.Employee) *EmployeeModel {
	if employee == nil {
		return nil
	}
	return &EmployeeModel{
		ID:                employee.ID,
		EmployeeID:        employee.EmployeeCode,
		Name:              employee.Name,
		Email:             employee.Email,
		Department:        employee.Department,
		Role:              employee.Role,
		Status:            string(employee.Status),
		LastActivity:      formatTime(employee.LastActivity),
		MonitoringConsent: employee.MonitoringConsent,
	}
}

// DomainEmployeesToAPIEmployees converts a slice of domain employees; the result is never nil
func DomainEmployeesToAPIEmployees(employees []*models.Employee) *EmployeesResponse {
	result := make([]*EmployeeModel, 0, len(employees))
	for _, employee := range employees {
		result = append(result, DomainEmployeeToAPIEmployee(employee))
	}
	return &EmployeesResponse{Employees: result}
}

// DomainSessionToAPISession returns a zeroed block with null clock times when session is nil
func DomainSessionToAPISession(session *models.WorkSession) SessionModel {
	if session == nil {
		return SessionModel{}
	}
	clockIn := session.ClockIn
	return SessionModel{
		ClockIn:           formatTime(&clockIn),
		ClockOut:          formatTime(session.ClockOut),
		ActiveTime:        session.TotalActiveTime,
		IdleTime:          session.TotalIdleTime,
		ProductivityScore: session.ProductivityScore,
	}
}

func DomainActivityToAPIActivity(activity *models.ActivityLog) *ActivityModel {
	if activity == nil {
		return nil
	}
	return &ActivityModel{
		Type:        string(activity.ActivityType),
		Application: activity.ApplicationName,
		WindowTitle: activity.WindowTitle,
		URL:         activity.URL,
		Category:    categoryString(activity.Category),
		Duration:    activity.Duration,
		Timestamp:   activity.Timestamp.Format(time.RFC3339),
	}
}

func DomainDailyActivityToAPIDailyActivity(daily *models.DailyActivity) *DailyActivityResponse {
	if daily == nil {
		return nil
	}
	activities := make([]*ActivityModel, 0, len(daily.Activities))
	for _, activity := range daily.Activities {
		activities = append(activities, DomainActivityToAPIActivity(activity))
	}
	return &DailyActivityResponse{
		Session:    DomainSessionToAPISession(daily.Session),
		Activities: activities,
	}
}

func DomainProductivityToAPIProductivity(summary *models.ProductivitySummary) *ProductivityResponse {
	if summary == nil {
		return nil
	}
	return &ProductivityResponse{
		ActiveEmployees: summary.ActiveEmployees,
		TotalEmployees:  summary.TotalEmployees,
		AvgProductivity: summary.AvgProductivity,
		TotalWorkHours:  summary.TotalWorkTime,
		TotalIdleTime:   summary.TotalIdleTime,
		Date:            summary.Date.Format(DateLayout),
	}
}

// DomainApplicationUsageToAPI converts grouped usage rows; the result is never nil
func DomainApplicationUsageToAPI(usage []*models.ApplicationUsage) []*ApplicationUsageModel {
	result := make([]*ApplicationUsageModel, 0, len(usage))
	for _, u := range usage {
		result = append(result, &ApplicationUsageModel{
			Application: u.ApplicationName,
			TimeHours:   u.Hours,
			Category:    categoryString(u.Category),
		})
	}
	return result
}

// APIHeartbeatToDomain fills in the defaults for fields the agent left out
func APIHeartbeatToDomain(req *HeartbeatRequest) *models.Heartbeat {
	status := models.EmployeeStatus(req.Status)
	if status == "" {
		status = models.EmployeeStatusActive
	}
	category := models.ActivityCategory(req.AppCategory)
	if category == "" {
		category = models.ActivityCategoryNeutral
	}
	return &models.Heartbeat{
		PCIdentifier:      req.PCIdentifier,
		Status:            status,
		ActiveTime:        req.ActiveTime,
		IdleTime:          req.IdleTime,
		ProductivityScore: req.ProductivityScore,
		CurrentApp:        req.CurrentApp,
		WindowTitle:       req.WindowTitle,
		AppCategory:       category,
		Duration:          req.Duration,
	}
}

func APIActivityBatchToDomain(req *ActivityBatchRequest) *models.ActivityBatch {
	batch := &models.ActivityBatch{
		PCIdentifier: req.PCIdentifier,
		Applications: make([]models.AppUsageSample, 0, len(req.Applications)),
		Websites:     make([]models.WebsiteVisitSample, 0, len(req.Websites)),
	}
	for _, app := range req.Applications {
		batch.Applications = append(batch.Applications, models.AppUsageSample{
			Name:        app.Name,
			WindowTitle: app.WindowTitle,
			Category:    models.ActivityCategory(app.Category),
			Duration:    app.Duration,
		})
	}
	for _, site := range req.Websites {
		batch.Websites = append(batch.Websites, models.WebsiteVisitSample{
			URL:      site.URL,
			Category: models.ActivityCategory(site.Category),
			Duration: site.Duration,
		})
	}
	return batch
}
