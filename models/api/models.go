package api

// AdminModel represents the admin data returned by the API
type AdminModel struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string     `json:"token"`
	User  AdminModel `json:"user"`
}

type EmployeeModel struct {
	ID                string  `json:"id"`
	EmployeeID        string  `json:"employee_id"`
	Name              string  `json:"name"`
	Email             string  `json:"email"`
	Department        *string `json:"department"`
	Role              *string `json:"role"`
	Status            string  `json:"status"`
	LastActivity      *string `json:"last_activity"`
	MonitoringConsent bool    `json:"monitoring_consent"`
}

type EmployeesResponse struct {
	Employees []*EmployeeModel `json:"employees"`
}

type SessionModel struct {
	ClockIn           *string `json:"clock_in"`
	ClockOut          *string `json:"clock_out"`
	ActiveTime        float64 `json:"active_time"`
	IdleTime          float64 `json:"idle_time"`
	ProductivityScore float64 `json:"productivity_score"`
}

type ActivityModel struct {
	Type        string  `json:"type"`
	Application *string `json:"application"`
	WindowTitle *string `json:"window_title"`
	URL         *string `json:"url"`
	Category    *string `json:"category"`
	Duration    float64 `json:"duration"`
	Timestamp   string  `json:"timestamp"`
}

type DailyActivityResponse struct {
	Session    SessionModel     `json:"session"`
	Activities []*ActivityModel `json:"activities"`
}

type RegisterAgentRequest struct {
	EmployeeID   string `json:"employee_id"`
	PCIdentifier string `json:"pc_identifier"`
	Consent      bool   `json:"consent"`
}

type RegisterAgentResponse struct {
	Success         bool   `json:"success"`
	EmployeeID      string `json:"employee_id"`
	TrackingEnabled bool   `json:"tracking_enabled"`
}

type HeartbeatRequest struct {
	PCIdentifier      string  `json:"pc_identifier"`
	Status            string  `json:"status"`
	ActiveTime        float64 `json:"active_time"`
	IdleTime          float64 `json:"idle_time"`
	ProductivityScore float64 `json:"productivity_score"`
	CurrentApp        string  `json:"current_app,omitempty"`
	WindowTitle       string  `json:"window_title,omitempty"`
	AppCategory       string  `json:"app_category,omitempty"`
	Duration          float64 `json:"duration,omitempty"`
}

type HeartbeatResponse struct {
	Success bool   `json:"success"`
	Status  string `json:"status"`
}

type AppUsageModel struct {
	Name        string  `json:"name"`
	WindowTitle string  `json:"window_title"`
	Category    string  `json:"category"`
	Duration    float64 `json:"duration"`
}

type WebsiteVisitModel struct {
	URL      string  `json:"url"`
	Category string  `json:"category"`
	Duration float64 `json:"duration"`
}

type ActivityBatchRequest struct {
	PCIdentifier string              `json:"pc_identifier"`
	Applications []AppUsageModel     `json:"applications"`
	Websites     []WebsiteVisitModel `json:"websites"`
}

type SuccessResponse struct {
	Success bool `json:"success"`
}

type ProductivityResponse struct {
	ActiveEmployees int     `json:"active_employees"`
	TotalEmployees  int     `json:"total_employees"`
	AvgProductivity float64 `json:"avg_productivity"`
	TotalWorkHours  float64 `json:"total_work_hours"`
	TotalIdleTime   float64 `json:"total_idle_time"`
	Date            string  `json:"date"`
}

type ApplicationUsageModel struct {
	Application string  `json:"application"`
	TimeHours   float64 `json:"time_hours"`
	Category    *string `json:"category"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
