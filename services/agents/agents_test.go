package agents

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/archanap13u/track-back/core"
	"github.com/archanap13u/track-back/models"
	"github.com/archanap13u/track-back/services/txmanager"
)

type mockEmployeesRepository struct {
	mock.Mock
}

func (m *mockEmployeesRepository) GetEmployeeByCode(
	ctx context.Context,
	employeeCode string,
	forUpdate bool,
) (mo.Option[*models.Employee], error) {
	args := m.Called(ctx, employeeCode, forUpdate)
	return args.Get(0).(mo.Option[*models.Employee]), args.Error(1)
}

func (m *mockEmployeesRepository) GetEmployeeByPCIdentifier(
	ctx context.Context,
	pcIdentifier string,
	forUpdate bool,
) (mo.Option[*models.Employee], error) {
	args := m.Called(ctx, pcIdentifier, forUpdate)
	return args.Get(0).(mo.Option[*models.Employee]), args.Error(1)
}

func (m *mockEmployeesRepository) ReleasePCIdentifier(ctx context.Context, pcIdentifier, exceptEmployeeID string) error {
	args := m.Called(ctx, pcIdentifier, exceptEmployeeID)
	return args.Error(0)
}

func (m *mockEmployeesRepository) BindPCIdentifier(
	ctx context.Context,
	employeeID, pcIdentifier string,
	consent bool,
	consentDate time.Time,
) (*models.Employee, error) {
	args := m.Called(ctx, employeeID, pcIdentifier, consent, consentDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Employee), args.Error(1)
}

func (m *mockEmployeesRepository) UpdateEmployeeStatus(
	ctx context.Context,
	employeeID string,
	status models.EmployeeStatus,
	lastActivity time.Time,
) error {
	args := m.Called(ctx, employeeID, status, lastActivity)
	return args.Error(0)
}

type mockWorkSessionsRepository struct {
	mock.Mock
}

func (m *mockWorkSessionsRepository) UpsertDailySession(ctx context.Context, session *models.WorkSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

type mockActivityLogsRepository struct {
	mock.Mock
}

func (m *mockActivityLogsRepository) CreateActivityLogs(ctx context.Context, logs []*models.ActivityLog) error {
	args := m.Called(ctx, logs)
	return args.Error(0)
}

type testFixture struct {
	service   *AgentsService
	employees *mockEmployeesRepository
	sessions  *mockWorkSessionsRepository
	activity  *mockActivityLogsRepository
	now       time.Time
}

func newTestFixture(t *testing.T) *testFixture {
	location, err := time.LoadLocation("Europe/Berlin")
	require.NoError(t, err)

	f := &testFixture{
		employees: &mockEmployeesRepository{},
		sessions:  &mockWorkSessionsRepository{},
		activity:  &mockActivityLogsRepository{},
		// 23:30 UTC is already the next calendar day in Berlin
		now: time.Date(2025, 3, 10, 23, 30, 0, 0, time.UTC),
	}
	f.service = NewAgentsService(
		f.employees,
		f.sessions,
		f.activity,
		txmanager.PassthroughTransactionManager{},
		location,
	)
	f.service.now = func() time.Time { return f.now }
	return f
}

func testEmployee() *models.Employee {
	return &models.Employee{
		ID:           core.NewID(core.EmployeeIDPrefix),
		EmployeeCode: "EMP001",
		Name:         "Sarah Johnson",
		Email:        "sarah@company.com",
		Status:       models.EmployeeStatusOffline,
	}
}

func TestAgentsService_RegisterAgent(t *testing.T) {
	ctx := context.Background()

	t.Run("Binds device and records consent", func(t *testing.T) {
		f := newTestFixture(t)
		employee := testEmployee()
		pc := "PC-01"
		bound := *employee
		bound.PCIdentifier = &pc
		bound.MonitoringConsent = true

		f.employees.On("GetEmployeeByCode", ctx, "EMP001", true).Return(mo.Some(employee), nil)
		f.employees.On("ReleasePCIdentifier", ctx, "PC-01", employee.ID).Return(nil)
		f.employees.On("BindPCIdentifier", ctx, employee.ID, "PC-01", true, f.now).Return(&bound, nil)

		result, err := f.service.RegisterAgent(ctx, "EMP001", "PC-01", true)
		require.NoError(t, err)

		assert.Equal(t, employee.ID, result.ID)
		assert.True(t, result.MonitoringConsent)
		f.employees.AssertExpectations(t)
	})

	t.Run("Unknown employee code", func(t *testing.T) {
		f := newTestFixture(t)
		f.employees.On("GetEmployeeByCode", ctx, "EMP404", true).Return(mo.None[*models.Employee](), nil)

		_, err := f.service.RegisterAgent(ctx, "EMP404", "PC-01", true)
		assert.ErrorIs(t, err, core.ErrNotFound)
		f.employees.AssertNotCalled(t, "ReleasePCIdentifier", mock.Anything, mock.Anything, mock.Anything)
		f.employees.AssertNotCalled(t, "BindPCIdentifier",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Missing fields", func(t *testing.T) {
		f := newTestFixture(t)

		_, err := f.service.RegisterAgent(ctx, "", "PC-01", true)
		assert.ErrorIs(t, err, core.ErrBadRequest)

		_, err = f.service.RegisterAgent(ctx, "EMP001", "", true)
		assert.ErrorIs(t, err, core.ErrBadRequest)
	})

	t.Run("Release failure aborts the registration", func(t *testing.T) {
		f := newTestFixture(t)
		employee := testEmployee()
		f.employees.On("GetEmployeeByCode", ctx, "EMP001", true).Return(mo.Some(employee), nil)
		f.employees.On("ReleasePCIdentifier", ctx, "PC-01", employee.ID).Return(assert.AnError)

		_, err := f.service.RegisterAgent(ctx, "EMP001", "PC-01", true)
		assert.ErrorIs(t, err, assert.AnError)
		f.employees.AssertNotCalled(t, "BindPCIdentifier",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAgentsService_ProcessHeartbeat(t *testing.T) {
	ctx := context.Background()

	t.Run("Upserts the session of the local day and logs the current app", func(t *testing.T) {
		f := newTestFixture(t)
		employee := testEmployee()

		f.employees.On("GetEmployeeByPCIdentifier", ctx, "PC-01", true).Return(mo.Some(employee), nil)
		f.employees.On("UpdateEmployeeStatus", ctx, employee.ID, models.EmployeeStatusActive, mock.Anything).
			Return(nil)

		var session *models.WorkSession
		f.sessions.On("UpsertDailySession", ctx, mock.Anything).
			Run(func(args mock.Arguments) { session = args.Get(1).(*models.WorkSession) }).
			Return(nil)

		var logs []*models.ActivityLog
		f.activity.On("CreateActivityLogs", ctx, mock.Anything).
			Run(func(args mock.Arguments) { logs = args.Get(1).([]*models.ActivityLog) }).
			Return(nil)

		err := f.service.ProcessHeartbeat(ctx, &models.Heartbeat{
			PCIdentifier:      "PC-01",
			Status:            models.EmployeeStatusActive,
			ActiveTime:        3600,
			IdleTime:          300,
			ProductivityScore: 82.5,
			CurrentApp:        "VSCode",
			WindowTitle:       "main.go",
			Duration:          60,
		})
		require.NoError(t, err)

		require.NotNil(t, session)
		assert.Equal(t, employee.ID, session.EmployeeID)
		assert.Equal(t, "2025-03-11", session.Date.Format("2006-01-02"))
		assert.Equal(t, 3600.0, session.TotalActiveTime)
		assert.Equal(t, 300.0, session.TotalIdleTime)
		assert.Equal(t, 82.5, session.ProductivityScore)
		assert.True(t, core.IsValidIDWithPrefix(session.ID, core.WorkSessionIDPrefix))

		require.Len(t, logs, 1)
		assert.Equal(t, models.ActivityTypeAppUsage, logs[0].ActivityType)
		assert.Equal(t, "VSCode", *logs[0].ApplicationName)
		assert.Equal(t, "main.go", *logs[0].WindowTitle)
		assert.Equal(t, models.ActivityCategoryNeutral, *logs[0].Category)
		assert.Equal(t, 60.0, logs[0].Duration)

		f.employees.AssertExpectations(t)
	})

	t.Run("No activity row without a current app", func(t *testing.T) {
		f := newTestFixture(t)
		employee := testEmployee()

		f.employees.On("GetEmployeeByPCIdentifier", ctx, "PC-01", true).Return(mo.Some(employee), nil)
		f.employees.On("UpdateEmployeeStatus", ctx, employee.ID, models.EmployeeStatusIdle, mock.Anything).
			Return(nil)
		f.sessions.On("UpsertDailySession", ctx, mock.Anything).Return(nil)

		err := f.service.ProcessHeartbeat(ctx, &models.Heartbeat{
			PCIdentifier: "PC-01",
			Status:       models.EmployeeStatusIdle,
		})
		require.NoError(t, err)
		f.activity.AssertNotCalled(t, "CreateActivityLogs", mock.Anything, mock.Anything)
	})

	t.Run("Unknown device", func(t *testing.T) {
		f := newTestFixture(t)
		f.employees.On("GetEmployeeByPCIdentifier", ctx, "PC-404", true).Return(mo.None[*models.Employee](), nil)

		err := f.service.ProcessHeartbeat(ctx, &models.Heartbeat{
			PCIdentifier: "PC-404",
			Status:       models.EmployeeStatusActive,
		})
		assert.ErrorIs(t, err, core.ErrNotFound)
		f.sessions.AssertNotCalled(t, "UpsertDailySession", mock.Anything, mock.Anything)
	})

	t.Run("Session failure is returned", func(t *testing.T) {
		f := newTestFixture(t)
		employee := testEmployee()
		f.employees.On("GetEmployeeByPCIdentifier", ctx, "PC-01", true).Return(mo.Some(employee), nil)
		f.employees.On("UpdateEmployeeStatus", ctx, employee.ID, models.EmployeeStatusActive, mock.Anything).
			Return(nil)
		f.sessions.On("UpsertDailySession", ctx, mock.Anything).Return(errors.New("connection reset"))

		err := f.service.ProcessHeartbeat(ctx, &models.Heartbeat{
			PCIdentifier: "PC-01",
			Status:       models.EmployeeStatusActive,
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection reset")
	})

	tests := []struct {
		name      string
		heartbeat models.Heartbeat
	}{
		{
			name:      "missing pc identifier",
			heartbeat: models.Heartbeat{Status: models.EmployeeStatusActive},
		},
		{
			name:      "unknown status",
			heartbeat: models.Heartbeat{PCIdentifier: "PC-01", Status: "sleeping"},
		},
		{
			name:      "negative active time",
			heartbeat: models.Heartbeat{PCIdentifier: "PC-01", Status: models.EmployeeStatusActive, ActiveTime: -1},
		},
		{
			name:      "negative idle time",
			heartbeat: models.Heartbeat{PCIdentifier: "PC-01", Status: models.EmployeeStatusActive, IdleTime: -5},
		},
		{
			name:      "negative duration",
			heartbeat: models.Heartbeat{PCIdentifier: "PC-01", Status: models.EmployeeStatusActive, Duration: -5},
		},
		{
			name: "negative productivity score",
			heartbeat: models.Heartbeat{
				PCIdentifier:      "PC-01",
				Status:            models.EmployeeStatusActive,
				ProductivityScore: -10,
			},
		},
	}
	for _, tt := range tests {
		t.Run("Rejects "+tt.name, func(t *testing.T) {
			f := newTestFixture(t)
			err := f.service.ProcessHeartbeat(ctx, &tt.heartbeat)
			assert.ErrorIs(t, err, core.ErrBadRequest)
			f.employees.AssertNotCalled(t, "GetEmployeeByPCIdentifier", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestAgentsService_LogActivity(t *testing.T) {
	ctx := context.Background()

	t.Run("Writes one row per sample", func(t *testing.T) {
		f := newTestFixture(t)
		employee := testEmployee()
		f.employees.On("GetEmployeeByPCIdentifier", ctx, "PC-01", true).Return(mo.Some(employee), nil)

		var logs []*models.ActivityLog
		f.activity.On("CreateActivityLogs", ctx, mock.Anything).
			Run(func(args mock.Arguments) { logs = args.Get(1).([]*models.ActivityLog) }).
			Return(nil)

		written, err := f.service.LogActivity(ctx, &models.ActivityBatch{
			PCIdentifier: "PC-01",
			Applications: []models.AppUsageSample{
				{Name: "Slack", Category: models.ActivityCategoryNeutral, Duration: 120},
				{Name: "Figma", WindowTitle: "Mockups", Category: models.ActivityCategoryProductive, Duration: 900},
			},
			Websites: []models.WebsiteVisitSample{
				{URL: "https://news.example.com", Category: models.ActivityCategoryUnproductive, Duration: 30},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, 3, written)

		require.Len(t, logs, 3)
		assert.Equal(t, models.ActivityTypeAppUsage, logs[0].ActivityType)
		assert.Equal(t, "Slack", *logs[0].ApplicationName)
		assert.Nil(t, logs[0].WindowTitle)
		assert.Equal(t, "Mockups", *logs[1].WindowTitle)
		assert.Equal(t, models.ActivityTypeWebsiteVisit, logs[2].ActivityType)
		assert.Equal(t, "https://news.example.com", *logs[2].URL)
		assert.Nil(t, logs[2].ApplicationName)
		for _, l := range logs {
			assert.Equal(t, employee.ID, l.EmployeeID)
			assert.True(t, core.IsValidIDWithPrefix(l.ID, core.ActivityLogIDPrefix))
		}
	})

	t.Run("Empty batch writes nothing", func(t *testing.T) {
		f := newTestFixture(t)
		employee := testEmployee()
		f.employees.On("GetEmployeeByPCIdentifier", ctx, "PC-01", true).Return(mo.Some(employee), nil)
		f.activity.On("CreateActivityLogs", ctx, []*models.ActivityLog{}).Return(nil)

		written, err := f.service.LogActivity(ctx, &models.ActivityBatch{PCIdentifier: "PC-01"})
		require.NoError(t, err)
		assert.Equal(t, 0, written)
	})

	t.Run("Unknown device", func(t *testing.T) {
		f := newTestFixture(t)
		f.employees.On("GetEmployeeByPCIdentifier", ctx, "PC-404", true).Return(mo.None[*models.Employee](), nil)

		_, err := f.service.LogActivity(ctx, &models.ActivityBatch{PCIdentifier: "PC-404"})
		assert.ErrorIs(t, err, core.ErrNotFound)
	})

	t.Run("Insert failure reports nothing written", func(t *testing.T) {
		f := newTestFixture(t)
		employee := testEmployee()
		f.employees.On("GetEmployeeByPCIdentifier", ctx, "PC-01", true).Return(mo.Some(employee), nil)
		f.activity.On("CreateActivityLogs", ctx, mock.Anything).Return(assert.AnError)

		written, err := f.service.LogActivity(ctx, &models.ActivityBatch{
			PCIdentifier: "PC-01",
			Applications: []models.AppUsageSample{{Name: "Slack", Duration: 1}},
		})
		assert.ErrorIs(t, err, assert.AnError)
		assert.Equal(t, 0, written)
	})

	t.Run("Negative duration", func(t *testing.T) {
		f := newTestFixture(t)

		_, err := f.service.LogActivity(ctx, &models.ActivityBatch{
			PCIdentifier: "PC-01",
			Websites:     []models.WebsiteVisitSample{{URL: "https://example.com", Duration: -1}},
		})
		assert.ErrorIs(t, err, core.ErrBadRequest)
	})
}
