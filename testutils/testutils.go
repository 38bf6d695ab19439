package testutils

import (
	"context"
	"os"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/archanap13u/track-back/core"
	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/db"
	"github.com/archanap13u/track-back/models"
)

// TestConfig holds what database-backed tests need
type TestConfig struct {
	DatabaseURL    string
	DatabaseSchema string
}

// LoadTestConfig loads configuration for tests from environment variables.
// ok is false when no test database is configured.
func LoadTestConfig() (cfg *TestConfig, ok bool) {
	_ = godotenv.Load("../.env.test")
	_ = godotenv.Load("../../.env.test")
	_ = godotenv.Load(".env.test")

	databaseURL := os.Getenv("DB_URL")
	if databaseURL == "" {
		return nil, false
	}

	schema := os.Getenv("DB_SCHEMA")
	if schema == "" {
		schema = "track_back_test"
	}

	return &TestConfig{DatabaseURL: databaseURL, DatabaseSchema: schema}, true
}

// SetupTestDB connects to the test database and applies the schema.
// The test is skipped when DB_URL is not set.
func SetupTestDB(t *testing.T) (*sqlx.DB, string) {
	t.Helper()

	cfg, ok := LoadTestConfig()
	if !ok {
		t.Skip("DB_URL is not set, skipping database test")
	}

	dbConn, err := db.NewConnection(cfg.DatabaseURL)
	require.NoError(t, err, "Failed to connect to test database")
	t.Cleanup(func() { _ = dbConn.Close() })

	require.NoError(t, db.ApplyMigrations(context.Background(), dbConn, cfg.DatabaseSchema))
	return dbConn, cfg.DatabaseSchema
}

// CreateTestContext returns a context carrying a logger that writes to the test output
func CreateTestContext(t *testing.T) context.Context {
	return log.WithLogger(context.Background(), zaptest.NewLogger(t))
}

// CreateTestEmployee inserts an employee with unique code and email, removed again at test cleanup
func CreateTestEmployee(t *testing.T, employeesRepo *db.PostgresEmployeesRepository) *models.Employee {
	t.Helper()

	suffix := uuid.New().String()
	department := "Engineering"
	employee := &models.Employee{
		ID:           core.NewID(core.EmployeeIDPrefix),
		EmployeeCode: "EMP-" + suffix,
		Name:         "Test Employee",
		Email:        "employee-" + suffix + "@example.com",
		Department:   &department,
		Status:       models.EmployeeStatusOffline,
	}

	err := employeesRepo.CreateEmployee(context.Background(), employee)
	require.NoError(t, err, "Failed to create test employee")

	t.Cleanup(func() {
		_, _ = employeesRepo.DeleteEmployee(context.Background(), employee.ID)
	})
	return employee
}

// CreateTestAdmin inserts an admin with the given password hash, removed again at test cleanup
func CreateTestAdmin(t *testing.T, adminsRepo *db.PostgresAdminsRepository, passwordHash string) *models.Admin {
	t.Helper()

	suffix := uuid.New().String()
	admin := &models.Admin{
		ID:           core.NewID(core.AdminIDPrefix),
		Username:     "admin-" + suffix,
		Email:        "admin-" + suffix + "@example.com",
		PasswordHash: passwordHash,
		Role:         models.AdminRoleDefault,
	}

	err := adminsRepo.CreateAdmin(context.Background(), admin)
	require.NoError(t, err, "Failed to create test admin")

	t.Cleanup(func() {
		_, _ = adminsRepo.DeleteAdmin(context.Background(), admin.ID)
	})
	return admin
}
