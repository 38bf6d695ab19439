package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/archanap13u/track-back/config"
	"github.com/archanap13u/track-back/core"
	"github.com/archanap13u/track-back/core/log"
	"github.com/archanap13u/track-back/db"
	"github.com/archanap13u/track-back/models"
)

type sampleEmployee struct {
	code       string
	name       string
	email      string
	department string
	role       string
}

var sampleEmployees = []sampleEmployee{
	{"EMP001", "Sarah Johnson", "sarah@company.com", "Engineering", "Senior Developer"},
	{"EMP002", "Michael Chen", "michael@company.com", "Product", "Product Manager"},
	{"EMP003", "Emily Davis", "emily@company.com", "Design", "UX Designer"},
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Failed to seed data: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	databaseURL, schema, err := config.LoadDatabaseConfig()
	if err != nil {
		return err
	}

	logger, err := log.New("dev")
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()
	ctx := log.WithLogger(context.Background(), logger)

	dbConn, err := db.NewConnection(databaseURL)
	if err != nil {
		return err
	}
	defer dbConn.Close()

	employeesRepo := db.NewPostgresEmployeesRepository(dbConn, schema)
	consentDate := time.Now()

	created := 0
	for _, sample := range sampleEmployees {
		employee := newSampleEmployee(sample, consentDate)

		if err := employeesRepo.CreateEmployee(ctx, employee); err != nil {
			if db.IsUniqueViolation(err) {
				log.Info(ctx, "⏭️ Employee already exists, skipping", zap.String("employee_id", sample.code))
				continue
			}
			return err
		}

		created++
		log.Info(ctx, "✅ Employee created", zap.String("employee_id", sample.code), zap.String("id", employee.ID))
	}

	log.Info(ctx, "✅ Sample data seeded", zap.Int("created", created), zap.Int("total", len(sampleEmployees)))
	return nil
}

// newSampleEmployee builds an offline employee that has already granted monitoring consent
func newSampleEmployee(sample sampleEmployee, consentDate time.Time) *models.Employee {
	department, role := sample.department, sample.role
	return &models.Employee{
		ID:                core.NewID(core.EmployeeIDPrefix),
		EmployeeCode:      sample.code,
		Name:              sample.name,
		Email:             sample.email,
		Department:        &department,
		Role:              &role,
		Status:            models.EmployeeStatusOffline,
		MonitoringConsent: true,
		ConsentDate:       &consentDate,
	}
}
