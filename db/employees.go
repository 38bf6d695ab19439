package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	"github.com/archanap13u/track-back/core"
	dbtx "github.com/archanap13u/track-back/db/tx"
	"github.com/archanap13u/track-back/models"
)

type PostgresEmployeesRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for employees table
var employeesColumns = []string{
	"id",
	"employee_id",
	"name",
	"email",
	"department",
	"role",
	"pc_identifier",
	"status",
	"last_activity",
	"monitoring_consent",
	"consent_date",
	"created_at",
}

func NewPostgresEmployeesRepository(db *sqlx.DB, schema string) *PostgresEmployeesRepository {
	return &PostgresEmployeesRepository{db: db, schema: schema}
}

func (r *PostgresEmployeesRepository) getEmployeeBy(
	ctx context.Context,
	column, value string,
	forUpdate bool,
) (mo.Option[*models.Employee], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(employeesColumns, ", ")
	forUpdateClause := ""
	if forUpdate {
		forUpdateClause = " FOR UPDATE"
	}

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.employees
		WHERE %s = $1%s`, columnsStr, r.schema, column, forUpdateClause)

	employee := &models.Employee{}
	if err := db.GetContext(ctx, employee, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.Employee](), nil
		}
		return mo.None[*models.Employee](), fmt.Errorf("failed to get employee by %s: %w", column, err)
	}

	return mo.Some(employee), nil
}

func (r *PostgresEmployeesRepository) GetEmployeeByID(ctx context.Context, id string) (mo.Option[*models.Employee], error) {
	return r.getEmployeeBy(ctx, "id", id, false)
}

// GetEmployeeByCode looks up an employee by the external employee code
func (r *PostgresEmployeesRepository) GetEmployeeByCode(
	ctx context.Context,
	employeeCode string,
	forUpdate bool,
) (mo.Option[*models.Employee], error) {
	return r.getEmployeeBy(ctx, "employee_id", employeeCode, forUpdate)
}

func (r *PostgresEmployeesRepository) GetEmployeeByPCIdentifier(
	ctx context.Context,
	pcIdentifier string,
	forUpdate bool,
) (mo.Option[*models.Employee], error) {
	return r.getEmployeeBy(ctx, "pc_identifier", pcIdentifier, forUpdate)
}

func (r *PostgresEmployeesRepository) ListEmployees(ctx context.Context) ([]*models.Employee, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.employees
		ORDER BY created_at ASC, id ASC`, strings.Join(employeesColumns, ", "), r.schema)

	employees := []*models.Employee{}
	if err := db.SelectContext(ctx, &employees, query); err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	return employees, nil
}

func (r *PostgresEmployeesRepository) CountEmployees(ctx context.Context) (int, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s.employees`, r.schema)

	var count int
	if err := db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count employees: %w", err)
	}

	return count, nil
}

func (r *PostgresEmployeesRepository) CreateEmployee(ctx context.Context, employee *models.Employee) error {
	db := dbtx.GetTransactional(ctx, r.db)

	insertColumns := []string{
		"id",
		"employee_id",
		"name",
		"email",
		"department",
		"role",
		"status",
		"monitoring_consent",
		"consent_date",
		"created_at",
	}
	columnsStr := strings.Join(insertColumns, ", ")
	returningStr := strings.Join(employeesColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.employees (%s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, NOW())
		RETURNING %s`, r.schema, columnsStr, returningStr)

	err := db.QueryRowxContext(
		ctx,
		query,
		employee.ID,
		employee.EmployeeCode,
		employee.Name,
		employee.Email,
		employee.Department,
		employee.Role,
		employee.Status,
		employee.MonitoringConsent,
		employee.ConsentDate,
	).StructScan(employee)
	if err != nil {
		return fmt.Errorf("failed to create employee: %w", err)
	}

	return nil
}

// ReleasePCIdentifier clears the binding of pcIdentifier from every employee except exceptEmployeeID
func (r *PostgresEmployeesRepository) ReleasePCIdentifier(
	ctx context.Context,
	pcIdentifier, exceptEmployeeID string,
) error {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s.employees
		SET pc_identifier = NULL
		WHERE pc_identifier = $1 AND id <> $2`, r.schema)

	if _, err := db.ExecContext(ctx, query, pcIdentifier, exceptEmployeeID); err != nil {
		return fmt.Errorf("failed to release pc identifier: %w", err)
	}

	return nil
}

// BindPCIdentifier records the agent registration of an employee's device
func (r *PostgresEmployeesRepository) BindPCIdentifier(
	ctx context.Context,
	employeeID, pcIdentifier string,
	consent bool,
	consentDate time.Time,
) (*models.Employee, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s.employees
		SET pc_identifier = $2, monitoring_consent = $3, consent_date = $4
		WHERE id = $1
		RETURNING %s`, r.schema, strings.Join(employeesColumns, ", "))

	employee := &models.Employee{}
	err := db.QueryRowxContext(ctx, query, employeeID, pcIdentifier, consent, consentDate).StructScan(employee)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("employee %s: %w", employeeID, core.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to bind pc identifier: %w", err)
	}

	return employee, nil
}

func (r *PostgresEmployeesRepository) UpdateEmployeeStatus(
	ctx context.Context,
	employeeID string,
	status models.EmployeeStatus,
	lastActivity time.Time,
) error {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		UPDATE %s.employees
		SET status = $2, last_activity = $3
		WHERE id = $1`, r.schema)

	result, err := db.ExecContext(ctx, query, employeeID, status, lastActivity)
	if err != nil {
		return fmt.Errorf("failed to update employee status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("employee %s not found", employeeID)
	}

	return nil
}

// DeleteEmployee removes an employee together with its sessions and activity logs
func (r *PostgresEmployeesRepository) DeleteEmployee(ctx context.Context, id string) (bool, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`DELETE FROM %s.employees WHERE id = $1`, r.schema)

	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete employee: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
