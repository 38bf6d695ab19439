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

	dbtx "github.com/archanap13u/track-back/db/tx"
	"github.com/archanap13u/track-back/models"
)

const sqlDateLayout = "2006-01-02"

type PostgresWorkSessionsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for work_sessions table
var workSessionsColumns = []string{
	"id",
	"employee_id",
	"clock_in",
	"clock_out",
	"total_active_time",
	"total_idle_time",
	"productivity_score",
	"date",
}

func NewPostgresWorkSessionsRepository(db *sqlx.DB, schema string) *PostgresWorkSessionsRepository {
	return &PostgresWorkSessionsRepository{db: db, schema: schema}
}

// UpsertDailySession creates the (employee, date) session or overwrites its metrics.
// clock_in and id keep the values of the first insert of the day.
func (r *PostgresWorkSessionsRepository) UpsertDailySession(ctx context.Context, session *models.WorkSession) error {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(workSessionsColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.work_sessions (
			id, employee_id, clock_in, total_active_time, total_idle_time, productivity_score, date
		) VALUES ($1, $2, $3, $4, $5, $6, $7::date)
		ON CONFLICT (employee_id, date)
		DO UPDATE SET
			total_active_time = EXCLUDED.total_active_time,
			total_idle_time = EXCLUDED.total_idle_time,
			productivity_score = EXCLUDED.productivity_score
		RETURNING %s`, r.schema, returningStr)

	err := db.QueryRowxContext(
		ctx,
		query,
		session.ID,
		session.EmployeeID,
		session.ClockIn,
		session.TotalActiveTime,
		session.TotalIdleTime,
		session.ProductivityScore,
		session.Date.Format(sqlDateLayout),
	).StructScan(session)
	if err != nil {
		return fmt.Errorf("failed to upsert work session: %w", err)
	}

	return nil
}

func (r *PostgresWorkSessionsRepository) GetSessionByEmployeeAndDate(
	ctx context.Context,
	employeeID string,
	date time.Time,
) (mo.Option[*models.WorkSession], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.work_sessions
		WHERE employee_id = $1 AND date = $2::date`, strings.Join(workSessionsColumns, ", "), r.schema)

	session := &models.WorkSession{}
	if err := db.GetContext(ctx, session, query, employeeID, date.Format(sqlDateLayout)); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.WorkSession](), nil
		}
		return mo.None[*models.WorkSession](), fmt.Errorf("failed to get work session: %w", err)
	}

	return mo.Some(session), nil
}

// CountSessionsForEmployeeAndDate is used to check the one-session-per-day invariant
func (r *PostgresWorkSessionsRepository) CountSessionsForEmployeeAndDate(
	ctx context.Context,
	employeeID string,
	date time.Time,
) (int, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT COUNT(*)
		FROM %s.work_sessions
		WHERE employee_id = $1 AND date = $2::date`, r.schema)

	var count int
	if err := db.GetContext(ctx, &count, query, employeeID, date.Format(sqlDateLayout)); err != nil {
		return 0, fmt.Errorf("failed to count work sessions: %w", err)
	}

	return count, nil
}

// GetSessionTotalsByDate aggregates all sessions of a day. active_employees counts sessions
// whose employee currently reports the active status.
func (r *PostgresWorkSessionsRepository) GetSessionTotalsByDate(
	ctx context.Context,
	date time.Time,
) (*models.SessionTotals, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT
			COUNT(ws.id) AS session_count,
			COUNT(ws.id) FILTER (WHERE e.status = $2) AS active_employees,
			COALESCE(SUM(ws.productivity_score), 0) AS productivity_sum,
			COALESCE(SUM(ws.total_active_time), 0) AS active_time_sum,
			COALESCE(SUM(ws.total_idle_time), 0) AS idle_time_sum
		FROM %s.work_sessions ws
		JOIN %s.employees e ON e.id = ws.employee_id
		WHERE ws.date = $1::date`, r.schema, r.schema)

	totals := &models.SessionTotals{}
	if err := db.GetContext(ctx, totals, query, date.Format(sqlDateLayout), models.EmployeeStatusActive); err != nil {
		return nil, fmt.Errorf("failed to aggregate work sessions: %w", err)
	}

	return totals, nil
}
