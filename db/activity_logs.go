package db

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jmoiron/sqlx"

	dbtx "github.com/archanap13u/track-back/db/tx"
	"github.com/archanap13u/track-back/models"
)

type PostgresActivityLogsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for activity_logs table
var activityLogsColumns = []string{
	"id",
	"employee_id",
	"activity_type",
	"application_name",
	"window_title",
	"url",
	"category",
	"duration",
	"timestamp",
}

func NewPostgresActivityLogsRepository(db *sqlx.DB, schema string) *PostgresActivityLogsRepository {
	return &PostgresActivityLogsRepository{db: db, schema: schema}
}

// activityLogsInsertChunkSize keeps each insert well under the Postgres limit of
// 65535 bind parameters (one per column per row)
const activityLogsInsertChunkSize = 1000

// CreateActivityLogs appends all logs with multi-row inserts of at most
// activityLogsInsertChunkSize rows. Callers wanting all-or-nothing semantics run it
// inside a transaction.
func (r *PostgresActivityLogsRepository) CreateActivityLogs(ctx context.Context, logs []*models.ActivityLog) error {
	if len(logs) == 0 {
		return nil
	}

	db := dbtx.GetTransactional(ctx, r.db)

	columnsStr := strings.Join(activityLogsColumns, ", ")
	namedParams := make([]string, 0, len(activityLogsColumns))
	for _, column := range activityLogsColumns {
		namedParams = append(namedParams, ":"+column)
	}

	query := fmt.Sprintf(`
		INSERT INTO %s.activity_logs (%s)
		VALUES (%s)`, r.schema, columnsStr, strings.Join(namedParams, ", "))

	for start := 0; start < len(logs); start += activityLogsInsertChunkSize {
		end := min(start+activityLogsInsertChunkSize, len(logs))
		if _, err := db.NamedExecContext(ctx, query, logs[start:end]); err != nil {
			return fmt.Errorf("failed to create activity logs %d-%d of %d: %w", start, end, len(logs), err)
		}
	}

	return nil
}

// GetActivitiesForEmployee returns up to limit logs with timestamp in [from, to), newest first
func (r *PostgresActivityLogsRepository) GetActivitiesForEmployee(
	ctx context.Context,
	employeeID string,
	from, to time.Time,
	limit int,
) ([]*models.ActivityLog, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.activity_logs
		WHERE employee_id = $1 AND timestamp >= $2 AND timestamp < $3
		ORDER BY timestamp DESC, id DESC
		LIMIT $4`, strings.Join(activityLogsColumns, ", "), r.schema)

	activities := []*models.ActivityLog{}
	if err := db.SelectContext(ctx, &activities, query, employeeID, from, to, limit); err != nil {
		return nil, fmt.Errorf("failed to get activities for employee: %w", err)
	}

	return activities, nil
}

// GetTopApplications sums app_usage durations in [from, to) per (application, category)
// and returns the largest groups first
func (r *PostgresActivityLogsRepository) GetTopApplications(
	ctx context.Context,
	from, to time.Time,
	limit int,
) ([]*models.ApplicationUsage, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT application_name, category, COALESCE(SUM(duration), 0) AS total_seconds
		FROM %s.activity_logs
		WHERE activity_type = $1
		  AND application_name IS NOT NULL
		  AND timestamp >= $2 AND timestamp < $3
		GROUP BY application_name, category
		ORDER BY total_seconds DESC, application_name ASC
		LIMIT $4`, r.schema)

	usage := []*models.ApplicationUsage{}
	if err := db.SelectContext(ctx, &usage, query, models.ActivityTypeAppUsage, from, to, limit); err != nil {
		return nil, fmt.Errorf("failed to get top applications: %w", err)
	}

	return usage, nil
}
