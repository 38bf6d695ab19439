package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	dbtx "github.com/archanap13u/track-back/db/tx"
	"github.com/archanap13u/track-back/models"
)

type PostgresAdminsRepository struct {
	db     *sqlx.DB
	schema string
}

// Column names for admins table
var adminsColumns = []string{
	"id",
	"username",
	"email",
	"password_hash",
	"role",
	"created_at",
}

func NewPostgresAdminsRepository(db *sqlx.DB, schema string) *PostgresAdminsRepository {
	return &PostgresAdminsRepository{db: db, schema: schema}
}

func (r *PostgresAdminsRepository) getAdminBy(
	ctx context.Context,
	column, value string,
) (mo.Option[*models.Admin], error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s.admins
		WHERE %s = $1`, strings.Join(adminsColumns, ", "), r.schema, column)

	admin := &models.Admin{}
	if err := db.GetContext(ctx, admin, query, value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return mo.None[*models.Admin](), nil
		}
		return mo.None[*models.Admin](), fmt.Errorf("failed to get admin by %s: %w", column, err)
	}

	return mo.Some(admin), nil
}

func (r *PostgresAdminsRepository) GetAdminByID(ctx context.Context, id string) (mo.Option[*models.Admin], error) {
	return r.getAdminBy(ctx, "id", id)
}

func (r *PostgresAdminsRepository) GetAdminByUsername(
	ctx context.Context,
	username string,
) (mo.Option[*models.Admin], error) {
	return r.getAdminBy(ctx, "username", username)
}

func (r *PostgresAdminsRepository) CreateAdmin(ctx context.Context, admin *models.Admin) error {
	db := dbtx.GetTransactional(ctx, r.db)

	returningStr := strings.Join(adminsColumns, ", ")

	query := fmt.Sprintf(`
		INSERT INTO %s.admins (id, username, email, password_hash, role, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING %s`, r.schema, returningStr)

	err := db.QueryRowxContext(ctx, query, admin.ID, admin.Username, admin.Email, admin.PasswordHash, admin.Role).
		StructScan(admin)
	if err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	return nil
}

func (r *PostgresAdminsRepository) DeleteAdmin(ctx context.Context, id string) (bool, error) {
	db := dbtx.GetTransactional(ctx, r.db)

	query := fmt.Sprintf(`DELETE FROM %s.admins WHERE id = $1`, r.schema)

	result, err := db.ExecContext(ctx, query, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete admin: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}
