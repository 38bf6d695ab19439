package txmanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/archanap13u/track-back/db"
	dbtx "github.com/archanap13u/track-back/db/tx"
	"github.com/archanap13u/track-back/models"
	"github.com/archanap13u/track-back/testutils"
)

func setupTransactionTest(t *testing.T) (*TransactionManager, *db.PostgresEmployeesRepository, *models.Employee) {
	dbConn, schema := testutils.SetupTestDB(t)

	employeesRepo := db.NewPostgresEmployeesRepository(dbConn, schema)
	employee := testutils.CreateTestEmployee(t, employeesRepo)

	return NewTransactionManager(dbConn), employeesRepo, employee
}

func TestTransactionManager_WithTransaction_Commit(t *testing.T) {
	txManager, employeesRepo, employee := setupTransactionTest(t)
	ctx := testutils.CreateTestContext(t)

	err := txManager.WithTransaction(ctx, func(ctx context.Context) error {
		_, ok := dbtx.TransactionFromContext(ctx)
		require.True(t, ok, "transaction should be stored in context")
		return employeesRepo.UpdateEmployeeStatus(ctx, employee.ID, models.EmployeeStatusActive, time.Now())
	})
	require.NoError(t, err)

	maybeEmployee, err := employeesRepo.GetEmployeeByID(ctx, employee.ID)
	require.NoError(t, err)
	require.True(t, maybeEmployee.IsPresent())
	assert.Equal(t, models.EmployeeStatusActive, maybeEmployee.MustGet().Status)
}

func TestTransactionManager_WithTransaction_RollbackOnError(t *testing.T) {
	txManager, employeesRepo, employee := setupTransactionTest(t)
	ctx := testutils.CreateTestContext(t)

	err := txManager.WithTransaction(ctx, func(ctx context.Context) error {
		if err := employeesRepo.UpdateEmployeeStatus(ctx, employee.ID, models.EmployeeStatusIdle, time.Now()); err != nil {
			return err
		}
		return errors.New("intentional error to trigger rollback")
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "intentional error to trigger rollback")

	maybeEmployee, err := employeesRepo.GetEmployeeByID(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EmployeeStatusOffline, maybeEmployee.MustGet().Status)
}

func TestTransactionManager_WithTransaction_RollbackOnPanic(t *testing.T) {
	txManager, employeesRepo, employee := setupTransactionTest(t)
	ctx := testutils.CreateTestContext(t)

	assert.PanicsWithValue(t, "intentional panic to test rollback", func() {
		_ = txManager.WithTransaction(ctx, func(ctx context.Context) error {
			if err := employeesRepo.UpdateEmployeeStatus(ctx, employee.ID, models.EmployeeStatusAway, time.Now()); err != nil {
				return err
			}
			panic("intentional panic to test rollback")
		})
	})

	maybeEmployee, err := employeesRepo.GetEmployeeByID(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EmployeeStatusOffline, maybeEmployee.MustGet().Status)
}

func TestTransactionManager_WithTransaction_Nested(t *testing.T) {
	txManager, employeesRepo, employee := setupTransactionTest(t)
	ctx := testutils.CreateTestContext(t)

	err := txManager.WithTransaction(ctx, func(outerCtx context.Context) error {
		outerTx, _ := dbtx.TransactionFromContext(outerCtx)
		return txManager.WithTransaction(outerCtx, func(innerCtx context.Context) error {
			innerTx, _ := dbtx.TransactionFromContext(innerCtx)
			assert.Same(t, outerTx, innerTx, "nested call should reuse the outer transaction")
			return employeesRepo.UpdateEmployeeStatus(innerCtx, employee.ID, models.EmployeeStatusIdle, time.Now())
		})
	})
	require.NoError(t, err)

	maybeEmployee, err := employeesRepo.GetEmployeeByID(ctx, employee.ID)
	require.NoError(t, err)
	assert.Equal(t, models.EmployeeStatusIdle, maybeEmployee.MustGet().Status)
}
