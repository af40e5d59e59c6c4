package service

import (
	"testing"
	"time"

	"costmanager/models"
	"costmanager/validation"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 字段校验失败时不触达任何存储操作
func TestExpenseService_Create_ValidationBeforeStore(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	costs, _, _ := newServices(db)

	inputs := []CreateCostInput{
		{Description: "", Category: models.CategoryFood, UserID: 1001, Sum: 8},
		{Description: "flight", Category: "travel", UserID: 1001, Sum: 8},
		{Description: "milk", Category: models.CategoryFood, UserID: 1001, Sum: 0},
		{Description: "milk", Category: models.CategoryFood, UserID: 1001, Sum: -5},
	}
	for _, in := range inputs {
		_, err := costs.Create(in)
		assert.True(t, validation.IsValidationError(err))
	}

	// 未设置任何期望，有 SQL 触达即失败
	require.NoError(t, mock.ExpectationsWereMet())
}

// 用户不存在时不写入任何记录
func TestExpenseService_Create_UserNotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	costs, _, _ := newServices(db)
	_, err := costs.Create(CreateCostInput{
		Description: "milk", Category: models.CategoryFood, UserID: 999999, Sum: 8,
	})
	assert.ErrorIs(t, err, ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseService_Create_DefaultsDateToNow(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(userRow())
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	costs, _, _ := newServices(db)
	before := time.Now()
	expense, err := costs.Create(CreateCostInput{
		Description: "milk", Category: models.CategoryFood, UserID: 1001, Sum: 8,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1001), expense.UserID)
	// 冗余保存用户存储主键
	assert.Equal(t, uint(1), expense.OwnerRef)
	assert.WithinRange(t, expense.Date, before, time.Now())
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseService_Create_KeepsGivenDate(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(userRow())
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `expenses`").
		WillReturnResult(sqlmock.NewResult(2, 1))
	mock.ExpectCommit()

	date := time.Date(2024, 1, 15, 12, 30, 0, 0, time.Local)
	costs, _, _ := newServices(db)
	expense, err := costs.Create(CreateCostInput{
		Description: "milk", Category: models.CategoryFood, UserID: 1001, Sum: 8, Date: &date,
	})
	require.NoError(t, err)
	assert.Equal(t, date, expense.Date)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseService_Update_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `expenses`").
		WillReturnRows(sqlmock.NewRows(expenseColumns()))

	costs, _, _ := newServices(db)
	desc := "milk"
	_, err := costs.Update(999, UpdateCostInput{Description: &desc})
	assert.ErrorIs(t, err, ErrCostNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 更新不做字段级校验，越界值也原样写入（既有契约）
func TestExpenseService_Update_NoRevalidation(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	now := time.Now()
	existing := sqlmock.NewRows(expenseColumns()).
		AddRow(5, 1001, 1, "milk", "food", 8, now, now, now)
	updated := sqlmock.NewRows(expenseColumns()).
		AddRow(5, 1001, 1, "milk", "food", -5, now, now, now)

	mock.ExpectQuery("SELECT .* FROM `expenses`").WillReturnRows(existing)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()
	mock.ExpectQuery("SELECT .* FROM `expenses`").WillReturnRows(updated)

	costs, _, _ := newServices(db)
	sum := -5.0
	expense, err := costs.Update(5, UpdateCostInput{Sum: &sum})
	require.NoError(t, err)
	assert.Equal(t, -5.0, expense.Sum)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestExpenseService_Delete_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `expenses`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	costs, _, _ := newServices(db)
	assert.ErrorIs(t, costs.Delete(999), ErrCostNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
