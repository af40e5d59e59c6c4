package service

import (
	"testing"
	"time"

	"costmanager/models"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newUser(id int64) *models.User {
	return &models.User{
		UserID:        id,
		FirstName:     "A",
		LastName:      "B",
		Birthday:      time.Date(1990, 1, 1, 0, 0, 0, 0, time.Local),
		MaritalStatus: "single",
	}
}

// 编号已存在时拒绝创建，不覆盖已有记录
func TestUserService_Create_Duplicate(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(userRow())

	_, users, _ := newServices(db)
	err := users.Create(newUser(1001))
	assert.ErrorIs(t, err, ErrDuplicateUser)
	// 未设置 INSERT 期望，出现写入即失败
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Create_Success(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns()))
	mock.ExpectBegin()
	mock.ExpectExec("INSERT INTO `users`").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	_, users, _ := newServices(db)
	require.NoError(t, users.Create(newUser(1001)))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_GetDetails(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(userRow())
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM `expenses`").
		WillReturnRows(sumRows(23.5))

	_, users, _ := newServices(db)
	details, err := users.GetDetails(1001)
	require.NoError(t, err)
	assert.Equal(t, &UserDetails{FirstName: "A", LastName: "B", ID: 1001, Total: 23.5}, details)
	require.NoError(t, mock.ExpectationsWereMet())
}

// 无任何消费记录时 total 为 0 而非缺失
func TestUserService_GetDetails_ZeroTotal(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").WillReturnRows(userRow())
	mock.ExpectQuery("SELECT COALESCE\\(SUM\\(amount\\), 0\\) FROM `expenses`").
		WillReturnRows(sumRows(0))

	_, users, _ := newServices(db)
	details, err := users.GetDetails(1001)
	require.NoError(t, err)
	assert.Equal(t, float64(0), details.Total)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_GetDetails_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectQuery("SELECT .* FROM `users`").
		WillReturnRows(sqlmock.NewRows(userColumns()))

	_, users, _ := newServices(db)
	_, err := users.GetDetails(999999)
	assert.ErrorIs(t, err, ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUserService_Delete_NotFound(t *testing.T) {
	db, mock, cleanup := setupMockDB(t)
	defer cleanup()

	mock.ExpectBegin()
	mock.ExpectExec("DELETE FROM `users`").
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	_, users, _ := newServices(db)
	assert.ErrorIs(t, users.Delete(999999), ErrUserNotFound)
	require.NoError(t, mock.ExpectationsWereMet())
}
