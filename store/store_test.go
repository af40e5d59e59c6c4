package store

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

// setupMockDB 构建基于 sqlmock 的 gorm 连接
func setupMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock, func()) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	gormDB, err := gorm.Open(mysql.New(mysql.Config{
		Conn:                      sqlDB,
		SkipInitializeWithVersion: true,
	}), &gorm.Config{})
	require.NoError(t, err)

	return gormDB, mock, func() { sqlDB.Close() }
}

func userColumns() []string {
	return []string{"id", "user_id", "first_name", "last_name", "birthday", "marital_status", "created_at", "updated_at"}
}

func expenseColumns() []string {
	return []string{"id", "user_id", "owner_ref", "description", "category", "amount", "date", "created_at", "updated_at"}
}

func userRow() *sqlmock.Rows {
	return sqlmock.NewRows(userColumns()).
		AddRow(1, 1001, "A", "B", time.Date(1990, 1, 1, 0, 0, 0, 0, time.Local), "single", time.Now(), time.Now())
}
