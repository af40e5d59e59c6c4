package api

import (
	"io"
	"testing"
	"time"

	"costmanager/service"
	"costmanager/store"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
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

func testLogger() *logrus.Logger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// newTestRouter 组装完整的处理器链，路由与生产一致（不含限流）
func newTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	log := testLogger()

	userStore := store.NewUserStore(db)
	expenseStore := store.NewExpenseStore(db)
	reportAggregator := service.NewReportAggregator(expenseStore)
	expenseService := service.NewExpenseService(userStore, expenseStore)
	userService := service.NewUserService(userStore, reportAggregator)

	costHandler := NewCostHandler(expenseService, log)
	userHandler := NewUserHandler(userService, log)
	reportHandler := NewReportHandler(reportAggregator, log)

	r := gin.New()
	v1 := r.Group("/api/v1")
	v1.GET("/categories", costHandler.GetCategories)
	v1.GET("/report", reportHandler.GetMonthly)
	v1.GET("/costs", costHandler.List)
	v1.POST("/costs", costHandler.Create)
	v1.PUT("/costs/:id", costHandler.Update)
	v1.DELETE("/costs/:id", costHandler.Delete)
	v1.GET("/users/:id", userHandler.GetDetails)
	v1.POST("/users", userHandler.Create)
	v1.PUT("/users/:id", userHandler.Update)
	v1.DELETE("/users/:id", userHandler.Delete)
	return r
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
