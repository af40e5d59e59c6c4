package router

import (
	"time"

	"costmanager/api"
	"costmanager/config"
	_ "costmanager/docs"
	"costmanager/middleware"
	"costmanager/service"
	"costmanager/store"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRouter 设置路由
// 存储与服务在此组装，数据库句柄自外部注入
func SetupRouter(cfg *config.Config, db *gorm.DB, log *logrus.Logger) *gin.Engine {
	// 设置运行模式
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	// CORS 中间件
	r.Use(CORSMiddleware())

	userStore := store.NewUserStore(db)
	expenseStore := store.NewExpenseStore(db)
	reportAggregator := service.NewReportAggregator(expenseStore)
	expenseService := service.NewExpenseService(userStore, expenseStore)
	userService := service.NewUserService(userStore, reportAggregator)

	costHandler := api.NewCostHandler(expenseService, log)
	userHandler := api.NewUserHandler(userService, log)
	reportHandler := api.NewReportHandler(reportAggregator, log)
	exportHandler := api.NewExportHandler(expenseService, log)

	// Swagger 文档
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// API v1 路由组
	v1 := r.Group("/api/v1")
	{
		v1.GET("/categories", costHandler.GetCategories)
		v1.GET("/report", reportHandler.GetMonthly)

		// 写接口限流
		writeLimit := middleware.WriteRateLimit(120, time.Minute)

		costs := v1.Group("/costs")
		{
			costs.GET("", costHandler.List)
			costs.POST("", writeLimit, costHandler.Create)
			costs.PUT("/:id", writeLimit, costHandler.Update)
			costs.DELETE("/:id", writeLimit, costHandler.Delete)
		}

		users := v1.Group("/users")
		{
			users.GET("/:id", userHandler.GetDetails)
			users.POST("", writeLimit, userHandler.Create)
			users.PUT("/:id", writeLimit, userHandler.Update)
			users.DELETE("/:id", writeLimit, userHandler.Delete)
		}

		export := v1.Group("/export")
		{
			export.GET("/csv", exportHandler.ExportCSV)
			export.GET("/excel", exportHandler.ExportExcel)
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware CORS 跨域中间件
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
