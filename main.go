package main

import (
	"flag"
	"log"
	"strings"

	"costmanager/config"
	"costmanager/database"
	"costmanager/logger"
	"costmanager/router"

	"github.com/joho/godotenv"
)

// @title 记账系统 API
// @version 1.0
// @description 个人消费记录服务：用户与消费记录管理、月度分类报表、累计消费统计与数据导出
// @host localhost:8080
// @BasePath /

var (
	configFile  string
	port        string
	showVersion bool
)

func init() {
	flag.StringVar(&configFile, "config", "", "外部配置文件路径（可选）")
	flag.StringVar(&configFile, "c", "", "外部配置文件路径（简写）")
	flag.StringVar(&port, "port", "", "监听端口，如: 8080 或 :8080")
	flag.StringVar(&port, "p", "", "监听端口（简写）")
	flag.BoolVar(&showVersion, "version", false, "显示版本信息")
	flag.BoolVar(&showVersion, "v", false, "显示版本信息（简写）")
}

func main() {
	flag.Parse()

	if showVersion {
		log.Println("记账系统 v1.0.0")
		return
	}

	// 可选的 .env 文件，供环境变量覆盖配置用
	_ = godotenv.Load()

	// 加载配置（内置配置 + 可选的外部配置覆盖）
	cfg, err := config.LoadConfig(configFile)
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}

	// 命令行参数覆盖端口配置
	if port != "" {
		// 自动添加冒号前缀
		if !strings.HasPrefix(port, ":") {
			port = ":" + port
		}
		cfg.Server.Port = port
	}

	appLog := logger.New(cfg.Server.LogLevel)

	// 初始化数据库
	db, err := database.Open(cfg, appLog)
	if err != nil {
		appLog.WithError(err).Fatal("数据库初始化失败")
	}

	// 设置路由
	r := router.SetupRouter(cfg, db, appLog)

	appLog.WithField("port", cfg.Server.Port).Info("记账系统已启动")
	if err := r.Run(cfg.Server.Port); err != nil {
		appLog.WithError(err).Fatal("服务器启动失败")
	}
}
