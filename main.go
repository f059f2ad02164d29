// @title 居家护理门户 API
// @version 1.0
// @description 居家护理运营门户的聚合网关，持久化与业务规则由上游诊疗平台承担。

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	"flag"
	"log"

	"homecare_portal/internal/app"
	"homecare_portal/internal/config"
	"homecare_portal/pkg/configwatcher"
	"homecare_portal/pkg/logger"
)

func main() {
	// 命令行参数
	configDir := flag.String("config", "configs", "配置文件目录")
	watch := flag.Bool("watch-config", false, "监听配置文件变更并热更新限流等参数")
	flag.Parse()

	cfg, err := config.LoadConfig(*configDir)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	if *watch {
		go configwatcher.WatchConfig(*configDir+"/config.yaml", func(newCfg *config.Config) {
			application.ApplyConfig(newCfg)
		})
	}

	application.Run()
}
