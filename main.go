package main

import (
	"footballers-insight/internal/config"
	"footballers-insight/internal/database"
	"footballers-insight/internal/engine"
	logger "footballers-insight/internal/logging"
	"footballers-insight/internal/router"
	"footballers-insight/internal/services"

	"go.uber.org/zap"
)

func main() {
	// Console-only logger until the configured one is up
	bootLog, err := zap.NewDevelopment()
	if err != nil {
		panic("failed to initialize bootstrap logger: " + err.Error())
	}

	// Initialize Configuration
	if err := config.Init(".", bootLog); err != nil {
		bootLog.Fatal("Failed to load configuration", zap.Error(err))
	}

	// Initialize Logger
	logCfg := config.Conf.Logging
	log, err := logger.Init(".", logger.RotationSettings{
		Directory:  logCfg.Directory,
		MaxSizeMB:  logCfg.MaxSize,
		MaxBackups: logCfg.MaxBackups,
		MaxAgeDays: logCfg.MaxAge,
		Compress:   logCfg.Compress,
	})
	if err != nil {
		bootLog.Fatal("Failed to initialize logger", zap.Error(err))
	}
	defer log.Sync()

	// Initialize Database
	database.Init(log)

	// Validate the embedded test catalog at startup
	catalog, err := engine.DefaultCatalog()
	if err != nil {
		log.Fatal("Failed to load test catalog", zap.Error(err))
	}

	computeSvc := services.NewComputeService(log, catalog)

	// Setup router, passing the logger to it
	r := router.Setup(log, computeSvc)

	// Start the Gin server
	port := ":" + config.Conf.Server.Port
	log.Info("Server listening on http://localhost" + port)
	if err := r.Run(port); err != nil {
		log.Fatal("Failed to run Gin server", zap.Error(err))
	}
}
