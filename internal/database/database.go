package database

import (
	"fmt"

	"footballers-insight/internal/config"
	logging "footballers-insight/internal/logging"
	"footballers-insight/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var DB *gorm.DB

func Init(log *zap.Logger) {
	var err error
	dbConf := config.Conf.Database
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		dbConf.Host, dbConf.User, dbConf.Password, dbConf.DBName, dbConf.Port)

	gormLogger := logging.NewGormZapLogger(log)
	gormLogger.LogLevel = logger.Warn

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormLogger,
	})

	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	log.Info("Database connection established successfully.")
	runMigrations(log)
}

func runMigrations(log *zap.Logger) {
	// AutoMigrate covers tables, columns and the tagged unique indexes; the
	// history-scan index is created by hand below.
	err := DB.AutoMigrate(
		&models.User{},
		&models.Player{},
		&models.Evaluation{},
		&models.PlayerEvaluation{},
		&models.PlayerRawScore{},
		&models.PlayerDerivedMetrics{},
		&models.PlayerNormalizedMetrics{},
		&models.PlayerCompositeScores{},
	)
	if err != nil {
		log.Fatal("Failed to run database migrations", zap.Error(err))
	}
	log.Info("Database migrations completed successfully.")

	// The cohort pass reads a team's full evaluation history ordered by
	// creation time on every compute request.
	historyIndex := `CREATE INDEX IF NOT EXISTS idx_evaluations_team_created ON evaluations (team_id, created_at DESC);`
	if err := DB.Exec(historyIndex).Error; err != nil {
		log.Fatal("Failed to create custom index on evaluations table", zap.Error(err))
	}
	log.Info("Custom indexes ensured successfully.")
}
