package db

import (
	"fmt"
	"log"
	"strings"

	"recipe-api/confs"
	"recipe-api/entities"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Connect opens the Postgres database described by cfg, configures the
// connection pool and runs the schema migrations.
func Connect(cfg *confs.Config) (Database, error) {
	var dsn string

	if cfg.DBURL != "" {
		// Hosted databases hand out a single URL; make sure SSL is on.
		dsn = cfg.DBURL
		if !strings.Contains(dsn, "sslmode=") {
			if strings.Contains(dsn, "?") {
				dsn += "&sslmode=require"
			} else {
				dsn += "?sslmode=require"
			}
		}
		log.Println("Connecting to database using DB_URL...")
	} else {
		sslMode := "require"
		if cfg.DBHost == "localhost" || cfg.DBHost == "127.0.0.1" {
			sslMode = "disable"
		}

		dsn = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, sslMode)
		log.Printf("Connecting to database using individual parameters (sslmode=%s)...", sslMode)
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		PrepareStmt:    true,
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(0)

	log.Println("Database connection established successfully!")

	if err := Migrate(gdb); err != nil {
		return nil, err
	}

	return &GormDatabase{DB: gdb}, nil
}

// Migrate creates or updates the schema for every persisted entity.
func Migrate(gdb *gorm.DB) error {
	log.Println("Running database migrations...")
	if err := gdb.AutoMigrate(
		&entities.User{},
		&entities.AuthToken{},
		&entities.Tag{},
		&entities.Ingredient{},
		&entities.Recipe{},
	); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	log.Println("Database migrations completed successfully!")
	return nil
}
