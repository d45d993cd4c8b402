package database

import (
	"capserv/config"
	"capserv/models"
	"fmt"
	"log"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// DbInstance struct holds the database connection instance
type DbInstance struct {
	Db   *gorm.DB
	Kind string // "postgres" or "sqlite", reported by the health endpoint
}

// Database is the global database instance
var Database DbInstance

// ConnectDb establishes the database connection. PostgreSQL is used when
// DB_HOST is configured; otherwise a local sqlite file keeps the server
// usable without external infrastructure.
func ConnectDb() {
	var dialector gorm.Dialector
	kind := "sqlite"

	if config.AppConfig.DBHost != "" {
		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
			config.AppConfig.DBHost,
			config.AppConfig.DBUser,
			config.AppConfig.DBPassword,
			config.AppConfig.DBName,
			config.AppConfig.DBPort,
		)
		dialector = postgres.Open(dsn)
		kind = "postgres"
	} else {
		dialector = sqlite.Open(config.AppConfig.DBName)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		log.Fatalf("Failed to connect to %s: %v", kind, err)
	}

	// Set up connection pooling
	sqlDB, err := db.DB()
	if err != nil {
		log.Fatalf("Failed to get database instance: %v", err)
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(0)

	runMigrations(db)

	Database = DbInstance{Db: db, Kind: kind}
}

// runMigrations performs database migrations
func runMigrations(db *gorm.DB) {
	log.Println("Running Migrations...")

	if err := db.AutoMigrate(&models.Review{}); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations completed successfully.")
}
