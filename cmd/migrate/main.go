// This file is used to run database migrations
// How to run:
// go run cmd/migrate/main.go           # Migrate the schema and seed licenses
package main

import (
	"log"
	"strconv"

	"github.com/joho/godotenv"
	gormlogger "gorm.io/gorm/logger"

	"github.com/roster-im/roster/config"
	"github.com/roster-im/roster/internal/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	dbPort, err := strconv.Atoi(config.GetEnv("DB_PORT", "5432"))
	if err != nil {
		log.Fatalf("Invalid DB_PORT: %v", err)
	}

	// db.New runs AutoMigrate and seeds the default license catalog
	_, err = db.New(db.Options{
		Host:     config.GetEnv("DB_HOST", db.DefaultHost),
		User:     config.GetEnv("DB_USER", db.DefaultUser),
		Password: config.GetEnv("DB_PASSWORD", db.DefaultPassword),
		DBName:   config.GetEnv("DB_NAME", db.DefaultDBName),
		Port:     dbPort,
		LogLevel: gormlogger.Info,
	})
	if err != nil {
		log.Fatalf("Migration failed: %v", err)
	}

	log.Println("Migrations applied successfully")
}
