package main

import (
	"context"
	"strconv"

	fiber "github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"
	gormlogger "gorm.io/gorm/logger"

	"github.com/roster-im/roster/config"
	"github.com/roster-im/roster/internal/db"
	"github.com/roster-im/roster/internal/db/models"
	"github.com/roster-im/roster/internal/db/repos"
	"github.com/roster-im/roster/internal/logger"
	"github.com/roster-im/roster/internal/services"
	"github.com/roster-im/roster/pkg/api/v1/handlers"
	"github.com/roster-im/roster/pkg/api/v1/routes"
)

func main() {
	// Load .env if present; a missing file is fine in production
	if err := godotenv.Load(); err != nil {
		logger.Debugf("No .env file loaded: %v", err)
	}

	logger.InitializeAndConfigure()

	dbPort, err := strconv.Atoi(config.GetEnv("DB_PORT", "5432"))
	if err != nil {
		logger.Fatalf("Invalid DB_PORT: %v", err)
	}

	database, err := db.New(db.Options{
		Host:     config.GetEnv("DB_HOST", db.DefaultHost),
		User:     config.GetEnv("DB_USER", db.DefaultUser),
		Password: config.GetEnv("DB_PASSWORD", db.DefaultPassword),
		DBName:   config.GetEnv("DB_NAME", db.DefaultDBName),
		Port:     dbPort,
		LogLevel: gormlogger.Warn,
	})
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}

	// Wire repositories, services and handlers
	licenseService := services.NewLicenseService(repos.NewLicenseRepository(database))
	personService := services.NewPersonService(repos.NewPersonRepository(database), licenseService)

	personHandler := handlers.NewPersonHandler(personService)
	licenseHandler := handlers.NewLicenseHandler(licenseService)

	// The acting account is looked up by the configured machine address so
	// GET /people/me has something to return
	if meEmail := config.GetEnv("ROSTER_ME_EMAIL", ""); meEmail != "" {
		me, err := personService.GetPeople(context.Background(), &models.ListOptions{Email: meEmail})
		if err != nil || len(me) == 0 {
			logger.Warnf("Acting account %q not found, /people/me disabled", meEmail)
		} else {
			personHandler.SetMe(me[0].ID)
		}
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
	})
	app.Use(logger.APILogger())

	routes.RegisterRoutes(app, personHandler, licenseHandler)

	addr := ":" + config.GetEnv("PORT", routes.DefaultPort)
	logger.Infof("Starting roster API on %s", addr)
	logger.Fatal(app.Listen(addr))
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"error": err.Error(),
	})
}
