package main

import (
	"log"

	"capserv/config"
	adminController "capserv/controllers/adminControllers"
	reviewController "capserv/controllers/reviewControllers"
	"capserv/database"
	"capserv/middleware"
	adminRoutes "capserv/routers/adminRoutes"
	reviewRoutes "capserv/routers/reviewRoutes"
	"capserv/store"
	"capserv/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

// buildNotifier assembles the notification channels from configuration.
// SendGrid wins over plain SMTP when both are configured; without either the
// console notifier keeps notifications visible in the logs.
func buildNotifier() utils.Notifier {
	cfg := config.AppConfig
	var channels []utils.Notifier

	switch {
	case cfg.SendGridAPIKey != "":
		channels = append(channels, utils.SendGridNotifier{
			APIKey:     cfg.SendGridAPIKey,
			From:       cfg.SMTPUser,
			AdminEmail: cfg.AdminEmail,
		})
	case cfg.SMTPHost != "":
		channels = append(channels, utils.SMTPNotifier{
			Host:       cfg.SMTPHost,
			Port:       cfg.SMTPPort,
			User:       cfg.SMTPUser,
			Pass:       cfg.SMTPPass,
			AdminEmail: cfg.AdminEmail,
		})
	default:
		channels = append(channels, utils.ConsoleNotifier{})
	}

	if cfg.WebhookURL != "" {
		channels = append(channels, utils.NewWebhookNotifier(cfg.WebhookURL))
	}

	return utils.NewDispatcher(channels...)
}

func main() {
	config.LoadConfig()
	database.ConnectDb()

	reviewStore := store.NewReviewStore(database.Database.Db)
	notifier := buildNotifier()

	limiter := middleware.NewRateLimiter(config.AppConfig.RateLimitMax, config.AppConfig.RateLimitWindow)
	sweeper := utils.StartRateLimitSweeper(limiter)
	defer sweeper.Stop()

	app := fiber.New(fiber.Config{
		// Internal details are logged, never sent to the caller.
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			if code >= fiber.StatusInternalServerError {
				log.Printf("Unhandled error: %v", err)
				return middleware.ErrorResponse(c, code, "Something went wrong!")
			}
			return middleware.ErrorResponse(c, code, err.Error())
		},
	})

	app.Use(helmet.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,email,password",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	auth := middleware.CredentialAuthenticator{
		Email:    config.AppConfig.AdminEmail,
		Password: config.AppConfig.AdminPassword,
	}

	rc := reviewController.New(reviewStore, notifier)
	rc.DatabaseKind = database.Database.Kind
	rc.EmailEnabled = config.AppConfig.SMTPHost != "" || config.AppConfig.SendGridAPIKey != ""
	ac := adminController.New(reviewStore, notifier)

	reviewRoutes.SetupReviewRoutes(app, rc, limiter)
	adminRoutes.SetupAdminRoutes(app, ac, auth)

	// 404 handler
	app.Use(func(c *fiber.Ctx) error {
		return middleware.ErrorResponse(c, fiber.StatusNotFound, "Route not found")
	})

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
