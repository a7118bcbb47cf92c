package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"cpusched/config"
)

// NewApp creates the fiber application with all scheduler routes.
func NewApp(config *config.SchedulerConfig) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName: "cpusched",
	})
	app.Use(recover.New())
	app.Use(logger.New())

	Register(app, NewSchedulerHandlerImpl(config))

	return app
}

// Register mounts the handler under /api/v1.
func Register(app *fiber.App, handler SchedulerHandler) {
	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/parse", handler.ParseDescription)
	}
}
