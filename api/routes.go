package api

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
)

// NewApp builds the fiber application with every scheduler route mounted.
func NewApp(handler SchedulerHandler) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logRequest)

	api := app.Group("/api")

	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/priority", handler.Priority)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
		v1.Post("/rms", handler.RateMonotonic)
		v1.Post("/edf", handler.EarliestDeadlineFirst)

		b := v1.Group("/bankers")
		b.Post("/safety", handler.BankersSafety)
		b.Post("/request", handler.BankersRequest)
	}
	return app
}

func logRequest(ctx *fiber.Ctx) error {
	start := time.Now()
	err := ctx.Next()
	slog.Info("Request completed",
		"request_id", ctx.GetRespHeader(fiber.HeaderXRequestID),
		"method", ctx.Method(),
		"path", ctx.Path(),
		"status", ctx.Response().StatusCode(),
		"latency_ms", time.Since(start).Milliseconds(),
	)
	return err
}
