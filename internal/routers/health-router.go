package routers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

type readinessCheck struct {
	name  string
	probe func(ctx context.Context) error
}

// HealthRouter registriert /healthz, /livez und /readyz ohne Authentifizierung.
// /readyz prüft Redis und Postgres nacheinander; der erste Fehler liefert 503.
func HealthRouter(app fiber.Router, db *pgxpool.Pool, rdb *redis.Client) {
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "VirtuTask API lebt.",
		})
	})

	app.Get("/livez", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).SendString("Lebt.")
	})

	checks := []readinessCheck{
		{name: "redis", probe: func(ctx context.Context) error { return rdb.Ping(ctx).Err() }},
		{name: "postgres", probe: db.Ping},
	}

	app.Get("/readyz", func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
		defer cancel()

		for _, check := range checks {
			if err := check.probe(ctx); err != nil {
				return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
					"status":    "not_ready",
					"component": check.name,
					"error":     err.Error(),
				})
			}
		}

		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ready",
			"message": "Datenbank und Redis sind einsatzbereit.",
		})
	})
}
