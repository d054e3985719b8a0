package routers

import (
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	redis_fiber "github.com/gofiber/storage/redis/v3"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
)

// NewLimiterStorage legt den Redis-Speicher für den Limiter an (eigene Datenbank 1).
func NewLimiterStorage(addr, password string) (fiber.Storage, error) {
	host, portStr, err := net.SplitHostPort(addr)
	if err != nil {
		return nil, fmt.Errorf("redis addr %q: %w", addr, err)
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("redis port %q: %w", portStr, err)
	}

	return redis_fiber.New(redis_fiber.Config{
		Host:     host,
		Port:     port,
		Password: password,
		Database: 1,
	}), nil
}

// rateLimit zählt pro Benutzer und Präfix, ohne Benutzer pro IP.
func rateLimit(storage fiber.Storage, prefix string, max int, expiration time.Duration) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: expiration,
		KeyGenerator: func(c *fiber.Ctx) string {
			userID, ok := c.Locals("user_id").(string)
			if !ok || userID == "" {
				return prefix + ":ip:" + c.IP()
			}
			return prefix + ":" + userID
		},
		LimitReached: func(c *fiber.Ctx) error {
			return app_errors.NewAppError(fiber.StatusTooManyRequests, app_errors.ErrTooManyRequests, "request.too_many_requests", nil)
		},
		Storage: storage,
	})
}
