package middleware

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	gonanoid "github.com/matoous/go-nanoid/v2"
)

const (
	requestIDHeader    = "X-Request-ID"
	maxClientRequestID = 64
)

// RequestIDMiddleware übernimmt eine mitgeschickte X-Request-ID (max. 64 Zeichen)
// oder erzeugt eine neue mit Präfix "VT-".
func RequestIDMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(requestIDHeader)
		if requestID == "" || len(requestID) > maxClientRequestID {
			id, err := gonanoid.New()
			if err != nil {
				return fmt.Errorf("Fehler beim Generieren der Anforderungs-ID: %w", err)
			}
			requestID = "VT-" + id
		}

		c.Locals("request_id", requestID)
		c.Set(requestIDHeader, requestID)

		return c.Next()
	}
}
