package routers

import (
	"github.com/gofiber/fiber/v2"
	realtime_handlers "github.com/virtutask/virtutask-api/internal/handlers/realtime"
)

// RealtimeRouter: /ws ohne Bearer-Header, die Prüfung macht der Handshake.
func RealtimeRouter(app fiber.Router, h *realtime_handlers.RealtimeHandler) {
	app.Get("/ws", h.Handshake, h.Serve())
}
