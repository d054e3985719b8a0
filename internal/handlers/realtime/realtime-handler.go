package realtime_handlers

import (
	json "github.com/goccy/go-json"
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/virtutask/virtutask-api/internal/dtos"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	"github.com/virtutask/virtutask-api/internal/realtime"
	"github.com/virtutask/virtutask-api/internal/verifier"
)

type RealtimeHandler struct {
	hub          *realtime.Hub
	verifier     verifier.Verifier
	verifyTokens bool
}

func NewRealtimeHandler(hub *realtime.Hub, v verifier.Verifier, verifyTokens bool) *RealtimeHandler {
	return &RealtimeHandler{
		hub:          hub,
		verifier:     v,
		verifyTokens: verifyTokens,
	}
}

// Handshake prüft die Konto-ID vor dem Upgrade. Standardmäßig nur deren Form,
// mit verifyTokens zusätzlich das Token beim Credential-Verifier.
func (h *RealtimeHandler) Handshake(c *fiber.Ctx) error {
	if !websocket.IsWebSocketUpgrade(c) {
		return fiber.ErrUpgradeRequired
	}

	accountID := c.Query("account_id")
	if !dtos.IsValidAccountID(accountID) {
		return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.invalid_format", nil)
	}

	if h.verifyTokens {
		token := c.Query("token")
		if token == "" {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.missing_header", nil)
		}
		account, err := h.verifier.Verify(c.Context(), token)
		if err != nil {
			return err
		}
		if account.ID != accountID {
			return app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.invalid_token", nil)
		}
	}

	c.Locals("account_id", accountID)
	return c.Next()
}

func (h *RealtimeHandler) Serve() fiber.Handler {
	return websocket.New(h.serveConn)
}

func (h *RealtimeHandler) serveConn(conn *websocket.Conn) {
	accountID, _ := conn.Locals("account_id").(string)
	client := h.hub.Register(accountID)
	log.Debug().Str("account_id", accountID).Msg("Websocket verbunden")

	writerDone := make(chan struct{})
	go func() {
		defer close(writerDone)
		for frame := range client.Send {
			if err := conn.WriteMessage(websocket.TextMessage, frame); err != nil {
				break
			}
		}
		// Send geschlossen oder Schreibfehler: Leseschleife beenden
		_ = conn.Close()
	}()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			break
		}
		h.handleFrame(client, msg)
	}

	h.hub.Unregister(client)
	<-writerDone
	log.Debug().Str("account_id", accountID).Msg("Websocket getrennt")
}

func (h *RealtimeHandler) handleFrame(client *realtime.Client, msg []byte) {
	var frame realtime.ClientFrame
	if err := json.Unmarshal(msg, &frame); err != nil {
		log.Debug().Err(err).Str("account_id", client.AccountID).Msg("Ungültiger Client-Frame")
		return
	}
	if frame.ProjectID == "" {
		return
	}

	switch frame.Action {
	case realtime.ActionJoinProject:
		h.hub.Join(client, realtime.ProjectRoom(frame.ProjectID))
	case realtime.ActionLeaveProject:
		h.hub.Leave(client, realtime.ProjectRoom(frame.ProjectID))
	}
}
