package realtime_handlers_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/virtutask/virtutask-api/internal/entity"
	app_errors "github.com/virtutask/virtutask-api/internal/errors"
	realtime_handlers "github.com/virtutask/virtutask-api/internal/handlers/realtime"
	"github.com/virtutask/virtutask-api/internal/middleware"
	"github.com/virtutask/virtutask-api/internal/realtime"
	"github.com/virtutask/virtutask-api/internal/routers"
)

type keyTranslator struct{}

func (keyTranslator) T(_, key string, _ map[string]any) string { return key }

// echoVerifier akzeptiert jedes nicht-leere Token als gleichnamiges Konto.
type echoVerifier struct {
	calls int
}

func (v *echoVerifier) Verify(_ context.Context, token string) (*entity.Account, *app_errors.AppError) {
	v.calls++
	if token == "rejected" {
		return nil, app_errors.NewAppError(fiber.StatusUnauthorized, app_errors.ErrUnauthorized, "auth.invalid_token", nil)
	}
	return &entity.Account{ID: token, Role: entity.RoleUser}, nil
}

func (v *echoVerifier) SearchUsers(context.Context, string, string) ([]entity.Account, *app_errors.AppError) {
	return nil, nil
}

func newApp() *fiber.App {
	return fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandlerMiddleware(keyTranslator{})})
}

func doGet(t *testing.T, app *fiber.App, target string, upgrade bool) int {
	t.Helper()
	req := httptest.NewRequest(fiber.MethodGet, target, nil)
	if upgrade {
		req.Header.Set("Connection", "Upgrade")
		req.Header.Set("Upgrade", "websocket")
		req.Header.Set("Sec-WebSocket-Version", "13")
		req.Header.Set("Sec-WebSocket-Key", "dGhlIHNhbXBsZSBub25jZQ==")
	}
	resp, err := app.Test(req)
	require.NoError(t, err)
	return resp.StatusCode
}

func TestHandshake_Rejections(t *testing.T) {
	cases := []struct {
		name         string
		verifyTokens bool
		target       string
		upgrade      bool
		want         int
	}{
		{"plain http", false, "/ws?account_id=alice", false, fiber.StatusUpgradeRequired},
		{"missing account id", false, "/ws", true, fiber.StatusUnauthorized},
		{"account id too short", false, "/ws?account_id=a", true, fiber.StatusUnauthorized},
		{"account id bad chars", false, "/ws?account_id=al%20ice", true, fiber.StatusUnauthorized},
		{"token required", true, "/ws?account_id=alice", true, fiber.StatusUnauthorized},
		{"token for other account", true, "/ws?account_id=alice&token=bob", true, fiber.StatusUnauthorized},
		{"token rejected", true, "/ws?account_id=alice&token=rejected", true, fiber.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			app := newApp()
			routers.RealtimeRouter(app, realtime_handlers.NewRealtimeHandler(realtime.NewHub(4), &echoVerifier{}, tc.verifyTokens))

			assert.Equal(t, tc.want, doGet(t, app, tc.target, tc.upgrade))
		})
	}
}

func TestHandshake_AcceptsAndSetsAccountID(t *testing.T) {
	cases := []struct {
		name         string
		verifyTokens bool
		target       string
		wantCalls    int
	}{
		{"shape check only", false, "/ws?account_id=alice_01", 0},
		{"verified token", true, "/ws?account_id=alice_01&token=alice_01", 1},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v := &echoVerifier{}
			h := realtime_handlers.NewRealtimeHandler(realtime.NewHub(4), v, tc.verifyTokens)

			var seen string
			app := newApp()
			app.Get("/ws", h.Handshake, func(c *fiber.Ctx) error {
				seen, _ = c.Locals("account_id").(string)
				return c.SendStatus(fiber.StatusOK)
			})

			assert.Equal(t, fiber.StatusOK, doGet(t, app, tc.target, true))
			assert.Equal(t, "alice_01", seen)
			assert.Equal(t, tc.wantCalls, v.calls)
		})
	}
}
