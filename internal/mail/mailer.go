package mail

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rs/zerolog/log"
	"github.com/virtutask/virtutask-api/internal/config"
	worker_task "github.com/virtutask/virtutask-api/internal/worker/tasks"
)

type Mailer interface {
	SendRewardNotification(ctx context.Context, p *worker_task.RewardGrantedPayload) error
}

type MailService struct {
	DomainSender string
	MailtrapUrl  string
	MailAPI      string
	client       *http.Client
}

func NewMailer(cfg *config.AppConfig) Mailer {
	if cfg.APP.State == "prod" {
		return newMailService(cfg.MAILTRAP.API.MailtrapDomain, cfg.MAILTRAP.API.MailtrapURL, cfg.MAILTRAP.API.MailtrapTokenAPI)
	}
	return newMailService(cfg.MAILTRAP.Sandbox.SandboxDomain, cfg.MAILTRAP.Sandbox.SandboxURL, cfg.MAILTRAP.Sandbox.SandboxAPI)
}

func newMailService(sender, url, apiKey string) *MailService {
	return &MailService{
		DomainSender: sender,
		MailtrapUrl:  url,
		MailAPI:      apiKey,
		client:       &http.Client{Timeout: 10 * time.Second},
	}
}

func (m *MailService) SendRewardNotification(ctx context.Context, p *worker_task.RewardGrantedPayload) error {
	name := p.Username
	if name == "" {
		name = p.EmployeeID
	}

	payload := map[string]any{
		"from": map[string]string{
			"email": m.DomainSender,
			"name":  "VirtuTask - Rewards",
		},
		"to": []map[string]string{
			{
				"email": p.Email,
			},
		},
		"subject": fmt.Sprintf("You earned a reward: %s", p.RewardType),
		"text": fmt.Sprintf(`
		Hi %s,

		Your productivity score of %s earned you a reward.

		Reward	: %s
		Amount	: %s %s
		Details	: %s
		Granted	: %s

		Keep it up!

		— VirtuTask
		`, name, formatNumber(p.Points), p.RewardType, formatNumber(p.RewardAmount), p.RewardUnit, p.Description, p.GrantedAt.Format("02 Jan 2006 15:04 MST")),
		"category": "Rewards",
	}

	return m.send(ctx, payload)
}

func (m *MailService) send(ctx context.Context, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		log.Error().Err(err).Msg("Error when marshalling payload body.")
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.MailtrapUrl, bytes.NewBuffer(body))
	if err != nil {
		return err
	}

	req.Header.Set("Authorization", "Bearer "+m.MailAPI)
	req.Header.Set("Content-Type", "application/json")

	resp, err := m.client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("Error when get response from server.")
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("mailtrap send failed: status=%d body=%s",
			resp.StatusCode,
			string(respBody))
	}

	return nil
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
