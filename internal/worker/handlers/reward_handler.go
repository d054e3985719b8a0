package worker_handler

import (
	"context"
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	worker_task "github.com/virtutask/virtutask-api/internal/worker/tasks"
)

func (wh *WorkerHandler) RewardGrantedEmail() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p worker_task.RewardGrantedPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Error().Err(err).Msg("Worker handler: Payload nicht lesbar.")
			// Kaputte Payload wird nie lesbar, daher kein Retry
			return fmt.Errorf("%w: %v", asynq.SkipRetry, err)
		}

		if p.Email == "" {
			return nil
		}

		if err := wh.mailer.SendRewardNotification(ctx, &p); err != nil {
			log.Error().Err(err).Str("reward_id", p.RewardID).Msg("Worker handler: Belohnungs-Mail fehlgeschlagen.")
			return err
		}
		return nil
	}
}
