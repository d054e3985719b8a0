package worker_handler

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

func (wh *WorkerHandler) OrphanSubtaskSweep() asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		deleted, err := wh.sr.DeleteOrphanSubtasks(ctx)
		if err != nil {
			log.Error().Err(err).Msg("Worker handler: Orphan-Sweep fehlgeschlagen.")
			return err
		}
		if deleted > 0 {
			log.Info().Int64("deleted", deleted).Msg("Worker handler: verwaiste Unteraufgaben entfernt.")
		}
		return nil
	}
}
