package worker

import (
	"context"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
)

// RunWorker startet Scheduler und Server und blockiert bis ctx endet.
func RunWorker(ctx context.Context, srv *asynq.Server, scheduler *asynq.Scheduler, mux *asynq.ServeMux) error {
	if err := srv.Start(mux); err != nil {
		return err
	}

	if err := scheduler.Start(); err != nil {
		srv.Shutdown()
		return err
	}

	<-ctx.Done()
	log.Info().Msg("shutting down worker server...")

	scheduler.Shutdown()
	srv.Shutdown()

	return nil
}
