package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/virtutask/virtutask-api/internal/config"
	"github.com/virtutask/virtutask-api/internal/db"
	"github.com/virtutask/virtutask-api/internal/mail"
	subtask_repo "github.com/virtutask/virtutask-api/internal/repo/subtask-repo"
	"github.com/virtutask/virtutask-api/internal/worker"
	worker_handler "github.com/virtutask/virtutask-api/internal/worker/handlers"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.DebugLevel)
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.LoadConfig()
	if cfg == nil {
		log.Fatal().Msg("config not loaded")
	}

	dbPool, err := db.ConnectPool(cfg.DATABASE.Postgres.DSN)
	if err != nil {
		log.Fatal().Err(err).Msg("postgres pool failed")
	}
	redisPool, err := db.RedisPool(cfg.DATABASE.Redis.Addr, cfg.DATABASE.Redis.Password, 0)
	if err != nil {
		log.Fatal().Err(err).Msg("redis pool failed")
	}

	mailer := mail.NewMailer(cfg)
	handler := worker_handler.NewWorkerHandler(subtask_repo.NewSubtaskRepo(dbPool), mailer)

	mux := asynq.NewServeMux()
	worker.RegisterWorkerHandlers(mux, handler)

	scheduler := worker.NewScheduler(redisPool, cfg.Location())
	if err := worker.RegisterCronJobs(scheduler, cfg.APP.CascadeSubtasks); err != nil {
		log.Fatal().Err(err).Msg("cron registration failed")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	// run worker
	errChan := make(chan error, 1)
	done := make(chan struct{})
	go func() {
		defer close(done)
		log.Info().Msg("Starting worker server...")
		if err := worker.RunWorker(ctx, worker.NewWorkerServer(redisPool), scheduler, mux); err != nil {
			errChan <- err
		}
	}()

	// wait for shutdown signal or error
	select {
	case sig := <-sigChan:
		log.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
		<-done
		dbPool.Close()
		redisPool.Close()
		log.Info().Msg("worker shutdown complete")
	case err := <-errChan:
		log.Fatal().Err(err).Msg("worker crashed")
	}
}
