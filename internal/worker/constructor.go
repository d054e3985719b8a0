package worker

import (
	"context"
	"time"

	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Queues: "email" für Belohnungs-Mails, "low" für den nächtlichen Sweep.
var queuePriorities = map[string]int{
	"email":   6,
	"default": 3,
	"low":     1,
}

func NewWorkerServer(redis *redis.Client) *asynq.Server {
	return asynq.NewServer(
		asynqRedisOpt(redis),
		asynq.Config{
			Concurrency:     5,
			Queues:          queuePriorities,
			ShutdownTimeout: 10 * time.Second,
			// linear bis max. eine Minute; Mail-Provider drosseln sonst
			RetryDelayFunc: func(n int, _ error, _ *asynq.Task) time.Duration {
				return min(time.Duration(n)*5*time.Second, time.Minute)
			},
			ErrorHandler: asynq.ErrorHandlerFunc(func(ctx context.Context, task *asynq.Task, err error) {
				retried, _ := asynq.GetRetryCount(ctx)
				maxRetry, _ := asynq.GetMaxRetry(ctx)
				log.Error().
					Err(err).
					Str("task", task.Type()).
					Int("retry", retried).
					Int("max_retry", maxRetry).
					Msg("task failed")
			}),
		},
	)
}

// NewScheduler plant in loc, damit "30 3 * * *" die lokale Nacht meint.
func NewScheduler(redis *redis.Client, loc *time.Location) *asynq.Scheduler {
	return asynq.NewScheduler(
		asynqRedisOpt(redis),
		&asynq.SchedulerOpts{
			Location: loc,
			LogLevel: asynq.InfoLevel,
			PostEnqueueFunc: func(info *asynq.TaskInfo, err error) {
				if err != nil {
					log.Error().Err(err).Msg("scheduler enqueue failed")
					return
				}
				log.Debug().Str("task", info.Type).Str("queue", info.Queue).Msg("scheduled task enqueued")
			},
		},
	)
}
