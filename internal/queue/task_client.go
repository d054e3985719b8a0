package queue

import (
	json "github.com/goccy/go-json"
	"github.com/hibiken/asynq"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
	worker_task "github.com/virtutask/virtutask-api/internal/worker/tasks"
)

type TaskQueueClient interface {
	EnqueueRewardGranted(payload *worker_task.RewardGrantedPayload) error
}

type TaskQueue struct {
	client *asynq.Client
}

func NewTaskQueue(redis *redis.Client) *TaskQueue {
	return &TaskQueue{
		client: asynq.NewClientFromRedisClient(redis),
	}
}

func (q *TaskQueue) EnqueueRewardGranted(payload *worker_task.RewardGrantedPayload) error {
	p, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	task := asynq.NewTask(worker_task.TaskRewardGranted, p, asynq.Queue("email"), asynq.MaxRetry(5))

	info, err := q.client.Enqueue(task)
	if err != nil {
		return err
	}
	log.Debug().Str("task_id", info.ID).Str("queue", info.Queue).Msg("reward notification enqueued")
	return nil
}
