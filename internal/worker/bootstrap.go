package worker

import (
	"fmt"

	"github.com/hibiken/asynq"
	"github.com/rs/zerolog/log"
	worker_handler "github.com/virtutask/virtutask-api/internal/worker/handlers"
	worker_task "github.com/virtutask/virtutask-api/internal/worker/tasks"
)

func RegisterWorkerHandlers(mux *asynq.ServeMux, h *worker_handler.WorkerHandler) {
	mux.HandleFunc(worker_task.TaskRewardGranted, h.RewardGrantedEmail())
	mux.HandleFunc(worker_task.TaskOrphanSubtaskSweep, h.OrphanSubtaskSweep())
}

// RegisterCronJobs plant den Orphan-Sweep nur, wenn Kaskadenlöschung aktiv ist.
func RegisterCronJobs(s *asynq.Scheduler, cascadeSubtasks bool) error {
	jobs := []struct {
		spec    string
		task    *asynq.Task
		queue   string
		desc    string
		enabled bool
	}{
		{
			spec:    "30 3 * * *",
			task:    asynq.NewTask(worker_task.TaskOrphanSubtaskSweep, nil),
			queue:   "low",
			desc:    "sweep orphaned subtasks",
			enabled: cascadeSubtasks,
		},
	}

	for _, job := range jobs {
		if !job.enabled {
			continue
		}
		if _, err := s.Register(job.spec, job.task, asynq.Queue(job.queue)); err != nil {
			return fmt.Errorf("register %s failed: %w", job.desc, err)
		}
		log.Info().Msgf("scheduled: %s", job.desc)
	}

	return nil
}
