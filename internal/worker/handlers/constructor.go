package worker_handler

import (
	"github.com/virtutask/virtutask-api/internal/mail"
	subtask_repo "github.com/virtutask/virtutask-api/internal/repo/subtask-repo"
)

type WorkerHandler struct {
	sr     subtask_repo.SubtaskRepoContract
	mailer mail.Mailer
}

func NewWorkerHandler(sr subtask_repo.SubtaskRepoContract, mailer mail.Mailer) *WorkerHandler {
	return &WorkerHandler{
		sr:     sr,
		mailer: mailer,
	}
}
