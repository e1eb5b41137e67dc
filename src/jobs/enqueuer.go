package jobs

import (
	"context"
	"log"

	"Backend-Masons-Leads/src/models"

	"github.com/hibiken/asynq"
)

// TaskEnqueuer is the part of *asynq.Client used here.
type TaskEnqueuer interface {
	EnqueueContext(ctx context.Context, task *asynq.Task, opts ...asynq.Option) (*asynq.TaskInfo, error)
}

// ArchiveEnqueuer hands appended leads to the archive worker. Failures are
// logged only; the sheet row is already written.
type ArchiveEnqueuer struct {
	client TaskEnqueuer
}

func NewArchiveEnqueuer(client TaskEnqueuer) *ArchiveEnqueuer {
	return &ArchiveEnqueuer{client: client}
}

func (e *ArchiveEnqueuer) Archive(ctx context.Context, submissionID string, lead models.Lead) {
	if e.client == nil {
		log.Println("⚠️ Redis/Asynq not available → skip lead archive")
		return
	}

	task, err := NewArchiveLeadTask(submissionID, lead)
	if err != nil {
		log.Println("archive: create task failed:", err)
		return
	}

	if _, err := e.client.EnqueueContext(ctx, task, asynq.TaskID("archive-"+submissionID), asynq.MaxRetry(5)); err != nil {
		log.Println("archive: enqueue failed:", err)
		return
	}
	log.Printf("✅ archive queued: %s", submissionID)
}
