package worker

import (
	"context"
	"encoding/json"
	"time"

	"github.com/smartresume/smartresume/builder/resume"
	"github.com/smartresume/smartresume/builder/resume/resumesrv"
	"github.com/smartresume/smartresume/pkg/logx"
)

type ImportWorker struct {
	service *resumesrv.Service
	queue   resume.JobQueue
	workers int
}

func NewImportWorker(service *resumesrv.Service, queue resume.JobQueue, workers int) *ImportWorker {
	return &ImportWorker{
		service: service,
		queue:   queue,
		workers: workers,
	}
}

func (w *ImportWorker) Start(ctx context.Context) {
	logx.Infof("Starting %d import workers", w.workers)

	go w.moveDelayedJobs(ctx)

	for i := 0; i < w.workers; i++ {
		go w.processJobs(ctx, i)
	}
}

func (w *ImportWorker) processJobs(ctx context.Context, workerID int) {
	logx.Infof("Worker %d started", workerID)

	for {
		select {
		case <-ctx.Done():
			logx.Infof("Worker %d stopping", workerID)
			return
		default:
			data, err := w.queue.Dequeue(ctx, 5*time.Second)
			if err != nil {
				logx.Errorf("Worker %d dequeue error: %v", workerID, err)
				continue
			}

			// Nil data means the blocking pop timed out
			if len(data) == 0 {
				continue
			}

			var job resume.ImportJob
			if err := json.Unmarshal(data, &job); err != nil {
				logx.Errorf("Worker %d unmarshal error: %v (data: %s)", workerID, err, string(data))
				continue
			}

			logx.Infof("Worker %d processing job: %s", workerID, job.ID)
			if err := w.service.ProcessImportJob(ctx, &job); err != nil {
				logx.Errorf("Worker %d job failed: %v", workerID, err)
			}
		}
	}
}

func (w *ImportWorker) moveDelayedJobs(ctx context.Context) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			count, err := w.queue.MoveDelayedToReady(ctx)
			if err != nil {
				logx.Errorf("Failed to move delayed jobs: %v", err)
			} else if count > 0 {
				logx.Infof("Moved %d delayed jobs to ready queue", count)
			}
		}
	}
}
