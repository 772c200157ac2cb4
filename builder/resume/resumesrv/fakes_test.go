package resumesrv

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/smartresume/smartresume/builder/resume"
	"github.com/smartresume/smartresume/pkg/kernel"
)

type memResumeRepo struct {
	mu      sync.Mutex
	records map[kernel.ResumeID]*resume.Resume
}

func newMemResumeRepo() *memResumeRepo {
	return &memResumeRepo{records: make(map[kernel.ResumeID]*resume.Resume)}
}

func (r *memResumeRepo) Create(_ context.Context, rec *resume.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rec.ID]; ok {
		return resume.ErrInvalidResumeData().WithDetail("reason", "duplicate id")
	}
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *memResumeRepo) Update(_ context.Context, rec *resume.Resume) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[rec.ID]; !ok {
		return resume.ErrResumeNotFound().WithDetail("resume_id", rec.ID)
	}
	cp := *rec
	r.records[rec.ID] = &cp
	return nil
}

func (r *memResumeRepo) GetByID(_ context.Context, id kernel.ResumeID) (*resume.Resume, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec, ok := r.records[id]
	if !ok {
		return nil, resume.ErrResumeNotFound().WithDetail("resume_id", id)
	}
	cp := *rec
	return &cp, nil
}

func (r *memResumeRepo) ListByUserID(_ context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[resume.Resume], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []resume.Resume
	for _, rec := range r.records {
		if rec.UserID == userID {
			items = append(items, *rec)
		}
	}
	page := kernel.NewPaginated(items, pagination.Normalize(), len(items))
	return &page, nil
}

func (r *memResumeRepo) Delete(_ context.Context, id kernel.ResumeID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.records[id]; !ok {
		return resume.ErrResumeNotFound().WithDetail("resume_id", id)
	}
	delete(r.records, id)
	return nil
}

func (r *memResumeRepo) CountByUserID(_ context.Context, userID kernel.UserID) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var count int64
	for _, rec := range r.records {
		if rec.UserID == userID {
			count++
		}
	}
	return count, nil
}

type memJobRepo struct {
	mu   sync.Mutex
	jobs map[kernel.JobID]*resume.ImportJob
}

func newMemJobRepo() *memJobRepo {
	return &memJobRepo{jobs: make(map[kernel.JobID]*resume.ImportJob)}
}

func (r *memJobRepo) Create(_ context.Context, job *resume.ImportJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *memJobRepo) Update(_ context.Context, job *resume.ImportJob) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[job.ID]; !ok {
		return resume.ErrJobNotFound().WithDetail("job_id", job.ID)
	}
	cp := *job
	r.jobs[job.ID] = &cp
	return nil
}

func (r *memJobRepo) GetByID(_ context.Context, jobID kernel.JobID) (*resume.ImportJob, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return nil, resume.ErrJobNotFound().WithDetail("job_id", jobID)
	}
	cp := *job
	return &cp, nil
}

func (r *memJobRepo) ListByUserID(_ context.Context, userID kernel.UserID, pagination kernel.PaginationOptions) (*kernel.Paginated[resume.ImportJob], error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var items []resume.ImportJob
	for _, job := range r.jobs {
		if job.UserID == userID {
			items = append(items, *job)
		}
	}
	page := kernel.NewPaginated(items, pagination.Normalize(), len(items))
	return &page, nil
}

func (r *memJobRepo) MarkAsProcessing(_ context.Context, jobID kernel.JobID) error {
	return r.mutate(jobID, func(job *resume.ImportJob) {
		now := time.Now()
		job.Status = resume.JobStatusProcessing
		job.StartedAt = &now
	})
}

func (r *memJobRepo) MarkAsCompleted(_ context.Context, jobID kernel.JobID, resumeID kernel.ResumeID) error {
	return r.mutate(jobID, func(job *resume.ImportJob) {
		now := time.Now()
		job.Status = resume.JobStatusCompleted
		job.ResumeID = &resumeID
		job.CompletedAt = &now
		job.ProgressPercentage = 100
	})
}

func (r *memJobRepo) MarkAsFailed(_ context.Context, jobID kernel.JobID, errorMsg string) error {
	return r.mutate(jobID, func(job *resume.ImportJob) {
		now := time.Now()
		job.Status = resume.JobStatusFailed
		job.ErrorMessage = errorMsg
		job.FailedAt = &now
	})
}

func (r *memJobRepo) UpdateProgress(_ context.Context, jobID kernel.JobID, step resume.ImportStep, percentage int) error {
	return r.mutate(jobID, func(job *resume.ImportJob) {
		job.CurrentStep = &step
		job.ProgressPercentage = percentage
	})
}

func (r *memJobRepo) mutate(jobID kernel.JobID, fn func(*resume.ImportJob)) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	job, ok := r.jobs[jobID]
	if !ok {
		return resume.ErrJobNotFound().WithDetail("job_id", jobID)
	}
	fn(job)
	return nil
}

type memQueue struct {
	mu          sync.Mutex
	ready       [][]byte
	delayed     [][]byte
	failEnqueue bool
}

func newMemQueue() *memQueue {
	return &memQueue{}
}

func (q *memQueue) Enqueue(_ context.Context, _ kernel.JobID, payload any) error {
	if q.failEnqueue {
		return errors.New("queue unavailable")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.ready = append(q.ready, data)
	return nil
}

func (q *memQueue) Dequeue(_ context.Context, _ time.Duration) ([]byte, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.ready) == 0 {
		return nil, nil
	}
	data := q.ready[0]
	q.ready = q.ready[1:]
	return data, nil
}

func (q *memQueue) EnqueueDelayed(_ context.Context, _ kernel.JobID, payload any, _ time.Duration) error {
	if q.failEnqueue {
		return errors.New("queue unavailable")
	}
	data, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	q.mu.Lock()
	defer q.mu.Unlock()
	q.delayed = append(q.delayed, data)
	return nil
}

func (q *memQueue) MoveDelayedToReady(_ context.Context) (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	moved := len(q.delayed)
	q.ready = append(q.ready, q.delayed...)
	q.delayed = nil
	return moved, nil
}

func (q *memQueue) GetQueueSize(_ context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.ready)), nil
}

func (q *memQueue) GetDelayedQueueSize(_ context.Context) (int64, error) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return int64(len(q.delayed)), nil
}
