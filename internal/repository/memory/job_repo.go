package memory

import (
	"context"
	"time"

	"talent-hub-backend/internal/domain"
	"talent-hub-backend/pkg/identifier"
)

type jobRepo struct {
	jobs  *collection[domain.Job]
	newID identifier.Generator
	now   func() time.Time
}

func NewJobRepository(newID identifier.Generator, now func() time.Time) domain.JobRepository {
	return &jobRepo{
		jobs:  newCollection(domain.Job.Clone),
		newID: newID,
		now:   now,
	}
}

func (r *jobRepo) GetAll(ctx context.Context) []domain.Job {
	return r.jobs.all()
}

func (r *jobRepo) GetByID(ctx context.Context, id string) (*domain.Job, bool) {
	job, ok := r.jobs.get(id)
	if !ok {
		return nil, false
	}
	return &job, true
}

func (r *jobRepo) Create(ctx context.Context, in domain.JobInput) *domain.Job {
	job := r.jobs.create(r.newID, func(id string) domain.Job {
		return domain.NewJob(id, in, r.now())
	})
	return &job
}

func (r *jobRepo) Update(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, bool) {
	job, ok := r.jobs.update(id, func(cur domain.Job) domain.Job {
		return cur.Merge(patch)
	})
	if !ok {
		return nil, false
	}
	return &job, true
}

func (r *jobRepo) Delete(ctx context.Context, id string) bool {
	return r.jobs.remove(id)
}
