package usecase

import (
	"context"

	"talent-hub-backend/internal/domain"
	"talent-hub-backend/pkg/apperror"
	"talent-hub-backend/pkg/logger"
	"talent-hub-backend/pkg/validation"
)

type jobUsecase struct {
	jobRepo domain.JobRepository
}

func NewJobUsecase(jobRepo domain.JobRepository) domain.JobUsecase {
	return &jobUsecase{jobRepo: jobRepo}
}

func (u *jobUsecase) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return u.jobRepo.GetAll(ctx), nil
}

func (u *jobUsecase) GetJob(ctx context.Context, id string) (*domain.Job, error) {
	job, ok := u.jobRepo.GetByID(ctx, id)
	if !ok {
		return nil, apperror.NotFound("Job not found")
	}
	return job, nil
}

func (u *jobUsecase) CreateJob(ctx context.Context, in domain.JobInput) (*domain.Job, error) {
	job := u.jobRepo.Create(ctx, in)
	logger.Log.Info("Job created", "job_id", job.ID, "status", job.Status)
	return job, nil
}

func (u *jobUsecase) UpdateJob(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, error) {
	if err := patch.Validate(); err != nil {
		return nil, apperror.Invalid("Invalid job data", validation.FormatValidationErrors(err), err)
	}

	job, ok := u.jobRepo.Update(ctx, id, patch)
	if !ok {
		return nil, apperror.NotFound("Job not found")
	}
	logger.Log.Info("Job updated", "job_id", job.ID)
	return job, nil
}

func (u *jobUsecase) DeleteJob(ctx context.Context, id string) error {
	if !u.jobRepo.Delete(ctx, id) {
		return apperror.NotFound("Job not found")
	}
	logger.Log.Info("Job deleted", "job_id", id)
	return nil
}
