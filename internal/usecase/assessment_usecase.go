package usecase

import (
	"context"

	"talent-hub-backend/internal/domain"
	"talent-hub-backend/pkg/apperror"
	"talent-hub-backend/pkg/logger"
	"talent-hub-backend/pkg/validation"
)

// assessmentUsecase does not check candidateId or jobId against their
// stores. Dangling references are accepted and kept as given.
type assessmentUsecase struct {
	repo domain.AssessmentRepository
}

func NewAssessmentUsecase(repo domain.AssessmentRepository) domain.AssessmentUsecase {
	return &assessmentUsecase{repo: repo}
}

func (u *assessmentUsecase) ListAssessments(ctx context.Context) ([]domain.Assessment, error) {
	return u.repo.GetAll(ctx), nil
}

func (u *assessmentUsecase) GetAssessment(ctx context.Context, id string) (*domain.Assessment, error) {
	assessment, ok := u.repo.GetByID(ctx, id)
	if !ok {
		return nil, apperror.NotFound("Assessment not found")
	}
	return assessment, nil
}

func (u *assessmentUsecase) CreateAssessment(ctx context.Context, in domain.AssessmentInput) (*domain.Assessment, error) {
	assessment := u.repo.Create(ctx, in)
	logger.Log.Info("Assessment created",
		"assessment_id", assessment.ID,
		"candidate_id", assessment.CandidateID,
		"job_id", assessment.JobID,
	)
	return assessment, nil
}

func (u *assessmentUsecase) UpdateAssessment(ctx context.Context, id string, patch domain.AssessmentPatch) (*domain.Assessment, error) {
	if err := patch.Validate(); err != nil {
		return nil, apperror.Invalid("Invalid assessment data", validation.FormatValidationErrors(err), err)
	}

	assessment, ok := u.repo.Update(ctx, id, patch)
	if !ok {
		return nil, apperror.NotFound("Assessment not found")
	}
	logger.Log.Info("Assessment updated", "assessment_id", assessment.ID, "status", assessment.Status)
	return assessment, nil
}

func (u *assessmentUsecase) DeleteAssessment(ctx context.Context, id string) error {
	if !u.repo.Delete(ctx, id) {
		return apperror.NotFound("Assessment not found")
	}
	logger.Log.Info("Assessment deleted", "assessment_id", id)
	return nil
}
