package usecase

import (
	"context"

	"talent-hub-backend/internal/domain"
	"talent-hub-backend/pkg/apperror"
	"talent-hub-backend/pkg/logger"
	"talent-hub-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

type candidateUsecase struct {
	repo     domain.CandidateRepository
	validate *validator.Validate
}

func NewCandidateUsecase(repo domain.CandidateRepository, validate *validator.Validate) domain.CandidateUsecase {
	return &candidateUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *candidateUsecase) ListCandidates(ctx context.Context) ([]domain.Candidate, error) {
	return u.repo.GetAll(ctx), nil
}

func (u *candidateUsecase) GetCandidate(ctx context.Context, id string) (*domain.Candidate, error) {
	candidate, ok := u.repo.GetByID(ctx, id)
	if !ok {
		return nil, apperror.NotFound("Candidate not found")
	}
	return candidate, nil
}

func (u *candidateUsecase) CreateCandidate(ctx context.Context, in domain.CandidateInput) (*domain.Candidate, error) {
	candidate := u.repo.Create(ctx, in)
	logger.Log.Info("Candidate created", "candidate_id", candidate.ID)
	return candidate, nil
}

func (u *candidateUsecase) UpdateCandidate(ctx context.Context, id string, patch domain.CandidatePatch) (*domain.Candidate, error) {
	if err := patch.Validate(); err != nil {
		return nil, apperror.Invalid("Invalid candidate data", validation.FormatValidationErrors(err), err)
	}
	// Email keeps its create-time format rule when it is being changed.
	if patch.Email.Set {
		if err := u.validate.Var(patch.Email.Value, "required,email"); err != nil {
			return nil, apperror.Invalid("Invalid candidate data", []string{"email: must be a valid email address"}, err)
		}
	}

	candidate, ok := u.repo.Update(ctx, id, patch)
	if !ok {
		return nil, apperror.NotFound("Candidate not found")
	}
	logger.Log.Info("Candidate updated", "candidate_id", candidate.ID)
	return candidate, nil
}

func (u *candidateUsecase) DeleteCandidate(ctx context.Context, id string) error {
	if !u.repo.Delete(ctx, id) {
		return apperror.NotFound("Candidate not found")
	}
	logger.Log.Info("Candidate deleted", "candidate_id", id)
	return nil
}
