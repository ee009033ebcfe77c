package memory

import (
	"context"
	"time"

	"talent-hub-backend/internal/domain"
	"talent-hub-backend/pkg/identifier"
)

type candidateRepo struct {
	candidates *collection[domain.Candidate]
	newID      identifier.Generator
	now        func() time.Time
}

func NewCandidateRepository(newID identifier.Generator, now func() time.Time) domain.CandidateRepository {
	return &candidateRepo{
		candidates: newCollection(domain.Candidate.Clone),
		newID:      newID,
		now:        now,
	}
}

func (r *candidateRepo) GetAll(ctx context.Context) []domain.Candidate {
	return r.candidates.all()
}

func (r *candidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, bool) {
	candidate, ok := r.candidates.get(id)
	if !ok {
		return nil, false
	}
	return &candidate, true
}

func (r *candidateRepo) Create(ctx context.Context, in domain.CandidateInput) *domain.Candidate {
	candidate := r.candidates.create(r.newID, func(id string) domain.Candidate {
		return domain.NewCandidate(id, in, r.now())
	})
	return &candidate
}

func (r *candidateRepo) Update(ctx context.Context, id string, patch domain.CandidatePatch) (*domain.Candidate, bool) {
	candidate, ok := r.candidates.update(id, func(cur domain.Candidate) domain.Candidate {
		return cur.Merge(patch)
	})
	if !ok {
		return nil, false
	}
	return &candidate, true
}

func (r *candidateRepo) Delete(ctx context.Context, id string) bool {
	return r.candidates.remove(id)
}
