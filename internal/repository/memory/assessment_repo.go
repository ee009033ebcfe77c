package memory

import (
	"context"
	"time"

	"talent-hub-backend/internal/domain"
	"talent-hub-backend/pkg/identifier"
)

type assessmentRepo struct {
	assessments *collection[domain.Assessment]
	newID       identifier.Generator
	now         func() time.Time
}

func NewAssessmentRepository(newID identifier.Generator, now func() time.Time) domain.AssessmentRepository {
	return &assessmentRepo{
		assessments: newCollection(domain.Assessment.Clone),
		newID:       newID,
		now:         now,
	}
}

func (r *assessmentRepo) GetAll(ctx context.Context) []domain.Assessment {
	return r.assessments.all()
}

func (r *assessmentRepo) GetByID(ctx context.Context, id string) (*domain.Assessment, bool) {
	assessment, ok := r.assessments.get(id)
	if !ok {
		return nil, false
	}
	return &assessment, true
}

func (r *assessmentRepo) Create(ctx context.Context, in domain.AssessmentInput) *domain.Assessment {
	assessment := r.assessments.create(r.newID, func(id string) domain.Assessment {
		return domain.NewAssessment(id, in, r.now())
	})
	return &assessment
}

func (r *assessmentRepo) Update(ctx context.Context, id string, patch domain.AssessmentPatch) (*domain.Assessment, bool) {
	assessment, ok := r.assessments.update(id, func(cur domain.Assessment) domain.Assessment {
		return cur.Merge(patch)
	})
	if !ok {
		return nil, false
	}
	return &assessment, true
}

func (r *assessmentRepo) Delete(ctx context.Context, id string) bool {
	return r.assessments.remove(id)
}
