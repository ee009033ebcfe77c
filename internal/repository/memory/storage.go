package memory

import (
	"context"
	"time"

	"talent-hub-backend/internal/domain"
	"talent-hub-backend/pkg/identifier"
)

// Storage bundles one independent repository per entity kind. The
// repositories share no state and never look into each other.
type Storage struct {
	Users       domain.UserRepository
	Jobs        domain.JobRepository
	Candidates  domain.CandidateRepository
	Assessments domain.AssessmentRepository
}

type options struct {
	newID identifier.Generator
	now   func() time.Time
}

type Option func(*options)

// WithIDGenerator replaces the UUID generator used for new records.
func WithIDGenerator(g identifier.Generator) Option {
	return func(o *options) {
		o.newID = g
	}
}

// WithClock replaces time.Now for createdAt stamps.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

func NewStorage(opts ...Option) *Storage {
	o := options{
		newID: identifier.NewUUID,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(&o)
	}

	return &Storage{
		Users:       NewUserRepository(o.newID),
		Jobs:        NewJobRepository(o.newID, o.now),
		Candidates:  NewCandidateRepository(o.newID, o.now),
		Assessments: NewAssessmentRepository(o.newID, o.now),
	}
}

// Counts reports the number of records held per kind.
func (s *Storage) Counts(ctx context.Context) map[string]int {
	return map[string]int{
		"jobs":        len(s.Jobs.GetAll(ctx)),
		"candidates":  len(s.Candidates.GetAll(ctx)),
		"assessments": len(s.Assessments.GetAll(ctx)),
	}
}
