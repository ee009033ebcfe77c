package domain

import (
	"context"
	"slices"
	"time"
)

const (
	CandidateStatusActive   = "Active"
	CandidateStatusInactive = "Inactive"
)

type Candidate struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Phone      *string   `json:"phone"`
	Position   *string   `json:"position"`
	Experience *string   `json:"experience"`
	Skills     []string  `json:"skills"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type CandidateInput struct {
	Name       string   `json:"name" binding:"required"`
	Email      string   `json:"email" binding:"required,email"`
	Phone      *string  `json:"phone"`
	Position   *string  `json:"position"`
	Experience *string  `json:"experience"`
	Skills     []string `json:"skills"`
	Status     string   `json:"status"`
}

type CandidatePatch struct {
	Name       Optional[string]   `json:"name"`
	Email      Optional[string]   `json:"email"`
	Phone      Optional[*string]  `json:"phone"`
	Position   Optional[*string]  `json:"position"`
	Experience Optional[*string]  `json:"experience"`
	Skills     Optional[[]string] `json:"skills"`
	Status     Optional[string]   `json:"status"`
}

func NewCandidate(id string, in CandidateInput, createdAt time.Time) Candidate {
	return Candidate{
		ID:         id,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      nullIfEmpty(in.Phone),
		Position:   nullIfEmpty(in.Position),
		Experience: nullIfEmpty(in.Experience),
		Skills:     slices.Clone(in.Skills),
		Status:     withDefault(in.Status, CandidateStatusActive),
		CreatedAt:  createdAt,
	}
}

func (c Candidate) Merge(p CandidatePatch) Candidate {
	out := c
	p.Name.Apply(&out.Name)
	p.Email.Apply(&out.Email)
	p.Phone.Apply(&out.Phone)
	p.Position.Apply(&out.Position)
	p.Experience.Apply(&out.Experience)
	p.Skills.Apply(&out.Skills)
	p.Status.Apply(&out.Status)
	out.ID = c.ID
	out.CreatedAt = c.CreatedAt
	return out
}

// Clone returns a copy that shares no pointer or slice storage with c.
func (c Candidate) Clone() Candidate {
	c.Phone = clonePtr(c.Phone)
	c.Position = clonePtr(c.Position)
	c.Experience = clonePtr(c.Experience)
	c.Skills = slices.Clone(c.Skills)
	return c
}

func (p CandidatePatch) Validate() error {
	return notNull(
		field{"name", p.Name.Null},
		field{"email", p.Email.Null},
		field{"status", p.Status.Null},
	)
}

type CandidateRepository interface {
	GetAll(ctx context.Context) []Candidate
	GetByID(ctx context.Context, id string) (*Candidate, bool)
	Create(ctx context.Context, in CandidateInput) *Candidate
	Update(ctx context.Context, id string, patch CandidatePatch) (*Candidate, bool)
	Delete(ctx context.Context, id string) bool
}

type CandidateUsecase interface {
	ListCandidates(ctx context.Context) ([]Candidate, error)
	GetCandidate(ctx context.Context, id string) (*Candidate, error)
	CreateCandidate(ctx context.Context, in CandidateInput) (*Candidate, error)
	UpdateCandidate(ctx context.Context, id string, patch CandidatePatch) (*Candidate, error)
	DeleteCandidate(ctx context.Context, id string) error
}
