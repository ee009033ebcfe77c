package domain

import (
	"context"
	"time"
)

const (
	JobStatusOpen     = "Open"
	JobStatusArchived = "Archived"
	JobStatusClosed   = "Closed"
)

type Job struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Mode        string    `json:"mode"` // Remote, Hybrid, On-site
	Type        string    `json:"type"` // Full-time, Part-time, Contract
	Exp         string    `json:"exp"`
	Status      string    `json:"status"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
}

// JobInput is the insert payload: a Job without the server-assigned fields.
type JobInput struct {
	Name        string  `json:"name" binding:"required"`
	Mode        string  `json:"mode" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Exp         string  `json:"exp" binding:"required"`
	Status      string  `json:"status"`
	Description *string `json:"description"`
}

type JobPatch struct {
	Name        Optional[string]  `json:"name"`
	Mode        Optional[string]  `json:"mode"`
	Type        Optional[string]  `json:"type"`
	Exp         Optional[string]  `json:"exp"`
	Status      Optional[string]  `json:"status"`
	Description Optional[*string] `json:"description"`
}

// NewJob materializes a Job from its insert payload, applying defaults.
func NewJob(id string, in JobInput, createdAt time.Time) Job {
	return Job{
		ID:          id,
		Name:        in.Name,
		Mode:        in.Mode,
		Type:        in.Type,
		Exp:         in.Exp,
		Status:      withDefault(in.Status, JobStatusOpen),
		Description: nullIfEmpty(in.Description),
		CreatedAt:   createdAt,
	}
}

// Merge returns j with the supplied patch fields applied. ID and CreatedAt
// always come from j.
func (j Job) Merge(p JobPatch) Job {
	out := j
	p.Name.Apply(&out.Name)
	p.Mode.Apply(&out.Mode)
	p.Type.Apply(&out.Type)
	p.Exp.Apply(&out.Exp)
	p.Status.Apply(&out.Status)
	p.Description.Apply(&out.Description)
	out.ID = j.ID
	out.CreatedAt = j.CreatedAt
	return out
}

func (j Job) Clone() Job {
	j.Description = clonePtr(j.Description)
	return j
}

// Validate rejects null on fields that cannot hold null.
func (p JobPatch) Validate() error {
	return notNull(
		field{"name", p.Name.Null},
		field{"mode", p.Mode.Null},
		field{"type", p.Type.Null},
		field{"exp", p.Exp.Null},
		field{"status", p.Status.Null},
	)
}

type JobRepository interface {
	GetAll(ctx context.Context) []Job
	GetByID(ctx context.Context, id string) (*Job, bool)
	Create(ctx context.Context, in JobInput) *Job
	Update(ctx context.Context, id string, patch JobPatch) (*Job, bool)
	Delete(ctx context.Context, id string) bool
}

type JobUsecase interface {
	ListJobs(ctx context.Context) ([]Job, error)
	GetJob(ctx context.Context, id string) (*Job, error)
	CreateJob(ctx context.Context, in JobInput) (*Job, error)
	UpdateJob(ctx context.Context, id string, patch JobPatch) (*Job, error)
	DeleteJob(ctx context.Context, id string) error
}
