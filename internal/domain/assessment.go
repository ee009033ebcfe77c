package domain

import (
	"context"
	"time"
)

const (
	AssessmentStatusPending    = "Pending"
	AssessmentStatusInProgress = "In Progress"
	AssessmentStatusCompleted  = "Completed"
)

// Assessment links a candidate to a job by id only. Neither reference is
// checked against its store, and a dangling id is a valid state.
type Assessment struct {
	ID          string    `json:"id"`
	CandidateID *string   `json:"candidateId"`
	JobID       *string   `json:"jobId"`
	Title       string    `json:"title"`
	Type        string    `json:"type"` // Technical, Portfolio Review, ...
	Status      string    `json:"status"`
	Score       *int      `json:"score"` // 0-100 by convention
	Notes       *string   `json:"notes"`
	CreatedAt   time.Time `json:"createdAt"`
}

type AssessmentInput struct {
	CandidateID *string `json:"candidateId"`
	JobID       *string `json:"jobId"`
	Title       string  `json:"title" binding:"required"`
	Type        string  `json:"type" binding:"required"`
	Status      string  `json:"status"`
	Score       *int    `json:"score"`
	Notes       *string `json:"notes"`
}

type AssessmentPatch struct {
	CandidateID Optional[*string] `json:"candidateId"`
	JobID       Optional[*string] `json:"jobId"`
	Title       Optional[string]  `json:"title"`
	Type        Optional[string]  `json:"type"`
	Status      Optional[string]  `json:"status"`
	Score       Optional[*int]    `json:"score"`
	Notes       Optional[*string] `json:"notes"`
}

func NewAssessment(id string, in AssessmentInput, createdAt time.Time) Assessment {
	return Assessment{
		ID:          id,
		CandidateID: nullIfEmpty(in.CandidateID),
		JobID:       nullIfEmpty(in.JobID),
		Title:       in.Title,
		Type:        in.Type,
		Status:      withDefault(in.Status, AssessmentStatusPending),
		Score:       clonePtr(in.Score),
		Notes:       nullIfEmpty(in.Notes),
		CreatedAt:   createdAt,
	}
}

func (a Assessment) Merge(p AssessmentPatch) Assessment {
	out := a
	p.CandidateID.Apply(&out.CandidateID)
	p.JobID.Apply(&out.JobID)
	p.Title.Apply(&out.Title)
	p.Type.Apply(&out.Type)
	p.Status.Apply(&out.Status)
	p.Score.Apply(&out.Score)
	p.Notes.Apply(&out.Notes)
	out.ID = a.ID
	out.CreatedAt = a.CreatedAt
	return out
}

func (a Assessment) Clone() Assessment {
	a.CandidateID = clonePtr(a.CandidateID)
	a.JobID = clonePtr(a.JobID)
	a.Score = clonePtr(a.Score)
	a.Notes = clonePtr(a.Notes)
	return a
}

func (p AssessmentPatch) Validate() error {
	return notNull(
		field{"title", p.Title.Null},
		field{"type", p.Type.Null},
		field{"status", p.Status.Null},
	)
}

type AssessmentRepository interface {
	GetAll(ctx context.Context) []Assessment
	GetByID(ctx context.Context, id string) (*Assessment, bool)
	Create(ctx context.Context, in AssessmentInput) *Assessment
	Update(ctx context.Context, id string, patch AssessmentPatch) (*Assessment, bool)
	Delete(ctx context.Context, id string) bool
}

type AssessmentUsecase interface {
	ListAssessments(ctx context.Context) ([]Assessment, error)
	GetAssessment(ctx context.Context, id string) (*Assessment, error)
	CreateAssessment(ctx context.Context, in AssessmentInput) (*Assessment, error)
	UpdateAssessment(ctx context.Context, id string, patch AssessmentPatch) (*Assessment, error)
	DeleteAssessment(ctx context.Context, id string) error
}
