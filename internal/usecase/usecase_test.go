package usecase_test

import (
	"context"
	"net/http"
	"testing"

	"talent-hub-backend/internal/domain"
	"talent-hub-backend/internal/usecase"
	"talent-hub-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Repositories
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) GetAll(ctx context.Context) []domain.Job {
	return m.Called(ctx).Get(0).([]domain.Job)
}

func (m *MockJobRepo) GetByID(ctx context.Context, id string) (*domain.Job, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Job), args.Bool(1)
}

func (m *MockJobRepo) Create(ctx context.Context, in domain.JobInput) *domain.Job {
	return m.Called(ctx, in).Get(0).(*domain.Job)
}

func (m *MockJobRepo) Update(ctx context.Context, id string, patch domain.JobPatch) (*domain.Job, bool) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Job), args.Bool(1)
}

func (m *MockJobRepo) Delete(ctx context.Context, id string) bool {
	return m.Called(ctx, id).Bool(0)
}

type MockCandidateRepo struct {
	mock.Mock
}

func (m *MockCandidateRepo) GetAll(ctx context.Context) []domain.Candidate {
	return m.Called(ctx).Get(0).([]domain.Candidate)
}

func (m *MockCandidateRepo) GetByID(ctx context.Context, id string) (*domain.Candidate, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Candidate), args.Bool(1)
}

func (m *MockCandidateRepo) Create(ctx context.Context, in domain.CandidateInput) *domain.Candidate {
	return m.Called(ctx, in).Get(0).(*domain.Candidate)
}

func (m *MockCandidateRepo) Update(ctx context.Context, id string, patch domain.CandidatePatch) (*domain.Candidate, bool) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Candidate), args.Bool(1)
}

func (m *MockCandidateRepo) Delete(ctx context.Context, id string) bool {
	return m.Called(ctx, id).Bool(0)
}

type MockAssessmentRepo struct {
	mock.Mock
}

func (m *MockAssessmentRepo) GetAll(ctx context.Context) []domain.Assessment {
	return m.Called(ctx).Get(0).([]domain.Assessment)
}

func (m *MockAssessmentRepo) GetByID(ctx context.Context, id string) (*domain.Assessment, bool) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Assessment), args.Bool(1)
}

func (m *MockAssessmentRepo) Create(ctx context.Context, in domain.AssessmentInput) *domain.Assessment {
	return m.Called(ctx, in).Get(0).(*domain.Assessment)
}

func (m *MockAssessmentRepo) Update(ctx context.Context, id string, patch domain.AssessmentPatch) (*domain.Assessment, bool) {
	args := m.Called(ctx, id, patch)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*domain.Assessment), args.Bool(1)
}

func (m *MockAssessmentRepo) Delete(ctx context.Context, id string) bool {
	return m.Called(ctx, id).Bool(0)
}

func requireAppError(t *testing.T, err error, code int, message string) {
	t.Helper()
	require.Error(t, err)
	appErr, ok := err.(*apperror.AppError)
	require.True(t, ok, "expected *apperror.AppError, got %T", err)
	assert.Equal(t, code, appErr.Code)
	assert.Equal(t, message, appErr.Message)
}

func TestJobUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return NotFound for unknown job", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetByID", ctx, "missing").Return(nil, false)
		uc := usecase.NewJobUsecase(repo)

		_, err := uc.GetJob(ctx, "missing")
		requireAppError(t, err, http.StatusNotFound, "Job not found")
	})

	t.Run("Should pass the insert payload through to the store", func(t *testing.T) {
		repo := new(MockJobRepo)
		in := domain.JobInput{Name: "Go Engineer", Mode: "Remote", Type: "Full-time", Exp: "3+ years"}
		repo.On("Create", ctx, in).Return(&domain.Job{ID: "j1", Name: in.Name, Status: domain.JobStatusOpen})
		uc := usecase.NewJobUsecase(repo)

		job, err := uc.CreateJob(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "j1", job.ID)
		repo.AssertExpectations(t)
	})

	t.Run("Should reject null on a required field without touching the store", func(t *testing.T) {
		repo := new(MockJobRepo)
		uc := usecase.NewJobUsecase(repo)

		_, err := uc.UpdateJob(ctx, "j1", domain.JobPatch{Name: domain.Optional[string]{Set: true, Null: true}})
		requireAppError(t, err, http.StatusBadRequest, "Invalid job data")
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should return NotFound when updating unknown job", func(t *testing.T) {
		repo := new(MockJobRepo)
		patch := domain.JobPatch{Status: domain.Some(domain.JobStatusClosed)}
		repo.On("Update", ctx, "missing", patch).Return(nil, false)
		uc := usecase.NewJobUsecase(repo)

		_, err := uc.UpdateJob(ctx, "missing", patch)
		requireAppError(t, err, http.StatusNotFound, "Job not found")
	})

	t.Run("Should map delete result", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("Delete", ctx, "j1").Return(true)
		repo.On("Delete", ctx, "missing").Return(false)
		uc := usecase.NewJobUsecase(repo)

		assert.NoError(t, uc.DeleteJob(ctx, "j1"))
		requireAppError(t, uc.DeleteJob(ctx, "missing"), http.StatusNotFound, "Job not found")
	})

	t.Run("Should list jobs", func(t *testing.T) {
		repo := new(MockJobRepo)
		repo.On("GetAll", ctx).Return([]domain.Job{{ID: "a"}, {ID: "b"}})
		uc := usecase.NewJobUsecase(repo)

		jobs, err := uc.ListJobs(ctx)
		require.NoError(t, err)
		assert.Len(t, jobs, 2)
	})
}

func TestCandidateUsecase(t *testing.T) {
	ctx := context.Background()
	validate := validator.New()

	t.Run("Should reject an invalid email on update", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		uc := usecase.NewCandidateUsecase(repo, validate)

		_, err := uc.UpdateCandidate(ctx, "c1", domain.CandidatePatch{Email: domain.Some("not-an-email")})
		requireAppError(t, err, http.StatusBadRequest, "Invalid candidate data")
		repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Should allow clearing nullable fields", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		patch := domain.CandidatePatch{
			Phone:  domain.Optional[*string]{Set: true, Null: true},
			Email:  domain.Some("new@example.com"),
			Skills: domain.Some([]string{"Go"}),
		}
		repo.On("Update", ctx, "c1", patch).Return(&domain.Candidate{ID: "c1", Email: "new@example.com"}, true)
		uc := usecase.NewCandidateUsecase(repo, validate)

		c, err := uc.UpdateCandidate(ctx, "c1", patch)
		require.NoError(t, err)
		assert.Equal(t, "new@example.com", c.Email)
		repo.AssertExpectations(t)
	})

	t.Run("Should return NotFound for unknown candidate", func(t *testing.T) {
		repo := new(MockCandidateRepo)
		repo.On("GetByID", ctx, "missing").Return(nil, false)
		repo.On("Delete", ctx, "missing").Return(false)
		uc := usecase.NewCandidateUsecase(repo, validate)

		_, err := uc.GetCandidate(ctx, "missing")
		requireAppError(t, err, http.StatusNotFound, "Candidate not found")
		requireAppError(t, uc.DeleteCandidate(ctx, "missing"), http.StatusNotFound, "Candidate not found")
	})
}

func TestAssessmentUsecase(t *testing.T) {
	ctx := context.Background()

	t.Run("Should accept a dangling candidate reference", func(t *testing.T) {
		repo := new(MockAssessmentRepo)
		ghost := "never-created"
		in := domain.AssessmentInput{CandidateID: &ghost, Title: "Live coding", Type: "Technical"}
		repo.On("Create", ctx, in).Return(&domain.Assessment{ID: "a1", CandidateID: &ghost, Status: domain.AssessmentStatusPending})
		uc := usecase.NewAssessmentUsecase(repo)

		a, err := uc.CreateAssessment(ctx, in)
		require.NoError(t, err)
		assert.Equal(t, "never-created", *a.CandidateID)
	})

	t.Run("Should reject null title", func(t *testing.T) {
		repo := new(MockAssessmentRepo)
		uc := usecase.NewAssessmentUsecase(repo)

		_, err := uc.UpdateAssessment(ctx, "a1", domain.AssessmentPatch{Title: domain.Optional[string]{Set: true, Null: true}})
		requireAppError(t, err, http.StatusBadRequest, "Invalid assessment data")
	})

	t.Run("Should return NotFound for unknown assessment", func(t *testing.T) {
		repo := new(MockAssessmentRepo)
		repo.On("GetByID", ctx, "missing").Return(nil, false)
		uc := usecase.NewAssessmentUsecase(repo)

		_, err := uc.GetAssessment(ctx, "missing")
		requireAppError(t, err, http.StatusNotFound, "Assessment not found")
	})
}

type fixedCounter map[string]int

func (f fixedCounter) Counts(ctx context.Context) map[string]int { return f }

func TestHealthUsecase(t *testing.T) {
	ctx := context.Background()
	counts := fixedCounter{"jobs": 5}

	status := usecase.NewHealthUsecase(counts, nil).Check(ctx)
	assert.Equal(t, "ok", status.Status)
	assert.Equal(t, "memory", status.RateLimiter)
	assert.Equal(t, 5, status.Records["jobs"])

	status = usecase.NewHealthUsecase(counts, func() bool { return true }).Check(ctx)
	assert.Equal(t, "redis", status.RateLimiter)
}
