package domain_test

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"talent-hub-backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_UnmarshalJSON(t *testing.T) {
	var p domain.JobPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Go Developer","description":null}`), &p))

	assert.True(t, p.Name.Set)
	assert.False(t, p.Name.Null)
	assert.Equal(t, "Go Developer", p.Name.Value)

	assert.True(t, p.Description.Set)
	assert.True(t, p.Description.Null)
	assert.Nil(t, p.Description.Value)

	assert.False(t, p.Mode.Set)
	assert.False(t, p.Status.Set)
}

func TestOptional_IgnoresServerFields(t *testing.T) {
	var p domain.JobPatch
	body := `{"id":"forged","createdAt":"2001-01-01T00:00:00Z","exp":"1 year"}`
	require.NoError(t, json.Unmarshal([]byte(body), &p))

	created := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	job := domain.Job{ID: "real", Name: "n", Exp: "5 years", CreatedAt: created}

	merged := job.Merge(p)
	assert.Equal(t, "real", merged.ID)
	assert.Equal(t, created, merged.CreatedAt)
	assert.Equal(t, "1 year", merged.Exp)
}

func TestNewJob_Defaults(t *testing.T) {
	now := time.Now()
	empty := ""

	job := domain.NewJob("j1", domain.JobInput{Name: "n", Mode: "Remote", Type: "Contract", Exp: "2y", Description: &empty}, now)

	assert.Equal(t, "j1", job.ID)
	assert.Equal(t, domain.JobStatusOpen, job.Status)
	assert.Nil(t, job.Description)
	assert.Equal(t, now, job.CreatedAt)
}

func TestNewCandidate_Defaults(t *testing.T) {
	c := domain.NewCandidate("c1", domain.CandidateInput{Name: "n", Email: "n@example.com", Skills: []string{}}, time.Now())

	assert.Equal(t, domain.CandidateStatusActive, c.Status)
	assert.Nil(t, c.Phone)
	assert.Nil(t, c.Position)
	assert.Nil(t, c.Experience)
	require.NotNil(t, c.Skills)
	assert.Empty(t, c.Skills)
}

func TestNewAssessment_Defaults(t *testing.T) {
	zero := 0
	a := domain.NewAssessment("a1", domain.AssessmentInput{Title: "t", Type: "Technical", Score: &zero}, time.Now())

	assert.Equal(t, domain.AssessmentStatusPending, a.Status)
	assert.Nil(t, a.CandidateID)
	assert.Nil(t, a.JobID)
	assert.Nil(t, a.Notes)
	require.NotNil(t, a.Score)
	assert.Equal(t, 0, *a.Score)
}

func TestCandidate_Merge(t *testing.T) {
	phone := "+1 555"
	c := domain.Candidate{
		ID:     "c1",
		Name:   "Old",
		Email:  "old@example.com",
		Phone:  &phone,
		Skills: []string{"Go"},
		Status: domain.CandidateStatusActive,
	}

	merged := c.Merge(domain.CandidatePatch{
		Name:   domain.Some("New"),
		Phone:  domain.Some[*string](nil),
		Skills: domain.Some([]string{"Go", "Rust"}),
	})

	want := c
	want.Name = "New"
	want.Phone = nil
	want.Skills = []string{"Go", "Rust"}
	assert.Equal(t, want, merged)
}

func TestAssessment_MergeEmptyPatch(t *testing.T) {
	score := 70
	a := domain.Assessment{ID: "a1", Title: "t", Type: "Technical", Status: "Completed", Score: &score}

	assert.Equal(t, a, a.Merge(domain.AssessmentPatch{}))
}

func TestPatchValidate(t *testing.T) {
	var jp domain.JobPatch
	require.NoError(t, json.Unmarshal([]byte(`{"name":null,"description":null}`), &jp))
	err := jp.Validate()
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNullField))
	assert.Contains(t, err.Error(), "name")
	assert.NotContains(t, err.Error(), "description")

	var cp domain.CandidatePatch
	require.NoError(t, json.Unmarshal([]byte(`{"phone":null,"skills":null}`), &cp))
	assert.NoError(t, cp.Validate())

	var ap domain.AssessmentPatch
	require.NoError(t, json.Unmarshal([]byte(`{"score":null,"title":null}`), &ap))
	err = ap.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "title")
}

func TestCandidate_CloneIsDeep(t *testing.T) {
	phone := "1"
	c := domain.Candidate{Phone: &phone, Skills: []string{"a"}}

	cp := c.Clone()
	*cp.Phone = "2"
	cp.Skills[0] = "b"

	assert.Equal(t, "1", *c.Phone)
	assert.Equal(t, "a", c.Skills[0])
}
