package v1

import (
	"net/http"

	"talent-hub-backend/internal/delivery/http/response"
	"talent-hub-backend/internal/domain"
	"talent-hub-backend/pkg/apperror"
	"talent-hub-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type CandidateHandler struct {
	candidateUC domain.CandidateUsecase
}

func NewCandidateHandler(r *gin.RouterGroup, candidateUC domain.CandidateUsecase) {
	handler := &CandidateHandler{candidateUC: candidateUC}

	candidates := r.Group("/candidates")
	{
		candidates.GET("", handler.List)
		candidates.GET("/:id", handler.GetDetails)
		candidates.POST("", handler.Create)
		candidates.PATCH("/:id", handler.Update)
		candidates.DELETE("/:id", handler.Delete)
	}
}

// ListCandidates godoc
// @Summary      List candidates
// @Description  Get every candidate profile in creation order
// @Tags         candidates
// @Produce      json
// @Success      200  {array}   domain.Candidate
// @Failure      500  {object}  response.ErrorBody
// @Router       /candidates [get]
func (h *CandidateHandler) List(c *gin.Context) {
	candidates, err := h.candidateUC.ListCandidates(c)
	if err != nil {
		c.Error(apperror.Internal("Failed to fetch candidates", err))
		return
	}

	response.JSON(c, http.StatusOK, candidates)
}

// GetCandidateDetails godoc
// @Summary      Get candidate details
// @Tags         candidates
// @Produce      json
// @Param        id   path      string  true  "Candidate ID"
// @Success      200  {object}  domain.Candidate
// @Failure      404  {object}  response.ErrorBody
// @Router       /candidates/{id} [get]
func (h *CandidateHandler) GetDetails(c *gin.Context) {
	candidate, err := h.candidateUC.GetCandidate(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, candidate)
}

// CreateCandidate godoc
// @Summary      Create a new candidate
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        candidate  body      domain.CandidateInput  true  "Candidate JSON"
// @Success      201  {object}  domain.Candidate
// @Failure      400  {object}  response.ErrorBody
// @Router       /candidates [post]
func (h *CandidateHandler) Create(c *gin.Context) {
	var req domain.CandidateInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Invalid("Invalid candidate data", validation.FormatValidationErrors(err), err))
		return
	}

	candidate, err := h.candidateUC.CreateCandidate(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, candidate)
}

// UpdateCandidate godoc
// @Summary      Update a candidate
// @Description  Apply a partial update; omitted fields keep their values
// @Tags         candidates
// @Accept       json
// @Produce      json
// @Param        id   path      string           true  "Candidate ID"
// @Param        candidate  body      domain.CandidateInput  true  "Any subset of candidate fields"
// @Success      200  {object}  domain.Candidate
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /candidates/{id} [patch]
func (h *CandidateHandler) Update(c *gin.Context) {
	var patch domain.CandidatePatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.Invalid("Invalid candidate data", validation.FormatValidationErrors(err), err))
		return
	}

	candidate, err := h.candidateUC.UpdateCandidate(c, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, candidate)
}

// DeleteCandidate godoc
// @Summary      Delete a candidate
// @Description  Permanently delete a candidate. Assessments referencing it are kept.
// @Tags         candidates
// @Param        id   path      string  true  "Candidate ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /candidates/{id} [delete]
func (h *CandidateHandler) Delete(c *gin.Context) {
	if err := h.candidateUC.DeleteCandidate(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.NoContent(c, http.StatusNoContent)
}
