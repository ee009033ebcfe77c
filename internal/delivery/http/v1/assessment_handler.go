package v1

import (
	"net/http"

	"talent-hub-backend/internal/delivery/http/response"
	"talent-hub-backend/internal/domain"
	"talent-hub-backend/pkg/apperror"
	"talent-hub-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type AssessmentHandler struct {
	assessmentUC domain.AssessmentUsecase
}

func NewAssessmentHandler(r *gin.RouterGroup, assessmentUC domain.AssessmentUsecase) {
	handler := &AssessmentHandler{assessmentUC: assessmentUC}

	assessments := r.Group("/assessments")
	{
		assessments.GET("", handler.List)
		assessments.GET("/:id", handler.GetDetails)
		assessments.POST("", handler.Create)
		assessments.PATCH("/:id", handler.Update)
		assessments.DELETE("/:id", handler.Delete)
	}
}

// ListAssessments godoc
// @Summary      List assessments
// @Description  Get every assessment in creation order
// @Tags         assessments
// @Produce      json
// @Success      200  {array}   domain.Assessment
// @Failure      500  {object}  response.ErrorBody
// @Router       /assessments [get]
func (h *AssessmentHandler) List(c *gin.Context) {
	assessments, err := h.assessmentUC.ListAssessments(c)
	if err != nil {
		c.Error(apperror.Internal("Failed to fetch assessments", err))
		return
	}

	response.JSON(c, http.StatusOK, assessments)
}

// GetAssessmentDetails godoc
// @Summary      Get assessment details
// @Tags         assessments
// @Produce      json
// @Param        id   path      string  true  "Assessment ID"
// @Success      200  {object}  domain.Assessment
// @Failure      404  {object}  response.ErrorBody
// @Router       /assessments/{id} [get]
func (h *AssessmentHandler) GetDetails(c *gin.Context) {
	assessment, err := h.assessmentUC.GetAssessment(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, assessment)
}

// CreateAssessment godoc
// @Summary      Create a new assessment
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        assessment  body      domain.AssessmentInput  true  "Assessment JSON"
// @Success      201  {object}  domain.Assessment
// @Failure      400  {object}  response.ErrorBody
// @Router       /assessments [post]
func (h *AssessmentHandler) Create(c *gin.Context) {
	var req domain.AssessmentInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Invalid("Invalid assessment data", validation.FormatValidationErrors(err), err))
		return
	}

	assessment, err := h.assessmentUC.CreateAssessment(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, assessment)
}

// UpdateAssessment godoc
// @Summary      Update an assessment
// @Description  Apply a partial update; omitted fields keep their values
// @Tags         assessments
// @Accept       json
// @Produce      json
// @Param        id   path      string           true  "Assessment ID"
// @Param        assessment  body      domain.AssessmentInput  true  "Any subset of assessment fields"
// @Success      200  {object}  domain.Assessment
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /assessments/{id} [patch]
func (h *AssessmentHandler) Update(c *gin.Context) {
	var patch domain.AssessmentPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.Invalid("Invalid assessment data", validation.FormatValidationErrors(err), err))
		return
	}

	assessment, err := h.assessmentUC.UpdateAssessment(c, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, assessment)
}

// DeleteAssessment godoc
// @Summary      Delete an assessment
// @Description  Permanently delete an assessment
// @Tags         assessments
// @Param        id   path      string  true  "Assessment ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /assessments/{id} [delete]
func (h *AssessmentHandler) Delete(c *gin.Context) {
	if err := h.assessmentUC.DeleteAssessment(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.NoContent(c, http.StatusNoContent)
}
