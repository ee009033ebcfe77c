package v1

import (
	"net/http"

	"talent-hub-backend/internal/delivery/http/response"
	"talent-hub-backend/internal/domain"
	"talent-hub-backend/pkg/apperror"
	"talent-hub-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	jobUC domain.JobUsecase
}

func NewJobHandler(r *gin.RouterGroup, jobUC domain.JobUsecase) {
	handler := &JobHandler{jobUC: jobUC}

	jobs := r.Group("/jobs")
	{
		jobs.GET("", handler.List)
		jobs.GET("/:id", handler.GetDetails)
		jobs.POST("", handler.Create)
		jobs.PATCH("/:id", handler.Update)
		jobs.DELETE("/:id", handler.Delete)
	}
}

// ListJobs godoc
// @Summary      List jobs
// @Description  Get every job posting in creation order
// @Tags         jobs
// @Produce      json
// @Success      200  {array}   domain.Job
// @Failure      500  {object}  response.ErrorBody
// @Router       /jobs [get]
func (h *JobHandler) List(c *gin.Context) {
	jobs, err := h.jobUC.ListJobs(c)
	if err != nil {
		c.Error(apperror.Internal("Failed to fetch jobs", err))
		return
	}

	response.JSON(c, http.StatusOK, jobs)
}

// GetJobDetails godoc
// @Summary      Get job details
// @Tags         jobs
// @Produce      json
// @Param        id   path      string  true  "Job ID"
// @Success      200  {object}  domain.Job
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [get]
func (h *JobHandler) GetDetails(c *gin.Context) {
	job, err := h.jobUC.GetJob(c, c.Param("id"))
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, job)
}

// CreateJob godoc
// @Summary      Create a new job
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        job  body      domain.JobInput  true  "Job JSON"
// @Success      201  {object}  domain.Job
// @Failure      400  {object}  response.ErrorBody
// @Router       /jobs [post]
func (h *JobHandler) Create(c *gin.Context) {
	var req domain.JobInput
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(apperror.Invalid("Invalid job data", validation.FormatValidationErrors(err), err))
		return
	}

	job, err := h.jobUC.CreateJob(c, req)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusCreated, job)
}

// UpdateJob godoc
// @Summary      Update a job
// @Description  Apply a partial update; omitted fields keep their values
// @Tags         jobs
// @Accept       json
// @Produce      json
// @Param        id   path      string           true  "Job ID"
// @Param        job  body      domain.JobInput  true  "Any subset of job fields"
// @Success      200  {object}  domain.Job
// @Failure      400  {object}  response.ErrorBody
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [patch]
func (h *JobHandler) Update(c *gin.Context) {
	var patch domain.JobPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.Error(apperror.Invalid("Invalid job data", validation.FormatValidationErrors(err), err))
		return
	}

	job, err := h.jobUC.UpdateJob(c, c.Param("id"), patch)
	if err != nil {
		c.Error(err)
		return
	}

	response.JSON(c, http.StatusOK, job)
}

// DeleteJob godoc
// @Summary      Delete a job
// @Description  Permanently delete a job posting. Assessments referencing it are kept.
// @Tags         jobs
// @Param        id   path      string  true  "Job ID"
// @Success      204
// @Failure      404  {object}  response.ErrorBody
// @Router       /jobs/{id} [delete]
func (h *JobHandler) Delete(c *gin.Context) {
	if err := h.jobUC.DeleteJob(c, c.Param("id")); err != nil {
		c.Error(err)
		return
	}

	response.NoContent(c, http.StatusNoContent)
}
