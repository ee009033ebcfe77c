package v1

import (
	"net/http"

	"talent-hub-backend/internal/delivery/http/response"
	"talent-hub-backend/internal/usecase"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	healthUC usecase.HealthUsecase
}

func NewHealthHandler(r *gin.RouterGroup, healthUC usecase.HealthUsecase) {
	handler := &HealthHandler{healthUC: healthUC}
	r.GET("/health", handler.Check)
}

// HealthCheck godoc
// @Summary      Service health
// @Description  Reports liveness, record totals and the active rate limit backend
// @Tags         system
// @Produce      json
// @Success      200  {object}  usecase.HealthStatus
// @Router       /health [get]
func (h *HealthHandler) Check(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.healthUC.Check(c))
}
