package v1

import (
	"talent-hub-backend/config"
	"talent-hub-backend/internal/delivery/http/middleware"
	"talent-hub-backend/internal/domain"
	"talent-hub-backend/internal/usecase"
	"talent-hub-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type RouterDeps struct {
	JobUC        domain.JobUsecase
	CandidateUC  domain.CandidateUsecase
	AssessmentUC domain.AssessmentUsecase
	HealthUC     usecase.HealthUsecase
	RateLimiter  *middleware.RateLimiter // optional
	Config       *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	var origins []string
	if deps.Config != nil {
		origins = deps.Config.AllowedOrigins
	}

	// Global Middlewares
	r.Use(middleware.CORSMiddleware(origins)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.SecurityHeadersMiddleware())
	r.Use(middleware.ErrorHandler())
	if deps.RateLimiter != nil {
		r.Use(deps.RateLimiter.Middleware())
	}

	api := r.Group("/api")

	NewHealthHandler(api, deps.HealthUC)

	// Swagger
	api.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	NewJobHandler(api, deps.JobUC)
	NewCandidateHandler(api, deps.CandidateUC)
	NewAssessmentHandler(api, deps.AssessmentUC)

	return r
}
