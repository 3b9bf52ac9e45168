package v1

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"go-contact-backend/internal/delivery/http/middleware"
	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/metrics"
	"go-contact-backend/pkg/validation"
)

type RouterDeps struct {
	ContactUC domain.ContactUsecase
	HealthUC  domain.HealthUsecase
}

func NewRouter(deps RouterDeps) *gin.Engine {
	// Custom binding validators (contact_phone) must be registered before
	// the first request is bound
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	r := gin.New()

	// Global Middlewares
	corsCfg := cors.DefaultConfig()
	corsCfg.AllowAllOrigins = true
	r.Use(cors.New(corsCfg)) // CORS must be first!
	r.Use(gin.Recovery())
	r.Use(gin.Logger()) // Use standard Gin logger
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Ville Propre API",
			"status":  "operational",
		})
	})

	// Observability
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	// Public routes (no auth required)
	contact := r.Group("/contact")
	NewContactHandler(contact, deps.ContactUC, deps.HealthUC)

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}
