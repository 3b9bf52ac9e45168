package v1

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/apperror"
	"go-contact-backend/pkg/logger"
	"go-contact-backend/pkg/validation"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
	healthUC  domain.HealthUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(public *gin.RouterGroup, contactUC domain.ContactUsecase, healthUC domain.HealthUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
		healthUC:  healthUC,
	}

	public.POST("/submit", handler.SubmitContact)
	public.GET("/health", handler.Health)
}

// SubmitContact godoc
// @Summary      Soumettre un formulaire de contact
// @Description  Reçoit une soumission du formulaire de contact web, planifie l'envoi des deux emails (notification interne + confirmation visiteur) et répond immédiatement. This is a public endpoint.
// @Tags         contact
// @Accept       json
// @Produce      json
// @Param        contact  body      domain.ContactRequest  true  "Contact Form Data"
// @Success      200      {object}  domain.ContactResponse
// @Failure      422      {object}  response.Response
// @Router       /contact/submit [post]
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		var vErrs validator.ValidationErrors
		if errors.As(err, &vErrs) {
			c.Error(apperror.UnprocessableEntity("Données invalides", validation.FormatValidationErrors(err)))
			return
		}
		c.Error(apperror.BadRequest(err.Error()))
		return
	}

	resp, err := h.contactUC.SubmitContactForm(c.Request.Context(), &req)
	if err != nil {
		var vErr *domain.ValidationError
		if errors.As(err, &vErr) {
			c.Error(apperror.UnprocessableEntity("Données invalides", []string{vErr.Error()}))
			return
		}

		// Anything that breaks after validation is logged and hidden: the
		// visitor is told the message was received, not that delivery
		// succeeded. Flagged for product review, do not "fix" silently.
		logger.Log.Error("contact form processing failed after validation", "error", err)
		c.JSON(http.StatusOK, domain.ContactResponse{
			Success:   true,
			Message:   "Votre message a été reçu. Nous vous contacterons bientôt.",
			Timestamp: time.Now().UTC().Format(time.RFC3339),
		})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Health godoc
// @Summary      Vérifier le statut du service mail
// @Description  Retourne un résumé de la configuration SMTP sans ouvrir de connexion réseau.
// @Tags         contact
// @Produce      json
// @Success      200  {object}  domain.HealthStatus
// @Router       /contact/health [get]
func (h *ContactHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, h.healthUC.Check(c.Request.Context()))
}
