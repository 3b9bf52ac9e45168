package usecase

import (
	"context"
	"strings"
	"time"

	"go-contact-backend/internal/domain"
	"go-contact-backend/pkg/email"
	"go-contact-backend/pkg/logger"
	"go-contact-backend/pkg/metrics"
	"go-contact-backend/pkg/validation"
)

// EmailScheduler schedules the two contact emails for background dispatch
type EmailScheduler interface {
	ScheduleContactEmails(data email.ContactEmailData)
}

type contactUsecase struct {
	emails EmailScheduler
}

// NewContactUsecase creates a new contact usecase
func NewContactUsecase(emails EmailScheduler) domain.ContactUsecase {
	return &contactUsecase{
		emails: emails,
	}
}

// SubmitContactForm normalizes the request, schedules the internal
// notification and the visitor confirmation, and returns the immediate
// success response. Validation is the only step that can fail; once the
// submission is accepted the caller is told it was received, whatever
// happens to delivery afterwards.
func (uc *contactUsecase) SubmitContactForm(ctx context.Context, req *domain.ContactRequest) (*domain.ContactResponse, error) {
	phone, err := validation.NormalizePhone(req.Telephone)
	if err != nil {
		metrics.ContactSubmissionsRejected.Inc()
		return nil, &domain.ValidationError{Field: "telephone", Reason: err.Error()}
	}

	submission := domain.ContactSubmission{
		Nom:       strings.TrimSpace(req.Nom),
		Email:     strings.TrimSpace(req.Email),
		Telephone: phone,
		Sujet:     strings.TrimSpace(req.Sujet),
		Message:   validation.SanitizeMessage(req.Message),
	}

	uc.emails.ScheduleContactEmails(email.ContactEmailData{
		Nom:       submission.Nom,
		Email:     submission.Email,
		Telephone: submission.Telephone,
		Sujet:     submission.Sujet,
		Message:   submission.Message,
	})

	metrics.ContactSubmissions.Inc()
	logger.Log.Info("contact form submission accepted", "nom", submission.Nom, "email", submission.Email)

	return &domain.ContactResponse{
		Success:   true,
		Message:   "Votre message a été envoyé avec succès. Nous vous répondrons dans les plus brefs délais.",
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}, nil
}
