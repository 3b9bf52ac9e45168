// Package email renders and dispatches the two contact-form emails: an
// internal notification for the team and a confirmation for the visitor.
package email

import (
	"context"
	"time"

	"go-contact-backend/config"
	"go-contact-backend/pkg/logger"
	"go-contact-backend/pkg/metrics"
)

// ContactEmailData holds the normalized submission fields used to build both emails
type ContactEmailData struct {
	Nom       string
	Email     string
	Telephone string
	Sujet     string
	Message   string
}

// TaskRunner defers a send to a background task. The two sends per
// submission run concurrently and independently of the request path.
type TaskRunner interface {
	Go(label string, fn func(ctx context.Context) error)
}

// Service orchestrates rendering and background dispatch. Delivery is
// best-effort: a failed send is logged and counted, never surfaced.
type Service struct {
	renderer   *Renderer
	sender     Sender
	tasks      TaskRunner
	recipients []string
	brandName  string
}

func NewService(cfg *config.Config, renderer *Renderer, sender Sender, tasks TaskRunner) *Service {
	return &Service{
		renderer:   renderer,
		sender:     sender,
		tasks:      tasks,
		recipients: cfg.ContactRecipients,
		brandName:  cfg.BrandName,
	}
}

// ScheduleContactEmails renders the internal notification and the visitor
// confirmation from the same submission, then schedules one background send
// per message. It never fails: render errors fall back to minimal HTML and
// send errors stay inside the background tasks.
func (s *Service) ScheduleContactEmails(data ContactEmailData) {
	dateReception := time.Now().Format("02/01/2006 à 15:04")

	templateData := map[string]string{
		"nom":            data.Nom,
		"email":          data.Email,
		"telephone":      data.Telephone,
		"sujet":          data.Sujet,
		"message":        data.Message,
		"date_reception": dateReception,
	}

	internal := RenderedEmail{
		Subject:    "Nouveau message: " + data.Sujet,
		Recipients: append([]string(nil), s.recipients...),
		HTMLBody:   s.renderer.Render(TemplateInternalNotification, templateData),
	}

	visitor := RenderedEmail{
		Subject:    "Votre message a bien été reçu - " + s.brandName,
		Recipients: []string{data.Email},
		HTMLBody:   s.renderer.Render(TemplateVisitorConfirmation, templateData),
	}

	s.scheduleSend(internal, "notification interne")
	s.scheduleSend(visitor, "confirmation visiteur")

	logger.Log.Info("contact emails scheduled", "nom", data.Nom, "email", data.Email)
}

func (s *Service) scheduleSend(msg RenderedEmail, purpose string) {
	s.tasks.Go(purpose, func(ctx context.Context) error {
		if err := s.sender.Send(ctx, msg); err != nil {
			// Best-effort delivery: log and count, never propagate
			logger.Log.Error("email send failed", "purpose", purpose, "error", err)
			metrics.MailSendFailure.WithLabelValues(purpose).Inc()
			return nil
		}
		logger.Log.Info("email sent", "purpose", purpose, "recipients", len(msg.Recipients))
		metrics.MailSendSuccess.WithLabelValues(purpose).Inc()
		return nil
	})
}
