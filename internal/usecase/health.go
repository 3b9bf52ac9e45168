package usecase

import (
	"context"
	"fmt"

	"go-contact-backend/config"
	"go-contact-backend/internal/domain"
)

type healthUsecase struct {
	cfg *config.Config
}

func NewHealthUsecase(cfg *config.Config) domain.HealthUsecase {
	return &healthUsecase{cfg: cfg}
}

// Check reports configuration presence, not live SMTP connectivity: no
// network connection is attempted.
func (u *healthUsecase) Check(ctx context.Context) *domain.HealthStatus {
	return &domain.HealthStatus{
		Status:          "operational",
		SMTPServer:      fmt.Sprintf("%s:%d", u.cfg.MailServer, u.cfg.MailPort),
		MailFrom:        u.cfg.MailFrom,
		TLSEnabled:      u.cfg.MailSSLTLS,
		RecipientsCount: len(u.cfg.ContactRecipients),
	}
}
