package domain

import "context"

// ContactRequest represents a raw contact form submission as posted by the
// website. Field names are the French ones the frontend sends.
type ContactRequest struct {
	Nom       string `json:"nom" binding:"required,min=2,max=100" example:"Mamadou Diallo"`
	Email     string `json:"email" binding:"required,email" example:"mamadou@example.com"`
	Telephone string `json:"telephone" binding:"required,min=8,max=20,contact_phone" example:"+224621234567"`
	Sujet     string `json:"sujet" binding:"required,min=5,max=200" example:"Demande d'information"`
	Message   string `json:"message" binding:"required,min=10,max=2000" example:"Bonjour, je souhaiterais en savoir plus sur vos services."`
}

// ContactSubmission is a validated and normalized submission: trimmed fields,
// phone reduced to digits (with optional leading +), message stripped of
// dangerous markup. It is built once per request and never mutated.
type ContactSubmission struct {
	Nom       string
	Email     string
	Telephone string
	Sujet     string
	Message   string
}

// ContactResponse is the body returned after a form submission
type ContactResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"` // ISO 8601
}

// HealthStatus summarizes the mail configuration without probing the network
type HealthStatus struct {
	Status          string `json:"status"`
	SMTPServer      string `json:"smtp_server"`
	MailFrom        string `json:"mail_from"`
	TLSEnabled      bool   `json:"tls_enabled"`
	RecipientsCount int    `json:"recipients_count"`
}

// ContactUsecase defines the interface for contact form operations
type ContactUsecase interface {
	// SubmitContactForm normalizes the request and schedules the two
	// notification emails. It only fails on invalid input.
	SubmitContactForm(ctx context.Context, req *ContactRequest) (*ContactResponse, error)
}

// HealthUsecase reports whether the mail service is configured
type HealthUsecase interface {
	Check(ctx context.Context) *HealthStatus
}
