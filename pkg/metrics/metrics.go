// Package metrics defines Prometheus metrics for the contact backend:
// form submissions, template fallbacks and mail delivery outcomes. Delivery
// failures are invisible to callers by design, so the counters here are the
// only place they surface besides logs.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ContactSubmissions = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "contact_submissions_total",
		Help: "Total number of contact form submissions accepted",
	})
	ContactSubmissionsRejected = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "contact_submissions_rejected_total",
		Help: "Total number of contact form submissions rejected by validation",
	})
	TemplateFallbacks = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_template_fallbacks_total",
		Help: "Total number of email renders that fell back to the minimal HTML document",
	}, []string{"template"})
	MailSendSuccess = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_mail_send_success_total",
		Help: "Total number of emails handed to the SMTP server",
	}, []string{"purpose"})
	MailSendFailure = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_mail_send_failure_total",
		Help: "Total number of email sends that failed (connection, auth or transmission)",
	}, []string{"purpose"})
	BackgroundTaskPanics = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "contact_background_task_panics_total",
		Help: "Total number of background tasks that panicked",
	}, []string{"task"})
)

func init() {
	prometheus.MustRegister(ContactSubmissions)
	prometheus.MustRegister(ContactSubmissionsRejected)
	prometheus.MustRegister(TemplateFallbacks)
	prometheus.MustRegister(MailSendSuccess)
	prometheus.MustRegister(MailSendFailure)
	prometheus.MustRegister(BackgroundTaskPanics)
}

// Handler exposes the registered metrics for the /metrics route
func Handler() http.Handler {
	return promhttp.Handler()
}
