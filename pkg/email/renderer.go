package email

import (
	"bytes"
	"fmt"
	"html"
	"html/template"
	"os"
	"path/filepath"

	"go-contact-backend/pkg/logger"
	"go-contact-backend/pkg/metrics"
)

// Template files consumed by name from the templates directory
const (
	TemplateInternalNotification = "notification_interne.html"
	TemplateVisitorConfirmation  = "confirmation_visiteur.html"
)

// Renderer produces HTML email bodies from on-disk templates. Context values
// are auto-escaped by html/template, so user-supplied fields cannot inject
// markup. A broken or missing template never aborts the pipeline: the
// renderer falls back to a minimal hand-built document instead.
type Renderer struct {
	dir string
}

// NewRenderer creates a renderer over dir, creating the directory if absent
func NewRenderer(dir string) (*Renderer, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create templates directory %s: %w", dir, err)
	}
	return &Renderer{dir: dir}, nil
}

// Render executes the named template with the given context. On any error
// (missing file, parse error, execution error) it logs, counts the fallback
// and returns FallbackHTML for the same context.
func (r *Renderer) Render(name string, context map[string]string) string {
	tmpl, err := template.ParseFiles(filepath.Join(r.dir, name))
	if err != nil {
		logger.Log.Error("failed to load email template, using fallback", "template", name, "error", err)
		metrics.TemplateFallbacks.WithLabelValues(name).Inc()
		return FallbackHTML(context)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, context); err != nil {
		logger.Log.Error("failed to render email template, using fallback", "template", name, "error", err)
		metrics.TemplateFallbacks.WithLabelValues(name).Inc()
		return FallbackHTML(context)
	}

	return body.String()
}

// FallbackHTML builds a minimal document from the submission fields. Values
// are escaped by hand since this path bypasses html/template.
func FallbackHTML(context map[string]string) string {
	get := func(key string) string {
		if v, ok := context[key]; ok && v != "" {
			return html.EscapeString(v)
		}
		return "N/A"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; padding: 20px;">
    <h2>Nouveau Message de Contact</h2>
    <p><strong>Nom :</strong> %s</p>
    <p><strong>Email :</strong> %s</p>
    <p><strong>Téléphone :</strong> %s</p>
    <p><strong>Sujet :</strong> %s</p>
    <p><strong>Message :</strong></p>
    <pre>%s</pre>
</body>
</html>`, get("nom"), get("email"), get("telephone"), get("sujet"), get("message"))
}
