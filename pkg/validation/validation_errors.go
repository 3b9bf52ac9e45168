package validation

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to the labels shown to visitors
var FieldLabels = map[string]string{
	"Nom":       "Nom",
	"Email":     "Email",
	"Telephone": "Téléphone",
	"Sujet":     "Sujet",
	"Message":   "Message",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	var messages []string
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// formatSingleError formats a single validation error to a user-friendly message
func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: Ce champ est obligatoire", label)

	case "min":
		return fmt.Sprintf("%s: Minimum %s caractères", label, e.Param())

	case "max":
		return fmt.Sprintf("%s: Maximum %s caractères", label, e.Param())

	case "email":
		return fmt.Sprintf("%s: Format d'email invalide", label)

	case "contact_phone":
		return fmt.Sprintf("%s: Format de téléphone invalide (8-15 chiffres, avec/sans +)", label)

	default:
		// Fallback for unknown tags
		return fmt.Sprintf("%s: Validation échouée (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
