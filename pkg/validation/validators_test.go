package validation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-contact-backend/pkg/validation"
)

func TestNormalizePhone(t *testing.T) {
	t.Run("Should accept international and local formats", func(t *testing.T) {
		cases := map[string]string{
			"+224621234567":     "+224621234567",
			"+224 62-12-34-567": "+224621234567",
			"621234567":         "621234567",
			"(621) 23-45-67":    "621234567",
			"  621 234 567  ":   "621234567",
		}
		for input, want := range cases {
			got, err := validation.NormalizePhone(input)
			assert.NoError(t, err, "input %q", input)
			assert.Equal(t, want, got, "input %q", input)
		}
	})

	t.Run("Should reject letters and wrong lengths", func(t *testing.T) {
		invalid := []string{
			"abc",
			"+224 62 ab 34 567",
			"1234567",           // 7 digits, too short
			"1234567890123456",  // 16 digits, too long
			"++224621234567",    // double plus
			"621234567+",        // plus not leading
			"",
		}
		for _, input := range invalid {
			_, err := validation.NormalizePhone(input)
			assert.Error(t, err, "input %q", input)
		}
	})
}

func TestSanitizeMessage(t *testing.T) {
	t.Run("Should strip script blocks across line breaks", func(t *testing.T) {
		in := "Bonjour\n<script type=\"text/javascript\">\nalert('x');\n</script>\nMerci"
		out := validation.SanitizeMessage(in)
		assert.NotContains(t, out, "<script")
		assert.NotContains(t, out, "alert")
		assert.Contains(t, out, "Bonjour")
		assert.Contains(t, out, "Merci")
	})

	t.Run("Should strip iframes, javascript URIs and inline handlers", func(t *testing.T) {
		in := `<iframe src="https://evil.example"></iframe><a href="javascript:steal()">lien</a><img onerror= onclick=go()>`
		out := validation.SanitizeMessage(in)
		assert.NotContains(t, out, "<iframe")
		assert.NotContains(t, out, "javascript:")
		assert.NotContains(t, out, "onclick=")
		assert.NotContains(t, out, "onerror=")
	})

	t.Run("Should be case-insensitive", func(t *testing.T) {
		out := validation.SanitizeMessage("<SCRIPT>alert(1)</SCRIPT> JaVaScRiPt:void(0)")
		assert.NotContains(t, out, "SCRIPT")
		assert.NotContains(t, out, "JaVaScRiPt:")
	})

	t.Run("Should trim and keep plain text untouched", func(t *testing.T) {
		out := validation.SanitizeMessage("  Bonjour, combien coûte le service ?  ")
		assert.Equal(t, "Bonjour, combien coûte le service ?", out)
	})
}
