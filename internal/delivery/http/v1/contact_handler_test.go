package v1_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	v1 "go-contact-backend/internal/delivery/http/v1"
	"go-contact-backend/internal/domain"
)

type MockContactUsecase struct {
	mock.Mock
}

func (m *MockContactUsecase) SubmitContactForm(ctx context.Context, req *domain.ContactRequest) (*domain.ContactResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ContactResponse), args.Error(1)
}

type MockHealthUsecase struct {
	mock.Mock
}

func (m *MockHealthUsecase) Check(ctx context.Context) *domain.HealthStatus {
	return m.Called(ctx).Get(0).(*domain.HealthStatus)
}

func newTestRouter(contactUC domain.ContactUsecase, healthUC domain.HealthUsecase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return v1.NewRouter(v1.RouterDeps{ContactUC: contactUC, HealthUC: healthUC})
}

func postJSON(t *testing.T, router *gin.Engine, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func validBody() map[string]string {
	return map[string]string{
		"nom":       "Mamadou Diallo",
		"email":     "mamadou@example.com",
		"telephone": "+224 62-12-34-567",
		"sujet":     "Tarifs",
		"message":   "Bonjour, combien coûte le service ?",
	}
}

func TestSubmitContact(t *testing.T) {
	t.Run("Should return 200 with ISO timestamp for a valid submission", func(t *testing.T) {
		contactUC := new(MockContactUsecase)
		contactUC.On("SubmitContactForm", mock.Anything, mock.AnythingOfType("*domain.ContactRequest")).
			Return(&domain.ContactResponse{
				Success:   true,
				Message:   "Votre message a été envoyé avec succès. Nous vous répondrons dans les plus brefs délais.",
				Timestamp: time.Now().UTC().Format(time.RFC3339),
			}, nil)
		router := newTestRouter(contactUC, new(MockHealthUsecase))

		w := postJSON(t, router, "/contact/submit", validBody())

		require.Equal(t, http.StatusOK, w.Code)
		var resp domain.ContactResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Contains(t, resp.Message, "envoyé avec succès")
		_, err := time.Parse(time.RFC3339, resp.Timestamp)
		assert.NoError(t, err)
	})

	t.Run("Should return 422 citing the phone field for telephone abc", func(t *testing.T) {
		contactUC := new(MockContactUsecase)
		router := newTestRouter(contactUC, new(MockHealthUsecase))

		body := validBody()
		body["telephone"] = "abc"
		w := postJSON(t, router, "/contact/submit", body)

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "Téléphone")
		contactUC.AssertNotCalled(t, "SubmitContactForm")
	})

	t.Run("Should return 422 when required fields are missing", func(t *testing.T) {
		router := newTestRouter(new(MockContactUsecase), new(MockHealthUsecase))

		w := postJSON(t, router, "/contact/submit", map[string]string{"nom": "Mamadou Diallo"})

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	})

	t.Run("Should still report success when processing fails after validation", func(t *testing.T) {
		contactUC := new(MockContactUsecase)
		contactUC.On("SubmitContactForm", mock.Anything, mock.AnythingOfType("*domain.ContactRequest")).
			Return(nil, errors.New("renderer exploded"))
		router := newTestRouter(contactUC, new(MockHealthUsecase))

		w := postJSON(t, router, "/contact/submit", validBody())

		// Deliberate policy: "form received" and "emails delivered" are
		// decoupled guarantees, the caller only ever learns about the former
		require.Equal(t, http.StatusOK, w.Code)
		var resp domain.ContactResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		assert.Contains(t, resp.Message, "reçu")
		_, err := time.Parse(time.RFC3339, resp.Timestamp)
		assert.NoError(t, err)
	})

	t.Run("Should map usecase validation errors to 422", func(t *testing.T) {
		contactUC := new(MockContactUsecase)
		contactUC.On("SubmitContactForm", mock.Anything, mock.AnythingOfType("*domain.ContactRequest")).
			Return(nil, &domain.ValidationError{Field: "telephone", Reason: "format de téléphone invalide"})
		router := newTestRouter(contactUC, new(MockHealthUsecase))

		w := postJSON(t, router, "/contact/submit", validBody())

		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), "telephone")
	})
}

func TestContactHealth(t *testing.T) {
	healthUC := new(MockHealthUsecase)
	healthUC.On("Check", mock.Anything).Return(&domain.HealthStatus{
		Status:          "operational",
		SMTPServer:      "smtp.example.com:587",
		MailFrom:        "noreply@villepropre.example",
		TLSEnabled:      false,
		RecipientsCount: 2,
	})
	router := newTestRouter(new(MockContactUsecase), healthUC)

	req := httptest.NewRequest(http.MethodGet, "/contact/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var status domain.HealthStatus
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &status))
	assert.Equal(t, "operational", status.Status)
	assert.Equal(t, "smtp.example.com:587", status.SMTPServer)
	assert.Equal(t, 2, status.RecipientsCount)
}
