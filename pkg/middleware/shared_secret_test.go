package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func callWithSecret(t *testing.T, configured, sent string) *httptest.ResponseRecorder {
	t.Helper()

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodPost, "/v1/onboarding/provision", nil)
	if sent != "" {
		req.Header.Set("Authorization", "Bearer "+sent)
	}

	rec := httptest.NewRecorder()
	SharedSecret(configured)(next).ServeHTTP(rec, req)
	return rec
}

func TestSharedSecret_SegredoCorreto(t *testing.T) {
	rec := callWithSecret(t, "segredo-forte", "segredo-forte")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSharedSecret_SegredoErrado(t *testing.T) {
	rec := callWithSecret(t, "segredo-forte", "chute")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSharedSecret_SemHeader(t *testing.T) {
	rec := callWithSecret(t, "segredo-forte", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSharedSecret_SemSegredoConfiguradoRecusa(t *testing.T) {
	// Serviço mal configurado nunca autoriza, nem com token vazio
	rec := callWithSecret(t, "", "qualquer")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
