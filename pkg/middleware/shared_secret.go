package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/onboarding-api/pkg/apiErrors"
)

// SharedSecret autoriza as rotas de onboarding com um segredo compartilhado
// no header Authorization. A comparação é em tempo constante.
func SharedSecret(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if secret == "" {
				logrus.Error("Segredo de onboarding não configurado, recusando requisição")
				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Serviço mal configurado", nil)
				return
			}

			authHeader := r.Header.Get("Authorization")
			token := strings.TrimPrefix(authHeader, "Bearer ")
			if authHeader == "" || token == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Bearer token is required", nil)
				return
			}

			if subtle.ConstantTimeCompare([]byte(token), []byte(secret)) != 1 {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Invalid token", nil)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
