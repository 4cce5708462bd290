package handler

import (
	"net/http"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/onboarding-api/internal/domain"
	"github.com/vfg2006/onboarding-api/internal/usecases/discovering"
	"github.com/vfg2006/onboarding-api/internal/usecases/granting"
	"github.com/vfg2006/onboarding-api/internal/usecases/healthchecking"
	"github.com/vfg2006/onboarding-api/internal/usecases/provisioning"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type DiscoverRequest struct {
	ClientAccessToken string `json:"clientAccessToken"`
}

type GrantRequest struct {
	ClientAccessToken string `json:"clientAccessToken"`
	AdAccountID       string `json:"adAccountId"`
}

type HealthCheckRequest struct {
	AdAccountID string `json:"adAccountId"`
}

// writeJSON serializa a resposta de sucesso
func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logrus.WithError(err).Error("Erro ao serializar resposta")
	}
}

// writeErrorJSON padroniza toda falha das rotas de onboarding em um único
// payload {error}
func writeErrorJSON(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// DiscoverAccounts lista os business managers e contas visíveis pela
// credencial do cliente
func DiscoverAccounts(service discovering.Discoverer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req DiscoverRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorJSON(w, http.StatusBadRequest, "Formato de requisição inválido")
			return
		}

		if req.ClientAccessToken == "" {
			writeErrorJSON(w, http.StatusBadRequest, "clientAccessToken is required")
			return
		}

		result, err := service.DiscoverAccounts(req.ClientAccessToken)
		if err != nil {
			logrus.WithError(err).Error("Erro ao descobrir contas do cliente")
			writeErrorJSON(w, http.StatusBadGateway, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

// GrantAccess concede acesso de parceiro ao BM da agência sobre a conta do
// cliente. Falhas não são retentadas.
func GrantAccess(service granting.Granter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req GrantRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorJSON(w, http.StatusBadRequest, "Formato de requisição inválido")
			return
		}

		if req.ClientAccessToken == "" {
			writeErrorJSON(w, http.StatusBadRequest, "clientAccessToken is required")
			return
		}
		if req.AdAccountID == "" {
			writeErrorJSON(w, http.StatusBadRequest, "adAccountId is required")
			return
		}

		result := service.GrantPartnerAccess(req.ClientAccessToken, req.AdAccountID)
		writeJSON(w, http.StatusOK, result)
	}
}

// CheckAccountHealth avalia a saúde da conta com a credencial da agência
func CheckAccountHealth(service healthchecking.HealthChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req HealthCheckRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorJSON(w, http.StatusBadRequest, "Formato de requisição inválido")
			return
		}

		if req.AdAccountID == "" {
			writeErrorJSON(w, http.StatusBadRequest, "adAccountId is required")
			return
		}

		verdict, err := service.CheckAccountHealth(req.AdAccountID)
		if err != nil {
			logrus.WithError(err).Error("Erro no health check da conta")
			writeErrorJSON(w, http.StatusBadGateway, err.Error())
			return
		}

		writeJSON(w, http.StatusOK, verdict)
	}
}

// ProvisionClient executa a etapa final do onboarding
func ProvisionClient(service provisioning.Provisioner) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req domain.ProvisionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeErrorJSON(w, http.StatusBadRequest, "Formato de requisição inválido")
			return
		}

		result, err := service.Provision(&req)
		if err != nil {
			logrus.WithError(err).Error("Erro ao provisionar cliente")
			writeErrorJSON(w, statusForProvisionError(err), err.Error())
			return
		}

		writeJSON(w, http.StatusOK, result)
	}
}

func statusForProvisionError(err error) int {
	var provErr *provisioning.ProvisionError
	if !errors.As(err, &provErr) {
		return http.StatusInternalServerError
	}

	switch {
	case errors.Is(err, provisioning.ErrBusinessNameRequired),
		errors.Is(err, provisioning.ErrAdAccountIDRequired):
		return http.StatusBadRequest
	case errors.Is(err, provisioning.ErrHealthCheckFailed),
		errors.Is(err, provisioning.ErrNotionCreation):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
