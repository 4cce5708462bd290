package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/onboarding-api/infrastructure/repository"
	"github.com/vfg2006/onboarding-api/pkg/apiErrors"
)

const requestListLimit = 100

// ListClients lista os clientes ativos para o painel de operação
func ListClients(clientRepo repository.ClientRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		clients, err := clientRepo.ListClients()
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar clientes")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar clientes", nil)
			return
		}

		writeJSON(w, http.StatusOK, clients)
	}
}

// ListOnboardingRequests lista a trilha de auditoria das tentativas de
// onboarding, mais recentes primeiro
func ListOnboardingRequests(requestRepo repository.OnboardingRequestRepository) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		requests, err := requestRepo.ListRequests(requestListLimit)
		if err != nil {
			logrus.WithError(err).Error("Erro ao listar requisições de onboarding")
			apiErrors.WriteError(w, apiErrors.ErrDatabaseOperation, "Erro ao listar requisições de onboarding", nil)
			return
		}

		writeJSON(w, http.StatusOK, requests)
	}
}
