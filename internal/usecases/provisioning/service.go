package provisioning

import (
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/dashboards"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/notion"
	"github.com/vfg2006/onboarding-api/infrastructure/repository"
	"github.com/vfg2006/onboarding-api/internal/config"
	"github.com/vfg2006/onboarding-api/internal/domain"
	"github.com/vfg2006/onboarding-api/internal/usecases/healthchecking"
	"github.com/vfg2006/onboarding-api/pkg/apiErrors"
	"github.com/vfg2006/onboarding-api/pkg/utils"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Provisioner orquestra a sequência final do onboarding: checagem de
// duplicata, health check, criação da página no workspace, persistência,
// auditoria e notificação de backfill.
type Provisioner interface {
	Provision(request *domain.ProvisionRequest) (*domain.ProvisionResult, error)
}

type Service struct {
	clientRepo    repository.ClientRepository
	requestRepo   repository.OnboardingRequestRepository
	healthChecker healthchecking.HealthChecker
	notionService notion.Integrator
	notifier      dashboards.BackfillNotifier
	cfg           *config.Config
}

func NewService(
	clientRepo repository.ClientRepository,
	requestRepo repository.OnboardingRequestRepository,
	healthChecker healthchecking.HealthChecker,
	notionService notion.Integrator,
	notifier dashboards.BackfillNotifier,
	cfg *config.Config,
) Provisioner {
	return &Service{
		clientRepo:    clientRepo,
		requestRepo:   requestRepo,
		healthChecker: healthChecker,
		notionService: notionService,
		notifier:      notifier,
		cfg:           cfg,
	}
}

// Provision executa a sequência em ordem estrita. Falha de health check ou
// de qualquer escrita aborta a operação; apenas a notificação de backfill é
// best-effort: a varredura periódica reconcilia as que ficarem para trás.
func (s *Service) Provision(request *domain.ProvisionRequest) (*domain.ProvisionResult, error) {
	if request.BusinessName == "" {
		return nil, NewProvisionError(ErrBusinessNameRequired, apiErrors.ErrMissingRequiredData, "", "")
	}
	if request.AdAccountID == "" {
		return nil, NewProvisionError(ErrAdAccountIDRequired, apiErrors.ErrMissingRequiredData, "", "")
	}

	// Normalização cedo, para a checagem de duplicata e todas as escritas
	// usarem a mesma chave
	adAccountID := domain.CanonicalAdAccountID(request.AdAccountID)

	existing, err := s.clientRepo.GetByAdAccountID(adAccountID)
	if err != nil {
		return nil, NewProvisionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, adAccountID, "Falha ao consultar cliente existente")
	}

	if existing != nil {
		// O verdict é recalculado mesmo para duplicata: saúde nunca sai de
		// cache, e uma falha aqui não pode ser engolida
		health, err := s.healthChecker.CheckAccountHealth(adAccountID)
		if err != nil {
			return nil, NewProvisionError(ErrHealthCheckFailed, apiErrors.ErrExternalService, adAccountID, err.Error())
		}

		logrus.WithFields(logrus.Fields{
			"ad_account_id": adAccountID,
			"client_id":     existing.ID,
		}).Info("provision: conta já provisionada, reaproveitando registro")

		return &domain.ProvisionResult{
			NotionPageID:  existing.ID,
			DashboardURL:  s.dashboardURL(existing.ID),
			Health:        health,
			AlreadyExists: true,
		}, nil
	}

	// Uma conta cuja saúde não pôde ser determinada não gera registro
	health, err := s.healthChecker.CheckAccountHealth(adAccountID)
	if err != nil {
		return nil, NewProvisionError(ErrHealthCheckFailed, apiErrors.ErrExternalService, adAccountID, err.Error())
	}

	pageID, err := s.notionService.CreateClientPage(request.BusinessName, health.Currency)
	if err != nil {
		return nil, NewProvisionError(ErrNotionCreation, apiErrors.ErrExternalService, adAccountID, err.Error())
	}

	clientID, created, err := s.clientRepo.Create(&domain.Client{
		ID:              pageID,
		Name:            request.BusinessName,
		MetaAdAccountID: adAccountID,
		Currency:        health.Currency,
		IsActive:        true,
		ClientSince:     time.Now(),
	})
	if err != nil {
		return nil, NewProvisionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, adAccountID, "Falha ao persistir cliente")
	}

	if !created {
		// Corrida perdida para uma requisição idêntica concorrente: a
		// restrição do banco convergiu para um registro só. A página criada
		// acima fica órfã no workspace e é limpa fora de banda.
		logrus.WithFields(logrus.Fields{
			"ad_account_id":  adAccountID,
			"client_id":      clientID,
			"orphan_page_id": pageID,
		}).Warn("provision: corrida com requisição concorrente, página do workspace ficou órfã")

		return &domain.ProvisionResult{
			NotionPageID:  clientID,
			DashboardURL:  s.dashboardURL(clientID),
			Health:        health,
			AlreadyExists: true,
		}, nil
	}

	requestID, err := s.auditRequest(request, adAccountID, pageID, health)
	if err != nil {
		return nil, err
	}

	// Best-effort: falha de backfill nunca desfaz o provisionamento
	s.dispatchBackfill(requestID, pageID, adAccountID)

	return &domain.ProvisionResult{
		NotionPageID: pageID,
		DashboardURL: s.dashboardURL(pageID),
		Health:       health,
	}, nil
}

// auditRequest grava a linha de auditoria da tentativa, com o snapshot
// completo do verdict serializado
func (s *Service) auditRequest(
	request *domain.ProvisionRequest,
	adAccountID, pageID string,
	health *domain.HealthVerdict,
) (string, error) {
	requestID, err := utils.GenerateRequestID()
	if err != nil {
		return "", NewProvisionError(ErrDatabaseOperation, apiErrors.ErrInternalServer, adAccountID, "Falha ao gerar identificador da requisição")
	}

	healthSnapshot, err := json.Marshal(health)
	if err != nil {
		return "", NewProvisionError(ErrDatabaseOperation, apiErrors.ErrInternalServer, adAccountID, "Falha ao serializar verdict de saúde")
	}

	err = s.requestRepo.Insert(&domain.OnboardingRequest{
		ID:                requestID,
		BusinessName:      request.BusinessName,
		ContactName:       request.ContactName,
		ContactEmail:      request.ContactEmail,
		AdAccountID:       adAccountID,
		AdAccountName:     request.AdAccountName,
		BusinessManagerID: request.BusinessManagerID,
		AccountStatus:     health.AccountStatus,
		DisableReason:     health.DisableReason,
		HealthCheckResult: string(healthSnapshot),
		Status:            domain.OnboardingStatusProvisioned,
		NotionPageID:      pageID,
	})
	if err != nil {
		return "", NewProvisionError(ErrDatabaseOperation, apiErrors.ErrDatabaseOperation, adAccountID, "Falha ao gravar auditoria do onboarding")
	}

	return requestID, nil
}

// dispatchBackfill notifica os dashboards e engole qualquer falha. Em caso
// de sucesso carimba a linha de auditoria; senão ela fica pendente e a
// varredura periódica tenta de novo.
func (s *Service) dispatchBackfill(requestID, clientID, adAccountID string) {
	if err := s.notifier.NotifyBackfill(clientID); err != nil {
		logrus.WithFields(logrus.Fields{
			"client_id":     clientID,
			"ad_account_id": adAccountID,
			"error":         err.Error(),
		}).Warn("provision: notificação de backfill falhou, varredura vai reconciliar")
		return
	}

	if err := s.requestRepo.MarkBackfillNotified(requestID, time.Now()); err != nil {
		logrus.WithFields(logrus.Fields{
			"request_id": requestID,
			"error":      err.Error(),
		}).Warn("provision: falha ao carimbar confirmação de backfill")
	}
}

func (s *Service) dashboardURL(clientID string) string {
	if s.cfg.Dashboards.URL == "" {
		return "/" + clientID
	}
	return fmt.Sprintf("%s/%s", s.cfg.Dashboards.URL, clientID)
}
