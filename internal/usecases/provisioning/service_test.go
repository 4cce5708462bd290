package provisioning

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	dashboardsmocks "github.com/vfg2006/onboarding-api/infrastructure/integrator/dashboards/mocks"
	notionmocks "github.com/vfg2006/onboarding-api/infrastructure/integrator/notion/mocks"
	repomocks "github.com/vfg2006/onboarding-api/infrastructure/repository/mocks"
	"github.com/vfg2006/onboarding-api/internal/config"
	"github.com/vfg2006/onboarding-api/internal/domain"
	healthmocks "github.com/vfg2006/onboarding-api/internal/usecases/healthchecking/mocks"
	"go.uber.org/mock/gomock"
)

type testMocks struct {
	clientRepo    *repomocks.MockClientRepository
	requestRepo   *repomocks.MockOnboardingRequestRepository
	healthChecker *healthmocks.MockHealthChecker
	notionService *notionmocks.MockIntegrator
	notifier      *dashboardsmocks.MockBackfillNotifier
}

func newTestService(ctrl *gomock.Controller, dashboardsURL string) (Provisioner, *testMocks) {
	m := &testMocks{
		clientRepo:    repomocks.NewMockClientRepository(ctrl),
		requestRepo:   repomocks.NewMockOnboardingRequestRepository(ctrl),
		healthChecker: healthmocks.NewMockHealthChecker(ctrl),
		notionService: notionmocks.NewMockIntegrator(ctrl),
		notifier:      dashboardsmocks.NewMockBackfillNotifier(ctrl),
	}

	cfg := &config.Config{}
	cfg.Dashboards.URL = dashboardsURL

	service := NewService(m.clientRepo, m.requestRepo, m.healthChecker, m.notionService, m.notifier, cfg)
	return service, m
}

func greenVerdict(id string) *domain.HealthVerdict {
	return &domain.HealthVerdict{
		ID:                 id,
		Name:               "Loja A",
		AccountStatus:      1,
		AccountStatusLabel: "Active",
		DisableReasonLabel: "None",
		Currency:           "BRL",
		Timezone:           "America/Sao_Paulo",
		AmountSpent:        "0",
		OverallStatus:      domain.OverallStatusGreen,
		Issues:             []string{},
	}
}

func provisionRequest() *domain.ProvisionRequest {
	return &domain.ProvisionRequest{
		BusinessName:  "Loja A",
		AdAccountID:   "123",
		AdAccountName: "Conta Loja A",
	}
}

func TestProvision_FluxoCompleto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, "https://dashboards.example.com")

	m.clientRepo.EXPECT().
		GetByAdAccountID("act_123").
		Return(nil, nil)

	m.healthChecker.EXPECT().
		CheckAccountHealth("act_123").
		Return(greenVerdict("act_123"), nil)

	m.notionService.EXPECT().
		CreateClientPage("Loja A", "BRL").
		Return("page-1", nil)

	m.clientRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(client *domain.Client) (string, bool, error) {
			assert.Equal(t, "page-1", client.ID)
			assert.Equal(t, "act_123", client.MetaAdAccountID)
			assert.Equal(t, "BRL", client.Currency)
			assert.True(t, client.IsActive)
			return "page-1", true, nil
		})

	var auditedRequestID string
	m.requestRepo.EXPECT().
		Insert(gomock.Any()).
		DoAndReturn(func(request *domain.OnboardingRequest) error {
			auditedRequestID = request.ID
			assert.NotEmpty(t, request.ID)
			assert.Equal(t, "act_123", request.AdAccountID)
			assert.Equal(t, domain.OnboardingStatusProvisioned, request.Status)
			assert.Equal(t, "page-1", request.NotionPageID)
			assert.Contains(t, request.HealthCheckResult, `"overallStatus":"green"`)
			return nil
		})

	m.notifier.EXPECT().
		NotifyBackfill("page-1").
		Return(nil)

	m.requestRepo.EXPECT().
		MarkBackfillNotified(gomock.Any(), gomock.Any()).
		DoAndReturn(func(requestID string, _ time.Time) error {
			assert.Equal(t, auditedRequestID, requestID)
			return nil
		})

	result, err := service.Provision(provisionRequest())
	assert.NoError(t, err)
	assert.Equal(t, "page-1", result.NotionPageID)
	assert.Equal(t, "https://dashboards.example.com/page-1", result.DashboardURL)
	assert.False(t, result.AlreadyExists)
	assert.Equal(t, domain.OverallStatusGreen, result.Health.OverallStatus)
}

func TestProvision_DuplicataRetornaRegistroExistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, "")

	m.clientRepo.EXPECT().
		GetByAdAccountID("act_123").
		Return(&domain.Client{
			ID:              "page-1",
			Name:            "Loja A",
			MetaAdAccountID: "act_123",
		}, nil)

	// A saúde é recalculada mesmo na duplicata: nada de verdict em cache.
	// Nenhuma criação de página, nenhum insert, nenhuma auditoria nova.
	m.healthChecker.EXPECT().
		CheckAccountHealth("act_123").
		Return(greenVerdict("act_123"), nil)

	result, err := service.Provision(provisionRequest())
	assert.NoError(t, err)
	assert.True(t, result.AlreadyExists)
	assert.Equal(t, "page-1", result.NotionPageID)
	assert.Equal(t, "/page-1", result.DashboardURL, "sem URL configurada o fallback é relativo")
}

func TestProvision_DuplicataComHealthCheckQuebradoFalha(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, "")

	m.clientRepo.EXPECT().
		GetByAdAccountID("act_123").
		Return(&domain.Client{ID: "page-1"}, nil)

	m.healthChecker.EXPECT().
		CheckAccountHealth("act_123").
		Return(nil, errors.New("Meta API: max retries exceeded"))

	// Quem chama nunca recebe verdict velho com erro suprimido
	result, err := service.Provision(provisionRequest())
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrHealthCheckFailed)
}

func TestProvision_HealthCheckQuebradoAbortaSemCriarNada(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, "")

	m.clientRepo.EXPECT().
		GetByAdAccountID("act_123").
		Return(nil, nil)

	m.healthChecker.EXPECT().
		CheckAccountHealth("act_123").
		Return(nil, errors.New("Meta API error 400: bad account"))

	result, err := service.Provision(provisionRequest())
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrHealthCheckFailed)
}

func TestProvision_FalhaDeBackfillNaoDerrubaProvisionamento(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, "https://dashboards.example.com")

	m.clientRepo.EXPECT().GetByAdAccountID("act_123").Return(nil, nil)
	m.healthChecker.EXPECT().CheckAccountHealth("act_123").Return(greenVerdict("act_123"), nil)
	m.notionService.EXPECT().CreateClientPage("Loja A", "BRL").Return("page-1", nil)
	m.clientRepo.EXPECT().Create(gomock.Any()).Return("page-1", true, nil)
	m.requestRepo.EXPECT().Insert(gomock.Any()).Return(nil)

	m.notifier.EXPECT().
		NotifyBackfill("page-1").
		Return(errors.New("dashboards indisponível"))

	// Sem MarkBackfillNotified: a linha fica pendente para a varredura

	result, err := service.Provision(provisionRequest())
	assert.NoError(t, err)
	assert.Equal(t, "page-1", result.NotionPageID)
	assert.False(t, result.AlreadyExists)
}

func TestProvision_CorridaPerdidaConvergeParaRegistroExistente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, "")

	m.clientRepo.EXPECT().GetByAdAccountID("act_123").Return(nil, nil)
	m.healthChecker.EXPECT().CheckAccountHealth("act_123").Return(greenVerdict("act_123"), nil)
	m.notionService.EXPECT().CreateClientPage("Loja A", "BRL").Return("page-2", nil)

	// A requisição concorrente inseriu primeiro: o conflito devolve o ID dela
	m.clientRepo.EXPECT().
		Create(gomock.Any()).
		Return("page-1", false, nil)

	// Sem auditoria nova e sem backfill: a tentativa virou duplicata

	result, err := service.Provision(provisionRequest())
	assert.NoError(t, err)
	assert.True(t, result.AlreadyExists)
	assert.Equal(t, "page-1", result.NotionPageID)
}

func TestProvision_ValidacaoAntesDeQualquerChamadaExterna(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, _ := newTestService(ctrl, "")

	_, err := service.Provision(&domain.ProvisionRequest{AdAccountID: "123"})
	assert.ErrorIs(t, err, ErrBusinessNameRequired)

	_, err = service.Provision(&domain.ProvisionRequest{BusinessName: "Loja A"})
	assert.ErrorIs(t, err, ErrAdAccountIDRequired)
}

func TestProvision_FalhaNoNotionAborta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, m := newTestService(ctrl, "")

	m.clientRepo.EXPECT().GetByAdAccountID("act_123").Return(nil, nil)
	m.healthChecker.EXPECT().CheckAccountHealth("act_123").Return(greenVerdict("act_123"), nil)
	m.notionService.EXPECT().
		CreateClientPage("Loja A", "BRL").
		Return("", errors.New("Notion API error 503"))

	result, err := service.Provision(provisionRequest())
	assert.Error(t, err)
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNotionCreation)
}
