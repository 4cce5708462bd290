package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	dashboardsmocks "github.com/vfg2006/onboarding-api/infrastructure/integrator/dashboards/mocks"
	"github.com/vfg2006/onboarding-api/infrastructure/repository/mocks"
	"github.com/vfg2006/onboarding-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func newSweepService(ctrl *gomock.Controller) (*BackfillReconcileService, *mocks.MockOnboardingRequestRepository, *dashboardsmocks.MockBackfillNotifier) {
	requestRepo := mocks.NewMockOnboardingRequestRepository(ctrl)
	notifier := dashboardsmocks.NewMockBackfillNotifier(ctrl)

	service := &BackfillReconcileService{
		requestRepo: requestRepo,
		notifier:    notifier,
	}
	return service, requestRepo, notifier
}

func pendingRequest(id, pageID string) *domain.OnboardingRequest {
	return &domain.OnboardingRequest{
		ID:           id,
		AdAccountID:  "act_123",
		NotionPageID: pageID,
		Status:       domain.OnboardingStatusProvisioned,
	}
}

func TestSweepPending_ReenviaECarimba(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, requestRepo, notifier := newSweepService(ctrl)

	requestRepo.EXPECT().
		ListPendingBackfill(uint64(sweepBatchSize)).
		Return([]*domain.OnboardingRequest{
			pendingRequest("req-1", "page-1"),
			pendingRequest("req-2", "page-2"),
		}, nil)

	notifier.EXPECT().NotifyBackfill("page-1").Return(nil)
	notifier.EXPECT().NotifyBackfill("page-2").Return(nil)

	requestRepo.EXPECT().MarkBackfillNotified("req-1", gomock.AssignableToTypeOf(time.Time{})).Return(nil)
	requestRepo.EXPECT().MarkBackfillNotified("req-2", gomock.AssignableToTypeOf(time.Time{})).Return(nil)

	service.SweepPending()
}

func TestSweepPending_FalhaIndividualNaoInterrompe(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, requestRepo, notifier := newSweepService(ctrl)

	requestRepo.EXPECT().
		ListPendingBackfill(uint64(sweepBatchSize)).
		Return([]*domain.OnboardingRequest{
			pendingRequest("req-1", "page-1"),
			pendingRequest("req-2", "page-2"),
		}, nil)

	// A primeira falha; a segunda ainda deve ser processada
	notifier.EXPECT().NotifyBackfill("page-1").Return(errors.New("dashboards indisponível"))
	notifier.EXPECT().NotifyBackfill("page-2").Return(nil)

	// Só a segunda é carimbada: a primeira fica para a próxima varredura
	requestRepo.EXPECT().MarkBackfillNotified("req-2", gomock.AssignableToTypeOf(time.Time{})).Return(nil)

	service.SweepPending()
}

func TestSweepPending_NadaPendente(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, requestRepo, _ := newSweepService(ctrl)

	requestRepo.EXPECT().
		ListPendingBackfill(uint64(sweepBatchSize)).
		Return([]*domain.OnboardingRequest{}, nil)

	service.SweepPending()
}

func TestSweepPending_ErroDeConsultaAborta(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	service, requestRepo, _ := newSweepService(ctrl)

	requestRepo.EXPECT().
		ListPendingBackfill(uint64(sweepBatchSize)).
		Return(nil, errors.New("connection refused"))

	service.SweepPending()
	assert.False(t, service.sweepRunning)
}
