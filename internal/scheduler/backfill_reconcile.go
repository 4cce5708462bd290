package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/dashboards"
	"github.com/vfg2006/onboarding-api/infrastructure/repository"
	"github.com/vfg2006/onboarding-api/internal/config"
)

const sweepBatchSize = 50

// BackfillReconcileConfig representa a configuração da varredura de backfill
type BackfillReconcileConfig struct {
	CronSchedule string
	SweepEnabled bool
}

// BackfillReconcileService reenvia as notificações de backfill que falharam
// no momento do provisionamento. O disparo original é best-effort; esta
// varredura garante que nenhuma fique para trás.
type BackfillReconcileService struct {
	scheduler    *gocron.Scheduler
	config       BackfillReconcileConfig
	requestRepo  repository.OnboardingRequestRepository
	notifier     dashboards.BackfillNotifier
	sweepRunning bool
	sweepMutex   sync.Mutex
	lastSweepAt  time.Time
}

// NewBackfillReconcileService cria uma nova instância do serviço de varredura
func NewBackfillReconcileService(
	requestRepo repository.OnboardingRequestRepository,
	notifier dashboards.BackfillNotifier,
	appConfig *config.Config,
) *BackfillReconcileService {
	sweepConfig := BackfillReconcileConfig{
		CronSchedule: appConfig.BackfillSweep.CronSchedule,
		SweepEnabled: appConfig.BackfillSweep.Enabled,
	}

	scheduler := gocron.NewScheduler(time.Local)

	logrus.WithFields(logrus.Fields{
		"cron_schedule": sweepConfig.CronSchedule,
		"sweep_enabled": sweepConfig.SweepEnabled,
	}).Info("Configuração da varredura de backfill carregada")

	return &BackfillReconcileService{
		scheduler:   scheduler,
		config:      sweepConfig,
		requestRepo: requestRepo,
		notifier:    notifier,
	}
}

// Start inicia o agendador
func (s *BackfillReconcileService) Start(ctx context.Context) error {
	if !s.config.SweepEnabled {
		logrus.Info("Varredura de backfill desabilitada por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador da varredura de backfill")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.SweepPending()
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar varredura de backfill: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador da varredura de backfill")
		s.scheduler.Stop()
	}()

	return nil
}

// SweepPending percorre as requisições provisionadas sem confirmação de
// backfill e tenta notificar de novo. Falhas individuais não interrompem a
// varredura; a linha fica pendente para a próxima rodada.
func (s *BackfillReconcileService) SweepPending() {
	s.sweepMutex.Lock()
	if s.sweepRunning {
		s.sweepMutex.Unlock()
		logrus.Info("Varredura de backfill já em andamento, ignorando")
		return
	}
	s.sweepRunning = true
	s.sweepMutex.Unlock()

	defer func() {
		s.sweepMutex.Lock()
		s.sweepRunning = false
		s.sweepMutex.Unlock()
	}()

	startTime := time.Now()
	s.lastSweepAt = startTime

	pending, err := s.requestRepo.ListPendingBackfill(sweepBatchSize)
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar requisições com backfill pendente")
		return
	}

	if len(pending) == 0 {
		logrus.Debug("Nenhum backfill pendente para reconciliar")
		return
	}

	logrus.WithField("pending", len(pending)).Info("Iniciando reconciliação de backfills pendentes")

	var notified int
	for _, request := range pending {
		if err := s.notifier.NotifyBackfill(request.NotionPageID); err != nil {
			logrus.WithFields(logrus.Fields{
				"request_id":    request.ID,
				"ad_account_id": request.AdAccountID,
				"error":         err.Error(),
			}).Warn("Falha ao reenviar notificação de backfill")
			continue
		}

		if err := s.requestRepo.MarkBackfillNotified(request.ID, time.Now()); err != nil {
			logrus.WithFields(logrus.Fields{
				"request_id": request.ID,
				"error":      err.Error(),
			}).Error("Backfill reenviado mas falhou ao carimbar confirmação")
			continue
		}

		notified++
	}

	logrus.WithFields(logrus.Fields{
		"duration": time.Since(startTime).String(),
		"pending":  len(pending),
		"notified": notified,
	}).Info("Reconciliação de backfills concluída")
}

// GetStatus retorna o status atual do agendador
func (s *BackfillReconcileService) GetStatus() map[string]any {
	return map[string]any{
		"sweep_enabled": s.config.SweepEnabled,
		"sweep_cron":    s.config.CronSchedule,
		"last_sweep_at": s.lastSweepAt,
	}
}
