package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/onboarding-api/internal/scheduler"
)

// RunBackfillSweep dispara manualmente a varredura de backfills pendentes
func RunBackfillSweep(service *scheduler.BackfillReconcileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		logrus.Info("Varredura de backfill disparada manualmente")

		go service.SweepPending()

		writeJSON(w, http.StatusAccepted, map[string]string{
			"status": "sweep started",
		})
	}
}

// GetCronStatus retorna o estado do agendador de varredura
func GetCronStatus(service *scheduler.BackfillReconcileService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, service.GetStatus())
	}
}
