package dashboards

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/onboarding-api/internal/config"
)

// BackfillNotifier dispara o backfill de dados históricos no serviço de
// dashboards quando um cliente novo é provisionado. A chamada é best-effort
// por contrato: quem chama decide engolir a falha (o orquestrador engole e
// deixa a varredura periódica reconciliar).
type BackfillNotifier interface {
	NotifyBackfill(clientID string) error
}

type Notifier struct {
	cfg        *config.Config
	httpClient *http.Client
}

func NewNotifier(cfg *config.Config) BackfillNotifier {
	return &Notifier{
		cfg: cfg,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type backfillRequest struct {
	ClientID   string `json:"clientId"`
	MonthsBack int    `json:"monthsBack"`
}

func (n *Notifier) NotifyBackfill(clientID string) error {
	if n.cfg.Dashboards.URL == "" || n.cfg.Dashboards.Secret == "" {
		logrus.Debug("dashboards: URL ou segredo não configurados, pulando notificação de backfill")
		return nil
	}

	payload, err := json.Marshal(backfillRequest{
		ClientID:   clientID,
		MonthsBack: n.cfg.Dashboards.BackfillMonths,
	})
	if err != nil {
		return err
	}

	endpoint := fmt.Sprintf("%s/api/backfill", n.cfg.Dashboards.URL)

	req, err := http.NewRequest(http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+n.cfg.Dashboards.Secret)

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("dashboards respondeu status %d para backfill do cliente %s", resp.StatusCode, clientID)
	}

	return nil
}
