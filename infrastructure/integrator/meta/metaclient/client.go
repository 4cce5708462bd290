package metaclient

import (
	"net/http"
	"time"

	metadomain "github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/onboarding-api/internal/config"
)

const (
	// Limite de tentativas para falhas transientes (rate limit e 5xx)
	maxRetries = 5
	// Atraso base do backoff exponencial, dobrado a cada tentativa
	defaultRetryBaseDelay = 1 * time.Second
	// Jitter uniforme somado a cada espera para evitar rajadas sincronizadas
	retryJitterMax = 500 * time.Millisecond
)

type Client interface {
	GetBusinesses(accessToken string) ([]metadomain.Business, error)
	GetOwnedAdAccounts(accessToken, businessID string) ([]metadomain.AdAccount, error)
	GetClientAdAccounts(accessToken, businessID string) ([]metadomain.AdAccount, error)
	GetAdAccountFields(accountID string) (*metadomain.AdAccountFields, error)
	AddClientAdAccount(accessToken, accountID string) error
}

type MetaClient struct {
	Cfg        *config.Config
	httpClient *http.Client

	// Configurável apenas em testes
	retryBaseDelay time.Duration
}

func NewClient(cfg *config.Config) Client {
	return &MetaClient{
		Cfg: cfg,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		retryBaseDelay: defaultRetryBaseDelay,
	}
}
