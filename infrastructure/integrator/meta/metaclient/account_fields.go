package metaclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/onboarding-api/internal/domain"
)

// ErrMaxRetries indica que o limite de tentativas foi esgotado em falhas
// transientes (rate limit ou 5xx)
var ErrMaxRetries = errors.New("Meta API: max retries exceeded")

var accountFieldsList = "account_status,disable_reason,name,currency,spend_cap," +
	"amount_spent,business{name,id,verification_status},timezone_name,created_time"

// GetAdAccountFields busca os campos de status da conta usando a credencial
// da agência. Usado pelo health check, por isso é a única chamada com retry.
func (c *MetaClient) GetAdAccountFields(accountID string) (*metadomain.AdAccountFields, error) {
	id := domain.CanonicalAdAccountID(accountID)

	baseURL := fmt.Sprintf("%s/%s", c.Cfg.Meta.URL, id)

	params := url.Values{}
	params.Add("fields", accountFieldsList)
	params.Add("access_token", c.Cfg.Meta.AccessToken)

	body, err := c.getWithRetry(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var fields metadomain.AdAccountFields
	if err := json.Unmarshal(body, &fields); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON de campos da conta")
		return nil, err
	}

	return &fields, nil
}

// getWithRetry executa GET com retry em falhas transientes: backoff
// exponencial a partir do atraso base, mais jitter uniforme. Erros HTTP não
// transientes falham imediatamente, sem retry.
func (c *MetaClient) getWithRetry(url string) ([]byte, error) {
	for attempt := 0; attempt < maxRetries; attempt++ {
		req, err := http.NewRequest(http.MethodGet, url, nil)
		if err != nil {
			logrus.WithError(err).Error("Erro ao criar a requisição")
			return nil, err
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}

		if isTransientStatus(resp.StatusCode) {
			resp.Body.Close()

			delay := c.retryBaseDelay<<attempt + time.Duration(rand.Int63n(int64(retryJitterMax)))
			logrus.WithFields(logrus.Fields{
				"status":  resp.StatusCode,
				"attempt": attempt + 1,
				"delay":   delay.String(),
			}).Warn("Resposta transiente da API do Meta, aguardando para tentar novamente")

			time.Sleep(delay)
			continue
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, fmt.Errorf("erro ao ler resposta: %w", err)
		}

		if resp.StatusCode != http.StatusOK {
			reqErr := newRequestError(resp.StatusCode, body)

			// Sinal operacional: credencial expirada exige regenerar o token
			// no painel de desenvolvedor, não adianta tentar de novo
			if reqErr.IsTokenExpired() {
				logrus.WithFields(logrus.Fields{
					"code":   reqErr.Envelope.Error.Code,
					"type":   reqErr.Envelope.Error.Type,
					"status": resp.StatusCode,
				}).Error("TOKEN EXPIRADO: o token de acesso do Meta é inválido ou expirou. Gere um novo em https://developers.facebook.com/tools/explorer/")
			}

			return nil, reqErr
		}

		return body, nil
	}

	return nil, ErrMaxRetries
}

// isTransientStatus marca rate limit e indisponibilidade do lado do servidor
func isTransientStatus(status int) bool {
	return status == http.StatusTooManyRequests ||
		status == http.StatusInternalServerError ||
		status == http.StatusServiceUnavailable
}
