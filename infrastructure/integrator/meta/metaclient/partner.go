package metaclient

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/onboarding-api/internal/domain"
)

// AddClientAdAccount adiciona a conta de anúncio como client ad account do
// Business Manager da agência. A credencial é a do CLIENTE: é ele quem
// precisa ser admin da conta para delegar o acesso. Sem retry: falha volta
// imediatamente para o cliente corrigir.
func (c *MetaClient) AddClientAdAccount(accessToken, accountID string) error {
	id := domain.CanonicalAdAccountID(accountID)

	endpoint := fmt.Sprintf("%s/%s/client_ad_accounts", c.Cfg.Meta.URL, c.Cfg.Meta.BusinessManagerID)

	form := url.Values{}
	form.Add("adaccount_id", id)
	form.Add("access_token", accessToken)

	req, err := http.NewRequest(http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return newRequestError(resp.StatusCode, body)
	}

	return nil
}
