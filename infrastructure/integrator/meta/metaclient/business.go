package metaclient

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/domain"
)

type ResponseBusinesses struct {
	Data []metadomain.Business `json:"data"`
}

type ResponseAdAccounts struct {
	Data []metadomain.AdAccount `json:"data"`
}

// GetBusinesses lista os Business Managers visíveis pela credencial do
// cliente (não pela da agência)
func (c *MetaClient) GetBusinesses(accessToken string) ([]metadomain.Business, error) {
	baseURL := fmt.Sprintf("%s/me/businesses", c.Cfg.Meta.URL)

	params := url.Values{}
	params.Add("fields", "id,name")
	params.Add("access_token", accessToken)

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseBusinesses
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Error("Erro ao decodificar JSON de businesses")
		return nil, err
	}

	return response.Data, nil
}

// GetOwnedAdAccounts lista as contas de anúncio próprias de um Business Manager
func (c *MetaClient) GetOwnedAdAccounts(accessToken, businessID string) ([]metadomain.AdAccount, error) {
	return c.getAdAccountList(accessToken, businessID, "owned_ad_accounts")
}

// GetClientAdAccounts lista as contas compartilhadas com o Business Manager
// (relação de cliente/parceiro)
func (c *MetaClient) GetClientAdAccounts(accessToken, businessID string) ([]metadomain.AdAccount, error) {
	return c.getAdAccountList(accessToken, businessID, "client_ad_accounts")
}

func (c *MetaClient) getAdAccountList(accessToken, businessID, edge string) ([]metadomain.AdAccount, error) {
	baseURL := fmt.Sprintf("%s/%s/%s", c.Cfg.Meta.URL, businessID, edge)

	params := url.Values{}
	params.Add("fields", "id,name,account_status")
	params.Add("limit", "100")
	params.Add("access_token", accessToken)

	body, err := c.get(baseURL + "?" + params.Encode())
	if err != nil {
		return nil, err
	}

	var response ResponseAdAccounts
	if err := json.Unmarshal(body, &response); err != nil {
		logrus.WithError(err).Errorf("Erro ao decodificar JSON de %s", edge)
		return nil, err
	}

	return response.Data, nil
}

// get executa uma requisição GET simples, sem retry. Erros da API viram
// RequestError com a mensagem do envelope quando disponível.
func (c *MetaClient) get(url string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, url, nil)
	if err != nil {
		logrus.WithError(err).Error("Erro ao criar a requisição")
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		logrus.WithError(err).Error("Erro ao fazer a requisição")
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler resposta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, newRequestError(resp.StatusCode, body)
	}

	return body, nil
}
