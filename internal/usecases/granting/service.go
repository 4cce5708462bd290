package granting

import (
	"errors"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/onboarding-api/internal/domain"
)

// Granter pede ao Meta que o Business Manager da agência seja adicionado
// como parceiro/gestor da conta do cliente. A credencial usada é a do
// cliente: é a etapa de delegação, e exige que ele seja admin da conta.
type Granter interface {
	GrantPartnerAccess(clientAccessToken, adAccountID string) *domain.GrantResult
}

type Service struct {
	client metaclient.Client
}

func NewService(client metaclient.Client) Granter {
	return &Service{
		client: client,
	}
}

// GrantPartnerAccess não faz retry: diferente do health check, uma falha
// aqui geralmente é de permissão e precisa de ação do cliente, então volta
// imediatamente com a mensagem do upstream quando houver.
func (s *Service) GrantPartnerAccess(clientAccessToken, adAccountID string) *domain.GrantResult {
	id := domain.CanonicalAdAccountID(adAccountID)

	if err := s.client.AddClientAdAccount(clientAccessToken, id); err != nil {
		logrus.WithFields(logrus.Fields{
			"ad_account_id": id,
			"error":         err.Error(),
		}).Warn("grant: falha ao conceder acesso de parceiro")

		return &domain.GrantResult{
			Success: false,
			Error:   grantErrorMessage(err),
		}
	}

	logrus.WithField("ad_account_id", id).Info("grant: acesso de parceiro concedido")

	return &domain.GrantResult{Success: true}
}

// grantErrorMessage prefere a mensagem do envelope de erro da API; para
// erros de transporte fica a mensagem do próprio erro
func grantErrorMessage(err error) string {
	var reqErr *metaclient.RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return err.Error()
}
