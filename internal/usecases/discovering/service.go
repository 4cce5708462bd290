package discovering

import (
	"sync"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/onboarding-api/internal/domain"
)

// Discoverer enumera os Business Managers visíveis pela credencial do
// cliente, cada um com suas contas de anúncio deduplicadas.
type Discoverer interface {
	DiscoverAccounts(clientAccessToken string) (*domain.DiscoverResult, error)
}

type Service struct {
	client metaclient.Client
}

func NewService(client metaclient.Client) Discoverer {
	return &Service{
		client: client,
	}
}

// DiscoverAccounts falha apenas se a listagem de businesses falhar. A falha
// de uma das fontes de contas de um business vira lista vazia daquela fonte:
// um business com fetch quebrado não derruba a descoberta dos irmãos.
func (s *Service) DiscoverAccounts(clientAccessToken string) (*domain.DiscoverResult, error) {
	businesses, err := s.client.GetBusinesses(clientAccessToken)
	if err != nil {
		logrus.WithError(err).Error("discovery: falha ao listar business managers do cliente")
		return nil, err
	}

	result := &domain.DiscoverResult{
		Businesses: make([]*domain.BusinessManager, 0, len(businesses)),
	}

	for _, business := range businesses {
		owned, shared := s.fetchAccountPair(clientAccessToken, business.ID)

		result.Businesses = append(result.Businesses, &domain.BusinessManager{
			ID:         business.ID,
			Name:       business.Name,
			AdAccounts: mergeAccounts(owned, shared),
		})
	}

	return result, nil
}

// fetchAccountPair busca as duas fontes de contas do business em paralelo e
// espera as duas antes de seguir para o próximo business
func (s *Service) fetchAccountPair(accessToken, businessID string) ([]metadomain.AdAccount, []metadomain.AdAccount) {
	var (
		owned  []metadomain.AdAccount
		shared []metadomain.AdAccount
		wg     sync.WaitGroup
	)

	wg.Add(2)

	go func() {
		defer wg.Done()

		accounts, err := s.client.GetOwnedAdAccounts(accessToken, businessID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"business_id": businessID,
				"error":       err.Error(),
			}).Warn("discovery: falha ao listar owned_ad_accounts, seguindo sem a fonte")
			return
		}
		owned = accounts
	}()

	go func() {
		defer wg.Done()

		accounts, err := s.client.GetClientAdAccounts(accessToken, businessID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"business_id": businessID,
				"error":       err.Error(),
			}).Warn("discovery: falha ao listar client_ad_accounts, seguindo sem a fonte")
			return
		}
		shared = accounts
	}()

	wg.Wait()

	return owned, shared
}

// mergeAccounts junta as duas fontes deduplicando por ID. A lista de owned
// vem primeiro, então em caso de duplicata vence a entrada de owned
// (first-seen-wins).
func mergeAccounts(owned, shared []metadomain.AdAccount) []domain.AdAccount {
	seen := make(map[string]struct{})
	merged := make([]domain.AdAccount, 0, len(owned)+len(shared))

	for _, account := range append(owned, shared...) {
		if _, exists := seen[account.ID]; exists {
			continue
		}
		seen[account.ID] = struct{}{}

		merged = append(merged, domain.AdAccount{
			ID:            account.ID,
			Name:          account.Name,
			AccountStatus: account.AccountStatus,
		})
	}

	return merged
}
