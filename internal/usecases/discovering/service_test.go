package discovering

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/mocks"
	"go.uber.org/mock/gomock"
)

const testToken = "client-token"

func TestDiscoverAccounts_DeduplicaPorID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	mockClient.EXPECT().
		GetBusinesses(testToken).
		Return([]metadomain.Business{{ID: "bm1", Name: "BM Um"}}, nil)

	// act_1 aparece nas duas fontes: deve sobrar uma entrada só, a de owned
	mockClient.EXPECT().
		GetOwnedAdAccounts(testToken, "bm1").
		Return([]metadomain.AdAccount{
			{ID: "act_1", Name: "Conta Própria", AccountStatus: 1},
			{ID: "act_2", Name: "Conta Dois", AccountStatus: 1},
		}, nil)

	mockClient.EXPECT().
		GetClientAdAccounts(testToken, "bm1").
		Return([]metadomain.AdAccount{
			{ID: "act_1", Name: "Conta Compartilhada", AccountStatus: 2},
			{ID: "act_3", Name: "Conta Três", AccountStatus: 1},
		}, nil)

	result, err := service.DiscoverAccounts(testToken)
	assert.NoError(t, err)
	assert.Len(t, result.Businesses, 1)

	accounts := result.Businesses[0].AdAccounts
	assert.Len(t, accounts, 3)
	assert.Equal(t, "act_1", accounts[0].ID)
	assert.Equal(t, "Conta Própria", accounts[0].Name, "em duplicata vence a entrada de owned")
	assert.Equal(t, "act_2", accounts[1].ID)
	assert.Equal(t, "act_3", accounts[2].ID)
}

func TestDiscoverAccounts_FalhaParcialNaoDerrubaBusiness(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	mockClient.EXPECT().
		GetBusinesses(testToken).
		Return([]metadomain.Business{
			{ID: "bm1", Name: "BM Um"},
			{ID: "bm2", Name: "BM Dois"},
		}, nil)

	// bm1: fonte de client_ad_accounts quebra, owned sobrevive
	mockClient.EXPECT().
		GetOwnedAdAccounts(testToken, "bm1").
		Return([]metadomain.AdAccount{{ID: "act_1", Name: "Conta Um", AccountStatus: 1}}, nil)
	mockClient.EXPECT().
		GetClientAdAccounts(testToken, "bm1").
		Return(nil, errors.New("rate limited"))

	// bm2: irmão não é afetado
	mockClient.EXPECT().
		GetOwnedAdAccounts(testToken, "bm2").
		Return([]metadomain.AdAccount{{ID: "act_9", Name: "Conta Nove", AccountStatus: 1}}, nil)
	mockClient.EXPECT().
		GetClientAdAccounts(testToken, "bm2").
		Return([]metadomain.AdAccount{}, nil)

	result, err := service.DiscoverAccounts(testToken)
	assert.NoError(t, err)
	assert.Len(t, result.Businesses, 2)

	assert.Len(t, result.Businesses[0].AdAccounts, 1)
	assert.Equal(t, "act_1", result.Businesses[0].AdAccounts[0].ID)

	assert.Len(t, result.Businesses[1].AdAccounts, 1)
	assert.Equal(t, "act_9", result.Businesses[1].AdAccounts[0].ID)
}

func TestDiscoverAccounts_FalhaNaListagemDeBusinessesEhFatal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	mockClient.EXPECT().
		GetBusinesses(testToken).
		Return(nil, errors.New("invalid token"))

	result, err := service.DiscoverAccounts(testToken)
	assert.Error(t, err)
	assert.Nil(t, result)
}

func TestDiscoverAccounts_BusinessSemContas(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	mockClient.EXPECT().
		GetBusinesses(testToken).
		Return([]metadomain.Business{{ID: "bm1", Name: "BM Vazio"}}, nil)
	mockClient.EXPECT().
		GetOwnedAdAccounts(testToken, "bm1").
		Return([]metadomain.AdAccount{}, nil)
	mockClient.EXPECT().
		GetClientAdAccounts(testToken, "bm1").
		Return([]metadomain.AdAccount{}, nil)

	result, err := service.DiscoverAccounts(testToken)
	assert.NoError(t, err)
	assert.Len(t, result.Businesses, 1)
	assert.Empty(t, result.Businesses[0].AdAccounts)
}
