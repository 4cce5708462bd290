package healthchecking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/onboarding-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestClassify_CasosConhecidos(t *testing.T) {
	tests := []struct {
		name           string
		accountStatus  int
		disableReason  int
		expectedStatus domain.OverallStatus
		expectedIssues []string
	}{
		{
			name:           "Conta ativa sem motivo de desativação é verde",
			accountStatus:  1,
			disableReason:  0,
			expectedStatus: domain.OverallStatusGreen,
			expectedIssues: []string{},
		},
		{
			name:           "Conta desativada é vermelha",
			accountStatus:  2,
			disableReason:  0,
			expectedStatus: domain.OverallStatusRed,
			expectedIssues: []string{"Account is disabled"},
		},
		{
			name:           "Conta desativada com motivo acumula os dois issues",
			accountStatus:  2,
			disableReason:  3,
			expectedStatus: domain.OverallStatusRed,
			expectedIssues: []string{"Account is disabled", "Disable reason: Risk Payment"},
		},
		{
			name:           "Motivo de desativação sozinho já é vermelho",
			accountStatus:  1,
			disableReason:  1,
			expectedStatus: domain.OverallStatusRed,
			expectedIssues: []string{"Disable reason: Ads Integrity Policy"},
		},
		{
			name:           "Revisão de risco pendente é amarela",
			accountStatus:  7,
			disableReason:  0,
			expectedStatus: domain.OverallStatusYellow,
			expectedIssues: []string{"Account is pending risk review"},
		},
		{
			name:           "Período de carência é amarelo",
			accountStatus:  9,
			disableReason:  0,
			expectedStatus: domain.OverallStatusYellow,
			expectedIssues: []string{"Account is in grace period"},
		},
		{
			name:           "Conta fechada cai no caso genérico amarelo",
			accountStatus:  101,
			disableReason:  0,
			expectedStatus: domain.OverallStatusYellow,
			expectedIssues: []string{"Account status: Closed"},
		},
		{
			name:           "Status desconhecido não quebra a classificação",
			accountStatus:  555,
			disableReason:  0,
			expectedStatus: domain.OverallStatusYellow,
			expectedIssues: []string{"Account status: Unknown (555)"},
		},
		{
			name:           "Motivo de desativação desconhecido não quebra a classificação",
			accountStatus:  2,
			disableReason:  77,
			expectedStatus: domain.OverallStatusRed,
			expectedIssues: []string{"Account is disabled", "Disable reason: Unknown (77)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overall, issues := classify(tt.accountStatus, tt.disableReason)
			assert.Equal(t, tt.expectedStatus, overall)
			assert.Equal(t, tt.expectedIssues, issues)
		})
	}
}

func TestClassify_TotalSobreInteiros(t *testing.T) {
	// Varredura de uma faixa de códigos, incluindo negativos e fora do mapa:
	// a classificação sempre devolve um dos três status e issues com rótulo
	valid := map[domain.OverallStatus]bool{
		domain.OverallStatusGreen:  true,
		domain.OverallStatusYellow: true,
		domain.OverallStatusRed:    true,
	}

	for status := -5; status <= 250; status++ {
		for _, reason := range []int{-1, 0, 1, 9, 10, 100} {
			overall, issues := classify(status, reason)
			assert.True(t, valid[overall], "status=%d reason=%d produziu %q", status, reason, overall)
			assert.NotNil(t, issues)
		}
	}
}

func TestCheckAccountHealth(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	mockClient.EXPECT().
		GetAdAccountFields("act_123").
		Return(&metadomain.AdAccountFields{
			ID:            "act_123",
			Name:          "Loja A",
			AccountStatus: 1,
			DisableReason: 0,
			Currency:      "BRL",
			TimezoneName:  "America/Sao_Paulo",
			Business: &metadomain.BusinessRef{
				ID:   "42",
				Name: "BM Loja A",
			},
		}, nil)

	// ID sem prefixo é canonizado antes da chamada
	verdict, err := service.CheckAccountHealth("123")
	assert.NoError(t, err)
	assert.Equal(t, domain.OverallStatusGreen, verdict.OverallStatus)
	assert.Empty(t, verdict.Issues)
	assert.Equal(t, "Active", verdict.AccountStatusLabel)
	assert.Equal(t, "BRL", verdict.Currency)
	assert.Equal(t, "BM Loja A", *verdict.BusinessName)
	assert.Equal(t, "0", verdict.AmountSpent)
}

func TestCheckAccountHealth_AplicaFallbacks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	mockClient.EXPECT().
		GetAdAccountFields("act_456").
		Return(&metadomain.AdAccountFields{
			ID:            "act_456",
			AccountStatus: 1,
		}, nil)

	verdict, err := service.CheckAccountHealth("act_456")
	assert.NoError(t, err)
	assert.Equal(t, "Unknown", verdict.Name)
	assert.Equal(t, "USD", verdict.Currency)
	assert.Equal(t, "Unknown", verdict.Timezone)
	assert.Equal(t, "0", verdict.AmountSpent)
	assert.Nil(t, verdict.BusinessName)
	assert.Nil(t, verdict.SpendCap)
}

func TestCheckAccountHealth_PropagaErroDoClient(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	mockClient.EXPECT().
		GetAdAccountFields("act_789").
		Return(nil, errors.New("Meta API: max retries exceeded"))

	verdict, err := service.CheckAccountHealth("789")
	assert.Error(t, err)
	assert.Nil(t, verdict)
}
