package granting

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	metadomain "github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/mocks"
	"go.uber.org/mock/gomock"
)

func TestGrantPartnerAccess_Sucesso(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	// O ID é canonizado antes da chamada
	mockClient.EXPECT().
		AddClientAdAccount("client-token", "act_123").
		Return(nil)

	result := service.GrantPartnerAccess("client-token", "123")
	assert.True(t, result.Success)
	assert.Empty(t, result.Error)
}

func TestGrantPartnerAccess_MensagemDoEnvelope(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	mockClient.EXPECT().
		AddClientAdAccount("client-token", "act_123").
		Return(&metaclient.RequestError{
			StatusCode: 400,
			Message:    "(#200) The user must be an admin of the ad account",
			Envelope: &metadomain.ErrorResponse{
				Error: metadomain.ErrorDetails{
					Message: "(#200) The user must be an admin of the ad account",
					Type:    "OAuthException",
					Code:    200,
				},
			},
		})

	result := service.GrantPartnerAccess("client-token", "act_123")
	assert.False(t, result.Success)
	assert.Equal(t, "(#200) The user must be an admin of the ad account", result.Error)
}

func TestGrantPartnerAccess_ErroDeTransporte(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := mocks.NewMockClient(ctrl)
	service := NewService(mockClient)

	mockClient.EXPECT().
		AddClientAdAccount("client-token", "act_123").
		Return(errors.New("connection refused"))

	result := service.GrantPartnerAccess("client-token", "123")
	assert.False(t, result.Success)
	assert.Equal(t, "connection refused", result.Error)
}
