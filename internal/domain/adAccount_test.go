package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalAdAccountID(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "ID sem prefixo recebe o prefixo canônico",
			input:    "123456789",
			expected: "act_123456789",
		},
		{
			name:     "ID já canônico permanece inalterado",
			input:    "act_123456789",
			expected: "act_123456789",
		},
		{
			name:     "ID vazio recebe apenas o prefixo",
			input:    "",
			expected: "act_",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CanonicalAdAccountID(tt.input))
		})
	}
}

func TestCanonicalAdAccountID_Idempotente(t *testing.T) {
	ids := []string{"123", "act_123", "9988776655", "act_"}

	for _, id := range ids {
		once := CanonicalAdAccountID(id)
		twice := CanonicalAdAccountID(once)
		assert.Equal(t, once, twice)
	}
}

func TestAccountStatusLabel_TotalSobreInteiros(t *testing.T) {
	// Códigos conhecidos
	assert.Equal(t, "Active", AccountStatusLabel(1))
	assert.Equal(t, "Disabled", AccountStatusLabel(2))
	assert.Equal(t, "Closed", AccountStatusLabel(101))

	// Códigos desconhecidos nunca quebram
	assert.Equal(t, "Unknown (42)", AccountStatusLabel(42))
	assert.Equal(t, "Unknown (-1)", AccountStatusLabel(-1))
	assert.Equal(t, "Unknown (0)", AccountStatusLabel(0))
}

func TestDisableReasonLabel(t *testing.T) {
	assert.Equal(t, "None", DisableReasonLabel(0))
	assert.Equal(t, "Risk Payment", DisableReasonLabel(3))
	assert.Equal(t, "Unknown (99)", DisableReasonLabel(99))
}
