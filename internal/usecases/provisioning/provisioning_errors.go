package provisioning

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de provisionamento
var (
	// Erros de validação
	ErrBusinessNameRequired = errors.New("business name is required")
	ErrAdAccountIDRequired  = errors.New("ad account ID is required")

	// Erros de serviços externos
	ErrHealthCheckFailed = errors.New("error checking ad account health")
	ErrNotionCreation    = errors.New("error creating client page in Notion")

	// Erros de banco de dados
	ErrDatabaseOperation = errors.New("database operation error")
)

// ProvisionError é um erro com contexto adicional para o provisionamento
type ProvisionError struct {
	Err         error  // Erro base
	Code        string // Código de erro para API
	AdAccountID string // ID canônico da conta envolvida
	Details     string // Detalhes adicionais
}

// Error implementa a interface error
func (e *ProvisionError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s", e.Err.Error(), e.Details)
	}
	return e.Err.Error()
}

// Unwrap retorna o erro subjacente
func (e *ProvisionError) Unwrap() error {
	return e.Err
}

// NewProvisionError cria um novo ProvisionError
func NewProvisionError(err error, code, adAccountID, details string) *ProvisionError {
	return &ProvisionError{
		Err:         err,
		Code:        code,
		AdAccountID: adAccountID,
		Details:     details,
	}
}
