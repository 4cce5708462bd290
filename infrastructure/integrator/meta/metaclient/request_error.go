package metaclient

import (
	"encoding/json"
	"fmt"

	metadomain "github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/domain"
)

// RequestError carrega o status HTTP e a mensagem extraída do envelope de
// erro da API do Meta, quando presente. Se o corpo não for um envelope
// válido, a mensagem cai para uma derivada do status.
type RequestError struct {
	StatusCode int
	Message    string
	Envelope   *metadomain.ErrorResponse
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("Meta API error %d: %s", e.StatusCode, e.Message)
}

// IsTokenExpired indica a assinatura de credencial expirada/inválida
func (e *RequestError) IsTokenExpired() bool {
	return e.Envelope != nil && e.Envelope.IsTokenExpired()
}

// newRequestError monta um RequestError a partir do corpo da resposta
func newRequestError(statusCode int, body []byte) *RequestError {
	reqErr := &RequestError{
		StatusCode: statusCode,
		Message:    fmt.Sprintf("Failed with status %d", statusCode),
	}

	var envelope metadomain.ErrorResponse
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Error.Message != "" {
		reqErr.Envelope = &envelope
		reqErr.Message = envelope.Error.Message
	}

	return reqErr
}
