package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

// GenerateRequestID gera o identificador único de uma tentativa de
// onboarding (chave primária da trilha de auditoria)
func GenerateRequestID() (string, error) {
	return gonanoid.New()
}
