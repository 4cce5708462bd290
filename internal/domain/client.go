package domain

import "time"

// Client é o registro durável de um cliente provisionado. A chave primária é
// o ID da página criada no workspace (Notion); o ID canônico da conta de
// anúncio carrega a restrição de unicidade: no máximo um registro por conta.
// Registros nunca são removidos por este sistema.
type Client struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	MetaAdAccountID string    `json:"metaAdAccountId"`
	Currency        string    `json:"currency"`
	IsActive        bool      `json:"isActive"`
	ClientSince     time.Time `json:"clientSince"`
}

// Status de uma tentativa de onboarding registrada na auditoria
type OnboardingStatus string

const (
	OnboardingStatusConnected   OnboardingStatus = "connected"
	OnboardingStatusProvisioned OnboardingStatus = "provisioned"
)

// OnboardingRequest é a trilha de auditoria append-only: uma linha por
// tentativa de provisionamento que chega ao health check (o curto-circuito de
// duplicata não gera linha). BackfillNotifiedAt fica nulo até a notificação
// de backfill ser confirmada; a varredura periódica reprocessa as pendentes.
type OnboardingRequest struct {
	ID                string           `json:"id"`
	BusinessName      string           `json:"businessName"`
	ContactName       *string          `json:"contactName"`
	ContactEmail      *string          `json:"contactEmail"`
	AdAccountID       string           `json:"adAccountId"`
	AdAccountName     string           `json:"adAccountName"`
	BusinessManagerID *string          `json:"businessManagerId"`
	AccountStatus     int              `json:"accountStatus"`
	DisableReason     int              `json:"disableReason"`
	HealthCheckResult string           `json:"healthCheckResult"`
	Status            OnboardingStatus `json:"status"`
	NotionPageID      string           `json:"notionPageId"`
	BackfillNotifiedAt *time.Time      `json:"backfillNotifiedAt"`
	CreatedAt         time.Time        `json:"createdAt"`
}
