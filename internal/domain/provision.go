package domain

// ProvisionRequest carrega os dados da etapa final do onboarding
type ProvisionRequest struct {
	BusinessName      string  `json:"businessName"`
	AdAccountID       string  `json:"adAccountId"`
	AdAccountName     string  `json:"adAccountName"`
	BusinessManagerID *string `json:"businessManagerId"`
	ContactName       *string `json:"contactName"`
	ContactEmail      *string `json:"contactEmail"`
}

// ProvisionResult é a resposta do orquestrador de provisionamento.
// AlreadyExists indica que um registro existente foi reaproveitado: o
// verdict de saúde é recalculado mesmo nesse caso.
type ProvisionResult struct {
	NotionPageID  string         `json:"notionPageId"`
	DashboardURL  string         `json:"dashboardUrl"`
	Health        *HealthVerdict `json:"health"`
	AlreadyExists bool           `json:"alreadyExists,omitempty"`
}

// GrantResult é o resultado da concessão de acesso de parceiro.
// Falhas não são retentadas: o cliente precisa corrigir e tentar de novo.
type GrantResult struct {
	Success bool   `json:"success"`
	Error   string `json:"error,omitempty"`
}

// DiscoverResult agrupa os business managers visíveis pela credencial do
// cliente, cada um com suas contas já deduplicadas.
type DiscoverResult struct {
	Businesses []*BusinessManager `json:"businesses"`
}
