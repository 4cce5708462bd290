package domain

import "strings"

// Prefixo canônico dos IDs de conta de anúncio na API do Meta.
// Os IDs são globalmente únicos na plataforma, então o ID canônico
// serve como chave de unicidade na persistência sem compor com o business.
const AdAccountIDPrefix = "act_"

// CanonicalAdAccountID normaliza o ID da conta para a forma canônica (act_<n>).
// É idempotente: aplicar sobre um ID já prefixado não altera nada.
func CanonicalAdAccountID(id string) string {
	if strings.HasPrefix(id, AdAccountIDPrefix) {
		return id
	}
	return AdAccountIDPrefix + id
}

// AdAccount representa uma conta de anúncio do cliente, somente leitura a
// partir da API do Meta. Nunca é alterada por este sistema.
type AdAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
}

// BusinessManager agrupa as contas de anúncio visíveis pela credencial do
// cliente. Estrutura transiente, reconstruída a cada descoberta.
type BusinessManager struct {
	ID         string      `json:"id"`
	Name       string      `json:"name"`
	AdAccounts []AdAccount `json:"adAccounts"`
}
