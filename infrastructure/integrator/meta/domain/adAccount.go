package metadomain

// Business representa um Business Manager retornado por /me/businesses
type Business struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdAccount é o resumo de conta retornado pelas listagens de
// owned_ad_accounts e client_ad_accounts
type AdAccount struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	AccountStatus int    `json:"account_status"`
}

// BusinessRef é a referência de business embutida no payload de campos da conta
type BusinessRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AdAccountFields é o payload tipado de GET /{act_id}?fields=...
// Campos opcionais são ponteiros; os fallbacks documentados são aplicados
// na camada de health check, num único lugar.
type AdAccountFields struct {
	ID            string       `json:"id"`
	Name          string       `json:"name"`
	AccountStatus int          `json:"account_status"`
	DisableReason int          `json:"disable_reason"`
	Currency      string       `json:"currency"`
	SpendCap      *string      `json:"spend_cap"`
	AmountSpent   string       `json:"amount_spent"`
	Business      *BusinessRef `json:"business"`
	TimezoneName  string       `json:"timezone_name"`
	CreatedTime   string       `json:"created_time"`
}
