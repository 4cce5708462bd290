package domain

import "fmt"

// Status geral derivado da classificação de saúde da conta
type OverallStatus string

const (
	OverallStatusGreen  OverallStatus = "green"
	OverallStatusYellow OverallStatus = "yellow"
	OverallStatusRed    OverallStatus = "red"
)

// Códigos de account_status da API do Meta
const (
	AccountStatusActive            = 1
	AccountStatusDisabled          = 2
	AccountStatusPendingRiskReview = 7
	AccountStatusInGracePeriod     = 9
)

var accountStatusLabels = map[int]string{
	1:   "Active",
	2:   "Disabled",
	3:   "Unsettled",
	7:   "Pending Risk Review",
	8:   "Pending Settlement",
	9:   "In Grace Period",
	100: "Pending Closure",
	101: "Closed",
	201: "Any Active",
	202: "Any Closed",
}

var disableReasonLabels = map[int]string{
	0: "None",
	1: "Ads Integrity Policy",
	2: "Ads IP Review",
	3: "Risk Payment",
	4: "Gray Account Shut Down",
	5: "Ads AFC Review",
	6: "Business Integrity RAR",
	7: "Permanent Close",
	8: "Unused Reseller Account",
	9: "Unused Account",
}

// AccountStatusLabel retorna o rótulo do status. Total sobre todos os
// inteiros: códigos desconhecidos viram "Unknown (<n>)".
func AccountStatusLabel(status int) string {
	if label, ok := accountStatusLabels[status]; ok {
		return label
	}
	return fmt.Sprintf("Unknown (%d)", status)
}

// DisableReasonLabel retorna o rótulo do motivo de desativação.
func DisableReasonLabel(reason int) string {
	if label, ok := disableReasonLabels[reason]; ok {
		return label
	}
	return fmt.Sprintf("Unknown (%d)", reason)
}

// HealthVerdict é o resultado derivado do health check de uma conta.
// Calculado sempre a partir do estado atual da API, nunca servido de cache.
// O snapshot serializado é gravado no registro de auditoria do onboarding.
type HealthVerdict struct {
	ID                 string        `json:"id"`
	Name               string        `json:"name"`
	AccountStatus      int           `json:"accountStatus"`
	AccountStatusLabel string        `json:"accountStatusLabel"`
	DisableReason      int           `json:"disableReason"`
	DisableReasonLabel string        `json:"disableReasonLabel"`
	Currency           string        `json:"currency"`
	Timezone           string        `json:"timezone"`
	SpendCap           *string       `json:"spendCap"`
	AmountSpent        string        `json:"amountSpent"`
	BusinessName       *string       `json:"businessName"`
	BusinessID         *string       `json:"businessId"`
	CreatedTime        string        `json:"createdTime"`
	OverallStatus      OverallStatus `json:"overallStatus"`
	Issues             []string      `json:"issues"`
}
