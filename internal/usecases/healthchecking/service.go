package healthchecking

import (
	"fmt"

	"github.com/sirupsen/logrus"
	metadomain "github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/onboarding-api/internal/domain"
)

// Fallbacks documentados para campos opcionais ausentes no payload do Meta.
// Aplicados aqui, num único lugar, e em nenhum outro call site.
const (
	defaultCurrency    = "USD"
	defaultTimezone    = "Unknown"
	defaultName        = "Unknown"
	defaultAmountSpent = "0"
)

// HealthChecker avalia a saúde atual de uma conta de anúncio. O verdict é
// sempre calculado na hora: nunca servido de cache, nem no curto-circuito
// de duplicata do provisionamento.
type HealthChecker interface {
	CheckAccountHealth(adAccountID string) (*domain.HealthVerdict, error)
}

type Service struct {
	client metaclient.Client
}

func NewService(client metaclient.Client) HealthChecker {
	return &Service{
		client: client,
	}
}

func (s *Service) CheckAccountHealth(adAccountID string) (*domain.HealthVerdict, error) {
	id := domain.CanonicalAdAccountID(adAccountID)

	fields, err := s.client.GetAdAccountFields(id)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"account_id": id,
			"error":      err.Error(),
		}).Error("healthcheck: falha ao consultar campos da conta")
		return nil, err
	}

	return buildVerdict(fields), nil
}

func buildVerdict(fields *metadomain.AdAccountFields) *domain.HealthVerdict {
	overall, issues := classify(fields.AccountStatus, fields.DisableReason)

	verdict := &domain.HealthVerdict{
		ID:                 fields.ID,
		Name:               fields.Name,
		AccountStatus:      fields.AccountStatus,
		AccountStatusLabel: domain.AccountStatusLabel(fields.AccountStatus),
		DisableReason:      fields.DisableReason,
		DisableReasonLabel: domain.DisableReasonLabel(fields.DisableReason),
		Currency:           fields.Currency,
		Timezone:           fields.TimezoneName,
		SpendCap:           fields.SpendCap,
		AmountSpent:        fields.AmountSpent,
		CreatedTime:        fields.CreatedTime,
		OverallStatus:      overall,
		Issues:             issues,
	}

	if verdict.Name == "" {
		verdict.Name = defaultName
	}
	if verdict.Currency == "" {
		verdict.Currency = defaultCurrency
	}
	if verdict.Timezone == "" {
		verdict.Timezone = defaultTimezone
	}
	if verdict.AmountSpent == "" {
		verdict.AmountSpent = defaultAmountSpent
	}

	if fields.Business != nil {
		verdict.BusinessID = &fields.Business.ID
		verdict.BusinessName = &fields.Business.Name
	}

	return verdict
}

// classify aplica a regra determinística de classificação, na ordem
// especificada. Total sobre todos os pares de inteiros: códigos
// desconhecidos viram rótulos "Unknown (<n>)", nunca erro.
func classify(accountStatus, disableReason int) (domain.OverallStatus, []string) {
	issues := make([]string, 0)

	if accountStatus == domain.AccountStatusDisabled || disableReason != 0 {
		if accountStatus == domain.AccountStatusDisabled {
			issues = append(issues, "Account is disabled")
		}
		if disableReason != 0 {
			issues = append(issues, fmt.Sprintf("Disable reason: %s", domain.DisableReasonLabel(disableReason)))
		}
		return domain.OverallStatusRed, issues
	}

	if accountStatus == domain.AccountStatusPendingRiskReview || accountStatus == domain.AccountStatusInGracePeriod {
		if accountStatus == domain.AccountStatusPendingRiskReview {
			issues = append(issues, "Account is pending risk review")
		}
		if accountStatus == domain.AccountStatusInGracePeriod {
			issues = append(issues, "Account is in grace period")
		}
		return domain.OverallStatusYellow, issues
	}

	if accountStatus != domain.AccountStatusActive {
		issues = append(issues, fmt.Sprintf("Account status: %s", domain.AccountStatusLabel(accountStatus)))
		return domain.OverallStatusYellow, issues
	}

	return domain.OverallStatusGreen, issues
}
