package handler

import (
	"net/http"

	"github.com/vfg2006/onboarding-api/infrastructure/repository"
	"github.com/vfg2006/onboarding-api/internal/api/handler/router"
	"github.com/vfg2006/onboarding-api/internal/scheduler"
	"github.com/vfg2006/onboarding-api/internal/usecases/authenticating"
	"github.com/vfg2006/onboarding-api/internal/usecases/discovering"
	"github.com/vfg2006/onboarding-api/internal/usecases/granting"
	"github.com/vfg2006/onboarding-api/internal/usecases/healthchecking"
	"github.com/vfg2006/onboarding-api/internal/usecases/provisioning"
	"github.com/vfg2006/onboarding-api/pkg/middleware"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

// OnboardingServices agrupa os serviços usados pelo fluxo de onboarding
type OnboardingServices struct {
	Discoverer    discovering.Discoverer
	Granter       granting.Granter
	HealthChecker healthchecking.HealthChecker
	Provisioner   provisioning.Provisioner
}

// Onboarding retorna as rotas do fluxo do cliente, autorizadas por segredo
// compartilhado
func Onboarding(services OnboardingServices, sharedSecret string) []router.Route {
	authorize := []func(http.Handler) http.Handler{middleware.SharedSecret(sharedSecret)}

	return []router.Route{
		{
			Path:        "/v1/onboarding/discover",
			Method:      http.MethodPost,
			Handler:     DiscoverAccounts(services.Discoverer),
			Middlewares: authorize,
		},
		{
			Path:        "/v1/onboarding/grant",
			Method:      http.MethodPost,
			Handler:     GrantAccess(services.Granter),
			Middlewares: authorize,
		},
		{
			Path:        "/v1/onboarding/health-check",
			Method:      http.MethodPost,
			Handler:     CheckAccountHealth(services.HealthChecker),
			Middlewares: authorize,
		},
		{
			Path:        "/v1/onboarding/provision",
			Method:      http.MethodPost,
			Handler:     ProvisionClient(services.Provisioner),
			Middlewares: authorize,
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/register",
			Method:  http.MethodPost,
			Handler: CreateUser(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

// Operations retorna as rotas de consulta do painel interno (JWT)
func Operations(clientRepo repository.ClientRepository, requestRepo repository.OnboardingRequestRepository) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clients",
			Method:  http.MethodGet,
			Handler: ListClients(clientRepo),
		},
		{
			Path:    "/v1/onboarding-requests",
			Method:  http.MethodGet,
			Handler: ListOnboardingRequests(requestRepo),
		},
	}
}

func CronJobs(sweepService *scheduler.BackfillReconcileService) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/backfill/run",
			Method:  http.MethodPost,
			Handler: RunBackfillSweep(sweepService),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(sweepService),
		},
	}
}
