package main

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/onboarding-api/infrastructure/database/postgres"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/dashboards"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/meta/metaclient"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/notion"
	"github.com/vfg2006/onboarding-api/infrastructure/integrator/notion/notionclient"
	"github.com/vfg2006/onboarding-api/infrastructure/migration"
	"github.com/vfg2006/onboarding-api/infrastructure/repository"
	"github.com/vfg2006/onboarding-api/internal/api"
	"github.com/vfg2006/onboarding-api/internal/api/handler"
	"github.com/vfg2006/onboarding-api/internal/config"
	"github.com/vfg2006/onboarding-api/internal/scheduler"
	"github.com/vfg2006/onboarding-api/internal/usecases/authenticating"
	"github.com/vfg2006/onboarding-api/internal/usecases/discovering"
	"github.com/vfg2006/onboarding-api/internal/usecases/granting"
	"github.com/vfg2006/onboarding-api/internal/usecases/healthchecking"
	"github.com/vfg2006/onboarding-api/internal/usecases/provisioning"
	"github.com/vfg2006/onboarding-api/pkg/log"
)

func main() {
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	// O schema roda inteiro na subida, antes do servidor aceitar tráfego
	if err := migration.Run(ctx, pgConn); err != nil {
		logrus.WithError(err).Fatal("Erro ao aplicar o schema do banco de dados")
	}
	logrus.Info("Schema do banco de dados aplicado com sucesso")

	clientRepo := repository.NewClientRepository(pgConn)
	requestRepo := repository.NewOnboardingRequestRepository(pgConn)
	userRepo := repository.NewUserRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, cfg)

	metaClient := metaclient.NewClient(cfg)
	notionService := notion.New(cfg, notionclient.NewClient(cfg))
	notifier := dashboards.NewNotifier(cfg)

	discoverer := discovering.NewService(metaClient)
	granter := granting.NewService(metaClient)
	healthChecker := healthchecking.NewService(metaClient)
	provisioner := provisioning.NewService(
		clientRepo,
		requestRepo,
		healthChecker,
		notionService,
		notifier,
		cfg,
	)

	sweepService := scheduler.NewBackfillReconcileService(requestRepo, notifier, cfg)
	if err := sweepService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador da varredura de backfill")
	} else {
		logrus.Info("Agendador da varredura de backfill iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		handler.OnboardingServices{
			Discoverer:    discoverer,
			Granter:       granter,
			HealthChecker: healthChecker,
			Provisioner:   provisioner,
		},
		authenticator,
		clientRepo,
		requestRepo,
		sweepService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	log.Setup()
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
