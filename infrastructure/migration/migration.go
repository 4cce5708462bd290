package migration

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/onboarding-api/infrastructure/database/postgres"
)

// DDL idempotente das tabelas do onboarding. Executado uma única vez na
// subida do processo, antes do servidor aceitar requisições: nada de flag
// preguiçosa compartilhada entre requisições.
//
// A restrição UNIQUE em meta_ad_account_id é o que garante no máximo um
// cliente por conta de anúncio, inclusive sob requisições concorrentes: o
// insert perdedor cai no conflito e é tratado como "já existe".
var statements = []string{
	`CREATE TABLE IF NOT EXISTS clients (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		meta_ad_account_id TEXT NOT NULL UNIQUE,
		currency TEXT NOT NULL DEFAULT 'USD',
		is_active BOOLEAN NOT NULL DEFAULT TRUE,
		client_since DATE NOT NULL DEFAULT CURRENT_DATE
	)`,
	`CREATE TABLE IF NOT EXISTS onboarding_requests (
		id TEXT PRIMARY KEY,
		business_name TEXT NOT NULL,
		contact_name TEXT,
		contact_email TEXT,
		ad_account_id TEXT NOT NULL,
		ad_account_name TEXT,
		business_manager_id TEXT,
		account_status INTEGER,
		disable_reason INTEGER,
		health_check_result TEXT,
		status TEXT DEFAULT 'connected',
		notion_page_id TEXT,
		backfill_notified_at TIMESTAMPTZ,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
	`CREATE TABLE IF NOT EXISTS users (
		id SERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		active BOOLEAN NOT NULL DEFAULT TRUE,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	)`,
}

// Run aplica o schema na subida do processo
func Run(ctx context.Context, conn *postgres.Connection) error {
	start := time.Now()

	for _, stmt := range statements {
		if _, err := conn.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}

	logrus.Infof("Schema aplicado em %v", time.Since(start))
	return nil
}
