package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/onboarding-api/infrastructure/database/postgres"
	"github.com/vfg2006/onboarding-api/internal/domain"
)

const onboardingRequestsTable = "onboarding_requests"

var onboardingRequestColumns = "id, business_name, contact_name, contact_email, ad_account_id, " +
	"ad_account_name, business_manager_id, account_status, disable_reason, health_check_result, " +
	"status, notion_page_id, backfill_notified_at, created_at"

// OnboardingRequestRepository persiste a trilha de auditoria append-only do
// onboarding. Linhas nunca são atualizadas, exceto pelo carimbo de
// confirmação de backfill.
type OnboardingRequestRepository interface {
	Insert(request *domain.OnboardingRequest) error
	ListPendingBackfill(limit uint64) ([]*domain.OnboardingRequest, error)
	MarkBackfillNotified(requestID string, notifiedAt time.Time) error
	ListRequests(limit uint64) ([]*domain.OnboardingRequest, error)
}

type onboardingRequestRepository struct {
	conn *postgres.Connection
}

func NewOnboardingRequestRepository(conn *postgres.Connection) OnboardingRequestRepository {
	return &onboardingRequestRepository{
		conn: conn,
	}
}

func (r *onboardingRequestRepository) Insert(request *domain.OnboardingRequest) error {
	insertSQL, insertArgs, err := squirrel.
		Insert(onboardingRequestsTable).
		Columns(
			"id", "business_name", "contact_name", "contact_email", "ad_account_id",
			"ad_account_name", "business_manager_id", "account_status", "disable_reason",
			"health_check_result", "status", "notion_page_id",
		).
		Values(
			request.ID,
			request.BusinessName,
			request.ContactName,
			request.ContactEmail,
			request.AdAccountID,
			request.AdAccountName,
			request.BusinessManagerID,
			request.AccountStatus,
			request.DisableReason,
			request.HealthCheckResult,
			request.Status,
			request.NotionPageID,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	if _, err := r.conn.Exec(insertSQL, insertArgs...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to execute query: %w", err)
	}

	return nil
}

// ListPendingBackfill busca as tentativas provisionadas cuja notificação de
// backfill ainda não foi confirmada. Usado pela varredura de reconciliação.
func (r *onboardingRequestRepository) ListPendingBackfill(limit uint64) ([]*domain.OnboardingRequest, error) {
	pendingSQL, pendingArgs, err := squirrel.
		Select(onboardingRequestColumns).
		From(onboardingRequestsTable).
		Where(squirrel.Eq{"status": domain.OnboardingStatusProvisioned}).
		Where("backfill_notified_at IS NULL").
		OrderBy("created_at ASC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryRequests(pendingSQL, pendingArgs...)
}

func (r *onboardingRequestRepository) MarkBackfillNotified(requestID string, notifiedAt time.Time) error {
	updateSQL, updateArgs, err := squirrel.
		Update(onboardingRequestsTable).
		Set("backfill_notified_at", notifiedAt).
		Where(squirrel.Eq{"id": requestID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(updateSQL, updateArgs...)
	if err != nil {
		return fmt.Errorf("failed to execute query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.New("onboarding request not found")
	}

	return nil
}

func (r *onboardingRequestRepository) ListRequests(limit uint64) ([]*domain.OnboardingRequest, error) {
	listSQL, listArgs, err := squirrel.
		Select(onboardingRequestColumns).
		From(onboardingRequestsTable).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	return r.queryRequests(listSQL, listArgs...)
}

func (r *onboardingRequestRepository) queryRequests(query string, args ...interface{}) ([]*domain.OnboardingRequest, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	requests := make([]*domain.OnboardingRequest, 0)

	for rows.Next() {
		request := &domain.OnboardingRequest{}
		if err := rows.Scan(
			&request.ID,
			&request.BusinessName,
			&request.ContactName,
			&request.ContactEmail,
			&request.AdAccountID,
			&request.AdAccountName,
			&request.BusinessManagerID,
			&request.AccountStatus,
			&request.DisableReason,
			&request.HealthCheckResult,
			&request.Status,
			&request.NotionPageID,
			&request.BackfillNotifiedAt,
			&request.CreatedAt,
		); err != nil {
			return nil, err
		}

		requests = append(requests, request)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}
