package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/onboarding-api/infrastructure/database/postgres"
	"github.com/vfg2006/onboarding-api/internal/domain"
)

const clientsTable = "clients"

type ClientRepository interface {
	GetByAdAccountID(adAccountID string) (*domain.Client, error)
	// Create insere o registro do cliente. Se já existe registro para o
	// mesmo ID canônico de conta, devolve o ID existente com created=false -
	// a unicidade é decidida pela restrição do banco, não por leitura prévia.
	Create(client *domain.Client) (id string, created bool, err error)
	ListClients() ([]*domain.Client, error)
}

type clientRepository struct {
	conn *postgres.Connection
}

func NewClientRepository(conn *postgres.Connection) ClientRepository {
	return &clientRepository{
		conn: conn,
	}
}

func (r *clientRepository) GetByAdAccountID(adAccountID string) (*domain.Client, error) {
	clientSQL, clientArgs, err := squirrel.
		Select("id, name, meta_ad_account_id, currency, is_active, client_since").
		From(clientsTable).
		Where(squirrel.Eq{"meta_ad_account_id": adAccountID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	row := r.conn.QueryRow(clientSQL, clientArgs...)

	client, err := deserializeClient(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}

	return client, nil
}

func (r *clientRepository) Create(client *domain.Client) (string, bool, error) {
	insertSQL, insertArgs, err := squirrel.
		Insert(clientsTable).
		Columns("id", "name", "meta_ad_account_id", "currency", "is_active", "client_since").
		Values(client.ID, client.Name, client.MetaAdAccountID, client.Currency, client.IsActive, client.ClientSince).
		Suffix("ON CONFLICT (meta_ad_account_id) DO NOTHING RETURNING id").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return "", false, fmt.Errorf("failed to build query: %w", err)
	}

	var id string
	err = r.conn.QueryRow(insertSQL, insertArgs...).Scan(&id)
	if err == nil {
		return id, true, nil
	}

	if err != sql.ErrNoRows {
		if pqErr, ok := err.(*pq.Error); ok {
			return "", false, fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return "", false, fmt.Errorf("failed to execute query: %w", err)
	}

	// Conflito: uma requisição concorrente chegou primeiro. Resolve para o
	// registro existente em vez de duplicar.
	existing, err := r.GetByAdAccountID(client.MetaAdAccountID)
	if err != nil {
		return "", false, err
	}
	if existing == nil {
		return "", false, fmt.Errorf("conflito sem registro existente para a conta %s", client.MetaAdAccountID)
	}

	logrus.WithFields(logrus.Fields{
		"ad_account_id": client.MetaAdAccountID,
		"existing_id":   existing.ID,
	}).Warn("Insert de cliente caiu em conflito, reaproveitando registro existente")

	return existing.ID, false, nil
}

func (r *clientRepository) ListClients() ([]*domain.Client, error) {
	clientsSQL, clientsArgs, err := squirrel.
		Select("id, name, meta_ad_account_id, currency, is_active, client_since").
		From(clientsTable).
		OrderBy("client_since DESC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.conn.Query(clientsSQL, clientsArgs...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	defer rows.Close()

	clients := make([]*domain.Client, 0)

	for rows.Next() {
		client := &domain.Client{}
		if err := rows.Scan(
			&client.ID,
			&client.Name,
			&client.MetaAdAccountID,
			&client.Currency,
			&client.IsActive,
			&client.ClientSince,
		); err != nil {
			return nil, err
		}

		clients = append(clients, client)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return clients, nil
}

func deserializeClient(row *sql.Row) (*domain.Client, error) {
	client := &domain.Client{}

	if err := row.Scan(
		&client.ID,
		&client.Name,
		&client.MetaAdAccountID,
		&client.Currency,
		&client.IsActive,
		&client.ClientSince,
	); err != nil {
		return nil, err
	}

	return client, nil
}
