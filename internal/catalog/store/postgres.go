package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"

	"fishbill/internal/catalog/models"
	"fishbill/internal/platform/postgres"
	"fishbill/pkg/platform/sentinel"
)

// Postgres persists the party catalog. Balances travel as text to keep
// numeric precision independent of driver float handling.
type Postgres struct {
	pool *postgres.Pool
}

func NewPostgres(pool *postgres.Pool) *Postgres {
	return &Postgres{pool: pool}
}

// Schema is applied by deployments that opt into the postgres catalog.
const Schema = `
CREATE TABLE IF NOT EXISTS parties (
    id         UUID PRIMARY KEY,
    name       TEXT NOT NULL,
    balance    NUMERIC(12,2) NOT NULL DEFAULT 0,
    contact    TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL,
    UNIQUE (lower(name))
);`

func (s *Postgres) Create(ctx context.Context, party *models.Party) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO parties (id, name, balance, contact, created_at)
		 VALUES ($1, $2, $3, $4, $5)`,
		party.ID, party.Name, party.Balance.String(), party.Contact, party.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return sentinel.ErrConflict
		}
		return fmt.Errorf("insert party: %w", err)
	}
	return nil
}

func (s *Postgres) List(ctx context.Context) ([]*models.Party, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, name, balance::text, contact, created_at
		 FROM parties ORDER BY created_at, name`)
	if err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	defer rows.Close()

	var parties []*models.Party
	for rows.Next() {
		party, err := scanParty(rows)
		if err != nil {
			return nil, err
		}
		parties = append(parties, party)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list parties: %w", err)
	}
	return parties, nil
}

func (s *Postgres) FindByName(ctx context.Context, name string) (*models.Party, error) {
	row := s.pool.QueryRow(ctx,
		`SELECT id, name, balance::text, contact, created_at
		 FROM parties WHERE lower(name) = lower($1)`, name)

	party, err := scanParty(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sentinel.ErrNotFound
		}
		return nil, err
	}
	return party, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanParty(row rowScanner) (*models.Party, error) {
	var (
		party   models.Party
		balance string
	)
	if err := row.Scan(&party.ID, &party.Name, &balance, &party.Contact, &party.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan party: %w", err)
	}
	bal, err := decimal.NewFromString(balance)
	if err != nil {
		return nil, fmt.Errorf("parse party balance %q: %w", balance, err)
	}
	party.Balance = bal
	return &party, nil
}
