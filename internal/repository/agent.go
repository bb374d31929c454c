package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/syemed/intake/internal/domain/auth"
	"github.com/syemed/intake/pkg/db/transactor"
)

type AgentRepository interface {
	Create(context.Context, *auth.Agent) error
	FindByEmail(context.Context, string) (*auth.Agent, error)
	FindByID(context.Context, string) (*auth.Agent, error)
}

type postgresAgentRepository struct {
	trx transactor.PgxTransactor
}

func NewPostgresAgentRepository(trx transactor.PgxTransactor) AgentRepository {
	return &postgresAgentRepository{trx: trx}
}

func (r *postgresAgentRepository) Create(ctx context.Context, a *auth.Agent) error {
	q := "INSERT INTO agentes(id, email, nombre, password_hash) VALUES($1, $2, $3, $4)"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, a.ID, a.Email, a.Name, a.PasswordHash); err != nil {
		return err
	}
	return nil
}

func (r *postgresAgentRepository) FindByEmail(ctx context.Context, email string) (*auth.Agent, error) {
	q := "SELECT id, email, nombre, password_hash FROM agentes WHERE email = $1"
	row := r.trx.Executor(ctx).QueryRow(ctx, q, email)
	return r.scanRow(row)
}

func (r *postgresAgentRepository) FindByID(ctx context.Context, id string) (*auth.Agent, error) {
	q := "SELECT id, email, nombre, password_hash FROM agentes WHERE id = $1"
	row := r.trx.Executor(ctx).QueryRow(ctx, q, id)
	return r.scanRow(row)
}

func (r *postgresAgentRepository) scanRow(row pgx.Row) (*auth.Agent, error) {
	var a auth.Agent
	if err := row.Scan(&a.ID, &a.Email, &a.Name, &a.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &a, nil
}
