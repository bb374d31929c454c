package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"

	"github.com/syemed/intake/internal/domain/auth"
	"github.com/syemed/intake/pkg/db/transactor"
)

type RefreshTokenRepository interface {
	Create(context.Context, *auth.RefreshToken) error
	FindTokensByAgentID(context.Context, string) ([]*auth.RefreshToken, error)
	DeleteByAgentID(context.Context, string) error
	DeleteByID(context.Context, string) error
	FindByID(context.Context, string) (*auth.RefreshToken, error)
}

type postgresRefreshTokenRepository struct {
	trx transactor.PgxTransactor
}

func NewPostgresRefreshTokenRepository(trx transactor.PgxTransactor) RefreshTokenRepository {
	return &postgresRefreshTokenRepository{trx: trx}
}

func (r *postgresRefreshTokenRepository) Create(ctx context.Context, t *auth.RefreshToken) error {
	q := "INSERT INTO refresh_tokens(id, agente_id, fingerprint, expires_in, created_at) VALUES($1, $2, $3, $4, $5)"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, t.ID, t.AgentID, t.Fingerprint, t.ExpiresIn, t.CreatedAt); err != nil {
		return err
	}
	return nil
}

func (r *postgresRefreshTokenRepository) FindTokensByAgentID(ctx context.Context, agentID string) ([]*auth.RefreshToken, error) {
	q := "SELECT id, agente_id, fingerprint, expires_in, created_at FROM refresh_tokens WHERE agente_id = $1"

	rows, err := r.trx.Executor(ctx).Query(ctx, q, agentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tokens := make([]*auth.RefreshToken, 0)
	for rows.Next() {
		var tkn auth.RefreshToken
		if err := rows.Scan(&tkn.ID, &tkn.AgentID, &tkn.Fingerprint, &tkn.ExpiresIn, &tkn.CreatedAt); err != nil {
			return nil, err
		}
		tokens = append(tokens, &tkn)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tokens, nil
}

func (r *postgresRefreshTokenRepository) DeleteByAgentID(ctx context.Context, agentID string) error {
	q := "DELETE FROM refresh_tokens WHERE agente_id = $1"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, agentID); err != nil {
		return err
	}
	return nil
}

func (r *postgresRefreshTokenRepository) DeleteByID(ctx context.Context, id string) error {
	q := "DELETE FROM refresh_tokens WHERE id = $1"
	if _, err := r.trx.Executor(ctx).Exec(ctx, q, id); err != nil {
		return err
	}
	return nil
}

func (r *postgresRefreshTokenRepository) FindByID(ctx context.Context, id string) (*auth.RefreshToken, error) {
	q := "SELECT id, agente_id, fingerprint, expires_in, created_at FROM refresh_tokens WHERE id = $1"

	var tkn auth.RefreshToken
	err := r.trx.Executor(ctx).QueryRow(ctx, q, id).Scan(&tkn.ID, &tkn.AgentID, &tkn.Fingerprint, &tkn.ExpiresIn, &tkn.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return &tkn, nil
}
