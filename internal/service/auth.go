package service

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/syemed/intake/internal/config"
	"github.com/syemed/intake/internal/domain/auth"
	"github.com/syemed/intake/internal/repository"
	"github.com/syemed/intake/pkg/db/transactor"
)

type AuthService interface {
	Signup(ctx context.Context, email string, name string, password string) (*auth.Agent, error)
	Login(ctx context.Context, email string, password string, fingerprint string, at time.Time) (auth.Jwt, auth.RefreshToken, error)
	Logout(ctx context.Context, tokenID string) error
	Refresh(ctx context.Context, tokenID string, fingerprint string, at time.Time) (auth.Jwt, auth.RefreshToken, error)
}

type authService struct {
	jwtIssuer      *auth.JwtIssuer
	rfrTokenIssuer *auth.RefreshTokenIssuer
	transactor     transactor.Transactor
	agentRepo      repository.AgentRepository
	rfrTokenRepo   repository.RefreshTokenRepository
}

func NewAuthService(
	jwtIssuer *auth.JwtIssuer,
	rfrTokenCfg *config.RefreshTokenCfg,
	transactor transactor.Transactor,
	agentRepo repository.AgentRepository,
	rfrTokenRepo repository.RefreshTokenRepository,
) AuthService {
	return &authService{
		jwtIssuer:      jwtIssuer,
		rfrTokenIssuer: auth.NewRefreshTokenIssuer(rfrTokenCfg.MaxCount, rfrTokenCfg.TimeToLive),
		transactor:     transactor,
		agentRepo:      agentRepo,
		rfrTokenRepo:   rfrTokenRepo,
	}
}

func (s *authService) Signup(ctx context.Context, email string, name string, password string) (*auth.Agent, error) {
	existing, err := s.agentRepo.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("agent with email %s already exists", email))
	}

	hash, err := auth.GeneratePasswordHash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to generate password hash - %w", err)
	}

	agent := &auth.Agent{
		ID:           uuid.NewString(),
		Email:        email,
		Name:         name,
		PasswordHash: hash,
	}

	if err := s.agentRepo.Create(ctx, agent); err != nil {
		return nil, err
	}
	return agent, nil
}

func (s *authService) Login(ctx context.Context, email string, password string, fingerprint string, at time.Time) (auth.Jwt, auth.RefreshToken, error) {
	agent, err := s.agentRepo.FindByEmail(ctx, email)
	if err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, err
	}

	if agent == nil {
		return auth.Jwt{}, auth.RefreshToken{}, echo.ErrUnauthorized
	}

	if err := agent.VerifyPassword(password); err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, echo.ErrUnauthorized
	}

	jwtToken, err := s.jwtIssuer.Sign(agent.Email, agent.Name, at)
	if err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, fmt.Errorf("failed to sign jwt - %w", err)
	}

	rfrToken := s.rfrTokenIssuer.Sign(agent.ID, fingerprint, at)

	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		tokens, err := s.rfrTokenRepo.FindTokensByAgentID(ctx, agent.ID)
		if err != nil {
			return err
		}

		// reached sessions limit, all issued tokens are dropped
		if len(tokens) >= s.rfrTokenIssuer.TokensMaxCount() {
			if err := s.rfrTokenRepo.DeleteByAgentID(ctx, agent.ID); err != nil {
				return err
			}
		}

		return s.rfrTokenRepo.Create(ctx, &rfrToken)
	})
	if err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, err
	}

	return jwtToken, rfrToken, nil
}

func (s *authService) Refresh(ctx context.Context, tokenID string, fingerprint string, at time.Time) (auth.Jwt, auth.RefreshToken, error) {
	rfrToken, err := s.rfrTokenRepo.FindByID(ctx, tokenID)
	if err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, err
	}

	if rfrToken == nil {
		return auth.Jwt{}, auth.RefreshToken{}, echo.NewHTTPError(http.StatusBadRequest, "non-existent refresh token provided")
	}

	// refresh token is one-time use, so it is dropped even if verification fails
	if err := s.rfrTokenRepo.DeleteByID(ctx, rfrToken.ID); err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, err
	}

	if err := rfrToken.Verify(fingerprint, at); err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	agent, err := s.agentRepo.FindByID(ctx, rfrToken.AgentID)
	if err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, err
	}

	if agent == nil {
		return auth.Jwt{}, auth.RefreshToken{}, echo.NewHTTPError(http.StatusBadRequest, "agent for provided refresh token doesn't exist")
	}

	jwtToken, err := s.jwtIssuer.Sign(agent.Email, agent.Name, at)
	if err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, fmt.Errorf("failed to sign jwt - %w", err)
	}

	newRfrToken := s.rfrTokenIssuer.Sign(agent.ID, fingerprint, at)
	if err := s.rfrTokenRepo.Create(ctx, &newRfrToken); err != nil {
		return auth.Jwt{}, auth.RefreshToken{}, err
	}

	return jwtToken, newRfrToken, nil
}

func (s *authService) Logout(ctx context.Context, tokenID string) error {
	return s.rfrTokenRepo.DeleteByID(ctx, tokenID)
}
