package service

import (
	"context"
	"crypto/ed25519"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/syemed/intake/internal/config"
	"github.com/syemed/intake/internal/domain/auth"
	"github.com/syemed/intake/internal/repository/mocks"
)

const (
	jwtAlgoEd25519 = "EdDSA"
	jwtIssuerClaim = "test-issuer"
	jwtTimeToLive  = 3 * time.Minute
)

const (
	refreshTokenMaxCount   = 2
	refreshTokenTimeToLive = 720 * time.Hour
)

var testAuthCtx = context.Background()
var testNow = time.Now().UTC()
var testPassword = "secret_password"
var testFingerprint = "87c37298-2f3d-40a1-9438-f45d2d819206"
var testPrivateKey = ed25519.PrivateKey("MC4CAQAwBQYDK2VwBCIEIBvYJuek9MjwZuvYT+6W7S9RRgr0SmxRqejl2v6y9jjo")

var jwtIssuer = auth.NewJwtIssuer(jwtIssuerClaim, jwt.GetSigningMethod(jwtAlgoEd25519), jwtTimeToLive, testPrivateKey)
var rfrTokenCfg = &config.RefreshTokenCfg{MaxCount: refreshTokenMaxCount, TimeToLive: refreshTokenTimeToLive}

var testAgent = &auth.Agent{
	ID:           "bdf2f837-75f6-462a-b9ec-5dfb2e8f8792",
	Email:        "lucas@syemed.com",
	Name:         "Lucas",
	PasswordHash: "$2y$10$iKrALz6vQTs8KcAOElIdHeO0ZKWZkyfFnxPsJYU.Dys/2Rz177p32",
}

var testRfrToken = &auth.RefreshToken{
	ID:          "1165dfc0-2dd0-4bea-ac69-4462f1cacacf",
	AgentID:     testAgent.ID,
	Fingerprint: testFingerprint,
	ExpiresIn:   int(refreshTokenTimeToLive.Seconds()),
	CreatedAt:   testNow,
}

type authServiceTestSuite struct {
	suite.Suite
	authSvc         AuthService
	transactorMock  *mocks.Transactor
	agentRpsMock    *mocks.AgentRepository
	rfrTokenRpsMock *mocks.RefreshTokenRepository
}

func (s *authServiceTestSuite) SetupSuite() {
	s.transactorMock = mocks.NewTransactor(s.T())
	s.transactorMock.On(
		"WithinTransaction",
		context.Background(),
		mock.AnythingOfType("func(context.Context) error"),
	).Return(func(ctx context.Context, txFunc func(ctx context.Context) error) error {
		return txFunc(ctx)
	})
}

func (s *authServiceTestSuite) SetupTest() {
	t := s.T()
	s.agentRpsMock = mocks.NewAgentRepository(t)
	s.rfrTokenRpsMock = mocks.NewRefreshTokenRepository(t)
	s.authSvc = NewAuthService(jwtIssuer, rfrTokenCfg, s.transactorMock, s.agentRpsMock, s.rfrTokenRpsMock)
}

func (s *authServiceTestSuite) TestSignupEmailReserved() {
	email := testAgent.Email

	s.agentRpsMock.On("FindByEmail", testAuthCtx, email).Return(testAgent, nil).Once()

	s.T().Logf("signup agent %s, but email already reserved", email)
	{
		_, err := s.authSvc.Signup(testAuthCtx, email, testAgent.Name, testPassword)
		s.Assert().Error(err, "agent with email %s already exist but no error raised", email)
		s.Assert().IsType(&echo.HTTPError{}, err, "error must be echo error")
	}
}

func (s *authServiceTestSuite) TestSuccessfulSignup() {
	email := testAgent.Email

	s.agentRpsMock.On("FindByEmail", testAuthCtx, email).Return(nil, nil).Once()
	s.agentRpsMock.On("Create", testAuthCtx, mock.AnythingOfType("*auth.Agent")).Return(nil).Once()

	s.T().Logf("signup agent %s and it must be signed up successfully", email)
	{
		agent, err := s.authSvc.Signup(context.Background(), email, testAgent.Name, testPassword)
		s.Assert().NoError(err, "agent with email %s must be signed up successfully", email)
		s.Assert().Equal(testAgent.Name, agent.Name, "agent name must be kept")
	}
}

func (s *authServiceTestSuite) TestLoginBadUsername() {
	email := testAgent.Email

	s.agentRpsMock.On("FindByEmail", testAuthCtx, email).Return(nil, nil).Once()

	s.T().Logf("login agent %s but email is not registered", email)
	{
		_, _, err := s.authSvc.Login(testAuthCtx, email, testPassword, testFingerprint, testNow)
		s.Assert().Error(err, "agent with email %s is not registered, but no error raised", email)
		s.Assert().ErrorIs(err, echo.ErrUnauthorized, "it must be unauthorized error")
	}
}

func (s *authServiceTestSuite) TestLoginBadPassword() {
	email := testAgent.Email
	invalidPassword := "invalid_password"

	s.agentRpsMock.On("FindByEmail", testAuthCtx, email).Return(testAgent, nil).Once()

	s.T().Logf("login agent %s but password is incorrect", email)
	{
		_, _, err := s.authSvc.Login(testAuthCtx, email, invalidPassword, testFingerprint, testNow)
		s.Assert().Error(err, "wrong password is provided but no error raised")
		s.Assert().ErrorIs(err, echo.ErrUnauthorized, "it must be unauthorized error")
	}
}

func (s *authServiceTestSuite) TestLoginSuccessAndPreviousTokensRemoved() {
	email := testAgent.Email

	dbTokens := []*auth.RefreshToken{
		{
			ID:          "af1adce5-51a4-4d2e-a6ba-da0e7009a1bf",
			AgentID:     testAgent.ID,
			Fingerprint: "86d36dcb-512b-402d-bec4-ae8922677cd7",
			ExpiresIn:   1000,
			CreatedAt:   testNow,
		},
		{
			ID:          "af1adce5-51a4-4d2e-a6ba-da0e7009a1bf",
			AgentID:     testAgent.ID,
			Fingerprint: "88a6a8ac-1104-41ae-b13c-c33deb5af5c2",
			ExpiresIn:   2000,
			CreatedAt:   testNow,
		},
	}

	s.agentRpsMock.On("FindByEmail", testAuthCtx, email).Return(testAgent, nil).Once()
	s.rfrTokenRpsMock.On("FindTokensByAgentID", testAuthCtx, testAgent.ID).Return(dbTokens, nil).Once()
	s.rfrTokenRpsMock.On("DeleteByAgentID", testAuthCtx, testAgent.ID).Return(nil).Once()
	s.rfrTokenRpsMock.On("Create", testAuthCtx, mock.AnythingOfType("*auth.RefreshToken")).Return(nil).Once()

	s.T().Logf("login agent %s successfully, but all previous tokens will be removed", email)
	{
		jwToken, rfrToken, err := s.authSvc.Login(testAuthCtx, email, testPassword, testFingerprint, testNow)
		s.Assert().NoError(err, "agent login is correct but error was raised")
		s.Assert().Equal(testNow.Add(jwtTimeToLive).Unix(), jwToken.ExpiresAt, "incorrect time to live was set for jwt")
		s.Assert().Equal(int(refreshTokenTimeToLive.Seconds()), rfrToken.ExpiresIn, "expires in is set incorrectly")
		s.rfrTokenRpsMock.AssertCalled(s.T(), "DeleteByAgentID", testAuthCtx, testAgent.ID)
	}
}

func (s *authServiceTestSuite) TestRefreshInvalidToken() {
	s.rfrTokenRpsMock.On("FindByID", testAuthCtx, testRfrToken.ID).Return(nil, nil).Once()

	s.T().Log("refresh with invalid token")
	{
		_, _, err := s.authSvc.Refresh(testAuthCtx, testRfrToken.ID, testFingerprint, testNow)
		s.Assert().Error(err, "invalid refresh token id was provided but no error raised")
		s.Assert().IsType(&echo.HTTPError{}, err, "error must be echo error")
	}
}

func (s *authServiceTestSuite) TestRefreshInvalidFingerprint() {
	invalidFingerprint := "461b07b5-3373-495d-b26b-d689a0c8a557"

	s.rfrTokenRpsMock.On("FindByID", testAuthCtx, testRfrToken.ID).Return(testRfrToken, nil).Once()
	s.rfrTokenRpsMock.On("DeleteByID", testAuthCtx, testRfrToken.ID).Return(nil).Once()

	s.T().Log("refresh with invalid fingerprint")
	{
		_, _, err := s.authSvc.Refresh(testAuthCtx, testRfrToken.ID, invalidFingerprint, testNow)
		s.Assert().Error(err, "invalid refresh token fingerprint was provided but no error raised")
		s.Assert().IsType(&echo.HTTPError{}, err, "error must be echo error")
	}
}

func (s *authServiceTestSuite) TestRefreshExpiredToken() {
	futureNow := testNow.Add(725 * time.Hour)

	s.rfrTokenRpsMock.On("FindByID", testAuthCtx, testRfrToken.ID).Return(testRfrToken, nil).Once()
	s.rfrTokenRpsMock.On("DeleteByID", testAuthCtx, testRfrToken.ID).Return(nil).Once()

	s.T().Log("refresh with already expired token")
	{
		_, _, err := s.authSvc.Refresh(testAuthCtx, testRfrToken.ID, testFingerprint, futureNow)
		s.Assert().Error(err, "refresh for expired refresh token was provided but no error raised")
		s.Assert().IsType(&echo.HTTPError{}, err, "error must be echo error")
	}
}

func (s *authServiceTestSuite) TestRefreshUnknownAgent() {
	s.rfrTokenRpsMock.On("FindByID", testAuthCtx, testRfrToken.ID).Return(testRfrToken, nil).Once()
	s.rfrTokenRpsMock.On("DeleteByID", testAuthCtx, testRfrToken.ID).Return(nil).Once()
	s.agentRpsMock.On("FindByID", testAuthCtx, testRfrToken.AgentID).Return(nil, nil).Once()

	s.T().Log("refresh but token owner no longer exists")
	{
		_, _, err := s.authSvc.Refresh(testAuthCtx, testRfrToken.ID, testFingerprint, testNow)
		s.Assert().Error(err, "agent for refresh token doesn't exist but no error raised")
		s.Assert().IsType(&echo.HTTPError{}, err, "error must be echo error")
	}
}

func (s *authServiceTestSuite) TestRefreshSuccessful() {
	s.rfrTokenRpsMock.On("FindByID", testAuthCtx, testRfrToken.ID).Return(testRfrToken, nil).Once()
	s.rfrTokenRpsMock.On("DeleteByID", testAuthCtx, testRfrToken.ID).Return(nil).Once()
	s.agentRpsMock.On("FindByID", testAuthCtx, testRfrToken.AgentID).Return(testAgent, nil).Once()
	s.rfrTokenRpsMock.On("Create", testAuthCtx, mock.AnythingOfType("*auth.RefreshToken")).Return(nil).Once()

	s.T().Log("refresh with valid token")
	{
		jwToken, rfrToken, err := s.authSvc.Refresh(testAuthCtx, testRfrToken.ID, testFingerprint, testNow)
		s.Assert().NoError(err, "refresh request is correctly sent but no error raised")
		s.Assert().Equal(testNow.Add(jwtTimeToLive).Unix(), jwToken.ExpiresAt, "incorrect time to live was set for jwt")
		s.Assert().Equal(int(refreshTokenTimeToLive.Seconds()), rfrToken.ExpiresIn, "expires in is set incorrectly")
	}
}

func (s *authServiceTestSuite) TestLogout() {
	s.rfrTokenRpsMock.On("DeleteByID", testAuthCtx, testRfrToken.ID).Return(nil).Once()

	s.T().Log("logout drops the refresh token")
	{
		err := s.authSvc.Logout(testAuthCtx, testRfrToken.ID)
		s.Assert().NoError(err, "logout request is correct but error was raised")
	}
}

// start auth service test suite
func TestAuthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(authServiceTestSuite))
}
