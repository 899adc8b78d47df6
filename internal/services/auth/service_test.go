package auth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/drydock-dev/drydock/internal/model"
	"github.com/drydock-dev/drydock/internal/storage/memory"
	"github.com/drydock-dev/drydock/internal/testutil"
)

type ServiceSuite struct {
	suite.Suite
	storage *memory.Storage
	service *Service
	ctx     context.Context
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.storage = memory.New()
	s.service = New(s.storage, Config{Secret: "test-secret"}, testutil.NopLogger())
	s.ctx = context.Background()
}

// Register tests

func (s *ServiceSuite) TestRegisterSucceeds() {
	user, err := s.service.Register(s.ctx, "alice", "password123")
	s.Require().NoError(err)

	s.Equal(1, user.ID)
	s.Equal("alice", user.Username)
}

func (s *ServiceSuite) TestRegisterHashesPassword() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")

	stored, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.NotEmpty(stored.PasswordHash)
	s.NotEqual("password123", stored.PasswordHash)
}

func (s *ServiceSuite) TestRegisterFailsIfUsernameExists() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")

	_, err := s.service.Register(s.ctx, "alice", "different")
	s.ErrorIs(err, model.ErrUsernameExists)
}

// Login tests

func (s *ServiceSuite) TestLoginSucceeds() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")

	token, err := s.service.Login(s.ctx, "alice", "password123")
	s.Require().NoError(err)
	s.NotEmpty(token)
}

func (s *ServiceSuite) TestLoginFailsWithWrongPassword() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")

	_, err := s.service.Login(s.ctx, "alice", "wrongpassword")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailsWithUnknownUser() {
	_, err := s.service.Login(s.ctx, "nobody", "password123")
	s.ErrorIs(err, ErrInvalidCredentials)
}

func (s *ServiceSuite) TestLoginFailuresAreIndistinguishable() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")

	_, errUnknown := s.service.Login(s.ctx, "nobody", "password123")
	_, errWrongPw := s.service.Login(s.ctx, "alice", "wrongpassword")
	s.Equal(errUnknown, errWrongPw)
}

// VerifyToken tests

func (s *ServiceSuite) TestVerifyTokenRoundTrip() {
	user, _ := s.service.Register(s.ctx, "alice", "password123")
	token, _ := s.service.Login(s.ctx, "alice", "password123")

	identity, err := s.service.VerifyToken(token)
	s.Require().NoError(err)
	s.Equal(user.ID, identity.UserID)
	s.Equal("alice", identity.Username)
}

func (s *ServiceSuite) TestVerifyTokenRejectsGarbage() {
	_, err := s.service.VerifyToken("garbage")
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestVerifyTokenRejectsForeignSecret() {
	other := New(s.storage, Config{Secret: "other-secret"}, testutil.NopLogger())

	_, _ = s.service.Register(s.ctx, "alice", "password123")
	token, _ := s.service.Login(s.ctx, "alice", "password123")

	_, err := other.VerifyToken(token)
	s.ErrorIs(err, ErrInvalidToken)
}

func (s *ServiceSuite) TestTokenSurvivesUserDeletion() {
	user, _ := s.service.Register(s.ctx, "alice", "password123")
	token, _ := s.service.Login(s.ctx, "alice", "password123")

	s.Require().NoError(s.storage.DeleteUser(s.ctx, user.ID))

	// Stateless-token tradeoff: verification never consults the store
	identity, err := s.service.VerifyToken(token)
	s.Require().NoError(err)
	s.Equal(user.ID, identity.UserID)
}

func (s *ServiceSuite) TestVerifyTokenNeverMutatesStore() {
	_, _ = s.service.Register(s.ctx, "alice", "password123")
	token, _ := s.service.Login(s.ctx, "alice", "password123")

	before, _ := s.storage.ListUsers(s.ctx)
	_, _ = s.service.VerifyToken(token)
	after, _ := s.storage.ListUsers(s.ctx)
	s.Equal(before, after)
}
