package redis

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"

	"github.com/drydock-dev/drydock/internal/model"
)

type StorageSuite struct {
	suite.Suite
	mini    *miniredis.Miniredis
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.mini = miniredis.RunT(s.T())

	client := redis.NewClient(&redis.Options{
		Addr: s.mini.Addr(),
	})

	s.storage = NewWithClient(client, DefaultConfig())
	s.ctx = context.Background()
}

func (s *StorageSuite) TearDownTest() {
	if s.storage != nil {
		_ = s.storage.Close()
	}
	if s.mini != nil {
		s.mini.Close()
	}
}

// User tests

func (s *StorageSuite) TestCreateAndGetUser() {
	created, err := s.storage.CreateUser(s.ctx, "alice", "hash-a")
	s.Require().NoError(err)
	s.Equal(1, created.ID)

	user, err := s.storage.GetUser(s.ctx, created.ID)
	s.Require().NoError(err)
	s.Equal("alice", user.Username)
	s.Equal("hash-a", user.PasswordHash)
}

func (s *StorageSuite) TestCreateUserSequentialIDs() {
	u1, _ := s.storage.CreateUser(s.ctx, "alice", "h")
	u2, _ := s.storage.CreateUser(s.ctx, "bob", "h")

	s.Equal(1, u1.ID)
	s.Equal(2, u2.ID)
}

func (s *StorageSuite) TestCreateUserRejectsDuplicateUsername() {
	_, err := s.storage.CreateUser(s.ctx, "alice", "h")
	s.Require().NoError(err)

	_, err = s.storage.CreateUser(s.ctx, "alice", "h2")
	s.ErrorIs(err, model.ErrUsernameExists)
}

func (s *StorageSuite) TestGetUserNotFound() {
	_, err := s.storage.GetUser(s.ctx, 42)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestGetUserByUsername() {
	created, _ := s.storage.CreateUser(s.ctx, "alice", "h")

	user, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(created.ID, user.ID)
}

func (s *StorageSuite) TestGetUserByUsernameNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestListUsersPreservesInsertionOrder() {
	_, _ = s.storage.CreateUser(s.ctx, "alice", "h")
	_, _ = s.storage.CreateUser(s.ctx, "bob", "h")

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 2)
	s.Equal("alice", users[0].Username)
	s.Equal("bob", users[1].Username)
}

func (s *StorageSuite) TestListUsersEmpty() {
	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Empty(users)
}

func (s *StorageSuite) TestDeleteUser() {
	u, _ := s.storage.CreateUser(s.ctx, "alice", "h")

	s.Require().NoError(s.storage.DeleteUser(s.ctx, u.ID))

	_, err := s.storage.GetUser(s.ctx, u.ID)
	s.ErrorIs(err, model.ErrUserNotFound)

	users, _ := s.storage.ListUsers(s.ctx)
	s.Empty(users)

	// Username is freed, id is not reused
	u2, err := s.storage.CreateUser(s.ctx, "alice", "h2")
	s.Require().NoError(err)
	s.Equal(2, u2.ID)
}

func (s *StorageSuite) TestDeleteUserNotFound() {
	err := s.storage.DeleteUser(s.ctx, 42)
	s.ErrorIs(err, model.ErrUserNotFound)
}

// Resource tests

func (s *StorageSuite) TestCreateResourcePerKindSequences() {
	app, err := s.storage.CreateResource(s.ctx, model.KindApp, "myapp")
	s.Require().NoError(err)
	bucket, err := s.storage.CreateResource(s.ctx, model.KindBucket, "mybucket")
	s.Require().NoError(err)

	s.Equal(1, app.ID)
	s.Equal(1, bucket.ID)
}

func (s *StorageSuite) TestListResourcesPreservesInsertionOrder() {
	_, _ = s.storage.CreateResource(s.ctx, model.KindStaticSite, "site-a")
	_, _ = s.storage.CreateResource(s.ctx, model.KindStaticSite, "site-b")

	resources, err := s.storage.ListResources(s.ctx, model.KindStaticSite)
	s.Require().NoError(err)
	s.Require().Len(resources, 2)
	s.Equal("site-a", resources[0].Name)
	s.Equal("site-b", resources[1].Name)
}

func (s *StorageSuite) TestUnknownResourceKind() {
	_, err := s.storage.CreateResource(s.ctx, model.ResourceKind("volume"), "x")
	s.ErrorIs(err, model.ErrUnknownResourceKind)
}
