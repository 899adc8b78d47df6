package memory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/drydock-dev/drydock/internal/model"
)

type StorageSuite struct {
	suite.Suite
	storage *Storage
	ctx     context.Context
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.storage = New()
	s.ctx = context.Background()
}

// User tests

func (s *StorageSuite) TestCreateUserAssignsSequentialIDs() {
	u1, err := s.storage.CreateUser(s.ctx, "alice", "hash-a")
	s.Require().NoError(err)
	u2, err := s.storage.CreateUser(s.ctx, "bob", "hash-b")
	s.Require().NoError(err)

	s.Equal(1, u1.ID)
	s.Equal(2, u2.ID)
}

func (s *StorageSuite) TestCreateUserRejectsDuplicateUsername() {
	_, err := s.storage.CreateUser(s.ctx, "alice", "hash-a")
	s.Require().NoError(err)

	_, err = s.storage.CreateUser(s.ctx, "alice", "hash-b")
	s.ErrorIs(err, model.ErrUsernameExists)
}

func (s *StorageSuite) TestGetUserByUsername() {
	created, _ := s.storage.CreateUser(s.ctx, "alice", "hash-a")

	user, err := s.storage.GetUserByUsername(s.ctx, "alice")
	s.Require().NoError(err)
	s.Equal(created.ID, user.ID)
	s.Equal("hash-a", user.PasswordHash)
}

func (s *StorageSuite) TestGetUserByUsernameNotFound() {
	_, err := s.storage.GetUserByUsername(s.ctx, "nobody")
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestListUsersPreservesInsertionOrder() {
	_, _ = s.storage.CreateUser(s.ctx, "alice", "h")
	_, _ = s.storage.CreateUser(s.ctx, "bob", "h")
	_, _ = s.storage.CreateUser(s.ctx, "carol", "h")

	users, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Require().Len(users, 3)
	s.Equal("alice", users[0].Username)
	s.Equal("bob", users[1].Username)
	s.Equal("carol", users[2].Username)

	// Repeated lists without writes are identical
	again, err := s.storage.ListUsers(s.ctx)
	s.Require().NoError(err)
	s.Equal(users, again)
}

func (s *StorageSuite) TestDeleteUser() {
	u, _ := s.storage.CreateUser(s.ctx, "alice", "h")

	s.Require().NoError(s.storage.DeleteUser(s.ctx, u.ID))

	_, err := s.storage.GetUser(s.ctx, u.ID)
	s.ErrorIs(err, model.ErrUserNotFound)

	users, _ := s.storage.ListUsers(s.ctx)
	s.Empty(users)
}

func (s *StorageSuite) TestDeleteUserNotFound() {
	err := s.storage.DeleteUser(s.ctx, 42)
	s.ErrorIs(err, model.ErrUserNotFound)
}

func (s *StorageSuite) TestDeletedIDIsNotReused() {
	u1, _ := s.storage.CreateUser(s.ctx, "alice", "h")
	_ = s.storage.DeleteUser(s.ctx, u1.ID)

	u2, err := s.storage.CreateUser(s.ctx, "bob", "h")
	s.Require().NoError(err)
	s.Equal(2, u2.ID)
}

func (s *StorageSuite) TestDeleteFreesUsername() {
	u, _ := s.storage.CreateUser(s.ctx, "alice", "h")
	_ = s.storage.DeleteUser(s.ctx, u.ID)

	_, err := s.storage.CreateUser(s.ctx, "alice", "h2")
	s.NoError(err)
}

// Resource tests

func (s *StorageSuite) TestCreateResourceAssignsIDsPerKind() {
	app, err := s.storage.CreateResource(s.ctx, model.KindApp, "myapp")
	s.Require().NoError(err)
	bucket, err := s.storage.CreateResource(s.ctx, model.KindBucket, "mybucket")
	s.Require().NoError(err)

	// Ids are unique per registry, not globally
	s.Equal(1, app.ID)
	s.Equal(1, bucket.ID)

	app2, err := s.storage.CreateResource(s.ctx, model.KindApp, "other")
	s.Require().NoError(err)
	s.Equal(2, app2.ID)
}

func (s *StorageSuite) TestListResourcesPreservesInsertionOrder() {
	_, _ = s.storage.CreateResource(s.ctx, model.KindDatabase, "first")
	_, _ = s.storage.CreateResource(s.ctx, model.KindDatabase, "second")

	resources, err := s.storage.ListResources(s.ctx, model.KindDatabase)
	s.Require().NoError(err)
	s.Require().Len(resources, 2)
	s.Equal("first", resources[0].Name)
	s.Equal("second", resources[1].Name)
}

func (s *StorageSuite) TestListResourcesEmptyKind() {
	resources, err := s.storage.ListResources(s.ctx, model.KindStaticSite)
	s.Require().NoError(err)
	s.Empty(resources)
}

func (s *StorageSuite) TestUnknownResourceKind() {
	_, err := s.storage.CreateResource(s.ctx, model.ResourceKind("volume"), "x")
	s.ErrorIs(err, model.ErrUnknownResourceKind)

	_, err = s.storage.ListResources(s.ctx, model.ResourceKind("volume"))
	s.ErrorIs(err, model.ErrUnknownResourceKind)
}
