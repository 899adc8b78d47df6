package memory

import (
	"context"
	"sync"
	"time"

	"github.com/drydock-dev/drydock/internal/model"
	"github.com/drydock-dev/drydock/internal/storage"
)

// Storage is an in-memory implementation of the storage interface.
// Id counters are advanced under the write lock, so ids are collision-free
// under concurrent creates.
type Storage struct {
	mu sync.RWMutex

	users         []*model.User
	usernameIndex map[string]int // username -> user id
	nextUserID    int

	resources      map[model.ResourceKind][]*model.Resource
	nextResourceID map[model.ResourceKind]int
}

// New creates a new in-memory storage instance
func New() *Storage {
	return &Storage{
		usernameIndex:  make(map[string]int),
		resources:      make(map[model.ResourceKind][]*model.Resource),
		nextResourceID: make(map[model.ResourceKind]int),
	}
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.usernameIndex[username]; ok {
		return nil, model.ErrUsernameExists
	}

	s.nextUserID++
	user := &model.User{
		ID:           s.nextUserID,
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
	s.users = append(s.users, user)
	s.usernameIndex[username] = user.ID
	return user, nil
}

func (s *Storage) GetUser(ctx context.Context, id int) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Linear scan, first match in insertion order
	for _, u := range s.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, model.ErrUserNotFound
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	users := make([]*model.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, u := range s.users {
		if u.ID == id {
			s.users = append(s.users[:i], s.users[i+1:]...)
			delete(s.usernameIndex, u.Username)
			return nil
		}
	}
	return model.ErrUserNotFound
}

// Resource registry operations

func (s *Storage) CreateResource(ctx context.Context, kind model.ResourceKind, name string) (*model.Resource, error) {
	if !kind.Valid() {
		return nil, model.ErrUnknownResourceKind
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextResourceID[kind]++
	res := &model.Resource{
		ID:        s.nextResourceID[kind],
		Kind:      kind,
		Name:      name,
		CreatedAt: time.Now(),
	}
	s.resources[kind] = append(s.resources[kind], res)
	return res, nil
}

func (s *Storage) ListResources(ctx context.Context, kind model.ResourceKind) ([]*model.Resource, error) {
	if !kind.Valid() {
		return nil, model.ErrUnknownResourceKind
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	resources := make([]*model.Resource, len(s.resources[kind]))
	copy(resources, s.resources[kind])
	return resources, nil
}
