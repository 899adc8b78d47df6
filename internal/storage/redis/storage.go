package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/drydock-dev/drydock/internal/model"
	"github.com/drydock-dev/drydock/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface.
// Record ids come from INCR sequences, so concurrent creates never collide.
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// User operations

func (s *Storage) CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error) {
	id, err := s.client.Incr(ctx, userSeqKey()).Result()
	if err != nil {
		return nil, err
	}

	// SETNX makes the uniqueness claim atomic; a losing racer burns an id,
	// which is fine since ids are never reclaimed anyway
	claimed, err := s.client.SetNX(ctx, usernameIndexKey(username), id, 0).Result()
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, model.ErrUsernameExists
	}

	user := &model.User{
		ID:           int(id),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, userKey(user.ID), data, 0)
	pipe.RPush(ctx, userListKey(), user.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *Storage) GetUser(ctx context.Context, id int) (*model.User, error) {
	data, err := s.client.Get(ctx, userKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	var user model.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Storage) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	idStr, err := s.client.Get(ctx, usernameIndexKey(username)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, model.ErrUserNotFound
		}
		return nil, err
	}

	id, err := strconv.Atoi(idStr)
	if err != nil {
		return nil, err
	}
	return s.GetUser(ctx, id)
}

func (s *Storage) ListUsers(ctx context.Context) ([]*model.User, error) {
	ids, err := s.client.LRange(ctx, userListKey(), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.User{}, nil
	}

	keys := make([]string, len(ids))
	for i, idStr := range ids {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, err
		}
		keys[i] = userKey(id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	users := make([]*model.User, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue // id list entry with no record, skip
		}
		var user model.User
		if err := json.Unmarshal([]byte(raw), &user); err != nil {
			return nil, err
		}
		users = append(users, &user)
	}
	return users, nil
}

func (s *Storage) DeleteUser(ctx context.Context, id int) error {
	user, err := s.GetUser(ctx, id)
	if err != nil {
		return err
	}

	pipe := s.client.Pipeline()
	pipe.Del(ctx, userKey(id))
	pipe.LRem(ctx, userListKey(), 1, id)
	pipe.Del(ctx, usernameIndexKey(user.Username))
	_, err = pipe.Exec(ctx)
	return err
}

// Resource registry operations

func (s *Storage) CreateResource(ctx context.Context, kind model.ResourceKind, name string) (*model.Resource, error) {
	if !kind.Valid() {
		return nil, model.ErrUnknownResourceKind
	}

	id, err := s.client.Incr(ctx, resourceSeqKey(kind)).Result()
	if err != nil {
		return nil, err
	}

	res := &model.Resource{
		ID:        int(id),
		Kind:      kind,
		Name:      name,
		CreatedAt: time.Now(),
	}

	data, err := json.Marshal(res)
	if err != nil {
		return nil, err
	}

	pipe := s.client.Pipeline()
	pipe.Set(ctx, resourceKey(kind, res.ID), data, 0)
	pipe.RPush(ctx, resourceListKey(kind), res.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, err
	}
	return res, nil
}

func (s *Storage) ListResources(ctx context.Context, kind model.ResourceKind) ([]*model.Resource, error) {
	if !kind.Valid() {
		return nil, model.ErrUnknownResourceKind
	}

	ids, err := s.client.LRange(ctx, resourceListKey(kind), 0, -1).Result()
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return []*model.Resource{}, nil
	}

	keys := make([]string, len(ids))
	for i, idStr := range ids {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return nil, err
		}
		keys[i] = resourceKey(kind, id)
	}

	values, err := s.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, err
	}

	resources := make([]*model.Resource, 0, len(values))
	for _, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		var res model.Resource
		if err := json.Unmarshal([]byte(raw), &res); err != nil {
			return nil, err
		}
		resources = append(resources, &res)
	}
	return resources, nil
}
