package storage

import (
	"context"

	"github.com/drydock-dev/drydock/internal/model"
)

// Storage defines the interface for data persistence.
//
// Implementations must reserve record ids atomically with the insert so that
// concurrent creates never collide, and must preserve insertion order for
// list operations.
type Storage interface {
	// User operations
	CreateUser(ctx context.Context, username, passwordHash string) (*model.User, error)
	GetUser(ctx context.Context, id int) (*model.User, error)
	GetUserByUsername(ctx context.Context, username string) (*model.User, error)
	ListUsers(ctx context.Context) ([]*model.User, error)
	DeleteUser(ctx context.Context, id int) error

	// Resource registry operations
	CreateResource(ctx context.Context, kind model.ResourceKind, name string) (*model.Resource, error)
	ListResources(ctx context.Context, kind model.ResourceKind) ([]*model.Resource, error)
}
