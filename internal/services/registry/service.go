// Package registry fronts the hosted resource registries (applications,
// storage buckets, databases, static sites). All four kinds share one
// service; records carry no owning-user reference, so every authenticated
// caller operates in the same global namespace per kind.
package registry

import (
	"context"
	"log/slog"

	"github.com/drydock-dev/drydock/internal/model"
	"github.com/drydock-dev/drydock/internal/storage"
)

// Service handles resource registry operations
type Service struct {
	storage storage.Storage
	logger  *slog.Logger
}

// New creates a new registry service
func New(storage storage.Storage, logger *slog.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
	}
}

// Create appends a named record to the kind's registry
func (s *Service) Create(ctx context.Context, kind model.ResourceKind, name string) (*model.Resource, error) {
	res, err := s.storage.CreateResource(ctx, kind, name)
	if err != nil {
		return nil, err
	}

	s.logger.Info("resource created",
		slog.String("kind", string(kind)),
		slog.Int("id", res.ID),
		slog.String("name", res.Name),
	)
	return res, nil
}

// List returns the kind's records in insertion order
func (s *Service) List(ctx context.Context, kind model.ResourceKind) ([]*model.Resource, error) {
	return s.storage.ListResources(ctx, kind)
}
