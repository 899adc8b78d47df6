package factory

import (
	"errors"
	"io"
	"log/slog"

	"github.com/drydock-dev/drydock/internal/services/auth"
	"github.com/drydock-dev/drydock/internal/services/registry"
	"github.com/drydock-dev/drydock/internal/storage"
	"github.com/drydock-dev/drydock/internal/storage/memory"
	redisstorage "github.com/drydock-dev/drydock/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage

	AuthService     *auth.Service
	RegistryService *registry.Service
}

// Config holds configuration for the application factory
type Config struct {
	// AuthConfig holds configuration for the auth service (optional)
	// If zero value, defaults to auth.DefaultConfig()
	AuthConfig auth.Config
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	// Create storage based on type
	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New()
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	authCfg := cfg.AuthConfig
	if authCfg.Secret == "" {
		authCfg.Secret = auth.DefaultConfig().Secret
	}

	return &App{
		Storage:         store,
		AuthService:     auth.New(store, authCfg, logger),
		RegistryService: registry.New(store, logger),
	}, nil
}
