package auth

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/drydock-dev/drydock/internal/model"
	"github.com/drydock-dev/drydock/internal/storage"
)

// Errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

// Service handles account registration and token issuance
type Service struct {
	storage storage.Storage
	logger  *slog.Logger

	secret   []byte
	tokenTTL time.Duration
}

// Config holds configuration for the auth service
type Config struct {
	// Secret is the HMAC key used to sign and verify tokens (HS256)
	Secret string
	// TokenTTL bounds token validity. Zero means tokens never expire.
	TokenTTL time.Duration
}

// DefaultConfig returns default auth configuration.
// The default secret is insecure and exists only so development setups work
// out of the box; override it in any real deployment.
func DefaultConfig() Config {
	return Config{
		Secret:   "secret",
		TokenTTL: 0,
	}
}

// New creates a new auth service
func New(storage storage.Storage, cfg Config, logger *slog.Logger) *Service {
	if cfg.Secret == "" {
		cfg.Secret = DefaultConfig().Secret
		logger.Warn("no signing secret configured, using insecure default")
	}
	return &Service{
		storage:  storage,
		logger:   logger,
		secret:   []byte(cfg.Secret),
		tokenTTL: cfg.TokenTTL,
	}
}

// Register creates a user account with a bcrypt-hashed password.
// Username uniqueness is enforced by the store under its own lock.
func (s *Service) Register(ctx context.Context, username, password string) (*model.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.storage.CreateUser(ctx, username, string(hash))
	if err != nil {
		return nil, err
	}

	s.logger.Info("user registered",
		slog.Int("user_id", user.ID),
		slog.String("username", user.Username),
	)
	return user, nil
}

// Login verifies credentials and mints a signed token for the user.
// Unknown username and wrong password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.storage.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	return signToken(user, s.secret, s.tokenTTL)
}

// VerifyToken checks a token's signature and returns the embedded identity.
// Validity is purely cryptographic: the store is never consulted, so a
// deleted user's token stays valid until it expires.
func (s *Service) VerifyToken(token string) (*Identity, error) {
	return verifyToken(token, s.secret)
}
