package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/drydock-dev/drydock/internal/model"
)

// Identity is the caller identity decoded from a verified token
type Identity struct {
	UserID   int
	Username string
}

// Claims embeds the registered claims plus the user identity
type Claims struct {
	jwt.RegisteredClaims
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
}

// signToken mints an HS256 token for the user. A zero ttl omits the expiry
// claim, producing a token that never expires.
func signToken(user *model.User, secret []byte, ttl time.Duration) (string, error) {
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		UserID:   user.ID,
		Username: user.Username,
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// verifyToken parses and verifies a token, returning the embedded identity
func verifyToken(tokenString string, secret []byte) (*Identity, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}

	return &Identity{
		UserID:   claims.UserID,
		Username: claims.Username,
	}, nil
}
