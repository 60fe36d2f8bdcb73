package usertoken

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/mluksch/personboard/pkg/token"
)

const (
	// ClaimUserIDKey is the key for user ID claim.
	ClaimUserIDKey = "id"
	// ClaimUserNameKey is the key for user name claim.
	ClaimUserNameKey = "userName"
	// ClaimExpiresAtKey is the key for expiration time claim.
	ClaimExpiresAtKey = "expiresAt"
)

var (
	// ErrInvalidToken is returned when the token is invalid.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned when the token is expired.
	ErrExpiredToken = errors.New("expired token")
)

// Generate generates a new JWT token with user ID, user name and expiration time.
func Generate(userID int64, userName string, expirationTime time.Duration, secret string) (string, error) {
	expiration := time.Now().Add(expirationTime).Unix()
	claims := &jwt.MapClaims{
		ClaimUserIDKey:    userID,
		ClaimUserNameKey:  userName,
		ClaimExpiresAtKey: expiration,
	}

	return token.NewWithClaims(claims, secret)
}

// Validate validates the given JWT token.
func Validate(tokenString, secret string) error {
	parsed, err := token.Parse(tokenString, secret)
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return ErrInvalidToken
	}

	expiresAt, ok := claims[ClaimExpiresAtKey].(float64)
	if !ok {
		return ErrInvalidToken
	}

	if int64(expiresAt) < time.Now().Unix() {
		return ErrExpiredToken
	}

	if _, ok := claims[ClaimUserIDKey].(float64); !ok {
		return ErrInvalidToken
	}

	if _, ok := claims[ClaimUserNameKey].(string); !ok {
		return ErrInvalidToken
	}

	return nil
}

// Claim is a generic type for JWT claims.
type Claim interface {
	string | float64
}

// GetClaim retrieves a claim value with the given key from the given JWT token.
func GetClaim[T Claim](tokenString, secret, key string) (T, error) {
	var value T

	parsed, err := token.Parse(tokenString, secret)
	if err != nil || !parsed.Valid {
		return value, ErrInvalidToken
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return value, ErrInvalidToken
	}

	value, ok = claims[key].(T)
	if !ok {
		return value, ErrInvalidToken
	}

	return value, nil
}
