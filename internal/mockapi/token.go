package mockapi

import (
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AgentClaims are the JWT claims of an agent token. The shape matches the
// tokens handed out by the live API so that client.ParseToken reads both.
type AgentClaims struct {
	jwt.RegisteredClaims
	Identifier string `json:"identifier"`
	Version    string `json:"version"`
	ResetDate  string `json:"reset_date"`
}

// TokenIssuer issues and verifies agent tokens signed with HS256.
type TokenIssuer struct {
	key       []byte
	version   string
	resetDate string
}

// NewTokenIssuer creates a TokenIssuer. An empty key is replaced by 32
// random bytes, which invalidates every token on restart.
func NewTokenIssuer(key []byte, version string, reset time.Time) (*TokenIssuer, error) {
	if len(key) == 0 {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("generate signing key: %w", err)
		}
	}
	return &TokenIssuer{
		key:       key,
		version:   version,
		resetDate: reset.UTC().Format(time.DateOnly),
	}, nil
}

// Issue creates a signed token for the agent symbol.
func (t *TokenIssuer) Issue(agentSymbol string) (string, error) {
	now := time.Now().UTC()
	claims := AgentClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  "agent-token",
			IssuedAt: jwt.NewNumericDate(now),
			ID:       uuid.NewString(),
		},
		Identifier: agentSymbol,
		Version:    t.version,
		ResetDate:  t.resetDate,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.key)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Verify parses and validates an agent token, returning its claims on
// success. Tokens from an earlier reset are rejected.
func (t *TokenIssuer) Verify(tokenStr string) (*AgentClaims, error) {
	token, err := jwt.ParseWithClaims(
		tokenStr,
		&AgentClaims{},
		func(tok *jwt.Token) (any, error) {
			if _, ok := tok.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", tok.Header["alg"])
			}
			return t.key, nil
		},
		jwt.WithSubject("agent-token"),
	)
	if err != nil {
		return nil, fmt.Errorf("verify token: %w", err)
	}

	claims, ok := token.Claims.(*AgentClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	if claims.ResetDate != t.resetDate {
		return nil, fmt.Errorf("token is from the %s reset", claims.ResetDate)
	}
	if claims.Identifier == "" {
		return nil, errors.New("token has no identifier")
	}
	return claims, nil
}
