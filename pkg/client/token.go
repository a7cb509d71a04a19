package client

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims are the claims carried by an agent token. The server signs
// tokens with a key clients never see, so they are read but not verified.
type TokenClaims struct {
	jwt.RegisteredClaims
	Identifier string `json:"identifier"`
	Version    string `json:"version"`
	ResetDate  string `json:"reset_date"`
}

// ParseToken decodes the claims of an agent token without verifying its
// signature. Use it to find which agent and server reset a token belongs to.
func ParseToken(token string) (*TokenClaims, error) {
	claims := &TokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	return claims, nil
}

// LoadToken reads an agent token from path. Surrounding whitespace is
// stripped.
//
//	token, err := client.LoadToken(os.ExpandEnv("$HOME/.spacetraders/token"))
func LoadToken(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read token: %w", err)
	}
	token := strings.TrimSpace(string(b))
	if token == "" {
		return "", fmt.Errorf("token file %q is empty", path)
	}
	return token, nil
}

// SaveToken writes token to path with owner-only permissions, creating
// parent directories as needed.
func SaveToken(path, token string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("create token dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(token+"\n"), 0o600); err != nil {
		return fmt.Errorf("write token: %w", err)
	}
	return nil
}

// NewFromTokenFile creates a client authenticated with the token stored at
// path by SaveToken.
//
//	c, err := client.NewFromTokenFile(
//	    os.ExpandEnv("$HOME/.spacetraders/token"),
//	    client.WithLogger(logger),
//	)
func NewFromTokenFile(path string, opts ...Option) (*Client, error) {
	return New(append([]Option{WithTokenFile(path)}, opts...)...)
}

// WithTokenFile is the functional-option form of NewFromTokenFile.
func WithTokenFile(path string) Option {
	return func(c *Client) error {
		token, err := LoadToken(path)
		if err != nil {
			return fmt.Errorf("load token from %q: %w", path, err)
		}
		return WithToken(token)(c)
	}
}
