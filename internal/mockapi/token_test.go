package mockapi_test

import (
	"strings"
	"testing"
	"time"

	"github.com/jmerrifield20/spacetraders/internal/mockapi"
	"github.com/jmerrifield20/spacetraders/pkg/client"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	reset := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	issuer, err := mockapi.NewTokenIssuer([]byte("test-key"), mockapi.Version, reset)
	if err != nil {
		t.Fatal(err)
	}

	tok, err := issuer.Issue("BADGER")
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	claims, err := issuer.Verify(tok)
	if err != nil {
		t.Fatalf("Verify: %v", err)
	}
	if claims.Identifier != "BADGER" || claims.ResetDate != "2026-03-14" || claims.Subject != "agent-token" {
		t.Errorf("claims = %+v", claims)
	}
	if claims.ID == "" {
		t.Error("token has no ID")
	}

	// The client reads the same claims without the key.
	parsed, err := client.ParseToken(tok)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if parsed.Identifier != "BADGER" || parsed.Version != mockapi.Version {
		t.Errorf("parsed = %+v", parsed)
	}
}

func TestTokenIssuer_Rejects(t *testing.T) {
	reset := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	issuer, err := mockapi.NewTokenIssuer([]byte("test-key"), mockapi.Version, reset)
	if err != nil {
		t.Fatal(err)
	}
	tok, err := issuer.Issue("BADGER")
	if err != nil {
		t.Fatal(err)
	}

	nextReset, err := mockapi.NewTokenIssuer([]byte("test-key"), mockapi.Version, reset.AddDate(0, 0, 14))
	if err != nil {
		t.Fatal(err)
	}
	otherKey, err := mockapi.NewTokenIssuer(nil, mockapi.Version, reset)
	if err != nil {
		t.Fatal(err)
	}
	anonymous, err := issuer.Issue("")
	if err != nil {
		t.Fatal(err)
	}
	parts := strings.Split(tok, ".")
	tampered := parts[0] + "." + parts[1] + "x." + parts[2]

	tests := []struct {
		name   string
		issuer *mockapi.TokenIssuer
		token  string
	}{
		{"earlier reset", nextReset, tok},
		{"different key", otherKey, tok},
		{"tampered payload", issuer, tampered},
		{"no identifier", issuer, anonymous},
		{"not a jwt", issuer, "abc"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := tc.issuer.Verify(tc.token); err == nil {
				t.Error("expected verification to fail")
			}
		})
	}
}
