package auth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/golang-jwt/jwt/v5"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	s, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

// TestIdentityResolvesFromToken verifies the id claims are extracted
// without signature verification
func TestIdentityResolvesFromToken(t *testing.T) {
	id := NewIdentity()

	if id.PlayerID() != "" {
		t.Error("Expected empty player id before token")
	}

	token := signedToken(t, jwt.MapClaims{"id": "u1", "playerId": "p1"})
	if err := id.SetToken(token); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	if id.UserID() != "u1" {
		t.Errorf("Expected user u1, got %q", id.UserID())
	}
	if id.PlayerID() != "p1" {
		t.Errorf("Expected player p1, got %q", id.PlayerID())
	}
}

// TestInvalidTokenClearsIdentity verifies a bad token never leaves stale ids
func TestInvalidTokenClearsIdentity(t *testing.T) {
	id := NewIdentity()

	token := signedToken(t, jwt.MapClaims{"id": "u1", "playerId": "p1"})
	if err := id.SetToken(token); err != nil {
		t.Fatalf("SetToken failed: %v", err)
	}

	if err := id.SetToken("not-a-jwt"); err == nil {
		t.Error("Expected error for malformed token")
	}
	if id.PlayerID() != "" {
		t.Errorf("Expected identity cleared, got %q", id.PlayerID())
	}
}

// TestTokenWithoutIdentityClaims verifies tokens lacking both claims
// are rejected
func TestTokenWithoutIdentityClaims(t *testing.T) {
	id := NewIdentity()
	token := signedToken(t, jwt.MapClaims{"sub": "whoever"})

	if err := id.SetToken(token); err == nil {
		t.Error("Expected error for claimless token")
	}
}

// TestTokensRoundTrip verifies save/load/clear of the credential file
func TestTokensRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "tokens.json")

	loaded, err := LoadTokens(path)
	if err != nil {
		t.Fatalf("LoadTokens on missing file failed: %v", err)
	}
	if loaded.AccessToken != "" {
		t.Error("Expected empty tokens for missing file")
	}

	want := Tokens{AccessToken: "a", RefreshToken: "r"}
	if err := SaveTokens(path, want); err != nil {
		t.Fatalf("SaveTokens failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat token file: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Errorf("Expected 0600 permissions, got %v", info.Mode().Perm())
	}

	loaded, err = LoadTokens(path)
	if err != nil {
		t.Fatalf("LoadTokens failed: %v", err)
	}
	if loaded != want {
		t.Errorf("Expected %+v, got %+v", want, loaded)
	}

	if err := ClearTokens(path); err != nil {
		t.Fatalf("ClearTokens failed: %v", err)
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("Expected token file removed")
	}
}
