// Package auth resolves the local player identity from the backend's
// access token. The client never verifies the signature; it only reads
// the id claims the same way the server-facing surfaces do, and the
// server re-checks everything that matters
package auth

import (
	"errors"
	"fmt"
	"sync"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoToken is returned when identity is requested before a token is set
var ErrNoToken = errors.New("auth: no access token")

// Identity holds the asynchronously-resolved local user and player ids
// Safe for concurrent access; PlayerID returns empty until resolved,
// which is what the battle handshake polls for
type Identity struct {
	mu       sync.RWMutex
	userID   string
	playerID string
}

// NewIdentity creates an unresolved identity
func NewIdentity() *Identity {
	return &Identity{}
}

// SetToken decodes the token's id claims and resolves the identity
// An undecodable token clears the identity rather than keeping stale ids
func (i *Identity) SetToken(accessToken string) error {
	userID, playerID, err := decodeClaims(accessToken)

	i.mu.Lock()
	defer i.mu.Unlock()
	if err != nil {
		i.userID = ""
		i.playerID = ""
		return err
	}
	i.userID = userID
	i.playerID = playerID
	return nil
}

// Clear forgets the identity, used at logout
func (i *Identity) Clear() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.userID = ""
	i.playerID = ""
}

// UserID returns the account id, empty until resolved
func (i *Identity) UserID() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.userID
}

// PlayerID returns the player id, empty until resolved
// Implements battle.IdentityProvider
func (i *Identity) PlayerID() string {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return i.playerID
}

// decodeClaims extracts id and playerId without signature verification
func decodeClaims(accessToken string) (userID, playerID string, err error) {
	if accessToken == "" {
		return "", "", ErrNoToken
	}

	parser := jwt.NewParser()
	token, _, err := parser.ParseUnverified(accessToken, jwt.MapClaims{})
	if err != nil {
		return "", "", fmt.Errorf("auth: decode token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", "", errors.New("auth: unexpected claims shape")
	}

	userID, _ = claims["id"].(string)
	playerID, _ = claims["playerId"].(string)
	if userID == "" && playerID == "" {
		return "", "", errors.New("auth: token carries no identity claims")
	}
	return userID, playerID, nil
}
