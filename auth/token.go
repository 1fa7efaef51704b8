package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Tokens is the persisted credential pair from a login response
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoadTokens reads saved credentials; a missing file is not an error,
// it just means the user must log in
func LoadTokens(path string) (Tokens, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Tokens{}, nil
		}
		return Tokens{}, fmt.Errorf("auth: read tokens: %w", err)
	}

	var t Tokens
	if err := json.Unmarshal(raw, &t); err != nil {
		return Tokens{}, fmt.Errorf("auth: parse tokens: %w", err)
	}
	return t, nil
}

// SaveTokens writes credentials with user-only permissions
func SaveTokens(path string, t Tokens) error {
	raw, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("auth: encode tokens: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("auth: create token dir: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		return fmt.Errorf("auth: write tokens: %w", err)
	}
	return nil
}

// ClearTokens removes saved credentials, used at logout
func ClearTokens(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("auth: clear tokens: %w", err)
	}
	return nil
}
