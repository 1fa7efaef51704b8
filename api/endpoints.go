package api

import (
	"context"
	"net/http"

	"github.com/lixenwraith/riftfall/auth"
	"github.com/lixenwraith/riftfall/player"
)

// Login exchanges credentials for a token pair
func (c *Client) Login(ctx context.Context, username, password string) (auth.Tokens, error) {
	var tokens auth.Tokens
	err := c.do(ctx, http.MethodPost, "/api/auth/login", map[string]string{
		"username": username,
		"password": password,
	}, &tokens)
	return tokens, err
}

// GetPlayer fetches the local player's profile
func (c *Client) GetPlayer(ctx context.Context) (player.Profile, error) {
	var p player.Profile
	err := c.do(ctx, http.MethodGet, "/api/players", nil, &p)
	return p, err
}

// GetInventory fetches the player's inventory
func (c *Client) GetInventory(ctx context.Context) ([]InventoryItem, error) {
	var items []InventoryItem
	err := c.do(ctx, http.MethodGet, "/api/players/inventory", nil, &items)
	return items, err
}

// UseOrEquipItem toggles an item's equipped state or consumes it
func (c *Client) UseOrEquipItem(ctx context.Context, itemID string, equip bool) error {
	return c.do(ctx, http.MethodPost, "/api/players/use-or-equip", map[string]any{
		"itemId":     itemID,
		"isEquipped": equip,
	}, nil)
}

// UpdateStats spends stat points on the given allocation
func (c *Client) UpdateStats(ctx context.Context, alloc StatAllocation) (player.Profile, error) {
	var p player.Profile
	err := c.do(ctx, http.MethodPatch, "/api/players/stats", alloc, &p)
	return p, err
}

// ListRifts fetches the rift catalog
func (c *Client) ListRifts(ctx context.Context) ([]Rift, error) {
	var rifts []Rift
	err := c.do(ctx, http.MethodGet, "/api/rifts", nil, &rifts)
	return rifts, err
}

// CreateBattle opens a battle session against a rift
// The returned session id keys the websocket join handshake
func (c *Client) CreateBattle(ctx context.Context, riftID string) (BattleSession, error) {
	var session BattleSession
	err := c.do(ctx, http.MethodPost, "/api/battles", map[string]string{
		"riftId": riftID,
	}, &session)
	return session, err
}
