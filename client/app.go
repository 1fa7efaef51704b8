// Package client bootstraps everything a battle client needs: config,
// authentication, the REST calls that open a session, the websocket
// transport and the battle controller. Both binaries share this wiring
// and differ only in their presentation loop
package client

import (
	"context"
	"fmt"
	"log"

	"github.com/lixenwraith/riftfall/api"
	"github.com/lixenwraith/riftfall/audio"
	"github.com/lixenwraith/riftfall/auth"
	"github.com/lixenwraith/riftfall/battle"
	"github.com/lixenwraith/riftfall/config"
	"github.com/lixenwraith/riftfall/events"
	"github.com/lixenwraith/riftfall/network"
	"github.com/lixenwraith/riftfall/player"
)

// App holds the wired client stack for one battle session
type App struct {
	Config     *config.Config
	Identity   *auth.Identity
	API        *api.Client
	Players    *player.Store
	Queue      *events.EventQueue
	Router     *events.Router
	Transport  *network.Transport
	Controller *battle.Controller
	Sounds     *audio.SoundManager

	unsubscribe func()
}

// Options selects what to fight
type Options struct {
	ConfigPath string
	// RiftID picks the battle site; empty means the first open rift
	RiftID string
}

// Bootstrap builds the full stack and starts the transport
// The returned App is running; call Close on shutdown
func Bootstrap(ctx context.Context, opts Options) (*App, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, err
	}

	tokens, err := auth.LoadTokens(cfg.Auth.TokenPath)
	if err != nil {
		return nil, fmt.Errorf("load tokens: %w", err)
	}

	if tokens.AccessToken == "" {
		if cfg.Auth.Username == "" {
			return nil, fmt.Errorf("no stored token and no credentials configured")
		}
		guest := api.NewClient(cfg.Server.BaseURL, nil)
		tokens, err = guest.Login(ctx, cfg.Auth.Username, cfg.Auth.Password)
		if err != nil {
			return nil, fmt.Errorf("login: %w", err)
		}
		if err := auth.SaveTokens(cfg.Auth.TokenPath, tokens); err != nil {
			log.Printf("saving tokens failed: %v", err)
		}
	}

	identity := auth.NewIdentity()
	if err := identity.SetToken(tokens.AccessToken); err != nil {
		return nil, fmt.Errorf("decode access token: %w", err)
	}

	apiClient := api.NewClient(cfg.Server.BaseURL, func() string { return tokens.AccessToken })

	players := player.NewStore()
	profile, err := apiClient.GetPlayer(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch profile: %w", err)
	}
	players.SetProfile(profile)

	riftID := opts.RiftID
	if riftID == "" {
		riftID, err = pickRift(ctx, apiClient)
		if err != nil {
			return nil, err
		}
	}

	session, err := apiClient.CreateBattle(ctx, riftID)
	if err != nil {
		return nil, fmt.Errorf("create battle: %w", err)
	}

	events.InitRegistry()
	queue := events.NewEventQueue()
	router := events.NewRouter(queue)

	netCfg := network.DefaultConfig(cfg.Socket.URL)
	netCfg.Reconnect = cfg.Socket.Reconnect
	netCfg.Header.Set("Authorization", "Bearer "+tokens.AccessToken)
	transport := network.NewTransport(netCfg, queue)

	initial := battle.NewState(
		profile.ID, profile.Nickname,
		profile.CurrentHP, profile.MaxHP,
		profile.CurrentMana, profile.MaxMana,
	)
	controller := battle.NewController(
		session.ID, initial, identity, transport,
		battle.NewRealTimeProvider(), router, players,
	)

	sounds := audio.NewSoundManager()
	app := &App{
		Config:     cfg,
		Identity:   identity,
		API:        apiClient,
		Players:    players,
		Queue:      queue,
		Router:     router,
		Transport:  transport,
		Controller: controller,
		Sounds:     sounds,
	}

	if cfg.Audio.Enabled {
		if err := sounds.Initialize(); err != nil {
			log.Printf("audio unavailable: %v", err)
		} else {
			store := controller.Store()
			binder := audio.NewBinder(sounds, store.Snapshot())
			app.unsubscribe = store.Subscribe(func() {
				binder.Observe(store.Snapshot())
			})
		}
	}

	transport.Start()
	return app, nil
}

// Close tears the stack down in reverse order
func (a *App) Close() {
	if a.unsubscribe != nil {
		a.unsubscribe()
	}
	a.Controller.Close()
	a.Transport.Stop()
	a.Sounds.Cleanup()
}

// pickRift returns the first rift the backend reports as open
func pickRift(ctx context.Context, c *api.Client) (string, error) {
	rifts, err := c.ListRifts(ctx)
	if err != nil {
		return "", fmt.Errorf("list rifts: %w", err)
	}
	for _, r := range rifts {
		if r.Status == "" || r.Status == "OPEN" {
			return r.ID, nil
		}
	}
	return "", fmt.Errorf("no open rift available")
}
