// Package terminal renders the battle onto a tcell screen. Two surfaces
// share one screen: the HUD (vitals, log, controls, outcome) and the
// scene (combatant sprites). The owning loop clears, renders both and
// shows
package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/riftfall/battle"
	"github.com/lixenwraith/riftfall/render"
)

const (
	barWidth     = 24
	logHeight    = 6
	controlsLine = "[tab] target  [a] attack  [s] skill  [q] quit"
)

// Styles bundles the palette for one color mode
type Styles struct {
	Default   tcell.Style
	HPBar     tcell.Style
	ManaBar   tcell.Style
	BarEmpty  tcell.Style
	Log       tcell.Style
	Controls  tcell.Style
	Victory   tcell.Style
	Defeat    tcell.Style
	Selection tcell.Style
	Hurt      tcell.Style
	Attack    tcell.Style
}

// NewStyles builds the palette for the given color mode
// "mono" disables all color, anything else gets the full palette
func NewStyles(colorMode string) Styles {
	if colorMode == "mono" {
		d := tcell.StyleDefault
		return Styles{
			Default:   d,
			HPBar:     d,
			ManaBar:   d,
			BarEmpty:  d.Dim(true),
			Log:       d,
			Controls:  d.Dim(true),
			Victory:   d.Bold(true),
			Defeat:    d.Bold(true),
			Selection: d.Reverse(true),
			Hurt:      d.Reverse(true),
			Attack:    d.Bold(true),
		}
	}
	d := tcell.StyleDefault
	return Styles{
		Default:   d,
		HPBar:     d.Foreground(tcell.ColorGreen),
		ManaBar:   d.Foreground(tcell.ColorBlue),
		BarEmpty:  d.Foreground(tcell.ColorGray),
		Log:       d.Foreground(tcell.ColorSilver),
		Controls:  d.Foreground(tcell.ColorGray),
		Victory:   d.Foreground(tcell.ColorYellow).Bold(true),
		Defeat:    d.Foreground(tcell.ColorRed).Bold(true),
		Selection: d.Foreground(tcell.ColorYellow),
		Hurt:      d.Foreground(tcell.ColorRed),
		Attack:    d.Foreground(tcell.ColorAqua),
	}
}

// HUDRenderer draws vitals, the combat log, controls and the end-of-battle
// overlay. It owns the top rows and the bottom band of the screen
type HUDRenderer struct {
	screen tcell.Screen
	store  *battle.Store
	phase  func() battle.Phase
	styles Styles
}

// NewHUDRenderer creates the HUD surface
func NewHUDRenderer(screen tcell.Screen, store *battle.Store, phase func() battle.Phase, styles Styles) *HUDRenderer {
	return &HUDRenderer{
		screen: screen,
		store:  store,
		phase:  phase,
		styles: styles,
	}
}

// Render implements render.Surface
func (r *HUDRenderer) Render() {
	snap := r.store.Snapshot()
	width, height := r.screen.Size()

	r.drawVitals(snap)
	r.drawLog(snap, width, height)
	r.drawControls(width, height)
	r.drawOverlay(snap, width, height)
}

func (r *HUDRenderer) drawVitals(snap battle.State) {
	p := snap.Player
	name := p.Name
	if name == "" {
		name = "You"
	}
	drawText(r.screen, 1, 0, r.styles.Default, name)

	hpLabel := fmt.Sprintf("HP %d/%d", render.ClampVital(p.CurrentHP, p.MaxHP), p.MaxHP)
	drawText(r.screen, 1, 1, r.styles.Default, hpLabel)
	drawBar(r.screen, len(hpLabel)+2, 1, barWidth, p.CurrentHP, p.MaxHP, r.styles.HPBar, r.styles.BarEmpty)

	mpLabel := fmt.Sprintf("MP %d/%d", render.ClampVital(p.CurrentMana, p.MaxMana), p.MaxMana)
	drawText(r.screen, 1, 2, r.styles.Default, mpLabel)
	drawBar(r.screen, len(mpLabel)+2, 2, barWidth, p.CurrentMana, p.MaxMana, r.styles.ManaBar, r.styles.BarEmpty)
}

func (r *HUDRenderer) drawLog(snap battle.State, width, height int) {
	top := height - logHeight - 1
	if top < 4 {
		top = 4
	}
	// Newest-first storage, newest drawn at the bottom of the band
	shown := len(snap.Log)
	if shown > logHeight {
		shown = logHeight
	}
	for i := 0; i < shown; i++ {
		y := top + logHeight - 1 - i
		drawText(r.screen, 1, y, r.styles.Log, truncate(snap.Log[i], width-2))
	}
}

func (r *HUDRenderer) drawControls(width, height int) {
	drawText(r.screen, 1, height-1, r.styles.Controls, truncate(controlsLine, width-2))
}

// drawOverlay paints the outcome banner or the handshake status across
// the screen center
func (r *HUDRenderer) drawOverlay(snap battle.State, width, height int) {
	var msg string
	var style tcell.Style

	switch {
	case snap.Outcome.Decided && snap.Outcome.Result == battle.ResultVictory:
		msg, style = "*** VICTORY ***", r.styles.Victory
	case snap.Outcome.Decided:
		msg, style = "*** DEFEAT ***", r.styles.Defeat
	default:
		switch r.phase() {
		case battle.PhaseAwaitingIdentity, battle.PhaseJoining:
			msg, style = "Joining battle...", r.styles.Controls
		case battle.PhaseUnavailable:
			msg, style = "Battle unavailable", r.styles.Defeat
		default:
			return
		}
	}

	x := (width - len(msg)) / 2
	if x < 0 {
		x = 0
	}
	drawText(r.screen, x, height/2, style, msg)
}

// drawText writes a string left to right, clipping at screen edge
func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	width, height := screen.Size()
	if y < 0 || y >= height {
		return
	}
	for i, ch := range text {
		if x+i >= width {
			return
		}
		screen.SetContent(x+i, y, ch, nil, style)
	}
}

// drawBar renders a fixed-width gauge, clamped for display only
func drawBar(screen tcell.Screen, x, y, width, current, max int, fill, empty tcell.Style) {
	filled := render.BarFill(current, max, width)
	for i := 0; i < width; i++ {
		if i < filled {
			screen.SetContent(x+i, y, '█', nil, fill)
		} else {
			screen.SetContent(x+i, y, '░', nil, empty)
		}
	}
}

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
