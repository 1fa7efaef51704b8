// Package scene is the windowed presentation layer. One ebiten game
// drives the battle loop and draws two layers over the same store: the
// combatant layer and the HUD layer
package scene

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/lixenwraith/riftfall/battle"
	"github.com/lixenwraith/riftfall/render"
)

const (
	screenWidth  = 960
	screenHeight = 540

	playerX = 120
	playerY = 260

	mobColX   = 640
	mobColY   = 120
	mobBoxW   = 260
	mobBoxH   = 72
	mobBoxGap = 16

	barW = 180
	barH = 10

	logLines = 6
)

var (
	colorBackground = color.RGBA{16, 16, 24, 255}
	colorPanel      = color.RGBA{30, 30, 44, 255}
	colorHP         = color.RGBA{80, 200, 90, 255}
	colorMana       = color.RGBA{80, 120, 230, 255}
	colorBarBack    = color.RGBA{50, 50, 60, 255}
	colorIdle       = color.RGBA{190, 190, 200, 255}
	colorHurt       = color.RGBA{230, 70, 70, 255}
	colorAttack     = color.RGBA{90, 200, 230, 255}
	colorSelection  = color.RGBA{240, 200, 60, 255}
)

// ErrQuit stops ebiten's run loop cleanly
var ErrQuit = fmt.Errorf("quit requested")

// Game implements ebiten.Game over the battle store. The update callback
// advances the controller each frame in place of a wall-clock ticker
type Game struct {
	store      *battle.Store
	dispatcher *battle.Dispatcher
	phase      func() battle.Phase
	tick       func()
	skillID    string
}

// NewGame creates the windowed battle view
func NewGame(store *battle.Store, dispatcher *battle.Dispatcher, phase func() battle.Phase, tick func(), skillID string) *Game {
	return &Game{
		store:      store,
		dispatcher: dispatcher,
		phase:      phase,
		tick:       tick,
		skillID:    skillID,
	}
}

// Update implements ebiten.Game
func (g *Game) Update() error {
	if g.tick != nil {
		g.tick()
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ErrQuit
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyA) {
		_ = g.dispatcher.RequestAttack()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		_ = g.dispatcher.RequestSkill(g.skillID)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyTab) {
		g.cycleTarget()
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		snap := g.store.Snapshot()
		for i, mob := range snap.Mobs {
			x, y := mobBoxPos(i)
			if mx >= x && mx <= x+mobBoxW && my >= y && my <= y+mobBoxH {
				g.dispatcher.SelectMob(mob.ID)
				break
			}
		}
	}

	return nil
}

// Draw implements ebiten.Game
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)
	snap := g.store.Snapshot()

	g.drawCombatants(screen, snap)
	g.drawHUD(screen, snap)
}

// Layout implements ebiten.Game
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func (g *Game) drawCombatants(screen *ebiten.Image, snap battle.State) {
	// Player pawn, shifted forward while attacking
	px := float32(playerX)
	if snap.Player.Visual == battle.VisualAttack {
		px += 24
	}
	vector.DrawFilledRect(screen, px, playerY, 48, 64, poseColor(snap.Player.Visual), false)
	ebitenutil.DebugPrintAt(screen, snap.Player.Name, playerX, playerY+70)

	for i, mob := range snap.Mobs {
		x, y := mobBoxPos(i)
		fx, fy := float32(x), float32(y)

		vector.DrawFilledRect(screen, fx, fy, mobBoxW, mobBoxH, colorPanel, false)
		if mob.ID == snap.SelectedMobID {
			vector.StrokeRect(screen, fx, fy, mobBoxW, mobBoxH, 2, colorSelection, false)
		}

		// Pawn, shifted toward the player while attacking
		pawnX := fx + 12
		if mob.Visual == battle.VisualAttack {
			pawnX -= 12
		}
		vector.DrawFilledRect(screen, pawnX, fy+12, 32, 40, poseColor(mob.Visual), false)

		ebitenutil.DebugPrintAt(screen, mob.Name, x+56, y+10)
		drawGauge(screen, fx+56, fy+32, barW, barH, mob.HP, mob.MaxHP, colorHP)
		hp := fmt.Sprintf("%d/%d", render.ClampVital(mob.HP, mob.MaxHP), mob.MaxHP)
		ebitenutil.DebugPrintAt(screen, hp, x+56, y+46)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image, snap battle.State) {
	p := snap.Player

	hp := fmt.Sprintf("HP %d/%d", render.ClampVital(p.CurrentHP, p.MaxHP), p.MaxHP)
	ebitenutil.DebugPrintAt(screen, hp, 16, 16)
	drawGauge(screen, 96, 18, barW, barH, p.CurrentHP, p.MaxHP, colorHP)

	mp := fmt.Sprintf("MP %d/%d", render.ClampVital(p.CurrentMana, p.MaxMana), p.MaxMana)
	ebitenutil.DebugPrintAt(screen, mp, 16, 34)
	drawGauge(screen, 96, 36, barW, barH, p.CurrentMana, p.MaxMana, colorMana)

	// Newest-first log, newest at the bottom
	shown := len(snap.Log)
	if shown > logLines {
		shown = logLines
	}
	base := screenHeight - 24 - shown*16
	for i := shown - 1; i >= 0; i-- {
		ebitenutil.DebugPrintAt(screen, snap.Log[i], 16, base+(shown-1-i)*16)
	}

	ebitenutil.DebugPrintAt(screen, "[tab/click] target  [a] attack  [s] skill  [q] quit", 16, screenHeight-20)

	g.drawOverlay(screen, snap)
}

func (g *Game) drawOverlay(screen *ebiten.Image, snap battle.State) {
	var msg string
	switch {
	case snap.Outcome.Decided && snap.Outcome.Result == battle.ResultVictory:
		msg = "*** VICTORY ***"
	case snap.Outcome.Decided:
		msg = "*** DEFEAT ***"
	default:
		switch g.phase() {
		case battle.PhaseAwaitingIdentity, battle.PhaseJoining:
			msg = "Joining battle..."
		case battle.PhaseUnavailable:
			msg = "Battle unavailable"
		default:
			return
		}
	}
	ebitenutil.DebugPrintAt(screen, msg, screenWidth/2-len(msg)*3, screenHeight/2)
}

func (g *Game) cycleTarget() {
	snap := g.store.Snapshot()
	if len(snap.Mobs) == 0 {
		return
	}
	current := -1
	for i, m := range snap.Mobs {
		if m.ID == snap.SelectedMobID {
			current = i
			break
		}
	}
	g.dispatcher.SelectMob(snap.Mobs[(current+1)%len(snap.Mobs)].ID)
}

func mobBoxPos(index int) (int, int) {
	return mobColX, mobColY + index*(mobBoxH+mobBoxGap)
}

func drawGauge(screen *ebiten.Image, x, y float32, w, h, current, max int, fill color.Color) {
	vector.DrawFilledRect(screen, x, y, float32(w), float32(h), colorBarBack, false)
	filled := render.BarFill(current, max, w)
	if filled > 0 {
		vector.DrawFilledRect(screen, x, y, float32(filled), float32(h), fill, false)
	}
}

func poseColor(v battle.VisualState) color.Color {
	switch v {
	case battle.VisualHurt:
		return colorHurt
	case battle.VisualAttack:
		return colorAttack
	default:
		return colorIdle
	}
}
