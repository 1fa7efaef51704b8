package terminal

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/riftfall/battle"
	"github.com/lixenwraith/riftfall/render"
)

const mobBarWidth = 10

// Combatant sprites keyed by visual pose, three rows each
var playerSprites = map[battle.VisualState][]string{
	battle.VisualIdle: {
		` O `,
		`/|\`,
		`/ \`,
	},
	battle.VisualHurt: {
		` O `,
		`\|/`,
		`/ \`,
	},
	battle.VisualAttack: {
		` O/`,
		`/|=>`,
		`/ \`,
	},
}

var mobSprites = map[battle.VisualState][]string{
	battle.VisualIdle: {
		`,--.`,
		`(oo)`,
		`-''-`,
	},
	battle.VisualHurt: {
		`,--.`,
		`(><)`,
		`-''-`,
	},
	battle.VisualAttack: {
		`,--.`,
		`(OO)=`,
		`-''-`,
	},
}

// SceneRenderer draws the combatants: the player on the left, the mob
// roster stacked on the right with per-mob gauges and the selection mark
type SceneRenderer struct {
	screen tcell.Screen
	store  *battle.Store
	styles Styles
}

// NewSceneRenderer creates the scene surface
func NewSceneRenderer(screen tcell.Screen, store *battle.Store, styles Styles) *SceneRenderer {
	return &SceneRenderer{
		screen: screen,
		store:  store,
		styles: styles,
	}
}

// Render implements render.Surface
func (r *SceneRenderer) Render() {
	snap := r.store.Snapshot()
	width, height := r.screen.Size()

	top := 4
	r.drawPlayer(snap, top)
	r.drawMobs(snap, width, height, top)
}

func (r *SceneRenderer) drawPlayer(snap battle.State, top int) {
	style := r.poseStyle(snap.Player.Visual)
	for i, line := range spriteFor(playerSprites, snap.Player.Visual) {
		drawText(r.screen, 2, top+i, style, line)
	}
}

func (r *SceneRenderer) drawMobs(snap battle.State, width, height, top int) {
	x := width - 24
	if x < 12 {
		x = 12
	}

	y := top
	for _, mob := range snap.Mobs {
		if y+4 >= height-logHeight-1 {
			return // Roster taller than the scene band
		}

		style := r.poseStyle(mob.Visual)
		selected := mob.ID == snap.SelectedMobID

		nameStyle := r.styles.Default
		name := mob.Name
		if selected {
			nameStyle = r.styles.Selection
			name = "> " + name
		}
		drawText(r.screen, x, y, nameStyle, name)

		for i, line := range spriteFor(mobSprites, mob.Visual) {
			drawText(r.screen, x, y+1+i, style, line)
		}

		hp := fmt.Sprintf("%d/%d", render.ClampVital(mob.HP, mob.MaxHP), mob.MaxHP)
		drawBar(r.screen, x+6, y+2, mobBarWidth, mob.HP, mob.MaxHP, r.styles.HPBar, r.styles.BarEmpty)
		drawText(r.screen, x+6+mobBarWidth+1, y+2, r.styles.Default, hp)

		y += 5
	}
}

func (r *SceneRenderer) poseStyle(v battle.VisualState) tcell.Style {
	switch v {
	case battle.VisualHurt:
		return r.styles.Hurt
	case battle.VisualAttack:
		return r.styles.Attack
	default:
		return r.styles.Default
	}
}

func spriteFor(set map[battle.VisualState][]string, v battle.VisualState) []string {
	if lines, ok := set[v]; ok {
		return lines
	}
	return set[battle.VisualIdle]
}
