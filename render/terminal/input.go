package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/riftfall/battle"
)

// InputHandler translates tcell key events into battle intents
type InputHandler struct {
	dispatcher *battle.Dispatcher
	store      *battle.Store
	skillID    string
}

// NewInputHandler creates the key-to-intent translator
// skillID is the skill bound to the cast key
func NewInputHandler(dispatcher *battle.Dispatcher, store *battle.Store, skillID string) *InputHandler {
	return &InputHandler{
		dispatcher: dispatcher,
		store:      store,
		skillID:    skillID,
	}
}

// Handle consumes one event and reports whether the client should keep
// running
func (h *InputHandler) Handle(ev tcell.Event) bool {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return true
	}

	if key.Key() == tcell.KeyEscape || key.Key() == tcell.KeyCtrlC {
		return false
	}
	if key.Key() == tcell.KeyTab {
		h.cycleTarget()
		return true
	}
	if key.Key() != tcell.KeyRune {
		return true
	}

	switch key.Rune() {
	case 'q':
		return false
	case 'a':
		_ = h.dispatcher.RequestAttack()
	case 's':
		_ = h.dispatcher.RequestSkill(h.skillID)
	}
	return true
}

// cycleTarget moves the selection to the next living roster entry,
// wrapping at the end
func (h *InputHandler) cycleTarget() {
	snap := h.store.Snapshot()
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
	next := snap.Mobs[(current+1)%len(snap.Mobs)]
	h.dispatcher.SelectMob(next.ID)
}
