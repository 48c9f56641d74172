package window

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/vovakirdan/star-defender/internal/core"
)

// KeyState reports keyboard state. Held covers keys that repeat while down,
// Pressed covers keys that act once per press.
type KeyState struct {
	Held    func(ebiten.Key) bool
	Pressed func(ebiten.Key) bool
}

var (
	leftKeys    = []ebiten.Key{ebiten.KeyA, ebiten.KeyArrowLeft}
	rightKeys   = []ebiten.Key{ebiten.KeyD, ebiten.KeyArrowRight}
	fireKeys    = []ebiten.Key{ebiten.KeySpace}
	confirmKeys = []ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}
	pauseKeys   = []ebiten.Key{ebiten.KeyEscape, ebiten.KeyP}
	restartKeys = []ebiten.Key{ebiten.KeyR}
	backKeys    = []ebiten.Key{ebiten.KeyB, ebiten.KeyBackspace}
	quitKeys    = []ebiten.Key{ebiten.KeyQ}
	muteKey     = ebiten.KeyM
)

// ReadInput builds the input frame for one tick.
func ReadInput(ks KeyState) core.InputFrame {
	var actions []core.Action
	set := func(a core.Action, keys []ebiten.Key, check func(ebiten.Key) bool) {
		for _, k := range keys {
			if check(k) {
				actions = append(actions, a)
				return
			}
		}
	}

	set(core.ActionLeft, leftKeys, ks.Held)
	set(core.ActionRight, rightKeys, ks.Held)
	set(core.ActionFire, fireKeys, ks.Pressed)
	set(core.ActionConfirm, confirmKeys, ks.Pressed)
	set(core.ActionPause, pauseKeys, ks.Pressed)
	set(core.ActionRestart, restartKeys, ks.Pressed)
	set(core.ActionBack, backKeys, ks.Pressed)
	set(core.ActionQuit, quitKeys, ks.Pressed)
	return core.FrameOf(actions...)
}
