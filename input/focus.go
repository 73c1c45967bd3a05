package input

import "github.com/gre-42/mlib/loop"

// Focus names one layer of the UI focus stack (spec 4.I).
type Focus int

const (
	Base Focus = iota
	Scene
	Loading
	MenuMain
	MenuNewGame
	MenuSettings
	MenuControls
	CountdownPending
	CountdownCounting
	GameOverWin
	GameOverLose
)

func isMenu(f Focus) bool {
	switch f {
	case MenuMain, MenuNewGame, MenuSettings, MenuControls:
		return true
	}
	return false
}

// Focuses is the stack ordering which UI layer consumes input:
// BASE -> SCENE -> MENU (any submenu) -> COUNTDOWN_{PENDING,COUNTING}
// -> GAME_OVER_*. Pushing a MENU layer over SCENE or COUNTDOWN_COUNTING
// pauses the physics loop's pacer; popping back below MENU resumes it
// (spec 4.I).
type Focuses struct {
	stack []Focus
	pacer *loop.Pacer
}

// NewFocuses creates a stack with BASE always present at the bottom,
// pausing/resuming pacer as MENU layers are pushed/popped.
func NewFocuses(pacer *loop.Pacer) *Focuses {
	return &Focuses{stack: []Focus{Base}, pacer: pacer}
}

// Top returns the currently active focus layer.
func (f *Focuses) Top() Focus {
	return f.stack[len(f.stack)-1]
}

// Push adds a new focus layer on top of the stack. Pushing a MENU
// layer while SCENE or COUNTDOWN_COUNTING was active freezes physics.
func (f *Focuses) Push(focus Focus) {

	if isMenu(focus) && pausesUnderMenu(f.Top()) {
		f.pacer.Pause()
	}
	f.stack = append(f.stack, focus)
}

// Pop removes the top focus layer, refusing to pop past BASE (spec
// 4.I: "popping BASE is forbidden"). Popping the last MENU layer off
// of SCENE or COUNTDOWN_COUNTING resumes physics.
func (f *Focuses) Pop() bool {

	if len(f.stack) <= 1 {
		return false
	}
	popped := f.stack[len(f.stack)-1]
	f.stack = f.stack[:len(f.stack)-1]
	if isMenu(popped) && pausesUnderMenu(f.Top()) {
		f.pacer.Resume()
	}
	return true
}

// pausesUnderMenu reports whether physics runs in layer f and is
// therefore paused while a MENU layer sits directly on top of it.
func pausesUnderMenu(f Focus) bool {
	return f == Scene || f == CountdownCounting
}

// EscapeOrStart implements spec 4.I's "Escape/Start either opens MENU
// (from SCENE/LOADING/COUNTDOWN) or pops MENU one level": pressing it
// while a menu layer is on top pops one level; otherwise, if the
// current layer is SCENE, LOADING or a countdown layer, it opens the
// main menu.
func (f *Focuses) EscapeOrStart() {

	top := f.Top()
	if isMenu(top) {
		f.Pop()
		return
	}
	switch top {
	case Scene, Loading, CountdownPending, CountdownCounting:
		f.Push(MenuMain)
	}
}
