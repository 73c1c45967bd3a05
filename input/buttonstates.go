// Package input implements button/axis sampling and a focus stack
// (spec 4.I), generalized from g3n-engine's window.KeyState (a
// dispatcher-driven map of key->bool) onto a thread-safe, non-blocking
// sampler covering keyboard, mouse, a single gamepad, and a "tap"
// virtual gamepad (touch), plus edge-triggered combinations.
package input

import (
	"sync"

	"github.com/gre-42/mlib/window"
)

// GamepadButton names a physical or virtual (tap) gamepad button.
type GamepadButton int

const (
	GamepadA GamepadButton = iota
	GamepadB
	GamepadX
	GamepadY
	GamepadStart
	GamepadBack
	GamepadLeftShoulder
	GamepadRightShoulder
)

// Axis names an analog gamepad axis sampled as a float in [-1, 1].
type Axis int

const (
	AxisLeftX Axis = iota
	AxisLeftY
	AxisRightX
	AxisRightY
	AxisLeftTrigger
	AxisRightTrigger
)

// ButtonStates samples keyboard, mouse, gamepad, and tap-gamepad state
// once per frame into a snapshot that queries read without touching
// the event dispatcher, so Pressed/Axis calls from any thread never
// block on window-system callbacks (spec 4.I: "queries are thread-safe
// and non-blocking").
type ButtonStates struct {
	mu sync.RWMutex

	keys     map[window.Key]bool
	mouse    map[window.MouseButton]bool
	gamepad  map[GamepadButton]bool
	tap      map[GamepadButton]bool
	axes     map[Axis]float32
}

// NewButtonStates creates an empty sampler.
func NewButtonStates() *ButtonStates {
	return &ButtonStates{
		keys:    make(map[window.Key]bool),
		mouse:   make(map[window.MouseButton]bool),
		gamepad: make(map[GamepadButton]bool),
		tap:     make(map[GamepadButton]bool),
		axes:    make(map[Axis]float32),
	}
}

// SetKey records a keyboard key's pressed state for the current
// frame, called from the window event dispatcher's key callback.
func (b *ButtonStates) SetKey(k window.Key, pressed bool) {
	b.mu.Lock()
	b.keys[k] = pressed
	b.mu.Unlock()
}

// SetMouseButton records a mouse button's pressed state.
func (b *ButtonStates) SetMouseButton(m window.MouseButton, pressed bool) {
	b.mu.Lock()
	b.mouse[m] = pressed
	b.mu.Unlock()
}

// SetGamepadButton records a physical gamepad button's pressed state.
func (b *ButtonStates) SetGamepadButton(g GamepadButton, pressed bool) {
	b.mu.Lock()
	b.gamepad[g] = pressed
	b.mu.Unlock()
}

// SetTapButton records a touch/tap virtual gamepad button's pressed state.
func (b *ButtonStates) SetTapButton(g GamepadButton, pressed bool) {
	b.mu.Lock()
	b.tap[g] = pressed
	b.mu.Unlock()
}

// SetAxis records an analog axis's current value in [-1, 1].
func (b *ButtonStates) SetAxis(a Axis, value float32) {
	b.mu.Lock()
	b.axes[a] = value
	b.mu.Unlock()
}

// Key reports whether k is currently held down.
func (b *ButtonStates) Key(k window.Key) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.keys[k]
}

// MouseButton reports whether m is currently held down.
func (b *ButtonStates) MouseButton(m window.MouseButton) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.mouse[m]
}

// Gamepad reports whether g is currently held down on the physical
// gamepad.
func (b *ButtonStates) Gamepad(g GamepadButton) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.gamepad[g]
}

// Tap reports whether g is currently held down on the tap gamepad.
func (b *ButtonStates) Tap(g GamepadButton) bool {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.tap[g]
}

// AxisValue returns a's current value, and whether a was ever set.
func (b *ButtonStates) AxisValue(a Axis) (float32, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	v, ok := b.axes[a]
	return v, ok
}

// Combination unions a key, a physical gamepad button, a tap button,
// and an analog axis threshold -- any one of which being active
// satisfies the combination (spec 4.I: "a combination unions (key,
// gamepad button, tap button, analog-axis-with-threshold)"). A Key of
// window.KeyUnknown, or a false HasGamepad/HasTap/HasAxis flag,
// excludes that source from the union.
type Combination struct {
	Key           window.Key
	Gamepad       GamepadButton
	HasGamepad    bool
	Tap           GamepadButton
	HasTap        bool
	AxisSource    Axis
	AxisThreshold float32
	HasAxis       bool
}

// Active reports whether any source in the combination is currently
// satisfied against b's snapshot.
func (c Combination) Active(b *ButtonStates) bool {

	if c.Key != window.KeyUnknown && b.Key(c.Key) {
		return true
	}
	if c.HasGamepad && b.Gamepad(c.Gamepad) {
		return true
	}
	if c.HasTap && b.Tap(c.Tap) {
		return true
	}
	if c.HasAxis {
		if v, ok := b.AxisValue(c.AxisSource); ok && v >= c.AxisThreshold {
			return true
		}
	}
	return false
}

// ButtonPress tracks edge transitions across successive ButtonStates
// snapshots, so keys_pressed reports true only on the frame a
// combination first becomes active, not on every frame it is held.
type ButtonPress struct {
	mu   sync.Mutex
	prev map[Combination]bool
}

// NewButtonPress creates an edge tracker.
func NewButtonPress() *ButtonPress {
	return &ButtonPress{prev: make(map[Combination]bool)}
}

// KeysPressed reports whether combo transitioned from inactive to
// active between the previous and current calls with this combo,
// sampling b for the current state.
func (bp *ButtonPress) KeysPressed(combo Combination, b *ButtonStates) bool {

	bp.mu.Lock()
	defer bp.mu.Unlock()

	now := combo.Active(b)
	was := bp.prev[combo]
	bp.prev[combo] = now
	return now && !was
}
