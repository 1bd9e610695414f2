// Package window provides the ebiten frontend for glide: a resizable window
// where the mouse or a finger steers the snake.
package window

import (
	"time"

	"github.com/vovakirdan/snake-glide/internal/core"
	"github.com/vovakirdan/snake-glide/internal/games/snake"
	"github.com/vovakirdan/snake-glide/internal/registry"
)

const (
	doubleTapWindow     = 300 * time.Millisecond
	defaultMaxFrameStep = 100 * time.Millisecond
)

// tapTracker recognises two presses in quick succession.
type tapTracker struct {
	last   time.Time
	window time.Duration
}

// Tap records a press at now and reports whether it completes a double tap.
// A completed double tap is consumed, so a third tap starts over.
func (t *tapTracker) Tap(now time.Time) bool {
	if !t.last.IsZero() && now.Sub(t.last) <= t.window {
		t.last = time.Time{}
		return true
	}
	t.last = now
	return false
}

// controller applies player input to the simulation and records finished
// runs. It knows nothing about ebiten, so the game loop only polls devices.
type controller struct {
	session   registry.Session
	sim       *snake.Simulation
	bounds    core.Bounds
	taps      tapTracker
	maxStep   time.Duration
	lastFrame time.Time
	runSaved  bool
}

func newController(s registry.Session, bounds core.Bounds) *controller {
	maxStep := s.Config.Display.MaxFrameStep
	if maxStep <= 0 {
		maxStep = defaultMaxFrameStep
	}
	return &controller{
		session: s,
		sim:     s.NewSimulation(bounds),
		bounds:  bounds,
		taps:    tapTracker{window: doubleTapWindow},
		maxStep: maxStep,
	}
}

// resize follows the window. A game that has not started yet is recentred.
func (c *controller) resize(b core.Bounds) {
	if b == c.bounds {
		return
	}
	c.bounds = b
	if !c.sim.Started() {
		c.sim.Restart(b)
	}
}

// press handles a new mouse press or touch. After game over it restarts;
// a double tap toggles pause; anything else steers.
func (c *controller) press(p core.Point, now time.Time) {
	if c.sim.Over() {
		c.restart()
		return
	}
	if c.taps.Tap(now) && c.sim.Started() {
		c.sim.TogglePause()
		return
	}
	c.sim.OnPointerMoved(p)
}

func (c *controller) drag(p core.Point) {
	if c.sim.Over() || c.sim.Paused() {
		return
	}
	c.sim.OnPointerMoved(p)
}

func (c *controller) release() {
	c.sim.OnPointerReleased()
}

// apply handles keyboard actions. It reports false when the player quits.
func (c *controller) apply(a core.Action) bool {
	switch a {
	case core.ActionQuit:
		return false
	case core.ActionPause:
		c.sim.TogglePause()
	case core.ActionRestart:
		if c.sim.Over() {
			c.restart()
		}
	}
	return true
}

// frame advances the simulation by the time since the previous frame.
func (c *controller) frame(now time.Time) {
	var dt time.Duration
	if !c.lastFrame.IsZero() {
		dt = min(max(now.Sub(c.lastFrame), 0), c.maxStep)
	}
	c.lastFrame = now

	res := c.sim.Tick(dt, c.bounds)
	if res.Ended && !c.runSaved {
		c.session.SaveRun(c.sim.Snapshot())
		c.runSaved = true
	}
}

func (c *controller) restart() {
	c.sim.Restart(c.bounds)
	c.runSaved = false
}
