// Package snake implements the glide simulation: a continuously moving snake
// steered toward a pointer, growing by eating food scattered over the playfield.
// The package holds no timer and does no I/O; a frontend calls Tick at its own
// cadence and forwards pointer events as they arrive.
package snake

import (
	"time"

	"github.com/vovakirdan/snake-glide/internal/config"
	"github.com/vovakirdan/snake-glide/internal/core"
)

// GameID is the key used for scores and the persisted best score.
const GameID = "glide"

// Title is the display name.
const Title = "Glide"

// Simulation owns all gameplay state of one player's game.
// It is not safe for concurrent use: every call must come from the same
// scheduling context.
type Simulation struct {
	cfg     config.SnakeConfig
	clock   core.Clock
	spawner core.PointSource
	onHigh  func(int)

	tick      uint64
	snake     []core.Point // head at index 0
	food      []core.Point
	direction core.Vector

	started bool
	paused  bool
	over    bool
	cause   EndCause

	score     int
	highScore int
	startTime time.Time // zero until the run starts

	pointer    core.Point
	hasPointer bool
}

// TickResult reports what happened during one Tick.
type TickResult struct {
	Eaten int  // food items consumed this tick
	Ended bool // the run ended during this tick
}

// NewSimulation creates a simulation with a single-segment snake at the centre
// of bounds and a full food set.
func NewSimulation(cfg config.SnakeConfig, bounds core.Bounds, env Env) *Simulation {
	env = env.withDefaults()
	s := &Simulation{
		cfg:       cfg,
		clock:     env.Clock,
		spawner:   env.Points,
		onHigh:    env.OnHighScore,
		highScore: max(env.HighScore, 0),
	}
	s.Restart(bounds)
	return s
}

// OnPointerMoved records the pointer position. The first pointer event of a
// fresh game starts the run and the grace period clock.
func (s *Simulation) OnPointerMoved(p core.Point) {
	s.pointer = p
	s.hasPointer = true
	if !s.started && !s.over {
		s.started = true
		s.startTime = s.clock.Now()
	}
}

// OnPointerReleased forgets the pointer. The snake keeps its current direction.
func (s *Simulation) OnPointerReleased() {
	s.hasPointer = false
}

// TogglePause flips the pause state of a running game.
func (s *Simulation) TogglePause() {
	if s.started && !s.over {
		s.paused = !s.paused
	}
}

// Tick advances the simulation by dt. It does nothing before the run starts,
// after it ends, or while paused.
func (s *Simulation) Tick(dt time.Duration, bounds core.Bounds) TickResult {
	if !s.started || s.over || s.paused || len(s.snake) == 0 {
		return TickResult{}
	}
	s.tick++

	// Steer toward the pointer, if any
	if s.hasPointer {
		s.direction = s.pointer.Sub(s.snake[0]).Normalize(s.cfg.Motion.SteerEpsilon)
	}

	head := s.snake[0].Add(s.direction.Scale(s.cfg.Motion.MoveSpeed * dt.Seconds()))

	if !bounds.Contains(head) {
		s.end(EndBoundary)
		return TickResult{Ended: true}
	}

	// The new head is prepended; the old head becomes segment 1, so the body
	// lengthens by one every tick.
	s.snake = append(s.snake, core.Point{})
	copy(s.snake[1:], s.snake)
	s.snake[0] = head
	FollowChain(s.snake, s.cfg.Body.SegmentSpacing)

	var res TickResult
	if s.selfCollided() {
		s.end(EndSelfCollision)
		res.Ended = true
	}

	// Food is still checked on the tick that ends the run.
	res.Eaten = s.eat(head, bounds)
	return res
}

// Restart reinitialises the game in place. The high score is kept.
func (s *Simulation) Restart(bounds core.Bounds) {
	s.tick = 0
	s.snake = []core.Point{bounds.Center()}
	s.food = spawnFood(s.spawner, s.foodArea(bounds), s.cfg.Food.Count)
	s.direction = core.Vector{DX: 1, DY: 0}
	s.started = false
	s.paused = false
	s.over = false
	s.cause = EndNone
	s.score = 0
	s.startTime = time.Time{}
}

func (s *Simulation) end(cause EndCause) {
	s.over = true
	s.cause = cause
}

// Snake returns a copy of the segment positions, head first.
func (s *Simulation) Snake() []core.Point {
	return append([]core.Point(nil), s.snake...)
}

// Food returns a copy of the food positions.
func (s *Simulation) Food() []core.Point {
	return append([]core.Point(nil), s.food...)
}

// Head returns the head position; ok is false for an empty snake.
func (s *Simulation) Head() (p core.Point, ok bool) {
	if len(s.snake) == 0 {
		return core.Point{}, false
	}
	return s.snake[0], true
}

// HeadMarker returns where the head sprite is drawn: ahead of the head along
// the current direction.
func (s *Simulation) HeadMarker() core.Point {
	head, _ := s.Head()
	return head.Add(s.direction.Scale(s.cfg.Body.Radius * s.cfg.Display.HeadOffset))
}

// Pointer returns the last pointer position while a pointer is active.
func (s *Simulation) Pointer() (p core.Point, ok bool) {
	return s.pointer, s.hasPointer
}

func (s *Simulation) Direction() core.Vector { return s.direction }
func (s *Simulation) Score() int { return s.score }
func (s *Simulation) HighScore() int { return s.highScore }
func (s *Simulation) Started() bool { return s.started }
func (s *Simulation) Paused() bool { return s.paused }
func (s *Simulation) Over() bool { return s.over }
func (s *Simulation) Cause() EndCause { return s.cause }

// Elapsed returns the wall-clock time since the run started, or 0 before it.
func (s *Simulation) Elapsed() time.Duration {
	if s.startTime.IsZero() {
		return 0
	}
	return s.clock.Now().Sub(s.startTime)
}
