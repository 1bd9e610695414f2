package registry

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/snake-glide/internal/config"
	"github.com/vovakirdan/snake-glide/internal/core"
	"github.com/vovakirdan/snake-glide/internal/games/snake"
	"github.com/vovakirdan/snake-glide/internal/storage"
)

// Session is everything a frontend needs to start playing.
type Session struct {
	Store   *storage.Store // nil plays without persistence
	Config  config.SnakeConfig
	Runtime core.RuntimeConfig
	Logger  *log.Logger
}

// Log returns the session logger, or a logger that discards everything.
func (s Session) Log() *log.Logger {
	if s.Logger == nil {
		return log.New(io.Discard)
	}
	return s.Logger
}

// Env builds the simulation environment for this session: the persisted best
// score and a hook that raises it every time a run beats it.
func (s Session) Env() snake.Env {
	logger := s.Log()
	env := snake.Env{
		Clock:  core.SystemClock{},
		Points: core.NewUniformSource(s.Runtime.ResolveSeed()),
	}
	if s.Store == nil {
		return env
	}

	best, err := s.Store.BestScore(snake.GameID)
	if err != nil {
		logger.Warn("could not read best score", "error", err)
	}
	env.HighScore = best

	store := s.Store
	env.OnHighScore = func(score int) {
		if err := store.RaiseBestScore(snake.GameID, score); err != nil {
			logger.Warn("could not store best score", "score", score, "error", err)
			return
		}
		logger.Debug("best score raised", "score", score)
	}
	return env
}

// NewSimulation creates a simulation for bounds wired to this session.
func (s Session) NewSimulation(bounds core.Bounds) *snake.Simulation {
	return snake.NewSimulation(s.Config, bounds, s.Env())
}

// SaveRun logs a finished run and appends it to the history.
// Storage failures are logged and otherwise ignored.
func (s Session) SaveRun(snap snake.Snapshot) {
	logger := s.Log()
	logger.Info("run finished",
		"score", snap.Score,
		"length", snap.Length(),
		"cause", snap.Cause,
		"elapsed", snap.Elapsed.Round(time.Millisecond),
	)
	logger.Debug("final state", "state", snap.DebugState())
	if s.Store == nil {
		return
	}

	_, err := s.Store.SaveRun(storage.Run{
		GameID:   snake.GameID,
		Score:    snap.Score,
		Length:   snap.Length(),
		Duration: snap.Elapsed,
	})
	if err != nil {
		logger.Warn("could not save run", "error", err)
	}
}
