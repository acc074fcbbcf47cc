// Package platform connects the flappy game to the terminal hosts.
// A Session owns one game and its side effects (logging, the score
// ledger); a Host owns the terminal, the clock and the input device.
package platform

import (
	"context"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/logging"
)

// ScoreSaver records finished runs. *storage.Store satisfies it.
type ScoreSaver interface {
	SaveScore(gameID string, score int) (int64, error)
}

// Host drives a session from a real terminal until the player quits
// or ctx is cancelled.
type Host interface {
	// Name is the value accepted by --backend.
	Name() string

	// Description is a one-line summary for listings.
	Description() string

	Run(ctx context.Context, s *Session) error
}

// Session wraps a game for any host.
type Session struct {
	game   *flappy.Game
	cfg    config.FlappyConfig
	store  ScoreSaver
	logger *log.Logger
	last   core.GameState
	saved  int
}

// NewSession creates a session with a fresh game in Menu mode.
// store may be nil to disable the ledger; a nil logger discards output.
func NewSession(cfg config.FlappyConfig, rng flappy.Rand, store ScoreSaver, logger *log.Logger) *Session {
	if logger == nil {
		logger = logging.Discard()
	}
	g := flappy.New(cfg, rng)
	return &Session{
		game:   g,
		cfg:    cfg,
		store:  store,
		logger: logger,
		last:   g.State(),
	}
}

// Tick forwards one frame to the game and handles the transitions it causes.
func (s *Session) Tick(in core.Frame, dst core.Surface) core.StepResult {
	res := s.game.Tick(in, dst)

	if res.State.Mode != s.last.Mode {
		s.logger.Debug("mode change", "from", s.last.Mode, "to", res.State.Mode)
		if s.last.Mode == core.ModePlaying && res.State.Mode == core.ModeEnd {
			s.finishRun(res.State.Score)
		}
	}
	if res.Quit {
		s.logger.Info("quit requested", "mode", s.last.Mode)
	}

	s.last = res.State
	return res
}

// finishRun records a run that just ended. Zero scores are not kept.
func (s *Session) finishRun(score int) {
	s.logger.Info("run finished", "score", score)
	if score <= 0 || s.store == nil {
		return
	}

	id, err := s.store.SaveScore(flappy.ID, score)
	if err != nil {
		s.logger.Warn("could not save score", "score", score, "error", err)
		return
	}
	s.saved++
	s.logger.Info("score saved", "id", id, "score", score)
}

// Config returns the configuration the game runs with.
func (s *Session) Config() config.FlappyConfig {
	return s.cfg
}

// State returns the state after the most recent tick.
func (s *Session) State() core.GameState {
	return s.last
}

// Saved returns how many runs this session has written to the ledger.
func (s *Session) Saved() int {
	return s.saved
}

// Logger returns the session logger for hosts to share.
func (s *Session) Logger() *log.Logger {
	return s.logger
}
