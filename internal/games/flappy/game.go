// Package flappy implements a Flappy Bird-style game.
// The player falls under gravity, flaps upward on demand and must pass
// through the gap of one wall at a time. Each pass narrows the next gap.
package flappy

import (
	"fmt"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/core"
)

// ID is the identifier used for score storage.
const ID = "flappy"

// Title is the display name of the game.
const Title = "~Flappy~"

// Screen text
const (
	promptStart   = "Press (P) start new game"
	promptQuit    = "Press (Q) exit game"
	gameOverTitle = "~GAME OVER~"
)

// PlayBG is the background of the playing field.
const PlayBG = core.ColorNavy

// Game implements the game logic and its Menu/Playing/End mode machine.
type Game struct {
	cfg       config.FlappyConfig
	rng       Rand
	mode      core.Mode
	frameTime float64 // Milliseconds accumulated since the last fixed step
	player    Player
	obstacle  Obstacle
	score     int
}

// New creates a game in Menu mode.
// The rng places every gap; pass a seeded source for reproducible runs.
func New(cfg config.FlappyConfig, rng Rand) *Game {
	return &Game{
		cfg:      cfg,
		rng:      rng,
		mode:     core.ModeMenu,
		player:   NewPlayer(StartX, StartY),
		obstacle: NewObstacle(cfg.Screen.Width, 0, rng),
	}
}

// Tick handles one rendered frame: it applies input, advances the
// simulation when enough time has accumulated, and draws into dst.
func (g *Game) Tick(in core.Frame, dst core.Surface) core.StepResult {
	quit := false
	switch g.mode {
	case core.ModeMenu:
		quit = g.mainMenu(in, dst)
	case core.ModePlaying:
		g.play(in, dst)
	case core.ModeEnd:
		quit = g.gameOver(in, dst)
	}
	return core.StepResult{State: g.State(), Quit: quit}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Mode:  g.mode,
		Score: g.score,
	}
}

// Player returns a copy of the current player.
func (g *Game) Player() Player {
	return g.player
}

// Obstacle returns a copy of the current obstacle.
func (g *Game) Obstacle() Obstacle {
	return g.obstacle
}

func (g *Game) mainMenu(in core.Frame, dst core.Surface) bool {
	dst.Clear()
	dst.DrawTextCentered(5, Title)
	dst.DrawTextCentered(7, promptStart)
	dst.DrawTextCentered(8, promptQuit)
	return g.handleMenuKey(in.Key)
}

func (g *Game) gameOver(in core.Frame, dst core.Surface) bool {
	dst.Clear()
	dst.DrawTextCentered(5, gameOverTitle)
	dst.DrawTextCentered(6, fmt.Sprintf("Your Score: %d", g.score))
	dst.DrawTextCentered(7, promptStart)
	dst.DrawTextCentered(8, promptQuit)
	return g.handleMenuKey(in.Key)
}

// handleMenuKey applies the start/quit keys shared by Menu and End.
// Returns true when the host should terminate.
func (g *Game) handleMenuKey(k core.Key) bool {
	switch k {
	case core.KeyStart:
		g.restart()
	case core.KeyQuit:
		g.mode = core.ModeEnd
		return true
	}
	return false
}

// restart begins a new run.
func (g *Game) restart() {
	g.player = NewPlayer(StartX, StartY)
	g.obstacle = NewObstacle(g.cfg.Screen.Width, 0, g.rng)
	g.frameTime = 0
	g.score = 0
	g.mode = core.ModePlaying
}

func (g *Game) play(in core.Frame, dst core.Surface) {
	dst.ClearBG(PlayBG)

	// The accumulator is reset to zero, not decremented by the step
	g.frameTime += in.ElapsedMs
	if g.frameTime > g.cfg.Timing.FrameDurationMs {
		g.frameTime = 0
		g.step()
	}

	// Input is sampled every frame, independent of the physics step
	if in.Key == core.KeyImpulse {
		g.player.Fly()
	}

	g.player.Render(dst, g.cfg.Player.Column)
	g.obstacle.Render(dst, g.player.X, g.cfg.Screen.Height)
	dst.DrawText(0, 1, fmt.Sprintf("Score: %d", g.score))
}

// step performs one fixed physics update.
func (g *Game) step() {
	g.player.Update()

	if g.player.Y > g.cfg.Screen.Height || g.obstacle.HitCheck(g.player, g.cfg.Player.Column) {
		g.mode = core.ModeEnd
		return
	}

	if g.player.X+g.cfg.Player.Column == g.obstacle.X {
		g.score++
	}
	if g.obstacle.X < g.player.X {
		g.obstacle = NewObstacle(g.player.X+g.cfg.Screen.Width, g.score, g.rng)
	}
}
