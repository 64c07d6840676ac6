// Package flappy implements Flappy Snickers, a Flappy Bird-style game.
// The player keeps an avatar airborne and steers it through gaps between
// scrolling columns. Frontends feed latched input into Step once per frame
// and draw the result through Render.
package flappy

import (
	"math/rand"

	"github.com/vovakirdan/flappy-snickers/internal/assets"
	"github.com/vovakirdan/flappy-snickers/internal/config"
	"github.com/vovakirdan/flappy-snickers/internal/core"
)

// Phase is the top-level game state.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "gameover"
	default:
		return "unknown"
	}
}

// Leaderboard is the remote score service. Both calls must return without
// blocking; work happens in the background.
type Leaderboard interface {
	// Submit records a score. Failures are handled by the implementation.
	Submit(name string, score int)

	// FetchTop requests the best scores. The channel yields one result and
	// is closed; a closed channel without a value means unavailable.
	FetchTop(limit int) <-chan []core.ScoreEntry
}

// Game is the state machine around a Simulation.
type Game struct {
	cfg    config.FlappyConfig
	rng    *rand.Rand
	sim    *Simulation
	phase  Phase
	assets assets.Set

	caption       string
	board         Leaderboard
	playerName    string
	needsInitials bool
	initialsDraft string
	pendingTop    <-chan []core.ScoreEntry
	topScores     []core.ScoreEntry
}

// New creates a game in the Start phase. rng drives obstacle placement and
// game over captions; pass a fixed seed for reproducible runs.
func New(cfg config.FlappyConfig, rng *rand.Rand) *Game {
	return &Game{
		cfg:    cfg,
		rng:    rng,
		sim:    NewSimulation(cfg, rng),
		phase:  PhaseStart,
		assets: assets.Set{Avatar: assets.Missing("avatar"), Obstacle: assets.Missing("obstacle")},
	}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Snickers"
}

// SetLeaderboard attaches the score service. nil disables it.
func (g *Game) SetLeaderboard(lb Leaderboard) {
	g.board = lb
}

// SetAssets attaches sprites. Sprites that are not Ready are drawn as shapes.
func (g *Game) SetAssets(set assets.Set) {
	g.assets = set
}

// SetPlayerName sets the initials used for submissions. With a name set,
// scores are submitted without prompting.
func (g *Game) SetPlayerName(name string) {
	g.playerName = core.NormalizeName(name)
}

// Step consumes the input latched since the previous frame and advances
// one frame. A frame that starts a session does not also simulate.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.pollLeaderboard()

	if in.Has(core.ActionFlap) {
		if g.activate() {
			return core.StepResult{State: g.State()}
		}
	}

	if g.phase != PhasePlaying {
		return core.StepResult{State: g.State()}
	}

	out := g.sim.Step()
	result := core.StepResult{Passed: out.Passed}
	if out.Terminal {
		g.endSession()
		result.Ended = true
	}
	result.State = g.State()
	return result
}

// activate applies one activation and reports whether it changed phase.
func (g *Game) activate() bool {
	switch g.phase {
	case PhasePlaying:
		g.sim.Flap()
		return false
	case PhaseStart, PhaseGameOver:
		if g.needsInitials {
			return false
		}
		g.startSession()
		return true
	}
	return false
}

func (g *Game) startSession() {
	g.sim.Reset()
	g.phase = PhasePlaying
	g.caption = ""
	g.pendingTop = nil
	g.topScores = nil
	g.initialsDraft = ""
}

func (g *Game) endSession() {
	g.phase = PhaseGameOver
	g.caption = gameOverCaptions[g.rng.Intn(len(gameOverCaptions))]

	score := g.sim.Score()
	if score > 0 && g.board != nil {
		if g.playerName == "" {
			g.needsInitials = true
			return
		}
		g.board.Submit(g.playerName, score)
	}
	g.requestLeaderboard()
}

// NeedsInitials reports whether the game over screen waits for initials.
// Activation is ignored until SubmitInitials or SkipInitials is called.
func (g *Game) NeedsInitials() bool {
	return g.needsInitials
}

// SetInitialsDraft shows partially typed initials in the prompt.
func (g *Game) SetInitialsDraft(draft string) {
	g.initialsDraft = core.NormalizeName(draft)
}

// SubmitInitials closes the prompt and submits the final score under name.
// An empty name after normalization skips the submission.
func (g *Game) SubmitInitials(name string) {
	if !g.needsInitials {
		return
	}
	g.needsInitials = false
	g.initialsDraft = ""

	if n := core.NormalizeName(name); n != "" && g.board != nil {
		g.board.Submit(n, g.sim.Score())
	}
	g.requestLeaderboard()
}

// SkipInitials closes the prompt without submitting.
func (g *Game) SkipInitials() {
	if !g.needsInitials {
		return
	}
	g.needsInitials = false
	g.initialsDraft = ""
	g.requestLeaderboard()
}

func (g *Game) requestLeaderboard() {
	if g.board == nil || g.cfg.Leaderboard.DisplayLimit == 0 {
		return
	}
	g.pendingTop = g.board.FetchTop(g.cfg.Leaderboard.DisplayLimit)
}

// pollLeaderboard picks up a finished fetch without blocking.
func (g *Game) pollLeaderboard() {
	if g.pendingTop == nil {
		return
	}
	select {
	case rows, ok := <-g.pendingTop:
		g.pendingTop = nil
		if ok && g.phase == PhaseGameOver {
			g.topScores = rows
		}
	default:
	}
}

// FieldSize returns the logical play field dimensions frontends scale from.
func (g *Game) FieldSize() (w, h float64) {
	return g.cfg.Field.Width, g.cfg.Field.Height
}

// Phase returns the current phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// TopScores returns the leaderboard rows shown on the game over screen.
func (g *Game) TopScores() []core.ScoreEntry {
	return g.topScores
}

// Caption returns the game over caption of the last session.
func (g *Game) Caption() string {
	return g.caption
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.sim.Score(),
		HighScore: g.sim.HighScore(),
		Playing:   g.phase == PhasePlaying,
		GameOver:  g.phase == PhaseGameOver,
	}
}
