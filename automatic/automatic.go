// Package automatic plays computer-vs-computer checkers games, for
// comparing search depths and evaluators against each other in bulk.
package automatic

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"lukechampine.com/frand"

	"draughts/alphabeta"
	"draughts/eval"
	"draughts/game"
	"draughts/movegen"
)

// Options configures a runner. The two sides may search to different
// depths and score with different evaluators.
type Options struct {
	WhiteEvaluator string
	BlackEvaluator string
	WhiteDepth     int
	BlackDepth     int
	// RandomOpenings is the number of random plies each side plays
	// before handing the game to the engines. Both engines are fully
	// deterministic, so without this every game in a batch is
	// identical.
	RandomOpenings int
	// MaxTurns caps game length; past it the game is a draw.
	MaxTurns int
}

// A Result describes one finished game.
type Result struct {
	Winner string // "white", "black" or "draw"
	Turns  int
}

// GameRunner is the master struct for the automatic game logic. A
// runner owns its game and solvers and plays one game at a time, so
// each concurrent worker needs its own.
type GameRunner struct {
	opts    Options
	gen     *movegen.Generator
	solvers [2]*alphabeta.Solver
	depths  [2]int
	game    *game.Game
	rng     *frand.RNG
	logchan chan<- string
}

// NewGameRunner instantiates and initializes a game runner. logchan may
// be nil; if set, the runner sends one CSV line per turn played. seed
// drives the random openings.
func NewGameRunner(opts Options, seed [32]byte, logchan chan<- string) (*GameRunner, error) {
	r := &GameRunner{
		opts:    opts,
		gen:     movegen.NewGenerator(),
		depths:  [2]int{opts.WhiteDepth, opts.BlackDepth},
		rng:     frand.NewCustom(seed[:], 1024, 12),
		logchan: logchan,
	}
	for i, name := range []string{opts.WhiteEvaluator, opts.BlackEvaluator} {
		ev, err := eval.New(name)
		if err != nil {
			return nil, err
		}
		r.solvers[i] = &alphabeta.Solver{}
		if err = r.solvers[i].Init(r.gen, ev); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// PlayFull plays a single game to completion and returns its result.
func (r *GameRunner) PlayFull(gameID int) Result {
	r.game = game.NewGame()
	if r.opts.MaxTurns != 0 {
		r.game.SetMaxTurns(r.opts.MaxTurns)
	}
	r.playRandomOpenings()
	for r.game.Playing() {
		onTurn := r.game.PlayerOnTurn()
		solver := r.solvers[onTurn]
		played, err := r.game.PlayBestTurn(solver, r.depths[onTurn])
		if err != nil {
			// Only reachable if the runner keeps playing a finished
			// game, which would be a bug here.
			panic(err)
		}
		if played != nil && r.logchan != nil {
			r.logchan <- fmt.Sprintf("%d,%d,%s,%s,%d\n",
				gameID, r.game.Turn(), onTurn, played.ShortDescription(), solver.Nodes())
		}
	}
	res := Result{Winner: "draw", Turns: r.game.Turn()}
	if winner, ok := r.game.Winner(); ok {
		res.Winner = winner.String()
	}
	log.Debug().Int("game", gameID).Str("winner", res.Winner).
		Int("turns", res.Turns).Msg("game-over")
	return res
}

// playRandomOpenings plays the configured number of random plies for
// each side, alternating, to vary the batch's starting positions.
func (r *GameRunner) playRandomOpenings() {
	for i := 0; i < 2*r.opts.RandomOpenings && r.game.Playing(); i++ {
		moves := r.gen.MovesForSide(r.game.Board(), r.game.PlayerOnTurn())
		if len(moves) == 0 {
			return
		}
		m := moves[r.rng.Intn(len(moves))]
		if err := r.game.PlayMove(&m); err != nil {
			panic(err)
		}
	}
}
