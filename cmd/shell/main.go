// Command shell is an interactive checkers console: play against the
// engine, inspect legal moves, or let the engine play itself.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"draughts/alphabeta"
	"draughts/config"
	"draughts/eval"
	"draughts/game"
	"draughts/move"
	"draughts/movegen"
)

var (
	cfgFile   = flag.String("config", "", "path to a config file")
	debugFlag = flag.Bool("debug", false, "debug logging")
)

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func usage(w io.Writer) {
	io.WriteString(w, "commands:\n")
	io.WriteString(w, "show - display the board\n")
	io.WriteString(w, "moves <square> - list legal moves for the piece on a square (e.g. moves b6)\n")
	io.WriteString(w, "play <from> <to> - play a move (e.g. play b6 a5)\n")
	io.WriteString(w, "ai - let the engine play one turn for the side to move\n")
	io.WriteString(w, "auto - let the engine play both sides to the end\n")
	io.WriteString(w, "set depth <n> - set the search depth\n")
	io.WriteString(w, "set eval <material|positional> - set the evaluator\n")
	io.WriteString(w, "new - start a new game\n")
	io.WriteString(w, "exit - quit\n")
}

type shellController struct {
	l      *readline.Instance
	cfg    config.Config
	game   *game.Game
	solver *alphabeta.Solver
	gen    *movegen.Generator
}

func newShellController(cfg config.Config) *shellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mdraughts>\033[0m ",
		HistoryFile:     "/tmp/draughts-readline.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := &shellController{l: l, cfg: cfg, gen: movegen.NewGenerator()}
	sc.newGame()
	return sc
}

func (sc *shellController) showMessage(msg string) {
	io.WriteString(sc.l.Stderr(), msg)
	io.WriteString(sc.l.Stderr(), "\n")
}

func (sc *shellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}

func (sc *shellController) newGame() {
	ev, err := eval.New(sc.cfg.Evaluator)
	if err != nil {
		// The config layer validates names; a bad one here is a bug.
		panic(err)
	}
	sc.solver = &alphabeta.Solver{}
	if err := sc.solver.Init(sc.gen, ev); err != nil {
		panic(err)
	}
	sc.game = game.NewGame()
	sc.game.SetMaxTurns(sc.cfg.MaxTurns)
}

func (sc *shellController) showBoard() {
	sc.showMessage(sc.game.Board().ToDisplayText())
	if sc.game.Playing() {
		sc.showMessage(fmt.Sprintf("%v to move (turn %d)", sc.game.PlayerOnTurn(), sc.game.Turn()))
		return
	}
	if winner, ok := sc.game.Winner(); ok {
		sc.showMessage(fmt.Sprintf("Game over! %v wins!", winner))
	} else {
		sc.showMessage("Game over! It's a draw.")
	}
}

func (sc *shellController) aiTurn() error {
	m, err := sc.game.PlayBestTurn(sc.solver, sc.cfg.Depth)
	if err != nil {
		return err
	}
	if m == nil {
		winner, _ := sc.game.Winner()
		sc.showMessage(fmt.Sprintf("Game over! %v wins due to no available moves!", winner))
		return nil
	}
	sc.showMessage("Engine plays " + m.ShortDescription())
	sc.showBoard()
	return nil
}

func (sc *shellController) handle(line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "help":
		usage(sc.l.Stderr())
	case "show":
		sc.showBoard()
	case "new":
		sc.newGame()
		sc.showBoard()
	case "moves":
		if len(fields) != 2 {
			return fmt.Errorf("moves needs a square, e.g. moves b6")
		}
		pos, err := move.FromBoardCoords(fields[1])
		if err != nil {
			return err
		}
		legal, err := sc.game.ValidMoves(pos.Row, pos.Col)
		if err != nil {
			return err
		}
		if len(legal) == 0 {
			sc.showMessage("no legal moves for that piece")
		}
		for _, m := range legal {
			sc.showMessage(m.ShortDescription())
		}
	case "play":
		if len(fields) != 3 {
			return fmt.Errorf("play needs two squares, e.g. play b6 a5")
		}
		from, err := move.FromBoardCoords(fields[1])
		if err != nil {
			return err
		}
		to, err := move.FromBoardCoords(fields[2])
		if err != nil {
			return err
		}
		legal, err := sc.game.ValidMoves(from.Row, from.Col)
		if err != nil {
			return err
		}
		for i := range legal {
			if legal[i].To == to {
				if err := sc.game.PlayMove(&legal[i]); err != nil {
					return err
				}
				sc.showBoard()
				if sc.game.Playing() {
					return sc.aiTurn()
				}
				return nil
			}
		}
		return fmt.Errorf("%s %s is not a legal move", fields[1], fields[2])
	case "ai":
		if !sc.game.Playing() {
			return game.ErrGameOver
		}
		return sc.aiTurn()
	case "auto":
		for sc.game.Playing() {
			if err := sc.aiTurn(); err != nil {
				return err
			}
		}
	case "set":
		if len(fields) != 3 {
			return fmt.Errorf("usage: set depth <n> | set eval <name>")
		}
		switch fields[1] {
		case "depth":
			var d int
			if _, err := fmt.Sscanf(fields[2], "%d", &d); err != nil || d < 1 {
				return fmt.Errorf("depth must be a positive integer")
			}
			sc.cfg.Depth = d
		case "eval":
			if _, err := eval.New(fields[2]); err != nil {
				return err
			}
			sc.cfg.Evaluator = fields[2]
			sc.newGame()
			sc.showMessage("evaluator changed; game restarted")
		default:
			return fmt.Errorf("no such option: %s", fields[1])
		}
	default:
		return fmt.Errorf("unknown command %q; try help", fields[0])
	}
	return nil
}

func main() {
	flag.Parse()
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	cfg, err := config.Load(*cfgFile)
	if err != nil {
		log.Fatal().Err(err).Msg("loading config")
	}
	if *debugFlag || cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	sc := newShellController(cfg)
	sc.showBoard()

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				break
			}
			continue
		} else if err == io.EOF {
			break
		}
		line = strings.TrimSpace(line)
		if line == "exit" {
			break
		}
		if err := sc.handle(line); err != nil {
			sc.showError(err)
		}
	}
	log.Debug().Msg("Exiting readline loop...")
}
