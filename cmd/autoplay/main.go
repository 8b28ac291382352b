// Command autoplay runs batches of computer-vs-computer games, for
// pitting depths and evaluators against one another.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"draughts/automatic"
	"draughts/config"
)

var (
	cfgFile    = flag.String("config", "", "path to a config file")
	numGames   = flag.Int("games", 10, "number of games to play")
	threads    = flag.Int("threads", 4, "number of concurrent games")
	whiteEval  = flag.String("whiteeval", "", "white's evaluator (default from config)")
	blackEval  = flag.String("blackeval", "", "black's evaluator (default from config)")
	whiteDepth = flag.Int("whitedepth", 0, "white's search depth (default from config)")
	blackDepth = flag.Int("blackdepth", 0, "black's search depth (default from config)")
	openings   = flag.Int("openings", 2, "random plies per side before the engines take over")
	logFile    = flag.String("logfile", "", "write a per-turn CSV log here")
	debugFlag  = flag.Bool("debug", false, "debug logging")
)

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

	opts := automatic.Options{
		WhiteEvaluator: cfg.Evaluator,
		BlackEvaluator: cfg.Evaluator,
		WhiteDepth:     cfg.Depth,
		BlackDepth:     cfg.Depth,
		RandomOpenings: *openings,
		MaxTurns:       cfg.MaxTurns,
	}
	if *whiteEval != "" {
		opts.WhiteEvaluator = *whiteEval
	}
	if *blackEval != "" {
		opts.BlackEvaluator = *blackEval
	}
	if *whiteDepth > 0 {
		opts.WhiteDepth = *whiteDepth
	}
	if *blackDepth > 0 {
		opts.BlackDepth = *blackDepth
	}

	var logWriter io.Writer
	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			log.Fatal().Err(err).Msg("creating log file")
		}
		defer f.Close()
		logWriter = f
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	br, err := automatic.StartCompVCompGames(ctx, opts, *numGames, *threads,
		automatic.NewSeed(), logWriter)
	if err != nil {
		log.Fatal().Err(err).Msg("batch failed")
	}
	fmt.Printf("played %d games (white: %s depth %d, black: %s depth %d)\n",
		br.Games, opts.WhiteEvaluator, opts.WhiteDepth, opts.BlackEvaluator, opts.BlackDepth)
	for _, outcome := range []string{"white", "black", "draw"} {
		fmt.Printf("%8s: %d\n", outcome, br.Tally[outcome])
	}
	fmt.Printf("average game length: %.1f plies\n", br.AvgLen)
}
