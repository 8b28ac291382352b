package automatic

// Batch orchestration for automatic games: comp vs comp over a pool of
// workers.

import (
	"context"
	"encoding/binary"
	"io"

	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"
	"lukechampine.com/frand"
)

// BatchResult summarizes a batch of games.
type BatchResult struct {
	Games   int
	Tally   map[string]int // wins per color, plus "draw"
	AvgLen  float64
	Results []Result
}

// StartCompVCompGames plays numGames games across threads workers and
// tallies the outcomes. If logWriter is non-nil it receives one CSV
// line per turn played, with a header. Each game gets its own seed
// derived from baseSeed, so a batch is reproducible.
func StartCompVCompGames(ctx context.Context, opts Options, numGames, threads int,
	baseSeed [32]byte, logWriter io.Writer) (*BatchResult, error) {

	log.Debug().Int("games", numGames).Int("threads", threads).
		Msg("starting-comp-vs-comp")

	jobs := make(chan int)
	results := make(chan Result, numGames)
	logChan := make(chan string, 100)

	logDone := make(chan struct{})
	go func() {
		defer close(logDone)
		if logWriter != nil {
			io.WriteString(logWriter, "gameID,turn,onturn,play,nodes\n")
		}
		for line := range logChan {
			if logWriter != nil {
				io.WriteString(logWriter, line)
			}
		}
	}()

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			for gameID := range jobs {
				r, err := NewGameRunner(opts, gameSeed(baseSeed, gameID), logChan)
				if err != nil {
					return err
				}
				results <- r.PlayFull(gameID)
			}
			return nil
		})
	}
	g.Go(func() error {
		defer close(jobs)
		for i := 0; i < numGames; i++ {
			select {
			case jobs <- i:
			case <-ctx.Done():
				log.Info().Msg("got stop signal, exiting early...")
				return ctx.Err()
			}
		}
		return nil
	})

	err := g.Wait()
	close(logChan)
	<-logDone
	close(results)
	if err != nil {
		return nil, err
	}

	br := &BatchResult{Tally: map[string]int{}}
	for res := range results {
		br.Games++
		br.Results = append(br.Results, res)
	}
	br.Tally = lo.CountValuesBy(br.Results, func(r Result) string { return r.Winner })
	br.AvgLen = lo.SumBy(br.Results, func(r Result) float64 { return float64(r.Turns) })
	if br.Games > 0 {
		br.AvgLen /= float64(br.Games)
	}
	log.Info().Interface("tally", br.Tally).Float64("avg-turns", br.AvgLen).
		Msg("all games finished")
	return br, nil
}

// NewSeed returns a fresh random base seed for a batch.
func NewSeed() [32]byte {
	var seed [32]byte
	frand.Read(seed[:])
	return seed
}

// gameSeed derives a per-game seed from the batch seed.
func gameSeed(base [32]byte, gameID int) [32]byte {
	seed := base
	var id [8]byte
	binary.LittleEndian.PutUint64(id[:], uint64(gameID))
	for i := range id {
		seed[i] ^= id[i]
	}
	return seed
}
