package main

import (
	"flag"
	"net/http"
	_ "net/http/pprof"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"tiaoqi/internal/engine"
	"tiaoqi/internal/tiaoqi"
)

func main() {
	timeLimit := flag.Duration("time", 2*time.Second, "time budget per move")
	maxDepth := flag.Int("depth", 0, "max search depth (0 = engine default)")
	maxMoves := flag.Int("maxmoves", 200, "max moves to play")
	pprofAddr := flag.String("pprof", "", "pprof listen address, e.g. localhost:6060")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	if *pprofAddr != "" {
		go func() {
			log.Info().Msgf("pprof listening on %s", *pprofAddr)
			if err := http.ListenAndServe(*pprofAddr, nil); err != nil {
				log.Warn().Msgf("pprof failed: %v", err)
			}
		}()
	}

	e := engine.NewEngine(0)
	st := tiaoqi.NewInitialState()

	for i := 0; i < *maxMoves; i++ {
		log.Info().Msgf("--- move %d, round %d, side %d ---", i+1, st.Round(), st.Turn())

		res, err := e.SearchBestMove(st, engine.SearchConfig{
			MaxDepth:  *maxDepth,
			TimeLimit: *timeLimit,
		})
		if err != nil {
			log.Fatal().Msgf("search failed: %v", err)
		}
		if res.BestMove.IsNull() {
			log.Info().Msg("game over: no moves")
			break
		}

		nps := int64(0)
		if res.TimeUsed > 0 {
			nps = int64(float64(res.Nodes) / res.TimeUsed.Seconds())
		}
		log.Info().Msgf("best move %d->%d, score %d, depth %d, nodes %d, time %v, nps %d",
			res.BestMove.Src, res.BestMove.Dst, res.Score, res.Depth, res.Nodes, res.TimeUsed, nps)

		st.ApplyMove(res.BestMove)

		if st.IsGameOver() {
			log.Info().Msgf("game over at round %d", st.Round())
			log.Info().Msgf("final position: %s", st.Encode())
			break
		}
	}

	log.Info().Msg("selfplay finished")
}
