// chessgraph-evaluate runs an external UCI engine over unevaluated
// branching positions in the store, distributing work across a pool of
// engine worker processes (C10).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/balparda/chessgraph/internal/config"
	"github.com/balparda/chessgraph/internal/enginepool"
	"github.com/balparda/chessgraph/internal/store"
	"github.com/balparda/chessgraph/internal/zobrist"
)

var (
	dataDir       = flag.String("data", "", "data directory holding the store (default: "+config.EnvDataDir+" or .)")
	enginePath    = flag.String("engine", "", "path to the UCI engine binary (required)")
	depthFlag     = flag.String("depth", "club", "search depth: an integer, or one of beginner/club/expert/super")
	workers       = flag.Int("workers", config.DefaultWorkerCount, "number of engine worker processes")
	timeoutSecs   = flag.Int("timeout", config.DefaultEngineTimeout, "per-task engine timeout in seconds")
	skipEvaluated = flag.Bool("skip-evaluated", true, "skip positions that already carry a verdict")
	logDir        = flag.String("log-dir", "", "directory for per-worker log files (default: stderr)")
	verbose       = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	if *enginePath == "" {
		fmt.Fprintln(os.Stderr, "chessgraph-evaluate: -engine is required")
		usage()
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	depth, err := config.ParseDepthFlag(*depthFlag)
	if err != nil {
		log.Fatal().Err(err).Msg("invalid -depth")
	}

	cfg := config.New()
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	cfg.EnginePath = *enginePath
	cfg.EngineDepth = depth
	cfg.WorkerCount = *workers
	cfg.EngineTimeoutSeconds = *timeoutSecs
	cfg.LogDir = *logDir
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	dbPath := filepath.Join(cfg.DataDir, "chessgraph.db")
	s, err := store.Open(dbPath, false, log)
	if err != nil {
		log.Fatal().Err(err).Msg("opening store")
	}
	defer s.Close()

	ctx := context.Background()
	byPly, err := s.BranchingPositions(ctx, *skipEvaluated)
	if err != nil {
		log.Fatal().Err(err).Msg("listing branching positions")
	}

	var hashes []zobrist.Hash
	for _, byHash := range byPly {
		for hashHex := range byHash {
			h, err := zobrist.FromHex(hashHex)
			if err != nil {
				log.Error().Err(err).Str("hash", hashHex).Msg("skipping malformed hash")
				continue
			}
			hashes = append(hashes, h)
		}
	}
	log.Info().Int("positions", len(hashes)).Msg("starting evaluation")

	pool := enginepool.New(cfg, s, log)
	if err := pool.Run(ctx, hashes); err != nil {
		log.Fatal().Err(err).Msg("evaluation failed")
	}
	log.Info().Int64("evaluated", pool.Done()).Msg("evaluation complete")
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessgraph-evaluate -engine <path> [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
