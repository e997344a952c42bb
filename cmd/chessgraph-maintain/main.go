// chessgraph-maintain runs the store's housekeeping passes: deduplication
// (C9) and, optionally, a read-only integrity check (C11).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/balparda/chessgraph/internal/config"
	"github.com/balparda/chessgraph/internal/dedup"
	"github.com/balparda/chessgraph/internal/integrity"
	"github.com/balparda/chessgraph/internal/store"
)

var (
	dataDir      = flag.String("data", "", "data directory holding the store (default: "+config.EnvDataDir+" or .)")
	skipDedup    = flag.Bool("skip-dedup", false, "skip the deduplication pass")
	checkOnly    = flag.Bool("integrity", false, "run the integrity check instead of deduplication")
	softPlyLimit = flag.Int("soft-ply-limit", config.DefaultSoftPlyLimit, "ply count at/above which matching players alone merge two games")
	hardPlyLimit = flag.Int("hard-ply-limit", config.DefaultHardPlyLimit, "ply count at/above which identical move sequences merge unconditionally")
	verbose      = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	cfg := config.New()
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	cfg.SoftPlyLimit = *softPlyLimit
	cfg.HardPlyLimit = *hardPlyLimit
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}

	dbPath := filepath.Join(cfg.DataDir, "chessgraph.db")
	s, err := store.Open(dbPath, *checkOnly, log)
	if err != nil {
		log.Fatal().Err(err).Msg("opening store")
	}
	defer s.Close()

	ctx := context.Background()

	if *checkOnly {
		report, err := integrity.Run(ctx, s, func(line integrity.Line) {
			fmt.Println(string(line))
		})
		if err != nil {
			log.Fatal().Err(err).Msg("integrity check failed")
		}
		log.Info().
			Int("ok_games", report.OKGames).
			Int("error_games", report.ErrorGames).
			Int("unreachable", len(report.Unreachable)).
			Int("gameless_leaves", len(report.GamelessLeaves)).
			Msg("integrity check complete")
		return
	}

	if *skipDedup {
		return
	}
	actions, err := dedup.Run(ctx, s, dedup.Thresholds{Soft: cfg.SoftPlyLimit, Hard: cfg.HardPlyLimit})
	if err != nil {
		log.Fatal().Err(err).Msg("deduplication failed")
	}
	log.Info().Int("merged", len(actions)).Msg("deduplication complete")
	for _, a := range actions {
		log.Debug().Str("dup_id", a.DupID).Str("primary_id", a.PrimaryID).Msg("merged duplicate")
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessgraph-maintain [options]\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
