// chessgraph-ingest loads one or more PGN sources (local files, archives,
// or URLs) into a chessgraph store, one game at a time (C7).
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/balparda/chessgraph/internal/archive"
	"github.com/balparda/chessgraph/internal/config"
	"github.com/balparda/chessgraph/internal/ingest"
	"github.com/balparda/chessgraph/internal/parser"
	"github.com/balparda/chessgraph/internal/store"
)

var (
	dataDir     = flag.String("data", "", "data directory holding the store (default: "+config.EnvDataDir+" or .)")
	cacheDir    = flag.String("cache", "", "cache directory for downloaded archives (default: "+config.EnvCacheDir+" or .)")
	ignoreCache = flag.Bool("ignore-cache", false, "re-download sources even if already cached")
	verbose     = flag.Bool("v", false, "enable debug logging")
)

func main() {
	flag.Usage = usage
	flag.Parse()

	sources := flag.Args()
	if len(sources) == 0 {
		fmt.Fprintln(os.Stderr, "chessgraph-ingest: at least one source is required")
		usage()
		os.Exit(2)
	}

	level := zerolog.InfoLevel
	if *verbose {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()

	cfg := config.New()
	if *dataDir != "" {
		cfg.DataDir = *dataDir
	}
	if *cacheDir != "" {
		cfg.CacheDir = *cacheDir
	}
	cfg.IgnoreCache = *ignoreCache

	dbPath := filepath.Join(cfg.DataDir, "chessgraph.db")
	s, err := store.Open(dbPath, false, log)
	if err != nil {
		log.Fatal().Err(err).Msg("opening store")
	}
	defer s.Close()

	cache, err := archive.OpenCache(filepath.Join(cfg.CacheDir, "archive-cache.gob"))
	if err != nil {
		log.Fatal().Err(err).Msg("opening archive cache")
	}

	pipeline := ingest.New(s, log)

	var totalGames, totalNew, totalKnown, totalErrors int
	for _, source := range sources {
		ok, new, known, errs := ingestOne(context.Background(), pipeline, cfg, cache, log, source)
		totalGames += ok + known + errs
		totalNew += new
		totalKnown += known
		totalErrors += errs
	}

	log.Info().
		Int("games", totalGames).
		Int("new_positions", totalNew).
		Int("already_known", totalKnown).
		Int("errors", totalErrors).
		Msg("ingest complete")
}

func ingestOne(ctx context.Context, pipeline *ingest.Pipeline, cfg *config.Config, cache *archive.Cache, log zerolog.Logger, source string) (ok, newPositions, known, errored int) {
	fetched, err := archive.Fetch(source, cfg.CacheDir, cache, cfg.IgnoreCache)
	if err != nil {
		log.Error().Err(err).Str("source", source).Msg("fetching source")
		return 0, 0, 0, 1
	}

	extracted, err := archive.Extract(fetched, os.TempDir())
	if err != nil {
		extracted = fetched // not a compressed container: ingest it directly
	} else {
		defer os.Remove(extracted)
	}

	var logBuf bytes.Buffer
	parseCfg := config.NewConfig()
	parseCfg.LogFile = &logBuf

	splitErr := archive.Split(extracted, func(chunk string) error {
		logBuf.Reset()
		p := parser.NewParser(bytes.NewBufferString(chunk), parseCfg)
		game, err := p.ParseGame()
		if err != nil || game == nil {
			return nil
		}
		libraryErrored := logBuf.Len() > 0
		res, err := pipeline.Ingest(ctx, chunk, game, libraryErrored)
		if err != nil {
			log.Error().Err(err).Str("source", source).Msg("ingest failed")
			errored++
			return nil
		}
		switch {
		case res.AlreadyKnown:
			known++
		case res.ErrorCategory != 0:
			errored++
		default:
			ok++
			newPositions += res.NewPositions
		}
		return nil
	})
	if splitErr != nil {
		log.Error().Err(splitErr).Str("source", source).Msg("splitting source")
	}
	return ok, newPositions, known, errored
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessgraph-ingest [options] <source> [source...]\n\n")
	fmt.Fprintf(os.Stderr, "Each source is a local PGN/archive path or a URL to one.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
