// Package enginepool evaluates a list of position hashes by distributing
// them, in bounded batches, across worker processes that each own one
// long-lived UCI engine subprocess (C10). It is grounded on the
// teacher's own internal/worker.Pool (channel + WaitGroup + atomic
// stop-flag shape), generalized from an in-process goroutine pool
// processing one chess.Game at a time into a batch-queue pool whose
// workers reconstruct a FEN (C8), call out to an engine subprocess, and
// persist the verdict via the store.
package enginepool

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"github.com/balparda/chessgraph/internal/config"
	cgerrors "github.com/balparda/chessgraph/internal/errors"
	"github.com/balparda/chessgraph/internal/fen"
	"github.com/balparda/chessgraph/internal/store"
	"github.com/balparda/chessgraph/internal/uci"
	"github.com/balparda/chessgraph/internal/verdict"
	"github.com/balparda/chessgraph/internal/zobrist"
)

// batchSentinel, when popped from the queue, tells a worker to stop.
var batchSentinel []zobrist.Hash

// Pool evaluates position hashes against an external UCI-style engine.
type Pool struct {
	workers     int
	depth       int
	enginePath  string
	taskTimeout time.Duration
	joinTimeout time.Duration
	logDir      string
	store       *store.Store
	log         zerolog.Logger

	done int64 // shared progress counter, write-once-per-task by its worker
}

// New builds a Pool from cfg. Worker count is clamped to
// [1, config.MaxWorkerCount]; depth is clamped to at least
// config.DefaultMinDepth.
func New(cfg *config.Config, s *store.Store, log zerolog.Logger) *Pool {
	workers := cfg.WorkerCount
	if workers < 1 {
		workers = 1
	}
	if workers > config.MaxWorkerCount {
		workers = config.MaxWorkerCount
	}
	depth := cfg.EngineDepth
	if depth < config.DefaultMinDepth {
		depth = config.DefaultMinDepth
	}
	timeout := time.Duration(cfg.EngineTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = config.DefaultEngineTimeout * time.Second
	}
	return &Pool{
		workers:     workers,
		depth:       depth,
		enginePath:  cfg.EnginePath,
		taskTimeout: timeout,
		joinTimeout: config.DefaultJoinTimeout * time.Second,
		logDir:      cfg.LogDir,
		store:       s,
		log:         log,
	}
}

// Done returns the number of hashes evaluated so far. Safe to read
// concurrently with Run.
func (p *Pool) Done() int64 {
	return atomic.LoadInt64(&p.done)
}

// Run evaluates every hash in hashes, returning once all batches have
// been processed or every worker has exited. Single-worker mode runs
// inline on the caller's goroutine, for testability (§4.10).
func (p *Pool) Run(ctx context.Context, hashes []zobrist.Hash) error {
	if len(hashes) == 0 {
		return nil
	}
	if p.workers == 1 {
		return p.runInline(ctx, hashes)
	}
	return p.runParallel(ctx, hashes)
}

func (p *Pool) runInline(ctx context.Context, hashes []zobrist.Hash) error {
	engine, err := uci.Start(p.enginePath)
	if err != nil {
		return err
	}
	defer engine.Close()
	for _, h := range hashes {
		if err := p.evaluateOne(ctx, engine, h); err != nil {
			p.log.Error().Err(err).Str("hash", h.String()).Msg("engine evaluation failed")
			continue
		}
		atomic.AddInt64(&p.done, 1)
	}
	return nil
}

func chunk(hashes []zobrist.Hash, size int) [][]zobrist.Hash {
	var out [][]zobrist.Hash
	for i := 0; i < len(hashes); i += size {
		end := i + size
		if end > len(hashes) {
			end = len(hashes)
		}
		out = append(out, hashes[i:end])
	}
	return out
}

func (p *Pool) runParallel(ctx context.Context, hashes []zobrist.Hash) error {
	batches := chunk(hashes, config.BatchSize(len(hashes)))
	queue := make(chan []zobrist.Hash, len(batches)+p.workers)
	for _, b := range batches {
		queue <- b
	}
	for i := 0; i < p.workers; i++ {
		queue <- batchSentinel
	}

	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go p.runWorker(ctx, i, queue, &wg)
	}

	if waitTimeout(&wg, p.joinTimeout) {
		return nil
	}
	// Some workers are still alive past the join timeout: give each one
	// more sentinel and join once more (§5 "join timeouts are retried
	// once after posting a sentinel").
	for i := 0; i < p.workers; i++ {
		select {
		case queue <- batchSentinel:
		default:
		}
	}
	if waitTimeout(&wg, p.joinTimeout) {
		return nil
	}
	return cgerrors.Wrapf(cgerrors.ErrInvalidConfig, "engine pool: %d workers did not join after two timeouts", p.workers)
}

func (p *Pool) runWorker(ctx context.Context, id int, queue chan []zobrist.Hash, wg *sync.WaitGroup) {
	defer wg.Done()

	logw, closeLog := p.openWorkerLog(id)
	defer closeLog()

	engine, err := uci.Start(p.enginePath)
	if err != nil {
		fmt.Fprintf(logw, "worker %d: failed to start engine: %v\n", id, err)
		return
	}
	defer engine.Close()

	for {
		select {
		case batch, ok := <-queue:
			if !ok || batch == nil {
				return
			}
			for _, h := range batch {
				if err := p.evaluateOne(ctx, engine, h); err != nil {
					fmt.Fprintf(logw, "worker %d: hash %s: %v\n", id, h, err)
					continue
				}
				atomic.AddInt64(&p.done, 1)
			}
		case <-time.After(p.taskTimeout):
			// Per-queue-take timeout ends this worker (§4.10).
			return
		case <-ctx.Done():
			return
		}
	}
}

func (p *Pool) evaluateOne(ctx context.Context, engine *uci.Engine, h zobrist.Hash) error {
	recon, err := fen.Reconstruct(ctx, p.store, h)
	if err != nil {
		return cgerrors.Wrapf(err, "reconstructing FEN for %s", h)
	}
	v, err := engine.Analyze(ctx, recon.FEN, p.depth)
	if err != nil {
		return cgerrors.Wrapf(err, "engine analysis of %s", h)
	}
	return p.store.UpdateEvaluation(ctx, h, verdict.Verdict{Depth: v.Depth, BestMove: v.BestMove, Mate: v.Mate, Score: v.Score})
}

func (p *Pool) openWorkerLog(id int) (*os.File, func()) {
	if p.logDir == "" {
		return os.Stderr, func() {}
	}
	path := filepath.Join(p.logDir, fmt.Sprintf("worker-%d.log", id))
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return os.Stderr, func() {}
	}
	return f, func() { f.Close() }
}

func waitTimeout(wg *sync.WaitGroup, d time.Duration) bool {
	done := make(chan struct{})
	go func() {
		defer close(done)
		wg.Wait()
	}()
	select {
	case <-done:
		return true
	case <-time.After(d):
		return false
	}
}
