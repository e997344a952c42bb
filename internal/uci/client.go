// Package uci is a minimal transport client for a UCI-compatible chess
// engine subprocess: start it, hand it a position, ask for a move at a
// given depth, and parse the verdict back out of its info/bestmove
// lines. Grounded on the brighamskarda-chess uci package's clientProgram
// (os/exec stdin/stdout/stderr pipes around a long-lived engine process),
// reworked from a general-purpose protocol client into the narrow
// search-and-parse-verdict shape the engine pool needs.
package uci

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strconv"
	"strings"
	"sync"

	cgerrors "github.com/balparda/chessgraph/internal/errors"
	"github.com/balparda/chessgraph/internal/ply"
	"github.com/balparda/chessgraph/internal/verdict"
)

// Engine is one long-lived UCI engine subprocess. It is not safe for
// concurrent use by more than one caller: the worker pool gives each
// worker its own Engine.
type Engine struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	stdout *bufio.Scanner
	mu     sync.Mutex
}

// Start launches the engine binary at path and performs the "uci" /
// "isready" handshake.
func Start(path string) (*Engine, error) {
	cmd := exec.Command(path)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, cgerrors.Wrap(err, "opening engine stdin")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, cgerrors.Wrap(err, "opening engine stdout")
	}
	if err := cmd.Start(); err != nil {
		return nil, cgerrors.Wrapf(err, "starting engine %s", path)
	}

	e := &Engine{cmd: cmd, stdin: stdin, stdout: bufio.NewScanner(stdout)}
	e.stdout.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if err := e.send("uci"); err != nil {
		return nil, err
	}
	if err := e.waitFor("uciok"); err != nil {
		return nil, err
	}
	if err := e.send("isready"); err != nil {
		return nil, err
	}
	if err := e.waitFor("readyok"); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Engine) send(line string) error {
	_, err := fmt.Fprintln(e.stdin, line)
	if err != nil {
		return cgerrors.Wrap(err, "writing to engine")
	}
	return nil
}

func (e *Engine) waitFor(token string) error {
	for e.stdout.Scan() {
		if strings.Contains(e.stdout.Text(), token) {
			return nil
		}
	}
	if err := e.stdout.Err(); err != nil {
		return cgerrors.Wrap(err, "reading from engine")
	}
	return cgerrors.Wrapf(cgerrors.ErrParseFailure, "engine closed its output before sending %q", token)
}

// Analyze sets fen as the current position, requests a search to depth,
// and parses the resulting bestmove/score lines into a Verdict. ctx only
// bounds this one call; there is no cooperative mid-search cancellation,
// per §4.10's "no ordering guarantees, no mid-task cancellation".
func (e *Engine) Analyze(ctx context.Context, fen string, depth int) (verdict.Verdict, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.send(fmt.Sprintf("position fen %s", fen)); err != nil {
		return verdict.Verdict{}, err
	}
	if err := e.send(fmt.Sprintf("go depth %d", depth)); err != nil {
		return verdict.Verdict{}, err
	}

	done := make(chan struct{})
	var v verdict.Verdict
	var readErr error
	go func() {
		defer close(done)
		v, readErr = e.readUntilBestMove(depth)
	}()

	select {
	case <-ctx.Done():
		return verdict.Verdict{}, ctx.Err()
	case <-done:
		return v, readErr
	}
}

func (e *Engine) readUntilBestMove(requestedDepth int) (verdict.Verdict, error) {
	v := verdict.Verdict{Depth: requestedDepth}
	for e.stdout.Scan() {
		line := e.stdout.Text()
		if strings.HasPrefix(line, "info ") {
			parseInfoLine(line, &v)
			continue
		}
		if strings.HasPrefix(line, "bestmove ") {
			fields := strings.Fields(line)
			if len(fields) >= 2 && fields[1] != "(none)" {
				move, err := parseUCIMove(fields[1])
				if err == nil {
					if encoded, err := ply.Encode(move); err == nil {
						v.BestMove = int(encoded)
					}
				}
			}
			return v, nil
		}
	}
	if err := e.stdout.Err(); err != nil {
		return v, cgerrors.Wrap(err, "reading engine analysis")
	}
	return v, cgerrors.Wrapf(cgerrors.ErrParseFailure, "engine closed before sending bestmove")
}

// parseInfoLine extracts "depth", "score cp", and "score mate" tokens
// from a UCI info line, overwriting whichever fields it finds.
func parseInfoLine(line string, v *verdict.Verdict) {
	fields := strings.Fields(line)
	for i := 0; i < len(fields); i++ {
		switch fields[i] {
		case "depth":
			if i+1 < len(fields) {
				if d, err := strconv.Atoi(fields[i+1]); err == nil {
					v.Depth = d
				}
			}
		case "score":
			if i+2 < len(fields) {
				n, err := strconv.Atoi(fields[i+2])
				if err != nil {
					continue
				}
				switch fields[i+1] {
				case "cp":
					v.Score = n
					v.Mate = 0
				case "mate":
					v.Mate = n
				}
			}
		}
	}
}

// parseUCIMove decodes a UCI long algebraic move ("e2e4", "e7e8q") into a
// ply.Move.
func parseUCIMove(s string) (ply.Move, error) {
	if len(s) < 4 {
		return ply.Move{}, cgerrors.Wrapf(cgerrors.ErrInvalidMove, "malformed UCI move %q", s)
	}
	fromFile, fromRank := int(s[0]-'a'), int(s[1]-'1')
	toFile, toRank := int(s[2]-'a'), int(s[3]-'1')
	promotion := ply.NoPromotion
	if len(s) >= 5 {
		switch s[4] {
		case 'n':
			promotion = ply.Knight
		case 'b':
			promotion = ply.Bishop
		case 'r':
			promotion = ply.Rook
		case 'q':
			promotion = ply.Queen
		}
	}
	return ply.Move{
		From:      ply.SquareIndex(fromFile, fromRank),
		To:        ply.SquareIndex(toFile, toRank),
		Promotion: promotion,
	}, nil
}

// Close asks the engine to quit and releases its process resources.
func (e *Engine) Close() error {
	_ = e.send("quit")
	_ = e.stdin.Close()
	return e.cmd.Wait()
}
