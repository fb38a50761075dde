package ingestion

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/marketpulse/internal/domain/models"
	"github.com/guttosm/marketpulse/internal/logger"
	"github.com/guttosm/marketpulse/internal/market"
)

const (
	tradeFileSuffix = "_TRADES.csv"
	maxReplayFiles  = 7
)

// tradeHeaders enforces strict column ordering for trade replay files.
var tradeHeaders = []string{
	"Timestamp",
	"Symbol",
	"Side",
	"Quantity",
	"Price",
}

// ReplayDirectory feeds every "*_TRADES.csv" file under dir through the
// market registry.
//
// Behavior:
//   - Files are processed concurrently, capped at min(maxReplayFiles, NumCPU)
//     or the provided clamp(1..maxReplayFiles).
//   - Each row is recorded through Market.RecordTrade, so the registry's
//     retention pruning applies: rows older than the window are dropped on
//     the spot and only still-fresh trades survive the replay.
//   - If any file returns an error, siblings are canceled and that error is
//     returned.
//
// Returns:
//   - int: total number of rows recorded (before pruning).
//   - error: first error encountered (if any).
func ReplayDirectory(ctx context.Context, dir string, m *market.Market, parallel int) (int, error) {
	files, err := filepath.Glob(filepath.Join(dir, "*"+tradeFileSuffix))
	if err != nil {
		return 0, fmt.Errorf("list trade files: %w", err)
	}
	if len(files) == 0 {
		return 0, fmt.Errorf("no %s files in %s", tradeFileSuffix, dir)
	}

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Msg("replay start")

	// Concurrency: default to min(maxReplayFiles, NumCPU), or use provided clamp
	maxParallel := maxReplayFiles
	if parallel > 0 {
		if parallel > maxReplayFiles {
			parallel = maxReplayFiles
		}
		maxParallel = parallel
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("max_parallel", maxParallel).Msg("replay configured")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	var total int64
	for i, file := range files {
		idx := i
		f := file
		sem <- struct{}{}

		g.Go(func() error {
			defer func() { <-sem }()
			start := time.Now()
			base := filepath.Base(f)
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Msg("file start")

			rows, err := replayFile(gctx, f, m)
			if err != nil {
				logger.L().Error().Str("file", base).Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
				return fmt.Errorf("file %s: %w", f, err)
			}

			atomic.AddInt64(&total, int64(rows))
			logger.L().Info().Int("idx", idx+1).Int("total", len(files)).Str("file", base).Int("rows", rows).Dur("elapsed", time.Since(start)).Msg("file done")
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return 0, err
	}

	return int(atomic.LoadInt64(&total)), nil
}

// replayFile opens, validates, and parses one trade file, recording every
// row into the market. Fails on a bad header, wrong column count, or any
// malformed cell; trades are immutable values so there is nothing to repair.
func replayFile(ctx context.Context, path string, m *market.Market) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header, tradeHeaders); err != nil {
		return 0, err
	}

	total := 0
	lineNumber := 1

	for {
		select {
		case <-ctx.Done():
			return 0, ctx.Err()
		default:
		}

		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(tradeHeaders) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(tradeHeaders), len(rec))
		}

		tr, err := recordToTrade(rec)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		m.RecordTrade(tr)
		total++
	}

	return total, nil
}

// recordToTrade converts a single CSV record (already validated length==5)
// into a models.Trade.
//
// Column order:
//
//	0 Timestamp → RFC3339 (e.g., "2025-06-02T10:30:00Z")
//	1 Symbol    → ticker, uppercased
//	2 Side      → "buy" or "sell" (case-insensitive)
//	3 Quantity  → int64, > 0
//	4 Price     → float, > 0 (decimal comma tolerated)
func recordToTrade(rec []string) (models.Trade, error) {
	var t models.Trade

	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(rec[0]))
	if err != nil {
		return t, fmt.Errorf("invalid Timestamp: %v", err)
	}
	t.Timestamp = ts

	t.Symbol = strings.ToUpper(strings.TrimSpace(rec[1]))
	if t.Symbol == "" {
		return t, fmt.Errorf("empty Symbol")
	}

	side := models.TradeSide(strings.ToLower(strings.TrimSpace(rec[2])))
	if !side.IsValid() {
		return t, fmt.Errorf("invalid Side: %q", rec[2])
	}
	t.Side = side

	qty, err := strconv.ParseInt(strings.TrimSpace(rec[3]), 10, 64)
	if err != nil {
		return t, fmt.Errorf("invalid Quantity: %v", err)
	}
	if qty <= 0 {
		return t, fmt.Errorf("non-positive Quantity: %d", qty)
	}
	t.Quantity = qty

	price, err := parseDecimal(strings.TrimSpace(rec[4]))
	if err != nil {
		return t, fmt.Errorf("invalid Price: %v", err)
	}
	if price <= 0 {
		return t, fmt.Errorf("non-positive Price: %v", price)
	}
	t.Price = price

	return t, nil
}
