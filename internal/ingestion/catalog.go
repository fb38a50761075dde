package ingestion

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/guttosm/marketpulse/internal/domain/models"
	"github.com/guttosm/marketpulse/internal/market"
)

// catalogHeaders enforces strict column ordering for the stock catalog file.
// If the header doesn't match EXACTLY (order + count), loading must fail.
var catalogHeaders = []string{
	"Symbol",
	"Kind",
	"LastDividend",
	"ParValue",
}

// LoadCatalog opens, validates, and parses a semicolon-separated stock
// catalog file, registering every row into the market.
//
// It fails on:
//   - header not matching expected order/length
//   - wrong column count, unknown kind, or malformed numbers
//   - a preferred row without a positive par value
//
// It tolerates:
//   - an empty ParValue cell for common stock (par value not applicable)
//   - decimal commas in numeric cells
//
// Parameters:
//   - path: catalog file path.
//   - m:    market registry receiving the stocks.
//
// Returns:
//   - int: number of stocks registered.
//   - error: first structural or format error encountered.
func LoadCatalog(path string, m *market.Market) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.LazyQuotes = true
	r.FieldsPerRecord = -1 // allow variable but we’ll check explicitly

	// Validate headers strictly.
	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if err := checkHeader(header, catalogHeaders); err != nil {
		return 0, err
	}

	total := 0
	lineNumber := 1 // header already read

	for {
		rec, err := r.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if len(rec) != len(catalogHeaders) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(catalogHeaders), len(rec))
		}

		stock, err := recordToStock(rec)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		m.AddStock(stock)
		total++
	}

	return total, nil
}

// checkHeader compares a parsed header row against an expected column list.
func checkHeader(header, expected []string) error {
	if len(header) != len(expected) {
		return fmt.Errorf("invalid header length: expected %d, got %d", len(expected), len(header))
	}
	for i, h := range header {
		if strings.TrimSpace(h) != expected[i] {
			return fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expected[i], h)
		}
	}
	return nil
}

// parseDecimal parses a numeric cell, tolerating decimal commas.
func parseDecimal(s string) (float64, error) {
	return strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
}

// recordToStock converts a single CSV record (already validated length==4)
// into a models.Stock.
//
// Column order:
//
//	0 Symbol       → ticker, uppercased
//	1 Kind         → "common" or "preferred" (case-insensitive)
//	2 LastDividend → float, >= 0
//	3 ParValue     → float, required > 0 for preferred; must be empty otherwise
func recordToStock(rec []string) (*models.Stock, error) {
	symbol := strings.ToUpper(strings.TrimSpace(rec[0]))
	if symbol == "" {
		return nil, fmt.Errorf("empty Symbol")
	}

	kind := models.StockKind(strings.ToLower(strings.TrimSpace(rec[1])))
	if !kind.IsValid() {
		return nil, fmt.Errorf("invalid Kind: %q", rec[1])
	}

	dividend, err := parseDecimal(strings.TrimSpace(rec[2]))
	if err != nil {
		return nil, fmt.Errorf("invalid LastDividend: %v", err)
	}
	if dividend < 0 {
		return nil, fmt.Errorf("negative LastDividend: %v", dividend)
	}

	par := strings.TrimSpace(rec[3])
	if kind == models.KindPreferred {
		v, err := parseDecimal(par)
		if err != nil {
			return nil, fmt.Errorf("invalid ParValue: %v", err)
		}
		if v <= 0 {
			return nil, fmt.Errorf("non-positive ParValue: %v", v)
		}
		return models.NewPreferredStock(symbol, dividend, v), nil
	}
	if par != "" {
		return nil, fmt.Errorf("ParValue set for common stock %s", symbol)
	}
	return models.NewCommonStock(symbol, dividend), nil
}
