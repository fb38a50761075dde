package market

import (
	"math"
	"sync"
	"time"

	"github.com/guttosm/marketpulse/internal/domain/models"
)

// DefaultRetention is how long a recorded trade stays visible to aggregate
// queries. Trades older than this are dropped on the next RecordTrade call.
const DefaultRetention = 15 * time.Minute

// Market is the in-memory registry of stocks and recent trades.
//
// Responsibilities:
//   - Owns the stock catalog (keyed by symbol, last write wins).
//   - Owns the rolling trade log, pruned against the retention window on
//     every append.
//   - Computes the cross-stock aggregates: volume-weighted price per symbol
//     and the geometric-mean all-share index.
//
// A single RWMutex guards both collections. RecordTrade holds the write lock
// across the append and the prune so concurrent callers always observe the
// two as one step.
type Market struct {
	mu        sync.RWMutex
	stocks    map[string]*models.Stock
	trades    []models.Trade
	retention time.Duration

	// now is an indirection for unit testing; defaults to time.Now.
	now func() time.Time
}

// New creates an empty market with the given trade retention window.
// A non-positive retention falls back to DefaultRetention.
func New(retention time.Duration) *Market {
	if retention <= 0 {
		retention = DefaultRetention
	}
	return &Market{
		stocks:    make(map[string]*models.Stock),
		retention: retention,
		now:       time.Now,
	}
}

// AddStock registers a stock under its symbol. Registering a symbol that
// already exists overwrites the previous entry without error.
func (m *Market) AddStock(s *models.Stock) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.stocks[s.Symbol] = s
}

// Stock returns the registered stock for symbol, or ErrUnknownSymbol.
func (m *Market) Stock(symbol string) (*models.Stock, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.stocks[symbol]
	if !ok {
		return nil, ErrUnknownSymbol
	}
	return s, nil
}

// Len returns the number of registered stocks.
func (m *Market) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.stocks)
}

// Symbols returns the registered symbols in unspecified order.
func (m *Market) Symbols() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]string, 0, len(m.stocks))
	for sym := range m.stocks {
		out = append(out, sym)
	}
	return out
}

// RecordTrade appends t to the trade log and immediately prunes every entry
// older than the retention window, measured from the wall clock at call time.
// A trade whose own timestamp is already outside the window is therefore
// appended and pruned back out in the same call.
func (m *Market) RecordTrade(t models.Trade) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.trades = append(m.trades, t)
	m.trades = pruneTrades(m.trades, m.now().Add(-m.retention))
}

// RecentTrades returns a copy of the retained trade log, in insertion order.
func (m *Market) RecentTrades() []models.Trade {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]models.Trade, len(m.trades))
	copy(out, m.trades)
	return out
}

// pruneTrades drops every trade whose timestamp is before cutoff, preserving
// insertion order. Pure function so the retention policy is testable without
// clock mocking.
func pruneTrades(trades []models.Trade, cutoff time.Time) []models.Trade {
	kept := trades[:0]
	for _, t := range trades {
		if !t.Timestamp.Before(cutoff) {
			kept = append(kept, t)
		}
	}
	return kept
}

// VolumeWeightedPrice computes the volume-weighted price of symbol over the
// retained trade log: sum(price*quantity) / sum(quantity).
//
// Errors:
//   - ErrUnknownSymbol: symbol is not in the stock catalog. Existence is
//     checked against the catalog, not the trade log.
//   - ErrNoTrades: no retained trade matches the symbol (either none were
//     ever recorded or all have aged out of the window).
func (m *Market) VolumeWeightedPrice(symbol string) (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if _, ok := m.stocks[symbol]; !ok {
		return 0, ErrUnknownSymbol
	}

	var totalQuantity int64
	var totalPriceQuantity float64
	for _, t := range m.trades {
		if t.Symbol == symbol {
			totalQuantity += t.Quantity
			totalPriceQuantity += t.Price * float64(t.Quantity)
		}
	}
	if totalQuantity == 0 {
		return 0, ErrNoTrades
	}
	return totalPriceQuantity / float64(totalQuantity), nil
}

// SetPrice writes price back as the stock's last price, typically after a
// VolumeWeightedPrice computation. Fails with ErrUnknownSymbol when the
// symbol is not registered.
func (m *Market) SetPrice(symbol string, price float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.stocks[symbol]
	if !ok {
		return ErrUnknownSymbol
	}
	s.LastPrice = &price
	return nil
}

// AllShareIndex computes the geometric mean of the last prices of every
// priced stock: the n-th root of the product of the n collected prices.
// Stocks without a price are excluded from both the product and the count.
//
// Errors:
//   - ErrNoStocks: the catalog is empty.
//   - ErrNoPrices: stocks exist but none has a price set.
func (m *Market) AllShareIndex() (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if len(m.stocks) == 0 {
		return 0, ErrNoStocks
	}

	product := 1.0
	n := 0
	for _, s := range m.stocks {
		if s.LastPrice != nil {
			product *= *s.LastPrice
			n++
		}
	}
	if n == 0 {
		return 0, ErrNoPrices
	}
	return math.Pow(product, 1/float64(n)), nil
}
