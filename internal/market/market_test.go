package market

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/guttosm/marketpulse/internal/domain/models"
)

// fixedClock pins the market's notion of "now" for deterministic pruning.
func fixedClock(m *Market, at time.Time) { m.now = func() time.Time { return at } }

func newTestMarket(at time.Time) *Market {
	m := New(DefaultRetention)
	fixedClock(m, at)
	m.AddStock(models.NewCommonStock("TEA", 0))
	m.AddStock(models.NewCommonStock("POP", 8))
	m.AddStock(models.NewCommonStock("ALE", 23))
	m.AddStock(models.NewPreferredStock("GIN", 8, 100))
	m.AddStock(models.NewCommonStock("JOE", 23))
	return m
}

func trade(ts time.Time, symbol string, qty int64, side models.TradeSide, price float64) models.Trade {
	return models.Trade{Timestamp: ts, Symbol: symbol, Quantity: qty, Side: side, Price: price}
}

func TestPruneTrades(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)
	cutoff := now.Add(-15 * time.Minute)

	in := []models.Trade{
		trade(now.Add(-20*time.Minute), "TEA", 10, models.SideBuy, 100),
		trade(cutoff, "POP", 20, models.SideSell, 101), // exactly at cutoff: kept
		trade(now.Add(-5*time.Minute), "ALE", 30, models.SideBuy, 102),
		trade(now, "GIN", 40, models.SideSell, 103),
	}
	out := pruneTrades(in, cutoff)
	if len(out) != 3 {
		t.Fatalf("want 3 retained trades, got %d", len(out))
	}
	// insertion order preserved
	if out[0].Symbol != "POP" || out[1].Symbol != "ALE" || out[2].Symbol != "GIN" {
		t.Fatalf("unexpected order: %+v", out)
	}
}

func TestRecordTrade_RetentionWindow(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)
	m := newTestMarket(now)

	m.RecordTrade(trade(now.Add(-10*time.Minute), "TEA", 100, models.SideBuy, 172.50))
	m.RecordTrade(trade(now.Add(-20*time.Minute), "TEA", 50, models.SideSell, 165.25))

	got := m.RecentTrades()
	if len(got) != 1 {
		t.Fatalf("want 1 retained trade, got %d", len(got))
	}
	if got[0].Quantity != 100 {
		t.Fatalf("wrong trade retained: %+v", got[0])
	}
}

func TestRecordTrade_PrunesEarlierTrades(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)
	m := newTestMarket(now)

	// Recorded in-window, then ages out by the time the second trade lands.
	m.RecordTrade(trade(now.Add(-14*time.Minute), "TEA", 100, models.SideBuy, 172.50))
	fixedClock(m, now.Add(5*time.Minute))
	m.RecordTrade(trade(now.Add(5*time.Minute), "TEA", 50, models.SideSell, 168.75))

	got := m.RecentTrades()
	if len(got) != 1 {
		t.Fatalf("want 1 retained trade, got %d", len(got))
	}
	if got[0].Quantity != 50 {
		t.Fatalf("stale trade survived the prune: %+v", got)
	}
}

func TestVolumeWeightedPrice_TableDriven(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)

	cases := []struct {
		name    string
		setup   func(m *Market)
		symbol  string
		want    float64
		wantErr error
	}{
		{
			name: "two trades in window",
			setup: func(m *Market) {
				m.RecordTrade(trade(now.Add(-10*time.Minute), "TEA", 100, models.SideBuy, 160.50))
				m.RecordTrade(trade(now.Add(-5*time.Minute), "TEA", 50, models.SideSell, 158.00))
			},
			symbol: "TEA",
			want:   (100*160.50 + 50*158.00) / 150,
		},
		{
			name:    "unknown symbol",
			setup:   func(m *Market) {},
			symbol:  "XXX",
			wantErr: ErrUnknownSymbol,
		},
		{
			name:    "no trades recorded",
			setup:   func(m *Market) {},
			symbol:  "TEA",
			wantErr: ErrNoTrades,
		},
		{
			name: "all trades pruned",
			setup: func(m *Market) {
				m.RecordTrade(trade(now.Add(-30*time.Minute), "TEA", 100, models.SideBuy, 160.50))
			},
			symbol:  "TEA",
			wantErr: ErrNoTrades,
		},
		{
			name: "trades for other symbols ignored",
			setup: func(m *Market) {
				m.RecordTrade(trade(now, "POP", 100, models.SideBuy, 87.30))
			},
			symbol:  "TEA",
			wantErr: ErrNoTrades,
		},
		{
			name: "dangling-symbol trades never match registered lookups",
			setup: func(m *Market) {
				m.RecordTrade(trade(now, "ZZZ", 100, models.SideBuy, 50))
				m.RecordTrade(trade(now, "POP", 10, models.SideBuy, 87.30))
			},
			symbol: "POP",
			want:   87.30,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMarket(now)
			tc.setup(m)
			got, err := m.VolumeWeightedPrice(tc.symbol)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want err %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestVolumeWeightedPrice_FailureLeavesStateUsable(t *testing.T) {
	now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)
	m := newTestMarket(now)

	if _, err := m.VolumeWeightedPrice("XXX"); !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("want ErrUnknownSymbol, got %v", err)
	}

	m.RecordTrade(trade(now, "TEA", 10, models.SideBuy, 100))
	got, err := m.VolumeWeightedPrice("TEA")
	if err != nil || got != 100 {
		t.Fatalf("market unusable after failed query: got=%v err=%v", got, err)
	}
}

func TestAllShareIndex_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		setup   func(m *Market)
		want    float64
		wantErr error
	}{
		{
			name: "two priced stocks",
			setup: func(m *Market) {
				if err := m.SetPrice("POP", 100); err != nil {
					t.Fatalf("set price: %v", err)
				}
				if err := m.SetPrice("ALE", 60); err != nil {
					t.Fatalf("set price: %v", err)
				}
			},
			want: math.Sqrt(100 * 60),
		},
		{
			name:    "no prices set",
			setup:   func(m *Market) {},
			wantErr: ErrNoPrices,
		},
	}

	now := time.Date(2025, 6, 2, 10, 30, 0, 0, time.UTC)
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := newTestMarket(now)
			tc.setup(m)
			got, err := m.AllShareIndex()
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want err %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if math.Abs(got-tc.want) > 1e-9 {
				t.Fatalf("want %v, got %v", tc.want, got)
			}
		})
	}
}

func TestAllShareIndex_EmptyMarket(t *testing.T) {
	m := New(DefaultRetention)
	if _, err := m.AllShareIndex(); !errors.Is(err, ErrNoStocks) {
		t.Fatalf("want ErrNoStocks, got %v", err)
	}
}

func TestAllShareIndex_GeometricMean(t *testing.T) {
	m := New(DefaultRetention)
	m.AddStock(models.NewCommonStock("A", 1))
	m.AddStock(models.NewCommonStock("B", 1))
	m.AddStock(models.NewCommonStock("C", 1))
	for sym, p := range map[string]float64{"A": 2, "B": 4, "C": 8} {
		if err := m.SetPrice(sym, p); err != nil {
			t.Fatalf("set price: %v", err)
		}
	}
	got, err := m.AllShareIndex()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := math.Pow(2*4*8, 1.0/3)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("want %v, got %v", want, got)
	}
}

func TestAddStock_OverwritesDuplicateSymbol(t *testing.T) {
	m := New(DefaultRetention)
	m.AddStock(models.NewCommonStock("TEA", 0))
	m.AddStock(models.NewCommonStock("TEA", 5))

	if m.Len() != 1 {
		t.Fatalf("want 1 stock, got %d", m.Len())
	}
	s, err := m.Stock("TEA")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if s.LastDividend != 5 {
		t.Fatalf("last write did not win: %+v", s)
	}
}

func TestSetPrice_UnknownSymbol(t *testing.T) {
	m := New(DefaultRetention)
	if err := m.SetPrice("TEA", 100); !errors.Is(err, ErrUnknownSymbol) {
		t.Fatalf("want ErrUnknownSymbol, got %v", err)
	}
}

func TestNew_NonPositiveRetentionFallsBack(t *testing.T) {
	m := New(0)
	if m.retention != DefaultRetention {
		t.Fatalf("want default retention, got %v", m.retention)
	}
}
