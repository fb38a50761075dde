package service

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/guttosm/marketpulse/internal/domain/models"
	"github.com/guttosm/marketpulse/internal/market"
)

func newSeededService() (MarketService, *market.Market) {
	m := market.New(market.DefaultRetention)
	m.AddStock(models.NewCommonStock("TEA", 0))
	m.AddStock(models.NewCommonStock("POP", 8))
	m.AddStock(models.NewPreferredStock("GIN", 8, 100))
	return NewMarketService(m), m
}

func TestDividendYield_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		symbol  string
		price   float64
		want    float64
		wantErr error
	}{
		{name: "common", symbol: "POP", price: 100, want: 0.08},
		{name: "preferred ignores price", symbol: "GIN", price: 87.30, want: 0.08},
		{name: "zero price", symbol: "POP", price: 0, wantErr: models.ErrInvalidPrice},
		{name: "unknown symbol", symbol: "XXX", price: 100, wantErr: market.ErrUnknownSymbol},
	}

	svc, _ := newSeededService()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.DividendYield(context.Background(), tc.symbol, tc.price)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want err %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("got=%v err=%v", got, err)
			}
		})
	}
}

func TestPriceEarningsRatio_TableDriven(t *testing.T) {
	cases := []struct {
		name    string
		symbol  string
		price   float64
		want    float64
		wantErr error
	}{
		{name: "common with dividend", symbol: "POP", price: 87.30, want: 87.30 / 8},
		{name: "zero dividend", symbol: "TEA", price: 100, wantErr: models.ErrUndefinedPERatio},
		{name: "preferred", symbol: "GIN", price: 100, wantErr: models.ErrUndefinedPERatio},
		{name: "unknown symbol", symbol: "XXX", price: 100, wantErr: market.ErrUnknownSymbol},
	}

	svc, _ := newSeededService()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := svc.PriceEarningsRatio(context.Background(), tc.symbol, tc.price)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("want err %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil || got != tc.want {
				t.Fatalf("got=%v err=%v", got, err)
			}
		})
	}
}

func TestRefreshPrices(t *testing.T) {
	svc, m := newSeededService()
	ctx := context.Background()
	now := time.Now()

	svc.RecordTrade(ctx, models.Trade{Timestamp: now, Symbol: "POP", Quantity: 100, Side: models.SideBuy, Price: 100})
	svc.RecordTrade(ctx, models.Trade{Timestamp: now, Symbol: "GIN", Quantity: 50, Side: models.SideSell, Price: 60})

	updated, err := svc.RefreshPrices(ctx)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if updated != 2 {
		t.Fatalf("want 2 updated prices, got %d", updated)
	}

	// TEA had no trades, so it stays unpriced and out of the index.
	got, err := svc.AllShareIndex(ctx)
	if err != nil {
		t.Fatalf("index: %v", err)
	}
	want := math.Sqrt(100 * 60)
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("want index %v, got %v", want, got)
	}

	st, err := m.Stock("TEA")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if st.LastPrice != nil {
		t.Fatalf("TEA should remain unpriced, got %v", *st.LastPrice)
	}
}

func TestRefreshPrices_CanceledContext(t *testing.T) {
	svc, _ := newSeededService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.RefreshPrices(ctx); !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestAllShareIndex_EmptyViaService(t *testing.T) {
	svc := NewMarketService(market.New(0))
	if _, err := svc.AllShareIndex(context.Background()); !errors.Is(err, market.ErrNoStocks) {
		t.Fatalf("want ErrNoStocks, got %v", err)
	}
}
