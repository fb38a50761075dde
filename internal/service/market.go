package service

import (
	"context"
	"errors"

	"github.com/guttosm/marketpulse/internal/domain/models"
	"github.com/guttosm/marketpulse/internal/market"
)

// MarketService defines business logic over the stock market registry.
type MarketService interface {
	RegisterStock(ctx context.Context, s *models.Stock)
	RecordTrade(ctx context.Context, t models.Trade)
	DividendYield(ctx context.Context, symbol string, price float64) (float64, error)
	PriceEarningsRatio(ctx context.Context, symbol string, price float64) (float64, error)
	VolumeWeightedPrice(ctx context.Context, symbol string) (float64, error)
	AllShareIndex(ctx context.Context) (float64, error)
	RefreshPrices(ctx context.Context) (int, error)
}

type marketService struct {
	m *market.Market
}

func NewMarketService(m *market.Market) MarketService {
	return &marketService{m: m}
}

func (s *marketService) RegisterStock(_ context.Context, st *models.Stock) {
	s.m.AddStock(st)
}

func (s *marketService) RecordTrade(_ context.Context, t models.Trade) {
	s.m.RecordTrade(t)
}

// DividendYield resolves the stock by symbol and computes its dividend yield
// against the caller-supplied price.
func (s *marketService) DividendYield(_ context.Context, symbol string, price float64) (float64, error) {
	st, err := s.m.Stock(symbol)
	if err != nil {
		return 0, err
	}
	return st.DividendYield(price)
}

// PriceEarningsRatio resolves the stock by symbol and computes its P/E ratio
// against the caller-supplied price.
func (s *marketService) PriceEarningsRatio(_ context.Context, symbol string, price float64) (float64, error) {
	st, err := s.m.Stock(symbol)
	if err != nil {
		return 0, err
	}
	return st.PriceEarningsRatio(price)
}

func (s *marketService) VolumeWeightedPrice(_ context.Context, symbol string) (float64, error) {
	return s.m.VolumeWeightedPrice(symbol)
}

func (s *marketService) AllShareIndex(_ context.Context) (float64, error) {
	return s.m.AllShareIndex()
}

// RefreshPrices computes the volume-weighted price for every registered
// symbol and writes the result back as the stock's last price. Symbols with
// no retained trades are skipped. Returns how many prices were updated.
func (s *marketService) RefreshPrices(ctx context.Context) (int, error) {
	updated := 0
	for _, sym := range s.m.Symbols() {
		if err := ctx.Err(); err != nil {
			return updated, err
		}
		vwp, err := s.m.VolumeWeightedPrice(sym)
		if errors.Is(err, market.ErrNoTrades) {
			continue
		}
		if err != nil {
			return updated, err
		}
		if err := s.m.SetPrice(sym, vwp); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
