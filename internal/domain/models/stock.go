package models

import "errors"

// StockKind is the closed set of stock classes the market understands.
// Formula selection in the ratio calculations switches exclusively on this
// value, so free-form strings are rejected at the boundary (see IsValid).
type StockKind string

const (
	// KindCommon is ordinary dividend-bearing stock.
	KindCommon StockKind = "common"
	// KindPreferred is fixed-dividend stock priced against its par value.
	KindPreferred StockKind = "preferred"
)

// IsValid reports whether k is one of the known stock kinds.
func (k StockKind) IsValid() bool {
	return k == KindCommon || k == KindPreferred
}

// Calculation errors returned by the per-stock ratio methods.
var (
	// ErrInvalidPrice means a caller-supplied price was zero or negative.
	ErrInvalidPrice = errors.New("price must be positive")

	// ErrInvalidParValue means a preferred stock has no usable par value.
	ErrInvalidParValue = errors.New("par value must be positive for preferred stock")

	// ErrUndefinedPERatio means the P/E ratio does not exist for this stock:
	// either it is preferred, or it is common with a zero last dividend.
	ErrUndefinedPERatio = errors.New("p/e ratio undefined for this stock")
)

// Stock represents one tradeable security in the market catalog.
//
// Fields:
//   - Symbol: Unique ticker identifier (e.g., "TEA"). Immutable.
//   - Kind: Common or preferred; selects the dividend-yield formula.
//   - LastDividend: Most recently declared per-share dividend (>= 0).
//   - ParValue: Par value, required for preferred stock only. Nil means
//     "not applicable" (common stock), which is distinct from zero.
//   - LastPrice: Last observed price, typically written back from the
//     volume-weighted price calculation. Nil until first set; stocks with a
//     nil LastPrice are excluded from the all-share index.
type Stock struct {
	Symbol       string    `json:"symbol" example:"TEA"`
	Kind         StockKind `json:"kind" example:"common"`
	LastDividend float64   `json:"last_dividend" example:"8"`
	ParValue     *float64  `json:"par_value,omitempty" example:"100"`
	LastPrice    *float64  `json:"last_price,omitempty" example:"105.25"`
}

// NewCommonStock builds a common stock. Common stock carries no par value.
func NewCommonStock(symbol string, lastDividend float64) *Stock {
	return &Stock{Symbol: symbol, Kind: KindCommon, LastDividend: lastDividend}
}

// NewPreferredStock builds a preferred stock with the given par value.
func NewPreferredStock(symbol string, lastDividend, parValue float64) *Stock {
	return &Stock{Symbol: symbol, Kind: KindPreferred, LastDividend: lastDividend, ParValue: &parValue}
}

// DividendYield computes the dividend yield for the supplied price.
//
// Behavior:
//   - Common: LastDividend / price. Fails with ErrInvalidPrice when the
//     supplied price is zero, negative, or NaN.
//   - Preferred: LastDividend / ParValue, ignoring the supplied price.
//     Fails with ErrInvalidParValue when ParValue is absent or non-positive.
//
// The method never touches LastPrice; the price is always caller-supplied.
func (s *Stock) DividendYield(price float64) (float64, error) {
	if s.Kind == KindPreferred {
		if s.ParValue == nil || *s.ParValue <= 0 {
			return 0, ErrInvalidParValue
		}
		return s.LastDividend / *s.ParValue, nil
	}
	// Inverted comparison so NaN fails the guard too.
	if !(price > 0) {
		return 0, ErrInvalidPrice
	}
	return s.LastDividend / price, nil
}

// PriceEarningsRatio computes price / LastDividend.
//
// The ratio is only defined for common stock with a strictly positive last
// dividend; every other combination fails with ErrUndefinedPERatio rather
// than returning a sentinel value, so callers can never propagate Inf or NaN.
func (s *Stock) PriceEarningsRatio(price float64) (float64, error) {
	if s.Kind != KindCommon || s.LastDividend <= 0 {
		return 0, ErrUndefinedPERatio
	}
	return price / s.LastDividend, nil
}
