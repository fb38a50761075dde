package models

import "time"

// TradeSide indicates whether a trade was a buy or a sell.
type TradeSide string

const (
	SideBuy  TradeSide = "buy"
	SideSell TradeSide = "sell"
)

// IsValid reports whether s is one of the known trade sides.
func (s TradeSide) IsValid() bool {
	return s == SideBuy || s == SideSell
}

// Trade is an immutable record of one executed trade.
//
// Fields:
//   - Timestamp: When the trade occurred. Retention pruning compares this
//     against the market's cutoff.
//   - Symbol: Ticker of the traded stock. The market does not validate the
//     symbol at record time, so a trade may reference a stock that was never
//     registered; such trades simply never match any aggregate query.
//   - Quantity: Number of shares (> 0).
//   - Side: Buy or sell indicator.
//   - Price: Execution price per share (> 0).
type Trade struct {
	Timestamp time.Time `json:"timestamp"`
	Symbol    string    `json:"symbol" example:"TEA"`
	Quantity  int64     `json:"quantity" example:"100"`
	Side      TradeSide `json:"side" example:"buy"`
	Price     float64   `json:"price" example:"160.50"`
}
