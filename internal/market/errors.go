package market

import "errors"

// Registry errors. All are terminal for the query that raised them and leave
// market state untouched.
var (
	// ErrUnknownSymbol means the symbol is not in the stock catalog.
	ErrUnknownSymbol = errors.New("unknown stock symbol")

	// ErrNoTrades means no trade for the symbol survives in the retention window.
	ErrNoTrades = errors.New("no trades in retention window")

	// ErrNoStocks means the index was requested on an empty catalog.
	ErrNoStocks = errors.New("no stocks registered")

	// ErrNoPrices means no registered stock has a last price set.
	ErrNoPrices = errors.New("no stock prices available")
)
