package dto

// RegisterStockRequest is the JSON body for POST /api/v1/stocks.
//
// Kind must be "common" or "preferred". ParValue is required for preferred
// stock and must be omitted (or null) for common stock.
type RegisterStockRequest struct {
	Symbol       string   `json:"symbol" binding:"required" example:"GIN"`
	Kind         string   `json:"kind" binding:"required" example:"preferred"`
	LastDividend float64  `json:"last_dividend" example:"8"`
	ParValue     *float64 `json:"par_value,omitempty" example:"100"`
}

// RecordTradeRequest is the JSON body for POST /api/v1/trades.
//
// Timestamp is optional RFC3339; when absent the trade is stamped with the
// server clock at receipt time.
type RecordTradeRequest struct {
	Symbol    string  `json:"symbol" binding:"required" example:"TEA"`
	Side      string  `json:"side" binding:"required" example:"buy"`
	Quantity  int64   `json:"quantity" binding:"required" example:"100"`
	Price     float64 `json:"price" binding:"required" example:"160.50"`
	Timestamp string  `json:"timestamp,omitempty" example:"2025-06-02T10:30:00Z"`
}
