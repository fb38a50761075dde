package dto

// MetricResponse carries a single per-stock metric value.
//
// Fields match the API contract and may differ from internal domain models.
// This keeps the API surface decoupled from business logic.
type MetricResponse struct {
	Symbol string  `json:"symbol" example:"TEA"`          // Stock ticker requested
	Metric string  `json:"metric" example:"vwsp"`         // Which metric the value represents
	Value  float64 `json:"value" example:"159.6666666667"` // Computed metric value
}

// IndexResponse carries the geometric-mean all-share index over every priced
// stock in the catalog.
type IndexResponse struct {
	Index float64 `json:"index" example:"77.4596669241"`
}

// RefreshPricesResponse reports how many stock prices were written back from
// the volume-weighted price computation.
type RefreshPricesResponse struct {
	UpdatedPrices int `json:"updated_prices" example:"3"`
}
