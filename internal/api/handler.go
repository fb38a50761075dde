package api

import (
	"errors"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/marketpulse/internal/domain/dto"
	"github.com/guttosm/marketpulse/internal/domain/models"
	"github.com/guttosm/marketpulse/internal/market"
	"github.com/guttosm/marketpulse/internal/service"
)

// Handler provides HTTP handlers for the stock market endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP parameters and JSON bodies
//   - Translate requests into MarketService calls
//   - Map domain errors onto HTTP status codes
//   - Return structured JSON responses
type Handler struct {
	svc service.MarketService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.MarketService): Service dependency holding the market registry.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.MarketService) *Handler {
	return &Handler{svc: svc}
}

// statusFor maps a domain error onto the HTTP status the API contract
// promises for it. Unknown errors map to 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrInvalidPrice),
		errors.Is(err, models.ErrInvalidParValue):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrUndefinedPERatio):
		return http.StatusUnprocessableEntity
	case errors.Is(err, market.ErrUnknownSymbol),
		errors.Is(err, market.ErrNoTrades),
		errors.Is(err, market.ErrNoStocks),
		errors.Is(err, market.ErrNoPrices):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// symbolParam extracts and normalizes the :symbol path parameter.
func symbolParam(c *gin.Context) string {
	return strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
}

// priceQuery parses the required "price" query parameter. On failure it
// writes a 400 response and returns ok=false.
func priceQuery(c *gin.Context) (float64, bool) {
	raw := c.Query("price")
	if raw == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("price is required", nil))
		return 0, false
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid price, expected a number", err))
		return 0, false
	}
	// ParseFloat accepts "NaN" and "Inf"; neither is a usable price and
	// neither survives JSON marshaling.
	if math.IsNaN(price) || math.IsInf(price, 0) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid price, expected a finite number", nil))
		return 0, false
	}
	return price, true
}

// RegisterStock handles POST /api/v1/stocks requests.
//
// RegisterStock godoc
// @Summary      Register a stock
// @Description  Adds a stock to the market catalog; re-registering a symbol overwrites it
// @Tags         stocks
// @Accept       json
// @Produce      json
// @Param        stock  body      dto.RegisterStockRequest  true  "Stock definition"
// @Success      201    {object}  models.Stock       "Created"
// @Failure      400    {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/stocks [post]
func (h *Handler) RegisterStock(c *gin.Context) {
	var req dto.RegisterStockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	// ─── Validate fields ──────────────────────────────────────
	kind := models.StockKind(strings.ToLower(strings.TrimSpace(req.Kind)))
	if !kind.IsValid() {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("kind must be common or preferred", nil))
		return
	}
	if req.LastDividend < 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("last_dividend must not be negative", nil))
		return
	}
	if kind == models.KindPreferred && (req.ParValue == nil || *req.ParValue <= 0) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("par_value must be positive for preferred stock", nil))
		return
	}
	if kind == models.KindCommon && req.ParValue != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("par_value must be omitted for common stock", nil))
		return
	}

	// ─── Build and register ───────────────────────────────────
	symbol := strings.ToUpper(strings.TrimSpace(req.Symbol))
	var stock *models.Stock
	if kind == models.KindPreferred {
		stock = models.NewPreferredStock(symbol, req.LastDividend, *req.ParValue)
	} else {
		stock = models.NewCommonStock(symbol, req.LastDividend)
	}
	h.svc.RegisterStock(c.Request.Context(), stock)

	c.JSON(http.StatusCreated, stock)
}

// RecordTrade handles POST /api/v1/trades requests.
//
// RecordTrade godoc
// @Summary      Record a trade
// @Description  Appends a trade to the rolling log and prunes entries older than the retention window
// @Tags         trades
// @Accept       json
// @Produce      json
// @Param        trade  body      dto.RecordTradeRequest  true  "Trade execution"
// @Success      201    {object}  models.Trade       "Created"
// @Failure      400    {object}  dto.ErrorResponse  "Bad Request"
// @Router       /api/v1/trades [post]
func (h *Handler) RecordTrade(c *gin.Context) {
	var req dto.RecordTradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid request body", err))
		return
	}

	// ─── Validate fields ──────────────────────────────────────
	side := models.TradeSide(strings.ToLower(strings.TrimSpace(req.Side)))
	if !side.IsValid() {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("side must be buy or sell", nil))
		return
	}
	if req.Quantity <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("quantity must be positive", nil))
		return
	}
	if req.Price <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("price must be positive", nil))
		return
	}

	// ─── Parse optional timestamp ─────────────────────────────
	ts := time.Now()
	if req.Timestamp != "" {
		parsed, err := time.Parse(time.RFC3339, req.Timestamp)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid timestamp, expected RFC3339", err))
			return
		}
		ts = parsed
	}

	trade := models.Trade{
		Timestamp: ts,
		Symbol:    strings.ToUpper(strings.TrimSpace(req.Symbol)),
		Quantity:  req.Quantity,
		Side:      side,
		Price:     req.Price,
	}
	h.svc.RecordTrade(c.Request.Context(), trade)

	c.JSON(http.StatusCreated, trade)
}

// GetDividendYield handles GET /api/v1/stocks/:symbol/dividend-yield requests.
//
// GetDividendYield godoc
// @Summary      Dividend yield for a stock
// @Description  Computes the dividend yield for the given price (preferred stock uses its par value instead)
// @Tags         stocks
// @Produce      json
// @Param        symbol  path      string  true  "Stock ticker" example(POP)
// @Param        price   query     number  true  "Price to compute the yield against" example(100)
// @Success      200     {object}  dto.MetricResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse   "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse   "Not Found"
// @Router       /api/v1/stocks/{symbol}/dividend-yield [get]
func (h *Handler) GetDividendYield(c *gin.Context) {
	symbol := symbolParam(c)
	price, ok := priceQuery(c)
	if !ok {
		return
	}

	value, err := h.svc.DividendYield(c.Request.Context(), symbol, price)
	if err != nil {
		c.JSON(statusFor(err), dto.NewErrorResponse("failed to compute dividend yield", err))
		return
	}

	c.JSON(http.StatusOK, dto.MetricResponse{Symbol: symbol, Metric: "dividend_yield", Value: value})
}

// GetPERatio handles GET /api/v1/stocks/:symbol/pe-ratio requests.
//
// GetPERatio godoc
// @Summary      P/E ratio for a stock
// @Description  Computes price / last dividend; undefined for preferred or zero-dividend stock
// @Tags         stocks
// @Produce      json
// @Param        symbol  path      string  true  "Stock ticker" example(POP)
// @Param        price   query     number  true  "Price to compute the ratio against" example(87.30)
// @Success      200     {object}  dto.MetricResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse   "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse   "Not Found"
// @Failure      422     {object}  dto.ErrorResponse   "Ratio Undefined"
// @Router       /api/v1/stocks/{symbol}/pe-ratio [get]
func (h *Handler) GetPERatio(c *gin.Context) {
	symbol := symbolParam(c)
	price, ok := priceQuery(c)
	if !ok {
		return
	}

	value, err := h.svc.PriceEarningsRatio(c.Request.Context(), symbol, price)
	if err != nil {
		c.JSON(statusFor(err), dto.NewErrorResponse("failed to compute p/e ratio", err))
		return
	}

	c.JSON(http.StatusOK, dto.MetricResponse{Symbol: symbol, Metric: "pe_ratio", Value: value})
}

// GetVolumeWeightedPrice handles GET /api/v1/stocks/:symbol/vwsp requests.
//
// GetVolumeWeightedPrice godoc
// @Summary      Volume-weighted stock price
// @Description  Computes sum(price*quantity)/sum(quantity) over trades inside the retention window
// @Tags         stocks
// @Produce      json
// @Param        symbol  path      string  true  "Stock ticker" example(TEA)
// @Success      200     {object}  dto.MetricResponse  "Success"
// @Failure      404     {object}  dto.ErrorResponse   "Not Found / No Trades"
// @Router       /api/v1/stocks/{symbol}/vwsp [get]
func (h *Handler) GetVolumeWeightedPrice(c *gin.Context) {
	symbol := symbolParam(c)

	value, err := h.svc.VolumeWeightedPrice(c.Request.Context(), symbol)
	if err != nil {
		c.JSON(statusFor(err), dto.NewErrorResponse("failed to compute volume-weighted price", err))
		return
	}

	c.JSON(http.StatusOK, dto.MetricResponse{Symbol: symbol, Metric: "vwsp", Value: value})
}

// GetAllShareIndex handles GET /api/v1/index requests.
//
// GetAllShareIndex godoc
// @Summary      All-share index
// @Description  Geometric mean of the last prices of every priced stock in the catalog
// @Tags         index
// @Produce      json
// @Success      200  {object}  dto.IndexResponse  "Success"
// @Failure      404  {object}  dto.ErrorResponse  "No Stocks / No Prices"
// @Router       /api/v1/index [get]
func (h *Handler) GetAllShareIndex(c *gin.Context) {
	value, err := h.svc.AllShareIndex(c.Request.Context())
	if err != nil {
		c.JSON(statusFor(err), dto.NewErrorResponse("failed to compute all-share index", err))
		return
	}

	c.JSON(http.StatusOK, dto.IndexResponse{Index: value})
}

// RefreshPrices handles POST /api/v1/prices/refresh requests.
//
// RefreshPrices godoc
// @Summary      Refresh stock prices
// @Description  Writes the volume-weighted price of each traded stock back as its last price
// @Tags         index
// @Produce      json
// @Success      200  {object}  dto.RefreshPricesResponse  "Success"
// @Failure      500  {object}  dto.ErrorResponse          "Internal Error"
// @Router       /api/v1/prices/refresh [post]
func (h *Handler) RefreshPrices(c *gin.Context) {
	updated, err := h.svc.RefreshPrices(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to refresh prices", err))
		return
	}

	c.JSON(http.StatusOK, dto.RefreshPricesResponse{UpdatedPrices: updated})
}
