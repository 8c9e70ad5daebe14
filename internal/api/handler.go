package api

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/indexpulse/internal/domain/dto"
	"github.com/guttosm/indexpulse/internal/domain/faults"
	"github.com/guttosm/indexpulse/internal/domain/models"
	"github.com/guttosm/indexpulse/internal/service"
)

// Handler provides HTTP handlers for the index, stock, and historical
// endpoints.
//
// Responsibilities:
//   - Validate incoming path parameters
//   - Interact with the service layer
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.ReportService
}

// NewHandler constructs a new Handler instance.
//
// Parameters:
//   - svc (service.ReportService): Service dependency with the business logic.
//
// Returns:
//   - *Handler: A handler ready to be registered with the router.
func NewHandler(svc service.ReportService) *Handler {
	return &Handler{svc: svc}
}

// GetIndexReport handles GET /api/v1/index/:index requests.
//
// Path Parameters:
//   - index (string, required): Index name, "NIFTY50" or "SENSEX".
//
// Responses:
//   - 200 OK: Aggregate report; status inside the body is "warning"
//     when the fallback constituent list was used.
//   - 400 Bad Request: Unrecognized index name.
//   - 500 Internal Server Error: Unexpected failure in the service layer.
//
// GetIndexReport godoc
// @Summary      Aggregate report for an index
// @Description  Resolves the index constituents and returns per-symbol price and 52-week range metrics, tolerating partial failure
// @Tags         index
// @Produce      json
// @Param        index  path      string  true  "Index name"  Enums(NIFTY50, SENSEX)
// @Success      200    {object}  dto.ReportResponse  "Success"
// @Failure      400    {object}  dto.ErrorResponse   "Bad Request"
// @Failure      500    {object}  dto.ErrorResponse   "Internal Error"
// @Router       /api/v1/index/{index} [get]
func (h *Handler) GetIndexReport(c *gin.Context) {
	// ─── Validate "index" param ───────────────────────────────
	name := strings.ToUpper(strings.TrimSpace(c.Param("index")))
	index, ok := models.ParseIndexKind(name)
	if !ok {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("unrecognized index: "+name, nil))
		return
	}

	// ─── Query service (with request context) ─────────────────
	report, err := h.svc.IndexReport(c.Request.Context(), index)
	if err != nil {
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to build index report", err))
		return
	}

	c.JSON(http.StatusOK, dto.NewReportResponse(report))
}

// GetStockQuote handles GET /api/v1/stock/:symbol requests.
//
// Path Parameters:
//   - symbol (string, required): Ticker symbol (e.g., "SBIN").
//
// Responses:
//   - 200 OK: Live quote data.
//   - 404 Not Found: Unknown symbol, or no data (e.g., market closed).
//   - 502 Bad Gateway: Exchange unreachable.
//   - 500 Internal Server Error: Unexpected failure.
//
// GetStockQuote godoc
// @Summary      Live quote for a symbol
// @Description  Returns the live exchange quote for one index constituent
// @Tags         stock
// @Produce      json
// @Param        symbol  path      string  true  "Ticker symbol"  example(SBIN)
// @Success      200     {object}  dto.QuoteResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse  "Not Found"
// @Failure      502     {object}  dto.ErrorResponse  "Upstream Unavailable"
// @Router       /api/v1/stock/{symbol} [get]
func (h *Handler) GetStockQuote(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbol is required", nil))
		return
	}

	quote, err := h.svc.StockQuote(c.Request.Context(), ticker)
	if err != nil {
		h.writeQuoteError(c, ticker, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewQuoteResponse(quote))
}

// GetHistorical handles GET /api/v1/historical/:symbol requests.
//
// Path Parameters:
//   - symbol (string, required): Ticker symbol (e.g., "SBIN").
//
// Responses:
//   - 200 OK: 52-week metrics, EOD history, and corporate actions.
//   - 404 Not Found: No historical data for the symbol.
//   - 502 Bad Gateway: Backend unreachable.
//   - 500 Internal Server Error: Unexpected failure.
//
// GetHistorical godoc
// @Summary      Historical data for a symbol
// @Description  Returns 52-week metrics, two years of EOD bars, and corporate actions
// @Tags         stock
// @Produce      json
// @Param        symbol  path      string  true  "Ticker symbol"  example(SBIN)
// @Success      200     {object}  dto.HistoricalResponse  "Success"
// @Failure      400     {object}  dto.ErrorResponse       "Bad Request"
// @Failure      404     {object}  dto.ErrorResponse       "Not Found"
// @Failure      502     {object}  dto.ErrorResponse       "Upstream Unavailable"
// @Router       /api/v1/historical/{symbol} [get]
func (h *Handler) GetHistorical(c *gin.Context) {
	ticker := strings.ToUpper(strings.TrimSpace(c.Param("symbol")))
	if ticker == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("symbol is required", nil))
		return
	}

	report, err := h.svc.Historical(c.Request.Context(), ticker)
	if err != nil {
		h.writeQuoteError(c, ticker, err)
		return
	}

	c.JSON(http.StatusOK, dto.NewHistoricalResponse(report))
}

// writeQuoteError maps per-symbol service errors onto HTTP statuses
// using their fault kind.
func (h *Handler) writeQuoteError(c *gin.Context, ticker string, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownSymbol):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			"symbol '"+ticker+"' is not a recognized index constituent", nil))
	case faults.Is(err, faults.DataUnavailable):
		c.JSON(http.StatusNotFound, dto.NewErrorResponse(
			"no data for symbol '"+ticker+"' (market closed or no history)", err))
	case faults.Is(err, faults.SourceUnavailable):
		c.JSON(http.StatusBadGateway, dto.NewErrorResponse("upstream source unavailable", err))
	default:
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to fetch data", err))
	}
}
