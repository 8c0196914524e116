package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	reportapp "github.com/pos/backend/internal/application/report"
)

const dateLayout = "2006-01-02"

// ReportHandler handles the canned report endpoints. Every report is
// served as JSON by default and as CSV with ?format=csv.
type ReportHandler struct {
	BaseHandler
	reportService *reportapp.ReportService
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *reportapp.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func wantsCSV(c *gin.Context) bool {
	return c.Query("format") == "csv"
}

func (h *ReportHandler) csvHeaders(c *gin.Context, filename string) {
	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)
}

// queryDate reads a date query parameter, defaulting to today
func (h *ReportHandler) queryDate(c *gin.Context, name string) (time.Time, bool) {
	value := c.Query(name)
	if value == "" {
		return time.Now(), true
	}
	parsed, err := time.Parse(dateLayout, value)
	if err != nil {
		h.BadRequest(c, "Invalid "+name+" date, want YYYY-MM-DD")
		return time.Time{}, false
	}
	return parsed, true
}

// Daily handles GET /reports/daily
func (h *ReportHandler) Daily(c *gin.Context) {
	day, ok := h.queryDate(c, "date")
	if !ok {
		return
	}

	summary, err := h.reportService.DailySummary(c.Request.Context(), day)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if wantsCSV(c) {
		h.csvHeaders(c, "daily-"+summary.Date+".csv")
		if err := reportapp.WriteSummariesCSV(c.Writer, []reportapp.SalesSummary{*summary}); err != nil {
			_ = c.Error(err)
		}
		return
	}
	h.Success(c, summary)
}

// Sales handles GET /reports/sales
func (h *ReportHandler) Sales(c *gin.Context) {
	from, ok := h.queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := h.queryDate(c, "to")
	if !ok {
		return
	}

	summaries, err := h.reportService.RangeSummary(c.Request.Context(), from, to)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if wantsCSV(c) {
		h.csvHeaders(c, "sales.csv")
		if err := reportapp.WriteSummariesCSV(c.Writer, summaries); err != nil {
			_ = c.Error(err)
		}
		return
	}
	h.Success(c, summaries)
}

// TopProducts handles GET /reports/top-products
func (h *ReportHandler) TopProducts(c *gin.Context) {
	from, ok := h.queryDate(c, "from")
	if !ok {
		return
	}
	to, ok := h.queryDate(c, "to")
	if !ok {
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "0"))

	rows, err := h.reportService.TopProducts(c.Request.Context(), from, to, limit)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if wantsCSV(c) {
		h.csvHeaders(c, "top-products.csv")
		if err := reportapp.WriteTopProductsCSV(c.Writer, rows); err != nil {
			_ = c.Error(err)
		}
		return
	}
	h.Success(c, rows)
}

// Valuation handles GET /reports/valuation
func (h *ReportHandler) Valuation(c *gin.Context) {
	valuation, err := h.reportService.StockValuation(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if wantsCSV(c) {
		h.csvHeaders(c, "stock-valuation.csv")
		if err := reportapp.WriteValuationCSV(c.Writer, valuation); err != nil {
			_ = c.Error(err)
		}
		return
	}
	h.Success(c, valuation)
}

// LowStock handles GET /reports/low-stock
func (h *ReportHandler) LowStock(c *gin.Context) {
	rows, err := h.reportService.LowStock(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if wantsCSV(c) {
		h.csvHeaders(c, "low-stock.csv")
		if err := reportapp.WriteStockAlertsCSV(c.Writer, rows); err != nil {
			_ = c.Error(err)
		}
		return
	}
	h.Success(c, rows)
}

// Expiring handles GET /reports/expiring
func (h *ReportHandler) Expiring(c *gin.Context) {
	rows, err := h.reportService.Expiring(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}

	if wantsCSV(c) {
		h.csvHeaders(c, "expiring.csv")
		if err := reportapp.WriteStockAlertsCSV(c.Writer, rows); err != nil {
			_ = c.Error(err)
		}
		return
	}
	h.Success(c, rows)
}
