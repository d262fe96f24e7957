package handlers

import (
	"log/slog"
	"net/http"
	"time"

	portssvc "github.com/SscSPs/contractor_marketplace/internal/core/ports/services"
	"github.com/SscSPs/contractor_marketplace/internal/dto"
	"github.com/SscSPs/contractor_marketplace/internal/middleware"
	"github.com/SscSPs/contractor_marketplace/internal/utils"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles the admin reports over paid jobs
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers the admin report routes
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	admin := rg.Group("/admin")
	{
		admin.GET("/best-profession", h.getBestProfession)
		admin.GET("/best-clients", h.getBestClients)
	}
}

// parseRange converts validated query bounds to times.
func parseRange(q dto.ReportRangeQuery) (time.Time, time.Time, error) {
	start, err := utils.ParseReportTime(q.Start, false)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := utils.ParseReportTime(q.End, true)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	return start, end, nil
}

// getBestProfession godoc
// @Summary Best earning profession
// @Description Returns the contractor profession that earned the most from jobs paid within the range
// @Tags admin
// @Produce json
// @Param profile_id header int true "Calling profile ID"
// @Param start query string true "Range start (RFC3339 or YYYY-MM-DD)"
// @Param end query string true "Range end, inclusive (RFC3339 or YYYY-MM-DD)"
// @Success 200 {object} dto.ProfessionEarningsResponse "Empty object when nothing was paid"
// @Failure 400 {object} map[string]string "Invalid range"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /admin/best-profession [get]
func (h *reportingHandler) getBestProfession(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.ReportRangeQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid best-profession query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	start, end, err := parseRange(q)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	best, err := h.reportingService.BestProfession(c.Request.Context(), start, end)
	if err != nil {
		respondError(c, logger, err, "Failed to generate best profession report")
		return
	}
	if best == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, dto.ToProfessionEarningsResponse(best))
}

// getBestClients godoc
// @Summary Best paying clients
// @Description Returns the clients who paid the most for jobs within the range, highest first
// @Tags admin
// @Produce json
// @Param profile_id header int true "Calling profile ID"
// @Param start query string true "Range start (RFC3339 or YYYY-MM-DD)"
// @Param end query string true "Range end, inclusive (RFC3339 or YYYY-MM-DD)"
// @Param limit query int false "Number of clients" default(2)
// @Success 200 {array} dto.ClientPaymentResponse
// @Failure 400 {object} map[string]string "Invalid range or limit"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to generate report"
// @Router /admin/best-clients [get]
func (h *reportingHandler) getBestClients(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var q dto.BestClientsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		logger.Warn("Invalid best-clients query", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}
	start, end, err := parseRange(q.ReportRangeQuery)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	limit := 0
	if q.Limit != nil {
		limit = *q.Limit
	}

	clients, err := h.reportingService.BestClients(c.Request.Context(), start, end, limit)
	if err != nil {
		respondError(c, logger, err, "Failed to generate best clients report")
		return
	}

	c.JSON(http.StatusOK, dto.ToClientPaymentsResponse(clients))
}
