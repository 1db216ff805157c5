package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/warungpo/preorder_api/internal/service"
	"github.com/warungpo/preorder_api/internal/utils"
)

// ReportHandler serves the dashboard sales reports and their exports.
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler constructs a ReportHandler.
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func reportRange(c *gin.Context) *service.ReportRange {
	return &service.ReportRange{
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
	}
}

// Summary handles GET /api/admin/reports/summary
func (h *ReportHandler) Summary(c *gin.Context) {
	summary, err := h.reportService.Summary(c.Request.Context(), reportRange(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Report summary retrieved", summary)
}

// ByVariant handles GET /api/admin/reports/by-variant
func (h *ReportHandler) ByVariant(c *gin.Context) {
	rows, err := h.reportService.ByVariant(c.Request.Context(), reportRange(c))
	if err != nil {
		respondError(c, err)
		return
	}
	utils.Success(c, 200, "Variant performance retrieved", rows)
}

// Export handles GET /api/admin/reports/export?type=summary|by-variant&format=csv|pdf
func (h *ReportHandler) Export(c *gin.Context) {
	typ := service.ExportType(c.DefaultQuery("type", string(service.ExportTypeSummary)))
	format := service.ExportFormat(c.DefaultQuery("format", string(service.ExportFormatCSV)))

	result, err := h.reportService.Export(c.Request.Context(), reportRange(c), typ, format)
	if err != nil {
		respondError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	c.Data(200, result.ContentType, result.Data)
}
