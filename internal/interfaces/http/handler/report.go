package handler

import (
	"context"
	"errors"
	"mime"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/insurance/backend/internal/application/reporting"
	"github.com/insurance/backend/internal/domain/claims"
	"github.com/insurance/backend/internal/domain/shared/valueobject"
	"github.com/insurance/backend/internal/infrastructure/export"
	"github.com/insurance/backend/internal/infrastructure/scheduler"
	"github.com/insurance/backend/internal/interfaces/http/dto"
)

// ExportRecorder counts rendered exports
type ExportRecorder interface {
	ExportRendered(format string)
}

// Warmup is the scheduled job keeping the report cache filled
type Warmup interface {
	TriggerManualRun(ctx context.Context) error
	GetStatus() map[string]any
}

// ReportHandler serves the claims-by-month report and its downloads
type ReportHandler struct {
	BaseHandler
	reports  *reporting.Service
	recorder ExportRecorder
	warmup   Warmup
}

// NewReportHandler creates a new ReportHandler. recorder may be nil.
func NewReportHandler(reports *reporting.Service, recorder ExportRecorder) *ReportHandler {
	return &ReportHandler{reports: reports, recorder: recorder}
}

// WithWarmup exposes the warm-up job through WarmupStatus and RunWarmup
func (h *ReportHandler) WithWarmup(w Warmup) *ReportHandler {
	h.warmup = w
	return h
}

// ClaimsByMonthResponse is the JSON form of the report
type ClaimsByMonthResponse struct {
	Currency valueobject.Currency   `json:"currency"`
	Rows     []claims.MonthlyClaims `json:"rows"`
}

// ClaimsByMonth handles GET /api/reports/claims-by-month?currency=USD
func (h *ReportHandler) ClaimsByMonth(c *gin.Context) {
	currency := valueobject.ParseCurrency(c.Query("currency"))
	rows, err := h.reports.ClaimsByMonth(c.Request.Context(), currency)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ClaimsByMonthResponse{Currency: currency, Rows: rows})
}

// ExportExcel downloads the report as a spreadsheet
func (h *ReportHandler) ExportExcel(c *gin.Context) {
	h.export(c, "excel", export.ExcelContentType, export.ExcelFileName, export.ClaimsByMonthExcel)
}

// ExportPDF downloads the report as a PDF
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	h.export(c, "pdf", export.PDFContentType, export.PDFFileName, export.ClaimsByMonthPDF)
}

// WarmupStatus handles GET /api/reports/warmup
func (h *ReportHandler) WarmupStatus(c *gin.Context) {
	if h.warmup == nil {
		h.warmupUnavailable(c)
		return
	}
	h.Success(c, h.warmup.GetStatus())
}

// RunWarmup handles POST /api/reports/warmup and refreshes the cache immediately
func (h *ReportHandler) RunWarmup(c *gin.Context) {
	if h.warmup == nil {
		h.warmupUnavailable(c)
		return
	}
	if err := h.warmup.TriggerManualRun(c.Request.Context()); err != nil {
		if errors.Is(err, scheduler.ErrSchedulerNotRunning) {
			h.warmupUnavailable(c)
			return
		}
		h.InternalError(c, "Report warm-up failed")
		return
	}
	h.Success(c, h.warmup.GetStatus())
}

func (h *ReportHandler) warmupUnavailable(c *gin.Context) {
	h.Error(c, http.StatusServiceUnavailable, dto.ErrCodeWarmupUnavailable, "Report warm-up is not scheduled")
}

type renderFunc func([]claims.MonthlyClaims, valueobject.Currency) ([]byte, error)

func (h *ReportHandler) export(c *gin.Context, format, contentType, fileName string, render renderFunc) {
	currency := valueobject.ParseCurrency(c.Query("currency"))
	rows, err := h.reports.ClaimsByMonth(c.Request.Context(), currency)
	if err != nil {
		h.HandleError(c, err)
		return
	}

	data, err := render(rows, currency)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	if h.recorder != nil {
		h.recorder.ExportRendered(format)
	}

	c.Header("Content-Disposition", mime.FormatMediaType("attachment", map[string]string{"filename": fileName}))
	c.Data(http.StatusOK, contentType, data)
}
