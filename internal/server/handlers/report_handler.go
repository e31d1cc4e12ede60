package handlers

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lovelyhome/carehome/internal/domain/models"
	"github.com/lovelyhome/carehome/internal/export/roster"
	"github.com/lovelyhome/carehome/internal/service/admin"
	"github.com/lovelyhome/carehome/internal/service/reporting"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// maxAgendaDays bounds the ?days= look-ahead.
const maxAgendaDays = 366

// ReportArchiveReader reads back archived daily reports.
type ReportArchiveReader interface {
	LatestOccupancyReport(ctx context.Context) (*models.OccupancyReport, error)
}

// ReportHandler serves analytics and the roster export.
type ReportHandler struct {
	reports *reporting.Service
	admin   *admin.Service
	archive ReportArchiveReader
	now     func() time.Time
	logger  *zap.Logger
}

// NewReportHandler constructs the report handler. archive may be nil.
func NewReportHandler(reports *reporting.Service, adminSvc *admin.Service, archive ReportArchiveReader, logger *zap.Logger) *ReportHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportHandler{reports: reports, admin: adminSvc, archive: archive, now: time.Now, logger: logger}
}

// Occupancy returns the text summary and today's aggregated report.
func (h *ReportHandler) Occupancy(c *gin.Context) {
	summary, err := h.reports.OccupancySummary(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"summary": summary,
		"report":  h.reports.BuildDailyReport(h.now()),
	})
}

// Checkups lists upcoming and overdue checkups within ?days= (default from config).
func (h *ReportHandler) Checkups(c *gin.Context) {
	days := h.reports.WindowDays()
	if raw := c.Query("days"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 || n > maxAgendaDays {
			respondError(c, h.logger, fmt.Errorf("%w: days must be between 0 and %d", errInvalidRequest, maxAgendaDays))
			return
		}
		days = n
	}

	c.JSON(http.StatusOK, gin.H{
		"days":  days,
		"items": h.reports.CheckupAgenda(h.now(), days),
	})
}

// LatestArchived returns the most recent archived daily report.
func (h *ReportHandler) LatestArchived(c *gin.Context) {
	if h.archive == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "report archive is not configured"})
		return
	}
	report, err := h.archive.LatestOccupancyReport(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	if report == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no archived reports yet"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"report": report})
}

// ExportRoster downloads homes and residents as an xlsx workbook.
func (h *ReportHandler) ExportRoster(c *gin.Context) {
	data, err := roster.Workbook(h.admin.Homes(), h.admin.Residents())
	if err != nil {
		respondError(c, h.logger, err)
		return
	}

	filename := fmt.Sprintf("roster-%s.xlsx", h.now().Format(models.DateLayout))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, data)
}
