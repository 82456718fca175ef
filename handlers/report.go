package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"
	"time"

	"xray-education-service/metrics"
	"xray-education-service/models"
	"xray-education-service/report"

	"github.com/gin-gonic/gin"
)

// ComposeReport renders the manual report template, filling empty sections
// with standard normal phrases
func (h *Handlers) ComposeReport(c *gin.Context) {
	var fields report.TemplateFields
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"report": report.Compose(fields),
	})
}

// ExportRequest carries an analysis text and the clinical fields for the
// export document header
type ExportRequest struct {
	AnalysisText string                 `json:"analysis_text"`
	CaseID       string                 `json:"case_id"`
	Clinical     models.ClinicalContext `json:"clinical"`
}

// ExportReport wraps an analysis in the formal export document and returns
// it as a downloadable text file
func (h *Handlers) ExportReport(c *gin.Context) {
	var req ExportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.AnalysisText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "analysis_text is required"})
		return
	}

	caseID := req.CaseID
	if caseID == "" {
		caseID = report.NewCaseID(time.Now())
	}

	document := report.FormatForExport(models.AnalysisText(req.AnalysisText), req.Clinical, time.Now())
	metrics.ReportExportTotal.WithLabelValues("download").Inc()

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s_report.txt", caseID))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(document))
}

// EmailReportRequest carries everything needed to deliver a report by email.
// The overlay is optional and travels base64-encoded.
type EmailReportRequest struct {
	Recipient        string                 `json:"recipient"`
	AnalysisText     string                 `json:"analysis_text"`
	CaseID           string                 `json:"case_id"`
	Clinical         models.ClinicalContext `json:"clinical"`
	OverlayPNGBase64 string                 `json:"overlay_png_base64"`
}

// EmailReport formats the export document and delivers it to the recipient
func (h *Handlers) EmailReport(c *gin.Context) {
	if h.sender == nil || !h.config.EmailEnabled() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Email delivery is not configured"})
		return
	}

	var req EmailReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}
	if strings.TrimSpace(req.AnalysisText) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "analysis_text is required"})
		return
	}
	if req.Recipient == "" || !strings.Contains(req.Recipient, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid recipient address"})
		return
	}

	var overlay []byte
	if req.OverlayPNGBase64 != "" {
		decoded, err := base64.StdEncoding.DecodeString(req.OverlayPNGBase64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "overlay_png_base64 is not valid base64"})
			return
		}
		overlay = decoded
	}

	caseID := req.CaseID
	if caseID == "" {
		caseID = report.NewCaseID(time.Now())
	}

	document := report.FormatForExport(models.AnalysisText(req.AnalysisText), req.Clinical, time.Now())

	if err := h.sender.SendReport(req.Recipient, caseID, document, overlay); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to send report email"})
		return
	}
	metrics.ReportExportTotal.WithLabelValues("email").Inc()

	c.JSON(http.StatusOK, gin.H{
		"status":  "sent",
		"case_id": caseID,
	})
}
