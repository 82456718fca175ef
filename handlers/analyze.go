package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"xray-education-service/imageprep"
	"xray-education-service/metrics"
	"xray-education-service/middleware"
	"xray-education-service/models"
	"xray-education-service/prompts"

	"github.com/gin-gonic/gin"
)

// AnalyzeImage runs one educational analysis over an uploaded radiograph.
// The multipart form carries the image file plus the analysis category,
// optional clinical context fields and optional sampling overrides.
func (h *Handlers) AnalyzeImage(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing image file (form field 'image')"})
		return
	}

	data, err := readUpload(file)
	if err != nil {
		c.JSON(uploadStatus(err), gin.H{"error": err.Error()})
		return
	}

	category, err := prompts.ParseCategory(c.DefaultPostForm("category", "full_report"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid analysis category"})
		return
	}

	customPrompt := c.PostForm("custom_prompt")
	if category == prompts.Custom && strings.TrimSpace(customPrompt) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Custom analysis requires a prompt"})
		return
	}

	clinical, ok := clinicalFromForm(c)
	if !ok {
		return
	}

	prepared := data
	mimeType := file.Header.Get("Content-Type")
	if c.DefaultPostForm("prepare", "true") != "false" {
		opts := imageprep.DefaultPrepareOptions()
		opts.Enhance = c.DefaultPostForm("enhance", "true") != "false"
		if h.config.MaxImageDimension > 0 {
			opts.MaxWidth = h.config.MaxImageDimension
			opts.MaxHeight = h.config.MaxImageDimension
		}

		prepared, mimeType, err = imageprep.PrepareBytes(data, opts)
		if err != nil {
			metrics.ImagePreparedTotal.WithLabelValues("error").Inc()
			c.JSON(http.StatusBadRequest, gin.H{"error": "Could not decode image"})
			return
		}
		metrics.ImagePreparedTotal.WithLabelValues("success").Inc()
	} else if mimeType == "" || mimeType == "application/octet-stream" {
		mimeType = http.DetectContentType(data)
	}

	req := &models.AnalysisRequest{
		Image:           prepared,
		MimeType:        mimeType,
		Category:        category,
		Region:          c.PostForm("region"),
		ClinicalContext: clinical.Format(),
		CustomPrompt:    customPrompt,
	}

	if v := c.PostForm("temperature"); v != "" {
		temp, err := strconv.ParseFloat(v, 64)
		if err != nil || temp < 0 || temp > 2 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid temperature"})
			return
		}
		req.Temperature = &temp
	}
	if v := c.PostForm("max_tokens"); v != "" {
		maxTokens, err := strconv.Atoi(v)
		if err != nil || maxTokens <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_tokens"})
			return
		}
		req.MaxTokens = &maxTokens
	}

	result, err := h.service.Analyze(req, middleware.SessionID(c))
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Analysis failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// clinicalFromForm reads the optional clinical context form fields. On a bad
// age it writes the error response and returns ok=false.
func clinicalFromForm(c *gin.Context) (models.ClinicalContext, bool) {
	clinical := models.ClinicalContext{
		Sex:        c.PostForm("sex"),
		ExamType:   c.PostForm("exam_type"),
		ExamDate:   c.PostForm("exam_date"),
		Comparison: c.PostForm("comparison"),
		History:    c.PostForm("clinical_history"),
	}

	if v := c.PostForm("age"); v != "" {
		age, err := strconv.Atoi(v)
		if err != nil || age < 0 || age > 150 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid age"})
			return models.ClinicalContext{}, false
		}
		clinical.Age = age
	}

	return clinical, true
}
