package handlers

import (
	"net/http"
	"strconv"

	"xray-education-service/imageprep"
	"xray-education-service/metrics"

	"github.com/gin-gonic/gin"
)

const (
	defaultEdgeLowThreshold  = 50
	defaultEdgeHighThreshold = 150
)

// PrepareImage runs the submission pipeline over an upload and returns the
// prepared image bytes. The output format defaults to PNG; jpeg and webp are
// available for size-sensitive clients.
func (h *Handlers) PrepareImage(c *gin.Context) {
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

	img, _, err := imageprep.DecodeUpload(data)
	if err != nil {
		metrics.ImagePreparedTotal.WithLabelValues("error").Inc()
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not decode image"})
		return
	}

	opts := imageprep.DefaultPrepareOptions()
	opts.Enhance = c.DefaultPostForm("enhance", "true") != "false"
	if h.config.MaxImageDimension > 0 {
		opts.MaxWidth = h.config.MaxImageDimension
		opts.MaxHeight = h.config.MaxImageDimension
	}
	if v := c.PostForm("max_width"); v != "" {
		w, err := strconv.Atoi(v)
		if err != nil || w <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_width"})
			return
		}
		opts.MaxWidth = w
	}
	if v := c.PostForm("max_height"); v != "" {
		ht, err := strconv.Atoi(v)
		if err != nil || ht <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid max_height"})
			return
		}
		opts.MaxHeight = ht
	}

	quality := 90
	if v := c.PostForm("quality"); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil || q < 0 || q > 100 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid quality"})
			return
		}
		quality = q
	}

	prepared := imageprep.Prepare(img, opts)

	format := c.DefaultPostForm("format", "png")
	out, mimeType, err := imageprep.Encode(prepared, format, quality)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	metrics.ImagePreparedTotal.WithLabelValues("success").Inc()

	bounds := prepared.Bounds()
	c.Header("X-Image-Width", strconv.Itoa(bounds.Dx()))
	c.Header("X-Image-Height", strconv.Itoa(bounds.Dy()))
	c.Data(http.StatusOK, mimeType, out)
}

// ImageStats returns pixel statistics for an upload, both as received and
// after the submission pipeline, so learners can see what preparation does.
func (h *Handlers) ImageStats(c *gin.Context) {
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

	img, format, err := imageprep.DecodeUpload(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not decode image"})
		return
	}

	opts := imageprep.DefaultPrepareOptions()
	if h.config.MaxImageDimension > 0 {
		opts.MaxWidth = h.config.MaxImageDimension
		opts.MaxHeight = h.config.MaxImageDimension
	}
	prepared := imageprep.Prepare(img, opts)

	c.JSON(http.StatusOK, gin.H{
		"format":   format,
		"original": imageprep.ComputeStats(img),
		"prepared": imageprep.ComputeStats(prepared),
	})
}

// DetectEdges returns a Canny edge map of the upload as a PNG, a teaching
// aid for tracing heart and chest borders before a CTR measurement.
func (h *Handlers) DetectEdges(c *gin.Context) {
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

	img, _, err := imageprep.DecodeUpload(data)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Could not decode image"})
		return
	}

	low := defaultEdgeLowThreshold
	high := defaultEdgeHighThreshold
	if v := c.PostForm("low_threshold"); v != "" {
		low, err = strconv.Atoi(v)
		if err != nil || low < 0 || low > 255 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid low_threshold"})
			return
		}
	}
	if v := c.PostForm("high_threshold"); v != "" {
		high, err = strconv.Atoi(v)
		if err != nil || high < 0 || high > 255 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid high_threshold"})
			return
		}
	}

	// Edge detection runs on the display-sized image, not the raw upload
	maxDim := imageprep.DefaultMaxDimension
	if h.config.MaxImageDimension > 0 {
		maxDim = h.config.MaxImageDimension
	}
	resized := imageprep.Resize(img, maxDim, maxDim)

	edges := imageprep.DetectEdges(resized, low, high)
	out, mimeType, err := imageprep.Encode(edges, "png", 0)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to encode edge map"})
		return
	}

	c.Data(http.StatusOK, mimeType, out)
}
