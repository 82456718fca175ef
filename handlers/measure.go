package handlers

import (
	"net/http"
	"strconv"

	"xray-education-service/imageprep"
	"xray-education-service/measure"

	"github.com/gin-gonic/gin"
)

// CTRRequest carries the two measured widths in pixels
type CTRRequest struct {
	HeartWidth float64 `json:"heart_width"`
	ChestWidth float64 `json:"chest_width"`
}

// CalculateCTR computes the cardiothoracic ratio from two measured widths
func (h *Handlers) CalculateCTR(c *gin.Context) {
	var req CTRRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.HeartWidth < 0 || req.ChestWidth < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Widths must not be negative"})
		return
	}

	ratio := measure.CalculateCTR(req.HeartWidth, req.ChestWidth)

	c.JSON(http.StatusOK, gin.H{
		"heart_width": req.HeartWidth,
		"chest_width": req.ChestWidth,
		"ctr":         ratio,
		"category":    measure.CategorizeCTR(ratio),
	})
}

// RenderCTROverlay draws the heart and chest measurement spans onto the
// uploaded radiograph and returns the annotated image as a PNG
func (h *Handlers) RenderCTROverlay(c *gin.Context) {
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

	heart, ok := spanFromForm(c, "heart")
	if !ok {
		return
	}
	chest, ok := spanFromForm(c, "chest")
	if !ok {
		return
	}

	out, err := measure.RenderOverlay(img, heart, chest)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.Data(http.StatusOK, "image/png", out)
}

// spanFromForm reads <prefix>_x1, <prefix>_x2 and <prefix>_y form fields.
// On a bad value it writes the error response and returns ok=false.
func spanFromForm(c *gin.Context, prefix string) (measure.Span, bool) {
	var span measure.Span
	fields := []struct {
		name string
		dst  *float64
	}{
		{prefix + "_x1", &span.X1},
		{prefix + "_x2", &span.X2},
		{prefix + "_y", &span.Y},
	}

	for _, field := range fields {
		v := c.PostForm(field.name)
		if v == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing form field " + field.name})
			return measure.Span{}, false
		}
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form field " + field.name})
			return measure.Span{}, false
		}
		*field.dst = f
	}

	return span, true
}
