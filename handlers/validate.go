package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"

	"xray-education-service/metrics"
)

// MaxUploadBytes is the upload ceiling for radiograph files.
const MaxUploadBytes = 200 << 20 // 200 MB

var (
	ErrFileTooLarge    = errors.New("uploaded file exceeds the size limit")
	ErrUnsupportedType = errors.New("unsupported image type")
)

// allowedUploadTypes lists the declared content types accepted for uploads.
// Browsers that send application/octet-stream pass through here; the decoder
// still rejects anything that is not a real image.
var allowedUploadTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// readUpload validates the uploaded file and reads it into memory
func readUpload(file *multipart.FileHeader) ([]byte, error) {
	if file.Size > MaxUploadBytes {
		metrics.UploadRejectedTotal.WithLabelValues("too_large").Inc()
		return nil, ErrFileTooLarge
	}

	if ct := file.Header.Get("Content-Type"); ct != "" && ct != "application/octet-stream" && !allowedUploadTypes[ct] {
		metrics.UploadRejectedTotal.WithLabelValues("unsupported_type").Inc()
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedType, ct)
	}

	f, err := file.Open()
	if err != nil {
		metrics.UploadRejectedTotal.WithLabelValues("unreadable").Inc()
		return nil, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer f.Close()

	// The declared size is client-controlled; cap the actual read too
	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		metrics.UploadRejectedTotal.WithLabelValues("unreadable").Inc()
		return nil, fmt.Errorf("failed to read uploaded file: %w", err)
	}
	if int64(len(data)) > MaxUploadBytes {
		metrics.UploadRejectedTotal.WithLabelValues("too_large").Inc()
		return nil, ErrFileTooLarge
	}

	return data, nil
}

// uploadStatus maps an upload validation failure to an HTTP status code
func uploadStatus(err error) int {
	if errors.Is(err, ErrFileTooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return http.StatusBadRequest
}
