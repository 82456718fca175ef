package openai

import (
	"errors"
	"strings"
	"testing"
	"time"

	"xray-education-service/llm"
)

func TestNewRequiresAPIKey(t *testing.T) {
	_, err := New("", DefaultModel, 30*time.Second)
	if err == nil {
		t.Fatal("expected an error for a missing API key")
	}
	if !errors.Is(err, llm.ErrMissingAPIKey) {
		t.Errorf("error = %v, want ErrMissingAPIKey", err)
	}
}

func TestNewDefaults(t *testing.T) {
	c, err := New("test-key", "", 30*time.Second)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	if c.ModelName() != DefaultModel {
		t.Errorf("ModelName() = %q, want %q", c.ModelName(), DefaultModel)
	}
	if c.SourceName() != "ChatGPT" {
		t.Errorf("SourceName() = %q, want ChatGPT", c.SourceName())
	}
}

func TestEncodeImageToBase64(t *testing.T) {
	url := encodeImageToBase64([]byte{0x89, 0x50, 0x4e, 0x47}, "image/png")
	if !strings.HasPrefix(url, "data:image/png;base64,") {
		t.Errorf("encodeImageToBase64() = %q, want a data URL with the image/png prefix", url)
	}
}
