// Package stubllm is a deterministic, no-network model client intended for
// CI and local end-to-end tests. Its prose tracks the prompt's subject so
// downstream formatting, export and display exercise realistic content.
package stubllm

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"xray-education-service/llm"
)

type Client struct{}

func NewClient() *Client { return &Client{} }

func (c *Client) SourceName() string { return "Stub" }

func (c *Client) ModelName() string { return "stub" }

func (c *Client) AnalyzeImage(imageData []byte, mimeType, prompt string, gen llm.GenerationConfig) (string, error) {
	// Deterministic per-input so end-to-end assertions are stable in CI.
	sum := sha256.Sum256(append([]byte(prompt), imageData...))
	short := hex.EncodeToString(sum[:8])

	switch {
	case strings.Contains(prompt, "Generate a comprehensive radiology report"):
		return fmt.Sprintf(`EXAMINATION: Chest X-ray, PA and lateral views

TECHNICAL QUALITY: The examination is adequate for interpretation.

FINDINGS:
The lungs are clear bilaterally. Heart size is normal. No pleural effusion or pneumothorax.

IMPRESSION:
1. No acute cardiopulmonary process.

[stub report %s]`, short), nil
	case strings.Contains(prompt, "technical quality"):
		return fmt.Sprintf("TECHNICAL QUALITY ASSESSMENT\n\nPositioning: No rotation. Penetration: Adequate. "+
			"Inspiration: 10 posterior ribs visible. Motion: No blurring.\n\nOverall Quality Score: 9/10. [stub %s]", short), nil
	case strings.Contains(prompt, "diagnostic patterns"):
		return fmt.Sprintf("PATTERN ANALYSIS\n\nPrimary pattern: none identified; the lungs are clear. "+
			"No interstitial, air space, nodular or cavitary pattern. [stub %s]", short), nil
	default:
		return fmt.Sprintf("SYSTEMATIC REVIEW\n\nThe reviewed region demonstrates no acute abnormality. [stub %s]", short), nil
	}
}
