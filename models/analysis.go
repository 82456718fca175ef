package models

import (
	"time"

	"xray-education-service/prompts"
)

// AnalysisText is the model's free-text response kept as an opaque blob. The
// service never parses it into structured fields; it flows verbatim from the
// provider to the caller and into report export.
type AnalysisText string

// AnalysisRequest describes a single analysis call. Requests are built per
// upload, immutable once constructed, and discarded after the call returns.
type AnalysisRequest struct {
	Image           []byte
	MimeType        string
	Category        prompts.Category
	Region          string
	ClinicalContext string
	CustomPrompt    string

	// Sampling overrides; nil means the per-category default applies.
	Temperature *float64
	MaxTokens   *int
}

// AnalysisResult is the dispatcher's answer: the raw text plus the request
// echo and enough metadata to audit which template and provider served it.
type AnalysisResult struct {
	Text                AnalysisText    `json:"text"`
	Category            prompts.Category `json:"category"`
	Region              string          `json:"region,omitempty"`
	UsedDefaultTemplate bool            `json:"used_default_template"`
	Source              string          `json:"source"`
	Model               string          `json:"model"`
	CaseID              string          `json:"case_id"`
	GeneratedAt         time.Time       `json:"generated_at"`
	DurationMs          int64           `json:"duration_ms"`
}
