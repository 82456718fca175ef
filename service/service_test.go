package service

import (
	"strings"
	"testing"

	"xray-education-service/config"
	"xray-education-service/models"
	"xray-education-service/prompts"
)

func stubService(t *testing.T) *Service {
	t.Helper()
	cfg := &config.Config{LLMProvider: "stub"}
	s, err := NewService(cfg, nil)
	if err != nil {
		t.Fatalf("NewService(): unexpected error: %v", err)
	}
	return s
}

func TestAnalyzeFullReport(t *testing.T) {
	s := stubService(t)

	req := &models.AnalysisRequest{
		Image:           []byte("fake-image-bytes"),
		MimeType:        "image/png",
		Category:        prompts.FullReport,
		ClinicalContext: "Patient: 45 year old male",
	}

	result, err := s.Analyze(req, "")
	if err != nil {
		t.Fatalf("Analyze(): unexpected error: %v", err)
	}

	if result.Text == "" {
		t.Errorf("Analyze(): expected non-empty analysis text")
	}
	if result.Source != "Stub" {
		t.Errorf("Analyze(): expected source Stub, got %s", result.Source)
	}
	if result.Model != "stub" {
		t.Errorf("Analyze(): expected model stub, got %s", result.Model)
	}
	if !strings.HasPrefix(result.CaseID, "CASE_") {
		t.Errorf("Analyze(): expected CASE_ prefixed case ID, got %s", result.CaseID)
	}
	if result.UsedDefaultTemplate {
		t.Errorf("Analyze(): full report should never use the region fallback")
	}
	if result.GeneratedAt.IsZero() {
		t.Errorf("Analyze(): expected GeneratedAt to be set")
	}
	if result.DurationMs < 0 {
		t.Errorf("Analyze(): negative duration %d", result.DurationMs)
	}
}

func TestAnalyzeKnownRegion(t *testing.T) {
	s := stubService(t)

	req := &models.AnalysisRequest{
		Image:    []byte("fake-image-bytes"),
		MimeType: "image/jpeg",
		Category: prompts.AnatomyRegion,
		Region:   "Chest Wall",
	}

	result, err := s.Analyze(req, "")
	if err != nil {
		t.Fatalf("Analyze(): unexpected error: %v", err)
	}

	if result.Region != "chest_wall" {
		t.Errorf("Analyze(): expected region chest_wall, got %s", result.Region)
	}
	if result.UsedDefaultTemplate {
		t.Errorf("Analyze(): known region should not fall back to default")
	}
}

func TestAnalyzeUnknownRegionFallsBack(t *testing.T) {
	s := stubService(t)

	req := &models.AnalysisRequest{
		Image:    []byte("fake-image-bytes"),
		MimeType: "image/jpeg",
		Category: prompts.AnatomyRegion,
		Region:   "elbow",
	}

	result, err := s.Analyze(req, "")
	if err != nil {
		t.Fatalf("Analyze(): unexpected error: %v", err)
	}

	if !result.UsedDefaultTemplate {
		t.Errorf("Analyze(): unknown region should report the default template")
	}
	if result.Region != "lungs" {
		t.Errorf("Analyze(): expected fallback region lungs, got %s", result.Region)
	}
}

func TestAnalyzeCustomRequiresPrompt(t *testing.T) {
	s := stubService(t)

	req := &models.AnalysisRequest{
		Image:    []byte("fake-image-bytes"),
		MimeType: "image/png",
		Category: prompts.Custom,
	}

	if _, err := s.Analyze(req, ""); err == nil {
		t.Errorf("Analyze(): expected error for custom category without a prompt")
	}
}

func TestAnalyzeDeterministicWithStub(t *testing.T) {
	s := stubService(t)

	req := &models.AnalysisRequest{
		Image:    []byte("fake-image-bytes"),
		MimeType: "image/png",
		Category: prompts.TechnicalQuality,
	}

	first, err := s.Analyze(req, "")
	if err != nil {
		t.Fatalf("Analyze(): unexpected error: %v", err)
	}
	second, err := s.Analyze(req, "")
	if err != nil {
		t.Fatalf("Analyze(): unexpected error: %v", err)
	}

	if first.Text != second.Text {
		t.Errorf("Analyze(): stub provider should be deterministic for identical requests")
	}
}

func TestAnalyzeSamplingOverrides(t *testing.T) {
	s := stubService(t)

	temp := 0.9
	maxTokens := 128
	req := &models.AnalysisRequest{
		Image:       []byte("fake-image-bytes"),
		MimeType:    "image/png",
		Category:    prompts.PatternRecognition,
		Temperature: &temp,
		MaxTokens:   &maxTokens,
	}

	if _, err := s.Analyze(req, ""); err != nil {
		t.Fatalf("Analyze(): unexpected error with sampling overrides: %v", err)
	}
}

func TestNewServiceStubProvider(t *testing.T) {
	s := stubService(t)
	if s.Progress() != nil {
		t.Errorf("Progress(): expected nil store when no database is configured")
	}
}
