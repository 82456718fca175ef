package service

import (
	"fmt"
	"time"

	"xray-education-service/config"
	"xray-education-service/database"
	"xray-education-service/gemini"
	"xray-education-service/llm"
	"xray-education-service/metrics"
	"xray-education-service/models"
	"xray-education-service/openai"
	"xray-education-service/prompts"
	"xray-education-service/report"
	"xray-education-service/stubllm"

	"github.com/apex/log"
)

// Service represents the X-ray analysis service
type Service struct {
	config    *config.Config
	db        *database.Database
	llmClient llm.Client
}

// NewService creates a new analysis service. The vision provider is chosen
// by LLM_PROVIDER; "stub" runs a deterministic offline client for local
// development and tests.
func NewService(cfg *config.Config, db *database.Database) (*Service, error) {
	var client llm.Client
	var err error
	switch cfg.LLMProvider {
	case "openai":
		client, err = openai.New(cfg.OpenAIAPIKey, cfg.OpenAIModel, cfg.LLMTimeout)
	case "stub":
		client = stubllm.NewClient()
	default:
		client, err = gemini.New(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.LLMTimeout)
	}
	if err != nil {
		return nil, err
	}

	log.Infof("Analyzer LLM provider=%s model=%s", client.SourceName(), client.ModelName())

	return &Service{
		config:    cfg,
		db:        db,
		llmClient: client,
	}, nil
}

// Start prepares the learner progress store when one is configured
func (s *Service) Start() {
	if s.db == nil {
		log.Info("Progress store not configured, learner progress endpoints disabled")
		return
	}

	if err := s.db.CreateTables(); err != nil {
		log.Errorf("Failed to create progress tables: %v", err)
		// Continue without progress store - analysis still works
		s.db = nil
		return
	}

	if err := s.db.MigrateTables(); err != nil {
		log.Errorf("Failed to migrate progress tables: %v", err)
		s.db = nil
		return
	}
}

// Progress returns the learner progress store, or nil when it is disabled
func (s *Service) Progress() *database.Database {
	return s.db
}

// Analyze runs one educational analysis request through the configured
// vision model and returns the annotated result
func (s *Service) Analyze(req *models.AnalysisRequest, sessionID string) (*models.AnalysisResult, error) {
	promptText, usedDefault, err := prompts.Build(req.Category, req.Region, req.ClinicalContext, req.CustomPrompt)
	if err != nil {
		return nil, err
	}
	if usedDefault {
		metrics.RegionFallbackTotal.Inc()
		log.Warnf("Unknown anatomy region %q, using default template", req.Region)
	}

	gen := prompts.DefaultGeneration(req.Category)
	if req.Temperature != nil {
		gen.Temperature = *req.Temperature
	}
	if req.MaxTokens != nil {
		gen.MaxOutputTokens = *req.MaxTokens
	}

	category := req.Category.String()
	source := s.llmClient.SourceName()

	start := time.Now()
	text, err := s.llmClient.AnalyzeImage(req.Image, req.MimeType, promptText, gen)
	duration := time.Since(start)
	metrics.AnalysisDurationSeconds.WithLabelValues(category, source).Observe(duration.Seconds())

	region := ""
	if req.Category == prompts.AnatomyRegion {
		region = prompts.ResolveRegion(req.Region)
	}

	if err != nil {
		metrics.AnalysisTotal.WithLabelValues(category, source, "error").Inc()
		s.recordActivity(sessionID, "", category, region, usedDefault, duration, "error")
		return nil, fmt.Errorf("error analyzing image: %w", err)
	}
	metrics.AnalysisTotal.WithLabelValues(category, source, "success").Inc()

	now := time.Now()
	caseID := report.NewCaseID(now)

	result := &models.AnalysisResult{
		Text:                models.AnalysisText(text),
		Category:            req.Category,
		Region:              region,
		UsedDefaultTemplate: usedDefault,
		Source:              source,
		Model:               s.llmClient.ModelName(),
		CaseID:              caseID,
		GeneratedAt:         now,
		DurationMs:          duration.Milliseconds(),
	}

	s.recordActivity(sessionID, caseID, category, region, usedDefault, duration, "success")

	return result, nil
}

// recordActivity saves analysis metadata for a learner session. Image bytes
// and generated text stay out of the record.
func (s *Service) recordActivity(sessionID, caseID, category, region string, usedDefault bool, duration time.Duration, result string) {
	if s.db == nil || sessionID == "" {
		return
	}

	rec := &database.ActivityRecord{
		SessionID:           sessionID,
		CaseID:              caseID,
		Category:            category,
		Region:              region,
		Source:              s.llmClient.SourceName(),
		Model:               s.llmClient.ModelName(),
		UsedDefaultTemplate: usedDefault,
		DurationMs:          duration.Milliseconds(),
		Result:              result,
	}

	if err := s.db.RecordAnalysis(rec); err != nil {
		log.Warnf("Failed to record analysis activity: %v", err)
	}
}
