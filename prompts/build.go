package prompts

import (
	"fmt"
	"strings"

	"xray-education-service/llm"
)

const (
	defaultMaxTokens = 2048
	reportMaxTokens  = 3000
)

// Build translates an analysis request into the instruction string for the
// model. The boolean reports whether an unknown anatomy region fell back to
// the default lungs template; the fallback itself is preserved behavior, the
// flag only makes it observable to callers.
func Build(category Category, region, clinicalContext, customPrompt string) (string, bool, error) {
	switch category {
	case TechnicalQuality:
		return technicalQualityPrompt, false, nil
	case AnatomyRegion:
		prompt, usedDefault := lookupRegionPrompt(region)
		return prompt, usedDefault, nil
	case PatternRecognition:
		return patternRecognitionPrompt, false, nil
	case FullReport:
		history := strings.TrimSpace(clinicalContext)
		if history == "" {
			history = "Not provided"
		}
		return fmt.Sprintf(reportPromptFormat, history), false, nil
	case Custom:
		if strings.TrimSpace(customPrompt) == "" {
			return "", false, fmt.Errorf("custom analysis requires a prompt")
		}
		return customPrompt, false, nil
	}
	return "", false, fmt.Errorf("unknown analysis category %q", category)
}

// lookupRegionPrompt resolves a region name case- and separator-insensitively.
// Unknown regions resolve to the lungs template instead of failing.
func lookupRegionPrompt(region string) (string, bool) {
	key := NormalizeRegion(region)
	if prompt, ok := anatomyPrompts[key]; ok {
		return prompt, false
	}
	return anatomyPrompts[defaultRegionKey], true
}

// ResolveRegion returns the normalized region key that a lookup would use,
// after fallback. Handy for echoing the effective region in responses.
func ResolveRegion(region string) string {
	key := NormalizeRegion(region)
	if _, ok := anatomyPrompts[key]; ok {
		return key
	}
	return defaultRegionKey
}

// DefaultGeneration returns the documented sampling defaults per category:
// report generation runs cooler with a larger output budget, pattern
// recognition and custom prompts slightly warmer.
func DefaultGeneration(category Category) llm.GenerationConfig {
	switch category {
	case FullReport:
		return llm.GenerationConfig{Temperature: 0.3, MaxOutputTokens: reportMaxTokens}
	case PatternRecognition, Custom:
		return llm.GenerationConfig{Temperature: 0.5, MaxOutputTokens: defaultMaxTokens}
	default:
		return llm.GenerationConfig{Temperature: 0.4, MaxOutputTokens: defaultMaxTokens}
	}
}
