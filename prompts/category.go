package prompts

import (
	"fmt"
	"strings"
)

// Category identifies one of the closed set of analysis workflows. Dispatch
// over categories is always an exhaustive switch; unknown values are an
// error, never a silent default.
type Category int

const (
	TechnicalQuality Category = iota
	AnatomyRegion
	PatternRecognition
	FullReport
	Custom
)

var categoryNames = map[Category]string{
	TechnicalQuality:   "technical_quality",
	AnatomyRegion:      "anatomy_region",
	PatternRecognition: "pattern_recognition",
	FullReport:         "full_report",
	Custom:             "custom",
}

func (c Category) String() string {
	if name, ok := categoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// MarshalText renders the category as its wire name in JSON responses.
func (c Category) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// ParseCategory resolves a wire name to a Category. Matching is
// case-insensitive and tolerates surrounding whitespace.
func ParseCategory(s string) (Category, error) {
	normalized := strings.ToLower(strings.TrimSpace(s))
	for c, name := range categoryNames {
		if normalized == name {
			return c, nil
		}
	}
	return 0, fmt.Errorf("unknown analysis category %q", s)
}

// NormalizeRegion reduces a region name to its lookup key: lowercase with
// spaces collapsed to underscores. "Chest Wall", "chest_wall" and
// "CHEST WALL" all map to "chest_wall".
func NormalizeRegion(region string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(region)), " ", "_")
}
