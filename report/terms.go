package report

import "strings"

var medicalAbbreviations = map[string]string{
	"rll": "RLL",
	"rul": "RUL",
	"rml": "RML",
	"lll": "LLL",
	"lul": "LUL",
	"ctr": "CTR",
	"pa":  "PA",
	"ap":  "AP",
	"cxr": "CXR",
	"ct":  "CT",
}

// FormatMedicalTerm normalizes common radiology shorthand to its standard
// capitalization. Unknown terms pass through unchanged.
func FormatMedicalTerm(term string) string {
	if expanded, ok := medicalAbbreviations[strings.ToLower(term)]; ok {
		return expanded
	}
	return term
}
