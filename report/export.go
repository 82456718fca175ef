// Package report renders analysis output into the exportable educational
// report formats: the AI-assisted export document and the manual template.
package report

import (
	"fmt"
	"strings"
	"time"

	"xray-education-service/models"
)

var banner = strings.Repeat("=", 80)

// FormatForExport wraps an analysis body in the standard export document:
// delimiter banners, the educational-case header with patient and study
// metadata, the verbatim analysis text, then the generation timestamp and
// the fixed educational-use disclaimer.
func FormatForExport(analysis models.AnalysisText, meta models.ClinicalContext, generatedAt time.Time) string {
	header := fmt.Sprintf(`
%s
RADIOLOGY REPORT - EDUCATIONAL CASE
%s

Patient Information:
  Age: %d years
  Sex: %s

Study Information:
  Exam: %s
  Date: %s

Clinical History:
  %s

%s

`, banner, banner, meta.Age, meta.Sex, meta.ExamType, meta.ExamDate, meta.History, banner)

	footer := fmt.Sprintf(`

%s
Report generated: %s

DISCLAIMER: This report is AI-generated for educational purposes only.
Not for clinical use. Requires review by qualified radiologist.
%s
`, banner, generatedAt.Format("2006-01-02 15:04:05"), banner)

	return header + string(analysis) + footer
}
