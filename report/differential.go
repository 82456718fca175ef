package report

import "strings"

// Differentials suggests candidate diagnoses for a set of findings. The
// rules are keyword-driven and intentionally coarse: they exist to prompt
// the learner's own reasoning, not to rank likelihoods. Patient age above
// 50 adds the malignancy considerations for nodular patterns; pass 0 when
// age is unknown.
func Differentials(findings []string, patientAge int) []string {
	var out []string
	keywords := strings.ToLower(strings.Join(findings, " "))

	if strings.Contains(keywords, "consolidation") {
		out = append(out, "Pneumonia", "Pulmonary edema", "Hemorrhage")
	}
	if strings.Contains(keywords, "nodular") {
		if patientAge > 50 {
			out = append(out, "Metastases", "Primary lung cancer")
		}
		out = append(out, "Tuberculosis", "Fungal infection", "Sarcoidosis")
	}
	if strings.Contains(keywords, "reticular") {
		out = append(out, "Interstitial lung disease", "Pulmonary fibrosis")
	}
	if strings.Contains(keywords, "pleural effusion") {
		out = append(out, "CHF", "Pneumonia", "Malignancy")
	}
	return out
}
