package education

// TeachingCase is a guided case worked through with progressive disclosure:
// presentation first, then history and vitals, then expert findings and the
// learning points.
type TeachingCase struct {
	ID             string   `json:"id"`
	Title          string   `json:"title"`
	Presentation   string   `json:"presentation"`
	History        string   `json:"history"`
	Vitals         string   `json:"vitals"`
	Labs           string   `json:"labs"`
	Findings       []string `json:"findings"`
	Diagnosis      string   `json:"diagnosis"`
	LearningPoints []string `json:"learning_points"`
}

var teachingCases = []TeachingCase{
	{
		ID:           "rll-pneumonia",
		Title:        "Case 1: Right Lower Lobe Pneumonia",
		Presentation: "67-year-old male with fever, cough, and right-sided chest pain for 3 days.",
		History:      "History of COPD, current smoker (40 pack-years)",
		Vitals:       "T: 38.9C, HR: 105, RR: 24, O2 sat: 91% on room air",
		Labs:         "WBC 15,000, CRP elevated",
		Findings: []string{
			"Right lower lobe consolidation",
			"Air bronchograms present",
			"Silhouette sign - right heart border preserved, diaphragm obscured",
			"Small right pleural effusion",
		},
		Diagnosis: "Right lower lobe pneumonia with parapneumonic effusion",
		LearningPoints: []string{
			"RLL pneumonia affects posterior segment more than lateral",
			"Air bronchograms confirm air space disease",
			"Preserved right heart border rules out RML involvement",
			"Consider CURB-65 score for admission decision",
		},
	},
	{
		ID:           "chf",
		Title:        "Case 2: Congestive Heart Failure",
		Presentation: "72-year-old female with progressive dyspnea and leg swelling over 1 week.",
		History:      "Known heart failure, medication non-compliance",
		Vitals:       "T: 37.1C, HR: 98, RR: 28, O2 sat: 88% on room air",
		Labs:         "BNP 1250, Cr 1.8",
		Findings: []string{
			"Cardiomegaly (CTR >60%)",
			"Bilateral perihilar opacities ('bat wing' pattern)",
			"Cephalization of pulmonary vessels",
			"Bilateral pleural effusions",
			"Kerley B lines at bases",
		},
		Diagnosis: "Acute decompensated heart failure with pulmonary edema",
		LearningPoints: []string{
			"Cardiogenic vs non-cardiogenic edema",
			"Perihilar distribution suggests cardiogenic",
			"Pleural effusions more common with heart failure",
			"Look for previous films to assess acuity",
		},
	},
	{
		ID:           "spontaneous-pneumothorax",
		Title:        "Case 3: Spontaneous Pneumothorax",
		Presentation: "24-year-old tall, thin male with sudden onset left chest pain and SOB.",
		History:      "Previously healthy, non-smoker",
		Vitals:       "T: 37.0C, HR: 110, RR: 24, O2 sat: 93% on room air",
		Labs:         "Normal",
		Findings: []string{
			"Left pneumothorax (~30% collapse)",
			"Visible visceral pleural line",
			"Absent lung markings peripherally",
			"Trachea midline (no tension)",
			"No mediastinal shift",
		},
		Diagnosis: "Primary spontaneous pneumothorax",
		LearningPoints: []string{
			"Common in tall, thin young males",
			"Look for pleural line parallel to chest wall",
			"Assess size: measure at hilum level",
			"Tension PTX: tracheal deviation, hemidiaphragm depression",
		},
	},
}

// Cases returns all guided teaching cases.
func Cases() []TeachingCase {
	out := make([]TeachingCase, len(teachingCases))
	copy(out, teachingCases)
	return out
}

// CaseByID looks up one teaching case.
func CaseByID(id string) (TeachingCase, bool) {
	for _, c := range teachingCases {
		if c.ID == id {
			return c, true
		}
	}
	return TeachingCase{}, false
}
