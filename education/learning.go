package education

import "strings"

// LearningPoints are the region-specific findings and pitfalls surfaced
// after an anatomy analysis.
type LearningPoints struct {
	Region         string   `json:"region"`
	CommonFindings []string `json:"common_findings"`
	Pitfalls       []string `json:"pitfalls"`
}

var learningPoints = map[string]LearningPoints{
	"chest_wall": {
		Region: "Chest Wall",
		CommonFindings: []string{
			"Rib fractures (acute vs old)",
			"Lytic lesions (metastases, myeloma)",
			"Blastic lesions (prostate mets, Paget's)",
			"Soft tissue emphysema",
			"Asymmetric breast shadows",
		},
		Pitfalls: []string{
			"Missing subtle rib fractures",
			"Confusing companion shadows with lesions",
			"Not correlating with clinical history",
		},
	},
	"mediastinum": {
		Region: "Mediastinum",
		CommonFindings: []string{
			"Cardiomegaly (CTR >50%)",
			"Mediastinal widening",
			"Aortic abnormalities",
			"Hiatal hernia",
			"Anterior mediastinal mass",
		},
		Pitfalls: []string{
			"False cardiomegaly on AP films",
			"Missing lymphadenopathy",
			"Not recognizing aortic dissection",
		},
	},
	"hila": {
		Region: "Hila",
		CommonFindings: []string{
			"Hilar lymphadenopathy",
			"Hilar masses",
			"Vascular enlargement",
			"Asymmetric hila",
		},
		Pitfalls: []string{
			"Confusing vessels with lymph nodes",
			"Missing unilateral enlargement",
			"Not using lateral view for confirmation",
		},
	},
	"lungs": {
		Region: "Lungs",
		CommonFindings: []string{
			"Consolidation (air space disease)",
			"Interstitial patterns",
			"Nodules and masses",
			"Atelectasis",
			"Hyperinflation",
		},
		Pitfalls: []string{
			"Missing subtle infiltrates",
			"Confusing atelectasis with infiltrate",
			"Not describing distribution pattern",
		},
	},
	"airways": {
		Region: "Airways",
		CommonFindings: []string{
			"Tracheal deviation",
			"Bronchial wall thickening",
			"Air bronchograms",
			"Bronchiectasis",
		},
		Pitfalls: []string{
			"Missing tracheal narrowing",
			"Not recognizing air trapping",
			"Overlooking foreign bodies",
		},
	},
	"pleura": {
		Region: "Pleura",
		CommonFindings: []string{
			"Pleural effusion",
			"Pneumothorax",
			"Pleural thickening",
			"Pleural calcification",
		},
		Pitfalls: []string{
			"Missing small pneumothorax",
			"Confusing fissures with pneumothorax",
			"Not identifying loculated effusions",
		},
	},
}

// LearningPointsFor returns the learning points for a region. Lookup is
// case- and separator-insensitive; "Pleura and Diaphragm" shares the pleura
// entry.
func LearningPointsFor(region string) (LearningPoints, bool) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(region)), " ", "_")
	if key == "pleura_and_diaphragm" {
		key = "pleura"
	}
	lp, ok := learningPoints[key]
	return lp, ok
}

// ReviewStep is one stage of the systematic reading sequence.
type ReviewStep struct {
	Order int      `json:"order"`
	Name  string   `json:"name"`
	Items []string `json:"items"`
}

// SystematicApproach returns the eight-step reading sequence the whole
// curriculum is built around.
func SystematicApproach() []ReviewStep {
	return []ReviewStep{
		{1, "Technical Quality (PRIM)", []string{
			"Positioning", "Rotation/Penetration", "Inspiration", "Motion",
		}},
		{2, "Support Devices & Lines", []string{
			"Endotracheal tubes", "Central venous catheters", "Nasogastric tubes",
			"Chest tubes", "Pacemakers/ICDs", "Surgical clips/hardware",
		}},
		{3, "Chest Wall", []string{
			"Soft tissues (emphysema, masses)", "Ribs (fractures, lesions)",
			"Clavicles", "Scapulae", "Breast shadows",
		}},
		{4, "Mediastinum", []string{
			"Heart size (CTR)", "Heart borders", "Aortic arch", "Mediastinal width", "Hiatus",
		}},
		{5, "Hila", []string{
			"Size (normal, enlarged)", "Position (right lower than left)", "Density", "Contour",
		}},
		{6, "Lungs", []string{
			"Volumes", "Symmetry", "Vascularity", "Opacities (location, pattern)",
			"Cavities", "Masses/nodules",
		}},
		{7, "Airways", []string{
			"Trachea (position, caliber)", "Carina", "Main bronchi", "Air bronchograms",
		}},
		{8, "Pleura & Diaphragm", []string{
			"Pleural effusion", "Pneumothorax", "Pleural thickening",
			"Diaphragm position", "Costophrenic angles", "Free air under diaphragm",
		}},
	}
}

// ChecklistItems are the systematic review steps a learner ticks off, in
// order. The same keys identify module progress in the progress store.
func ChecklistItems() []string {
	return []string{
		"technical_quality",
		"devices_lines",
		"chest_wall",
		"mediastinum",
		"hila",
		"lungs",
		"airways",
		"pleura",
	}
}

// NewChecklist returns a fresh, unticked checklist.
func NewChecklist() map[string]bool {
	items := ChecklistItems()
	checklist := make(map[string]bool, len(items))
	for _, item := range items {
		checklist[item] = false
	}
	return checklist
}
