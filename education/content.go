// Package education holds the static teaching content: reference knowledge,
// region learning points, guided cases and the self-assessment quiz.
package education

import "strings"

// Regions lists the anatomic regions of the systematic review, in reading
// order.
func Regions() []string {
	return []string{
		"Chest Wall",
		"Mediastinum",
		"Hila",
		"Lungs",
		"Airways",
		"Pleura and Diaphragm",
	}
}

// TechnicalParameters lists the technical quality parameters assessed before
// any interpretation.
func TechnicalParameters() []string {
	return []string{
		"Positioning",
		"Penetration",
		"Inspiration",
		"Motion",
	}
}

// Tip is a short coaching note shown next to an analysis step.
type Tip struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

var tips = map[string]Tip{
	"positioning": {
		Title: "Positioning",
		Body: "Check if spinous processes are equidistant from medial clavicles. " +
			"If not, the patient is rotated, which can simulate or hide pathology.",
	},
	"inspiration": {
		Title: "Inspiration",
		Body: "Count the ribs! You should see at least 6 anterior ribs or 10 posterior ribs. " +
			"Poor inspiration can make the heart look bigger (false cardiomegaly).",
	},
	"silhouette": {
		Title: "Silhouette Sign",
		Body: "When a normal border disappears, look for adjacent pathology: " +
			"right heart border -> RML, left heart border -> lingula, diaphragm -> lower lobes.",
	},
	"air_bronchogram": {
		Title: "Air Bronchograms",
		Body: "Visible air-filled bronchi in consolidated lung = air space disease. " +
			"If you see air bronchograms, it is not purely interstitial.",
	},
}

// TipFor returns the coaching note for a category. Categories are matched
// case-insensitively.
func TipFor(category string) (Tip, bool) {
	t, ok := tips[strings.ToLower(strings.TrimSpace(category))]
	return t, ok
}

// TipCategories lists the available tip categories.
func TipCategories() []string {
	return []string{"positioning", "inspiration", "silhouette", "air_bronchogram"}
}

// TechnicalChecklist is the set of criteria that make one technical
// parameter adequate.
type TechnicalChecklist struct {
	Parameter string   `json:"parameter"`
	Criteria  []string `json:"criteria"`
}

// RegionGuide summarizes what to look for in one anatomic region.
type RegionGuide struct {
	Name      string   `json:"name"`
	Overview  string   `json:"overview"`
	KeyPoints []string `json:"key_points"`
}

// PatternGuide maps a radiographic pattern to its differential diagnosis.
type PatternGuide struct {
	Pattern      string   `json:"pattern"`
	Description  string   `json:"description"`
	Differential []string `json:"differential"`
}

// KnowledgeBase is the complete reference content served to the learner.
type KnowledgeBase struct {
	Technical []TechnicalChecklist `json:"technical"`
	Regions   []RegionGuide        `json:"regions"`
	Patterns  []PatternGuide       `json:"patterns"`
	QuickTips []Tip                `json:"quick_tips"`
}

// ReferenceKnowledge returns the full knowledge base.
func ReferenceKnowledge() KnowledgeBase {
	return KnowledgeBase{
		Technical: []TechnicalChecklist{
			{
				Parameter: "Positioning",
				Criteria: []string{
					"Spinous processes midline between clavicular heads",
					"Scapulae rotated laterally (elbows forward)",
					"No rotation of thorax",
					"Symmetric rib spacing",
				},
			},
			{
				Parameter: "Penetration",
				Criteria: []string{
					"Vertebral bodies faintly visible through mediastinum",
					"Lung fields appear gray (not black or white)",
					"Vascular markings clearly visible",
					"Can see through cardiac silhouette",
				},
			},
			{
				Parameter: "Inspiration",
				Criteria: []string{
					"Right hemidiaphragm at 6th anterior rib",
					"Or 10th posterior rib at mid-clavicular line",
					"Adequate lung expansion",
					"Costophrenic angles visible",
				},
			},
			{
				Parameter: "Motion",
				Criteria: []string{
					"Sharp rib cortices",
					"Sharp vessel margins",
					"Sharp diaphragm contours",
					"No cardiac border blurring",
				},
			},
		},
		Regions: []RegionGuide{
			{
				Name:     "Chest Wall",
				Overview: "Check symmetry, rib integrity, soft tissues, breast shadows",
				KeyPoints: []string{
					"Evaluate rib fractures, lytic or blastic lesions",
					"Assess soft tissue emphysema",
					"Check breast shadows (bilateral, symmetric)",
					"Look for surgical clips or previous surgery",
				},
			},
			{
				Name:     "Mediastinum",
				Overview: "Heart size/shape, aortic arch, SVC, lines/stripes",
				KeyPoints: []string{
					"Cardiothoracic ratio (normal <50% on PA view)",
					"Aortic knob contour and calcification",
					"Mediastinal widening or mass",
					"Tracheal deviation",
				},
			},
			{
				Name:     "Hila",
				Overview: "Right normally lower than left, assess size/density",
				KeyPoints: []string{
					"Hilar point: right at 6th rib, left at 5th rib",
					"Hilar overlay sign for masses",
					"Lymphadenopathy evaluation",
					"Vascular vs mass density",
				},
			},
			{
				Name:     "Lungs",
				Overview: "Volumes, vascularity, opacities (air space vs interstitial)",
				KeyPoints: []string{
					"Hyperinflation vs atelectasis",
					"Air space vs interstitial patterns",
					"Distribution: upper, lower, peripheral, central",
					"Cavitation, nodules, masses",
				},
			},
			{
				Name:     "Airways",
				Overview: "Trachea position, bronchi, bronchiectasis signs",
				KeyPoints: []string{
					"Tracheal deviation or narrowing",
					"Bronchial wall thickening",
					"Air bronchograms",
					"Bronchiectasis (tramtrack sign)",
				},
			},
			{
				Name:     "Pleura",
				Overview: "Effusions (meniscus sign), pneumothorax (pleural line)",
				KeyPoints: []string{
					"Blunted costophrenic angles",
					"Meniscus sign for effusion",
					"Pleural line for pneumothorax",
					"Pleural thickening or calcification",
				},
			},
		},
		Patterns: []PatternGuide{
			{
				Pattern:      "Reticular + Basal",
				Description:  "Fine linear opacities, predominantly lower lobes",
				Differential: []string{"UIP/IPF", "NSIP", "Asbestosis", "Collagen vascular disease"},
			},
			{
				Pattern:      "Nodular + Upper Zone",
				Description:  "Small nodules, upper lobe predominance",
				Differential: []string{"Tuberculosis", "Sarcoidosis", "Silicosis", "Langerhans cell histiocytosis"},
			},
			{
				Pattern:      "Perihilar",
				Description:  "Central distribution around hila",
				Differential: []string{"Sarcoidosis", "Lymphoma", "Pulmonary edema", "Kaposi sarcoma"},
			},
			{
				Pattern:      "Air Space (Consolidation)",
				Description:  "Fluffy opacities with air bronchograms",
				Differential: []string{"Pneumonia", "Pulmonary edema", "Hemorrhage", "Lipoid pneumonia"},
			},
			{
				Pattern:      "Miliary",
				Description:  "Diffuse tiny nodules (1-3mm)",
				Differential: []string{"Tuberculosis", "Fungal infection", "Metastases", "Sarcoidosis"},
			},
			{
				Pattern:      "Cavitary",
				Description:  "Thick or thin-walled cavities",
				Differential: []string{"Tuberculosis", "Lung abscess", "Squamous cell cancer", "Wegener's"},
			},
		},
		QuickTips: []Tip{
			{
				Title: "Remember ABC",
				Body:  "Airways, Breathing (lungs), Circulation (heart, vessels).",
			},
			{
				Title: "Silhouette Sign",
				Body: "Loss of normal border = adjacent density. " +
					"Right heart border -> RML, left heart border -> lingula, diaphragm -> lower lobes.",
			},
			{
				Title: "Air Bronchogram",
				Body:  "Air-filled bronchi visible in consolidated lung = air space disease, not interstitial.",
			},
			{
				Title: "Golden S Sign",
				Body:  "RUL collapse with hilar mass (S-shaped configuration).",
			},
			{
				Title: "Sail Sign",
				Body:  "LUL collapse in children (thymus displaced forward).",
			},
			{
				Title: "Hampton's Hump",
				Body:  "Peripheral wedge-shaped opacity = pulmonary infarction/PE.",
			},
			{
				Title: "Kerley Lines",
				Body:  "A lines: long, diagonal (upper). B lines: short, horizontal (lower). C lines: reticular (both).",
			},
		},
	}
}
