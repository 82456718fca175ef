package report

import (
	"fmt"
	"strings"
)

// Standard phrases substituted for template sections the learner leaves
// empty.
const (
	DefaultExamination = "Chest radiograph, PA and lateral views"
	DefaultTechnical   = "The examination is adequate for interpretation. Patient positioning is satisfactory. Adequate inspiration. No motion artifact."
	DefaultDevices     = "None."
	DefaultChestWall   = "Soft tissues and osseous structures are unremarkable."
	DefaultMediastinum = "Heart size and mediastinal contours are normal."
	DefaultLungs       = "The lungs are clear bilaterally."
	DefaultPleura      = "No pleural effusion or pneumothorax."
	DefaultImpression  = "No acute cardiopulmonary process."
)

// TemplateFields are the sections of the manual report template, in the
// order they appear in the rendered report.
type TemplateFields struct {
	Examination string `json:"examination"`
	Comparison  string `json:"comparison"`
	Indication  string `json:"indication"`
	Technical   string `json:"technical"`
	Devices     string `json:"devices"`
	ChestWall   string `json:"chest_wall"`
	Mediastinum string `json:"mediastinum"`
	Lungs       string `json:"lungs"`
	Pleura      string `json:"pleura"`
	Impression  string `json:"impression"`
}

// Compose renders the manual report template. Sections with standard normal
// phrases fall back to those phrases when left empty; comparison and
// indication stay empty, since "no comparison" is itself meaningful.
func Compose(f TemplateFields) string {
	return fmt.Sprintf(`EXAMINATION: %s

COMPARISON: %s

CLINICAL INDICATION: %s

TECHNICAL FACTORS:
%s

FINDINGS:

Lines/Tubes/Devices:
%s

Chest Wall:
%s

Mediastinum:
%s

Lungs:
%s

Pleura:
%s

IMPRESSION:
%s
`,
		orDefault(f.Examination, DefaultExamination),
		f.Comparison,
		f.Indication,
		orDefault(f.Technical, DefaultTechnical),
		orDefault(f.Devices, DefaultDevices),
		orDefault(f.ChestWall, DefaultChestWall),
		orDefault(f.Mediastinum, DefaultMediastinum),
		orDefault(f.Lungs, DefaultLungs),
		orDefault(f.Pleura, DefaultPleura),
		orDefault(f.Impression, DefaultImpression),
	)
}

func orDefault(v, fallback string) string {
	if strings.TrimSpace(v) == "" {
		return fallback
	}
	return v
}
