package models

import (
	"fmt"
	"strings"
)

// ClinicalContext carries the optional structured clinical fields a learner
// submits alongside a report request. None of it is ever persisted.
type ClinicalContext struct {
	Age        int    `json:"age,omitempty"`
	Sex        string `json:"sex,omitempty"`
	ExamType   string `json:"exam_type,omitempty"`
	ExamDate   string `json:"exam_date,omitempty"`
	Comparison string `json:"comparison,omitempty"`
	History    string `json:"clinical_history,omitempty"`
}

// Format renders the context block interpolated into the report prompt.
// Fields that were not provided are omitted; an entirely empty context
// renders as "" so the prompt builder can substitute its placeholder.
func (c ClinicalContext) Format() string {
	var lines []string
	if c.Age > 0 || c.Sex != "" {
		switch {
		case c.Age > 0 && c.Sex != "":
			lines = append(lines, fmt.Sprintf("Patient: %d year old %s", c.Age, c.Sex))
		case c.Age > 0:
			lines = append(lines, fmt.Sprintf("Patient: %d years old", c.Age))
		default:
			lines = append(lines, fmt.Sprintf("Patient: %s", c.Sex))
		}
	}
	if c.ExamType != "" {
		lines = append(lines, "Exam: "+c.ExamType)
	}
	if c.ExamDate != "" {
		lines = append(lines, "Date: "+c.ExamDate)
	}
	if c.Comparison != "" {
		lines = append(lines, "Comparison: "+c.Comparison)
	}
	if strings.TrimSpace(c.History) != "" {
		lines = append(lines, "Clinical History: "+strings.TrimSpace(c.History))
	}
	return strings.Join(lines, "\n")
}
