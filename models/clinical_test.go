package models

import (
	"strings"
	"testing"
)

func TestClinicalContextFormat(t *testing.T) {
	tests := []struct {
		name string
		ctx  ClinicalContext
		want string
	}{
		{
			name: "empty context renders empty",
			ctx:  ClinicalContext{},
			want: "",
		},
		{
			name: "age and sex combined",
			ctx:  ClinicalContext{Age: 55, Sex: "male"},
			want: "Patient: 55 year old male",
		},
		{
			name: "age only",
			ctx:  ClinicalContext{Age: 55},
			want: "Patient: 55 years old",
		},
		{
			name: "sex only",
			ctx:  ClinicalContext{Sex: "female"},
			want: "Patient: female",
		},
		{
			name: "history trimmed",
			ctx:  ClinicalContext{History: "  cough and fever  "},
			want: "Clinical History: cough and fever",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.ctx.Format(); got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestClinicalContextFormatOrder(t *testing.T) {
	ctx := ClinicalContext{
		Age:        62,
		Sex:        "female",
		ExamType:   "PA and lateral chest",
		ExamDate:   "2025-03-14",
		Comparison: "Prior study from 2024-11-02",
		History:    "Progressive dyspnea",
	}

	got := ctx.Format()
	lines := strings.Split(got, "\n")
	if len(lines) != 5 {
		t.Fatalf("Format() produced %d lines, want 5:\n%s", len(lines), got)
	}

	wantPrefixes := []string{"Patient:", "Exam:", "Date:", "Comparison:", "Clinical History:"}
	for i, prefix := range wantPrefixes {
		if !strings.HasPrefix(lines[i], prefix) {
			t.Errorf("line %d = %q, want prefix %q", i, lines[i], prefix)
		}
	}
}
