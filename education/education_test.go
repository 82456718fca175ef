package education

import (
	"strings"
	"testing"
)

func TestRegions(t *testing.T) {
	want := []string{"Chest Wall", "Mediastinum", "Hila", "Lungs", "Airways", "Pleura and Diaphragm"}
	got := Regions()
	if len(got) != len(want) {
		t.Fatalf("Regions() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Regions()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTechnicalParameters(t *testing.T) {
	want := []string{"Positioning", "Penetration", "Inspiration", "Motion"}
	got := TechnicalParameters()
	if len(got) != len(want) {
		t.Fatalf("TechnicalParameters() returned %d entries, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("TechnicalParameters()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestTipFor(t *testing.T) {
	tests := []struct {
		category string
		wantOK   bool
	}{
		{"positioning", true},
		{"POSITIONING", true},
		{" inspiration ", true},
		{"silhouette", true},
		{"air_bronchogram", true},
		{"nonsense", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			tip, ok := TipFor(tt.category)
			if ok != tt.wantOK {
				t.Fatalf("TipFor(%q) ok = %v, want %v", tt.category, ok, tt.wantOK)
			}
			if ok && (tip.Title == "" || tip.Body == "") {
				t.Errorf("TipFor(%q) returned empty tip", tt.category)
			}
		})
	}

	for _, category := range TipCategories() {
		if _, ok := TipFor(category); !ok {
			t.Errorf("listed category %q has no tip", category)
		}
	}
}

func TestReferenceKnowledge(t *testing.T) {
	kb := ReferenceKnowledge()
	if len(kb.Technical) != 4 {
		t.Errorf("technical checklists = %d, want 4", len(kb.Technical))
	}
	if len(kb.Regions) != 6 {
		t.Errorf("region guides = %d, want 6", len(kb.Regions))
	}
	if len(kb.Patterns) != 6 {
		t.Errorf("pattern guides = %d, want 6", len(kb.Patterns))
	}
	if len(kb.QuickTips) != 7 {
		t.Errorf("quick tips = %d, want 7", len(kb.QuickTips))
	}
	for _, p := range kb.Patterns {
		if len(p.Differential) == 0 {
			t.Errorf("pattern %q has no differential", p.Pattern)
		}
	}
	if kb.Regions[1].Name != "Mediastinum" {
		t.Errorf("second region guide = %q, want Mediastinum", kb.Regions[1].Name)
	}
}

func TestLearningPointsFor(t *testing.T) {
	tests := []struct {
		region     string
		wantOK     bool
		wantRegion string
	}{
		{"Chest Wall", true, "Chest Wall"},
		{"chest_wall", true, "Chest Wall"},
		{"MEDIASTINUM", true, "Mediastinum"},
		{"Pleura", true, "Pleura"},
		{"Pleura and Diaphragm", true, "Pleura"},
		{"retroperitoneum", false, ""},
	}
	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			lp, ok := LearningPointsFor(tt.region)
			if ok != tt.wantOK {
				t.Fatalf("LearningPointsFor(%q) ok = %v, want %v", tt.region, ok, tt.wantOK)
			}
			if ok {
				if lp.Region != tt.wantRegion {
					t.Errorf("region = %q, want %q", lp.Region, tt.wantRegion)
				}
				if len(lp.CommonFindings) == 0 || len(lp.Pitfalls) == 0 {
					t.Error("learning points incomplete")
				}
			}
		})
	}
}

func TestSystematicApproach(t *testing.T) {
	steps := SystematicApproach()
	if len(steps) != 8 {
		t.Fatalf("SystematicApproach() returned %d steps, want 8", len(steps))
	}
	for i, step := range steps {
		if step.Order != i+1 {
			t.Errorf("step %d has order %d", i, step.Order)
		}
		if len(step.Items) == 0 {
			t.Errorf("step %q has no items", step.Name)
		}
	}
	if !strings.Contains(steps[0].Name, "Technical Quality") {
		t.Errorf("first step = %q, want technical quality", steps[0].Name)
	}
}

func TestNewChecklist(t *testing.T) {
	checklist := NewChecklist()
	if len(checklist) != 8 {
		t.Fatalf("checklist has %d items, want 8", len(checklist))
	}
	for _, item := range ChecklistItems() {
		done, ok := checklist[item]
		if !ok {
			t.Errorf("checklist missing %q", item)
		}
		if done {
			t.Errorf("fresh checklist has %q already ticked", item)
		}
	}
}

func TestCases(t *testing.T) {
	cases := Cases()
	if len(cases) != 3 {
		t.Fatalf("Cases() returned %d, want 3", len(cases))
	}
	for _, c := range cases {
		if c.ID == "" || c.Title == "" || c.Diagnosis == "" {
			t.Errorf("case %q incomplete", c.ID)
		}
		if len(c.Findings) == 0 || len(c.LearningPoints) == 0 {
			t.Errorf("case %q missing findings or learning points", c.ID)
		}
	}

	t.Run("lookup by id", func(t *testing.T) {
		c, ok := CaseByID("chf")
		if !ok {
			t.Fatal("chf case not found")
		}
		if c.Diagnosis != "Acute decompensated heart failure with pulmonary edema" {
			t.Errorf("diagnosis = %q", c.Diagnosis)
		}
	})

	t.Run("unknown id", func(t *testing.T) {
		if _, ok := CaseByID("missing"); ok {
			t.Error("expected lookup miss")
		}
	})

	t.Run("callers cannot mutate the bank", func(t *testing.T) {
		Cases()[0].Title = "changed"
		if Cases()[0].Title == "changed" {
			t.Error("Cases() exposes internal storage")
		}
	})
}

func TestQuizQuestions(t *testing.T) {
	questions := QuizQuestions()
	if len(questions) != 4 {
		t.Fatalf("QuizQuestions() returned %d, want 4", len(questions))
	}
	for i, q := range questions {
		if q.ID != i+1 {
			t.Errorf("question %d has ID %d", i, q.ID)
		}
		if len(q.Options) != 4 {
			t.Errorf("question %d has %d options, want 4", q.ID, len(q.Options))
		}
	}
}

func TestGradeQuiz(t *testing.T) {
	allCorrect := []QuizAnswer{{1, 1}, {2, 1}, {3, 1}, {4, 1}}

	t.Run("perfect score", func(t *testing.T) {
		r := GradeQuiz(allCorrect)
		if r.Score != 4 || r.Total != 4 || r.Percentage != 100 {
			t.Errorf("score = %d/%d (%.0f%%), want 4/4 (100%%)", r.Score, r.Total, r.Percentage)
		}
		if !strings.HasPrefix(r.Verdict, "Excellent") {
			t.Errorf("verdict = %q, want Excellent", r.Verdict)
		}
		for _, qr := range r.Results {
			if !qr.Correct {
				t.Errorf("question %d marked incorrect", qr.ID)
			}
			if qr.Explanation == "" {
				t.Errorf("question %d missing explanation", qr.ID)
			}
		}
	})

	t.Run("three of four", func(t *testing.T) {
		r := GradeQuiz([]QuizAnswer{{1, 1}, {2, 1}, {3, 1}, {4, 0}})
		if r.Score != 3 || r.Percentage != 75 {
			t.Errorf("score = %d (%.0f%%), want 3 (75%%)", r.Score, r.Percentage)
		}
		if !strings.HasPrefix(r.Verdict, "Good work") {
			t.Errorf("verdict = %q, want Good work", r.Verdict)
		}
	})

	t.Run("half right", func(t *testing.T) {
		r := GradeQuiz([]QuizAnswer{{1, 1}, {2, 1}})
		if r.Score != 2 || r.Percentage != 50 {
			t.Errorf("score = %d (%.0f%%), want 2 (50%%)", r.Score, r.Percentage)
		}
		if !strings.HasPrefix(r.Verdict, "Keep studying") {
			t.Errorf("verdict = %q, want Keep studying", r.Verdict)
		}
	})

	t.Run("unanswered counts as incorrect", func(t *testing.T) {
		r := GradeQuiz(nil)
		if r.Score != 0 {
			t.Errorf("score = %d, want 0", r.Score)
		}
	})

	t.Run("unknown question ids ignored", func(t *testing.T) {
		r := GradeQuiz([]QuizAnswer{{99, 1}, {1, 1}})
		if r.Score != 1 {
			t.Errorf("score = %d, want 1", r.Score)
		}
	})
}
