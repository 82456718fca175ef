package education

type quizEntry struct {
	question    string
	options     []string
	correct     int
	explanation string
}

var quizBank = []quizEntry{
	{
		question: "What is the normal cardiothoracic ratio on a PA chest X-ray?",
		options:  []string{"<40%", "<50%", "<60%", "<70%"},
		correct:  1,
		explanation: "The normal CTR on a PA view is <50%. On AP views, the heart may appear " +
			"larger due to magnification, so CTR <55% is acceptable.",
	},
	{
		question: "Which of the following suggests good inspiration on a chest X-ray?",
		options: []string{
			"Right hemidiaphragm at 4th anterior rib",
			"Right hemidiaphragm at 6th anterior rib",
			"Right hemidiaphragm at 8th anterior rib",
			"Right hemidiaphragm at 10th anterior rib",
		},
		correct: 1,
		explanation: "Good inspiration is indicated by the right hemidiaphragm at the 6th " +
			"anterior rib, or the 10th posterior rib at the mid-clavicular line.",
	},
	{
		question: "The silhouette sign with loss of the right heart border suggests pathology in which location?",
		options: []string{
			"Right upper lobe",
			"Right middle lobe",
			"Right lower lobe",
			"Left lingula",
		},
		correct: 1,
		explanation: "Loss of the right heart border indicates right middle lobe pathology. " +
			"The RML is anatomically adjacent to the right heart border.",
	},
	{
		question: "Which pattern is most characteristic of interstitial pulmonary edema?",
		options: []string{
			"Consolidation with air bronchograms",
			"Perihilar opacity with Kerley B lines",
			"Multiple cavitary lesions",
			"Miliary nodules",
		},
		correct: 1,
		explanation: "Interstitial edema classically shows perihilar bat-wing opacity, " +
			"cephalization of vessels, and Kerley B lines (short horizontal lines at lung bases).",
	},
}

// QuizQuestion is the learner-facing view of a question. The answer and
// explanation stay server-side until the quiz is graded.
type QuizQuestion struct {
	ID       int      `json:"id"`
	Question string   `json:"question"`
	Options  []string `json:"options"`
}

// QuizQuestions returns the self-assessment questions without their
// answers.
func QuizQuestions() []QuizQuestion {
	out := make([]QuizQuestion, len(quizBank))
	for i, q := range quizBank {
		options := make([]string, len(q.options))
		copy(options, q.options)
		out[i] = QuizQuestion{ID: i + 1, Question: q.question, Options: options}
	}
	return out
}

// QuizAnswer is one submitted answer: the question ID and the zero-based
// index of the chosen option.
type QuizAnswer struct {
	ID     int `json:"id"`
	Choice int `json:"choice"`
}

// QuestionResult grades a single question.
type QuestionResult struct {
	ID            int    `json:"id"`
	Correct       bool   `json:"correct"`
	CorrectChoice int    `json:"correct_choice"`
	Explanation   string `json:"explanation"`
}

// QuizResult is the graded quiz: per-question results, the score and a
// study verdict.
type QuizResult struct {
	Score      int              `json:"score"`
	Total      int              `json:"total"`
	Percentage float64          `json:"percentage"`
	Verdict    string           `json:"verdict"`
	Results    []QuestionResult `json:"results"`
}

// GradeQuiz scores a set of answers against the quiz bank. Unanswered
// questions count as incorrect; answers for unknown question IDs are
// ignored.
func GradeQuiz(answers []QuizAnswer) QuizResult {
	chosen := make(map[int]int, len(answers))
	for _, a := range answers {
		chosen[a.ID] = a.Choice
	}

	result := QuizResult{
		Total:   len(quizBank),
		Results: make([]QuestionResult, len(quizBank)),
	}
	for i, q := range quizBank {
		id := i + 1
		choice, answered := chosen[id]
		correct := answered && choice == q.correct
		if correct {
			result.Score++
		}
		result.Results[i] = QuestionResult{
			ID:            id,
			Correct:       correct,
			CorrectChoice: q.correct,
			Explanation:   q.explanation,
		}
	}
	result.Percentage = float64(result.Score) / float64(result.Total) * 100
	result.Verdict = verdictFor(result.Percentage)
	return result
}

func verdictFor(percentage float64) string {
	switch {
	case percentage >= 80:
		return "Excellent! You have a strong understanding."
	case percentage >= 60:
		return "Good work! Review the explanations for missed questions."
	default:
		return "Keep studying! Review the learning materials and try again."
	}
}
