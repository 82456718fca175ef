package handlers

import (
	"net/http"

	"xray-education-service/education"
	"xray-education-service/middleware"
	"xray-education-service/report"

	"github.com/apex/log"
	"github.com/gin-gonic/gin"
)

// GetRegions lists the anatomical regions available for focused review
func (h *Handlers) GetRegions(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"regions": education.Regions(),
	})
}

// GetTechnicalParameters lists the technical quality parameters
func (h *Handlers) GetTechnicalParameters(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"parameters": education.TechnicalParameters(),
	})
}

// ListCases returns the teaching case library
func (h *Handlers) ListCases(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"cases": education.Cases(),
	})
}

// GetCase returns a single teaching case by ID
func (h *Handlers) GetCase(c *gin.Context) {
	teachingCase, ok := education.CaseByID(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Case not found"})
		return
	}

	c.JSON(http.StatusOK, teachingCase)
}

// GetQuiz returns the self-assessment questions without answers
func (h *Handlers) GetQuiz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"questions": education.QuizQuestions(),
	})
}

// GradeQuizRequest is a submitted set of quiz answers
type GradeQuizRequest struct {
	Answers []education.QuizAnswer `json:"answers"`
}

// GradeQuiz scores a submitted quiz and, for authenticated sessions with a
// configured progress store, records the attempt
func (h *Handlers) GradeQuiz(c *gin.Context) {
	var req GradeQuizRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	result := education.GradeQuiz(req.Answers)

	if sessionID := middleware.SessionID(c); sessionID != "" {
		if store := h.service.Progress(); store != nil {
			if err := store.SaveQuizResult(sessionID, result.Score, result.Total, result.Percentage); err != nil {
				log.Warnf("Failed to save quiz result for session %s: %v", sessionID, err)
			}
		}
	}

	c.JSON(http.StatusOK, result)
}

// GetTip returns one study tip by category
func (h *Handlers) GetTip(c *gin.Context) {
	tip, ok := education.TipFor(c.Param("category"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{
			"error":      "Tip not found",
			"categories": education.TipCategories(),
		})
		return
	}

	c.JSON(http.StatusOK, tip)
}

// GetKnowledgeBase returns the full reference knowledge: technical
// checklists, region guides, pattern differentials and quick tips
func (h *Handlers) GetKnowledgeBase(c *gin.Context) {
	c.JSON(http.StatusOK, education.ReferenceKnowledge())
}

// GetChecklist returns the systematic reading sequence and the review
// checklist. Authenticated sessions with a progress store get their saved
// checklist state; everyone else gets a fresh one.
func (h *Handlers) GetChecklist(c *gin.Context) {
	checklist := education.NewChecklist()

	if sessionID := middleware.SessionID(c); sessionID != "" {
		if store := h.service.Progress(); store != nil {
			saved, err := store.GetModuleProgress(sessionID)
			if err != nil {
				log.Warnf("Failed to load checklist for session %s: %v", sessionID, err)
			} else {
				checklist = saved
			}
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"approach":  education.SystematicApproach(),
		"checklist": checklist,
	})
}

// GetLearningPoints returns common findings and pitfalls for a region
func (h *Handlers) GetLearningPoints(c *gin.Context) {
	points, ok := education.LearningPointsFor(c.Param("region"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown region"})
		return
	}

	c.JSON(http.StatusOK, points)
}

// DifferentialsRequest carries findings text for differential suggestions
type DifferentialsRequest struct {
	Findings []string `json:"findings"`
	Age      int      `json:"age"`
}

// GetDifferentials suggests differential diagnoses for described findings
func (h *Handlers) GetDifferentials(c *gin.Context) {
	var req DifferentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"differentials": report.Differentials(req.Findings, req.Age),
	})
}

// FormatTerm expands a medical abbreviation to its standard form
func (h *Handlers) FormatTerm(c *gin.Context) {
	term := c.Param("term")

	c.JSON(http.StatusOK, gin.H{
		"term":      term,
		"formatted": report.FormatMedicalTerm(term),
	})
}
