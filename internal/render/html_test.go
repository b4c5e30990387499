package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"careerhub/internal/match"
	"careerhub/internal/review"
)

func TestCritique(t *testing.T) {
	c := &review.Critique{
		Strengths:  []string{"✓ Contact information is present"},
		Weaknesses: []string{"✗ Missing phone number"},
		Suggestions: []string{
			"Include a contact phone number",
		},
		ImprovedSections: []review.SectionAdvice{
			{Section: "Professional Summary", Content: "Add a summary."},
		},
	}

	out := Critique(c)
	assert.Contains(t, out, "<h3>📊 CV Analysis Report</h3>")
	assert.Contains(t, out, "<li>✓ Contact information is present</li>")
	assert.Contains(t, out, "<li>✗ Missing phone number</li>")
	assert.Contains(t, out, "<li>Include a contact phone number</li>")
	assert.Contains(t, out, "<strong>Professional Summary:</strong> Add a summary.")
}

func TestCritique_SkipsEmptyBlocks(t *testing.T) {
	out := Critique(&review.Critique{Strengths: []string{"✓ Skills section is present"}})
	assert.NotContains(t, out, "Areas for Improvement")
	assert.NotContains(t, out, "Recommendations")
	assert.NotContains(t, out, "Suggested Improvements")
}

func TestMatches(t *testing.T) {
	matches := []match.JobMatch{
		{
			Title:           "Software Engineer",
			Description:     "Design, develop, and maintain software applications",
			MatchPercentage: 50,
			MatchingSkills:  []string{"Python", "Git"},
			MissingSkills:   []string{"JavaScript", "Java"},
		},
	}

	out := Matches(matches)
	assert.Contains(t, out, "<h4>Software Engineer - 50% Match</h4>")
	assert.Contains(t, out, "<strong>Your matching skills:</strong> Python, Git")
	assert.Contains(t, out, "<strong>Skills to develop:</strong> JavaScript, Java")
}

func TestMatches_Empty(t *testing.T) {
	out := Matches(nil)
	assert.Contains(t, out, "No job matches found. Consider expanding your skill set.")
}

func TestAssessment(t *testing.T) {
	a := &match.Assessment{
		CurrentSkills:   []string{"Python"},
		Recommendations: []string{"Great! You have programming skills. Consider learning version control with Git."},
		LearningPath:    []string{"1. Master the fundamentals of your chosen programming language"},
		JobMatches: []match.JobMatch{
			{Title: "Data Analyst", MatchPercentage: 33, MatchingSkills: []string{"Python"}},
		},
	}

	out := Assessment(a)
	assert.Contains(t, out, "<h3>🎯 Skills Assessment Report</h3>")
	assert.Contains(t, out, "<li>Python</li>")
	assert.Contains(t, out, "<strong>Data Analyst</strong> - 33% match")
	assert.Contains(t, out, "<small>Matching skills: Python</small>")
}
