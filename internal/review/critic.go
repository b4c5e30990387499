// Package review implements the rule-based CV critique used when no AI
// provider is configured or the provider call fails.
package review

import (
	"regexp"
	"strings"
)

// Critique is the structured result of a rule-based CV analysis.
type Critique struct {
	Strengths        []string        `json:"strengths"`
	Weaknesses       []string        `json:"weaknesses"`
	Suggestions      []string        `json:"suggestions"`
	ImprovedSections []SectionAdvice `json:"improved_sections"`
}

// SectionAdvice suggests a rewrite for a named CV section.
type SectionAdvice struct {
	Section string `json:"section"`
	Content string `json:"content"`
}

var (
	emailRe   = regexp.MustCompile(`\b[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}\b`)
	phoneRe   = regexp.MustCompile(`(\+?1[-.\s]?)?\(?[0-9]{3}\)?[-.\s]?[0-9]{3}[-.\s]?[0-9]{4}`)
	summaryRe = regexp.MustCompile(`(summary|profile|objective|about)`)
	// percentage, "N+", dollar amount or "Nx" multiplier
	quantifiedRe = regexp.MustCompile(`\d+%|\d+\+|\$\d+|\d+x`)
)

var (
	skillsKeywords     = []string{"skills", "technical skills", "programming", "languages", "technologies"}
	experienceKeywords = []string{"experience", "work", "employment", "internship", "project"}
	educationKeywords  = []string{"education", "degree", "university", "college", "school", "qualification"}
	actionVerbs        = []string{"developed", "created", "implemented", "managed", "led", "designed", "built", "optimized"}
)

// Analyze runs every check against the CV text and returns a complete
// critique. Checks are independent and run in a fixed order; the function
// is total over its input, it never fails. The caller is responsible for
// rejecting empty or too-short input before getting here.
func Analyze(cvText string) *Critique {
	c := &Critique{}
	lower := strings.ToLower(cvText)

	if emailRe.MatchString(cvText) {
		c.Strengths = append(c.Strengths, "✓ Contact information is present")
	} else {
		c.Weaknesses = append(c.Weaknesses, "✗ Missing email address")
		c.Suggestions = append(c.Suggestions, "Add a professional email address")
	}

	if phoneRe.MatchString(cvText) {
		c.Strengths = append(c.Strengths, "✓ Phone number is included")
	} else {
		c.Weaknesses = append(c.Weaknesses, "✗ Missing phone number")
		c.Suggestions = append(c.Suggestions, "Include a contact phone number")
	}

	if containsAny(lower, skillsKeywords) {
		c.Strengths = append(c.Strengths, "✓ Skills section is present")
	} else {
		c.Weaknesses = append(c.Weaknesses, "✗ No clear skills section")
		c.Suggestions = append(c.Suggestions, "Add a dedicated skills section highlighting your technical abilities")
	}

	if containsAny(lower, experienceKeywords) {
		c.Strengths = append(c.Strengths, "✓ Work experience is mentioned")
	} else {
		c.Weaknesses = append(c.Weaknesses, "✗ Limited work experience mentioned")
		c.Suggestions = append(c.Suggestions, "Include any work experience, internships, or relevant projects")
	}

	if containsAny(lower, educationKeywords) {
		c.Strengths = append(c.Strengths, "✓ Education section is present")
	} else {
		c.Weaknesses = append(c.Weaknesses, "✗ Education information missing")
		c.Suggestions = append(c.Suggestions, "Include your educational background and qualifications")
	}

	c.ImprovedSections = improvedSections(cvText, lower)
	return c
}

// improvedSections is a separate pass that always runs, regardless of how
// the five checks above went.
func improvedSections(cvText, lower string) []SectionAdvice {
	var advice []SectionAdvice

	if !summaryRe.MatchString(lower) {
		advice = append(advice, SectionAdvice{
			Section: "Professional Summary",
			Content: "Add a compelling 2-3 sentence summary highlighting your key strengths and career objectives.",
		})
	}

	if !quantifiedRe.MatchString(cvText) {
		advice = append(advice, SectionAdvice{
			Section: "Quantified Achievements",
			Content: `Include specific numbers and metrics to demonstrate your impact (e.g., "Improved efficiency by 25%", "Managed team of 5 developers").`,
		})
	}

	if !containsAny(lower, actionVerbs) {
		advice = append(advice, SectionAdvice{
			Section: "Action-Oriented Language",
			Content: `Use strong action verbs to describe your accomplishments (e.g., "Developed", "Implemented", "Led", "Optimized").`,
		})
	}

	return advice
}

func containsAny(haystack string, needles []string) bool {
	for _, n := range needles {
		if strings.Contains(haystack, n) {
			return true
		}
	}
	return false
}
