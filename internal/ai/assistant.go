// Package ai defines the completion-backed CV review strategy. Concrete
// backends live in subpackages; the orchestration layer falls back to the
// rule-based critic whenever a backend errors.
package ai

import (
	"context"
	"fmt"
)

// Assistant reviews a CV against an optional job description and returns
// the model's critique as plain text.
type Assistant interface {
	Review(ctx context.Context, cvText, jobDescription string) (string, error)
}

// BuildReviewPrompt assembles the career-coach prompt sent to whichever
// backend is configured.
func BuildReviewPrompt(cvText, jobDescription string) string {
	if jobDescription == "" {
		jobDescription = "[No JD provided]"
	}
	return fmt.Sprintf("You are a senior career coach. Analyze the candidate's CV against the provided job description. "+
		"Identify strengths, gaps, and suggest specific, actionable improvements. "+
		"Rewrite key sections (summary, skills, experience bullets) to better match the job. "+
		"Use clear bullet points, quantify impact where possible, and keep a professional tone.\n\n"+
		"Job Description (JD):\n%s\n\n"+
		"Candidate CV:\n%s", jobDescription, cvText)
}
