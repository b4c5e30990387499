// Package render turns analysis results into the HTML fragments the web
// frontend embeds in its results panel.
package render

import (
	"fmt"
	"strings"

	"careerhub/internal/match"
	"careerhub/internal/review"
)

// Critique renders a rule-based critique as an HTML fragment.
func Critique(c *review.Critique) string {
	var b strings.Builder
	b.WriteString("<div class='analysis-result'>")
	b.WriteString("<h3>📊 CV Analysis Report</h3>")

	if len(c.Strengths) > 0 {
		b.WriteString("<div class='strengths'><h4>✅ Strengths:</h4><ul>")
		for _, s := range c.Strengths {
			fmt.Fprintf(&b, "<li>%s</li>", s)
		}
		b.WriteString("</ul></div>")
	}

	if len(c.Weaknesses) > 0 {
		b.WriteString("<div class='weaknesses'><h4>⚠️ Areas for Improvement:</h4><ul>")
		for _, w := range c.Weaknesses {
			fmt.Fprintf(&b, "<li>%s</li>", w)
		}
		b.WriteString("</ul></div>")
	}

	if len(c.Suggestions) > 0 {
		b.WriteString("<div class='suggestions'><h4>💡 Recommendations:</h4><ul>")
		for _, s := range c.Suggestions {
			fmt.Fprintf(&b, "<li>%s</li>", s)
		}
		b.WriteString("</ul></div>")
	}

	if len(c.ImprovedSections) > 0 {
		b.WriteString("<div class='improvements'><h4>🔧 Suggested Improvements:</h4>")
		for _, sec := range c.ImprovedSections {
			fmt.Fprintf(&b, "<div class='improvement-item'><strong>%s:</strong> %s</div>", sec.Section, sec.Content)
		}
		b.WriteString("</div>")
	}

	b.WriteString("</div>")
	return b.String()
}

// Assessment renders a skills assessment as an HTML fragment.
func Assessment(a *match.Assessment) string {
	var b strings.Builder
	b.WriteString("<div class='skills-assessment'>")
	b.WriteString("<h3>🎯 Skills Assessment Report</h3>")

	b.WriteString("<div class='current-skills'><h4>Your Current Skills:</h4><ul>")
	for _, s := range a.CurrentSkills {
		fmt.Fprintf(&b, "<li>%s</li>", s)
	}
	b.WriteString("</ul></div>")

	if len(a.Recommendations) > 0 {
		b.WriteString("<div class='recommendations'><h4>📈 Recommendations:</h4><ul>")
		for _, r := range a.Recommendations {
			fmt.Fprintf(&b, "<li>%s</li>", r)
		}
		b.WriteString("</ul></div>")
	}

	if len(a.LearningPath) > 0 {
		b.WriteString("<div class='learning-path'><h4>📚 Learning Path:</h4><ol>")
		for _, step := range a.LearningPath {
			fmt.Fprintf(&b, "<li>%s</li>", step)
		}
		b.WriteString("</ol></div>")
	}

	if len(a.JobMatches) > 0 {
		b.WriteString("<div class='job-matches'><h4>💼 Job Matches:</h4>")
		for _, m := range a.JobMatches {
			fmt.Fprintf(&b, "<div class='job-match'><strong>%s</strong> - %d%% match<br>", m.Title, m.MatchPercentage)
			fmt.Fprintf(&b, "<small>Matching skills: %s</small></div>", strings.Join(m.MatchingSkills, ", "))
		}
		b.WriteString("</div>")
	}

	b.WriteString("</div>")
	return b.String()
}

// Matches renders job-matching results as an HTML fragment.
func Matches(matches []match.JobMatch) string {
	var b strings.Builder
	b.WriteString("<div class='job-matches'>")
	b.WriteString("<h3>🎯 Job Matching Results</h3>")

	if len(matches) == 0 {
		b.WriteString("<p>No job matches found. Consider expanding your skill set.</p>")
	} else {
		for _, m := range matches {
			b.WriteString("<div class='job-match'>")
			fmt.Fprintf(&b, "<h4>%s - %d%% Match</h4>", m.Title, m.MatchPercentage)
			fmt.Fprintf(&b, "<p>%s</p>", m.Description)
			fmt.Fprintf(&b, "<p><strong>Your matching skills:</strong> %s</p>", strings.Join(m.MatchingSkills, ", "))
			if len(m.MissingSkills) > 0 {
				fmt.Fprintf(&b, "<p><strong>Skills to develop:</strong> %s</p>", strings.Join(m.MissingSkills, ", "))
			}
			b.WriteString("</div>")
		}
	}

	b.WriteString("</div>")
	return b.String()
}
