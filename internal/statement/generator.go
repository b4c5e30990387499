// Package statement generates templated personal statements from a short
// free-text career goal.
package statement

import "strings"

// roleKeywords map a goal keyword to the role type interpolated into the
// statement. Checked in order, first match wins.
var roleKeywords = []struct {
	keyword  string
	roleType string
}{
	{"engineer", "software engineering"},
	{"developer", "web development"},
	{"analyst", "data analysis"},
	{"cyber", "cybersecurity"},
	{"security", "cybersecurity"},
}

// companies scanned for a mention, in order; first match wins.
var companies = []string{"google", "microsoft", "amazon", "apple", "meta", "netflix", "tesla", "spacex"}

const defaultRoleType = "apprenticeship"

// Generate produces a personal statement from the user's goal text. The
// output is fully deterministic: only the role type and an optional company
// name vary with the input.
func Generate(goal string) string {
	lower := strings.ToLower(goal)

	roleType := defaultRoleType
	for _, rk := range roleKeywords {
		if strings.Contains(lower, rk.keyword) {
			roleType = rk.roleType
			break
		}
	}

	var company string
	for _, c := range companies {
		if strings.Contains(lower, c) {
			company = strings.ToUpper(c[:1]) + c[1:]
			break
		}
	}

	var b strings.Builder
	b.WriteString("I am writing to express my strong interest in pursuing a " + roleType + " apprenticeship")
	if company != "" {
		b.WriteString(" at " + company)
	}
	b.WriteString(`. My passion for technology and problem-solving drives me to continuously learn and grow in this field.

Key Strengths:
• Strong foundation in programming and software development
• Excellent problem-solving and analytical thinking skills
• Eager to learn new technologies and methodologies
• Strong communication and teamwork abilities
• Self-motivated with a genuine passion for technology

I am particularly drawn to this opportunity because it offers the perfect blend of hands-on experience and structured learning. I am committed to contributing meaningfully to your team while developing the skills necessary for a successful career in technology.

I am excited about the possibility of bringing my enthusiasm, dedication, and fresh perspective to your organization and would welcome the opportunity to discuss how I can contribute to your team's success.`)

	return b.String()
}
