package match

import "fmt"

// Taxonomy holds the skill catalogue and the job roles matched against it.
// Loaded once at startup and treated as read-only afterwards, so concurrent
// handlers can share a single instance without locking.
type Taxonomy struct {
	// Categories maps a category id to its skill names. Skill and category
	// order is meaningful: missing-skill lists follow it.
	Categories map[string][]string

	// Roles keeps insertion order, which is the tie-break order for
	// equal match percentages.
	Roles []JobRole
}

type JobRole struct {
	ID          string
	Title       string
	Description string
	// Categories are the required category ids; the match percentage
	// denominator is the length of this list.
	Categories []string
}

// DefaultTaxonomy returns the built-in skill catalogue and job roles.
func DefaultTaxonomy() *Taxonomy {
	return &Taxonomy{
		Categories: map[string][]string{
			"programming": {"Python", "JavaScript", "Java", "C++", "C#", "PHP", "Ruby", "Swift", "Kotlin"},
			"web_dev":     {"HTML", "CSS", "React", "Angular", "Vue.js", "Node.js", "Django", "Flask"},
			"databases":   {"MySQL", "PostgreSQL", "MongoDB", "SQLite", "Oracle"},
			"tools":       {"Git", "Docker", "AWS", "Azure", "Linux", "Windows", "MacOS"},
			"soft_skills": {"Communication", "Teamwork", "Problem Solving", "Leadership", "Time Management"},
		},
		Roles: []JobRole{
			{
				ID:          "software_engineer",
				Title:       "Software Engineer",
				Description: "Design, develop, and maintain software applications",
				Categories:  []string{"programming", "web_dev", "databases", "tools"},
			},
			{
				ID:          "web_developer",
				Title:       "Web Developer",
				Description: "Create and maintain websites and web applications",
				Categories:  []string{"web_dev", "programming", "databases"},
			},
			{
				ID:          "data_analyst",
				Title:       "Data Analyst",
				Description: "Analyze data to help businesses make informed decisions",
				Categories:  []string{"programming", "databases", "tools"},
			},
			{
				ID:          "cybersecurity",
				Title:       "Cybersecurity Specialist",
				Description: "Protect systems and networks from cyber threats",
				Categories:  []string{"programming", "tools", "soft_skills"},
			},
		},
	}
}

// Validate checks that every category a role requires actually exists.
// A failure here is a misconfiguration and should abort startup.
func (t *Taxonomy) Validate() error {
	for _, role := range t.Roles {
		if len(role.Categories) == 0 {
			return fmt.Errorf("role %q has no required categories", role.ID)
		}
		for _, cat := range role.Categories {
			if _, ok := t.Categories[cat]; !ok {
				return fmt.Errorf("role %q references unknown category %q", role.ID, cat)
			}
		}
	}
	return nil
}
