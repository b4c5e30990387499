package match

// Assessment is the result of the skills-assessment flow: the selected
// skills grouped into advice, plus job matches without the missing-skill
// breakdown.
type Assessment struct {
	CurrentSkills   []string   `json:"current_skills"`
	Recommendations []string   `json:"recommendations"`
	LearningPath    []string   `json:"learning_path"`
	JobMatches      []JobMatch `json:"job_matches"`
}

var learningPath = []string{
	"1. Master the fundamentals of your chosen programming language",
	"2. Learn version control with Git and GitHub",
	"3. Build projects to apply your knowledge",
	"4. Learn about databases and data management",
	"5. Explore cloud platforms and deployment",
	"6. Contribute to open source projects",
}

// AssessSkills reviews a list of pre-selected skill tokens and returns
// category recommendations, a fixed learning path and job matches.
func (m *Matcher) AssessSkills(selected []string) *Assessment {
	haveCategory := make(map[string]bool)
	for _, skill := range selected {
		for cat, skills := range m.tax.Categories {
			if contains(skills, skill) {
				haveCategory[cat] = true
			}
		}
	}

	var recs []string
	if haveCategory["programming"] {
		recs = append(recs, "Great! You have programming skills. Consider learning version control with Git.")
	} else {
		recs = append(recs, "Consider learning a programming language like Python or JavaScript.")
	}
	if haveCategory["web_dev"] {
		recs = append(recs, "Web development skills are valuable. Consider learning a framework like React or Vue.js.")
	} else {
		recs = append(recs, "Web development skills are in high demand. Start with HTML, CSS, and JavaScript.")
	}
	if haveCategory["databases"] {
		recs = append(recs, "Database knowledge is excellent. Consider learning cloud platforms like AWS or Azure.")
	} else {
		recs = append(recs, "Database skills are essential. Start with SQL and MySQL.")
	}

	return &Assessment{
		CurrentSkills:   selected,
		Recommendations: recs,
		LearningPath:    learningPath,
		JobMatches:      m.MatchSkills(selected, false),
	}
}
