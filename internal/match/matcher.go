package match

import (
	"math"
	"sort"
	"strings"
)

// JobMatch is the per-role result of matching a set of user skills.
type JobMatch struct {
	RoleID          string   `json:"role_id"`
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	MatchPercentage int      `json:"match_percentage"`
	MatchingSkills  []string `json:"matching_skills"`
	MissingSkills   []string `json:"missing_skills,omitempty"`
}

const maxMissingSkills = 5

// Matcher matches user skills against the taxonomy's job roles. It holds
// only the read-only taxonomy, so a single instance serves all requests.
type Matcher struct {
	tax *Taxonomy
}

// NewMatcher validates the taxonomy up front; a broken role table is a
// startup error, never a per-request one.
func NewMatcher(tax *Taxonomy) (*Matcher, error) {
	if err := tax.Validate(); err != nil {
		return nil, err
	}
	return &Matcher{tax: tax}, nil
}

// MatchSkillList splits a comma-separated skill string and matches it.
// Entries are trimmed but otherwise compared exactly against taxonomy
// names (case-sensitive, no fuzzy matching).
func (m *Matcher) MatchSkillList(userSkills string) []JobMatch {
	var skills []string
	for _, s := range strings.Split(userSkills, ",") {
		skills = append(skills, strings.TrimSpace(s))
	}
	return m.MatchSkills(skills, true)
}

// MatchSkills matches the given skills against every job role. Roles with
// no matching skill are omitted. Results are sorted by match percentage
// descending; ties keep role table order. withMissing controls whether the
// missing-skill list is computed (the assessment flow leaves it out).
func (m *Matcher) MatchSkills(skills []string, withMissing bool) []JobMatch {
	var matches []JobMatch
	for _, role := range m.tax.Roles {
		var matching []string
		for _, skill := range skills {
			for _, cat := range role.Categories {
				if contains(m.tax.Categories[cat], skill) {
					// one entry per input skill, however many
					// categories it could match through
					matching = append(matching, skill)
					break
				}
			}
		}
		if len(matching) == 0 {
			continue
		}

		jm := JobMatch{
			RoleID:          role.ID,
			Title:           role.Title,
			Description:     role.Description,
			MatchPercentage: matchPercentage(len(matching), len(role.Categories)),
			MatchingSkills:  matching,
		}
		if withMissing {
			jm.MissingSkills = m.missingSkills(role, skills)
		}
		matches = append(matches, jm)
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].MatchPercentage > matches[j].MatchPercentage
	})
	return matches
}

// matchPercentage divides by the number of required categories, not the
// number of skills in them. Matching two skills against a four-category
// role scores 50%. Kept as-is from the product definition.
func matchPercentage(matching, categories int) int {
	return int(math.Round(float64(matching) / float64(categories) * 100))
}

// missingSkills lists taxonomy skills the user lacks across the role's
// categories, in category-then-skill order, capped at five.
func (m *Matcher) missingSkills(role JobRole, userSkills []string) []string {
	var missing []string
	for _, cat := range role.Categories {
		for _, skill := range m.tax.Categories[cat] {
			if !contains(userSkills, skill) {
				missing = append(missing, skill)
				if len(missing) == maxMissingSkills {
					return missing
				}
			}
		}
	}
	return missing
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
