package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewMatcher(DefaultTaxonomy())
	require.NoError(t, err)
	return m
}

func TestNewMatcher_RejectsUnknownCategory(t *testing.T) {
	tax := &Taxonomy{
		Categories: map[string][]string{"programming": {"Python"}},
		Roles: []JobRole{
			{ID: "broken", Title: "Broken", Categories: []string{"programming", "no_such_category"}},
		},
	}
	_, err := NewMatcher(tax)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no_such_category")
}

func TestMatchSkills_PercentageUsesCategoryCount(t *testing.T) {
	m := newTestMatcher(t)

	matches := m.MatchSkills([]string{"Python", "Git"}, true)
	require.NotEmpty(t, matches)

	var se *JobMatch
	for i := range matches {
		if matches[i].RoleID == "software_engineer" {
			se = &matches[i]
		}
	}
	require.NotNil(t, se)

	// two matching skills over four required categories
	assert.Equal(t, []string{"Python", "Git"}, se.MatchingSkills)
	assert.Equal(t, 50, se.MatchPercentage)
}

func TestMatchSkills_SortedDescendingWithStableTies(t *testing.T) {
	m := newTestMatcher(t)

	matches := m.MatchSkills([]string{"Python", "Git"}, true)
	require.Len(t, matches, 4)

	// data_analyst and cybersecurity both score 67 and must keep role
	// table order
	assert.Equal(t, "data_analyst", matches[0].RoleID)
	assert.Equal(t, 67, matches[0].MatchPercentage)
	assert.Equal(t, "cybersecurity", matches[1].RoleID)
	assert.Equal(t, 67, matches[1].MatchPercentage)
	assert.Equal(t, "software_engineer", matches[2].RoleID)
	assert.Equal(t, 50, matches[2].MatchPercentage)
	assert.Equal(t, "web_developer", matches[3].RoleID)
	assert.Equal(t, 33, matches[3].MatchPercentage)
}

func TestMatchSkills_OmitsRolesWithoutMatches(t *testing.T) {
	m := newTestMatcher(t)

	// Communication only exists in soft_skills, which only cybersecurity
	// requires
	matches := m.MatchSkills([]string{"Communication"}, true)
	require.Len(t, matches, 1)
	assert.Equal(t, "cybersecurity", matches[0].RoleID)

	for _, jm := range matches {
		assert.NotEmpty(t, jm.MatchingSkills)
	}
}

func TestMatchSkills_UnknownSkillsIgnored(t *testing.T) {
	m := newTestMatcher(t)

	assert.Empty(t, m.MatchSkills([]string{"Underwater Basket Weaving"}, true))

	// case-sensitive: "python" is not a taxonomy name
	assert.Empty(t, m.MatchSkills([]string{"python"}, true))
}

func TestMatchSkills_MissingSkillsOrderAndCap(t *testing.T) {
	m := newTestMatcher(t)

	matches := m.MatchSkills([]string{"Python", "Git"}, true)
	for _, jm := range matches {
		assert.LessOrEqual(t, len(jm.MissingSkills), 5)
	}

	var se *JobMatch
	for i := range matches {
		if matches[i].RoleID == "software_engineer" {
			se = &matches[i]
		}
	}
	require.NotNil(t, se)

	// first required category is programming; Python is held, so the gap
	// list starts with the rest of that category in order
	assert.Equal(t, []string{"JavaScript", "Java", "C++", "C#", "PHP"}, se.MissingSkills)
}

func TestMatchSkillList_TrimsEntries(t *testing.T) {
	m := newTestMatcher(t)

	matches := m.MatchSkillList("  Python ,Git,  ")
	require.NotEmpty(t, matches)
	assert.Equal(t, []string{"Python", "Git"}, matches[0].MatchingSkills)
}

func TestMatchSkills_Idempotent(t *testing.T) {
	m := newTestMatcher(t)

	first := m.MatchSkills([]string{"Python", "HTML", "Git"}, true)
	second := m.MatchSkills([]string{"Python", "HTML", "Git"}, true)
	assert.Equal(t, first, second)
}
