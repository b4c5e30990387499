package review

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// completeCV trips all five checks and all three section heuristics.
const completeCV = `Summary: Experienced developer.
Email: jane.doe@example.io, phone (555) 123-4567.
Skills: Go, Python. Work experience: developed services, improved latency by 25%.
Education: BSc Computer Science, University of Somewhere.`

func TestAnalyze_CompleteCV(t *testing.T) {
	c := Analyze(completeCV)

	require.Len(t, c.Strengths, 5)
	assert.Empty(t, c.Weaknesses)
	assert.Empty(t, c.Suggestions)
	assert.Empty(t, c.ImprovedSections)
}

func TestAnalyze_EachCheckIsIndependent(t *testing.T) {
	// each input carries exactly one of the five signals
	tests := []struct {
		name     string
		cvText   string
		strength string
	}{
		{"email only", "jane.doe@mail.io", "✓ Contact information is present"},
		{"phone only", "(555) 123-4567", "✓ Phone number is included"},
		{"skills only", "Technical Skills", "✓ Skills section is present"},
		{"experience only", "past internships", "✓ Work experience is mentioned"},
		{"education only", "University attendance", "✓ Education section is present"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Analyze(tt.cvText)
			require.Len(t, c.Strengths, 1)
			assert.Equal(t, tt.strength, c.Strengths[0])
			assert.Len(t, c.Weaknesses, 4)
			assert.Len(t, c.Suggestions, 4)
		})
	}
}

func TestAnalyze_ChecksAccumulateInDefinitionOrder(t *testing.T) {
	c := Analyze("nothing useful here at all")

	require.Len(t, c.Weaknesses, 5)
	assert.Equal(t, []string{
		"✗ Missing email address",
		"✗ Missing phone number",
		"✗ No clear skills section",
		"✗ Limited work experience mentioned",
		"✗ Education information missing",
	}, c.Weaknesses)
}

func TestAnalyze_ImprovedSections(t *testing.T) {
	tests := []struct {
		name     string
		cvText   string
		sections []string
	}{
		{
			name:     "nothing present",
			cvText:   "plain text",
			sections: []string{"Professional Summary", "Quantified Achievements", "Action-Oriented Language"},
		},
		{
			name:     "summary present",
			cvText:   "Profile: a short blurb",
			sections: []string{"Quantified Achievements", "Action-Oriented Language"},
		},
		{
			name:     "quantified via percentage",
			cvText:   "grew revenue 30%",
			sections: []string{"Professional Summary", "Action-Oriented Language"},
		},
		{
			name:     "quantified via multiplier",
			cvText:   "made ingestion 3x faster",
			sections: []string{"Professional Summary", "Action-Oriented Language"},
		},
		{
			name:     "action verb present",
			cvText:   "Led a small team",
			sections: []string{"Professional Summary", "Quantified Achievements"},
		},
		{
			name:     "all present",
			cvText:   "Objective: built systems, saved $4000",
			sections: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Analyze(tt.cvText)
			var got []string
			for _, s := range c.ImprovedSections {
				got = append(got, s.Section)
			}
			assert.Equal(t, tt.sections, got)
		})
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	first := Analyze(completeCV)
	second := Analyze(completeCV)
	assert.Equal(t, first, second)
}

func TestAnalyze_NeverReturnsNilResult(t *testing.T) {
	c := Analyze("")
	require.NotNil(t, c)
	assert.Len(t, c.Weaknesses, 5)
	assert.Len(t, c.ImprovedSections, 3)
}
