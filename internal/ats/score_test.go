package ats

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/jonathan/ats-scorer/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// strongCandidate is a complete resume used by the JD-mode scenario tests:
// four matching skills, a senior amount of experience, quantified bullets.
func strongCandidate() *types.ResumeRecord {
	return &types.ResumeRecord{
		Name:     "Alex Rivera",
		Email:    "alex.rivera@example.com",
		Phone:    "+1 555 0100",
		Location: "Austin, TX",
		LinkedIn: "linkedin.com/in/alexrivera",
		Summary: "Backend engineer with six years of Python experience building " +
			"data platforms and cloud infrastructure on AWS. Shipped machine " +
			"learning pipelines to production, containerized services with " +
			"Docker, and owned reliability for a high-traffic API platform.",
		Skills: []string{"Python", "SQL", "AWS", "Docker"},
		Experience: []types.Experience{
			{
				Title: "Senior Backend Engineer", Company: "DataCo",
				StartDate: "2022-01", EndDate: "2024-01",
				Description: []string{
					"Led migration of Python services to AWS, cutting costs by 40%",
					"Designed streaming ingestion handling 100,000 requests per hour",
					"Mentored three junior engineers",
				},
			},
			{
				Title: "Backend Engineer", Company: "Webshop",
				StartDate: "2020-01", EndDate: "2022-01",
				Description: []string{"Built Python REST APIs backed by PostgreSQL"},
			},
			{
				Title: "Software Engineer", Company: "StartupX",
				StartDate: "2018-01", EndDate: "2020-01",
				Description: []string{"Implemented billing workflows in Python"},
			},
		},
		Education: []types.Education{
			{Degree: "BS", Field: "Computer Science", Institution: "UT Austin", GPA: 3.8},
		},
	}
}

const strongJD = "We need a Python developer with AWS and Docker experience, 5+ years."

func TestCalculateScore_JDStrongMatch(t *testing.T) {
	resume := strongCandidate()
	result := CalculateScore(resume, strongJD)

	// Role level from whole-year durations: 2+2+2 = 6 years => senior.
	years := TotalExperienceYears(resume)
	assert.Equal(t, 6, years)
	assert.Equal(t, LevelSenior, RoleLevelForYears(years))

	// All three extracted JD keywords are present in the resume.
	universe := ExtractKeywords(strongJD)
	require.Equal(t, []string{"Python", "AWS", "Docker"}, universe)
	assert.ElementsMatch(t, []string{"AWS", "Docker", "Python"}, result.MatchedKeywords)
	assert.Empty(t, result.MissingKeywords)

	assert.GreaterOrEqual(t, result.Score, 70)
	assert.LessOrEqual(t, result.Score, 100)
	assert.Contains(t, []string{jdFeedbackTiers[0].message, jdFeedbackTiers[1].message},
		result.Feedback)
}

func TestCalculateScore_GenericSparseResume(t *testing.T) {
	resume := &types.ResumeRecord{Skills: []string{"Excel"}}
	result := CalculateScore(resume, "")

	assert.Less(t, result.Score, 40)
	assert.Equal(t, genericFeedbackTiers[len(genericFeedbackTiers)-1].message, result.Feedback)
}

func TestCalculateScore_EmptyResume(t *testing.T) {
	result := CalculateScore(&types.ResumeRecord{}, "")

	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
	assert.Less(t, result.Score, 40)
	assert.NotEmpty(t, result.Feedback)
	assert.NotNil(t, result.MatchedKeywords)
	assert.NotNil(t, result.MissingKeywords)
}

func TestCalculateScore_Bounds(t *testing.T) {
	resumes := []*types.ResumeRecord{
		{},
		strongCandidate(),
		{Skills: []string{"Excel"}},
		{Summary: "Marketing specialist focused on SEO and content marketing campaigns"},
	}
	jds := []string{"", strongJD, "Looking for a Scrum master with Agile and Jira skills"}

	for _, resume := range resumes {
		for _, jd := range jds {
			result := CalculateScore(resume, jd)
			assert.GreaterOrEqual(t, result.Score, 0)
			assert.LessOrEqual(t, result.Score, 100)

			// Matched and missing partition the universe exactly.
			seen := map[string]bool{}
			for _, kw := range result.MatchedKeywords {
				seen[kw] = true
			}
			for _, kw := range result.MissingKeywords {
				assert.False(t, seen[kw], "keyword %q in both matched and missing", kw)
			}
			if jd != "" {
				assert.Len(t, append(result.MatchedKeywords, result.MissingKeywords...),
					len(ExtractKeywords(jd)))
			}
		}
	}
}

func TestCalculateScore_MatchedKeywordMonotonicity(t *testing.T) {
	base := strongCandidate()
	base.Skills = []string{"Python", "AWS"}
	for i := range base.Experience {
		base.Experience[i].Description = []string{"Built Python services on AWS"}
	}
	without := CalculateScore(base, strongJD)

	augmented := strongCandidate()
	augmented.Skills = []string{"Python", "AWS", "Docker"}
	for i := range augmented.Experience {
		augmented.Experience[i].Description = []string{"Built Python services on AWS"}
	}
	with := CalculateScore(augmented, strongJD)

	assert.GreaterOrEqual(t, with.Score, without.Score,
		"adding a JD keyword as a skill must never decrease the score")
	assert.Contains(t, with.MatchedKeywords, "Docker")
}

func TestCalculateScore_ModeRouting(t *testing.T) {
	resume := strongCandidate()

	empty := CalculateScore(resume, "")
	whitespace := CalculateScore(resume, "   \n\t ")

	assert.Equal(t, empty, whitespace, "blank job descriptions share the generic path")
	// Generic feedback, not JD feedback.
	assert.NotContains(t, empty.Feedback, "job")
}

func TestCalculateScore_Deterministic(t *testing.T) {
	resume := strongCandidate()
	first := CalculateScore(resume, strongJD)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, CalculateScore(resume, strongJD))
	}
}

func TestCalculateScore_DoesNotMutateResume(t *testing.T) {
	resume := strongCandidate()
	before, err := json.Marshal(resume)
	require.NoError(t, err)

	_ = CalculateScore(resume, strongJD)
	_ = CalculateScore(resume, "")

	after, err := json.Marshal(resume)
	require.NoError(t, err)
	assert.JSONEq(t, string(before), string(after))
}

func TestTotalExperienceYears(t *testing.T) {
	t.Run("malformed dates contribute zero", func(t *testing.T) {
		resume := &types.ResumeRecord{Experience: []types.Experience{
			{StartDate: "2018-01", EndDate: "2020-01"},
			{StartDate: "not-a-date", EndDate: "2022-01"},
			{StartDate: "2020-01", EndDate: "garbage"},
		}}
		assert.Equal(t, 2, TotalExperienceYears(resume))
	})

	t.Run("current entry ends now", func(t *testing.T) {
		resume := &types.ResumeRecord{Experience: []types.Experience{
			{StartDate: "2020-01", EndDate: "1999-01", Current: true},
		}}
		assert.Equal(t, time.Now().Year()-2020, TotalExperienceYears(resume))
	})

	t.Run("no experience", func(t *testing.T) {
		assert.Equal(t, 0, TotalExperienceYears(&types.ResumeRecord{}))
	})

	t.Run("bare year dates", func(t *testing.T) {
		resume := &types.ResumeRecord{Experience: []types.Experience{
			{StartDate: "2015", EndDate: "2019"},
		}}
		assert.Equal(t, 4, TotalExperienceYears(resume))
	})
}

func TestRoleLevelForYears(t *testing.T) {
	tests := []struct {
		years int
		want  string
	}{
		{0, LevelEntry},
		{1, LevelEntry},
		{2, LevelMid},
		{4, LevelMid},
		{5, LevelSenior},
		{6, LevelSenior},
		{7, LevelLead},
		{12, LevelLead},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RoleLevelForYears(tt.years), "years=%d", tt.years)
	}
}

func TestRequiredYearsFromJD(t *testing.T) {
	assert.Equal(t, 5, requiredYearsFromJD("requires 5+ years of experience"))
	assert.Equal(t, 3, requiredYearsFromJD("3 years minimum"))
	assert.Equal(t, 0, requiredYearsFromJD("no requirement stated"))
}

func TestFeedbackFor_TierLadder(t *testing.T) {
	assert.Equal(t, jdFeedbackTiers[0].message, feedbackFor(95, true))
	assert.Equal(t, jdFeedbackTiers[1].message, feedbackFor(85, true))
	assert.Equal(t, jdFeedbackTiers[5].message, feedbackFor(10, true))
	assert.Equal(t, genericFeedbackTiers[2].message, feedbackFor(75, false))
	assert.Equal(t, genericFeedbackTiers[5].message, feedbackFor(0, false))
}
