package ats

import (
	"math"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/jonathan/ats-scorer/internal/types"
)

// maxScore is the cap applied to the summed sub-scores.
const maxScore = 100

// requiredYearsRe pulls an explicit experience requirement ("5+ years") out
// of job description text.
var requiredYearsRe = regexp.MustCompile(`(\d+)\s*\+?\s*years?`)

// overlapStopWords are common words excluded from summary/JD vocabulary
// overlap so the role-fit sub-score measures substance, not filler.
var overlapStopWords = map[string]bool{
	"about": true, "their": true, "there": true, "these": true, "those": true,
	"which": true, "while": true, "would": true, "could": true, "should": true,
	"other": true, "after": true, "before": true, "being": true, "through": true,
	"where": true, "years": true, "experience": true, "working": true,
}

// scoringContext carries everything computed once per call and shared by the
// sub-score functions.
type scoringContext struct {
	resume   *types.ResumeRecord
	jd       string
	hasJD    bool
	haystack string
	bullets  string
	years    int
	universe []string
	matched  map[string]bool
}

// CalculateScore computes the ATS match score for a resume against an
// optional job description. An empty or whitespace-only job description
// routes to generic mode, where the keyword universe comes from the
// inferred role's skill clusters instead of the job text.
//
// The call is pure and deterministic for identical inputs, never mutates the
// resume, and never fails on structurally incomplete data: missing optional
// fields degrade their sub-scores toward zero.
func CalculateScore(resume *types.ResumeRecord, jobDescription string) types.ScoreResult {
	jd := strings.TrimSpace(jobDescription)
	ctx := &scoringContext{
		resume:   resume,
		jd:       jd,
		hasJD:    jd != "",
		haystack: ToSearchableText(resume),
		bullets:  collectBullets(resume),
	}

	ctx.years = TotalExperienceYears(resume)

	if ctx.hasJD {
		ctx.universe = ExtractKeywords(jd)
	} else {
		profile := InferRole(resume)
		ctx.universe = roleKeywordUniverse(profile.Role)
	}
	ctx.matched = matchKeywords(ctx)

	total := keywordScore(ctx) +
		roleFitScore(ctx) +
		experienceScore(ctx) +
		educationScore(ctx) +
		formattingScore(ctx) +
		impactScore(ctx) +
		jdOptimizationBonus(ctx)

	score := int(math.Round(math.Min(maxScore, math.Max(0, total))))

	matched, missing := partitionUniverse(ctx)
	return types.ScoreResult{
		Score:           score,
		MatchedKeywords: matched,
		MissingKeywords: missing,
		Feedback:        feedbackFor(score, ctx.hasJD),
	}
}

// matchKeywords computes the matched subset of the keyword universe: direct
// whole-word hits in the resume text, plus semantic hits where one of the
// resume's declared skills expands (via cluster lookup) to a term contained
// in a universe keyword.
func matchKeywords(ctx *scoringContext) map[string]bool {
	matched := map[string]bool{}

	for _, kw := range ctx.universe {
		if containsWholeWord(ctx.haystack, kw) {
			matched[kw] = true
		}
	}

	for _, skill := range ctx.resume.Skills {
		for _, related := range FindRelatedSkills(skill) {
			for _, kw := range ctx.universe {
				if matched[kw] {
					continue
				}
				if strings.EqualFold(related, kw) ||
					containsWholeWord(kw, related) ||
					containsWholeWord(related, kw) {
					matched[kw] = true
				}
			}
		}
	}

	return matched
}

// partitionUniverse splits the keyword universe into matched and missing
// sets. The two sets never overlap and their union is exactly the universe.
func partitionUniverse(ctx *scoringContext) (matched, missing []string) {
	matched = []string{}
	missing = []string{}
	for _, kw := range ctx.universe {
		if ctx.matched[kw] {
			matched = append(matched, kw)
		} else {
			missing = append(missing, kw)
		}
	}
	sort.Strings(matched)
	sort.Strings(missing)
	return matched, missing
}

// keywordScore is the largest sub-score. With a job description it rewards
// coverage of the extracted keywords (up to 60); without one it rewards
// resume completeness, since there is no target to match against.
func keywordScore(ctx *scoringContext) float64 {
	if ctx.hasJD {
		if len(ctx.universe) == 0 {
			return 0
		}
		ratio := float64(len(ctx.matched)) / float64(len(ctx.universe))
		return math.Min(60, ratio*60)
	}

	// Generic mode grades skill-list completeness against the entry-level
	// industry standards (expected 5, minimum 3).
	entry := industryStandards[LevelEntry]
	var score float64
	switch {
	case len(ctx.resume.Skills) >= entry.ExpectedSkills:
		score = 35
	case len(ctx.resume.Skills) >= entry.MinSkills:
		score = 25
	default:
		score = 15
	}
	for _, skill := range ctx.resume.Skills {
		if containsWholeWord(ctx.bullets, skill) {
			score += 10
			break
		}
	}
	if len(ctx.resume.Skills) >= 10 {
		score += 5
	}
	return score
}

// roleFitScore rewards internal consistency between summary, skills, and
// experience, plus (in JD mode) vocabulary overlap with the job text.
func roleFitScore(ctx *scoringContext) float64 {
	summary := ctx.resume.Summary

	if ctx.hasJD {
		var score float64
		if len(summary) > 100 {
			score += 3
		}
		if len(ctx.resume.Skills) >= 8 {
			score += 2
		}

		overlap := vocabularyOverlap(summary, ctx.jd)
		switch {
		case overlap >= 8:
			score += 8
		case overlap >= 5:
			score += 6
		case overlap >= 3:
			score += 4
		case overlap >= 1:
			score += 2
		}

		skillHits := 0
		for _, skill := range ctx.resume.Skills {
			for _, kw := range ctx.universe {
				if strings.EqualFold(skill, kw) || containsWholeWord(kw, skill) {
					skillHits++
					break
				}
			}
		}
		score += math.Min(5, float64(skillHits))
		return score
	}

	var score float64
	switch {
	case len(summary) > 200:
		score += 8
	case len(summary) > 100:
		score += 6
	case len(summary) > 0:
		score += 3
	}

	alignment := 0
	for word := range significantWords(summary) {
		if strings.Contains(ctx.bullets, word) {
			alignment++
		}
	}
	switch {
	case alignment >= 5:
		score += 5
	case alignment >= 2:
		score += 3
	}

	switch {
	case len(ctx.resume.Skills) >= 10:
		score += 2
	case len(ctx.resume.Skills) >= 5:
		score += 1
	}

	return math.Min(20, score)
}

// experienceScore checks fit-to-requirement in JD mode and resume
// craftsmanship (entry count, bullet completeness, recency) in generic mode.
func experienceScore(ctx *scoringContext) float64 {
	if ctx.hasJD {
		var score float64
		required := requiredYearsFromJD(ctx.jd)
		if required > 0 {
			switch {
			case ctx.years >= required:
				score += 8
			case ctx.years >= required-1:
				score += 6
			case ctx.years*2 >= required:
				score += 4
			case ctx.years > 0:
				score += 2
			}
		} else {
			switch {
			case ctx.years >= 5:
				score += 8
			case ctx.years >= 3:
				score += 6
			case ctx.years >= 1:
				score += 4
			}
		}

		hits := 0
		for _, kw := range ctx.universe {
			if containsWholeWord(ctx.bullets, kw) {
				hits++
			}
		}
		switch {
		case hits >= 5:
			score += 6
		case hits >= 2:
			score += 4
		case hits >= 1:
			score += 2
		}

		if hasRecentExperience(ctx.resume) {
			score += 3
		}
		return score
	}

	var score float64
	entries := ctx.resume.Experience
	switch {
	case len(entries) >= 3:
		score += 10
	case len(entries) == 2:
		score += 7
	case len(entries) == 1:
		score += 4
	}

	if len(entries) > 0 {
		described := 0
		detailed := false
		for _, e := range entries {
			if len(e.Description) > 0 {
				described++
			}
			if len(e.Description) >= 3 {
				detailed = true
			}
		}
		switch {
		case described == len(entries):
			score += 5
		case described > 0:
			score += 3
		default:
			score += 1
		}
		if detailed {
			score += 3
		}
	}

	if hasRecentExperience(ctx.resume) {
		score += 2
	}

	switch {
	case ctx.years >= industryStandards[LevelSenior].ExperienceYears:
		score += 3
	case ctx.years >= industryStandards[LevelMid].ExperienceYears:
		score += 2
	case ctx.years >= 1:
		score += 1
	}

	return math.Min(25, score)
}

// educationScore rewards education presence and, in JD mode, relevance of
// the degree and field to the job text.
func educationScore(ctx *scoringContext) float64 {
	entries := ctx.resume.Education

	if ctx.hasJD {
		var score float64
		if len(entries) == 0 {
			return 0
		}
		score += 1

		degreeMatch := false
		anyDegree := false
		for _, e := range entries {
			if e.Degree != "" {
				anyDegree = true
			}
			for _, field := range []string{e.Degree, e.Field} {
				if field != "" && containsWholeWord(ctx.jd, field) {
					degreeMatch = true
				}
			}
		}
		if degreeMatch {
			score += 1
		} else if anyDegree {
			score += 0.5
		}

		for _, e := range entries {
			if e.Field == "" {
				continue
			}
			if fieldMatchesUniverse(e.Field, ctx.universe) {
				score += 0.5
				break
			}
		}

		if bestGPA(entries) >= 3.5 {
			score += 1
		}
		return math.Min(10, score)
	}

	var score float64
	switch {
	case len(entries) >= 2:
		score += 3
	case len(entries) == 1:
		score += 2
	}

	complete := false
	partial := false
	anyDegree := false
	for _, e := range entries {
		if e.Degree != "" {
			anyDegree = true
		}
		if e.Degree != "" && e.Field != "" && e.Institution != "" {
			complete = true
		} else if e.Degree != "" || e.Field != "" || e.Institution != "" {
			partial = true
		}
	}
	if complete {
		score += 3
	} else if partial {
		score += 1
	}
	if anyDegree {
		score += 2
	}
	if bestGPA(entries) >= 3.5 {
		score += 1
	}
	return math.Min(10, score)
}

// formattingScore is a proxy for ATS parseability: complete contact
// information parses cleanly. Mode-independent.
func formattingScore(ctx *scoringContext) float64 {
	r := ctx.resume
	var score float64
	if r.Name != "" && r.Email != "" {
		score += 1
	}
	if r.Phone != "" {
		score += 0.5
	}
	if r.Location != "" {
		score += 0.5
	}
	if r.LinkedIn != "" || r.Website != "" {
		score += 0.5
	}
	return score
}

// impactScore grants small bonuses for quantified outcomes and leadership
// language in the experience bullets.
func impactScore(ctx *scoringContext) float64 {
	var score float64
	if HasQuantifiedImpact(ctx.bullets) {
		score += 1
	}
	if HasLeadershipLanguage(ctx.bullets) {
		score += 0.5
	}
	return score
}

// jdOptimizationBonus rewards near-complete coverage of the job
// description's keywords, beyond the base keyword score. Zero in generic
// mode.
func jdOptimizationBonus(ctx *scoringContext) float64 {
	if !ctx.hasJD || len(ctx.universe) == 0 {
		return 0
	}
	ratio := float64(len(ctx.matched)) / float64(len(ctx.universe))
	switch {
	case ratio >= 0.9:
		return 10
	case ratio >= 0.8:
		return 8
	case ratio >= 0.7:
		return 6
	case ratio >= 0.6:
		return 4
	case ratio >= 0.5:
		return 2
	}
	return 0
}

// TotalExperienceYears sums whole-year durations over all experience
// entries. Entries with malformed dates contribute zero; current entries
// end now. Whole-year granularity is a known simplification.
func TotalExperienceYears(resume *types.ResumeRecord) int {
	total := 0
	nowYear := time.Now().Year()
	for _, e := range resume.Experience {
		startYear, ok := parseYear(e.StartDate)
		if !ok {
			continue
		}
		endYear := nowYear
		if !e.Current {
			endYear, ok = parseYear(e.EndDate)
			if !ok {
				continue
			}
		}
		if years := endYear - startYear; years > 0 {
			total += years
		}
	}
	return total
}

// RoleLevelForYears maps total years of experience to a role level.
func RoleLevelForYears(years int) string {
	switch {
	case years >= 7:
		return LevelLead
	case years >= 5:
		return LevelSenior
	case years >= 2:
		return LevelMid
	default:
		return LevelEntry
	}
}

// bestGPA returns the highest GPA across education entries, 0 when none set.
func bestGPA(entries []types.Education) float64 {
	best := 0.0
	for _, e := range entries {
		if e.GPA > best {
			best = e.GPA
		}
	}
	return best
}

// parseYear extracts the year from a "YYYY-MM" (or bare "YYYY") date string.
func parseYear(date string) (int, bool) {
	date = strings.TrimSpace(date)
	for _, layout := range []string{"2006-01", "2006"} {
		if t, err := time.Parse(layout, date); err == nil {
			return t.Year(), true
		}
	}
	return 0, false
}

// requiredYearsFromJD extracts the first "N+ years" requirement from job
// description text, or 0 if none is stated.
func requiredYearsFromJD(jd string) int {
	m := requiredYearsRe.FindStringSubmatch(jd)
	if m == nil {
		return 0
	}
	years, err := strconv.Atoi(m[1])
	if err != nil {
		return 0
	}
	return years
}

// hasRecentExperience reports whether the most recent entry is current or
// ended within the last two years.
func hasRecentExperience(resume *types.ResumeRecord) bool {
	nowYear := time.Now().Year()
	for _, e := range resume.Experience {
		if e.Current {
			return true
		}
		if year, ok := parseYear(e.EndDate); ok && year >= nowYear-2 {
			return true
		}
	}
	return false
}

// collectBullets joins all experience description lines into one lowercase
// blob for containment checks.
func collectBullets(resume *types.ResumeRecord) string {
	var sb strings.Builder
	for _, e := range resume.Experience {
		for _, line := range e.Description {
			sb.WriteString(line)
			sb.WriteByte(' ')
		}
	}
	return strings.ToLower(sb.String())
}

// significantWords tokenizes text into lowercase words longer than four
// characters, excluding stop words.
func significantWords(text string) map[string]bool {
	words := map[string]bool{}
	for _, w := range strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !('a' <= r && r <= 'z') && !('0' <= r && r <= '9')
	}) {
		if len(w) > 4 && !overlapStopWords[w] {
			words[w] = true
		}
	}
	return words
}

// vocabularyOverlap counts significant words shared between two texts.
func vocabularyOverlap(a, b string) int {
	wordsB := significantWords(b)
	count := 0
	for w := range significantWords(a) {
		if wordsB[w] {
			count++
		}
	}
	return count
}

// fieldMatchesUniverse reports whether any token of an education field
// appears among the universe keywords.
func fieldMatchesUniverse(field string, universe []string) bool {
	for _, token := range tokenizeSkill(field) {
		if len(token) < minOverlapTokenLen {
			continue
		}
		for _, kw := range universe {
			if strings.Contains(strings.ToLower(kw), token) {
				return true
			}
		}
	}
	return false
}
