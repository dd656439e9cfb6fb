package ats

// feedbackTier pairs a minimum score with a canned feedback sentence.
type feedbackTier struct {
	minScore int
	message  string
}

// jdFeedbackTiers is the feedback ladder used when a job description was
// supplied; messages speak to ATS optimization against that job.
var jdFeedbackTiers = []feedbackTier{
	{90, "Excellent! Your resume is highly optimized for this job's ATS screening."},
	{80, "Great match. Your resume covers most of what this job description asks for."},
	{70, "Good ATS alignment with this job; adding a few missing keywords would strengthen it."},
	{60, "Fair match. Work the missing keywords for this job into your experience and skills."},
	{50, "Below average ATS optimization for this job; significant keyword gaps remain."},
	{0, "Your resume needs substantial tailoring to pass ATS screening for this job."},
}

// genericFeedbackTiers is the ladder used without a job description;
// messages speak to overall resume quality.
var genericFeedbackTiers = []feedbackTier{
	{90, "Excellent! Your resume demonstrates outstanding overall quality."},
	{80, "Great resume quality with strong skills and well-documented experience."},
	{70, "Good resume quality; a richer summary or more detail would lift it further."},
	{60, "Fair resume quality. Expand your skills list and experience descriptions."},
	{50, "Below average resume quality; several sections need more substance."},
	{0, "Your resume needs significant improvement across skills, experience, and detail."},
}

// feedbackFor picks the feedback sentence for a score from the ladder that
// matches the scoring mode.
func feedbackFor(score int, hasJobDescription bool) string {
	tiers := genericFeedbackTiers
	if hasJobDescription {
		tiers = jdFeedbackTiers
	}
	for _, tier := range tiers {
		if score >= tier.minScore {
			return tier.message
		}
	}
	return tiers[len(tiers)-1].message
}
