package ats

import "sort"

// IndustryStandard holds skill-count and experience thresholds for one role
// level. Thresholds increase monotonically from entry to lead.
type IndustryStandard struct {
	MinSkills             int
	ExpectedSkills        int
	StrongSkills          int
	ExperienceYears       int
	StrongExperienceYears int
}

// Role levels derived from total years of experience.
const (
	LevelEntry  = "entry"
	LevelMid    = "mid"
	LevelSenior = "senior"
	LevelLead   = "lead"
)

// skillClusters is the static skill taxonomy. Cluster membership is fixed at
// build time; a term may belong to more than one cluster. All members are
// lowercase.
var skillClusters = map[string][]string{
	"programming": {
		"javascript", "typescript", "python", "java", "c#", "c++", "go",
		"golang", "ruby", "php", "swift", "kotlin", "rust", "scala",
	},
	"web_frontend": {
		"react", "angular", "vue", "html", "css", "sass", "redux",
		"next.js", "webpack", "tailwind",
	},
	"web_backend": {
		"node.js", "express", "django", "flask", "spring", "rails",
		"graphql", "rest api", "microservices",
	},
	"databases": {
		"sql", "mysql", "postgresql", "mongodb", "redis", "elasticsearch",
		"dynamodb", "oracle", "sqlite",
	},
	"cloud_aws": {
		"aws", "ec2", "s3", "lambda", "cloudformation", "rds", "eks",
	},
	"cloud_azure": {
		"azure", "azure devops", "azure functions", "cosmos db",
	},
	"cloud_gcp": {
		"gcp", "google cloud", "bigquery", "cloud run", "firebase",
	},
	"devops": {
		"docker", "kubernetes", "terraform", "jenkins", "ci/cd", "ansible",
		"git", "github actions", "monitoring",
	},
	"data_science": {
		"machine learning", "deep learning", "tensorflow", "pytorch",
		"pandas", "numpy", "data analysis", "statistics", "nlp",
	},
	"mobile": {
		"ios", "android", "react native", "flutter", "swift", "kotlin",
		"mobile development",
	},
	"project_management": {
		"project management", "agile", "scrum", "kanban", "jira",
		"stakeholder management", "roadmap",
	},
	"analytics": {
		"analytics", "data analysis", "tableau", "power bi", "excel",
		"reporting", "kpi", "a/b testing",
	},
	"marketing": {
		"marketing", "seo", "sem", "content marketing", "social media",
		"email marketing", "branding",
	},
	"sales": {
		"sales", "crm", "salesforce", "lead generation", "negotiation",
		"account management",
	},
	"finance": {
		"finance", "accounting", "budgeting", "forecasting",
		"financial analysis", "excel",
	},
	"design": {
		"figma", "sketch", "ui design", "ux design", "wireframing",
		"prototyping", "user research",
	},
	"leadership": {
		"leadership", "team management", "mentoring", "coaching",
		"decision making", "strategic planning",
	},
	"communication": {
		"communication", "presentation", "writing", "public speaking",
		"documentation",
	},
	"problem_solving": {
		"problem solving", "critical thinking", "troubleshooting",
		"debugging", "analytical",
	},
	"collaboration": {
		"collaboration", "teamwork", "cross-functional", "partnership",
		"interpersonal",
	},
}

// industryStandards maps role level to its thresholds.
var industryStandards = map[string]IndustryStandard{
	LevelEntry:  {MinSkills: 3, ExpectedSkills: 5, StrongSkills: 8, ExperienceYears: 0, StrongExperienceYears: 2},
	LevelMid:    {MinSkills: 5, ExpectedSkills: 8, StrongSkills: 12, ExperienceYears: 2, StrongExperienceYears: 4},
	LevelSenior: {MinSkills: 8, ExpectedSkills: 12, StrongSkills: 16, ExperienceYears: 5, StrongExperienceYears: 8},
	LevelLead:   {MinSkills: 10, ExpectedSkills: 15, StrongSkills: 20, ExperienceYears: 7, StrongExperienceYears: 10},
}

// clusterNames holds the cluster names in sorted order so every iteration
// over the taxonomy is deterministic.
var clusterNames = func() []string {
	names := make([]string, 0, len(skillClusters))
	for name := range skillClusters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}()

// SkillClusters returns the static skill taxonomy. The returned map is
// shared; callers must not mutate it.
func SkillClusters() map[string][]string {
	return skillClusters
}

// IndustryStandards returns the per-level threshold table.
func IndustryStandards() map[string]IndustryStandard {
	return industryStandards
}
