package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/ats-scorer/internal/types"
)

func TestPrintScoreResult(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreResult(&types.ScoreResult{
		Score:           82,
		MatchedKeywords: []string{"Python", "AWS"},
		MissingKeywords: []string{"Docker", "Kubernetes", "Terraform", "Helm", "Ansible", "Chef"},
		Feedback:        "Strong match! Your resume aligns well with this position.",
	}, "jd")

	out := buf.String()
	assert.Contains(t, out, "ATS SCORE")
	assert.Contains(t, out, "82 / 100")
	assert.Contains(t, out, "Python")
	assert.Contains(t, out, "and 1 more")
}

func TestPrintScoreResult_Nil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintScoreResult(nil, "jd")
	assert.Empty(t, buf.String())
}

func TestPrintRoleProfile(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintRoleProfile(&types.RoleProfile{
		Role:       "software_engineer",
		Confidence: 0.4,
		Skills:     []string{"python", "docker"},
	})

	out := buf.String()
	assert.Contains(t, out, "INFERRED ROLE")
	assert.Contains(t, out, "software_engineer")
	assert.Contains(t, out, "0.40")
	assert.Contains(t, out, "python")
}

func TestPrintBox_TruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintScoreResult(&types.ScoreResult{
		Score:    10,
		Feedback: strings.Repeat("x", 200),
	}, "generic")

	for _, line := range strings.Split(buf.String(), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth+2)
	}
}
