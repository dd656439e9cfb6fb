package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleResumeJSON = `{
	"name": "Alex Rivera",
	"email": "alex@example.com",
	"summary": "Backend engineer building data pipelines and cloud services on AWS.",
	"skills": ["Python", "SQL", "AWS", "Docker"],
	"experience": [
		{
			"title": "Software Engineer",
			"company": "Acme Corp",
			"start_date": "2019-03",
			"end_date": "2024-01",
			"description": ["Led migration of services to AWS, reducing costs by 30%"]
		}
	]
}`

func writeSampleResume(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(sampleResumeJSON), 0o644))
	return path
}

func TestLoadResume_Valid(t *testing.T) {
	resume, err := loadResume(writeSampleResume(t))
	require.NoError(t, err)
	assert.Equal(t, "Alex Rivera", resume.Name)
	assert.Len(t, resume.Skills, 4)
	// Normalize fills nil slices
	assert.NotNil(t, resume.Projects)
}

func TestLoadResume_MissingFile(t *testing.T) {
	_, err := loadResume(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
}

func TestLoadResume_SchemaViolation(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"name": 42}`), 0o644))

	_, err := loadResume(path)
	assert.Error(t, err)
}

func TestScoreFiles_WithJobDescription(t *testing.T) {
	resumePath := writeSampleResume(t)
	jobPath := filepath.Join(t.TempDir(), "job.txt")
	require.NoError(t, os.WriteFile(jobPath, []byte("We need a Python developer with AWS and Docker experience."), 0o644))

	_, result, mode, err := scoreFiles(resumePath, jobPath)
	require.NoError(t, err)
	assert.Equal(t, "jd", mode)
	assert.GreaterOrEqual(t, result.Score, 0)
	assert.LessOrEqual(t, result.Score, 100)
	assert.Contains(t, result.MatchedKeywords, "Python")
	assert.NotEmpty(t, result.Feedback)
}

func TestScoreFiles_NoJobDescriptionIsGeneric(t *testing.T) {
	_, result, mode, err := scoreFiles(writeSampleResume(t), "")
	require.NoError(t, err)
	assert.Equal(t, "generic", mode)
	assert.NotEmpty(t, result.Feedback)
}

func TestScoreFiles_HTMLJobDescription(t *testing.T) {
	resumePath := writeSampleResume(t)
	jobPath := filepath.Join(t.TempDir(), "job.html")
	require.NoError(t, os.WriteFile(jobPath, []byte("<html><body><p>Python developer wanted.</p><ul><li>AWS</li></ul></body></html>"), 0o644))

	_, result, mode, err := scoreFiles(resumePath, jobPath)
	require.NoError(t, err)
	assert.Equal(t, "jd", mode)
	assert.Contains(t, result.MatchedKeywords, "Python")
}

func TestWriteResult_File(t *testing.T) {
	outPath := filepath.Join(t.TempDir(), "result.json")
	require.NoError(t, writeResult(outPath, map[string]int{"score": 80}))

	data, err := os.ReadFile(outPath)
	require.NoError(t, err)

	var doc map[string]int
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, 80, doc["score"])
}
