package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeJobsDir(t *testing.T, jobs map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range jobs {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestScoreBatch_SortedByFileName(t *testing.T) {
	resumePath := writeSampleResume(t)
	dir := writeJobsDir(t, map[string]string{
		"b_devops.txt":  "Kubernetes and Docker experience required.",
		"a_backend.txt": "Python developer with AWS experience.",
		"notes.md":      "should be ignored",
	})

	entries, err := scoreBatch(resumePath, dir, 4)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "a_backend.txt", entries[0].Job)
	assert.Equal(t, "b_devops.txt", entries[1].Job)
}

func TestScoreBatch_Deterministic(t *testing.T) {
	resumePath := writeSampleResume(t)
	dir := writeJobsDir(t, map[string]string{
		"one.txt":   "Python developer with AWS experience.",
		"two.txt":   "Kubernetes and Docker experience required.",
		"three.txt": "Marketing specialist with SEO background.",
	})

	first, err := scoreBatch(resumePath, dir, 3)
	require.NoError(t, err)
	second, err := scoreBatch(resumePath, dir, 1)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScoreBatch_EmptyDir(t *testing.T) {
	_, err := scoreBatch(writeSampleResume(t), t.TempDir(), 2)
	assert.Error(t, err)
}

func TestScoreBatch_MissingDir(t *testing.T) {
	_, err := scoreBatch(writeSampleResume(t), filepath.Join(t.TempDir(), "nope"), 2)
	assert.Error(t, err)
}

func TestListJobFiles_FiltersAndSorts(t *testing.T) {
	dir := writeJobsDir(t, map[string]string{
		"z.html":     "<p>job</p>",
		"a.txt":      "job",
		"skip.json":  "{}",
		"upper.HTML": "<p>job</p>",
	})

	files, err := listJobFiles(dir)
	require.NoError(t, err)
	require.Len(t, files, 3)
	assert.Equal(t, filepath.Join(dir, "a.txt"), files[0])
	assert.Equal(t, filepath.Join(dir, "upper.HTML"), files[1])
	assert.Equal(t, filepath.Join(dir, "z.html"), files[2])
}
