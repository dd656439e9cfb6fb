package main

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/ats-scorer/internal/ats"
	"github.com/jonathan/ats-scorer/internal/jdtext"
	"github.com/jonathan/ats-scorer/internal/types"
)

var batchCmd = &cobra.Command{
	Use:   "batch",
	Short: "Score a resume against every job description in a directory",
	Long:  "Score a resume JSON file against each .txt and .html job description in a directory, concurrently, and print results sorted by file name.",
	RunE:  runBatch,
}

var (
	batchResumePath  string
	batchJobsDir     string
	batchOutPath     string
	batchConcurrency int
)

func init() {
	batchCmd.Flags().StringVarP(&batchResumePath, "resume", "r", "", "Path to resume JSON file")
	batchCmd.Flags().StringVarP(&batchJobsDir, "jobs-dir", "d", "", "Directory containing job description files")
	batchCmd.Flags().StringVarP(&batchOutPath, "out", "o", "", "Write results JSON to file instead of stdout")
	batchCmd.Flags().IntVar(&batchConcurrency, "concurrency", 4, "Maximum concurrent scoring jobs")

	batchCmd.MarkFlagRequired("resume")
	batchCmd.MarkFlagRequired("jobs-dir")

	rootCmd.AddCommand(batchCmd)
}

// batchEntry pairs a job description file with its scoring result.
type batchEntry struct {
	Job string `json:"job"`
	types.ScoreResult
}

func runBatch(_ *cobra.Command, _ []string) error {
	entries, err := scoreBatch(batchResumePath, batchJobsDir, batchConcurrency)
	if err != nil {
		return err
	}

	return writeResult(batchOutPath, map[string]any{
		"resume":  batchResumePath,
		"results": entries,
	})
}

// scoreBatch scores a resume against every job description file in dir.
// Scoring runs concurrently but output order is deterministic: entries come
// back sorted by file name.
func scoreBatch(resumePath, dir string, concurrency int) ([]batchEntry, error) {
	resume, err := loadResume(resumePath)
	if err != nil {
		return nil, err
	}

	jobFiles, err := listJobFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(jobFiles) == 0 {
		return nil, fmt.Errorf("no job description files (.txt, .html) found in %s", dir)
	}

	if concurrency < 1 {
		concurrency = 1
	}

	entries := make([]batchEntry, len(jobFiles))
	var group errgroup.Group
	group.SetLimit(concurrency)

	for i, jobFile := range jobFiles {
		group.Go(func() error {
			raw, err := os.ReadFile(jobFile)
			if err != nil {
				return fmt.Errorf("failed to read job description %s: %w", jobFile, err)
			}
			jobDescription, err := jdtext.Normalize(string(raw))
			if err != nil {
				return err
			}

			entries[i] = batchEntry{
				Job:         filepath.Base(jobFile),
				ScoreResult: ats.CalculateScore(resume, jobDescription),
			}
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return entries, nil
}

// listJobFiles returns the .txt and .html files in dir, sorted by name.
func listJobFiles(dir string) ([]string, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read jobs directory %s: %w", dir, err)
	}

	var files []string
	for _, entry := range dirEntries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".txt", ".html", ".htm":
			files = append(files, filepath.Join(dir, entry.Name()))
		}
	}
	sort.Strings(files)
	return files, nil
}
