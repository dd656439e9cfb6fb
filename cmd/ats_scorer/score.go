package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-scorer/internal/ats"
	"github.com/jonathan/ats-scorer/internal/config"
	"github.com/jonathan/ats-scorer/internal/jdtext"
	"github.com/jonathan/ats-scorer/internal/observability"
	"github.com/jonathan/ats-scorer/internal/schemas"
	"github.com/jonathan/ats-scorer/internal/types"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score a resume against an optional job description",
	Long:  "Score a resume JSON file. With --job the score measures fit against that job description; without it the resume is scored against role-inferred industry expectations.",
	RunE:  runScore,
}

var (
	scoreResumePath string
	scoreJobPath    string
	scoreConfigPath string
	scoreOutPath    string
	scoreVerbose    bool
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumePath, "resume", "r", "", "Path to resume JSON file")
	scoreCmd.Flags().StringVarP(&scoreJobPath, "job", "j", "", "Path to job description file (plain text or HTML)")
	scoreCmd.Flags().StringVarP(&scoreConfigPath, "config", "c", "", "Path to JSON config file")
	scoreCmd.Flags().StringVarP(&scoreOutPath, "out", "o", "", "Write result JSON to file instead of stdout")
	scoreCmd.Flags().BoolVarP(&scoreVerbose, "verbose", "v", false, "Print a human-readable score breakdown to stderr")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	cfg := config.Config{Resume: scoreResumePath, Job: scoreJobPath}
	if scoreConfigPath != "" {
		fileCfg, err := config.LoadConfig(scoreConfigPath)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
	}
	if cfg.Resume == "" {
		return fmt.Errorf("--resume is required (or set 'resume' in the config file)")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	resume, result, mode, err := scoreFiles(cfg.Resume, cfg.Job)
	if err != nil {
		return err
	}

	if scoreVerbose || cfg.Verbose {
		printer := observability.NewPrinter(os.Stderr)
		if mode == "generic" {
			profile := ats.InferRole(resume)
			printer.PrintRoleProfile(&profile)
		}
		printer.PrintScoreResult(&result, mode)
	}

	return writeResult(scoreOutPath, scoreOutput{
		Mode:        mode,
		ScoreResult: result,
	})
}

// scoreOutput is the CLI result document. Mode records whether a job
// description drove the score.
type scoreOutput struct {
	Mode string `json:"mode"`
	types.ScoreResult
}

// scoreFiles loads and validates a resume file, optionally loads a job
// description file, and runs the scorer. Returns the loaded resume, the
// result, and the scoring mode ("jd" or "generic").
func scoreFiles(resumePath, jobPath string) (*types.ResumeRecord, types.ScoreResult, string, error) {
	resume, err := loadResume(resumePath)
	if err != nil {
		return nil, types.ScoreResult{}, "", err
	}

	jobDescription, err := loadJobDescription(jobPath)
	if err != nil {
		return nil, types.ScoreResult{}, "", err
	}

	mode := "jd"
	if strings.TrimSpace(jobDescription) == "" {
		mode = "generic"
	}

	return resume, ats.CalculateScore(resume, jobDescription), mode, nil
}

// loadJobDescription reads and normalizes a job description file. An empty
// path yields an empty description, which routes scoring to generic mode.
func loadJobDescription(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read job description %s: %w", path, err)
	}
	return jdtext.Normalize(string(raw))
}

// loadResume reads a resume JSON file, checks it against the resume schema,
// and returns the normalized record.
func loadResume(path string) (*types.ResumeRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume %s: %w", path, err)
	}

	if err := schemas.ValidateResumeBytes(data); err != nil {
		return nil, err
	}

	var resume types.ResumeRecord
	if err := json.Unmarshal(data, &resume); err != nil {
		return nil, fmt.Errorf("failed to parse resume %s: %w", path, err)
	}
	resume.Normalize()

	if err := resume.Validate(); err != nil {
		return nil, fmt.Errorf("invalid resume %s: %w", path, err)
	}

	return &resume, nil
}

// writeResult marshals a result document to the given path, or stdout when
// path is empty.
func writeResult(path string, doc any) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal result: %w", err)
	}
	data = append(data, '\n')

	if path == "" {
		_, err = os.Stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write result to %s: %w", path, err)
	}
	return nil
}
