// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-scorer/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintScoreResult outputs a human-readable summary of a scoring result.
func (p *Printer) PrintScoreResult(result *types.ScoreResult, mode string) {
	if result == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Score:  %d / 100\n", result.Score))
	sb.WriteString(fmt.Sprintf("Mode:   %s\n", mode))
	sb.WriteString("\n")

	if len(result.MatchedKeywords) > 0 {
		sb.WriteString("Matched Keywords:\n")
		count := min(len(result.MatchedKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MatchedKeywords[i]))
		}
		if len(result.MatchedKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MatchedKeywords)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	if len(result.MissingKeywords) > 0 {
		sb.WriteString("Missing Keywords:\n")
		count := min(len(result.MissingKeywords), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", result.MissingKeywords[i]))
		}
		if len(result.MissingKeywords) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(result.MissingKeywords)-maxItemsToShow))
		}
		sb.WriteString("\n")
	}

	feedback := result.Feedback
	if len(feedback) > 50 {
		feedback = feedback[:47] + "..."
	}
	sb.WriteString(fmt.Sprintf("Feedback: %s", feedback))

	p.printBox("ATS SCORE", sb.String())
}

// PrintRoleProfile outputs the inferred role used for generic-mode scoring.
func (p *Printer) PrintRoleProfile(profile *types.RoleProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Role:        %s\n", profile.Role))
	sb.WriteString(fmt.Sprintf("Confidence:  %.2f\n", profile.Confidence))

	if len(profile.Skills) > 0 {
		sb.WriteString("\nMatched Skills:\n")
		count := min(len(profile.Skills), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", profile.Skills[i]))
		}
		if len(profile.Skills) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(profile.Skills)-maxItemsToShow))
		}
	}

	p.printBox("INFERRED ROLE", strings.TrimSuffix(sb.String(), "\n"))
}
