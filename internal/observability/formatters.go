// Package observability provides formatted output utilities for the CLI.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/devmirai/interview-agent/internal/gateway"
	"github.com/devmirai/interview-agent/internal/results"
	"github.com/devmirai/interview-agent/internal/session"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output
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

// PrintSession outputs a summary of the loaded interview session.
func (p *Printer) PrintSession(s *gateway.Session) {
	if s == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Session:  #%d\n", s.ID))
	sb.WriteString(fmt.Sprintf("Status:   %s\n", s.Status))
	if s.Posting != nil {
		sb.WriteString(fmt.Sprintf("Position: %s\n", s.Posting.Title))
		sb.WriteString(fmt.Sprintf("Role:     %s\n", s.Posting.Role))
		sb.WriteString(fmt.Sprintf("Company:  %s", s.Posting.Company.Name))
	} else {
		sb.WriteString("Position: (no posting attached)")
	}

	p.printBox("INTERVIEW SESSION", sb.String())
}

// PrintQuestion outputs the current question with its position and the time
// remaining on the clock.
func (p *Printer) PrintQuestion(q gateway.Question, index, total, remaining int) {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Time remaining: %s\n\n", session.FormatClock(remaining)))

	// Wrap the question text to the box width.
	for _, line := range wrap(q.Text, boxWidth-6) {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	if q.Type != "" {
		sb.WriteString(fmt.Sprintf("\nType: %s", q.Type))
	}

	p.printBox(fmt.Sprintf("QUESTION %d OF %d", index+1, total), strings.TrimSuffix(sb.String(), "\n"))
}

// PrintPostings outputs the open postings list.
func (p *Printer) PrintPostings(postings []gateway.Posting) {
	if len(postings) == 0 {
		p.printBox("OPEN POSITIONS", "No open positions right now.")
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d open positions:\n\n", len(postings)))

	count := min(len(postings), maxItemsToShow)
	for i := 0; i < count; i++ {
		posting := postings[i]
		sb.WriteString(fmt.Sprintf("#%d  %s\n", posting.ID, posting.Title))
		sb.WriteString(fmt.Sprintf("    %s", posting.Company.Name))
		if posting.Role != "" {
			sb.WriteString(fmt.Sprintf(" · %s", posting.Role))
		}
		sb.WriteString("\n")
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(postings) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more positions", len(postings)-maxItemsToShow))
	}

	p.printBox("OPEN POSITIONS", sb.String())
}

// PrintResults outputs the aggregated interview results: the overall summary,
// the per-question trend, and the evaluator's feedback.
func (p *Printer) PrintResults(evaluations []gateway.Evaluation) {
	if len(evaluations) == 0 {
		p.printBox("INTERVIEW RESULTS", "No evaluations available yet.")
		return
	}

	summary := results.Summarize(evaluations)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Overall:   %.1f%%  (%s)\n", summary.AveragePercentage, summary.Band))
	sb.WriteString(fmt.Sprintf("Answered:  %d questions\n\n", summary.Answered))
	sb.WriteString(fmt.Sprintf("Clarity:    %.1f / 10\n", summary.AverageClarity))
	sb.WriteString(fmt.Sprintf("Technical:  %.1f / 10\n", summary.AverageTechnical))
	sb.WriteString(fmt.Sprintf("Relevance:  %.1f / 10\n\n", summary.AverageRelevance))

	trend := results.Trend(evaluations)
	profile := results.Profile(evaluations)
	sb.WriteString("Per question:\n")
	for i := range trend {
		sb.WriteString(fmt.Sprintf("  %s  %5.1f%%  %s  C:%.0f T:%.0f R:%.0f\n",
			trend[i].Label, trend[i].Score, bar(trend[i].Score),
			profile[i].Clarity, profile[i].Technical, profile[i].Relevance))
	}

	p.printBox("INTERVIEW RESULTS", strings.TrimSuffix(sb.String(), "\n"))

	p.printFeedback(evaluations)
}

//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printFeedback(evaluations []gateway.Evaluation) {
	var sb strings.Builder
	wrote := false
	for i, e := range evaluations {
		if strings.TrimSpace(e.Feedback) == "" {
			continue
		}
		if wrote {
			sb.WriteString("\n")
		}
		sb.WriteString(fmt.Sprintf("Q%d:\n", i+1))
		for _, line := range wrap(e.Feedback, boxWidth-6) {
			sb.WriteString("  " + line + "\n")
		}
		wrote = true
	}
	if !wrote {
		return
	}
	p.printBox("FEEDBACK", strings.TrimSuffix(sb.String(), "\n"))
}

// bar renders a 0-100 score as a ten-cell gauge.
func bar(score float64) string {
	filled := int(score / 10)
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

// wrap splits text into lines of at most width characters, breaking on
// spaces.
func wrap(text string, width int) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]
	for _, word := range words[1:] {
		if len(line)+1+len(word) > width {
			lines = append(lines, line)
			line = word
			continue
		}
		line += " " + word
	}
	return append(lines, line)
}
