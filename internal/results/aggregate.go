// Package results turns an ordered evaluation list into the series and
// summary figures the results view renders. All transforms are pure: the
// input slice is never mutated and repeated calls yield identical output.
package results

import (
	"fmt"

	"github.com/devmirai/interview-agent/internal/gateway"
)

// Band classifies an overall percentage into the coarse feedback tiers shown
// alongside the score.
type Band string

const (
	BandExcellent Band = "excellent"
	BandGood      Band = "good"
	BandNeedsWork Band = "needs work"

	excellentThreshold = 80.0
	goodThreshold      = 60.0
)

// Classify maps a 0-100 percentage onto its band.
func Classify(percentage float64) Band {
	switch {
	case percentage >= excellentThreshold:
		return BandExcellent
	case percentage >= goodThreshold:
		return BandGood
	default:
		return BandNeedsWork
	}
}

// TrendPoint is one question's overall score in the performance-over-time
// series.
type TrendPoint struct {
	Label string
	Score float64
}

// ProfilePoint is one question's per-axis breakdown.
type ProfilePoint struct {
	Label     string
	Clarity   float64
	Technical float64
	Relevance float64
}

// Summary aggregates a whole session's evaluations.
type Summary struct {
	Answered          int
	AveragePercentage float64
	AverageClarity    float64
	AverageTechnical  float64
	AverageRelevance  float64
	Band              Band
}

// Trend builds the per-question score series. Labels follow the original
// question order: Q1, Q2, and so on.
func Trend(evaluations []gateway.Evaluation) []TrendPoint {
	points := make([]TrendPoint, len(evaluations))
	for i, e := range evaluations {
		points[i] = TrendPoint{
			Label: questionLabel(i),
			Score: e.Percentage,
		}
	}
	return points
}

// Profile builds the per-question axis breakdown, aligned with Trend by
// label.
func Profile(evaluations []gateway.Evaluation) []ProfilePoint {
	points := make([]ProfilePoint, len(evaluations))
	for i, e := range evaluations {
		points[i] = ProfilePoint{
			Label:     questionLabel(i),
			Clarity:   e.Clarity,
			Technical: e.Technical,
			Relevance: e.Relevance,
		}
	}
	return points
}

// Summarize computes session-level averages and the feedback band. A session
// with no evaluations summarizes to zeroes in the lowest band.
func Summarize(evaluations []gateway.Evaluation) Summary {
	if len(evaluations) == 0 {
		return Summary{Band: BandNeedsWork}
	}

	var s Summary
	s.Answered = len(evaluations)
	for _, e := range evaluations {
		s.AveragePercentage += e.Percentage
		s.AverageClarity += e.Clarity
		s.AverageTechnical += e.Technical
		s.AverageRelevance += e.Relevance
	}
	n := float64(s.Answered)
	s.AveragePercentage /= n
	s.AverageClarity /= n
	s.AverageTechnical /= n
	s.AverageRelevance /= n
	s.Band = Classify(s.AveragePercentage)
	return s
}

func questionLabel(index int) string {
	return fmt.Sprintf("Q%d", index+1)
}
