package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/devmirai/interview-agent/internal/gateway"
)

func sampleEvaluations() []gateway.Evaluation {
	return []gateway.Evaluation{
		{ID: 1, Clarity: 9, Technical: 8, Relevance: 7, TotalScore: 8, Percentage: 80},
		{ID: 2, Clarity: 6, Technical: 5, Relevance: 8, TotalScore: 6.3, Percentage: 63},
		{ID: 3, Clarity: 7, Technical: 9, Relevance: 9, TotalScore: 8.3, Percentage: 83},
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		percentage float64
		want       Band
	}{
		{95, BandExcellent},
		{80, BandExcellent},
		{79.9, BandGood},
		{60, BandGood},
		{59.9, BandNeedsWork},
		{0, BandNeedsWork},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Classify(tt.percentage), "percentage %.1f", tt.percentage)
	}
}

func TestTrend_PreservesOrder(t *testing.T) {
	points := Trend(sampleEvaluations())

	require.Len(t, points, 3)
	assert.Equal(t, TrendPoint{Label: "Q1", Score: 80}, points[0])
	assert.Equal(t, TrendPoint{Label: "Q2", Score: 63}, points[1])
	assert.Equal(t, TrendPoint{Label: "Q3", Score: 83}, points[2])
}

func TestProfile_AlignsWithTrendLabels(t *testing.T) {
	evals := sampleEvaluations()
	trend := Trend(evals)
	profile := Profile(evals)

	require.Equal(t, len(trend), len(profile))
	for i := range trend {
		assert.Equal(t, trend[i].Label, profile[i].Label)
	}
	assert.Equal(t, ProfilePoint{Label: "Q2", Clarity: 6, Technical: 5, Relevance: 8}, profile[1])
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleEvaluations())

	assert.Equal(t, 3, s.Answered)
	assert.InDelta(t, 75.333, s.AveragePercentage, 0.001)
	assert.InDelta(t, 7.333, s.AverageClarity, 0.001)
	assert.InDelta(t, 7.333, s.AverageTechnical, 0.001)
	assert.InDelta(t, 8.0, s.AverageRelevance, 0.001)
	assert.Equal(t, BandGood, s.Band)
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)
	assert.Zero(t, s.Answered)
	assert.Zero(t, s.AveragePercentage)
	assert.Equal(t, BandNeedsWork, s.Band)
}

func TestTransforms_DoNotMutateInput(t *testing.T) {
	evals := sampleEvaluations()
	want := sampleEvaluations()

	Trend(evals)
	Profile(evals)
	Summarize(evals)

	assert.Equal(t, want, evals)
}

func TestTransforms_Idempotent(t *testing.T) {
	evals := sampleEvaluations()
	assert.Equal(t, Trend(evals), Trend(evals))
	assert.Equal(t, Summarize(evals), Summarize(evals))
}
