package formatter

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/helmcode/interview-coach/pkg/casestudy"
	"github.com/helmcode/interview-coach/pkg/coach"
	"github.com/helmcode/interview-coach/pkg/model"
)

func init() {
	color.NoColor = true
}

func sampleFeedback() *coach.FeedbackResult {
	return &coach.FeedbackResult{
		Feedback: model.StructuredFeedback{
			Score:          82,
			Strengths:      []string{"Clear answer"},
			Improvements:   []string{"More detail on your role"},
			Example:        "I owned the roadmap.",
			ScoreBreakdown: map[string]int{"Structure": 80, "Content": 85},
			NextSteps:      "Practice two more stories.",
		},
		Raw:       "raw text",
		ModelUsed: model.ProviderClaude,
		Reason:    "Standard question",
	}
}

func TestDisplayFeedbackHuman(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayFeedback(&buf, sampleFeedback(), "human", false))

	out := buf.String()
	assert.Contains(t, out, "OVERALL SCORE: 82/100")
	assert.Contains(t, out, "1. Clear answer")
	assert.Contains(t, out, "I owned the roadmap.")
	assert.Contains(t, out, "Standard question")
	assert.Less(t, bytes.Index(buf.Bytes(), []byte("Content")), bytes.Index(buf.Bytes(), []byte("Structure")))
	assert.NotContains(t, out, "RAW RESPONSE")
}

func TestDisplayFeedbackVerboseShowsRaw(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayFeedback(&buf, sampleFeedback(), "human", true))
	assert.Contains(t, buf.String(), "RAW RESPONSE")
	assert.Contains(t, buf.String(), "raw text")
}

func TestDisplayFeedbackJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, DisplayFeedback(&buf, sampleFeedback(), "json", false))

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "claude", out["modelUsed"])
	assert.Equal(t, "raw text", out["rawFeedback"])
	assert.NotContains(t, out, "Attempts")
}

func TestDisplayEvaluationYAML(t *testing.T) {
	res := &coach.EvaluationResult{
		Evaluation: coach.Evaluation{
			Raw:         "raw",
			Structured:  model.StructuredEvaluation{OverallScore: 64, Strengths: []string{}, Improvements: []string{}, ScoreBreakdown: map[string]int{}},
			DetailLevel: model.DetailBasic,
			CaseStudyID: "coffee-chain-profitability",
		},
		ModelUsed: model.ProviderOpenAI,
	}

	var buf bytes.Buffer
	require.NoError(t, DisplayEvaluation(&buf, res, "yaml", false))

	var out struct {
		Evaluation struct {
			CaseStudyID string `yaml:"caseStudyId"`
			Structured  struct {
				OverallScore int `yaml:"overallScore"`
			} `yaml:"structuredEvaluation"`
		} `yaml:"evaluation"`
		ModelUsed string `yaml:"modelUsed"`
	}
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, "coffee-chain-profitability", out.Evaluation.CaseStudyID)
	assert.Equal(t, 64, out.Evaluation.Structured.OverallScore)
	assert.Equal(t, "openai", out.ModelUsed)
}

func TestDisplayEvaluationHumanDetailed(t *testing.T) {
	res := &coach.EvaluationResult{
		Evaluation: coach.Evaluation{
			Structured: model.StructuredEvaluation{
				OverallScore:        71,
				Summary:             "Solid.",
				RecommendedApproach: "Start with a profit tree.",
				NextSteps:           "Drill more cases.",
			},
			DetailLevel: model.DetailDetailed,
		},
		ModelUsed: model.ProviderClaude,
	}

	var buf bytes.Buffer
	require.NoError(t, DisplayEvaluation(&buf, res, "human", false))
	assert.Contains(t, buf.String(), "RECOMMENDED APPROACH")
	assert.Contains(t, buf.String(), "Start with a profit tree.")
}

func TestDisplayCaseStudies(t *testing.T) {
	cases := []casestudy.Summary{{ID: "a", Title: "Alpha", Industry: "Retail", Difficulty: "beginner"}}

	var buf bytes.Buffer
	require.NoError(t, DisplayCaseStudies(&buf, cases, "human"))
	assert.Contains(t, buf.String(), "Alpha (Retail)")
}

func TestWrapText(t *testing.T) {
	got := wrapText("one two three four", 10, "  ")
	assert.Equal(t, "  one two\n  three\n  four", got)
}

func TestScoreBar(t *testing.T) {
	assert.Equal(t, "██████░░░░", scoreBar(64))
	assert.Equal(t, "██████████", scoreBar(100))
	assert.Equal(t, "░░░░░░░░░░", scoreBar(0))
}
