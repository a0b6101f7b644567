package router

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/helmcode/interview-coach/pkg/model"
)

func TestSelect(t *testing.T) {
	tests := []struct {
		name       string
		req        model.CoachingRequest
		want       model.Provider
		reasonPart string
	}{
		{
			name: "behavioral answer with no triggers",
			req: model.CoachingRequest{
				Transcript:    "I led a team of 5 to redesign our onboarding flow, reducing churn by 12%.",
				Question:      "Tell me about a time you led a project.",
				CareerTrack:   model.TrackGeneral,
				InterviewType: model.InterviewBehavioral,
			},
			want:       model.PrimaryLLM,
			reasonPart: "cost-effective",
		},
		{
			name: "consulting case uses structured reasoning",
			req: model.CoachingRequest{
				Transcript:    "Revenue fell because volume dropped in the north region.",
				Question:      "Why are profits down?",
				CareerTrack:   model.TrackConsulting,
				InterviewType: model.InterviewCase,
			},
			want:       model.PrimaryLLM,
			reasonPart: "structured reasoning",
		},
		{
			name: "consulting case with complexity keywords still uses structured reasoning",
			req: model.CoachingRequest{
				Transcript:    "I would start with a profitability framework and then do market sizing.",
				Question:      "How would you approach this merger?",
				CareerTrack:   model.TrackConsulting,
				InterviewType: model.InterviewCase,
			},
			want:       model.PrimaryLLM,
			reasonPart: "structured reasoning",
		},
		{
			name: "consulting case with uncertainty goes to secondary",
			req: model.CoachingRequest{
				Transcript:    "I'm not sure where to start with this one.",
				Question:      "Estimate the market for electric scooters.",
				CareerTrack:   model.TrackConsulting,
				InterviewType: model.InterviewCase,
			},
			want:       model.SecondaryLLM,
			reasonPart: "detailed explanation",
		},
		{
			name: "two complexity keywords",
			req: model.CoachingRequest{
				Transcript:    "I'd shard the data and cache reads to cut latency.",
				Question:      "Walk me through the architecture of a URL shortener.",
				CareerTrack:   model.TrackTech,
				InterviewType: model.InterviewTechnical,
			},
			want:       model.SecondaryLLM,
			reasonPart: "question is complex",
		},
		{
			name: "single complexity keyword is not enough",
			req: model.CoachingRequest{
				Transcript:    "I used a simple framework to decide.",
				Question:      "How do you prioritise?",
				InterviewType: model.InterviewBehavioral,
			},
			want: model.PrimaryLLM,
		},
		{
			name: "uncertainty in the question alone does not count",
			req: model.CoachingRequest{
				Transcript: "We shipped on time.",
				Question:   "Can you help me understand what you did?",
			},
			want: model.PrimaryLLM,
		},
		{
			name: "keywords are case insensitive",
			req: model.CoachingRequest{
				Transcript: "Honestly I am CONFUSED by this.",
				Question:   "Describe a DCF.",
			},
			want:       model.SecondaryLLM,
			reasonPart: "needs a detailed explanation",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := Select(tt.req)
			assert.Equal(t, tt.want, sel.Provider)
			if tt.reasonPart != "" {
				assert.Contains(t, sel.Reason, tt.reasonPart)
			}
		})
	}
}

func TestSelectLongTranscriptIsComplex(t *testing.T) {
	req := model.CoachingRequest{
		Transcript:    strings.Repeat("a", 500),
		Question:      "Tell me about yourself.",
		CareerTrack:   model.TrackGeneral,
		InterviewType: model.InterviewGeneral,
	}

	sel := Select(req)
	assert.True(t, sel.Signals.IsComplexQuestion)
	assert.Zero(t, sel.Signals.ComplexityMatches)
	assert.Zero(t, sel.Signals.UncertaintyMatches)
	assert.Equal(t, model.SecondaryLLM, sel.Provider)

	req.CareerTrack = model.TrackConsulting
	req.InterviewType = model.InterviewCase
	assert.Equal(t, model.PrimaryLLM, Select(req).Provider)

	req.Transcript = strings.Repeat("a", 499)
	req.CareerTrack = model.TrackGeneral
	assert.False(t, Select(req).Signals.IsComplexQuestion)
}

func TestSelectBriefTranscriptThreshold(t *testing.T) {
	req := model.CoachingRequest{
		Transcript: "Yes.",
		Question:   "Did you finish the project?",
	}

	assert.Equal(t, model.PrimaryLLM, Select(req).Provider)

	h := DefaultHeuristics()
	h.BriefTranscriptChars = 150
	sel := h.Select(req)
	assert.True(t, sel.Signals.NeedsDetailedExplanation)
	assert.Equal(t, model.SecondaryLLM, sel.Provider)
}

func TestSelectIsDeterministic(t *testing.T) {
	req := model.CoachingRequest{
		Transcript:    "I am not sure how to value this company with a DCF or an LBO.",
		Question:      "How would you value a target?",
		CareerTrack:   model.TrackInvestmentBanking,
		InterviewType: model.InterviewFinancial,
	}

	first := Select(req)
	for i := 0; i < 20; i++ {
		assert.Equal(t, first, Select(req))
	}
}

func TestSelectCountsCharactersNotBytes(t *testing.T) {
	req := model.CoachingRequest{
		Transcript:    strings.Repeat("é", 260),
		Question:      "Tell me about yourself.",
		CareerTrack:   model.TrackGeneral,
		InterviewType: model.InterviewBehavioral,
	}
	require.Equal(t, 520, len(req.Transcript))

	sel := Select(req)
	assert.False(t, sel.Signals.IsComplexQuestion)
	assert.Equal(t, model.PrimaryLLM, sel.Provider)

	req.Transcript = strings.Repeat("日本", 250)
	assert.True(t, Select(req).Signals.IsComplexQuestion)

	h := DefaultHeuristics()
	h.BriefTranscriptChars = 150
	req.Transcript = strings.Repeat("ü", 100)
	assert.True(t, h.Select(req).Signals.NeedsDetailedExplanation)
	req.Transcript = strings.Repeat("ü", 150)
	assert.False(t, h.Select(req).Signals.NeedsDetailedExplanation)
}
