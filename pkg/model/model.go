package model

import "strings"

// Provider identifies one of the two text-generation backends.
type Provider string

const (
	ProviderClaude Provider = "claude"
	ProviderOpenAI Provider = "openai"

	// PrimaryLLM is the default, cost-effective provider.
	PrimaryLLM = ProviderClaude
	// SecondaryLLM is preferred when a detailed explanation is needed.
	SecondaryLLM = ProviderOpenAI
)

// Other returns the alternate provider used for fallback.
func (p Provider) Other() Provider {
	if p == ProviderOpenAI {
		return ProviderClaude
	}
	return ProviderOpenAI
}

// ParseProvider maps a request-supplied model name onto a Provider.
func ParseProvider(raw string) (Provider, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "claude", "anthropic":
		return ProviderClaude, true
	case "openai", "gpt", "gpt-4", "gpt4", "gpt-4o":
		return ProviderOpenAI, true
	default:
		return "", false
	}
}

type CareerTrack string

const (
	TrackConsulting        CareerTrack = "consulting"
	TrackInvestmentBanking CareerTrack = "investment-banking"
	TrackTech              CareerTrack = "tech"
	TrackGeneral           CareerTrack = "general"
)

// ParseCareerTrack normalizes a track name, defaulting to general.
func ParseCareerTrack(raw string) CareerTrack {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "consulting":
		return TrackConsulting
	case "investment-banking", "investment_banking", "investment banking", "ib", "banking":
		return TrackInvestmentBanking
	case "tech", "technology", "software":
		return TrackTech
	default:
		return TrackGeneral
	}
}

type InterviewType string

const (
	InterviewTechnical  InterviewType = "technical"
	InterviewBehavioral InterviewType = "behavioral"
	InterviewCase       InterviewType = "case"
	InterviewFinancial  InterviewType = "financial"
	InterviewGeneral    InterviewType = "general"
)

// ParseInterviewType normalizes an interview type, defaulting to general.
func ParseInterviewType(raw string) InterviewType {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "technical":
		return InterviewTechnical
	case "behavioral", "behavioural":
		return InterviewBehavioral
	case "case", "case-study", "case_study":
		return InterviewCase
	case "financial", "finance":
		return InterviewFinancial
	default:
		return InterviewGeneral
	}
}

// CoachingRequest is one question/answer pair awaiting feedback.
// Treat it as a value: a fallback attempt is a copy with AttemptCount+1.
type CoachingRequest struct {
	Transcript    string
	Question      string
	CareerTrack   CareerTrack
	InterviewType InterviewType
	ExplicitModel *Provider
	AttemptCount  int
}

// WithNextAttempt returns a copy of r with the attempt counter advanced.
func (r CoachingRequest) WithNextAttempt() CoachingRequest {
	next := r
	next.AttemptCount = r.AttemptCount + 1
	return next
}

// StructuredFeedback is the parsed form of a provider's free-text feedback.
// Collections are never nil so that they serialize as [] and {}.
type StructuredFeedback struct {
	Score          int            `json:"score" yaml:"score"`
	Strengths      []string       `json:"strengths" yaml:"strengths"`
	Improvements   []string       `json:"improvements" yaml:"improvements"`
	Example        string         `json:"example" yaml:"example"`
	ScoreBreakdown map[string]int `json:"scoreBreakdown" yaml:"scoreBreakdown"`
	NextSteps      string         `json:"nextSteps" yaml:"nextSteps"`
}
