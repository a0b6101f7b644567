package model

import "strings"

// DetailLevel controls how much the case evaluation prompt asks for.
type DetailLevel string

const (
	DetailBasic    DetailLevel = "basic"
	DetailStandard DetailLevel = "standard"
	DetailDetailed DetailLevel = "detailed"
)

func ParseDetailLevel(raw string) DetailLevel {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "basic":
		return DetailBasic
	case "detailed":
		return DetailDetailed
	default:
		return DetailStandard
	}
}

// CaseStudy is a consulting-style business case a candidate solves.
type CaseStudy struct {
	ID           string            `json:"id" yaml:"id"`
	Title        string            `json:"title" yaml:"title"`
	Industry     string            `json:"industry,omitempty" yaml:"industry,omitempty"`
	Difficulty   string            `json:"difficulty,omitempty" yaml:"difficulty,omitempty"`
	Prompt       string            `json:"prompt" yaml:"prompt"`
	Context      string            `json:"context,omitempty" yaml:"context,omitempty"`
	KeyQuestions []string          `json:"keyQuestions,omitempty" yaml:"keyQuestions,omitempty"`
	Data         map[string]string `json:"data,omitempty" yaml:"data,omitempty"`
}

// StructuredEvaluation is the parsed form of a case-solution evaluation.
// Fields the prompt did not ask for at a given detail level carry defaults.
type StructuredEvaluation struct {
	OverallScore        int            `json:"overallScore" yaml:"overallScore"`
	Summary             string         `json:"summary" yaml:"summary"`
	Strengths           []string       `json:"strengths" yaml:"strengths"`
	Improvements        []string       `json:"improvements" yaml:"improvements"`
	ScoreBreakdown      map[string]int `json:"scoreBreakdown" yaml:"scoreBreakdown"`
	RecommendedApproach string         `json:"recommendedApproach" yaml:"recommendedApproach"`
	NextSteps           string         `json:"nextSteps" yaml:"nextSteps"`
}
