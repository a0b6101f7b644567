package server

import (
	"github.com/helmcode/interview-coach/pkg/casestudy"
	"github.com/helmcode/interview-coach/pkg/coach"
	"github.com/helmcode/interview-coach/pkg/model"
)

// FeedbackRequest is the body of POST /api/interview-feedback.
type FeedbackRequest struct {
	Transcript       string `json:"transcript"`
	Question         string `json:"question"`
	CareerTrack      string `json:"careerTrack"`
	InterviewType    string `json:"interviewType"`
	Model            string `json:"model"`
	IsFallback       bool   `json:"isFallback"`
	PreviousAttempts int    `json:"previousAttempts"`
}

// FeedbackResponse is the success envelope for interview feedback.
type FeedbackResponse struct {
	Success            bool                     `json:"success"`
	Feedback           model.StructuredFeedback `json:"feedback"`
	RawFeedback        string                   `json:"rawFeedback"`
	ModelUsed          model.Provider           `json:"modelUsed"`
	ReasonForSelection string                   `json:"reasonForSelection"`
}

// EvaluateCaseRequest is the body of POST /api/evaluate-case-solution.
type EvaluateCaseRequest struct {
	UserSolution     string           `json:"userSolution"`
	CaseStudyID      string           `json:"caseStudyId"`
	CaseStudyData    *model.CaseStudy `json:"caseStudyData"`
	DetailLevel      string           `json:"detailLevel"`
	Model            string           `json:"model"`
	IsFallback       bool             `json:"isFallback"`
	PreviousAttempts int              `json:"previousAttempts"`
}

type EvaluateCaseResponse struct {
	Success            bool             `json:"success"`
	Evaluation         coach.Evaluation `json:"evaluation"`
	ModelUsed          model.Provider   `json:"modelUsed"`
	ReasonForSelection string           `json:"reasonForSelection"`
}

type CaseStudiesResponse struct {
	Success     bool                `json:"success"`
	CaseStudies []casestudy.Summary `json:"caseStudies"`
}

type HealthResponse struct {
	Status    string           `json:"status"`
	Version   string           `json:"version"`
	Providers []model.Provider `json:"providers"`
}

// ErrorResponse is the failure envelope. Every failure uses it with HTTP 500.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
