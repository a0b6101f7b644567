package server

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/helmcode/interview-coach/pkg/coach"
	"github.com/helmcode/interview-coach/pkg/config"
	"github.com/helmcode/interview-coach/pkg/llm"
	"github.com/helmcode/interview-coach/pkg/model"
	"github.com/helmcode/interview-coach/pkg/router"
)

// InterviewFeedback handles POST /api/interview-feedback.
func (s *Server) InterviewFeedback(c *gin.Context) {
	var req FeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	creq, err := toCoachingRequest(req)
	if err != nil {
		s.fail(c, err)
		return
	}

	res, err := s.coach.Feedback(c.Request.Context(), creq)
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, FeedbackResponse{
		Success:            true,
		Feedback:           res.Feedback,
		RawFeedback:        res.Raw,
		ModelUsed:          res.ModelUsed,
		ReasonForSelection: res.Reason,
	})
}

// EvaluateCaseSolution handles POST /api/evaluate-case-solution.
func (s *Server) EvaluateCaseSolution(c *gin.Context) {
	var req EvaluateCaseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		s.fail(c, fmt.Errorf("invalid request body: %w", err))
		return
	}

	explicit, err := parseModel(req.Model)
	if err != nil {
		s.fail(c, err)
		return
	}

	res, err := s.coach.EvaluateCase(c.Request.Context(), coach.CaseInput{
		UserSolution:  req.UserSolution,
		CaseStudyID:   req.CaseStudyID,
		CaseStudy:     req.CaseStudyData,
		DetailLevel:   model.ParseDetailLevel(req.DetailLevel),
		ExplicitModel: explicit,
		AttemptCount:  attemptCount(req.IsFallback, req.PreviousAttempts),
	})
	if err != nil {
		s.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, EvaluateCaseResponse{
		Success:            true,
		Evaluation:         res.Evaluation,
		ModelUsed:          res.ModelUsed,
		ReasonForSelection: res.Reason,
	})
}

// CaseStudies handles GET /api/case-studies.
func (s *Server) CaseStudies(c *gin.Context) {
	c.JSON(http.StatusOK, CaseStudiesResponse{Success: true, CaseStudies: s.coach.CaseStudies()})
}

// Health handles GET /health.
func (s *Server) Health(c *gin.Context) {
	providers := s.providers
	if providers == nil {
		providers = []model.Provider{}
	}
	c.JSON(http.StatusOK, HealthResponse{Status: "healthy", Version: s.version, Providers: providers})
}

func (s *Server) fail(c *gin.Context, err error) {
	entry := s.logger.WithFields(logrus.Fields{
		"request_id": c.GetString(requestIDKey),
		"kind":       errorKind(err),
	}).WithError(err)
	entry.Error("Request failed")

	c.JSON(http.StatusInternalServerError, ErrorResponse{Success: false, Error: err.Error()})
}

func errorKind(err error) string {
	var (
		ierr *router.InputError
		cerr *config.ConfigError
		perr *llm.ProviderError
	)
	switch {
	case errors.As(err, &ierr):
		return "input"
	case errors.As(err, &cerr):
		return "configuration"
	case errors.As(err, &perr):
		return "provider"
	default:
		return "internal"
	}
}

func toCoachingRequest(req FeedbackRequest) (model.CoachingRequest, error) {
	explicit, err := parseModel(req.Model)
	if err != nil {
		return model.CoachingRequest{}, err
	}
	return model.CoachingRequest{
		Transcript:    req.Transcript,
		Question:      req.Question,
		CareerTrack:   model.ParseCareerTrack(req.CareerTrack),
		InterviewType: model.ParseInterviewType(req.InterviewType),
		ExplicitModel: explicit,
		AttemptCount:  attemptCount(req.IsFallback, req.PreviousAttempts),
	}, nil
}

func parseModel(raw string) (*model.Provider, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	p, ok := model.ParseProvider(raw)
	if !ok {
		return nil, &router.InputError{Field: "model", Message: fmt.Sprintf("unsupported model %q (supported: claude, openai)", raw)}
	}
	return &p, nil
}

// attemptCount reconciles the two client-side fallback hints into a single
// counter. A fallback flag always means at least one prior attempt.
func attemptCount(isFallback bool, previous int) int {
	n := previous
	if n < 0 {
		n = 0
	}
	if isFallback && n < 1 {
		n = 1
	}
	return n
}
