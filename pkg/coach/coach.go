package coach

import (
	"context"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/helmcode/interview-coach/pkg/casestudy"
	"github.com/helmcode/interview-coach/pkg/model"
	"github.com/helmcode/interview-coach/pkg/parser"
	"github.com/helmcode/interview-coach/pkg/prompts"
	"github.com/helmcode/interview-coach/pkg/router"
)

// Coach routes coaching and case-evaluation requests to a provider and
// parses what comes back.
type Coach struct {
	router  *router.Router
	catalog *casestudy.Catalog
	logger  *logrus.Logger
}

func New(r *router.Router, catalog *casestudy.Catalog, logger *logrus.Logger) *Coach {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Coach{router: r, catalog: catalog, logger: logger}
}

// FeedbackResult is a parsed coaching response plus provenance.
type FeedbackResult struct {
	Feedback  model.StructuredFeedback `json:"feedback" yaml:"feedback"`
	Raw       string                   `json:"rawFeedback" yaml:"rawFeedback"`
	ModelUsed model.Provider           `json:"modelUsed" yaml:"modelUsed"`
	Reason    string                   `json:"reasonForSelection" yaml:"reasonForSelection"`
	Attempts  int                      `json:"-" yaml:"-"`
}

// Feedback coaches a single interview answer.
func (c *Coach) Feedback(ctx context.Context, req model.CoachingRequest) (*FeedbackResult, error) {
	prompt := router.Prompt{
		System: prompts.CoachingSystemPrompt(req.CareerTrack, req.InterviewType),
		User:   prompts.CoachingUserPrompt(req.Question, req.Transcript),
	}

	res, err := c.router.Route(ctx, req, prompt)
	if err != nil {
		return nil, fmt.Errorf("interview feedback: %w", err)
	}

	fb := parser.ParseFeedback(res.Raw)
	c.logger.WithFields(logrus.Fields{
		"provider":  res.Provider,
		"attempts":  res.Attempts,
		"score":     fb.Score,
		"strengths": len(fb.Strengths),
	}).Info("Feedback generated")

	return &FeedbackResult{
		Feedback:  fb,
		Raw:       res.Raw,
		ModelUsed: res.Provider,
		Reason:    res.Reason,
		Attempts:  res.Attempts,
	}, nil
}

// CaseInput is a candidate's solution to a case study. CaseStudy takes
// precedence over CaseStudyID when both are set.
type CaseInput struct {
	UserSolution  string
	CaseStudyID   string
	CaseStudy     *model.CaseStudy
	DetailLevel   model.DetailLevel
	ExplicitModel *model.Provider
	AttemptCount  int
}

// Evaluation is the case-evaluation payload.
type Evaluation struct {
	Raw         string                     `json:"rawEvaluation" yaml:"rawEvaluation"`
	Structured  model.StructuredEvaluation `json:"structuredEvaluation" yaml:"structuredEvaluation"`
	DetailLevel model.DetailLevel          `json:"detailLevel" yaml:"detailLevel"`
	CaseStudyID string                     `json:"caseStudyId,omitempty" yaml:"caseStudyId,omitempty"`
}

type EvaluationResult struct {
	Evaluation Evaluation     `json:"evaluation" yaml:"evaluation"`
	ModelUsed  model.Provider `json:"modelUsed" yaml:"modelUsed"`
	Reason     string         `json:"reasonForSelection" yaml:"reasonForSelection"`
	Attempts   int            `json:"-" yaml:"-"`
}

// EvaluateCase grades a case solution. Cases are always routed as
// consulting case interviews.
func (c *Coach) EvaluateCase(ctx context.Context, in CaseInput) (*EvaluationResult, error) {
	if strings.TrimSpace(in.UserSolution) == "" {
		return nil, &router.InputError{Field: "userSolution", Message: "userSolution is required"}
	}

	cs, err := c.resolveCase(in)
	if err != nil {
		return nil, err
	}

	level := in.DetailLevel
	if level == "" {
		level = model.DetailStandard
	}

	question := cs.Prompt
	if strings.TrimSpace(question) == "" {
		question = cs.Title
	}
	req := model.CoachingRequest{
		Transcript:    in.UserSolution,
		Question:      question,
		CareerTrack:   model.TrackConsulting,
		InterviewType: model.InterviewCase,
		ExplicitModel: in.ExplicitModel,
		AttemptCount:  in.AttemptCount,
	}
	prompt := router.Prompt{
		System: prompts.CaseEvaluationSystemPrompt(level),
		User:   prompts.CaseEvaluationUserPrompt(cs, in.UserSolution),
	}

	res, err := c.router.Route(ctx, req, prompt)
	if err != nil {
		return nil, fmt.Errorf("case evaluation: %w", err)
	}

	ev := parser.ParseEvaluation(res.Raw)
	c.logger.WithFields(logrus.Fields{
		"provider":     res.Provider,
		"attempts":     res.Attempts,
		"case_study":   cs.ID,
		"detail_level": level,
		"score":        ev.OverallScore,
	}).Info("Case solution evaluated")

	return &EvaluationResult{
		Evaluation: Evaluation{
			Raw:         res.Raw,
			Structured:  ev,
			DetailLevel: level,
			CaseStudyID: cs.ID,
		},
		ModelUsed: res.Provider,
		Reason:    res.Reason,
		Attempts:  res.Attempts,
	}, nil
}

func (c *Coach) resolveCase(in CaseInput) (model.CaseStudy, error) {
	if in.CaseStudy != nil {
		cs := *in.CaseStudy
		if strings.TrimSpace(cs.Prompt) == "" && strings.TrimSpace(cs.Title) == "" {
			return model.CaseStudy{}, &router.InputError{Field: "caseStudyData", Message: "caseStudyData needs a prompt or a title"}
		}
		return cs, nil
	}

	id := strings.TrimSpace(in.CaseStudyID)
	if id == "" {
		return model.CaseStudy{}, &router.InputError{Field: "caseStudyId", Message: "caseStudyId or caseStudyData is required"}
	}
	if c.catalog == nil {
		return model.CaseStudy{}, &router.InputError{Field: "caseStudyId", Message: fmt.Sprintf("unknown case study %q", id)}
	}
	cs, ok := c.catalog.Get(id)
	if !ok {
		return model.CaseStudy{}, &router.InputError{Field: "caseStudyId", Message: fmt.Sprintf("unknown case study %q", id)}
	}
	return cs, nil
}

// CaseStudies lists the catalog.
func (c *Coach) CaseStudies() []casestudy.Summary {
	if c.catalog == nil {
		return []casestudy.Summary{}
	}
	return c.catalog.List()
}
