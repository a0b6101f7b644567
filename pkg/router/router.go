package router

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/helmcode/interview-coach/pkg/config"
	"github.com/helmcode/interview-coach/pkg/llm"
	"github.com/helmcode/interview-coach/pkg/model"
)

// State is a step in the life of one routed request.
type State string

const (
	StateNotStarted       State = "NotStarted"
	StateAwaitingPrimary  State = "AwaitingPrimary"
	StateAwaitingFallback State = "AwaitingFallback"
	StateSucceeded        State = "Succeeded"
	StateFailed           State = "Failed"
)

// InputError is a caller mistake caught before any provider is contacted.
type InputError struct {
	Field   string
	Message string
}

func (e *InputError) Error() string {
	return e.Message
}

// ClientSource hands out provider clients. *llm.Factory satisfies it.
type ClientSource interface {
	CreateLLM(provider model.Provider) (llm.LLM, error)
}

// Clients is a fixed set of provider clients.
type Clients map[model.Provider]llm.LLM

func (c Clients) CreateLLM(provider model.Provider) (llm.LLM, error) {
	if l, ok := c[provider]; ok {
		return l, nil
	}
	return nil, &config.ConfigError{Field: string(provider), Message: fmt.Sprintf("no client configured for %s", provider)}
}

// Prompt is the text sent to whichever provider serves the request.
type Prompt struct {
	System string
	User   string
}

// Result is the raw output and the provider that actually produced it.
type Result struct {
	Raw      string
	Provider model.Provider
	Reason   string
	Attempts int
	Trace    []State
}

type Options struct {
	Heuristics Heuristics
	// Timeout bounds each provider call.
	Timeout time.Duration
	Logger  *logrus.Logger
}

// Router selects a provider, calls it, and retries once on the other
// provider when the first call fails.
type Router struct {
	clients    ClientSource
	heuristics Heuristics
	timeout    time.Duration
	logger     *logrus.Logger
}

func New(clients ClientSource, opts Options) *Router {
	r := &Router{
		clients:    clients,
		heuristics: opts.Heuristics,
		timeout:    opts.Timeout,
		logger:     opts.Logger,
	}
	if r.heuristics.ComplexTranscriptChars == 0 {
		r.heuristics.ComplexTranscriptChars = DefaultHeuristics().ComplexTranscriptChars
	}
	if r.timeout <= 0 {
		r.timeout = config.DefaultProviderTimeout
	}
	if r.logger == nil {
		r.logger = logrus.StandardLogger()
	}
	return r
}

// NewFromConfig wires a router to real provider clients.
func NewFromConfig(cfg *config.Config, logger *logrus.Logger) *Router {
	h := DefaultHeuristics()
	h.BriefTranscriptChars = cfg.BriefTranscriptChars
	return New(llm.NewFactory(cfg), Options{
		Heuristics: h,
		Timeout:    cfg.ProviderTimeout,
		Logger:     logger,
	})
}

// Validate rejects requests missing a transcript or question.
func Validate(req model.CoachingRequest) error {
	if strings.TrimSpace(req.Transcript) == "" {
		return &InputError{Field: "transcript", Message: "transcript is required"}
	}
	if strings.TrimSpace(req.Question) == "" {
		return &InputError{Field: "question", Message: "question is required"}
	}
	return nil
}

// Choose decides the first provider for req without calling anything.
func (r *Router) Choose(req model.CoachingRequest) Selection {
	switch {
	case req.ExplicitModel != nil && req.AttemptCount > 0:
		return Selection{Provider: *req.ExplicitModel, Reason: fmt.Sprintf("Fallback attempt on explicitly requested %s", *req.ExplicitModel)}
	case req.ExplicitModel != nil:
		return Selection{Provider: *req.ExplicitModel, Reason: fmt.Sprintf("Explicitly requested %s", *req.ExplicitModel)}
	case req.AttemptCount > 0:
		return Selection{Provider: model.PrimaryLLM, Reason: "Fallback attempt without a requested model: using Claude"}
	default:
		return r.heuristics.Select(req)
	}
}

// Route validates req, calls the chosen provider and, if that first call
// fails with a provider error, retries exactly once on the other provider.
// Requests that are already fallbacks (AttemptCount > 0) or that name an
// explicit provider are never retried. The returned Result carries the
// state trace even when err is non-nil.
func (r *Router) Route(ctx context.Context, req model.CoachingRequest, prompt Prompt) (*Result, error) {
	if err := Validate(req); err != nil {
		return nil, err
	}

	res := &Result{Trace: []State{StateNotStarted}}
	sel := r.Choose(req)
	res.Provider = sel.Provider
	res.Reason = sel.Reason

	if req.AttemptCount > 0 {
		res.Trace = append(res.Trace, StateAwaitingFallback)
	} else {
		res.Trace = append(res.Trace, StateAwaitingPrimary)
	}

	log := r.logger.WithFields(logrus.Fields{
		"provider":       sel.Provider,
		"attempt":        req.AttemptCount,
		"career_track":   req.CareerTrack,
		"interview_type": req.InterviewType,
	})
	log.WithField("reason", sel.Reason).Info("Routing coaching request")

	raw, err := r.invoke(ctx, sel.Provider, prompt)
	res.Attempts = 1
	if err == nil {
		res.Raw = raw
		res.Trace = append(res.Trace, StateSucceeded)
		return res, nil
	}

	if !r.canFallback(ctx, req, err) {
		log.WithError(err).Error("Provider call failed")
		res.Trace = append(res.Trace, StateFailed)
		return res, err
	}

	next := req.WithNextAttempt()
	fallback := sel.Provider.Other()
	log.WithError(err).WithFields(logrus.Fields{
		"fallback":         fallback,
		"fallback_attempt": next.AttemptCount,
	}).Warn("Provider call failed, falling back")
	res.Trace = append(res.Trace, StateAwaitingFallback)
	res.Provider = fallback
	res.Reason = fmt.Sprintf("Fallback to %s after %s failed (initial selection: %s)", fallback, sel.Provider, sel.Reason)

	fallbackLog := r.logger.WithFields(logrus.Fields{
		"provider":       fallback,
		"attempt":        next.AttemptCount,
		"career_track":   next.CareerTrack,
		"interview_type": next.InterviewType,
	})
	raw, ferr := r.invoke(ctx, fallback, prompt)
	res.Attempts = 2
	if ferr != nil {
		fallbackLog.WithError(ferr).Error("Fallback provider call failed")
		res.Trace = append(res.Trace, StateFailed)
		return res, fmt.Errorf("fallback to %s after %s failed: %w", fallback, sel.Provider, ferr)
	}

	fallbackLog.Info("Fallback provider call succeeded")
	res.Raw = raw
	res.Trace = append(res.Trace, StateSucceeded)
	return res, nil
}

func (r *Router) canFallback(ctx context.Context, req model.CoachingRequest, err error) bool {
	if req.ExplicitModel != nil || req.AttemptCount > 0 || ctx.Err() != nil {
		return false
	}
	var perr *llm.ProviderError
	return errors.As(err, &perr)
}

func (r *Router) invoke(ctx context.Context, provider model.Provider, prompt Prompt) (string, error) {
	client, err := r.clients.CreateLLM(provider)
	if err != nil {
		return "", err
	}

	callCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	start := time.Now()
	raw, err := client.Chat(callCtx, prompt.System, prompt.User)
	if err != nil {
		var perr *llm.ProviderError
		if !errors.As(err, &perr) {
			err = &llm.ProviderError{Provider: provider, Err: err}
		}
		return "", err
	}

	r.logger.WithFields(logrus.Fields{
		"provider":     provider,
		"duration":     time.Since(start),
		"output_chars": len(raw),
	}).Debug("Provider call completed")
	return raw, nil
}
