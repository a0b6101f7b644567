package router

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/helmcode/interview-coach/pkg/model"
)

// Domain terms that mark a question as analytically heavy.
var complexityKeywords = []string{
	"optimize",
	"optimization",
	"framework",
	"valuation",
	"architecture",
	"algorithm",
	"scalability",
	"system design",
	"trade-off",
	"tradeoff",
	"dcf",
	"lbo",
	"merger",
	"acquisition",
	"market sizing",
	"profitability",
	"regression",
	"distributed",
	"latency",
	"complexity",
	"derivative",
	"leverage",
}

// Phrases showing the candidate is unsure and wants a fuller explanation.
var uncertaintyKeywords = []string{
	"not sure",
	"unsure",
	"confused",
	"help",
	"don't know",
	"dont know",
	"no idea",
	"struggling",
	"unclear",
	"not certain",
}

// Heuristics holds the length thresholds of the selection rule. Lengths
// are counted in characters, not bytes.
type Heuristics struct {
	// ComplexTranscriptChars: transcripts at least this long count as complex.
	ComplexTranscriptChars int
	// BriefTranscriptChars: transcripts shorter than this need a detailed
	// explanation. Zero disables the check. Set it to 150 for the original
	// brief-answer rule.
	BriefTranscriptChars int
}

func DefaultHeuristics() Heuristics {
	return Heuristics{ComplexTranscriptChars: 500}
}

// Signals are the inputs the tie-break policy looked at.
type Signals struct {
	ComplexityMatches        int  `json:"complexityMatches"`
	UncertaintyMatches       int  `json:"uncertaintyMatches"`
	IsComplexQuestion        bool `json:"isComplexQuestion"`
	NeedsDetailedExplanation bool `json:"needsDetailedExplanation"`
}

// Selection is the provider picked for a first attempt and why.
type Selection struct {
	Provider model.Provider `json:"provider"`
	Reason   string         `json:"reason"`
	Signals  Signals        `json:"signals"`
}

func countMatches(text string, keywords []string) int {
	n := 0
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			n++
		}
	}
	return n
}

// Analyze computes the selection signals for a request.
func (h Heuristics) Analyze(req model.CoachingRequest) Signals {
	combined := strings.ToLower(req.Question + " " + req.Transcript)
	transcript := strings.ToLower(req.Transcript)
	length := utf8.RuneCountInString(req.Transcript)

	s := Signals{
		ComplexityMatches:  countMatches(combined, complexityKeywords),
		UncertaintyMatches: countMatches(transcript, uncertaintyKeywords),
	}
	s.IsComplexQuestion = s.ComplexityMatches >= 2 || length >= h.ComplexTranscriptChars
	s.NeedsDetailedExplanation = s.UncertaintyMatches >= 1 ||
		(h.BriefTranscriptChars > 0 && length < h.BriefTranscriptChars)
	return s
}

// Select picks the first provider for a request. It is a pure function of
// the question, transcript, career track and interview type.
func (h Heuristics) Select(req model.CoachingRequest) Selection {
	s := h.Analyze(req)

	switch {
	case req.CareerTrack == model.TrackConsulting && req.InterviewType == model.InterviewCase && !s.NeedsDetailedExplanation:
		return Selection{
			Provider: model.PrimaryLLM,
			Reason:   "Consulting case interview: using Claude for structured reasoning",
			Signals:  s,
		}
	case s.NeedsDetailedExplanation || s.IsComplexQuestion:
		return Selection{
			Provider: model.SecondaryLLM,
			Reason:   secondaryReason(s),
			Signals:  s,
		}
	default:
		return Selection{
			Provider: model.PrimaryLLM,
			Reason:   "Standard question: using Claude as the default, cost-effective provider",
			Signals:  s,
		}
	}
}

func secondaryReason(s Signals) string {
	var why []string
	if s.NeedsDetailedExplanation {
		why = append(why, "answer needs a detailed explanation")
	}
	if s.IsComplexQuestion {
		why = append(why, "question is complex")
	}
	return fmt.Sprintf("Using GPT-4 for detailed explanation (%s)", strings.Join(why, ", "))
}

// Select applies the default heuristics.
func Select(req model.CoachingRequest) Selection {
	return DefaultHeuristics().Select(req)
}
