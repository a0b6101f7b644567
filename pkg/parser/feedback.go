package parser

import "github.com/helmcode/interview-coach/pkg/model"

const (
	placeholderExample   = "Could not extract example"
	placeholderNextSteps = "Could not extract next steps"
	placeholderSummary   = "Could not extract summary"
	placeholderApproach  = "Could not extract recommended approach"
)

// ParseFeedback turns free-text coaching output into StructuredFeedback.
// It never fails: missing or malformed sections fall back to 0, empty
// collections, or a placeholder string. Output from either provider goes
// through this same function.
func ParseFeedback(raw string) model.StructuredFeedback {
	doc := newDocument(raw)

	fb := model.StructuredFeedback{
		Score:          firstScore(doc.text),
		Strengths:      []string{},
		Improvements:   []string{},
		Example:        placeholderExample,
		ScoreBreakdown: map[string]int{},
		NextSteps:      placeholderNextSteps,
	}

	if body, ok := doc.section(sectionStrengths); ok {
		fb.Strengths = listItems(body)
	}
	if body, ok := doc.section(sectionImprovements); ok {
		fb.Improvements = listItems(body)
	}
	if body, ok := doc.section(sectionExample); ok && body != "" {
		fb.Example = body
	}
	if body, ok := doc.breakdownSection(sectionNextSteps); ok {
		fb.ScoreBreakdown = breakdown(body)
	}
	if body, ok := doc.tail(sectionNextSteps); ok && body != "" {
		fb.NextSteps = body
	}

	return fb
}
