package parser

import "github.com/helmcode/interview-coach/pkg/model"

// ParseEvaluation turns a case-solution evaluation into StructuredEvaluation
// with the same never-fail policy as ParseFeedback. Sections a lower detail
// level did not ask for keep their defaults.
func ParseEvaluation(raw string) model.StructuredEvaluation {
	doc := newDocument(raw)

	ev := model.StructuredEvaluation{
		OverallScore:        firstScore(doc.text),
		Summary:             placeholderSummary,
		Strengths:           []string{},
		Improvements:        []string{},
		ScoreBreakdown:      map[string]int{},
		RecommendedApproach: placeholderApproach,
		NextSteps:           placeholderNextSteps,
	}

	if body, ok := doc.section(sectionAssessment); ok && body != "" {
		ev.Summary = body
	}
	if body, ok := doc.section(sectionStrengths); ok {
		ev.Strengths = listItems(body)
	}
	if body, ok := doc.section(sectionImprovements); ok {
		ev.Improvements = listItems(body)
	}
	if body, ok := doc.breakdownSection(sectionApproach, sectionNextSteps); ok {
		ev.ScoreBreakdown = breakdown(body)
	}
	if body, ok := doc.section(sectionApproach); ok && body != "" {
		ev.RecommendedApproach = body
	}
	if body, ok := doc.tail(sectionNextSteps); ok && body != "" {
		ev.NextSteps = body
	}

	return ev
}
