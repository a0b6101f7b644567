package prompts

import (
	"fmt"
	"sort"
	"strings"

	"github.com/helmcode/interview-coach/pkg/model"
)

// CaseEvaluationSystemPrompt asks for more sections as the detail level rises.
func CaseEvaluationSystemPrompt(level model.DetailLevel) string {
	sections := []string{
		"Overall Score: X/100",
		"Overall Assessment: two or three sentences.",
		"Strengths:\n- one strength per line",
		"Areas for Improvement:\n- one improvement per line",
	}
	if level == model.DetailStandard || level == model.DetailDetailed {
		sections = append(sections, "Score Breakdown:\n- Structure: X/100\n- Analysis: X/100\n- Creativity: X/100\n- Recommendation: X/100\n- Communication: X/100")
	}
	if level == model.DetailDetailed {
		sections = append(sections,
			"Recommended Approach: how a top candidate would have structured and solved this case, step by step.",
			"Suggested Next Steps: concrete practice steps.",
		)
	}

	var sb strings.Builder
	sb.WriteString(`You are a senior engagement manager at a top-tier consulting firm evaluating a candidate's case interview solution.
Assess structure, quality of analysis, use of the case data, creativity, and the final recommendation.

Respond using EXACTLY these numbered sections, in this order, with these labels:

`)
	for i, s := range sections {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, s)
	}
	switch level {
	case model.DetailBasic:
		sb.WriteString("\nKeep the evaluation brief.")
	case model.DetailDetailed:
		sb.WriteString("\nBe thorough and specific; reference the case data where relevant.")
	}
	sb.WriteString("\nUse plain text. Do not add any other sections.")
	return sb.String()
}

// CaseEvaluationUserPrompt renders the case and the candidate's solution.
func CaseEvaluationUserPrompt(cs model.CaseStudy, solution string) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Case: %s\n", cs.Title)
	if cs.Industry != "" {
		fmt.Fprintf(&sb, "Industry: %s\n", cs.Industry)
	}
	fmt.Fprintf(&sb, "\nPrompt:\n%s\n", strings.TrimSpace(cs.Prompt))
	if cs.Context != "" {
		fmt.Fprintf(&sb, "\nContext:\n%s\n", strings.TrimSpace(cs.Context))
	}
	if len(cs.Data) > 0 {
		keys := make([]string, 0, len(cs.Data))
		for k := range cs.Data {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		sb.WriteString("\nCase Data:\n")
		for _, k := range keys {
			fmt.Fprintf(&sb, "- %s: %s\n", k, cs.Data[k])
		}
	}
	if len(cs.KeyQuestions) > 0 {
		sb.WriteString("\nKey Questions:\n")
		for _, q := range cs.KeyQuestions {
			fmt.Fprintf(&sb, "- %s\n", q)
		}
	}
	fmt.Fprintf(&sb, "\nCandidate's Solution:\n%s\n", strings.TrimSpace(solution))
	return sb.String()
}
