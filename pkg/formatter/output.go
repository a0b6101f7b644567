package formatter

import (
	"encoding/json"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/fatih/color"
	"gopkg.in/yaml.v3"

	"github.com/helmcode/interview-coach/pkg/casestudy"
	"github.com/helmcode/interview-coach/pkg/coach"
)

// DisplayFeedback writes a coaching result in the given format.
func DisplayFeedback(w io.Writer, res *coach.FeedbackResult, format string, verbose bool) error {
	switch format {
	case "json":
		return displayJSON(w, res)
	case "yaml":
		return displayYAML(w, res)
	case "human":
		fallthrough
	default:
		displayFeedbackHuman(w, res, verbose)
	}
	return nil
}

// DisplayEvaluation writes a case evaluation in the given format.
func DisplayEvaluation(w io.Writer, res *coach.EvaluationResult, format string, verbose bool) error {
	switch format {
	case "json":
		return displayJSON(w, res)
	case "yaml":
		return displayYAML(w, res)
	case "human":
		fallthrough
	default:
		displayEvaluationHuman(w, res, verbose)
	}
	return nil
}

// DisplayCaseStudies writes the case catalog listing.
func DisplayCaseStudies(w io.Writer, cases []casestudy.Summary, format string) error {
	switch format {
	case "json":
		return displayJSON(w, cases)
	case "yaml":
		return displayYAML(w, cases)
	}

	cyan := color.New(color.FgCyan, color.Bold)
	cyan.Fprintln(w, "📚 CASE STUDIES:")
	for _, cs := range cases {
		fmt.Fprintf(w, "   %s %s\n", difficultyIcon(cs.Difficulty), color.New(color.Bold).Sprint(cs.ID))
		fmt.Fprintf(w, "      %s", cs.Title)
		if cs.Industry != "" {
			fmt.Fprintf(w, " (%s)", cs.Industry)
		}
		fmt.Fprintln(w)
	}
	return nil
}

func displayJSON(w io.Writer, v interface{}) error {
	output, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func displayYAML(w io.Writer, v interface{}) error {
	output, err := yaml.Marshal(v)
	if err != nil {
		return err
	}
	fmt.Fprintln(w, string(output))
	return nil
}

func displayFeedbackHuman(w io.Writer, res *coach.FeedbackResult, verbose bool) {
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)
	fb := res.Feedback

	fmt.Fprintln(w)
	scoreColor(fb.Score).Fprintf(w, "📊 OVERALL SCORE: %d/100\n\n", fb.Score)

	printList(w, green, "✅ STRENGTHS:", fb.Strengths)
	printList(w, yellow, "⚠️  AREAS FOR IMPROVEMENT:", fb.Improvements)

	cyan.Fprintln(w, "💡 EXAMPLE OF A STRONGER ANSWER:")
	fmt.Fprintln(w, wrapText(fb.Example, 80, "   "))
	fmt.Fprintln(w)

	printBreakdown(w, white, fb.ScoreBreakdown)

	green.Fprintln(w, "🚀 NEXT STEPS:")
	fmt.Fprintln(w, wrapText(fb.NextSteps, 80, "   "))
	fmt.Fprintln(w)

	printFooter(w, string(res.ModelUsed), res.Reason, res.Raw, verbose)
}

func displayEvaluationHuman(w io.Writer, res *coach.EvaluationResult, verbose bool) {
	yellow := color.New(color.FgYellow, color.Bold)
	green := color.New(color.FgGreen, color.Bold)
	cyan := color.New(color.FgCyan, color.Bold)
	white := color.New(color.FgWhite, color.Bold)
	ev := res.Evaluation.Structured

	fmt.Fprintln(w)
	if res.Evaluation.CaseStudyID != "" {
		fmt.Fprintf(w, "📁 Case: %s (%s detail)\n\n", res.Evaluation.CaseStudyID, res.Evaluation.DetailLevel)
	}
	scoreColor(ev.OverallScore).Fprintf(w, "📊 OVERALL SCORE: %d/100\n\n", ev.OverallScore)

	cyan.Fprintln(w, "📝 SUMMARY:")
	fmt.Fprintln(w, wrapText(ev.Summary, 80, "   "))
	fmt.Fprintln(w)

	printList(w, green, "✅ STRENGTHS:", ev.Strengths)
	printList(w, yellow, "⚠️  AREAS FOR IMPROVEMENT:", ev.Improvements)
	printBreakdown(w, white, ev.ScoreBreakdown)

	if res.Evaluation.DetailLevel == "detailed" {
		cyan.Fprintln(w, "🧭 RECOMMENDED APPROACH:")
		fmt.Fprintln(w, wrapText(ev.RecommendedApproach, 80, "   "))
		fmt.Fprintln(w)

		green.Fprintln(w, "🚀 NEXT STEPS:")
		fmt.Fprintln(w, wrapText(ev.NextSteps, 80, "   "))
		fmt.Fprintln(w)
	}

	printFooter(w, string(res.ModelUsed), res.Reason, res.Evaluation.Raw, verbose)
}

func printList(w io.Writer, c *color.Color, title string, items []string) {
	if len(items) == 0 {
		return
	}
	c.Fprintln(w, title)
	for i, item := range items {
		fmt.Fprintf(w, "   %d. %s\n", i+1, item)
	}
	fmt.Fprintln(w)
}

func printBreakdown(w io.Writer, c *color.Color, breakdown map[string]int) {
	if len(breakdown) == 0 {
		return
	}
	labels := make([]string, 0, len(breakdown))
	for label := range breakdown {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	c.Fprintln(w, "📈 SCORE BREAKDOWN:")
	for _, label := range labels {
		score := breakdown[label]
		fmt.Fprintf(w, "   %-24s %s %s\n", label, scoreBar(score), scoreColor(score).Sprintf("%3d", score))
	}
	fmt.Fprintln(w)
}

func printFooter(w io.Writer, provider, reason, raw string, verbose bool) {
	if verbose && raw != "" {
		color.New(color.FgWhite, color.Bold).Fprintln(w, "📄 RAW RESPONSE:")
		fmt.Fprintln(w, wrapText(raw, 80, "   "))
		fmt.Fprintln(w)
	}

	fmt.Fprintln(w, strings.Repeat("─", 80))
	fmt.Fprintf(w, "🤖 %s %s\n", color.New(color.Bold).Sprint(provider), color.HiBlackString(reason))
	fmt.Fprintf(w, "💡 %s\n", color.HiBlackString("Run with -o json or -o yaml for machine-readable output"))
}

func scoreColor(score int) *color.Color {
	switch {
	case score >= 80:
		return color.New(color.FgGreen, color.Bold)
	case score >= 60:
		return color.New(color.FgYellow, color.Bold)
	case score > 0:
		return color.New(color.FgRed, color.Bold)
	default:
		return color.New(color.FgWhite)
	}
}

func scoreBar(score int) string {
	filled := score / 10
	if filled < 0 {
		filled = 0
	}
	if filled > 10 {
		filled = 10
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", 10-filled)
}

func difficultyIcon(difficulty string) string {
	switch strings.ToLower(difficulty) {
	case "advanced":
		return "🔴"
	case "intermediate":
		return "🟡"
	case "beginner":
		return "🟢"
	default:
		return "⚪"
	}
}

func wrapText(text string, width int, indent string) string {
	var result strings.Builder
	lines := strings.Split(text, "\n")

	for _, line := range lines {
		words := strings.Fields(line)
		if len(words) == 0 {
			result.WriteString("\n")
			continue
		}

		currentLine := indent
		for _, word := range words {
			if len(currentLine)+len(word)+1 > width {
				result.WriteString(currentLine + "\n")
				currentLine = indent + word
			} else if currentLine == indent {
				currentLine += word
			} else {
				currentLine += " " + word
			}
		}

		if currentLine != indent {
			result.WriteString(currentLine + "\n")
		}
	}

	return strings.TrimSuffix(result.String(), "\n")
}
