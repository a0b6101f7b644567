package prompts

import (
	"fmt"
	"strings"

	"github.com/helmcode/interview-coach/pkg/model"
)

var trackGuidance = map[model.CareerTrack]string{
	model.TrackConsulting: `The candidate is preparing for management consulting interviews (MBB and Tier-2 firms).
Judge hypothesis-driven structure, MECE issue trees, quantitative comfort, and a clear synthesis.`,
	model.TrackInvestmentBanking: `The candidate is preparing for investment banking interviews.
Judge technical accuracy on accounting, valuation (DCF, comparables, precedents) and M&A/LBO mechanics, as well as deal awareness and "why banking" motivation.`,
	model.TrackTech: `The candidate is preparing for technology company interviews.
Judge technical depth, problem decomposition, trade-off reasoning, and how clearly they explain engineering decisions.`,
	model.TrackGeneral: `The candidate is preparing for general professional interviews.
Judge clarity, relevance, concrete evidence, and how well the answer addresses the question.`,
}

var typeGuidance = map[model.InterviewType]string{
	model.InterviewTechnical:  "This is a technical question: check correctness first, then depth and clarity of explanation.",
	model.InterviewBehavioral: "This is a behavioral question: check use of the STAR method (Situation, Task, Action, Result) and quantified outcomes.",
	model.InterviewCase:       "This is a case question: check the framework, prioritization of drivers, math, and the final recommendation.",
	model.InterviewFinancial:  "This is a financial question: check technical accuracy of the concepts and numbers, and the ability to walk through them step by step.",
	model.InterviewGeneral:    "Evaluate the answer on its overall quality and fit to the question.",
}

var breakdownCategories = map[model.CareerTrack][]string{
	model.TrackConsulting:        {"Structure", "Analytical Rigor", "Communication", "Business Judgment"},
	model.TrackInvestmentBanking: {"Technical Accuracy", "Financial Acumen", "Communication", "Deal Awareness"},
	model.TrackTech:              {"Technical Depth", "Problem Solving", "Communication", "Trade-off Reasoning"},
	model.TrackGeneral:           {"Content", "Structure", "Communication", "Relevance"},
}

// CoachingSystemPrompt builds the interview-coach system prompt. Every
// provider receives the same section layout so one parser serves both.
func CoachingSystemPrompt(track model.CareerTrack, interviewType model.InterviewType) string {
	guide, ok := trackGuidance[track]
	if !ok {
		guide = trackGuidance[model.TrackGeneral]
	}
	typ, ok := typeGuidance[interviewType]
	if !ok {
		typ = typeGuidance[model.InterviewGeneral]
	}
	cats, ok := breakdownCategories[track]
	if !ok {
		cats = breakdownCategories[model.TrackGeneral]
	}

	var breakdown strings.Builder
	for _, c := range cats {
		fmt.Fprintf(&breakdown, "- %s: X/100\n", c)
	}

	return fmt.Sprintf(`You are an expert interview coach giving honest, specific, actionable feedback.

%s
%s

Respond using EXACTLY these numbered sections, in this order, with these labels:

1. Overall Score: X/100
2. Overall Assessment: two or three sentences summarizing the answer.
3. Strengths:
- one strength per line
4. Areas for Improvement:
- one improvement per line
5. Example of a Stronger Answer:
a short rewritten answer that fixes the main weaknesses
6. Score Breakdown:
%s7. Suggested Next Steps:
concrete practice steps for the candidate

Use plain text. Do not add any other sections.`, guide, typ, breakdown.String())
}

// CoachingUserPrompt pairs the question with the candidate's transcript.
func CoachingUserPrompt(question, transcript string) string {
	return fmt.Sprintf(`Interview Question:
%s

Candidate's Answer (transcript):
%s

Evaluate this answer.`, strings.TrimSpace(question), strings.TrimSpace(transcript))
}
