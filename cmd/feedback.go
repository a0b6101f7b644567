package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/helmcode/interview-coach/pkg/formatter"
	"github.com/helmcode/interview-coach/pkg/model"
)

var (
	feedbackQuestion       string
	feedbackTranscript     string
	feedbackTranscriptFile string
	feedbackTrack          string
	feedbackType           string
	feedbackModel          string
	feedbackOutputFormat   string
	feedbackVerbose        bool
)

func NewFeedbackCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "feedback",
		Short: "Get AI coaching feedback on an interview answer",
		Long: `Send an interview question and your answer to an AI coach and get a score,
strengths, improvements, an example answer and next steps.

Examples:
  # Coach a behavioral answer
  interview-coach feedback -q "Tell me about a time you led a project." \
    -t "I led a team of 5 to redesign our onboarding flow, reducing churn by 12%."

  # Read the transcript from a file and force a provider
  interview-coach feedback -q "Walk me through a DCF." -f answer.txt --track investment-banking --type financial --model openai

  # Machine-readable output
  interview-coach feedback -q "Why consulting?" -f - -o json < answer.txt`,
		Args: cobra.NoArgs,
		RunE: runFeedback,
	}

	cmd.Flags().StringVarP(&feedbackQuestion, "question", "q", "", "Interview question")
	cmd.Flags().StringVarP(&feedbackTranscript, "transcript", "t", "", "Your answer")
	cmd.Flags().StringVarP(&feedbackTranscriptFile, "transcript-file", "f", "", "Read the answer from a file (- for stdin)")
	cmd.Flags().StringVar(&feedbackTrack, "track", "general", "Career track (consulting, investment-banking, tech, general)")
	cmd.Flags().StringVar(&feedbackType, "type", "general", "Interview type (technical, behavioral, case, financial, general)")
	cmd.Flags().StringVar(&feedbackModel, "model", "", "Force a provider (claude, openai). Defaults to automatic selection")
	cmd.Flags().StringVarP(&feedbackOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVarP(&feedbackVerbose, "verbose", "v", false, "Verbose output")

	return cmd
}

func runFeedback(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	transcript, err := readText(feedbackTranscript, feedbackTranscriptFile)
	if err != nil {
		return err
	}
	explicit, err := parseModelFlag(feedbackModel)
	if err != nil {
		return err
	}

	req := model.CoachingRequest{
		Transcript:    transcript,
		Question:      feedbackQuestion,
		CareerTrack:   model.ParseCareerTrack(feedbackTrack),
		InterviewType: model.ParseInterviewType(feedbackType),
		ExplicitModel: explicit,
	}

	logger := cliLogger(cfg, feedbackVerbose)
	c, err := newCoach(cfg, logger)
	if err != nil {
		return err
	}

	if feedbackOutputFormat == "human" {
		printFeedbackHeader(req)
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = " Coaching with AI..."
	s.Start()

	res, err := c.Feedback(context.Background(), req)
	s.Stop()
	if err != nil {
		printError("Feedback failed")
		return fmt.Errorf("AI feedback failed: %w", err)
	}
	printSuccess(fmt.Sprintf("Feedback from %s", res.ModelUsed))

	return formatter.DisplayFeedback(os.Stdout, res, feedbackOutputFormat, feedbackVerbose)
}

func printFeedbackHeader(req model.CoachingRequest) {
	cyan := color.New(color.FgCyan, color.Bold)
	fmt.Println()
	cyan.Println("🎤 Interview Coach")
	fmt.Printf("❓ Question: %s\n", req.Question)
	fmt.Printf("🎯 Track: %s\n", req.CareerTrack)
	fmt.Printf("📋 Interview type: %s\n", req.InterviewType)
	fmt.Println()
}
