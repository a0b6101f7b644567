package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/briandowns/spinner"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/helmcode/interview-coach/pkg/coach"
	"github.com/helmcode/interview-coach/pkg/formatter"
	"github.com/helmcode/interview-coach/pkg/model"
)

var (
	evaluateCaseID       string
	evaluateCaseFile     string
	evaluateSolution     string
	evaluateSolutionFile string
	evaluateDetail       string
	evaluateModel        string
	evaluateOutputFormat string
	evaluateVerbose      bool
)

func NewEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate",
		Short: "Evaluate a consulting case solution with AI",
		Long: `Grade a case interview solution against a case study from the catalog or
from a YAML file.

Examples:
  # Evaluate against a catalog case
  interview-coach evaluate --case-id coffee-chain-profitability --solution-file solution.txt

  # Detailed evaluation of a custom case
  interview-coach evaluate --case-file my-case.yaml -s "Enter through a partnership..." --detail detailed

  # List available cases
  interview-coach cases`,
		Args: cobra.NoArgs,
		RunE: runEvaluate,
	}

	cmd.Flags().StringVar(&evaluateCaseID, "case-id", "", "Case study id from the catalog")
	cmd.Flags().StringVar(&evaluateCaseFile, "case-file", "", "YAML file describing a single case study")
	cmd.Flags().StringVarP(&evaluateSolution, "solution", "s", "", "Your solution")
	cmd.Flags().StringVarP(&evaluateSolutionFile, "solution-file", "f", "", "Read the solution from a file (- for stdin)")
	cmd.Flags().StringVar(&evaluateDetail, "detail", "standard", "Detail level (basic, standard, detailed)")
	cmd.Flags().StringVar(&evaluateModel, "model", "", "Force a provider (claude, openai)")
	cmd.Flags().StringVarP(&evaluateOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	cmd.Flags().BoolVarP(&evaluateVerbose, "verbose", "v", false, "Verbose output")

	return cmd
}

func runEvaluate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if evaluateCaseID == "" && evaluateCaseFile == "" {
		return fmt.Errorf("either specify a case with --case-id or use --case-file")
	}

	solution, err := readText(evaluateSolution, evaluateSolutionFile)
	if err != nil {
		return err
	}
	explicit, err := parseModelFlag(evaluateModel)
	if err != nil {
		return err
	}

	in := coach.CaseInput{
		UserSolution:  solution,
		CaseStudyID:   evaluateCaseID,
		DetailLevel:   model.ParseDetailLevel(evaluateDetail),
		ExplicitModel: explicit,
	}
	if evaluateCaseFile != "" {
		cs, err := readCaseFile(evaluateCaseFile)
		if err != nil {
			return err
		}
		in.CaseStudy = cs
	}

	logger := cliLogger(cfg, evaluateVerbose)
	c, err := newCoach(cfg, logger)
	if err != nil {
		return err
	}

	if evaluateOutputFormat == "human" {
		cyan := color.New(color.FgCyan, color.Bold)
		fmt.Println()
		cyan.Println("📊 Case Interview Evaluator")
		if in.CaseStudy != nil {
			fmt.Printf("📁 Case: %s\n", in.CaseStudy.Title)
		} else {
			fmt.Printf("📁 Case: %s\n", in.CaseStudyID)
		}
		fmt.Printf("🔎 Detail: %s\n", in.DetailLevel)
		fmt.Println()
	}

	s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
	s.Writer = os.Stderr
	s.Suffix = " Evaluating with AI..."
	s.Start()

	res, err := c.EvaluateCase(context.Background(), in)
	s.Stop()
	if err != nil {
		printError("Evaluation failed")
		return fmt.Errorf("AI evaluation failed: %w", err)
	}
	printSuccess(fmt.Sprintf("Evaluation from %s", res.ModelUsed))

	return formatter.DisplayEvaluation(os.Stdout, res, evaluateOutputFormat, evaluateVerbose)
}

func readCaseFile(path string) (*model.CaseStudy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read case file: %w", err)
	}
	var cs model.CaseStudy
	if err := yaml.Unmarshal(data, &cs); err != nil {
		return nil, fmt.Errorf("failed to parse case file %s: %w", path, err)
	}
	return &cs, nil
}
