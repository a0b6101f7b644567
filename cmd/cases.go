package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/helmcode/interview-coach/pkg/casestudy"
	"github.com/helmcode/interview-coach/pkg/formatter"
)

var casesOutputFormat string

func NewCasesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cases",
		Short: "List the case studies available for evaluation",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			catalog, err := casestudy.Load(cfg.CaseStudiesFile)
			if err != nil {
				return err
			}
			return formatter.DisplayCaseStudies(os.Stdout, catalog.List(), casesOutputFormat)
		},
	}

	cmd.Flags().StringVarP(&casesOutputFormat, "output", "o", "human", "Output format (human, json, yaml)")
	return cmd
}
