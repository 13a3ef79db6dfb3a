package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"newsmapper/internal/app"
	"newsmapper/internal/query"
	"newsmapper/internal/sentiment"
)

func newSentimentCmd() *cobra.Command {
	var (
		timespan   string
		useChart   bool
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "sentiment",
		Short: "Fetch the tone series for the facets and analyze it",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			f := facetsFromFlags()
			var rep sentiment.Report
			if useChart {
				rep, err = svc.AnalyzeToneChart(cmd.Context(), f, timespan)
			} else {
				rep, err = svc.AnalyzeSentiment(cmd.Context(), f, timespan)
			}
			if err != nil {
				return err
			}

			fmt.Print(app.FormatReport(f, timespan, rep))

			if reportPath != "" && rep.Success {
				if err := svc.GenerateSentimentReport(reportPath, f, timespan, rep); err != nil {
					return err
				}
				fmt.Println("\nReport saved to", reportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&timespan, "timespan", query.DefaultSentimentTimespan, "timespan code (1d, 7d, 30d, 1y)")
	cmd.Flags().BoolVar(&useChart, "chart", false, "use the bucketed tone-chart endpoint instead of the timeline")
	cmd.Flags().StringVar(&reportPath, "report", "", "save the analysis as a docx file at this path")
	return cmd
}
