package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"newsmapper/internal/query"
)

func newHeadlinesCmd() *cobra.Command {
	var (
		timespan   string
		limit      int
		reportPath string
	)

	cmd := &cobra.Command{
		Use:   "headlines",
		Short: "List matching headlines, falling back to world-news RSS feeds",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			f := facetsFromFlags()
			articles, fallback, err := svc.Headlines(cmd.Context(), f, timespan, limit)
			if err != nil {
				return err
			}

			fmt.Printf("Headlines: %s - %s\n\n", query.Describe(f), query.TimespanLabel(timespan))
			switch {
			case len(articles) > 0:
				for _, a := range articles {
					fmt.Printf("- %s\n  %s (%s) | %s\n", a.Title, a.Domain, a.SourceCountry, a.URL)
				}
			case len(fallback) > 0:
				fmt.Println("No direct matches upstream; from general world-news feeds:")
				for _, h := range fallback {
					fmt.Printf("- %s\n  %s | %s\n", h.Title, h.Source, h.URL)
				}
			default:
				fmt.Println("No results found, try increasing the time period or change the query")
			}

			if reportPath != "" {
				if err := svc.GenerateHeadlinesReport(reportPath, f, timespan, articles, fallback); err != nil {
					return err
				}
				fmt.Println("\nReport saved to", reportPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&timespan, "timespan", query.DefaultTimespan, "timespan code (1d, 7d, 30d, 1y)")
	cmd.Flags().IntVar(&limit, "limit", 100, "maximum number of headlines")
	cmd.Flags().StringVar(&reportPath, "report", "", "save the headlines as a docx file at this path")
	return cmd
}
