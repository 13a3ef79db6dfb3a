package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"newsmapper/internal/query"
)

func newQueryCmd() *cobra.Command {
	var timespan string

	cmd := &cobra.Command{
		Use:   "query",
		Short: "Compile the facets and print the query with its endpoint URLs",
		RunE: func(*cobra.Command, []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			f := facetsFromFlags()
			result := svc.QueryURLs(f, timespan)

			fmt.Println("Topic :", query.Describe(f))
			fmt.Println("Query :", result.Query)
			fmt.Println("Window:", query.TimespanLabel(timespan))
			fmt.Println()
			fmt.Println("map      :", result.PointsURL)
			fmt.Println("headlines:", result.ArticlesURL)
			fmt.Println("sentiment:", result.ToneTimelineURL)
			return nil
		},
	}

	cmd.Flags().StringVar(&timespan, "timespan", query.DefaultTimespan, "timespan code (1d, 7d, 30d, 1y)")
	return cmd
}
