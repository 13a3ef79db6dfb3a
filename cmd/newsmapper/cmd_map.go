package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"newsmapper/internal/query"
)

func newMapCmd() *cobra.Command {
	var (
		timespan string
		top      int
	)

	cmd := &cobra.Command{
		Use:   "map",
		Short: "Fetch the event point set and summarize it by location",
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}

			f := facetsFromFlags()
			fc, err := svc.MapPoints(cmd.Context(), f, timespan)
			if err != nil {
				return err
			}

			fmt.Printf("News map: %s - %s\n", query.Describe(f), query.TimespanLabel(timespan))
			if len(fc.Features) == 0 {
				fmt.Println("No locations found, try increasing the time period or change the query")
				return nil
			}
			fmt.Printf("%d locations\n\n", len(fc.Features))

			features := fc.Features
			sort.SliceStable(features, func(i, j int) bool {
				return features[i].Properties.Count > features[j].Properties.Count
			})
			if top > 0 && len(features) > top {
				features = features[:top]
			}
			for _, ft := range features {
				coords := ft.Geometry.Coordinates
				if len(coords) >= 2 {
					fmt.Printf("- %-40s %5d articles  (%.3f, %.3f)\n",
						ft.Properties.Name, ft.Properties.Count, coords[1], coords[0])
				} else {
					fmt.Printf("- %-40s %5d articles\n", ft.Properties.Name, ft.Properties.Count)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&timespan, "timespan", query.DefaultTimespan, "timespan code (1d, 7d, 30d, 1y)")
	cmd.Flags().IntVar(&top, "top", 20, "show only the N busiest locations (0 = all)")
	return cmd
}
