package app

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"newsmapper/internal/query"
	"newsmapper/internal/sentiment"
)

// Run drives the interactive session: prompt facets and a timespan,
// show the compiled query with its endpoint URLs, run the sentiment
// analysis, and offer a docx export.
func (s *Service) Run() error {
	in := bufio.NewReader(os.Stdin)
	ctx := context.Background()

	for {
		facets, err := readFacets(in)
		if err != nil {
			return err
		}

		timespan, err := selectTimespan(in)
		if err != nil {
			return err
		}

		result := s.QueryURLs(facets, timespan)
		fmt.Println("\nCompiled query:")
		fmt.Println("  " + result.Query)
		fmt.Println("\nEndpoints:")
		fmt.Println("  map      :", result.PointsURL)
		fmt.Println("  headlines:", result.ArticlesURL)
		fmt.Println("  sentiment:", result.ToneTimelineURL)

		fmt.Println("\nAnalyzing sentiment...")
		rep, err := s.AnalyzeSentiment(ctx, facets, timespan)
		if err != nil {
			fmt.Println("Fetch failed:", err)
		} else {
			fmt.Println()
			fmt.Println(FormatReport(facets, timespan, rep))

			if rep.Success && confirm(in, "Save report as docx?") {
				fmt.Print("Path [sentiment_report.docx]: ")
				path, _ := in.ReadString('\n')
				path = strings.TrimSpace(path)
				if path == "" {
					path = "sentiment_report.docx"
				}
				if err := s.GenerateSentimentReport(path, facets, timespan, rep); err != nil {
					fmt.Println("Save failed:", err)
				} else {
					fmt.Println("Saved to", path)
				}
			}
		}

		if !confirm(in, "\nRun another query?") {
			return nil
		}
	}
}

// FormatReport renders the analysis as terminal text, the same content
// the docx brief carries.
func FormatReport(f query.Facets, timespan string, rep sentiment.Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Sentiment: %s - %s\n", query.Describe(f), query.TimespanLabel(timespan))

	if !rep.Success {
		fmt.Fprintf(&b, "  %s\n", rep.Err)
		return b.String()
	}

	fmt.Fprintf(&b, "  Classification: %s (average tone %.2f)\n", rep.ToneClass, rep.Stats.Average)
	fmt.Fprintf(&b, "  Overall trend : %s (slope %.4f, R-squared %.2f)\n",
		rep.Trend.Direction, rep.Trend.Slope, rep.Trend.RSquared)
	fmt.Fprintf(&b, "  Recent trend  : %s (last %d observations, mean shift %+.2f)\n",
		rep.RecentTrend.Direction, rep.RecentCount, rep.MeanShift)
	fmt.Fprintf(&b, "  Volatility    : %s (std. deviation %.2f)\n",
		rep.VolatilityClass, rep.Stats.Volatility)
	fmt.Fprintf(&b, "  Negative share: %.0f%%\n", rep.NegativeShare)
	fmt.Fprintf(&b, "\n  %s\n", rep.Narrative)
	fmt.Fprintf(&b, "\n  Based on %d data points. Range: %.2f to %.2f.\n",
		rep.DataPoints, rep.Stats.Minimum, rep.Stats.Maximum)
	return b.String()
}

func readFacets(r *bufio.Reader) (query.Facets, error) {
	fmt.Println("Describe your topic (leave any field blank to skip).")

	resource, err := prompt(r, "Resource/category (e.g. Oil & Gas, Mining)")
	if err != nil {
		return query.Facets{}, err
	}
	region, err := prompt(r, "Region (e.g. Amazon, Africa; blank = Global)")
	if err != nil {
		return query.Facets{}, err
	}
	country, err := prompt(r, "Country")
	if err != nil {
		return query.Facets{}, err
	}
	custom, err := prompt(r, "Custom query text (overrides resource)")
	if err != nil {
		return query.Facets{}, err
	}

	return query.Facets{
		Resource: resource,
		Region:   region,
		Country:  country,
		Custom:   custom,
	}, nil
}

func selectTimespan(r *bufio.Reader) (string, error) {
	for {
		fmt.Println("\nSelect time window:")
		fmt.Println("1) Today")
		fmt.Println("2) Past week")
		fmt.Println("3) Past month")
		fmt.Println("4) Past year")
		fmt.Print("> ")

		choice, err := r.ReadString('\n')
		if err != nil {
			return "", err
		}

		switch strings.TrimSpace(choice) {
		case "1":
			return query.TimespanDay, nil
		case "2":
			return query.TimespanWeek, nil
		case "3":
			return query.TimespanMonth, nil
		case "4":
			return query.TimespanYear, nil
		default:
			fmt.Println("Invalid choice. Please select 1-4.")
		}
	}
}

func prompt(r *bufio.Reader, label string) (string, error) {
	fmt.Print(label + ": ")
	line, err := r.ReadString('\n')
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func confirm(r *bufio.Reader, question string) bool {
	fmt.Print(question + " [y/N] ")
	line, err := r.ReadString('\n')
	if err != nil {
		return false
	}
	line = strings.ToLower(strings.TrimSpace(line))
	return line == "y" || line == "yes"
}
