package app

import (
	"fmt"

	"github.com/gingfrederik/docx"

	"newsmapper/internal/discovery"
	"newsmapper/internal/gdelt"
	"newsmapper/internal/query"
	"newsmapper/internal/sentiment"
)

// GenerateSentimentReport writes the analysis as a docx brief.
func (s *Service) GenerateSentimentReport(path string, f query.Facets, timespan string, rep sentiment.Report) error {
	d := docx.NewFile()

	titleP := d.AddParagraph()
	titleRun := titleP.AddText("Sentiment Analysis Report")
	titleRun.Size(20)

	p := d.AddParagraph()
	p.AddText(fmt.Sprintf("Topic: %s", query.Describe(f)))
	p = d.AddParagraph()
	p.AddText(fmt.Sprintf("Query: %s", s.CompiledQuery(f)))
	p = d.AddParagraph()
	run := p.AddText(fmt.Sprintf("Window: %s (%s)", query.TimespanLabel(timespan), timespan))
	run.Size(10)
	run.Color("808080")
	d.AddParagraph() // Spacer

	if !rep.Success {
		d.AddParagraph().AddText(rep.Err)
		return d.Save(path)
	}

	p = d.AddParagraph()
	run = p.AddText(fmt.Sprintf("Classification: %s (average tone %.2f)", rep.ToneClass, rep.Stats.Average))
	run.Size(14)

	d.AddParagraph().AddText(fmt.Sprintf("Overall trend: %s (slope %.4f, R-squared %.2f)",
		rep.Trend.Direction, rep.Trend.Slope, rep.Trend.RSquared))
	d.AddParagraph().AddText(fmt.Sprintf("Recent trend: %s (last %d observations, mean shift %+.2f)",
		rep.RecentTrend.Direction, rep.RecentCount, rep.MeanShift))
	d.AddParagraph().AddText(fmt.Sprintf("Volatility: %s (std. deviation %.2f)",
		rep.VolatilityClass, rep.Stats.Volatility))
	d.AddParagraph().AddText(fmt.Sprintf("Negative coverage share: %.0f%%", rep.NegativeShare))

	d.AddParagraph() // Spacer
	p = d.AddParagraph()
	run = p.AddText(rep.Narrative)
	run.Size(12)

	d.AddParagraph() // Spacer
	d.AddParagraph().AddText("--------------------------------------------------")
	p = d.AddParagraph()
	run = p.AddText(fmt.Sprintf("Analysis based on %d data points. Range: %.2f to %.2f.",
		rep.DataPoints, rep.Stats.Minimum, rep.Stats.Maximum))
	run.Size(10)
	run.Color("808080")

	return d.Save(path)
}

// GenerateHeadlinesReport writes the headline list as a docx document.
// Either the GDELT articles or the RSS fallback list may be empty.
func (s *Service) GenerateHeadlinesReport(path string, f query.Facets, timespan string, articles []gdelt.Article, fallback []discovery.Headline) error {
	d := docx.NewFile()

	titleP := d.AddParagraph()
	titleRun := titleP.AddText(fmt.Sprintf("Headlines: %s - %s", query.Describe(f), query.TimespanLabel(timespan)))
	titleRun.Size(18)
	d.AddParagraph() // Spacer

	for _, a := range articles {
		p := d.AddParagraph()
		p.AddText(a.Title)

		p = d.AddParagraph()
		run := p.AddText(fmt.Sprintf("Source: %s (%s) | Seen: %s", a.Domain, a.SourceCountry, a.SeenDate))
		run.Size(10)
		run.Color("808080")

		p = d.AddParagraph()
		run = p.AddText(a.URL)
		run.Size(10)
		run.Color("0000FF")

		d.AddParagraph() // Spacer
	}

	if len(fallback) > 0 {
		d.AddParagraph().AddText("From general world-news feeds (no direct matches upstream):")
		d.AddParagraph() // Spacer
		for _, h := range fallback {
			p := d.AddParagraph()
			p.AddText(h.Title)

			p = d.AddParagraph()
			run := p.AddText(fmt.Sprintf("Source: %s | %s", h.Source, h.PublishedAt.Format("2006-01-02 15:04")))
			run.Size(10)
			run.Color("808080")

			p = d.AddParagraph()
			run = p.AddText(h.URL)
			run.Size(10)
			run.Color("0000FF")

			d.AddParagraph() // Spacer
		}
	}

	return d.Save(path)
}
