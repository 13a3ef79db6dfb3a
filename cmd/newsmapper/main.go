package main

import (
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"newsmapper/internal/app"
	"newsmapper/internal/query"
)

var (
	flagResource string
	flagRegion   string
	flagCountry  string
	flagCustom   string
	flagLexicon  string
	flagVerbose  bool
)

func main() {
	root := &cobra.Command{
		Use:   "newsmapper",
		Short: "Explore news coverage for a topic as map points, headlines and sentiment",
		Long: "newsmapper compiles resource/region/country/custom facets into a GDELT\n" +
			"boolean query and renders the matching coverage as map points, a headline\n" +
			"list and a sentiment trend. Without a subcommand it runs interactively.",
		SilenceUsage: true,
		PersistentPreRun: func(*cobra.Command, []string) {
			initLogger()
		},
		RunE: func(*cobra.Command, []string) error {
			svc, err := newService()
			if err != nil {
				return err
			}
			return svc.Run()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flagResource, "resource", "", "resource/category facet (e.g. \"Oil & Gas\")")
	pf.StringVar(&flagRegion, "region", "", "region facet (e.g. Amazon; Global is a no-op)")
	pf.StringVar(&flagCountry, "country", "", "country facet (free text)")
	pf.StringVar(&flagCustom, "custom", "", "custom query text, overrides the resource facet")
	pf.StringVar(&flagLexicon, "lexicon", "", "path to a JSON resource lexicon replacing the built-in table (sample: data/resource_lexicon.json)")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newQueryCmd(), newSentimentCmd(), newHeadlinesCmd(), newMapCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func initLogger() {
	level := zerolog.InfoLevel
	if flagVerbose {
		level = zerolog.DebugLevel
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
	}).Level(level)
}

func newService() (*app.Service, error) {
	return app.NewService(flagLexicon)
}

func facetsFromFlags() query.Facets {
	return query.Facets{
		Resource: flagResource,
		Region:   flagRegion,
		Country:  flagCountry,
		Custom:   flagCustom,
	}
}
