// Command dataset-dump fetches a dataset and prints it, its averages or one
// of its views as text.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ytget/dataset-viewer/internal/config"
	"github.com/ytget/dataset-viewer/internal/console"
	"github.com/ytget/dataset-viewer/internal/explorer"
	"github.com/ytget/dataset-viewer/internal/logger"
	"github.com/ytget/dataset-viewer/internal/model"
	"github.com/ytget/dataset-viewer/internal/profile"
	"github.com/ytget/dataset-viewer/internal/source"
	"github.com/ytget/dataset-viewer/internal/store"
)

var version = "dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("dataset-dump", flag.ContinueOnError)
	var (
		profileName = fs.String("profile", "", "dataset profile: "+strings.Join(profile.Names(), ", "))
		configPath  = fs.String("config", "", "config file (default ~/.dataset-viewer/config.yaml)")
		sourceURL   = fs.String("source", "", "override the dataset URL")
		view        = fs.String("view", "", "view to render: table, ratings_graph, year_graph, rating_graph, score_rating_plot")
		average     = fs.String("average", "", "comma separated columns to average")
		printData   = fs.Bool("print", false, "print the whole dataset")
		groupStats  = fs.String("group-stats", "", "group,value columns: print avg/max/min of value per group, e.g. rating,score")
		timeout     = fs.String("timeout", "", "fetch timeout, seconds or duration")
		logLevel    = fs.String("log-level", "", "log level")
		quiet       = fs.Bool("quiet", false, "do not print status lines")
		showVersion = fs.Bool("version", false, "print version and exit")
	)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if *showVersion {
		fmt.Printf("dataset-dump v%s\n", version)
		return 0
	}

	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	resolved, err := config.ResolveConfig(config.ResolveOptions{
		ConfigPath:      *configPath,
		CLIProfile:      *profileName,
		CLISourceURL:    *sourceURL,
		CLIFetchTimeout: *timeout,
		CLILogLevel:     *logLevel,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		return 1
	}

	log := logger.NewConsoleLogger(logger.ParseLevel(resolved.LogLevel.Value))
	log.Debug().
		Str("profile", resolved.Profile.Value).
		Str("profile_source", string(resolved.Profile.Source)).
		Str("url", resolved.SourceURL.Value).
		Str("url_source", string(resolved.SourceURL.Source)).
		Msg("configuration resolved")

	p, err := profile.Lookup(resolved.Profile.Value)
	if err != nil {
		log.Error().Err(err).Msg("unknown profile")
		return 1
	}

	st, err := store.New(p, store.Config{
		SourceURL: resolved.SourceURL.Value,
		Fetcher:   source.NewHTTPFetcher(resolved.Timeout()),
		Logger:    log,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to open store")
		return 1
	}
	defer st.Close()

	presenter := console.NewPresenter(os.Stdout)
	presenter.Quiet = *quiet

	svc := explorer.NewService(st, presenter, explorer.Options{
		FetchTimeout: resolved.Timeout(),
		Logger:       log,
	})

	cmds := commands{
		print:    *printData,
		averages: splitList(*average),
		view:     model.DisplayState(strings.TrimSpace(*view)),
	}
	if *groupStats != "" {
		columns := splitList(*groupStats)
		if len(columns) != 2 {
			fmt.Fprintf(os.Stderr, "-group-stats: want two columns, got %q\n", *groupStats)
			return 2
		}
		cmds.groupBy, cmds.groupValue = columns[0], columns[1]
	}

	return execute(svc, log, resolved, cmds)
}

type commands struct {
	print      bool
	averages   []string
	groupBy    string
	groupValue string
	view       model.DisplayState
}

// execute fetches the dataset and runs the requested commands in order
func execute(svc explorer.Explorer, log zerolog.Logger, resolved config.ResolvedConfig, cmds commands) int {
	ctx, cancel := context.WithTimeout(context.Background(), resolved.Timeout())
	defer cancel()

	if err := svc.Fetch(ctx); err != nil {
		log.Error().Err(err).Msg("fetch failed")
		return 1
	}

	code := 0
	if cmds.print {
		if err := svc.PrintData(os.Stdout); err != nil {
			code = 1
		}
	}
	for _, column := range cmds.averages {
		if err := svc.Average(column); err != nil {
			code = 1
		}
	}
	if cmds.groupBy != "" {
		if err := svc.GroupStats(os.Stdout, cmds.groupBy, cmds.groupValue); err != nil {
			code = 1
		}
	}
	if cmds.view != "" {
		if err := svc.Show(cmds.view); err != nil {
			code = 1
		}
	}
	return code
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, strings.ToLower(part))
		}
	}
	return out
}
