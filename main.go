package main

import (
	"fmt"
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	"github.com/ytget/dataset-viewer/internal/config"
	"github.com/ytget/dataset-viewer/internal/logger"
	"github.com/ytget/dataset-viewer/internal/profile"
	"github.com/ytget/dataset-viewer/internal/source"
	"github.com/ytget/dataset-viewer/internal/store"
	"github.com/ytget/dataset-viewer/internal/ui"
)

// Version is set during build via -ldflags "-X main.version=X.Y.Z"
var version = "dev"

const (
	AppID   = "com.ytget.dataset-viewer"
	AppName = "Dataset Viewer"

	WindowWidth  = 1000
	WindowHeight = 640
)

func main() {
	if err := config.LoadEnvFile(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}

	// Create new Fyne app
	myApp := app.NewWithID(AppID)
	settings := config.NewSettings(myApp)

	resolved, err := config.ResolveConfig(config.ResolveOptions{
		DefaultProfile: settings.GetProfile(),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.NewConsoleLogger(logger.ParseLevel(resolved.LogLevel.Value))
	log.Info().
		Str("version", version).
		Str("profile", resolved.Profile.Value).
		Str("source", resolved.SourceURL.Value).
		Msgf("%s starting", AppName)

	p, err := profile.Lookup(resolved.Profile.Value)
	if err != nil {
		log.Fatal().Err(err).Msg("unknown profile")
	}

	// Settings hold the timeout edited in the UI; the resolver only overrides
	// it when set explicitly.
	timeout := settings.GetFetchTimeout()
	if resolved.FetchTimeout.Source != config.SourceDefault {
		timeout = resolved.Timeout()
	}

	st, err := store.New(p, store.Config{
		SourceURL: resolved.SourceURL.Value,
		Fetcher:   source.NewHTTPFetcher(timeout),
		Logger:    log,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open store")
	}
	defer st.Close()

	// The title is replaced by the localized one in NewRootUI
	myWindow := myApp.NewWindow(AppName)
	myWindow.Resize(fyne.NewSize(WindowWidth, WindowHeight))

	// Create and setup UI
	root := ui.NewRootUI(myWindow, myApp, st, ui.Options{Logger: log})
	root.Explorer().SetFetchTimeout(timeout)

	// Show and run
	myWindow.ShowAndRun()
}
