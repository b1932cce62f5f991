package ui

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/dataset-viewer/internal/config"
	"github.com/ytget/dataset-viewer/internal/model"
	"github.com/ytget/dataset-viewer/internal/profile"
	"github.com/ytget/dataset-viewer/internal/store"
)

const recipesJSON = `[
	{"recipe_name": "Pancakes", "servings": 4, "rating": 4.5, "url": "https://example.com/pancakes"},
	{"recipe_name": "Soup", "servings": 6, "rating": 1.62, "url": "https://example.com/soup"}
]`

type staticFetcher []byte

func (f staticFetcher) Fetch(ctx context.Context, rawURL string) ([]byte, error) {
	return f, nil
}

func newTestUI(t *testing.T, p *profile.Profile) (*RootUI, *bytes.Buffer) {
	t.Helper()
	app := test.NewApp()
	t.Cleanup(app.Quit)

	st, err := store.New(p, store.Config{Fetcher: staticFetcher(recipesJSON), Logger: zerolog.Nop()})
	if err != nil {
		t.Fatalf("store.New: %v", err)
	}
	t.Cleanup(func() { st.Close() })

	var out bytes.Buffer
	w := test.NewWindow(nil)
	ui := NewRootUI(w, app, st, Options{Logger: zerolog.Nop(), PrintOutput: &out})
	return ui, &out
}

func mounted(ui *RootUI) fyne.CanvasObject {
	if len(ui.content.Objects) == 0 {
		return nil
	}
	return ui.content.Objects[0]
}

func TestButtonsFollowProfile(t *testing.T) {
	ui, _ := newTestUI(t, profile.Recipes())

	want := []string{
		"Average of Rating Column",
		"Average of Servings Column",
		"Display Table",
		"Display Graph of Ratings",
	}
	if len(ui.buttons) != len(want) {
		t.Fatalf("Expected %d buttons, got %d", len(want), len(ui.buttons))
	}
	for i, text := range want {
		if got := ui.buttons[i].button.Text; got != text {
			t.Errorf("button %d = %q, want %q", i, got, text)
		}
	}

	movies, _ := newTestUI(t, profile.Movies())
	if len(movies.buttons) != 6 {
		t.Errorf("Expected 6 movie buttons, got %d", len(movies.buttons))
	}
}

func TestInitialLabels(t *testing.T) {
	ui, _ := newTestUI(t, profile.Recipes())

	if ui.titleLabel.Text != "No file loaded" {
		t.Errorf("title = %q", ui.titleLabel.Text)
	}
	if ui.statusLabel.Text != "Status: Ready." {
		t.Errorf("status = %q", ui.statusLabel.Text)
	}
	if mounted(ui) != nil {
		t.Error("No view should be mounted initially")
	}
}

func TestFetchShowClear(t *testing.T) {
	ui, _ := newTestUI(t, profile.Recipes())
	svc := ui.Explorer()

	if err := svc.Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if ui.titleLabel.Text != "recipes.json" {
		t.Errorf("title = %q", ui.titleLabel.Text)
	}
	if !strings.HasPrefix(ui.statusLabel.Text, "Status: Fetched data. It took ") {
		t.Errorf("status = %q", ui.statusLabel.Text)
	}

	if err := svc.Show(model.StateTable); err != nil {
		t.Fatalf("Show table: %v", err)
	}
	if _, ok := mounted(ui).(*widget.Table); !ok {
		t.Fatalf("Expected a table, got %T", mounted(ui))
	}

	if err := svc.Show(model.StateRatingsGraph); err != nil {
		t.Fatalf("Show graph: %v", err)
	}
	if _, ok := mounted(ui).(*canvas.Image); !ok {
		t.Fatalf("Expected a chart image, got %T", mounted(ui))
	}
	if len(ui.content.Objects) != 1 {
		t.Errorf("Expected exactly one mounted view, got %d", len(ui.content.Objects))
	}

	if err := svc.Average("rating"); err != nil {
		t.Fatalf("Average: %v", err)
	}
	if ui.aggregateLabel.Text != "Average value of Rating column is 3.06." {
		t.Errorf("aggregate = %q", ui.aggregateLabel.Text)
	}

	if err := svc.Clear(); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if mounted(ui) != nil {
		t.Error("Clear should unmount the view")
	}
	if ui.titleLabel.Text != "No file loaded" {
		t.Errorf("title after clear = %q", ui.titleLabel.Text)
	}
	if ui.aggregateLabel.Text != "" {
		t.Errorf("aggregate after clear = %q", ui.aggregateLabel.Text)
	}
}

func TestPrintMenuAction(t *testing.T) {
	ui, out := newTestUI(t, profile.Recipes())

	ui.onPrint()
	if ui.statusLabel.Text != "Status: Can't print data. No database present." {
		t.Errorf("status = %q", ui.statusLabel.Text)
	}

	if err := ui.Explorer().Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	ui.onPrint()
	if !strings.Contains(out.String(), "Pancakes") {
		t.Errorf("printed output missing rows: %q", out.String())
	}
}

func TestToggleDarkMode(t *testing.T) {
	ui, _ := newTestUI(t, profile.Recipes())
	settings := config.NewSettings(ui.app)

	if err := ui.Explorer().Fetch(context.Background()); err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if err := ui.Explorer().Show(model.StateRatingsGraph); err != nil {
		t.Fatalf("Show: %v", err)
	}
	img := mounted(ui).(*canvas.Image)
	before := img.Image

	ui.onToggleDarkMode()
	if !settings.GetDarkMode() {
		t.Error("Dark mode should be stored in settings")
	}
	if img.Image == before {
		t.Error("Chart should be redrawn with the dark palette")
	}

	ui.onToggleDarkMode()
	if settings.GetDarkMode() {
		t.Error("Second toggle should turn dark mode off")
	}
}

func TestLanguageChange(t *testing.T) {
	ui, _ := newTestUI(t, profile.Recipes())

	ui.onLanguageChange("ru")
	if got := ui.buttons[2].button.Text; got != "Показать таблицу" {
		t.Errorf("table button = %q", got)
	}
	if !strings.HasPrefix(ui.statusLabel.Text, "Статус: ") {
		t.Errorf("status = %q", ui.statusLabel.Text)
	}
	if ui.titleLabel.Text != "Файл не загружен" {
		t.Errorf("title = %q", ui.titleLabel.Text)
	}
	if got := config.NewSettings(ui.app).GetLanguage(); got != "ru" {
		t.Errorf("stored language = %q", got)
	}
}

func TestLanguageChangeTranslatesStatus(t *testing.T) {
	ui, _ := newTestUI(t, profile.Recipes())

	ui.onPrint()
	if ui.statusLabel.Text != "Status: Can't print data. No database present." {
		t.Fatalf("status = %q", ui.statusLabel.Text)
	}

	ui.onLanguageChange("ru")
	if ui.statusLabel.Text != "Статус: Невозможно вывести данные. База отсутствует." {
		t.Errorf("status after language change = %q", ui.statusLabel.Text)
	}

	ui.onLanguageChange("en")
	if ui.statusLabel.Text != "Status: Can't print data. No database present." {
		t.Errorf("status after switching back = %q", ui.statusLabel.Text)
	}
}
