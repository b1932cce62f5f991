package ui

import (
	"image"
	"io"
	"net/url"
	"os"
	"sort"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
	"github.com/rs/zerolog"

	"github.com/ytget/dataset-viewer/internal/config"
	"github.com/ytget/dataset-viewer/internal/display"
	"github.com/ytget/dataset-viewer/internal/explorer"
	"github.com/ytget/dataset-viewer/internal/i18n"
	"github.com/ytget/dataset-viewer/internal/logger"
	"github.com/ytget/dataset-viewer/internal/model"
	"github.com/ytget/dataset-viewer/internal/store"
)

// Options configures NewRootUI
type Options struct {
	Logger zerolog.Logger

	// PrintOutput receives Print Data, stdout when nil
	PrintOutput io.Writer
}

// commandButton is a sidebar button whose label is rebuilt on language change
type commandButton struct {
	button *widget.Button
	label  func() string
}

// RootUI represents the main UI structure
type RootUI struct {
	window       fyne.Window
	app          fyne.App
	explorer     *explorer.Service
	settings     *config.Settings
	localization *i18n.Localization
	mobile       *MobileUI
	log          zerolog.Logger
	printOut     io.Writer

	titleLabel     *widget.Label
	aggregateLabel *widget.Label
	statusLabel    *widget.Label
	fetchProgress  *widget.ProgressBarInfinite
	content        *fyne.Container
	buttons        []commandButton

	// guarded by mu, written from presenter calls on any goroutine
	mu        sync.Mutex
	sourceSet bool
	source    string
	darkMode  bool
	rerender  func()
}

var _ display.Presenter = (*RootUI)(nil)

// NewRootUI creates and initializes the main UI for the given store
func NewRootUI(window fyne.Window, app fyne.App, st store.DataStore, opts Options) *RootUI {
	settings := config.NewSettings(app)

	localization := i18n.NewLocalization()
	localization.SetLanguage(settings.GetLanguage())

	if opts.PrintOutput == nil {
		opts.PrintOutput = os.Stdout
	}

	ui := &RootUI{
		window:       window,
		app:          app,
		settings:     settings,
		localization: localization,
		mobile:       NewMobileUI(),
		log:          logger.For(opts.Logger, "ui"),
		printOut:     opts.PrintOutput,
		darkMode:     settings.GetDarkMode(),
	}

	ui.explorer = explorer.NewService(st, ui, explorer.Options{
		FetchTimeout: settings.GetFetchTimeout(),
		Texts:        localization,
		Logger:       opts.Logger,
	})

	app.Settings().SetTheme(NewCompactTheme(ui.darkMode))
	window.SetTitle(localization.GetText(i18n.KeyAppTitle))

	ui.setupUI()
	return ui
}

// Explorer returns the command service driven by the UI
func (ui *RootUI) Explorer() *explorer.Service {
	return ui.explorer
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI() {
	ui.createMenu()

	ui.titleLabel = widget.NewLabel(ui.localization.GetText(i18n.KeyNoFileLoaded))
	ui.titleLabel.Alignment = fyne.TextAlignCenter
	ui.titleLabel.TextStyle = fyne.TextStyle{Bold: true}

	ui.aggregateLabel = widget.NewLabel("")
	ui.aggregateLabel.Alignment = fyne.TextAlignCenter

	ui.statusLabel = widget.NewLabel("")
	ui.statusLabel.Truncation = fyne.TextTruncateEllipsis
	ui.statusLabel.SetText(ui.statusText(ui.localization.GetText(i18n.KeyStatusReady)))

	ui.fetchProgress = widget.NewProgressBarInfinite()
	ui.fetchProgress.Stop()
	ui.fetchProgress.Hide()

	ui.content = container.NewStack()

	ui.createButtons()
	objects := make([]fyne.CanvasObject, len(ui.buttons))
	for i, b := range ui.buttons {
		objects[i] = b.button
	}
	commands := ui.mobile.CommandPanel(objects...)

	top := container.NewVBox(ui.titleLabel, ui.aggregateLabel)
	bottom := container.NewBorder(nil, nil, nil, ui.fetchProgress, ui.statusLabel)

	var body fyne.CanvasObject
	if ui.mobile.IsMobileDevice() {
		body = container.NewBorder(commands, nil, nil, nil, ui.content)
	} else {
		body = container.NewBorder(nil, nil, container.NewPadded(commands), nil, ui.content)
	}

	ui.window.SetContent(container.NewBorder(top, bottom, nil, nil, body))
}

// createButtons builds the average and view buttons of the active profile
func (ui *RootUI) createButtons() {
	p := ui.explorer.Profile()
	ui.buttons = nil

	for _, name := range p.Averages {
		column := name
		title := column
		if c, ok := p.Column(column); ok {
			title = c.Title
		}
		label := func() string { return ui.localization.Format(i18n.KeyAverageButton, title) }
		btn := widget.NewButton(label(), func() { ui.explorer.Average(column) })
		ui.buttons = append(ui.buttons, commandButton{button: btn, label: label})
	}

	for _, view := range p.Views {
		state := view.State
		label := func() string { return ui.localization.GetText(i18n.ViewKey(state)) }
		btn := widget.NewButton(label(), func() { ui.explorer.Show(state) })
		ui.buttons = append(ui.buttons, commandButton{button: btn, label: label})
	}
}

// createMenu creates the application menu
func (ui *RootUI) createMenu() {
	fetchItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeyFetch), ui.onFetch)
	clearItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeyClear), ui.onClear)
	printItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeyPrint), ui.onPrint)

	darkItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeyDarkMode), ui.onToggleDarkMode)
	darkItem.Checked = ui.isDarkMode()

	settingsItem := fyne.NewMenuItem(IconSettings+" "+ui.localization.GetText(i18n.KeySettings), ui.onShowSettings)

	exitItem := fyne.NewMenuItem(ui.localization.GetText(i18n.KeyExit), ui.app.Quit)
	exitItem.IsQuit = true

	// Language submenu
	languageMenu := fyne.NewMenu(IconLanguage + " " + ui.localization.GetText(i18n.KeyLanguage))

	availableLanguages := ui.localization.GetAvailableLanguages()
	codes := make([]string, 0, len(availableLanguages))
	for code := range availableLanguages {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for _, code := range codes {
		langCode := code
		langItem := fyne.NewMenuItem(availableLanguages[code], func() {
			ui.onLanguageChange(langCode)
		})
		if ui.localization.GetCurrentLanguage() == code {
			langItem.Checked = true
		}
		languageMenu.Items = append(languageMenu.Items, langItem)
	}

	mainMenu := fyne.NewMainMenu(
		fyne.NewMenu(ui.localization.GetText(i18n.KeyFile),
			fetchItem,
			clearItem,
			printItem,
			fyne.NewMenuItemSeparator(),
			darkItem,
			settingsItem,
			fyne.NewMenuItemSeparator(),
			exitItem,
		),
		languageMenu,
	)

	ui.window.SetMainMenu(mainMenu)
}

func (ui *RootUI) onFetch() {
	ui.fetchProgress.Show()
	ui.fetchProgress.Start()
	ui.explorer.FetchAsync(func(err error) {
		if err != nil {
			ui.log.Warn().Err(err).Msg("fetch failed")
		}
		fyne.Do(func() {
			ui.fetchProgress.Stop()
			ui.fetchProgress.Hide()
		})
	})
}

func (ui *RootUI) onClear() {
	ui.explorer.Clear()
}

func (ui *RootUI) onPrint() {
	ui.explorer.PrintData(ui.printOut)
}

// onToggleDarkMode switches the palette and redraws a mounted chart
func (ui *RootUI) onToggleDarkMode() {
	ui.mu.Lock()
	ui.darkMode = !ui.darkMode
	dark := ui.darkMode
	rerender := ui.rerender
	ui.mu.Unlock()

	ui.settings.SetDarkMode(dark)
	ui.app.Settings().SetTheme(NewCompactTheme(dark))
	if rerender != nil {
		rerender()
	}
	ui.createMenu()
}

// onLanguageChange handles language change
func (ui *RootUI) onLanguageChange(langCode string) {
	ui.localization.SetLanguage(langCode)
	ui.settings.SetLanguage(langCode)

	ui.refreshUITexts()
	ui.createMenu()
}

// refreshUITexts updates all UI texts with current language
func (ui *RootUI) refreshUITexts() {
	ui.window.SetTitle(ui.localization.GetText(i18n.KeyAppTitle))

	for _, b := range ui.buttons {
		b.button.SetText(b.label())
	}

	ui.mu.Lock()
	sourceSet, source := ui.sourceSet, ui.source
	ui.mu.Unlock()

	if !sourceSet {
		ui.titleLabel.SetText(ui.localization.GetText(i18n.KeyNoFileLoaded))
	} else {
		ui.titleLabel.SetText(source)
	}
	ui.explorer.RefreshTexts()
}

// onShowSettings shows the settings dialog
func (ui *RootUI) onShowSettings() {
	NewSettingsDialog(ui.settings, ui.localization, ui.window, ui.onSettingsSaved).Show()
}

func (ui *RootUI) onSettingsSaved() {
	ui.explorer.SetFetchTimeout(ui.settings.GetFetchTimeout())
	ui.onLanguageChange(ui.settings.GetLanguage())
}

// onOpenLink opens a record link in the browser
func (ui *RootUI) onOpenLink(link string) {
	u, err := url.Parse(link)
	if err != nil {
		ui.log.Warn().Err(err).Str("link", link).Msg("invalid link")
		return
	}
	if err := ui.app.OpenURL(u); err != nil {
		ui.log.Warn().Err(err).Str("link", link).Msg("cannot open link")
	}
}

func (ui *RootUI) isDarkMode() bool {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	return ui.darkMode
}

func (ui *RootUI) statusText(message string) string {
	return ui.localization.GetText(i18n.KeyStatusPrefix) + message
}

// mount replaces the content area with obj
func (ui *RootUI) mount(obj fyne.CanvasObject, rerender func()) {
	ui.mu.Lock()
	ui.rerender = rerender
	ui.mu.Unlock()

	fyne.Do(func() {
		ui.content.Objects = []fyne.CanvasObject{obj}
		ui.content.Refresh()
	})
}

func chartImage(img image.Image) *canvas.Image {
	c := canvas.NewImageFromImage(img)
	c.FillMode = canvas.ImageFillContain
	c.SetMinSize(fyne.NewSize(ChartMinWidth, ChartMinHeight))
	return c
}

// RenderTable mounts a table of records
func (ui *RootUI) RenderTable(columns []string, records []model.Record) {
	ui.mount(newDataTable(columns, records, ui.onOpenLink), nil)
}

// RenderBarChart mounts a bar chart
func (ui *RootUI) RenderBarChart(title, xLabel, yLabel string, buckets []model.Bucket) {
	img := chartImage(renderBarChart(title, xLabel, yLabel, buckets, PaletteFor(ui.isDarkMode()), ui.log))
	ui.mount(img, func() {
		next := renderBarChart(title, xLabel, yLabel, buckets, PaletteFor(ui.isDarkMode()), ui.log)
		fyne.Do(func() {
			img.Image = next
			img.Refresh()
		})
	})
}

// RenderLineChart mounts a line chart
func (ui *RootUI) RenderLineChart(title, xLabel, yLabel string, series []model.Series) {
	img := chartImage(renderLineChart(title, xLabel, yLabel, series, PaletteFor(ui.isDarkMode()), ui.log))
	ui.mount(img, func() {
		next := renderLineChart(title, xLabel, yLabel, series, PaletteFor(ui.isDarkMode()), ui.log)
		fyne.Do(func() {
			img.Image = next
			img.Refresh()
		})
	})
}

// ShowStatus replaces the status line
func (ui *RootUI) ShowStatus(message string) {
	text := ui.statusText(message)
	fyne.Do(func() {
		ui.statusLabel.SetText(text)
	})
}

// ShowAggregate replaces the aggregate line
func (ui *RootUI) ShowAggregate(message string) {
	fyne.Do(func() {
		ui.aggregateLabel.SetText(message)
	})
}

// SetSourceLabel shows the dataset name as the title
func (ui *RootUI) SetSourceLabel(label string) {
	ui.mu.Lock()
	ui.source = label
	ui.sourceSet = label != ui.localization.GetText(i18n.KeyNoFileLoaded)
	ui.mu.Unlock()

	fyne.Do(func() {
		ui.titleLabel.SetText(label)
	})
}

// UnmountActiveView clears the content area
func (ui *RootUI) UnmountActiveView() {
	ui.mu.Lock()
	ui.rerender = nil
	ui.mu.Unlock()

	fyne.Do(func() {
		ui.content.Objects = nil
		ui.content.Refresh()
	})
}
