package ui

import (
	"sort"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/dataset-viewer/internal/config"
	"github.com/ytget/dataset-viewer/internal/i18n"
)

// SettingsDialog represents the settings configuration dialog
type SettingsDialog struct {
	settings     *config.Settings
	localization *i18n.Localization
	window       fyne.Window
	dialog       *dialog.ConfirmDialog
	onSaved      func()

	// UI components
	profileSelect  *widget.Select
	timeoutEntry   *widget.Entry
	languageSelect *widget.Select

	// language display name -> code
	languageCodes map[string]string
}

// NewSettingsDialog creates a new settings dialog. onSaved runs after the
// settings were stored.
func NewSettingsDialog(settings *config.Settings, localization *i18n.Localization, window fyne.Window, onSaved func()) *SettingsDialog {
	sd := &SettingsDialog{
		settings:      settings,
		localization:  localization,
		window:        window,
		onSaved:       onSaved,
		languageCodes: make(map[string]string),
	}

	sd.createUI()
	return sd
}

// Show displays the settings dialog
func (sd *SettingsDialog) Show() {
	sd.loadCurrentSettings()
	sd.dialog.Show()
}

// createUI creates the settings dialog UI
func (sd *SettingsDialog) createUI() {
	t := sd.localization.GetText

	sd.profileSelect = widget.NewSelect(sd.settings.GetProfileOptions(), nil)

	sd.timeoutEntry = widget.NewEntry()
	sd.timeoutEntry.SetPlaceHolder(strconv.Itoa(config.MinFetchTimeout) + "-" + strconv.Itoa(config.MaxFetchTimeout))

	languageOptions := []string{}
	for code, name := range sd.settings.GetLanguageOptions() {
		sd.languageCodes[name] = code
		languageOptions = append(languageOptions, name)
	}
	sort.Strings(languageOptions)
	sd.languageSelect = widget.NewSelect(languageOptions, nil)

	form := container.NewVBox(
		widget.NewLabel(t(i18n.KeyDataset)+":"),
		sd.profileSelect,
		widget.NewLabel(t(i18n.KeyRestartNotice)),

		widget.NewSeparator(),

		widget.NewLabel(t(i18n.KeyFetchTimeout)+":"),
		sd.timeoutEntry,

		widget.NewLabel(t(i18n.KeyLanguage)+":"),
		sd.languageSelect,
	)

	sd.dialog = dialog.NewCustomConfirm(
		t(i18n.KeySettings),
		t(i18n.KeySave),
		t(i18n.KeyCancel),
		form,
		sd.onSave,
		sd.window,
	)

	sd.dialog.Resize(fyne.NewSize(420, 320))
}

// loadCurrentSettings loads current settings into the UI
func (sd *SettingsDialog) loadCurrentSettings() {
	sd.profileSelect.SetSelected(sd.settings.GetProfile())
	sd.timeoutEntry.SetText(strconv.Itoa(sd.settings.GetFetchTimeoutSeconds()))
	sd.languageSelect.SetSelected(sd.settings.GetLanguageOptions()[sd.settings.GetLanguage()])
}

// onSave handles saving the settings
func (sd *SettingsDialog) onSave(confirmed bool) {
	if !confirmed {
		return
	}
	sd.save()

	dialog.ShowInformation(sd.localization.GetText(i18n.KeySettings), sd.localization.GetText(i18n.KeySettingsSaved), sd.window)
	if sd.onSaved != nil {
		sd.onSaved()
	}
}

// save stores the dialog values
func (sd *SettingsDialog) save() {
	if sd.profileSelect.Selected != "" {
		sd.settings.SetProfile(sd.profileSelect.Selected)
	}

	if text := sd.timeoutEntry.Text; text != "" {
		if seconds, err := strconv.Atoi(text); err == nil {
			sd.settings.SetFetchTimeoutSeconds(seconds)
		}
	}

	if code, ok := sd.languageCodes[sd.languageSelect.Selected]; ok {
		sd.settings.SetLanguage(code)
	}
}
