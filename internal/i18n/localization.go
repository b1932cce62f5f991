// Package i18n holds the translated texts of the viewer: menu and button
// labels for the GUI and the status messages reported after every command.
package i18n

import (
	"fmt"
	"sync"

	"github.com/ytget/dataset-viewer/internal/model"
)

// Localization manages text translations
type Localization struct {
	// mu guards currentLanguage; status messages are formatted off the UI goroutine
	mu              sync.RWMutex
	currentLanguage string
	texts           map[string]map[string]string
}

// Text keys for localization
const (
	KeyAppTitle      = "app_title"
	KeyFile          = "file"
	KeyFetch         = "fetch"
	KeyClear         = "clear"
	KeyPrint         = "print"
	KeyDarkMode      = "dark_mode"
	KeyLanguage      = "language"
	KeySettings      = "settings"
	KeyExit          = "exit"
	KeySave          = "save"
	KeyCancel        = "cancel"
	KeyDataset       = "dataset"
	KeyFetchTimeout  = "fetch_timeout"
	KeySettingsSaved = "settings_saved"
	KeyRestartNotice = "restart_notice"
	KeyNoFileLoaded  = "no_file_loaded"
	KeyStatusPrefix  = "status_prefix"
	KeyAverageButton = "average_button"

	KeyStatusReady          = "status_ready"
	KeyStatusFetching       = "status_fetching"
	KeyStatusFetched        = "status_fetched"
	KeyStatusAlreadyExists  = "status_already_exists"
	KeyStatusNetwork        = "status_network"
	KeyStatusSchema         = "status_schema"
	KeyStatusBusy           = "status_busy"
	KeyStatusNothingToClear = "status_nothing_to_clear"
	KeyStatusCleared        = "status_cleared"
	KeyStatusPrinted        = "status_printed"
	KeyStatusPrintNoData    = "status_print_no_data"
	KeyStatusAggregateNoDB  = "status_aggregate_no_db"
	KeyStatusAggregateEmpty = "status_aggregate_empty"
	KeyStatusAggregated     = "status_aggregated"
	KeyAverageResult        = "average_result"
	KeyStatusFailed         = "status_failed"

	KeyStatusTablePresent   = "status_table_present"
	KeyStatusTableNoDB      = "status_table_no_db"
	KeyStatusTableDisplayed = "status_table_displayed"
	KeyStatusGraphPresent   = "status_graph_present"
	KeyStatusGraphNoDB      = "status_graph_no_db"
	KeyStatusGraphDisplayed = "status_graph_displayed"
	KeyStatusPlotPresent    = "status_plot_present"
	KeyStatusPlotNoDB       = "status_plot_no_db"
	KeyStatusPlotDisplayed  = "status_plot_displayed"
)

// ViewKey returns the key of the button label for a view
func ViewKey(state model.DisplayState) string {
	return "view_" + state.String()
}

// NewLocalization creates a new localization manager
func NewLocalization() *Localization {
	l := &Localization{
		currentLanguage: "en",
		texts:           make(map[string]map[string]string),
	}

	l.initializeTexts()
	return l
}

// SetLanguage sets the current language
func (l *Localization) SetLanguage(lang string) {
	if lang == "system" {
		lang = "en"
	}

	if _, exists := l.texts[lang]; exists {
		l.mu.Lock()
		l.currentLanguage = lang
		l.mu.Unlock()
	}
}

// GetText returns localized text for the given key
func (l *Localization) GetText(key string) string {
	if texts, exists := l.texts[l.GetCurrentLanguage()]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	// Fallback to English
	if texts, exists := l.texts["en"]; exists {
		if text, found := texts[key]; found {
			return text
		}
	}

	return key
}

// Format returns the localized text for key with args substituted
func (l *Localization) Format(key string, args ...any) string {
	return fmt.Sprintf(l.GetText(key), args...)
}

// GetCurrentLanguage returns the current language code
func (l *Localization) GetCurrentLanguage() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.currentLanguage
}

// GetAvailableLanguages returns map of available languages with their display names
func (l *Localization) GetAvailableLanguages() map[string]string {
	return map[string]string{
		"en": "English",
		"ru": "Русский",
		"pt": "Português",
	}
}

// initializeTexts initializes all text translations
func (l *Localization) initializeTexts() {
	// English texts
	l.texts["en"] = map[string]string{
		KeyAppTitle:      "Dataset Viewer",
		KeyFile:          "Options",
		KeyFetch:         "Fetch Data",
		KeyClear:         "Clear Data",
		KeyPrint:         "Print Data",
		KeyDarkMode:      "Dark Mode",
		KeyLanguage:      "Language",
		KeySettings:      "Settings",
		KeyExit:          "Exit",
		KeySave:          "Save",
		KeyCancel:        "Cancel",
		KeyDataset:       "Dataset",
		KeyFetchTimeout:  "Fetch timeout (seconds)",
		KeySettingsSaved: "Settings saved successfully!",
		KeyRestartNotice: "Restart the application to switch the dataset.",
		KeyNoFileLoaded:  "No file loaded",
		KeyStatusPrefix:  "Status: ",
		KeyAverageButton: "Average of %s Column",

		KeyStatusReady:          "Ready.",
		KeyStatusFetching:       "Fetching data...",
		KeyStatusFetched:        "Fetched data. It took %s seconds.",
		KeyStatusAlreadyExists:  "Cannot fetch data. The database already exists.",
		KeyStatusNetwork:        "Cannot fetch data. The network error.",
		KeyStatusSchema:         "Cannot fetch data. Unexpected data format.",
		KeyStatusBusy:           "Cannot proceed. Data is being fetched.",
		KeyStatusNothingToClear: "No database to clear.",
		KeyStatusCleared:        "Cleared data. It took %s seconds.",
		KeyStatusPrinted:        "Printed data. It took %s seconds.",
		KeyStatusPrintNoData:    "Can't print data. No database present.",
		KeyStatusAggregateNoDB:  "Can't aggregate data. No database present.",
		KeyStatusAggregateEmpty: "Can't aggregate data. The database is empty.",
		KeyStatusAggregated:     "Aggregation done. It took %s seconds.",
		KeyAverageResult:        "Average value of %s column is %.2f.",
		KeyStatusFailed:         "Operation failed: %v",

		KeyStatusTablePresent:   "Can't display table. The table is already present.",
		KeyStatusTableNoDB:      "Can't display table. No database present.",
		KeyStatusTableDisplayed: "Table displayed. It took %s seconds.",
		KeyStatusGraphPresent:   "Can't display graph. The graph is already present.",
		KeyStatusGraphNoDB:      "Can't display graph. No database present.",
		KeyStatusGraphDisplayed: "Graph displayed. It took %s seconds.",
		KeyStatusPlotPresent:    "Can't display plot. The plot is already present.",
		KeyStatusPlotNoDB:       "Can't display plot. No database present.",
		KeyStatusPlotDisplayed:  "Plot displayed. It took %s seconds.",

		ViewKey(model.StateTable):           "Display Table",
		ViewKey(model.StateRatingsGraph):    "Display Graph of Ratings",
		ViewKey(model.StateYearGraph):       "Display Graph of Year",
		ViewKey(model.StateRatingGraph):     "Display Graph of Rating",
		ViewKey(model.StateScoreRatingPlot): "Display Plot of Score for Rating",
	}

	// Russian texts
	l.texts["ru"] = map[string]string{
		KeyAppTitle:      "Просмотр данных",
		KeyFile:          "Опции",
		KeyFetch:         "Загрузить данные",
		KeyClear:         "Очистить данные",
		KeyPrint:         "Вывести данные",
		KeyDarkMode:      "Тёмная тема",
		KeyLanguage:      "Язык",
		KeySettings:      "Настройки",
		KeyExit:          "Выход",
		KeySave:          "Сохранить",
		KeyCancel:        "Отмена",
		KeyDataset:       "Набор данных",
		KeyFetchTimeout:  "Тайм-аут загрузки (сек)",
		KeySettingsSaved: "Настройки успешно сохранены!",
		KeyRestartNotice: "Перезапустите приложение, чтобы сменить набор данных.",
		KeyNoFileLoaded:  "Файл не загружен",
		KeyStatusPrefix:  "Статус: ",
		KeyAverageButton: "Среднее по столбцу %s",

		KeyStatusReady:          "Готово.",
		KeyStatusFetching:       "Загрузка данных...",
		KeyStatusFetched:        "Данные загружены. Заняло %s сек.",
		KeyStatusAlreadyExists:  "Невозможно загрузить данные. База уже существует.",
		KeyStatusNetwork:        "Невозможно загрузить данные. Ошибка сети.",
		KeyStatusSchema:         "Невозможно загрузить данные. Неожиданный формат.",
		KeyStatusBusy:           "Невозможно выполнить. Идёт загрузка данных.",
		KeyStatusNothingToClear: "Нет базы для очистки.",
		KeyStatusCleared:        "Данные очищены. Заняло %s сек.",
		KeyStatusPrinted:        "Данные выведены. Заняло %s сек.",
		KeyStatusPrintNoData:    "Невозможно вывести данные. База отсутствует.",
		KeyStatusAggregateNoDB:  "Невозможно вычислить. База отсутствует.",
		KeyStatusAggregateEmpty: "Невозможно вычислить. База пуста.",
		KeyStatusAggregated:     "Вычисление завершено. Заняло %s сек.",
		KeyAverageResult:        "Среднее значение столбца %s: %.2f.",
		KeyStatusFailed:         "Ошибка операции: %v",

		KeyStatusTablePresent:   "Невозможно показать таблицу. Таблица уже открыта.",
		KeyStatusTableNoDB:      "Невозможно показать таблицу. База отсутствует.",
		KeyStatusTableDisplayed: "Таблица показана. Заняло %s сек.",
		KeyStatusGraphPresent:   "Невозможно показать график. График уже открыт.",
		KeyStatusGraphNoDB:      "Невозможно показать график. База отсутствует.",
		KeyStatusGraphDisplayed: "График показан. Заняло %s сек.",
		KeyStatusPlotPresent:    "Невозможно показать диаграмму. Диаграмма уже открыта.",
		KeyStatusPlotNoDB:       "Невозможно показать диаграмму. База отсутствует.",
		KeyStatusPlotDisplayed:  "Диаграмма показана. Заняло %s сек.",

		ViewKey(model.StateTable):           "Показать таблицу",
		ViewKey(model.StateRatingsGraph):    "График рейтингов",
		ViewKey(model.StateYearGraph):       "График по годам",
		ViewKey(model.StateRatingGraph):     "График по рейтингу",
		ViewKey(model.StateScoreRatingPlot): "Оценка по рейтингу",
	}

	// Portuguese texts
	l.texts["pt"] = map[string]string{
		KeyAppTitle:      "Visualizador de Dados",
		KeyFile:          "Opções",
		KeyFetch:         "Buscar Dados",
		KeyClear:         "Limpar Dados",
		KeyPrint:         "Imprimir Dados",
		KeyDarkMode:      "Modo Escuro",
		KeyLanguage:      "Idioma",
		KeySettings:      "Configurações",
		KeyExit:          "Sair",
		KeySave:          "Salvar",
		KeyCancel:        "Cancelar",
		KeyDataset:       "Conjunto de dados",
		KeyFetchTimeout:  "Tempo limite de busca (segundos)",
		KeySettingsSaved: "Configurações salvas com sucesso!",
		KeyRestartNotice: "Reinicie o aplicativo para trocar o conjunto de dados.",
		KeyNoFileLoaded:  "Nenhum arquivo carregado",
		KeyStatusPrefix:  "Status: ",
		KeyAverageButton: "Média da Coluna %s",

		KeyStatusReady:          "Pronto.",
		KeyStatusFetching:       "Buscando dados...",
		KeyStatusFetched:        "Dados buscados. Levou %s segundos.",
		KeyStatusAlreadyExists:  "Não é possível buscar dados. O banco já existe.",
		KeyStatusNetwork:        "Não é possível buscar dados. Erro de rede.",
		KeyStatusSchema:         "Não é possível buscar dados. Formato inesperado.",
		KeyStatusBusy:           "Não é possível continuar. Dados sendo buscados.",
		KeyStatusNothingToClear: "Nenhum banco para limpar.",
		KeyStatusCleared:        "Dados limpos. Levou %s segundos.",
		KeyStatusPrinted:        "Dados impressos. Levou %s segundos.",
		KeyStatusPrintNoData:    "Não é possível imprimir. Nenhum banco presente.",
		KeyStatusAggregateNoDB:  "Não é possível agregar. Nenhum banco presente.",
		KeyStatusAggregateEmpty: "Não é possível agregar. O banco está vazio.",
		KeyStatusAggregated:     "Agregação concluída. Levou %s segundos.",
		KeyAverageResult:        "Valor médio da coluna %s é %.2f.",
		KeyStatusFailed:         "Falha na operação: %v",

		KeyStatusTablePresent:   "Não é possível exibir a tabela. A tabela já está presente.",
		KeyStatusTableNoDB:      "Não é possível exibir a tabela. Nenhum banco presente.",
		KeyStatusTableDisplayed: "Tabela exibida. Levou %s segundos.",
		KeyStatusGraphPresent:   "Não é possível exibir o gráfico. O gráfico já está presente.",
		KeyStatusGraphNoDB:      "Não é possível exibir o gráfico. Nenhum banco presente.",
		KeyStatusGraphDisplayed: "Gráfico exibido. Levou %s segundos.",
		KeyStatusPlotPresent:    "Não é possível exibir o diagrama. O diagrama já está presente.",
		KeyStatusPlotNoDB:       "Não é possível exibir o diagrama. Nenhum banco presente.",
		KeyStatusPlotDisplayed:  "Diagrama exibido. Levou %s segundos.",

		ViewKey(model.StateTable):           "Exibir Tabela",
		ViewKey(model.StateRatingsGraph):    "Gráfico de Avaliações",
		ViewKey(model.StateYearGraph):       "Gráfico por Ano",
		ViewKey(model.StateRatingGraph):     "Gráfico por Avaliação",
		ViewKey(model.StateScoreRatingPlot): "Pontuação por Avaliação",
	}
}
