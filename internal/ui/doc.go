// Package ui contains the Fyne desktop interface of the viewer. RootUI is the
// presenter of the explorer service: it owns the menu, the per-dataset
// buttons, the status lines and the content area where one table or chart is
// mounted at a time. Presenter methods may be called from any goroutine.
package ui
