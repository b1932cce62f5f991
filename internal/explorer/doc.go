// Package explorer implements the command surface of the viewer: fetching and
// clearing the dataset, printing it, averaging columns and mounting views.
// Every command ends with a one-line status reported through the presenter.
package explorer
