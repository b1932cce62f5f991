package model

import "errors"

// Errors reported by the data store, aggregator and display machine. All of
// them are recoverable and end up as a one-line status message.
var (
	ErrAlreadyExists  = errors.New("dataset already exists")
	ErrNothingToClear = errors.New("no dataset to clear")
	ErrNoData         = errors.New("no dataset present")
	ErrNetwork        = errors.New("network error")
	ErrSchema         = errors.New("schema error")
	ErrEmptyDataset   = errors.New("dataset is empty")
	ErrEmptyInput     = errors.New("empty input")
	ErrAlreadyMounted = errors.New("view already mounted")
	ErrBusy           = errors.New("fetch in progress")
	ErrUnknownColumn  = errors.New("unknown column")
	ErrUnknownView    = errors.New("unknown view")
	ErrUnknownProfile = errors.New("unknown dataset profile")
)
