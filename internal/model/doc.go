package model

// Package model defines domain data structures shared across the app: dataset
// records (recipes and movies), display states, chart buckets and series, and
// the error values every layer reports through the status line.
