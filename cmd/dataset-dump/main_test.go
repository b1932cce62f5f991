package main

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
)

func TestSplitList(t *testing.T) {
	got := splitList(" Rating, ,score ")
	if len(got) != 2 || got[0] != "rating" || got[1] != "score" {
		t.Errorf("splitList = %v", got)
	}
	if got := splitList(""); len(got) != 0 {
		t.Errorf("splitList(\"\") = %v", got)
	}
}

func TestRun(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"title":"A","year":1995,"score":5,"rating":1},{"title":"B","year":2001,"score":7,"rating":1}]`))
	}))
	defer srv.Close()

	t.Setenv("DATASET_VIEWER_PROFILE", "")
	t.Setenv("DATASET_VIEWER_SOURCE_URL", "")
	cfg := filepath.Join(t.TempDir(), "none.yaml")

	tests := []struct {
		name string
		args []string
		want int
	}{
		{"view", []string{"-config", cfg, "-profile", "movies", "-source", srv.URL + "/movies.json", "-view", "score_rating_plot", "-quiet"}, 0},
		{"average", []string{"-config", cfg, "-profile", "movies", "-source", srv.URL, "-average", "score,rating", "-quiet"}, 0},
		{"group stats", []string{"-config", cfg, "-profile", "movies", "-source", srv.URL, "-group-stats", "rating,score", "-quiet"}, 0},
		{"group stats bad column", []string{"-config", cfg, "-profile", "movies", "-source", srv.URL, "-group-stats", "rating,title", "-quiet"}, 1},
		{"group stats one column", []string{"-config", cfg, "-profile", "movies", "-group-stats", "rating"}, 2},
		{"unknown view", []string{"-config", cfg, "-profile", "movies", "-source", srv.URL, "-view", "ratings_graph", "-quiet"}, 1},
		{"unknown profile", []string{"-config", cfg, "-profile", "books"}, 1},
		{"bad flag", []string{"-nope"}, 2},
		{"version", []string{"-version"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := run(tt.args); got != tt.want {
				t.Errorf("run(%v) = %d, want %d", tt.args, got, tt.want)
			}
		})
	}
}
