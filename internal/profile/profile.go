// Package profile describes the fixed dataset kinds the viewer understands:
// where each one is fetched from, its table schema, how a JSON object is
// decoded into a record, which columns can be averaged and which views it offers.
package profile

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/ytget/dataset-viewer/internal/model"
)

// Profile names
const (
	NameRecipes = "recipes"
	NameMovies  = "movies"
)

// Default source URLs
const (
	RecipesSourceURL = "https://raw.githubusercontent.com/algolia/datasets/master/recipes/recipes.json"
	MoviesSourceURL  = "https://raw.githubusercontent.com/algolia/datasets/master/movies/movies.json"
)

// View is one visualization offered by a profile
type View struct {
	State model.DisplayState

	// Build computes the visualization from the dataset records
	Build func(records []model.Record) (model.Visualization, error)
}

// Profile is the fixed schema and view set of one dataset kind
type Profile struct {
	Name      string
	SourceURL string
	Table     string
	Columns   []model.Column

	// NumberRows adds a leading ID column to the table view
	NumberRows bool

	// Averages lists the numeric columns offered for averaging
	Averages []string

	Views []View

	newRecord func() model.Record
	decode    func(raw json.RawMessage) (model.Record, error)
}

// NewRecord returns an empty record pointer suitable for scanning a row
func (p *Profile) NewRecord() model.Record {
	return p.newRecord()
}

// Decode parses one JSON object into a record, checking required keys
func (p *Profile) Decode(raw json.RawMessage) (model.Record, error) {
	return p.decode(raw)
}

// View returns the view for a display state
func (p *Profile) View(state model.DisplayState) (View, error) {
	for _, v := range p.Views {
		if v.State == state {
			return v, nil
		}
	}
	return View{}, fmt.Errorf("%s: %w", state, model.ErrUnknownView)
}

// Column returns a column by name
func (p *Profile) Column(name string) (model.Column, bool) {
	for _, c := range p.Columns {
		if c.Name == name {
			return c, true
		}
	}
	return model.Column{}, false
}

// ColumnNames returns the SQL column names in order
func (p *Profile) ColumnNames() []string {
	names := make([]string, len(p.Columns))
	for i, c := range p.Columns {
		names[i] = c.Name
	}
	return names
}

// Headers returns table headers, including the ID column when rows are numbered
func (p *Profile) Headers() []string {
	headers := make([]string, 0, len(p.Columns)+1)
	if p.NumberRows {
		headers = append(headers, "ID")
	}
	for _, c := range p.Columns {
		headers = append(headers, c.Title)
	}
	return headers
}

// CreateTableSQL returns the DDL for the profile table
func (p *Profile) CreateTableSQL() string {
	defs := make([]string, len(p.Columns))
	for i, c := range p.Columns {
		defs[i] = c.Name + " " + c.SQLType
	}
	return fmt.Sprintf("CREATE TABLE %s (%s)", p.Table, strings.Join(defs, ", "))
}

// InsertSQL returns a named insert statement for sqlx
func (p *Profile) InsertSQL() string {
	names := p.ColumnNames()
	params := make([]string, len(names))
	for i, n := range names {
		params[i] = ":" + n
	}
	return fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		p.Table, strings.Join(names, ", "), strings.Join(params, ", "))
}

// SelectSQL returns the query listing all rows in insertion order
func (p *Profile) SelectSQL() string {
	return fmt.Sprintf("SELECT %s FROM %s ORDER BY rowid", strings.Join(p.ColumnNames(), ", "), p.Table)
}

var registry = map[string]*Profile{
	NameRecipes: Recipes(),
	NameMovies:  Movies(),
}

// Lookup returns the profile registered under name
func Lookup(name string) (*Profile, error) {
	p, ok := registry[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, model.ErrUnknownProfile)
	}
	return p, nil
}

// Names returns registered profile names sorted
func Names() []string {
	names := make([]string, 0, len(registry))
	for n := range registry {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// requireKeys fails with ErrSchema when one of keys is absent or null
func requireKeys(obj map[string]json.RawMessage, keys ...string) error {
	for _, k := range keys {
		v, ok := obj[k]
		if !ok || string(v) == "null" {
			return fmt.Errorf("missing key %q: %w", k, model.ErrSchema)
		}
	}
	return nil
}

// decodeObject checks required keys and unmarshals raw into dst
func decodeObject(raw json.RawMessage, dst any, keys ...string) error {
	var obj map[string]json.RawMessage
	if err := json.Unmarshal(raw, &obj); err != nil {
		return fmt.Errorf("not an object: %w", model.ErrSchema)
	}
	if err := requireKeys(obj, keys...); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return fmt.Errorf("%v: %w", err, model.ErrSchema)
	}
	return nil
}

func tableView(p *Profile) View {
	return View{
		State: model.StateTable,
		Build: func(records []model.Record) (model.Visualization, error) {
			return model.Visualization{
				Kind:    model.VisualizationTable,
				Columns: p.Headers(),
				Records: records,
			}, nil
		},
	}
}
