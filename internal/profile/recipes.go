package profile

import (
	"encoding/json"

	"github.com/ytget/dataset-viewer/internal/aggregate"
	"github.com/ytget/dataset-viewer/internal/model"
)

// RecipeRatingRanges are the rating buckets of the recipes bar chart
var RecipeRatingRanges = aggregate.MustParseRanges(
	"0.0-0.5", "0.5-1.0", "1.1-1.6", "1.6-2.0", "2.1-2.6",
	"2.6-3.0", "3.1-3.6", "3.6-4.0", "4.1-4.6", "4.6-5.0",
)

type recipeJSON struct {
	Name     string  `json:"recipe_name"`
	Servings int     `json:"servings"`
	Rating   float64 `json:"rating"`
	URL      string  `json:"url"`
}

// Recipes returns the recipes profile
func Recipes() *Profile {
	p := &Profile{
		Name:      NameRecipes,
		SourceURL: RecipesSourceURL,
		Table:     "recipes",
		Columns: []model.Column{
			{Name: "name", Title: "Name", SQLType: "TEXT"},
			{Name: "servings", Title: "Servings", SQLType: "INTEGER", Numeric: true},
			{Name: "rating", Title: "Rating", SQLType: "REAL", Numeric: true},
			{Name: "url", Title: "Url", SQLType: "TEXT"},
		},
		Averages:  []string{"rating", "servings"},
		newRecord: func() model.Record { return &model.Recipe{} },
		decode:    decodeRecipe,
	}
	p.Views = []View{
		tableView(p),
		{
			State: model.StateRatingsGraph,
			Build: buildRecipeRatings,
		},
	}
	return p
}

func decodeRecipe(raw json.RawMessage) (model.Record, error) {
	var r recipeJSON
	if err := decodeObject(raw, &r, "recipe_name", "servings", "rating", "url"); err != nil {
		return nil, err
	}
	return &model.Recipe{Name: r.Name, Servings: r.Servings, Rating: r.Rating, URL: r.URL}, nil
}

func buildRecipeRatings(records []model.Record) (model.Visualization, error) {
	return model.Visualization{
		Kind:    model.VisualizationBar,
		Title:   "Distribution of Ratings",
		XLabel:  "Rating",
		YLabel:  "Count",
		Buckets: aggregate.Bucketize(aggregate.Values(records, "rating"), RecipeRatingRanges),
	}, nil
}
