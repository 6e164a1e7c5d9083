package recipe

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lisadascse72/Recipe-generator/pkg/errors"
)

func validPreferences() Preferences {
	return Preferences{
		Cuisine:           "Italian",
		DietaryPreference: "Vegetarian",
		Allergy:           "peanuts",
		Ingredients:       []string{"ahi tuna", "chicken breast", "tofu"},
		Wine:              "Red",
	}
}

func TestCatalogLoaded(t *testing.T) {
	opts := Catalog()

	assert.Len(t, opts.Cuisines, 8)
	assert.Len(t, opts.DietaryPreferences, 10)
	assert.Equal(t, []string{"Red", "White", "None"}, opts.Wines)
	assert.Equal(t, "peanuts", opts.Defaults.Allergy)
	assert.Len(t, opts.Defaults.Ingredients, IngredientCount)
}

func TestDefaultPreferences(t *testing.T) {
	p := DefaultPreferences()

	assert.Empty(t, p.Cuisine)
	assert.Empty(t, p.DietaryPreference)
	assert.Equal(t, "peanuts", p.Allergy)
	assert.Equal(t, []string{"ahi tuna", "chicken breast", "tofu"}, p.Ingredients)
	assert.Equal(t, "None", p.Wine)
}

func TestValidateAcceptsCompletePreferences(t *testing.T) {
	p := validPreferences()
	assert.NoError(t, p.Validate())
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Preferences)
		code   errors.Code
	}{
		{"missing cuisine", func(p *Preferences) { p.Cuisine = "" }, errors.CodeMissingParameter},
		{"unknown cuisine", func(p *Preferences) { p.Cuisine = "Martian" }, errors.CodeInvalidParameter},
		{"missing dietary", func(p *Preferences) { p.DietaryPreference = "" }, errors.CodeMissingParameter},
		{"unknown dietary", func(p *Preferences) { p.DietaryPreference = "Carnivore" }, errors.CodeInvalidParameter},
		{"missing allergy", func(p *Preferences) { p.Allergy = "  " }, errors.CodeMissingParameter},
		{"too few ingredients", func(p *Preferences) { p.Ingredients = p.Ingredients[:2] }, errors.CodeInvalidParameter},
		{"too many ingredients", func(p *Preferences) { p.Ingredients = append(p.Ingredients, "basil") }, errors.CodeInvalidParameter},
		{"blank ingredient", func(p *Preferences) { p.Ingredients[1] = "" }, errors.CodeMissingParameter},
		{"missing wine", func(p *Preferences) { p.Wine = "" }, errors.CodeMissingParameter},
		{"unknown wine", func(p *Preferences) { p.Wine = "Sparkling" }, errors.CodeInvalidParameter},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := validPreferences()
			tc.mutate(&p)
			err := p.Validate()
			assert.Error(t, err)
			assert.Equal(t, tc.code, errors.CodeOf(err))
		})
	}
}

func TestValidateAcceptsNoneChoices(t *testing.T) {
	p := validPreferences()
	p.DietaryPreference = "None"
	p.Wine = "None"
	assert.NoError(t, p.Validate())
}
