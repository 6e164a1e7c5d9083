// Package recipe holds the preference model a generation request is built
// from and the persisted record a generation produces.
package recipe

import (
	"fmt"
	"strings"
	"time"

	"github.com/lisadascse72/Recipe-generator/pkg/errors"
)

// IngredientCount is the number of on-hand ingredients a request names.
const IngredientCount = 3

// Preferences captures everything the user tells the chef.
type Preferences struct {
	Cuisine           string   `json:"cuisine"`
	DietaryPreference string   `json:"dietary_preference"`
	Allergy           string   `json:"allergy"`
	Ingredients       []string `json:"ingredients"`
	Wine              string   `json:"wine"`
}

// Usage records the token cost of a single generation.
type Usage struct {
	PromptTokens     int32 `json:"prompt_tokens"`
	CompletionTokens int32 `json:"completion_tokens"`
	TotalTokens      int32 `json:"total_tokens"`
}

// Generation is the persisted result of one model call.
type Generation struct {
	ID          string      `json:"id"`
	Preferences Preferences `json:"preferences"`
	Prompt      string      `json:"prompt"`
	Recipes     string      `json:"recipes"`
	Model       string      `json:"model,omitempty"`
	Usage       Usage       `json:"usage"`
	CreatedAt   time.Time   `json:"created_at"`
}

// DefaultPreferences returns a request pre-filled the way the form is.
// Cuisine and dietary preference have no default; the form starts unset.
func DefaultPreferences() Preferences {
	d := Catalog().Defaults
	ingredients := make([]string, len(d.Ingredients))
	copy(ingredients, d.Ingredients)
	return Preferences{
		Allergy:     d.Allergy,
		Ingredients: ingredients,
		Wine:        d.Wine,
	}
}

// Validate checks the preferences against the option catalog.
func (p *Preferences) Validate() error {
	if strings.TrimSpace(p.Cuisine) == "" {
		return errors.New(errors.CodeMissingParameter, "recipe", "cuisine is required", nil)
	}
	if !contains(catalog.Cuisines, p.Cuisine) {
		return errors.New(errors.CodeInvalidParameter, "recipe", fmt.Sprintf("unknown cuisine %q", p.Cuisine), nil)
	}
	if strings.TrimSpace(p.DietaryPreference) == "" {
		return errors.New(errors.CodeMissingParameter, "recipe", "dietary preference is required", nil)
	}
	if !contains(catalog.DietaryPreferences, p.DietaryPreference) {
		return errors.New(errors.CodeInvalidParameter, "recipe", fmt.Sprintf("unknown dietary preference %q", p.DietaryPreference), nil)
	}
	if strings.TrimSpace(p.Allergy) == "" {
		return errors.New(errors.CodeMissingParameter, "recipe", "allergy is required", nil)
	}
	if len(p.Ingredients) != IngredientCount {
		return errors.New(errors.CodeInvalidParameter, "recipe", fmt.Sprintf("exactly %d ingredients are required", IngredientCount), nil)
	}
	for i, ing := range p.Ingredients {
		if strings.TrimSpace(ing) == "" {
			return errors.New(errors.CodeMissingParameter, "recipe", fmt.Sprintf("ingredient %d is empty", i+1), nil)
		}
	}
	if p.Wine == "" {
		return errors.New(errors.CodeMissingParameter, "recipe", "wine preference is required", nil)
	}
	if !contains(catalog.Wines, p.Wine) {
		return errors.New(errors.CodeInvalidParameter, "recipe", fmt.Sprintf("unknown wine preference %q", p.Wine), nil)
	}
	return nil
}
