package prompt

import (
	_ "embed"
	"encoding/xml"
	"fmt"
	"strings"

	"github.com/lisadascse72/Recipe-generator/pkg/recipe"
)

//go:embed recipe.xml
var recipeTemplate []byte

// Prompt represents the root XML element in prompt templates
type Prompt struct {
	XMLName      xml.Name    `xml:"prompt"`
	Role         string      `xml:"role"`
	Context      interface{} `xml:"context"`
	Instructions string      `xml:"instructions"`
	Note         string      `xml:"note"`
}

// Element represents a section with description and content
// If the content is empty, it will be omitted from the LLM Prompt
type Element struct {
	Description xml.CharData `xml:"description"`
	Content     xml.CharData `xml:"content,omitempty"`
}

// GetContent returns the content as a clean string without CDATA tags
func (e *Element) GetContent() string {
	return string(e.Content)
}

// SetContent sets the content, ensuring it will be wrapped in CDATA tags when marshaled
func (e *Element) SetContent(content string) {
	e.Content = xml.CharData(content)
}

// RecipeContext represents the context section within the recipe prompt
type RecipeContext struct {
	Cuisine           Element `xml:"cuisine"`
	DietaryPreference Element `xml:"dietary_preference"`
	Allergy           Element `xml:"allergy"`
	Ingredients       Element `xml:"ingredients"`
	WinePreference    Element `xml:"wine_preference"`
}

// LoadRecipePromptTemplate loads the embedded recipe prompt template
func LoadRecipePromptTemplate() (*Prompt, error) {
	prompt := &Prompt{
		Context: &RecipeContext{},
	}
	if err := xml.Unmarshal(recipeTemplate, prompt); err != nil {
		return nil, err
	}
	return prompt, nil
}

// FillRecipePrompt populates the recipe prompt with the customer's preferences
// Requires a specific function because the context can differ per template
func (p *Prompt) FillRecipePrompt(prefs recipe.Preferences) {
	ctx, ok := p.Context.(*RecipeContext)
	if !ok {
		return // Context is not a RecipeContext
	}

	ctx.Cuisine.SetContent(prefs.Cuisine)
	ctx.DietaryPreference.SetContent(prefs.DietaryPreference)
	ctx.Allergy.SetContent(prefs.Allergy)
	ctx.Ingredients.SetContent(strings.Join(prefs.Ingredients, ", "))
	ctx.WinePreference.SetContent(prefs.Wine)
}

// Render produces the flat prompt text that gets sent to the model
func (p *Prompt) Render() (string, error) {
	text, err := EncodeXMLToString(p)
	if err != nil {
		return "", fmt.Errorf("rendering prompt: %w", err)
	}
	return UnescapeXML(text), nil
}

// BuildRecipePrompt loads the template, fills it with the given preferences,
// and renders the final prompt text
func BuildRecipePrompt(prefs recipe.Preferences) (string, error) {
	p, err := LoadRecipePromptTemplate()
	if err != nil {
		return "", fmt.Errorf("loading recipe prompt template: %w", err)
	}
	p.FillRecipePrompt(prefs)
	return p.Render()
}
