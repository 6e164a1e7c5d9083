package recipe

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed options.yaml
var optionsYAML []byte

// Options lists the choices the UI offers for each preference field.
type Options struct {
	Cuisines           []string `yaml:"cuisines" json:"cuisines"`
	DietaryPreferences []string `yaml:"dietary_preferences" json:"dietary_preferences"`
	Wines              []string `yaml:"wines" json:"wines"`
	Defaults           Defaults `yaml:"defaults" json:"defaults"`
}

// Defaults pre-fills the free-text fields the same way the form does.
type Defaults struct {
	Allergy     string   `yaml:"allergy" json:"allergy"`
	Ingredients []string `yaml:"ingredients" json:"ingredients"`
	Wine        string   `yaml:"wine" json:"wine"`
}

var catalog Options

func init() {
	if err := yaml.Unmarshal(optionsYAML, &catalog); err != nil {
		panic(fmt.Sprintf("parsing embedded options catalog: %v", err))
	}
}

// Catalog returns the embedded option catalog.
func Catalog() Options {
	return catalog
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
