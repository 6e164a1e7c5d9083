package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"

	"github.com/lisadascse72/Recipe-generator/pkg/ai"
	"github.com/lisadascse72/Recipe-generator/pkg/config"
	"github.com/lisadascse72/Recipe-generator/pkg/prompt"
	"github.com/lisadascse72/Recipe-generator/pkg/recipe"
	"github.com/lisadascse72/Recipe-generator/pkg/retry"
)

var (
	genCuisine     string
	genDietary     string
	genAllergy     string
	genIngredients []string
	genWine        string
	genShowPrompt  bool
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate meal recommendations in the terminal",
	Long:  `The generate command asks the model for meal recommendations matching your preferences and prints them, without starting the web server.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(envFile)
		if err != nil {
			return err
		}

		prefs := recipe.DefaultPreferences()
		prefs.Cuisine = genCuisine
		prefs.DietaryPreference = genDietary
		if cmd.Flags().Changed("allergy") {
			prefs.Allergy = genAllergy
		}
		if cmd.Flags().Changed("ingredients") {
			prefs.Ingredients = genIngredients
		}
		if cmd.Flags().Changed("wine") {
			prefs.Wine = genWine
		}
		if err := prefs.Validate(); err != nil {
			return err
		}

		promptText, err := prompt.BuildRecipePrompt(prefs)
		if err != nil {
			return fmt.Errorf("building prompt: %w", err)
		}

		client, err := initLLMClient(cfg)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.RequestTimeout)
		defer cancel()

		s := spinner.New(spinner.CharSets[11], 100*time.Millisecond)
		s.Suffix = " Generating your recipes..."
		s.Start()

		var recipes string
		var usage ai.TokenUsage
		err = retry.Do(ctx, "chat completion", retry.DefaultPolicy(), func(ctx context.Context) error {
			var callErr error
			recipes, usage, callErr = client.GetChatCompletionStream(ctx, promptText)
			return callErr
		})
		s.Stop()
		if err != nil {
			return fmt.Errorf("generating recipes: %w", err)
		}

		if genShowPrompt {
			fmt.Println("--- Prompt ---")
			fmt.Println(promptText)
			fmt.Println("--- Recipes ---")
		}
		fmt.Println(recipes)
		fmt.Printf("\n(model %s, %d tokens)\n", client.Model(), usage.TotalTokens)

		return nil
	},
}

func init() {
	generateCmd.Flags().StringVar(&genCuisine, "cuisine", "", "desired cuisine (required)")
	generateCmd.Flags().StringVar(&genDietary, "dietary-preference", "None", "dietary preference")
	generateCmd.Flags().StringVar(&genAllergy, "allergy", "", "food allergy to avoid")
	generateCmd.Flags().StringSliceVar(&genIngredients, "ingredients", nil, "exactly three on-hand ingredients")
	generateCmd.Flags().StringVar(&genWine, "wine", "", "wine preference (Red, White or None)")
	generateCmd.Flags().BoolVar(&genShowPrompt, "show-prompt", false, "print the prompt sent to the model")
	generateCmd.MarkFlagRequired("cuisine")
}
