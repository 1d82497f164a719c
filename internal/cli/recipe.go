package cli

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/pageza/repas/backend/config"
	"github.com/pageza/repas/backend/internal/service"
)

func recipeCmd() *cli.Command {
	return &cli.Command{
		Name:      "recipe",
		Usage:     "Generate a recipe for a list of ingredients",
		ArgsUsage: "INGREDIENT...",
		Description: `Asks the configured text-generation provider for a simple recipe using the
given ingredients within a calorie budget. With --dry-run the prompt is printed
and no request is made.`,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "calories",
				Value: service.DefaultCalories,
				Usage: "calorie budget for the recipe",
			},
			&cli.BoolFlag{
				Name:  "dry-run",
				Usage: "print the prompt without calling the provider",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			list := cmd.Args().Slice()
			if len(list) == 0 {
				return fmt.Errorf("at least one ingredient is required")
			}

			calories := int(cmd.Int("calories"))
			if calories < 0 {
				return fmt.Errorf("invalid calorie budget: %d", calories)
			}

			out := cmd.Root().Writer
			if cmd.Bool("dry-run") {
				_, err := fmt.Fprintln(out, service.BuildPrompt(list, calories))
				return err
			}

			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			generator, err := service.NewGenerator(cfg)
			if err != nil {
				return err
			}

			recipe, err := service.NewRecipeService(generator).GenerateRecipe(ctx, service.RecipeRequest{
				Ingredients: list,
				Calories:    &calories,
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(out, recipe)
			return err
		},
	}
}
