package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/pageza/repas/backend/internal/ingredients"
)

func vocabularyCmd() *cli.Command {
	return &cli.Command{
		Name:  "vocabulary",
		Usage: "List the known ingredients",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return writeLines(cmd.Root().Writer, ingredients.Vocabulary())
		},
	}
}
