package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/pageza/repas/backend/internal/ingredients"
)

func extractCmd() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "Print the known ingredients found in text",
		ArgsUsage: "[TEXT|-]",
		Description: `Reads TEXT from the arguments, or from stdin when no argument or "-" is
given, and prints each recognised ingredient on its own line in sorted order.`,
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "tokens",
				Usage: "print every candidate token instead of the matched ingredients",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			text, err := inputText(cmd)
			if err != nil {
				return err
			}

			root := cmd.Root()
			if cmd.Bool("tokens") {
				return writeLines(root.Writer, ingredients.Tokenize(text))
			}
			return writeLines(root.Writer, ingredients.Extract(text))
		},
	}
}

func inputText(cmd *cli.Command) (string, error) {
	args := cmd.Args().Slice()
	if len(args) > 0 && !(len(args) == 1 && args[0] == "-") {
		return strings.Join(args, " "), nil
	}

	data, err := io.ReadAll(cmd.Root().Reader)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}
