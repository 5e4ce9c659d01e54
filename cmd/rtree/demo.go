package main

import (
	"fmt"
	"slices"

	"github.com/urfave/cli/v2"
)

var cmdDemo = &cli.Command{
	Name:  "demo",
	Usage: "insert generated rectangles, then report how many a query finds",
	Flags: append(slices.Clone(generateFlags),
		&cli.BoolFlag{
			Name:  "print",
			Usage: "print the whole tree after inserting",
		},
	),
	Action: runDemo,
}

func runDemo(cctx *cli.Context) error {
	logger := configLogger(cctx, cctx.App.ErrWriter)

	query, err := parseRect(cctx.String("query"))
	if err != nil {
		return fmt.Errorf("parsing --query: %w", err)
	}

	tree, err := populate(cctx, logger)
	if err != nil {
		return err
	}

	found := tree.Search(query)
	logger.Info("searched tree", "query", query.String(), "found", len(found))

	fmt.Fprintf(cctx.App.Writer, "size: %d\n", tree.Size())
	fmt.Fprintf(cctx.App.Writer, "height: %d\n", tree.Height())
	fmt.Fprintf(cctx.App.Writer, "found: %d\n", len(found))

	if cctx.Bool("print") {
		fmt.Fprint(cctx.App.Writer, tree.String())
	}
	return nil
}
