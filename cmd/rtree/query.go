package main

import (
	"fmt"
	"slices"

	"github.com/urfave/cli/v2"
)

var cmdQuery = &cli.Command{
	Name:      "query",
	Usage:     "insert generated rectangles, then list the ones intersecting a rectangle",
	ArgsUsage: `[<x,y,width,height>]`,
	Flags:     generateFlags,
	Action:    runQuery,
}

func runQuery(cctx *cli.Context) error {
	logger := configLogger(cctx, cctx.App.ErrWriter)

	raw := cctx.String("query")
	if cctx.Args().Len() > 0 {
		raw = cctx.Args().First()
	}

	query, err := parseRect(raw)
	if err != nil {
		return err
	}

	tree, err := populate(cctx, logger)
	if err != nil {
		return err
	}

	found := tree.Search(query)
	slices.Sort(found)

	for _, name := range found {
		fmt.Fprintln(cctx.App.Writer, name)
	}
	return nil
}
