package main

import (
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"strings"

	"github.com/crystalix007/guttman-rtree/rtree"

	"github.com/urfave/cli/v2"
)

var generateFlags = []cli.Flag{
	&cli.IntFlag{
		Name:    "count",
		Usage:   "number of rectangles to insert",
		Value:   100,
		EnvVars: []string{"RTREE_COUNT"},
	},
	&cli.Uint64Flag{
		Name:    "seed",
		Usage:   "seed for the rectangle generator",
		Value:   1,
		EnvVars: []string{"RTREE_SEED"},
	},
	&cli.IntFlag{
		Name:    "plane",
		Usage:   "side of the square plane rectangle origins are drawn from",
		Value:   100,
		EnvVars: []string{"RTREE_PLANE"},
	},
	&cli.IntFlag{
		Name:    "rect-width",
		Usage:   "width of each generated rectangle",
		Value:   20,
		EnvVars: []string{"RTREE_RECT_WIDTH"},
	},
	&cli.IntFlag{
		Name:    "rect-height",
		Usage:   "height of each generated rectangle",
		Value:   10,
		EnvVars: []string{"RTREE_RECT_HEIGHT"},
	},
	&cli.StringFlag{
		Name:    "query",
		Usage:   "query rectangle, as x,y,width,height",
		Value:   "10,10,50,60",
		EnvVars: []string{"RTREE_QUERY"},
	},
}

// configLogger installs a JSON slog logger on writer at the --log-level
// verbosity. Unknown levels fall back to the flag's default, warn.
func configLogger(cctx *cli.Context, writer io.Writer) *slog.Logger {
	level := slog.LevelWarn
	switch strings.ToLower(cctx.String("log-level")) {
	case "error":
		level = slog.LevelError
	case "info":
		level = slog.LevelInfo
	case "debug":
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)
	return logger
}

// parseRect parses a rectangle written as "x,y,width,height".
func parseRect(raw string) (rtree.Rect, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != 4 {
		return rtree.Rect{}, fmt.Errorf("rectangle %q: want x,y,width,height", raw)
	}

	var coords [4]int
	for i, part := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return rtree.Rect{}, fmt.Errorf("rectangle %q: %w", raw, err)
		}
		coords[i] = v
	}

	r := rtree.Rect{X: coords[0], Y: coords[1], Width: coords[2], Height: coords[3]}
	if r.Width < 0 || r.Height < 0 {
		return rtree.Rect{}, fmt.Errorf("rectangle %q: negative width or height", raw)
	}
	return r, nil
}

// populate builds a tree of generated rectangles, named Object0, Object1 and
// so on. It checks the tree's size after every insert.
func populate(cctx *cli.Context, logger *slog.Logger) (*rtree.Tree[string], error) {
	count := cctx.Int("count")
	plane := cctx.Int("plane")
	width, height := cctx.Int("rect-width"), cctx.Int("rect-height")

	if count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", count)
	}
	if plane <= 0 {
		return nil, fmt.Errorf("plane must be positive, got %d", plane)
	}
	if width < 0 || height < 0 {
		return nil, fmt.Errorf("rectangle size must not be negative, got %dx%d", width, height)
	}

	seed := cctx.Uint64("seed")
	rnd := rand.New(rand.NewPCG(seed, seed))
	tree := rtree.New[string]()

	for i := range count {
		bounds := rtree.Rect{
			X:      rnd.IntN(plane),
			Y:      rnd.IntN(plane),
			Width:  width,
			Height: height,
		}
		name := fmt.Sprintf("Object%d", i)
		levels := tree.Height()

		tree.Insert(bounds, name)
		logger.Debug("inserted rectangle", "value", name, "bounds", bounds.String())

		if tree.Height() != levels {
			logger.Debug("root split", "height", tree.Height(), "size", i+1)
		}

		if size := tree.Size(); size != i+1 {
			logger.Error("size mismatch after insert", "value", name, "size", size, "want", i+1)
			return nil, fmt.Errorf("size %d after %d inserts", size, i+1)
		}
	}

	logger.Info("populated tree", "count", count, "height", tree.Height(), "seed", seed)
	return tree, nil
}
