// Command mapview generates a tile map with a chosen strategy and renders
// it as ASCII in the terminal. It is a debugging aid for eyeballing
// generator output, not a game renderer.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jannef/RogueSharp/mapgen"
	"github.com/jannef/RogueSharp/random"
	"github.com/jannef/RogueSharp/tilemap"
)

var (
	strategyName string
	width        int
	height       int
	fill         int
	iterations   int
	cutoff       int
	maxRooms     int
	roomMin      int
	roomMax      int
	seed         int64
	noColor      bool
)

func main() {
	root := &cobra.Command{
		Use:   "mapview",
		Short: "Generate and render a tile map in the terminal",
		Long: `Generate a tile map with one of the built-in strategies and print it.

Symbols: '.' floor, '#' wall, 's' walkable but opaque, 'o' transparent but impassable.

Examples:
  mapview
  mapview --strategy cave --width 80 --height 24 --seed 42
  mapview --strategy rooms --max-rooms 20
  mapview --strategy border --no-color`,
		RunE:          run,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.Flags().StringVarP(&strategyName, "strategy", "s", "cave", "Strategy: cave, rooms, or border")
	root.Flags().IntVarP(&width, "width", "W", 0, "Map width in cells (0 = fit terminal)")
	root.Flags().IntVarP(&height, "height", "H", 0, "Map height in cells (0 = fit terminal)")
	root.Flags().IntVar(&fill, "fill", 45, "Cave fill probability percentage (40-60 works well)")
	root.Flags().IntVar(&iterations, "iterations", 4, "Cave erosion iterations (2-5 works well)")
	root.Flags().IntVar(&cutoff, "cutoff", 3, "Cave big-area rule cutoff iteration")
	root.Flags().IntVar(&maxRooms, "max-rooms", 30, "Room placement attempts (rooms strategy)")
	root.Flags().IntVar(&roomMin, "room-min", 6, "Minimum room side (rooms strategy)")
	root.Flags().IntVar(&roomMax, "room-max", 10, "Maximum room side (rooms strategy)")
	root.Flags().Int64Var(&seed, "seed", 0, "Random seed (0 = fixed default seed)")
	root.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	w, h := dimensions()
	strategy, err := buildStrategy(w, h)
	if err != nil {
		return err
	}

	m, err := strategy.CreateMap()
	if err != nil {
		return fmt.Errorf("%s generation failed: %w", strategy.Name(), err)
	}

	render(cmd, m)

	return nil
}

// dimensions resolves the map size: explicit flags win; otherwise the
// attached terminal size (minus a status line) is used; otherwise 80×24.
func dimensions() (int, int) {
	w, h := width, height
	if w > 0 && h > 0 {
		return w, h
	}
	tw, th := 80, 24
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if cols, rows, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
			tw, th = cols, rows-1
		}
	}
	if w <= 0 {
		w = tw
	}
	if h <= 0 {
		h = th
	}

	return w, h
}

func buildStrategy(w, h int) (mapgen.Strategy, error) {
	src := random.New(seed)
	switch strings.ToLower(strategyName) {
	case "cave":
		return mapgen.NewCaveStrategy(w, h, mapgen.CaveOptions{
			FillProbability:     fill,
			TotalIterations:     iterations,
			CutoffOfBigAreaFill: cutoff,
			Source:              src,
		})
	case "rooms":
		return mapgen.NewRandomRoomsStrategy(w, h, mapgen.RandomRoomsOptions{
			MaxRooms:    maxRooms,
			RoomMaxSize: roomMax,
			RoomMinSize: roomMin,
			Source:      src,
		})
	case "border":
		return mapgen.NewBorderOnlyStrategy(w, h)
	default:
		return nil, fmt.Errorf("unknown strategy %q (want cave, rooms, or border)", strategyName)
	}
}

// Cell styles; walls recede, floors pop.
var (
	styleWall  = color.Style{color.FgGray}
	styleFloor = color.Style{color.FgGreen}
	styleOther = color.Style{color.FgYellow}
)

// render prints the map row by row, colorizing by cell kind unless the
// output is not a terminal or --no-color was given.
func render(cmd *cobra.Command, m *tilemap.Map) {
	if noColor || !term.IsTerminal(int(os.Stdout.Fd())) {
		cmd.Println(m.String())

		return
	}

	var b strings.Builder
	for y := 0; y < m.Height(); y++ {
		for x := 0; x < m.Width(); x++ {
			c, _ := m.CellAt(x, y)
			switch {
			case c.Transparent && c.Walkable:
				b.WriteString(styleFloor.Sprint("."))
			case c.Walkable:
				b.WriteString(styleOther.Sprint("s"))
			case c.Transparent:
				b.WriteString(styleOther.Sprint("o"))
			default:
				b.WriteString(styleWall.Sprint("#"))
			}
		}
		b.WriteByte('\n')
	}
	cmd.Print(b.String())
}
