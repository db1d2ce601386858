package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/ByLCY/rectangles/action"
	"github.com/ByLCY/rectangles/console"
	"github.com/ByLCY/rectangles/game"
	"github.com/ByLCY/rectangles/input"
	"github.com/ByLCY/rectangles/layout"
	canvasrenderer "github.com/ByLCY/rectangles/renderer/canvas"
)

var (
	noColor    bool
	exportPath string
	debugPath  string
	cellSize   string
)

var rootCmd = &cobra.Command{
	Use:   "rectangles",
	Short: "Place, find and remove rectangles on a grid",
	Long: `Rectangles is an interactive console game played on a grid of 5 to 25
cells per side. Type a command at the prompt; MENU lists them all.

With --export every DISPLAY also writes the grid as a PDF, SVG or PNG file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		screen := console.New(cmd.OutOrStdout(), console.Options{NoColor: noColor})
		prompter := input.NewPrompter(cmd.InOrStdin(), screen)

		var exporter action.Exporter
		if exportPath != "" {
			fe, err := newFileExporter(exportPath, debugPath, cellSize)
			if err != nil {
				return err
			}
			exporter = fe
		}

		if err := game.NewSession(screen, prompter, exporter).Run(); err != nil {
			screen.Error(console.GenericFailure)
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.Flags().StringVar(&exportPath, "export", "", "Write the grid to this .pdf/.svg/.png file on every DISPLAY")
	rootCmd.Flags().StringVar(&debugPath, "debug", "", "Also write the export layout as JSON to this path (needs --export)")
	rootCmd.Flags().StringVar(&cellSize, "cell-size", "10mm", "Cell edge length for exports, e.g. 8mm, 1cm, 24pt")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("rectangles: %v", err)
	}
}

// newFileExporter validates the export flags and picks a renderer for the
// file extension.
func newFileExporter(outPath, debug, cell string) (*fileExporter, error) {
	format, err := canvasrenderer.FormatFromPath(outPath)
	if err != nil {
		return nil, fmt.Errorf("--export: %w", err)
	}
	size, err := layout.ParseLength(cell)
	if err != nil {
		return nil, fmt.Errorf("--cell-size: %w", err)
	}
	r, err := canvasrenderer.NewRenderer(canvasrenderer.Options{Format: format})
	if err != nil {
		return nil, err
	}
	return &fileExporter{
		outPath:   outPath,
		debugPath: debug,
		opts:      layout.BuildOptions{CellSize: size.ToMM()},
		renderer:  r,
	}, nil
}
