package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// graphStats is the JSON shape printed by the stats command.
type graphStats struct {
	Cells int      `json:"cells"`
	Nodes int      `json:"nodes"`
	Edges int      `json:"edges"`
	Roots []string `json:"roots"`
	Leafs []string `json:"leafs"`
	BBox  *bboxOut `json:"bbox,omitempty"`
}

type bboxOut struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// newStatsCmd creates the stats command.
func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats <graph-file>",
		Short: "Print summary statistics for a graph file",
		Long: `Stats loads a graph file and prints a JSON summary: cell, node and
edge counts, the root and leaf nodes, and the bounding box covering
every node. A graph without nodes has no bounding box.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			m, _, err := loadModel(args[0])
			if err != nil {
				return err
			}

			stats := graphStats{
				Cells: m.CellCount(),
				Nodes: len(m.GetNodes()),
				Edges: len(m.GetEdges()),
				Roots: []string{},
				Leafs: []string{},
			}
			for _, n := range m.GetRoots() {
				stats.Roots = append(stats.Roots, n.ID())
			}
			for _, n := range m.GetLeafs() {
				stats.Leafs = append(stats.Leafs, n.ID())
			}
			if box, ok := m.GetBBox(); ok {
				stats.BBox = &bboxOut{X: box.X, Y: box.Y, Width: box.Width, Height: box.Height}
			}

			data, err := json.MarshalIndent(stats, "", "  ")
			if err != nil {
				return err
			}
			fmt.Fprintln(os.Stdout, string(data))
			prog.done(fmt.Sprintf("Stats for %s", args[0]))
			return nil
		},
	}

	return cmd
}
