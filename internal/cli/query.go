package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	apperrors "github.com/mlenz/cellgraph/pkg/errors"
	"github.com/mlenz/cellgraph/pkg/model"
)

// queryFlags holds the options shared by the query operations.
type queryFlags struct {
	op       string
	incoming bool
	outgoing bool
	deep     bool
	indirect bool
	enclosed bool
	cacheDir string
	noCache  bool
}

// newQueryCmd creates the query command.
func newQueryCmd() *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "query <graph-file> <cell-id>",
		Short: "Run a structural query against a graph file",
		Long: `Query runs one of the structural graph queries against a cell and
prints the result as JSON. The operation is selected with --op:

  neighbors     cells connected to the cell by an edge (default)
  edges         edges touching the cell
  successors    cells reachable along outgoing edges
  predecessors  cells that reach the cell along incoming edges

Results are cached keyed by the content hash of the graph file, so
repeated queries against an unchanged file are served from cache.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runQuery(cmd, args[0], args[1], flags)
		},
	}

	cmd.Flags().StringVar(&flags.op, "op", "neighbors", "operation: neighbors, edges, successors, predecessors")
	cmd.Flags().BoolVar(&flags.incoming, "incoming", false, "restrict to incoming edges")
	cmd.Flags().BoolVar(&flags.outgoing, "outgoing", false, "restrict to outgoing edges")
	cmd.Flags().BoolVar(&flags.deep, "deep", false, "treat descendants of the cell as part of it")
	cmd.Flags().BoolVar(&flags.indirect, "indirect", false, "follow edges attached to other edges (edges op only)")
	cmd.Flags().BoolVar(&flags.enclosed, "enclosed", false, "include edges internal to the descendant set (edges op only)")
	cmd.Flags().StringVar(&flags.cacheDir, "cache-dir", "", "cache directory (default: user cache dir)")
	cmd.Flags().BoolVar(&flags.noCache, "no-cache", false, "bypass the query result cache")

	return cmd
}

func runQuery(cmd *cobra.Command, graphPath, cellID string, flags queryFlags) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if err := apperrors.ValidateCellID(cellID); err != nil {
		return err
	}
	m, hash, err := loadModel(graphPath)
	if err != nil {
		return err
	}
	if !m.HasCell(cellID) {
		return fmt.Errorf("no cell %q in %s", cellID, graphPath)
	}

	c, err := openCache(flags.cacheDir, flags.noCache)
	if err != nil {
		return err
	}
	defer c.Close()

	params := []string{
		cellID,
		fmt.Sprintf("in=%t,out=%t,deep=%t,ind=%t,enc=%t",
			flags.incoming, flags.outgoing, flags.deep, flags.indirect, flags.enclosed),
	}
	data, err := cachedQuery(ctx, c, hash, flags.op, params, func() (any, error) {
		return computeQuery(m, cellID, flags)
	})
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, string(data))
	prog.done(fmt.Sprintf("Query %s on %s", flags.op, cellID))
	return nil
}

func computeQuery(m *model.Model, cellID string, flags queryFlags) (any, error) {
	switch flags.op {
	case "neighbors":
		opts := model.NeighborOptions{Incoming: flags.incoming, Outgoing: flags.outgoing, Deep: flags.deep}
		return cellRecords(m.GetNeighborsByID(cellID, opts)), nil

	case "edges":
		opts := model.ConnectionOptions{
			Incoming: flags.incoming,
			Outgoing: flags.outgoing,
			Indirect: flags.indirect,
			Deep:     flags.deep,
			Enclosed: flags.enclosed,
		}
		edges := m.GetConnectedEdgesByID(cellID, opts)
		records := make([]model.Record, len(edges))
		for i, e := range edges {
			records[i] = e.ToRecord()
		}
		return records, nil

	case "successors":
		cell, _ := m.GetCell(cellID)
		return cellRecords(m.GetSuccessors(cell, model.TraverseOptions{BreadthFirst: true, Deep: flags.deep})), nil

	case "predecessors":
		cell, _ := m.GetCell(cellID)
		return cellRecords(m.GetPredecessors(cell, model.TraverseOptions{BreadthFirst: true, Deep: flags.deep})), nil

	default:
		return nil, fmt.Errorf("unknown operation %q", flags.op)
	}
}

func cellRecords(cells []model.Cell) []model.Record {
	records := make([]model.Record, len(cells))
	for i, c := range cells {
		records[i] = c.ToRecord()
	}
	return records
}
