package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mlenz/cellgraph/pkg/graphio"
	"github.com/mlenz/cellgraph/pkg/model"
)

// newSubgraphCmd creates the subgraph command.
func newSubgraphCmd() *cobra.Command {
	var (
		deep   bool
		output string
	)

	cmd := &cobra.Command{
		Use:   "subgraph <graph-file> <cell-id>...",
		Short: "Extract the closure around a set of cells",
		Long: `Subgraph computes the closure around the given cells: the cells
themselves, the endpoints of any edge among them, and the edges whose
both endpoints ended up in the set. With --deep the descendants of each
cell are included as well. The result is written as a graph JSON
document, to stdout or to the file named by --output. Cell IDs are
preserved, so the output can be queried or merged back.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			prog := newProgress(logger)

			m, _, err := loadModel(args[0])
			if err != nil {
				return err
			}

			ids := args[1:]
			cells := make([]model.Cell, 0, len(ids))
			for _, id := range ids {
				cell, ok := m.GetCell(id)
				if !ok {
					return fmt.Errorf("no cell %q in %s", id, args[0])
				}
				cells = append(cells, cell)
			}

			sub := m.GetSubGraph(cells, model.SubGraphOptions{Deep: deep})
			extracted, err := extractModel(sub)
			if err != nil {
				return err
			}

			if output == "" {
				if err := graphio.WriteJSON(extracted, os.Stdout); err != nil {
					return err
				}
			} else {
				if err := graphio.ExportJSON(extracted, output); err != nil {
					return err
				}
				logger.Info("Wrote subgraph", "path", output, "cells", extracted.CellCount())
			}

			prog.done(fmt.Sprintf("Subgraph of %d cells", extracted.CellCount()))
			return nil
		},
	}

	cmd.Flags().BoolVar(&deep, "deep", false, "include descendants of each input cell")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write the subgraph to a file instead of stdout")

	return cmd
}

// extractModel builds a standalone model from cells of another model,
// dropping containment references that point outside the set.
func extractModel(cells []model.Cell) (*model.Model, error) {
	inSet := make(map[string]bool, len(cells))
	for _, c := range cells {
		inSet[c.ID()] = true
	}

	records := make([]model.Record, len(cells))
	for i, c := range cells {
		rec := c.ToRecord()
		if !inSet[rec.Parent] {
			rec.Parent = ""
		}
		kept := rec.Children[:0]
		for _, child := range rec.Children {
			if inSet[child] {
				kept = append(kept, child)
			}
		}
		rec.Children = kept
		records[i] = rec
	}

	return model.FromRecords(records, nil)
}
